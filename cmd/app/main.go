package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/akyairhashvil/timetell/internal/clock"
	"github.com/akyairhashvil/timetell/internal/config"
	"github.com/akyairhashvil/timetell/internal/database"
	"github.com/akyairhashvil/timetell/internal/speech"
	"github.com/akyairhashvil/timetell/internal/timer"
	"github.com/akyairhashvil/timetell/internal/tui"
	"github.com/akyairhashvil/timetell/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	exportPath := flag.String("export", "", "write notes and settings as JSON to `file` and exit")
	importPath := flag.String("import", "", "load notes and settings from a JSON `file` and exit")
	headless := flag.Bool("headless", false, "run the timer without the UI, printing announcements")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.Load(), *exportPath, *importPath, *headless); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, exportPath, importPath string, headless bool) error {
	// 1. Initialize Database
	dataDir, err := util.ResolveDataDir(config.AppName, cfg.DataDir)
	if err != nil {
		return err
	}
	db, err := database.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case exportPath != "":
		return exportNotes(ctx, db, exportPath, os.Stdout)
	case importPath != "":
		return importNotes(ctx, db, importPath, os.Stdout)
	}

	launches, err := db.IncrementCounter(ctx, config.SettingLaunchCount)
	util.LogError("Count launch", err)

	// 2. Wire the voice and the timer
	muted := db.GetBoolSetting(ctx, config.SettingVoiceMuted, cfg.Muted)
	voice := speech.NewMutable(speech.Detect(cfg.TTSCommand), muted)
	tui.SetTheme(cfg.Theme)

	if headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		mgr := timer.NewManager(clock.System, announcer{Speaker: voice, out: os.Stdout, now: time.Now})
		return runHeadless(ctx, mgr, os.Stdout)
	}

	// 3. Start Program, logging to a file so output does not corrupt the screen
	logFile, err := tea.LogToFile(filepath.Join(dataDir, config.LogFile), config.AppName)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	mgr := timer.NewManager(clock.System, voice)
	model := tui.NewMainModel(ctx, db, mgr, voice, tui.Options{LaunchCount: launches})
	p := tea.NewProgram(model, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err = p.Run()
	mgr.Pause()
	return err
}

// announcer prints each phrase before handing it to the voice.
type announcer struct {
	speech.Speaker
	out io.Writer
	now func() time.Time
}

func (a announcer) Speak(text string) {
	fmt.Fprintf(a.out, "[%s] %s\n", a.now().Format("15:04:05"), strings.TrimSpace(text))
	a.Speaker.Speak(text)
}

// runHeadless runs one session until auto-stop or until ctx is cancelled.
func runHeadless(ctx context.Context, mgr *timer.Manager, out io.Writer) error {
	updates := mgr.Subscribe()
	fmt.Fprintf(out, "Timer started. Auto-stop after %s.\n", tui.FormatTimeRemaining(0))
	mgr.Start()
	for {
		select {
		case <-ctx.Done():
			mgr.Pause()
			fmt.Fprintf(out, "Stopped at %s\n", tui.FormatClock(mgr.Snapshot()))
			return nil
		case s := <-updates:
			if !s.Running {
				fmt.Fprintf(out, "Auto-stopped at %s\n", tui.FormatClock(s))
				return nil
			}
		}
	}
}

func exportNotes(ctx context.Context, db database.BackupRepository, path string, out io.Writer) error {
	payload, err := db.ExportNotes(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(out, "Exported notes to %s\n", path)
	return nil
}

func importNotes(ctx context.Context, db database.BackupRepository, path string, out io.Writer) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}
	n, err := db.ImportNotes(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d notes from %s\n", n, path)
	return nil
}
