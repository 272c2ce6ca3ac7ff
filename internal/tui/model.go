package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/timetell/internal/config"
	"github.com/akyairhashvil/timetell/internal/models"
	"github.com/akyairhashvil/timetell/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options carries startup values that do not come from the database.
type Options struct {
	LaunchCount int
	ReportDir   string
	Now         func() time.Time
}

// NotesState tracks the notes list, its cursor and input modes.
type NotesState struct {
	items            []models.Note
	cursor           int
	offset           int
	adding           bool
	input            textinput.Model
	confirmingDelete bool
	filtering        bool
	filter           textinput.Model
	query            util.NoteQuery
}

// MainModel is the root bubbletea model: a timer tab and a notes tab.
type MainModel struct {
	ctx       context.Context
	db        Database
	timer     Timer
	voice     Voice
	updates   <-chan models.Session
	session   models.Session
	announced string
	tab       int
	notes     NotesState
	progress  progress.Model
	keys      *HandlerRegistry
	opts      Options
	width     int
	height    int
	Message   string
	err       error
}

func NewMainModel(ctx context.Context, db Database, timer Timer, voice Voice, opts Options) MainModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ReportDir == "" {
		opts.ReportDir = util.ReportsDir(config.AppName)
	}

	input := textinput.New()
	input.Placeholder = "What do you want to remember?"
	input.CharLimit = config.MaxNoteLength
	input.Width = 48

	filter := textinput.New()
	filter.Placeholder = "text, tag:name, status:open|done"
	filter.Width = 48

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = config.ProgressWidth

	m := MainModel{
		ctx:      ctx,
		db:       db,
		timer:    timer,
		voice:    voice,
		tab:      config.DefaultTab,
		progress: prog,
		keys:     newKeyRegistry(),
		opts:     opts,
		notes: NotesState{
			input:  input,
			filter: filter,
		},
	}
	if timer != nil {
		m.updates = timer.Subscribe()
		m.session = timer.Snapshot()
		m.announced = timer.LastAnnouncement()
	}
	if name, ok := db.GetSetting(ctx, config.SettingTheme); ok {
		SetTheme(name)
	}
	m.reloadNotes()
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForSession(m.updates))
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case SessionMsg:
		m.session = models.Session(msg)
		m.announced = m.timer.LastAnnouncement()
		return m, waitForSession(m.updates)
	case reportDoneMsg:
		return m.handleReportDone(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.ProgressWidth)
	}
	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	switch {
	case m.notes.adding:
		return m.handleNoteInput(msg)
	case m.notes.filtering:
		return m.handleFilterInput(msg)
	case m.notes.confirmingDelete:
		return m.handleDeleteConfirm(msg)
	}
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	return m, nil
}

func (m MainModel) quit() (MainModel, tea.Cmd) {
	if m.timer != nil {
		m.timer.Pause()
	}
	return m, tea.Quit
}

func (m MainModel) switchTab() MainModel {
	if m.tab == config.TabTimer {
		m.tab = config.TabNotes
	} else {
		m.tab = config.TabTimer
	}
	m.Message = ""
	return m
}

func (m *MainModel) setError(context string, err error) {
	util.LogError(context, err)
	m.err = err
	m.Message = context + ": " + err.Error()
}

func (m *MainModel) setMessage(msg string) {
	m.err = nil
	m.Message = msg
}
