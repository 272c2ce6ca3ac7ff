package tui

import (
	"strconv"

	"github.com/akyairhashvil/timetell/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	timerTab := []int{config.TabTimer}
	notesTab := []int{config.TabNotes}

	r.Register(KeyBinding{Key: "tab", Description: "Switch", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.switchTab(), nil, true
	}})
	r.Register(KeyBinding{Key: "q", Description: "Quit", Priority: -1, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		next, cmd := m.quit()
		return next, cmd, true
	}})

	toggle := func(m MainModel, _ string) (MainModel, tea.Cmd, bool) { return m.toggleTimer(), nil, true }
	r.Register(KeyBinding{Key: "space", Description: "Start/Pause", Tabs: timerTab, Priority: 10, Handler: toggle})
	r.Register(KeyBinding{Key: " ", Tabs: timerTab, Priority: 10, Handler: toggle})
	r.Register(KeyBinding{Key: "s", Tabs: timerTab, Priority: 10, Handler: toggle})
	r.Register(KeyBinding{Key: "r", Description: "Reset", Tabs: timerTab, Priority: 10, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.resetTimer(), nil, true
	}})
	r.Register(KeyBinding{Key: "m", Description: "Mute", Tabs: timerTab, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.toggleMute(), nil, true
	}})
	r.Register(KeyBinding{Key: "t", Description: "Theme", Tabs: timerTab, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.cycleTheme(), nil, true
	}})

	r.Register(KeyBinding{Key: "a", Description: "Add", Tabs: notesTab, Priority: 10, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		next, cmd := m.startAddNote()
		return next, cmd, true
	}})
	r.Register(KeyBinding{Key: "x", Description: "Done", Tabs: notesTab, Priority: 10, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.toggleSelectedNote(), nil, true
	}})
	r.Register(KeyBinding{Key: "d", Description: "Delete", Tabs: notesTab, Priority: 10, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.startDeleteNote(), nil, true
	}})
	r.Register(KeyBinding{Key: "/", Description: "Filter", Tabs: notesTab, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		next, cmd := m.startFilter()
		return next, cmd, true
	}})
	r.Register(KeyBinding{Key: "e", Description: "Export", Tabs: notesTab, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m, m.exportReportCmd(), true
	}})
	up := func(m MainModel, _ string) (MainModel, tea.Cmd, bool) { return m.moveCursor(-1), nil, true }
	down := func(m MainModel, _ string) (MainModel, tea.Cmd, bool) { return m.moveCursor(1), nil, true }
	r.Register(KeyBinding{Key: "up", Tabs: notesTab, Handler: up})
	r.Register(KeyBinding{Key: "k", Tabs: notesTab, Handler: up})
	r.Register(KeyBinding{Key: "down", Tabs: notesTab, Handler: down})
	r.Register(KeyBinding{Key: "j", Tabs: notesTab, Handler: down})
	return r
}

func (m MainModel) toggleTimer() MainModel {
	snap := m.timer.Snapshot()
	switch {
	case snap.Running:
		m.timer.Pause()
		m.setMessage("Paused")
	case snap.ElapsedSeconds >= config.AutoStopAfter:
		m.setMessage("One hour reached. Press [r] to reset.")
	default:
		m.timer.Start()
		m.setMessage("")
	}
	m.session = m.timer.Snapshot()
	return m
}

func (m MainModel) resetTimer() MainModel {
	m.timer.Reset()
	m.session = m.timer.Snapshot()
	m.announced = ""
	m.setMessage("Reset")
	return m
}

func (m MainModel) toggleMute() MainModel {
	if m.voice == nil {
		m.setMessage("No voice available")
		return m
	}
	muted := !m.voice.Muted()
	m.voice.SetMuted(muted)
	if err := m.db.SetSetting(m.ctx, config.SettingVoiceMuted, strconv.FormatBool(muted)); err != nil {
		m.setError("Save voice setting", err)
		return m
	}
	if muted {
		m.setMessage("Voice muted")
	} else {
		m.setMessage("Voice on")
	}
	return m
}

func (m MainModel) cycleTheme() MainModel {
	next := NextTheme(CurrentThemeKey())
	SetTheme(next)
	if err := m.db.SetSetting(m.ctx, config.SettingTheme, next); err != nil {
		m.setError("Save theme", err)
		return m
	}
	m.setMessage("Theme: " + CurrentTheme.Name)
	return m
}
