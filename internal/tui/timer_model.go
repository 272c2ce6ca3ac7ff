package tui

import (
	"github.com/akyairhashvil/timetell/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Timer is the part of the timer manager the UI drives.
type Timer interface {
	Start()
	Pause()
	Reset()
	Snapshot() models.Session
	LastAnnouncement() string
	Subscribe() <-chan models.Session
}

// Voice exposes the mute switch of the announcement sink.
type Voice interface {
	Muted() bool
	SetMuted(muted bool)
}

// SessionMsg carries a committed timer session into the update loop.
type SessionMsg models.Session

// waitForSession blocks on the manager's subscription and turns the next
// session into a message. It is re-armed after every SessionMsg.
func waitForSession(updates <-chan models.Session) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return SessionMsg(s)
	}
}
