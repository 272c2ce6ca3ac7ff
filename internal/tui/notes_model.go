package tui

import (
	"errors"
	"strings"

	"github.com/akyairhashvil/timetell/internal/config"
	"github.com/akyairhashvil/timetell/internal/database"
	"github.com/akyairhashvil/timetell/internal/models"
	"github.com/akyairhashvil/timetell/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

type reportDoneMsg struct {
	path string
	err  error
}

func (m *MainModel) reloadNotes() {
	notes, err := m.db.GetNotes(m.ctx)
	if err != nil {
		m.setError("Load notes", err)
		return
	}
	m.notes.items = notes
	m.clampCursor()
}

// visibleNotes returns the notes that pass the active filter, oldest first.
func (m MainModel) visibleNotes() []models.Note {
	if m.notes.query.Empty() {
		return m.notes.items
	}
	out := make([]models.Note, 0, len(m.notes.items))
	for _, n := range m.notes.items {
		if m.notes.query.Match(n.Text, n.Realized) {
			out = append(out, n)
		}
	}
	return out
}

func (m MainModel) selectedNote() (models.Note, bool) {
	visible := m.visibleNotes()
	if m.notes.cursor < 0 || m.notes.cursor >= len(visible) {
		return models.Note{}, false
	}
	return visible[m.notes.cursor], true
}

func (m *MainModel) clampCursor() {
	count := len(m.visibleNotes())
	if count == 0 {
		m.notes.cursor, m.notes.offset = 0, 0
		return
	}
	m.notes.cursor = util.Clamp(m.notes.cursor, 0, count-1)
	if m.notes.cursor < m.notes.offset {
		m.notes.offset = m.notes.cursor
	}
	if m.notes.cursor >= m.notes.offset+config.MaxVisibleNotes {
		m.notes.offset = m.notes.cursor - config.MaxVisibleNotes + 1
	}
	m.notes.offset = util.Clamp(m.notes.offset, 0, count-1)
}

func (m MainModel) moveCursor(delta int) MainModel {
	m.notes.cursor += delta
	m.clampCursor()
	return m
}

func (m MainModel) startAddNote() (MainModel, tea.Cmd) {
	m.notes.adding = true
	m.notes.input.Reset()
	m.setMessage("")
	return m, m.notes.input.Focus()
}

func (m MainModel) handleNoteInput(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.notes.adding = false
		m.notes.input.Blur()
		m.notes.input.Reset()
		return m, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(m.notes.input.Value())
		note, err := m.db.AddNote(m.ctx, text)
		if errors.Is(err, database.ErrEmptyNote) {
			m.setMessage("Note is empty")
			return m, nil
		}
		m.notes.adding = false
		m.notes.input.Blur()
		m.notes.input.Reset()
		if err != nil {
			m.setError("Add note", err)
			return m, nil
		}
		m.reloadNotes()
		m.selectNote(note.ID)
		m.setMessage("Note added")
		return m, nil
	}
	var cmd tea.Cmd
	m.notes.input, cmd = m.notes.input.Update(msg)
	return m, cmd
}

// selectNote moves the cursor onto the note with id if it is visible.
func (m *MainModel) selectNote(id string) {
	for i, n := range m.visibleNotes() {
		if n.ID == id {
			m.notes.cursor = i
			m.clampCursor()
			return
		}
	}
}

func (m MainModel) toggleSelectedNote() MainModel {
	note, ok := m.selectedNote()
	if !ok {
		return m
	}
	realized, err := m.db.ToggleNoteRealized(m.ctx, note.ID)
	if err != nil {
		m.setError("Update note", err)
		return m
	}
	m.reloadNotes()
	if realized {
		m.setMessage("Marked done")
	} else {
		m.setMessage("Marked open")
	}
	return m
}

func (m MainModel) startDeleteNote() MainModel {
	if _, ok := m.selectedNote(); !ok {
		return m
	}
	m.notes.confirmingDelete = true
	m.setMessage("Delete this note? [y/n]")
	return m
}

func (m MainModel) handleDeleteConfirm(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.notes.confirmingDelete = false
		note, ok := m.selectedNote()
		if !ok {
			m.setMessage("")
			return m, nil
		}
		if err := m.db.DeleteNote(m.ctx, note.ID); err != nil {
			m.setError("Delete note", err)
			return m, nil
		}
		m.reloadNotes()
		m.setMessage("Note deleted")
	case "n", "N", "esc":
		m.notes.confirmingDelete = false
		m.setMessage("")
	}
	return m, nil
}

func (m MainModel) startFilter() (MainModel, tea.Cmd) {
	m.notes.filtering = true
	m.notes.filter.SetValue(strings.TrimSpace(m.notes.filter.Value()))
	m.notes.filter.CursorEnd()
	return m, m.notes.filter.Focus()
}

// handleFilterInput applies the filter live while typing. Enter keeps it,
// esc clears it.
func (m MainModel) handleFilterInput(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.notes.filtering = false
		m.notes.filter.Blur()
		m.notes.filter.Reset()
		m.notes.query = util.NoteQuery{}
		m.clampCursor()
		return m, nil
	case tea.KeyEnter:
		m.notes.filtering = false
		m.notes.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.notes.filter, cmd = m.notes.filter.Update(msg)
	m.notes.query = util.ParseNoteQuery(m.notes.filter.Value())
	m.notes.cursor = 0
	m.clampCursor()
	return m, cmd
}

func (m MainModel) exportReportCmd() tea.Cmd {
	notes := m.visibleNotes()
	dir := m.opts.ReportDir
	now := m.opts.Now()
	return func() tea.Msg {
		path, err := GenerateNotesReport(notes, now, dir)
		return reportDoneMsg{path: path, err: err}
	}
}

func (m MainModel) handleReportDone(msg reportDoneMsg) MainModel {
	if msg.err != nil {
		m.setError("Export report", msg.err)
		return m
	}
	m.setMessage("Report saved: " + msg.path)
	return m
}
