package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/timetell/internal/config"
	"github.com/akyairhashvil/timetell/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var tabNames = []string{"Timer", "Notes"}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m MainModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if m.tab == config.TabNotes {
		b.WriteString(m.renderNotes())
	} else {
		b.WriteString(m.renderTimer())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return CurrentTheme.Base.Render(b.String())
}

func (m MainModel) renderHeader() string {
	var tabs []string
	for i, name := range tabNames {
		if i == m.tab {
			tabs = append(tabs, CurrentTheme.Focused.Render("["+name+"]"))
		} else {
			tabs = append(tabs, CurrentTheme.Dim.Render(" "+name+" "))
		}
	}
	title := CurrentTheme.Header.Render(strings.ToUpper(config.AppName))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, " "))
}

func (m MainModel) renderTimer() string {
	status := FormatTimerStatus(m.session)
	statusStyle := CurrentTheme.Paused
	if m.session.Running {
		statusStyle = CurrentTheme.Running
	}

	lines := []string{
		CurrentTheme.Clock.Render(FormatClock(m.session)),
		statusStyle.Render(status),
		m.progress.ViewAs(autoStopFraction(m.session.ElapsedSeconds)),
	}
	if m.announced != "" {
		lines = append(lines, CurrentTheme.Highlight.Render(fmt.Sprintf("Last announced: %q", strings.TrimSpace(m.announced))))
	}
	voice := "Voice: on"
	if m.voice == nil {
		voice = "Voice: unavailable"
	} else if m.voice.Muted() {
		voice = "Voice: muted"
	}
	lines = append(lines, CurrentTheme.Dim.Render(voice))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m MainModel) noteWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width - 24
	if w < config.MinNoteWidth {
		return config.MinNoteWidth
	}
	return w
}

// renderNoteText styles #hashtags inside an already truncated note.
func renderNoteText(text string, style lipgloss.Style) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		if strings.HasPrefix(w, "#") && len(w) > 1 {
			words[i] = CurrentTheme.Tag.Render(w)
		} else {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, style.Render(" "))
}

func (m MainModel) renderNoteLine(n models.Note, selected bool) string {
	marker := "[ ]"
	style := CurrentTheme.Note
	if n.Realized {
		marker = "[x]"
		style = CurrentTheme.RealizedNote
	}
	cursor := "  "
	if selected {
		cursor = CurrentTheme.Focused.Render("> ")
	}
	text := renderNoteText(truncateLabel(n.Text, m.noteWidth()), style)
	age := CurrentTheme.Dim.Render(fmt.Sprintf("  %s, %s",
		n.CreatedAt.Local().Format("Jan 02"), FormatDaysAgo(n.DaysAgo(m.opts.Now()))))
	return cursor + marker + " " + text + age
}

func (m MainModel) renderNotes() string {
	var b strings.Builder
	visible := m.visibleNotes()

	done := 0
	for _, n := range m.notes.items {
		if n.Realized {
			done++
		}
	}
	summary := FormatNoteCount(done, len(m.notes.items))
	if !m.notes.query.Empty() {
		summary += fmt.Sprintf(" (showing %d)", len(visible))
	}
	b.WriteString(CurrentTheme.Dim.Render(summary))
	b.WriteString("\n\n")

	if len(visible) == 0 {
		if len(m.notes.items) == 0 {
			b.WriteString(CurrentTheme.Dim.Render("No notes yet. Press [a] to add one."))
		} else {
			b.WriteString(CurrentTheme.Dim.Render("No notes match the filter."))
		}
	}

	end := m.notes.offset + config.MaxVisibleNotes
	if end > len(visible) {
		end = len(visible)
	}
	for i := m.notes.offset; i < end; i++ {
		b.WriteString(m.renderNoteLine(visible[i], i == m.notes.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(visible) {
		b.WriteString("\n" + CurrentTheme.Dim.Render(fmt.Sprintf("  ... %d more", len(visible)-end)))
	}

	if m.notes.adding {
		b.WriteString("\n\n")
		b.WriteString(CurrentTheme.Input.Render(m.notes.input.View()))
	}
	if m.notes.filtering || !m.notes.query.Empty() {
		b.WriteString("\n\n")
		b.WriteString(CurrentTheme.Input.Render("/ " + m.notes.filter.View()))
	}
	return b.String()
}

func (m MainModel) renderFooter() string {
	var help string
	switch {
	case m.notes.adding:
		help = "[enter]Save|[esc]Cancel"
	case m.notes.filtering:
		help = "[enter]Keep|[esc]Clear"
	case m.notes.confirmingDelete:
		help = "[y]Delete|[n]Keep"
	default:
		help = m.keys.HelpForTab(m.tab)
	}

	lines := []string{CurrentTheme.Dim.Render(help)}
	if m.Message != "" {
		style := CurrentTheme.Highlight
		if m.err != nil {
			style = CurrentTheme.Error
		}
		lines = append(lines, style.Render(m.Message))
	}
	meta := fmt.Sprintf("Launches: %d  %s", m.opts.LaunchCount, versionLabel())
	lines = append(lines, CurrentTheme.Dim.Render(meta))
	return strings.Join(lines, "\n")
}
