package tui

import (
	"fmt"

	"github.com/akyairhashvil/timetell/internal/config"
	"github.com/akyairhashvil/timetell/internal/models"
)

// FormatClock renders a session as MM:SS. Minutes are not wrapped into hours.
func FormatClock(s models.Session) string {
	return fmt.Sprintf("%02d:%02d", s.Minutes(), s.Seconds())
}

// FormatTimeRemaining formats the time left before auto-stop.
func FormatTimeRemaining(elapsedSeconds int) string {
	remaining := config.AutoStopAfter - elapsedSeconds
	if remaining <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

// FormatTimerStatus returns a human-readable timer status.
func FormatTimerStatus(s models.Session) string {
	switch {
	case s.Running:
		return fmt.Sprintf("Running - auto-stop in %s", FormatTimeRemaining(s.ElapsedSeconds))
	case s.ElapsedSeconds >= config.AutoStopAfter:
		return "Stopped - one hour reached"
	case s.ElapsedSeconds > 0:
		return "Paused"
	default:
		return "Ready"
	}
}

// FormatDaysAgo renders a note age.
func FormatDaysAgo(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// FormatNoteCount formats note counts for display.
func FormatNoteCount(realized, total int) string {
	if total == 0 {
		return "No notes"
	}
	return fmt.Sprintf("%d/%d done", realized, total)
}

// autoStopFraction is the progress toward auto-stop in [0, 1].
func autoStopFraction(elapsedSeconds int) float64 {
	f := float64(elapsedSeconds) / float64(config.AutoStopAfter)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
