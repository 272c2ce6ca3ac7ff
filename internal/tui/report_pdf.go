package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/timetell/internal/models"
	"github.com/go-pdf/fpdf"
)

// GenerateNotesReport writes a PDF listing notes into dir and returns its path.
func GenerateNotesReport(notes []models.Note, now time.Time, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Notes Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated "+now.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(notes) == 0 {
		pdf.Cell(0, 8, "No notes.")
		pdf.Ln(8)
	}

	done := 0
	for _, n := range notes {
		status := "[ ]"
		if n.Realized {
			status = "[x]"
			done++
		}
		line := fmt.Sprintf("%s %s", status, n.Text)
		pdf.MultiCell(0, 7, tr(line), "", "", false)
		pdf.SetFont("Arial", "I", 9)
		meta := fmt.Sprintf("    added %s, %s", n.CreatedAt.Local().Format("2006-01-02"), FormatDaysAgo(n.DaysAgo(now)))
		pdf.Cell(0, 6, meta)
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, FormatNoteCount(done, len(notes)))

	path := filepath.Join(dir, fmt.Sprintf("notes_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
