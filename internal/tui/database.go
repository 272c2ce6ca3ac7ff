package tui

import (
	"context"

	"github.com/akyairhashvil/timetell/internal/models"
)

// Database defines the persistence methods the TUI requires.
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	AddNote(ctx context.Context, text string) (models.Note, error)
	GetNotes(ctx context.Context) ([]models.Note, error)
	ToggleNoteRealized(ctx context.Context, id string) (bool, error)
	DeleteNote(ctx context.Context, id string) error
}
