package database

import (
	"context"

	"github.com/akyairhashvil/timetell/internal/models"
)

// SettingsRepository is the key-value store contract.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	IncrementCounter(ctx context.Context, key string) (int, error)
}

// NoteRepository defines note-related database operations.
type NoteRepository interface {
	AddNote(ctx context.Context, text string) (models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	GetNotes(ctx context.Context) ([]models.Note, error)
	ToggleNoteRealized(ctx context.Context, id string) (bool, error)
	DeleteNote(ctx context.Context, id string) error
	ClearNotes(ctx context.Context) error
}

// BackupRepository moves notes and settings in and out as JSON.
type BackupRepository interface {
	ExportNotes(ctx context.Context) ([]byte, error)
	ImportNotes(ctx context.Context, payload []byte) (int, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_repository_test.go -package=tui
type Repository interface {
	SettingsRepository
	NoteRepository
}

var (
	_ Repository       = (*Database)(nil)
	_ BackupRepository = (*Database)(nil)
)
