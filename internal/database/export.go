package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/timetell/internal/util"
	"github.com/google/uuid"
)

const exportVersion = 1

type ExportNote struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Realized  bool   `json:"realized"`
	CreatedAt string `json:"created_at"`
}

type NotesExport struct {
	Version    int               `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Settings   map[string]string `json:"settings,omitempty"`
	Notes      []ExportNote      `json:"notes"`
}

func (d *Database) getAllSettings(ctx context.Context) (map[string]string, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}

// ExportNotes serializes all notes and settings as JSON.
func (d *Database) ExportNotes(ctx context.Context) ([]byte, error) {
	notes, err := d.GetNotes(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := d.getAllSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	export := NotesExport{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Settings:   settings,
		Notes:      make([]ExportNote, 0, len(notes)),
	}
	for _, n := range notes {
		export.Notes = append(export.Notes, ExportNote{
			ID:        n.ID,
			Text:      n.Text,
			Realized:  n.Realized,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return json.MarshalIndent(export, "", "  ")
}

// ImportNotes loads an ExportNotes payload. Notes with an existing ID are
// replaced; settings are upserted. It returns the number of notes imported.
func (d *Database) ImportNotes(ctx context.Context, payload []byte) (int, error) {
	var export NotesExport
	if err := json.Unmarshal(payload, &export); err != nil {
		return 0, fmt.Errorf("import notes: %w", err)
	}
	if export.Version > exportVersion {
		return 0, fmt.Errorf("import notes: unsupported version %d", export.Version)
	}

	imported := 0
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		for key, value := range export.Settings {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
				key, value); err != nil {
				return wrapSettingErr("import", key, err)
			}
		}

		for _, n := range export.Notes {
			text := strings.TrimSpace(n.Text)
			if text == "" {
				continue
			}
			id := strings.TrimSpace(n.ID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			created, err := time.Parse(time.RFC3339, n.CreatedAt)
			if err != nil {
				created = time.Now()
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO notes (id, text, realized, created_at)
				VALUES (?, ?, ?, ?)`,
				id, text, util.BoolToInt(n.Realized), created.UTC().Truncate(time.Second),
			); err != nil {
				return wrapNoteErr("import", id, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}
