package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/timetell/internal/models"
	"github.com/akyairhashvil/timetell/internal/util"
	"github.com/google/uuid"
)

// AddNote stores a new note and returns it.
func (d *Database) AddNote(ctx context.Context, text string) (models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Note{}, wrapNoteErr("add", "", ErrEmptyNote)
	}
	n := models.Note{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO notes (id, text, realized, created_at) VALUES (?, ?, 0, ?)",
		n.ID, n.Text, n.CreatedAt)
	if err != nil {
		return models.Note{}, wrapNoteErr("add", n.ID, err)
	}
	return n, nil
}

// GetNote retrieves a single note.
func (d *Database) GetNote(ctx context.Context, id string) (models.Note, error) {
	var n models.Note
	var realized int
	err := d.DB.QueryRowContext(ctx,
		"SELECT id, text, realized, created_at FROM notes WHERE id = ?", id).
		Scan(&n.ID, &n.Text, &realized, &n.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return n, wrapNoteErr("get", id, ErrNoteNotFound)
	}
	if err != nil {
		return n, wrapNoteErr("get", id, err)
	}
	n.Realized = util.IntToBool(realized)
	return n, nil
}

// GetNotes retrieves all notes, oldest first.
func (d *Database) GetNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, text, realized, created_at
		FROM notes
		ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, wrapNoteErr("list", "", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var realized int
		if err := rows.Scan(&n.ID, &n.Text, &realized, &n.CreatedAt); err != nil {
			return nil, wrapNoteErr("list", "", err)
		}
		n.Realized = util.IntToBool(realized)
		notes = append(notes, n)
	}
	return notes, wrapNoteErr("list", "", rows.Err())
}

// ToggleNoteRealized flips the realized flag and returns the new value.
func (d *Database) ToggleNoteRealized(ctx context.Context, id string) (bool, error) {
	var realized bool
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var current int
		err := tx.QueryRowContext(ctx, "SELECT realized FROM notes WHERE id = ?", id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoteNotFound
		}
		if err != nil {
			return err
		}
		realized = !util.IntToBool(current)
		_, err = tx.ExecContext(ctx, "UPDATE notes SET realized = ? WHERE id = ?", util.BoolToInt(realized), id)
		return err
	})
	if err != nil {
		return false, wrapNoteErr("toggle", id, err)
	}
	return realized, nil
}

// DeleteNote removes a note.
func (d *Database) DeleteNote(ctx context.Context, id string) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return wrapNoteErr("delete", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wrapNoteErr("delete", id, ErrNoteNotFound)
	}
	return nil
}

// ClearNotes removes every note.
func (d *Database) ClearNotes(ctx context.Context) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM notes")
	return wrapNoteErr("clear", "", err)
}
