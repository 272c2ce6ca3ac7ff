package testutil

import (
	"time"

	"github.com/akyairhashvil/timetell/internal/models"
	"github.com/google/uuid"
)

// NoteBuilder provides fluent API for creating test notes.
type NoteBuilder struct {
	note models.Note
}

func NewNote() *NoteBuilder {
	return &NoteBuilder{
		note: models.Note{
			ID:        uuid.NewString(),
			Text:      "Test Note",
			CreatedAt: time.Now(),
		},
	}
}

func (b *NoteBuilder) WithID(id string) *NoteBuilder {
	b.note.ID = id
	return b
}

func (b *NoteBuilder) WithText(text string) *NoteBuilder {
	b.note.Text = text
	return b
}

func (b *NoteBuilder) Realized() *NoteBuilder {
	b.note.Realized = true
	return b
}

func (b *NoteBuilder) CreatedAt(t time.Time) *NoteBuilder {
	b.note.CreatedAt = t
	return b
}

// DaysOld sets the creation time n days before now.
func (b *NoteBuilder) DaysOld(now time.Time, n int) *NoteBuilder {
	b.note.CreatedAt = now.AddDate(0, 0, -n)
	return b
}

func (b *NoteBuilder) Build() models.Note {
	return b.note
}

// SessionBuilder provides fluent API for creating timer sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{}
}

func (b *SessionBuilder) WithElapsed(seconds int) *SessionBuilder {
	b.session.ElapsedSeconds = seconds
	return b
}

func (b *SessionBuilder) WithMinutes(minutes, seconds int) *SessionBuilder {
	b.session.ElapsedSeconds = minutes*60 + seconds
	return b
}

func (b *SessionBuilder) Running() *SessionBuilder {
	b.session.Running = true
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
