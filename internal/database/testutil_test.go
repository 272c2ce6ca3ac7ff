package database

import (
	"context"
	"testing"
)

type TestDataBuilder struct {
	t       *testing.T
	ctx     context.Context
	db      *Database
	noteIDs []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithNotes(texts ...string) *TestDataBuilder {
	b.t.Helper()
	for _, text := range texts {
		n, err := b.db.AddNote(b.ctx, text)
		if err != nil {
			b.t.Fatalf("AddNote failed: %v", err)
		}
		b.noteIDs = append(b.noteIDs, n.ID)
	}
	return b
}

func (b *TestDataBuilder) WithSetting(key, value string) *TestDataBuilder {
	b.t.Helper()
	if err := b.db.SetSetting(b.ctx, key, value); err != nil {
		b.t.Fatalf("SetSetting failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) NoteIDs() []string {
	return b.noteIDs
}
