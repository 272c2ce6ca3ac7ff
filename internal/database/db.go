package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite connection holding settings and notes.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// one writer at a time
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}

	d := &Database{DB: conn, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			realized INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return d.migrate(ctx)
}

// migrate adds columns introduced after the first release.
func (d *Database) migrate(ctx context.Context) error {
	migrations := []string{
		"ALTER TABLE notes ADD COLUMN realized INTEGER NOT NULL DEFAULT 0",
	}
	for _, m := range migrations {
		if _, err := d.DB.ExecContext(ctx, m); err != nil && !isIgnorableMigrationErr(err) {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func isIgnorableMigrationErr(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}

// withTx runs fn inside a transaction, rolling back on error.
func (d *Database) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Printf("rollback failed: %v", rbErr)
	}
	return err
}
