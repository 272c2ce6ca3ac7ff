package database

import (
	"context"
	"database/sql"
	"strconv"
)

// GetSetting returns the stored value for key and whether it exists.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || !value.Valid {
		return "", false
	}
	return value.String, true
}

// SetSetting inserts or replaces the value for key.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

// IncrementCounter adds one to an integer setting and returns the new value.
// Missing or non-numeric values count as zero.
func (d *Database) IncrementCounter(ctx context.Context, key string) (int, error) {
	var next int
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var raw sql.NullString
		err := tx.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		current, convErr := strconv.Atoi(raw.String)
		if convErr != nil {
			current = 0
		}
		next = current + 1
		_, err = tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, strconv.Itoa(next))
		return err
	})
	if err != nil {
		return 0, wrapSettingErr("increment", key, err)
	}
	return next, nil
}

// GetBoolSetting reads a boolean setting, returning def when unset or invalid.
func (d *Database) GetBoolSetting(ctx context.Context, key string, def bool) bool {
	raw, ok := d.GetSetting(ctx, key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
