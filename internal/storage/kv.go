package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Storage keys, one per persisted entity.
const (
	KeyHunter    = "hunter"
	KeyDaily     = "daily_progress"
	KeyChallenge = "streak_challenge"
	KeyNotes     = "notes"
	KeyRoom      = "hunter_room"
)

// KV is the persistence gateway: keyed JSON records over SQLite.
// Absence is reported as (nil, nil), never as an error.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

func (r *KV) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("record get %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record set %q: %w", key, err)
	}
	return nil
}

func (r *KV) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("record delete %q: %w", key, err)
	}
	return nil
}
