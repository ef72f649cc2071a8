package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// The engine persists one JSON record per logical key (hunter profile,
// daily missions, streak challenge, notes, hunter room). A single keyed
// table keeps the persistence boundary to plain get/set.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
