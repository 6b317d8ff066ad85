package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the journal schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS advisor_sessions (
		id         TEXT PRIMARY KEY,
		started_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS action_log (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES advisor_sessions(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		action     TEXT NOT NULL,
		outcome    TEXT NOT NULL
		           CHECK(outcome IN ('accepted','rejected','incomplete')),
		field      TEXT NOT NULL DEFAULT '',
		detail     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		UNIQUE(session_id, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_action_log_session ON action_log(session_id, seq)`,
}
