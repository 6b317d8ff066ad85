package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/db"
)

// SQLiteActionLogRepo implements ActionLogRepo.
type SQLiteActionLogRepo struct {
	db db.DBTX
}

func NewSQLiteActionLogRepo(db db.DBTX) *SQLiteActionLogRepo {
	return &SQLiteActionLogRepo{db: db}
}

// Append inserts e with the next sequence number for its session.
func (r *SQLiteActionLogRepo) Append(ctx context.Context, e *app.JournalEntry) error {
	query := `INSERT INTO action_log (id, session_id, seq, action, outcome, field, detail, created_at)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?
		FROM action_log WHERE session_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.SessionID,
		string(e.Action),
		string(e.Outcome),
		e.Field,
		e.Detail,
		formatTime(e.CreatedAt),
		e.SessionID,
	)
	if err != nil {
		return fmt.Errorf("appending action log entry: %w", err)
	}
	return nil
}

func (r *SQLiteActionLogRepo) ListBySession(ctx context.Context, sessionID string) ([]app.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, action, outcome, field, detail, created_at
		FROM action_log WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing action log: %w", err)
	}
	defer rows.Close()

	entries := []app.JournalEntry{}
	for rows.Next() {
		var e app.JournalEntry
		var action, outcome, createdAt string
		if err := rows.Scan(&e.ID, &e.SessionID, &action, &outcome, &e.Field, &e.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning action log entry: %w", err)
		}
		e.Action = app.ActionName(action)
		e.Outcome = app.JournalOutcome(outcome)
		if e.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating action log: %w", err)
	}
	return entries, nil
}

// DeleteBySession purges a session's journal and reports how many entries
// were removed.
func (r *SQLiteActionLogRepo) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM action_log WHERE session_id = ?`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("purging action log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purging action log: %w", err)
	}
	return n, nil
}
