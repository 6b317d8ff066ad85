package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/db"
)

// SQLiteAdvisorSessionRepo implements AdvisorSessionRepo.
type SQLiteAdvisorSessionRepo struct {
	db db.DBTX
}

func NewSQLiteAdvisorSessionRepo(db db.DBTX) *SQLiteAdvisorSessionRepo {
	return &SQLiteAdvisorSessionRepo{db: db}
}

func (r *SQLiteAdvisorSessionRepo) Create(ctx context.Context, s *app.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO advisor_sessions (id, started_at) VALUES (?, ?)`,
		s.ID, formatTime(s.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting advisor session: %w", err)
	}
	return nil
}

func (r *SQLiteAdvisorSessionRepo) GetByID(ctx context.Context, id string) (*app.Session, error) {
	var s app.Session
	var startedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, started_at FROM advisor_sessions WHERE id = ?`, id,
	).Scan(&s.ID, &startedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("advisor session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning advisor session: %w", err)
	}
	if s.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the session row. The action log cascades.
func (r *SQLiteAdvisorSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM advisor_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting advisor session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting advisor session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("advisor session: %w", ErrNotFound)
	}
	return nil
}
