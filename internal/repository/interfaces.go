package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/skinadvisor/internal/app"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type AdvisorSessionRepo interface {
	Create(ctx context.Context, s *app.Session) error
	GetByID(ctx context.Context, id string) (*app.Session, error)
	Delete(ctx context.Context, id string) error
}

// ActionLogRepo is the per-session journal of dispatched actions. Entries
// are ordered by a per-session sequence assigned on Append.
type ActionLogRepo interface {
	Append(ctx context.Context, e *app.JournalEntry) error
	ListBySession(ctx context.Context, sessionID string) ([]app.JournalEntry, error)
	DeleteBySession(ctx context.Context, sessionID string) (int64, error)
}
