package app

import (
	"context"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// Session is one advisor conversation and the profile it owns.
type Session struct {
	ID        string
	StartedAt time.Time
}

// JournalOutcome records what happened to a dispatched action.
type JournalOutcome string

const (
	JournalAccepted   JournalOutcome = "accepted"
	JournalRejected   JournalOutcome = "rejected"
	JournalIncomplete JournalOutcome = "incomplete"
)

// JournalEntry is one dispatched action in a session's history.
type JournalEntry struct {
	ID        string
	SessionID string
	Action    ActionName
	Outcome   JournalOutcome
	Field     string
	Detail    string
	CreatedAt time.Time
}

type DispatchUseCase interface {
	Dispatch(ctx context.Context, sessionID string, name ActionName, args map[string]any) (*Reply, error)
}

type SessionUseCase interface {
	Start(ctx context.Context) (*Session, error)
	Profile(ctx context.Context, sessionID string) (domain.UserProfile, error)
	History(ctx context.Context, sessionID string) ([]JournalEntry, error)
	End(ctx context.Context, sessionID string) error
}
