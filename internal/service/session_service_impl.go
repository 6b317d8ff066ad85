package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/db"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/alexanderramin/skinadvisor/internal/intent"
	"github.com/alexanderramin/skinadvisor/internal/repository"
	"github.com/google/uuid"
)

// sessionEntry pairs a live session with its profile. ended is guarded by
// the store's lock.
type sessionEntry struct {
	session app.Session
	store   *ProfileStore
	ended   bool
}

type sessionService struct {
	mu       sync.RWMutex
	live     map[string]*sessionEntry
	advisor  *Advisor
	sessions repository.AdvisorSessionRepo
	journal  repository.ActionLogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewSessionService(
	advisor *Advisor,
	sessions repository.AdvisorSessionRepo,
	journal repository.ActionLogRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AdvisorSessionService {
	return &sessionService{
		live:     make(map[string]*sessionEntry),
		advisor:  advisor,
		sessions: sessions,
		journal:  journal,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      advisor.now,
	}
}

func (s *sessionService) Start(ctx context.Context) (*app.Session, error) {
	sess := app.Session{ID: uuid.New().String(), StartedAt: s.now().UTC()}
	if err := s.sessions.Create(ctx, &sess); err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}

	s.mu.Lock()
	s.live[sess.ID] = &sessionEntry{session: sess, store: NewProfileStore()}
	s.mu.Unlock()

	out := sess
	return &out, nil
}

func (s *sessionService) lookup(id string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.live[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, app.ErrSessionNotFound)
	}
	return entry, nil
}

// Dispatch validates args for name and runs the action against the
// session's profile. The profile lock is held from read to commit and the
// journal entry is written before the new profile is stored.
func (s *sessionService) Dispatch(ctx context.Context, sessionID string, name app.ActionName, args map[string]any) (reply *app.Reply, err error) {
	startedAt := time.Now()
	fields := map[string]any{"session": sessionID, "action": string(name)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dispatch",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var entry *sessionEntry
	entry, err = s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	action, err := s.validate(name, args)
	if err != nil {
		var field, detail string
		if ve, ok := app.AsValidationError(err); ok {
			field, detail = ve.Field, string(ve.Code)
			fields["field"] = field
		}
		if jerr := s.record(ctx, sessionID, name, app.JournalRejected, field, detail); jerr != nil {
			err = errors.Join(err, jerr)
		}
		return nil, err
	}
	fields["action"] = string(action.Name())

	err = entry.store.Transact(func(p domain.UserProfile) (domain.UserProfile, error) {
		if entry.ended {
			return p, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
		}
		next, r := s.advisor.Handle(p, action)
		outcome := app.JournalAccepted
		if r.Outcome == app.OutcomeIncompleteProfile {
			outcome = app.JournalIncomplete
		}
		if err := s.record(ctx, sessionID, action.Name(), outcome, "", ""); err != nil {
			return p, err
		}
		reply = r
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	fields["outcome"] = string(reply.Outcome)
	if reply.Update != nil && len(reply.Update.Conflicts) > 0 {
		fields["conflicts"] = len(reply.Update.Conflicts)
	}
	if reply.Recommendation != nil && len(reply.Recommendation.CatalogGaps) > 0 {
		fields["catalog_gaps"] = fmt.Sprint(reply.Recommendation.CatalogGaps)
	}
	return reply, nil
}

func (s *sessionService) validate(name app.ActionName, args map[string]any) (app.Action, error) {
	resolved, err := intent.ParseActionName(string(name))
	if err != nil {
		return nil, err
	}
	return intent.ValidateAction(resolved, args)
}

func (s *sessionService) record(ctx context.Context, sessionID string, name app.ActionName, outcome app.JournalOutcome, field, detail string) error {
	err := s.journal.Append(ctx, &app.JournalEntry{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Action:    name,
		Outcome:   outcome,
		Field:     field,
		Detail:    detail,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("journaling %s: %w", name, err)
	}
	return nil
}

func (s *sessionService) Profile(ctx context.Context, sessionID string) (domain.UserProfile, error) {
	entry, err := s.lookup(sessionID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return entry.store.Snapshot(), nil
}

func (s *sessionService) History(ctx context.Context, sessionID string) ([]app.JournalEntry, error) {
	if _, err := s.lookup(sessionID); err != nil {
		return nil, err
	}
	entries, err := s.journal.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}

// End drops the session from the registry, purges its journal and clears
// its profile. An action already holding the profile lock finishes first.
// If the purge fails the session stays live.
func (s *sessionService) End(ctx context.Context, sessionID string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"session": sessionID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "end-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	s.mu.Lock()
	entry, ok := s.live[sessionID]
	delete(s.live, sessionID)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}

	err = entry.store.Transact(func(p domain.UserProfile) (domain.UserProfile, error) {
		err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			purged, err := repository.NewSQLiteActionLogRepo(tx).DeleteBySession(ctx, sessionID)
			if err != nil {
				return err
			}
			fields["purged_entries"] = purged
			return repository.NewSQLiteAdvisorSessionRepo(tx).Delete(ctx, sessionID)
		})
		if err != nil {
			return p, fmt.Errorf("ending session: %w", err)
		}
		entry.ended = true
		return domain.UserProfile{}, nil
	})
	if err != nil {
		s.mu.Lock()
		s.live[sessionID] = entry
		s.mu.Unlock()
	}
	return err
}
