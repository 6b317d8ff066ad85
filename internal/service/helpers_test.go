package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/db"
	"github.com/alexanderramin/skinadvisor/internal/repository"
	"github.com/alexanderramin/skinadvisor/internal/testutil"
)

var testEpoch = time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)

type serviceFixture struct {
	svc      AdvisorSessionService
	sessions *repository.SQLiteAdvisorSessionRepo
	journal  *repository.SQLiteActionLogRepo
}

// setupSessionService wires a session service over an in-memory journal.
// A nil uow uses the real SQLite unit of work.
func setupSessionService(t *testing.T, uow db.UnitOfWork, observers ...UseCaseObserver) serviceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	if uow == nil {
		uow = testutil.NewTestUoW(database)
	}
	sessions := repository.NewSQLiteAdvisorSessionRepo(database)
	journal := repository.NewSQLiteActionLogRepo(database)
	advisor := NewAdvisor(catalog.MustDefault(), testutil.FixedClock(testEpoch, time.Second))
	return serviceFixture{
		svc:      NewSessionService(advisor, sessions, journal, uow, observers...),
		sessions: sessions,
		journal:  journal,
	}
}
