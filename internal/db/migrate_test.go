package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTablesAndIndex(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"advisor_sessions", "action_log", "idx_action_log_session"} {
		var got string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE name = ?`, name).Scan(&got)
		require.NoError(t, err, "%s should exist", name)
		assert.Equal(t, name, got)
	}
}

func TestMigrate_OutcomeConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO advisor_sessions (id, started_at) VALUES ('s1', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO action_log (id, session_id, seq, action, outcome, created_at)
		VALUES ('a1', 's1', 1, 'getRecommendations', 'exploded', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown outcome must violate the CHECK constraint")
}

func TestMigrate_CascadeDeletesLog(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO advisor_sessions (id, started_at) VALUES ('s1', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO action_log (id, session_id, seq, action, outcome, created_at)
		VALUES ('a1', 's1', 1, 'getRecommendations', 'accepted', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM advisor_sessions WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM action_log`).Scan(&n))
	assert.Zero(t, n)
}
