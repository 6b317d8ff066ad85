package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisorSessionRepo_CreateGetDelete(t *testing.T) {
	repo := NewSQLiteAdvisorSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	started := time.Date(2026, 3, 1, 9, 30, 0, 123, time.UTC)
	require.NoError(t, repo.Create(ctx, &app.Session{ID: "s1", StartedAt: started}))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.True(t, started.Equal(got.StartedAt))

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdvisorSessionRepo_DeleteMissing(t *testing.T) {
	repo := NewSQLiteAdvisorSessionRepo(testutil.NewTestDB(t))
	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdvisorSessionRepo_DuplicateID(t *testing.T) {
	repo := NewSQLiteAdvisorSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	s := &app.Session{ID: "dup", StartedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, s))
	assert.Error(t, repo.Create(ctx, s))
}
