package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestCredentials_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	session, err := repo.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	stored := domain.Session{
		Token: "jwt-token",
		User:  domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleManager},
	}
	require.NoError(t, repo.SaveCredentials(ctx, stored))

	session, err = repo.LoadCredentials(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, stored, *session)

	stored.Token = "rotated"
	require.NoError(t, repo.SaveCredentials(ctx, stored))
	session, err = repo.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", session.Token)

	require.NoError(t, repo.ClearCredentials(ctx))
	session, err = repo.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestCredentials_HalfWrittenPairIsNoSession(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.db.Create(&CredentialModel{Name: credentialToken, Value: "orphan"}).Error)

	session, err := repo.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestCredentials_RejectsEmptyToken(t *testing.T) {
	repo := newTestRepository(t)
	require.Error(t, repo.SaveCredentials(context.Background(), domain.Session{User: domain.User{ID: "u1"}}))
}

func TestActiveTimer_SaveGetDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	timer, err := repo.GetActiveTimer(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, timer)

	started := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveActiveTimer(ctx, domain.Timer{
		Billable:     true,
		Description:  "pairing",
		ProjectID:    "p1",
		RemoteID:     "e1",
		StartedAt:    started,
		State:        domain.TimerRunning,
		TaskID:       "t1",
		TrackingType: domain.TrackingDaily,
		UserID:       "u1",
	}))

	timer, err = repo.GetActiveTimer(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, timer)
	assert.Equal(t, "e1", timer.RemoteID)
	assert.True(t, started.Equal(timer.StartedAt))
	assert.Equal(t, domain.TrackingDaily, timer.TrackingType)

	// Upsert keeps one row per user
	timer.RemoteID = "e2"
	require.NoError(t, repo.SaveActiveTimer(ctx, *timer))
	var count int64
	require.NoError(t, repo.db.Model(&ActiveTimerModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.DeleteActiveTimer(ctx, "u1"))
	timer, err = repo.GetActiveTimer(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, timer)
}

func TestEntries_ReplaceAndListByScope(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.ReplaceEntries(ctx, "own:u1", []domain.TimeEntry{
		{ID: "e1", StartTime: base, EndTime: base.Add(time.Hour), Duration: 60},
		{ID: "e2", StartTime: base.Add(2 * time.Hour)},
		{ID: "e2", StartTime: base.Add(3 * time.Hour)},
		{ID: "sample-1", Sample: true},
	}))
	require.NoError(t, repo.ReplaceEntries(ctx, "all", []domain.TimeEntry{{ID: "e9"}}))

	entries, err := repo.ListEntries(ctx, "own:u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].ID, "newest first")
	assert.True(t, entries[1].EndTime.Equal(base.Add(time.Hour)))
	assert.True(t, entries[0].EndTime.IsZero())

	require.NoError(t, repo.ReplaceEntries(ctx, "own:u1", nil))
	entries, err = repo.ListEntries(ctx, "own:u1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = repo.ListEntries(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEntries_UpsertUpdatesEveryScope(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entry := domain.TimeEntry{ID: "e1", Description: "old"}
	require.NoError(t, repo.ReplaceEntries(ctx, "own:u1", []domain.TimeEntry{entry}))
	require.NoError(t, repo.ReplaceEntries(ctx, "all", []domain.TimeEntry{entry}))

	entry.Description = "new"
	entry.Unsynced = true
	require.NoError(t, repo.UpsertEntry(ctx, "own:u1", entry))

	for _, scope := range []string{"own:u1", "all"} {
		entries, err := repo.ListEntries(ctx, scope)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "new", entries[0].Description, scope)
		assert.True(t, entries[0].Unsynced, scope)
	}

	unsynced, err := repo.ListUnsynced(ctx)
	require.NoError(t, err)
	assert.Len(t, unsynced, 1, "one row per entry id")

	require.NoError(t, repo.DeleteEntry(ctx, "e1"))
	unsynced, err = repo.ListUnsynced(ctx)
	require.NoError(t, err)
	assert.Empty(t, unsynced)
}

func TestEntries_SampleNeverPersisted(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertEntry(ctx, "own:u1", domain.TimeEntry{ID: "sample-1", Sample: true}))
	entries, err := repo.ListEntries(ctx, "own:u1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcurrentWriters(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	first, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer first.Close()
	second, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer second.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for i, repo := range []*SQLiteRepository{first, second} {
		wg.Add(1)
		go func(n int, repo *SQLiteRepository) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				assert.NoError(t, repo.UpsertEntry(ctx, "all", domain.TimeEntry{ID: string(rune('a'+n)) + string(rune('0'+j))}))
			}
		}(i, repo)
	}
	wg.Wait()

	entries, err := first.ListEntries(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}
