package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
	portsmocks "github.com/renato0307/punch/internal/ports/mocks"
)

type entryFixture struct {
	api   *portsmocks.MockTimeEntryAPI
	cache *EntryCache
	store *portsmocks.MockEntryStore
}

func newEntryFixture(t *testing.T, user *domain.User, offlineEdits bool) *entryFixture {
	t.Helper()
	f := &entryFixture{
		api:   portsmocks.NewMockTimeEntryAPI(t),
		store: portsmocks.NewMockEntryStore(t),
	}
	f.cache = NewEntryCache(f.api, f.store, staticIdentity{user: user}, newFakeClock(t0), offlineEdits)
	return f
}

func completed(id string, minutes int) domain.TimeEntry {
	return domain.TimeEntry{
		Duration:  minutes,
		EndTime:   t0.Add(time.Duration(minutes) * time.Minute),
		ID:        id,
		OwnerID:   "u1",
		ProjectID: "p1",
		StartTime: t0,
		Status:    domain.StatusCompleted,
	}
}

// seed loads entries into the cache through a successful own-scope list
func (f *entryFixture) seed(t *testing.T, entries ...domain.TimeEntry) {
	t.Helper()
	f.api.EXPECT().ListEntries(mock.Anything, ports.EntryFilter{UserID: "u1"}).Return(entries, nil).Once()
	f.store.EXPECT().ListUnsynced(mock.Anything).Return(nil, nil).Once()
	f.store.EXPECT().ReplaceEntries(mock.Anything, "own:u1", mock.Anything).Return(nil).Once()
	_, err := f.cache.List(context.Background(), EntryQuery{})
	require.NoError(t, err)
}

func TestList_OwnEntriesAreCachedAndNormalized(t *testing.T) {
	f := newEntryFixture(t, employee(), false)
	zero := completed("e1", 0)
	zero.EndTime = t0.Add(95 * time.Second)

	f.api.EXPECT().ListEntries(mock.Anything, ports.EntryFilter{UserID: "u1"}).
		Return([]domain.TimeEntry{zero, completed("e2", 30)}, nil).Once()
	f.store.EXPECT().ListUnsynced(mock.Anything).Return(nil, nil).Once()
	f.store.EXPECT().ReplaceEntries(mock.Anything, "own:u1", mock.MatchedBy(func(entries []domain.TimeEntry) bool {
		return len(entries) == 2
	})).Return(nil).Once()

	result, err := f.cache.List(context.Background(), EntryQuery{})

	require.NoError(t, err)
	assert.False(t, result.Stale)
	assert.False(t, result.Sample)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, 1, result.Entries[0].Duration)
	assert.Equal(t, 31, f.cache.Summary().TotalMinutes)
}

func TestList_FilteredQueryDoesNotReplaceCache(t *testing.T) {
	f := newEntryFixture(t, admin(), false)
	from := t0.Add(-24 * time.Hour)

	f.api.EXPECT().ListEntries(mock.Anything, ports.EntryFilter{From: from, ProjectID: "p1"}).
		Return([]domain.TimeEntry{completed("e1", 10)}, nil).Once()
	f.store.EXPECT().ListUnsynced(mock.Anything).Return(nil, nil).Once()

	result, err := f.cache.List(context.Background(), EntryQuery{All: true, From: from, ProjectID: "p1"})

	require.NoError(t, err)
	assert.Len(t, result.Entries, 1)
}

func TestList_EmployeeCannotListEveryone(t *testing.T) {
	f := newEntryFixture(t, employee(), false)

	_, err := f.cache.List(context.Background(), EntryQuery{All: true})

	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestList_OfflineServesLastSyncedCopy(t *testing.T) {
	f := newEntryFixture(t, employee(), false)
	other := completed("e2", 20)
	other.ProjectID = "p2"

	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).Return(nil, networkError("list time entries")).Once()
	f.store.EXPECT().ListEntries(mock.Anything, "own:u1").
		Return([]domain.TimeEntry{completed("e1", 10), other}, nil).Once()

	result, err := f.cache.List(context.Background(), EntryQuery{ProjectID: "p2"})

	require.NoError(t, err)
	assert.True(t, result.Stale)
	assert.False(t, result.Sample)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "e2", result.Entries[0].ID)
}

func TestList_OfflineWithoutCacheServesSamples(t *testing.T) {
	f := newEntryFixture(t, employee(), false)

	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).Return(nil, networkError("list time entries")).Once()
	f.store.EXPECT().ListEntries(mock.Anything, "own:u1").Return(nil, nil).Once()

	result, err := f.cache.List(context.Background(), EntryQuery{})

	require.NoError(t, err)
	assert.True(t, result.Sample)
	require.NotEmpty(t, result.Entries)
	for _, e := range result.Entries {
		assert.True(t, e.Sample)
		assert.True(t, strings.HasPrefix(e.ID, "sample-"))
	}
	assert.True(t, f.cache.IsSample())
}

func TestList_ServerErrorPropagates(t *testing.T) {
	f := newEntryFixture(t, employee(), false)
	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).
		Return(nil, &domain.Error{Kind: domain.KindServer, Status: 500}).Once()

	_, err := f.cache.List(context.Background(), EntryQuery{})

	assert.True(t, errors.Is(err, domain.ErrServer))
}

func TestList_OverlaysUnsyncedEdits(t *testing.T) {
	f := newEntryFixture(t, employee(), true)
	local := completed("e1", 45)
	local.Description = "edited offline"
	local.Unsynced = true

	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).Return([]domain.TimeEntry{completed("e1", 10)}, nil).Once()
	f.store.EXPECT().ListUnsynced(mock.Anything).Return([]domain.TimeEntry{local}, nil).Once()
	f.store.EXPECT().ReplaceEntries(mock.Anything, "own:u1", mock.Anything).Return(nil).Once()

	result, err := f.cache.List(context.Background(), EntryQuery{})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "edited offline", result.Entries[0].Description)
	assert.Equal(t, 45, result.Entries[0].Duration)
	assert.True(t, result.Entries[0].Unsynced)
}

func TestAdd_IgnoresDuplicateIDs(t *testing.T) {
	f := newEntryFixture(t, employee(), false)
	f.store.EXPECT().UpsertEntry(mock.Anything, "own:u1", mock.Anything).Return(nil).Once()

	assert.True(t, f.cache.Add(completed("e1", 10)))
	assert.False(t, f.cache.Add(completed("e1", 10)))

	assert.Len(t, f.cache.Entries(), 1)
}

func TestAdd_ReplacesSampleEntries(t *testing.T) {
	f := newEntryFixture(t, employee(), false)
	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).Return(nil, networkError("list time entries")).Once()
	f.store.EXPECT().ListEntries(mock.Anything, "own:u1").Return(nil, nil).Once()
	_, err := f.cache.List(context.Background(), EntryQuery{})
	require.NoError(t, err)

	f.store.EXPECT().UpsertEntry(mock.Anything, "own:u1", mock.Anything).Return(nil).Once()
	require.True(t, f.cache.Add(completed("e1", 10)))

	entries := f.cache.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)
	assert.False(t, f.cache.IsSample())
}

func TestUpdate(t *testing.T) {
	description := "Pairing"
	duration := 75

	t.Run("confirmed by backend", func(t *testing.T) {
		f := newEntryFixture(t, employee(), false)
		f.seed(t, completed("e1", 10))

		patch := domain.EntryPatch{Description: &description, Duration: &duration}
		updated := completed("e1", 75)
		updated.Description = description
		f.api.EXPECT().UpdateEntry(mock.Anything, "e1", patch).Return(&updated, nil).Once()
		f.store.EXPECT().UpsertEntry(mock.Anything, "own:u1", mock.MatchedBy(func(e domain.TimeEntry) bool {
			return e.ID == "e1" && !e.Unsynced
		})).Return(nil).Once()

		entry, err := f.cache.Update(context.Background(), "e1", patch)

		require.NoError(t, err)
		assert.Equal(t, 75, entry.Duration)
		assert.Equal(t, "Pairing", f.cache.Entries()[0].Description)
	})

	t.Run("acknowledged without entity", func(t *testing.T) {
		f := newEntryFixture(t, employee(), false)
		f.seed(t, completed("e1", 10))

		patch := domain.EntryPatch{Duration: &duration}
		f.api.EXPECT().UpdateEntry(mock.Anything, "e1", patch).Return(nil, nil).Once()
		f.store.EXPECT().UpsertEntry(mock.Anything, "own:u1", mock.Anything).Return(nil).Once()

		entry, err := f.cache.Update(context.Background(), "e1", patch)

		require.NoError(t, err)
		assert.Equal(t, 75, entry.Duration)
	})

	t.Run("offline edit flagged unsynced", func(t *testing.T) {
		f := newEntryFixture(t, employee(), true)
		f.seed(t, completed("e1", 10))

		patch := domain.EntryPatch{Description: &description}
		f.api.EXPECT().UpdateEntry(mock.Anything, "e1", patch).Return(nil, networkError("update time entry")).Once()
		f.store.EXPECT().UpsertEntry(mock.Anything, "own:u1", mock.MatchedBy(func(e domain.TimeEntry) bool {
			return e.Unsynced && e.Description == description
		})).Return(nil).Once()

		entry, err := f.cache.Update(context.Background(), "e1", patch)

		require.NoError(t, err)
		assert.True(t, entry.Unsynced)
	})

	t.Run("offline edit refused when disabled", func(t *testing.T) {
		f := newEntryFixture(t, employee(), false)
		f.seed(t, completed("e1", 10))

		patch := domain.EntryPatch{Description: &description}
		f.api.EXPECT().UpdateEntry(mock.Anything, "e1", patch).Return(nil, networkError("update time entry")).Once()

		_, err := f.cache.Update(context.Background(), "e1", patch)

		assert.True(t, errors.Is(err, domain.ErrNetwork))
		assert.Equal(t, "", f.cache.Entries()[0].Description)
	})

	t.Run("empty patch", func(t *testing.T) {
		f := newEntryFixture(t, employee(), false)

		_, err := f.cache.Update(context.Background(), "e1", domain.EntryPatch{})

		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("sample entry", func(t *testing.T) {
		f := newEntryFixture(t, employee(), false)

		_, err := f.cache.Update(context.Background(), "sample-1", domain.EntryPatch{Description: &description})

		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name          string
		remoteErr     error
		wantLocalOnly bool
		wantErr       error
		wantRemaining int
	}{
		{name: "confirmed", wantRemaining: 1},
		{name: "offline removes locally", remoteErr: networkError("delete time entry"), wantLocalOnly: true, wantRemaining: 1},
		{name: "server refusal keeps entry", remoteErr: &domain.Error{Kind: domain.KindServer, Status: 403}, wantErr: domain.ErrServer, wantRemaining: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEntryFixture(t, employee(), false)
			f.seed(t, completed("e1", 10), completed("e2", 20))

			f.api.EXPECT().DeleteEntry(mock.Anything, "e1").Return(tt.remoteErr).Once()
			if tt.wantErr == nil {
				f.store.EXPECT().DeleteEntry(mock.Anything, "e1").Return(nil).Once()
			}

			localOnly, err := f.cache.Remove(context.Background(), "e1")

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLocalOnly, localOnly)
			assert.Len(t, f.cache.Entries(), tt.wantRemaining)
		})
	}
}

func TestPushUnsynced(t *testing.T) {
	f := newEntryFixture(t, employee(), true)
	first := completed("e1", 30)
	first.Unsynced = true
	second := completed("e2", 40)
	second.Unsynced = true

	f.store.EXPECT().ListUnsynced(mock.Anything).Return([]domain.TimeEntry{first, second}, nil).Once()
	f.api.EXPECT().UpdateEntry(mock.Anything, "e1", mock.Anything).Return(nil, nil).Once()
	f.api.EXPECT().UpdateEntry(mock.Anything, "e2", mock.Anything).
		Return(nil, &domain.Error{Kind: domain.KindServer, Status: 404}).Once()
	f.store.EXPECT().UpsertEntry(mock.Anything, "own:u1", mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.ID == "e1" && !e.Unsynced
	})).Return(nil).Once()

	result, err := f.cache.PushUnsynced(context.Background())

	require.NoError(t, err)
	assert.Equal(t, PushResult{Failed: 1, Pushed: 1}, result)
}

func TestPushUnsynced_StopsWhenOffline(t *testing.T) {
	f := newEntryFixture(t, employee(), true)
	pending := completed("e1", 30)
	pending.Unsynced = true

	f.store.EXPECT().ListUnsynced(mock.Anything).Return([]domain.TimeEntry{pending, pending}, nil).Once()
	f.api.EXPECT().UpdateEntry(mock.Anything, "e1", mock.Anything).Return(nil, networkError("update time entry")).Once()

	_, err := f.cache.PushUnsynced(context.Background())

	assert.True(t, errors.Is(err, domain.ErrNetwork))
}
