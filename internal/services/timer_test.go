package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
	portsmocks "github.com/renato0307/punch/internal/ports/mocks"
)

type timerFixture struct {
	api   *portsmocks.MockTimeEntryAPI
	clock *fakeClock
	lock  *portsmocks.MockProcessLock
	sink  *recordingSink
	store *portsmocks.MockTimerStore
	svc   *TimerService
	tasks *portsmocks.MockTaskAPI
}

func newTimerFixture(t *testing.T, cfg TimerConfig) *timerFixture {
	t.Helper()
	f := &timerFixture{
		api:   portsmocks.NewMockTimeEntryAPI(t),
		clock: newFakeClock(t0),
		lock:  portsmocks.NewMockProcessLock(t),
		sink:  &recordingSink{},
		store: portsmocks.NewMockTimerStore(t),
		tasks: portsmocks.NewMockTaskAPI(t),
	}
	allowLock(f.lock)
	catalog := NewCatalogService(portsmocks.NewMockProjectAPI(t), f.tasks, 0)
	f.svc = NewTimerService(f.api, catalog, staticIdentity{user: employee()}, f.store, f.lock, f.sink, f.clock, cfg)
	return f
}

// selectProjectAndTask fills the form with project p1 and task t1
func (f *timerFixture) selectProjectAndTask(t *testing.T) {
	t.Helper()
	f.tasks.EXPECT().ListTasks(mock.Anything, "p1").
		Return([]domain.Task{{ID: "t1", Name: "Design", ProjectID: "p1"}}, nil).Once()
	_, err := f.svc.SelectProject(context.Background(), "p1")
	require.NoError(t, err)
	require.NoError(t, f.svc.SelectTask("t1"))
}

// startRunning drives the fixture into a running timer with remote id e1
func (f *timerFixture) startRunning(t *testing.T) {
	t.Helper()
	f.selectProjectAndTask(t)
	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
	f.api.EXPECT().StartTimer(mock.Anything, mock.Anything).
		Return(&domain.TimeEntry{ID: "e1", StartTime: t0, Status: domain.StatusInProgress}, nil).Once()
	f.store.EXPECT().SaveActiveTimer(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.svc.Start(context.Background())
	require.NoError(t, err)
}

func TestStart_ValidationNeverReachesNetwork(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *timerFixture, t *testing.T)
		message string
	}{
		{
			name:    "no project",
			prepare: func(*timerFixture, *testing.T) {},
			message: "please select a project",
		},
		{
			name: "no task",
			prepare: func(f *timerFixture, t *testing.T) {
				f.tasks.EXPECT().ListTasks(mock.Anything, "p1").Return(nil, nil)
				_, err := f.svc.SelectProject(context.Background(), "p1")
				require.NoError(t, err)
			},
			message: "please select a task or enter a new task name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTimerFixture(t, TimerConfig{})
			tt.prepare(f, t)

			timer, err := f.svc.Start(context.Background())

			require.Error(t, err)
			assert.Nil(t, timer)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, domain.TimerIdle, f.svc.State())
		})
	}
}

func TestStartStop_ProducesNormalizedEntry(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.selectProjectAndTask(t)
	f.svc.SetDescription("Homepage")
	f.svc.SetBillable(true)

	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
	f.api.EXPECT().StartTimer(mock.Anything, mock.MatchedBy(func(req ports.StartTimerRequest) bool {
		return req.ProjectID == "p1" && req.TaskID == "t1" && req.Description == "Homepage" &&
			req.Billable && req.UserID == "u1" && req.TrackingType == domain.TrackingHourly
	})).Return(&domain.TimeEntry{ID: "e1", StartTime: t0, Status: domain.StatusInProgress}, nil).Once()
	f.store.EXPECT().SaveActiveTimer(mock.Anything, mock.MatchedBy(func(timer domain.Timer) bool {
		return timer.RemoteID == "e1" && timer.StartedAt.Equal(t0)
	})).Return(nil).Once()

	timer, err := f.svc.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TimerRunning, timer.State)
	assert.Equal(t, "Stop", f.svc.ButtonLabel())

	f.clock.Advance(125 * time.Second)
	assert.Equal(t, "00:02:05", f.svc.Display(f.clock.Now()))
	assert.Equal(t, "00:02:05", f.svc.Display(f.clock.Now()), "reading elapsed twice must not drift")

	f.api.EXPECT().StopTimer(mock.Anything, "e1").
		Return(&domain.TimeEntry{
			EndTime:   t0.Add(125 * time.Second),
			ID:        "e1",
			StartTime: t0,
			Status:    domain.StatusCompleted,
		}, nil).Once()
	f.store.EXPECT().DeleteActiveTimer(mock.Anything, "u1").Return(nil).Once()

	entry, err := f.svc.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Duration, "duration is floor of elapsed minutes")
	assert.True(t, entry.Billable)
	assert.Equal(t, "p1", entry.ProjectID)
	assert.Equal(t, "t1", entry.TaskID)
	assert.Equal(t, "Homepage", entry.Description)
	assert.Equal(t, "u1", entry.OwnerID)
	assert.Equal(t, domain.TrackingHourly, entry.TrackingType)
	assert.Equal(t, domain.TimerIdle, f.svc.State())
	assert.Nil(t, f.svc.Active())

	sel := f.svc.Selection()
	assert.Empty(t, sel.ProjectID)
	assert.Empty(t, sel.TaskID)
	assert.Empty(t, sel.Description)
	assert.False(t, sel.Billable)
	assert.Equal(t, domain.TrackingHourly, sel.TrackingType)

	require.Len(t, f.sink.Entries(), 1)
	assert.Equal(t, "e1", f.sink.Entries()[0].ID)
	assert.True(t, f.sink.Entries()[0].Billable)
	assert.Equal(t, "Homepage", f.sink.Entries()[0].Description)
}

func TestStop_ResponseFieldsWinOverTimer(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.startRunning(t)

	f.api.EXPECT().StopTimer(mock.Anything, "e1").
		Return(&domain.TimeEntry{
			Description: "Edited on the web",
			EndTime:     t0.Add(time.Hour),
			ID:          "e1",
			ProjectID:   "p9",
			Status:      domain.StatusCompleted,
		}, nil).Once()
	f.store.EXPECT().DeleteActiveTimer(mock.Anything, "u1").Return(nil).Once()

	entry, err := f.svc.Stop(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Edited on the web", entry.Description)
	assert.Equal(t, "p9", entry.ProjectID)
	assert.Equal(t, "t1", entry.TaskID)
	assert.True(t, entry.StartTime.Equal(t0))
	assert.Equal(t, 60, entry.Duration)
}

func TestStart_ConflictLeavesRunningTimerUntouched(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.startRunning(t)

	before := f.svc.Active()
	require.NoError(t, f.svc.SelectTask("t1"))

	timer, err := f.svc.Start(context.Background())

	require.Error(t, err)
	assert.Nil(t, timer)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, before, f.svc.Active())
}

func TestStart_AdoptsTimerStartedByAnotherProcess(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.selectProjectAndTask(t)

	other := &domain.Timer{
		ProjectID: "p2",
		RemoteID:  "e7",
		StartedAt: t0.Add(-time.Hour),
		State:     domain.TimerRunning,
		TaskID:    "t7",
		UserID:    "u1",
	}
	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(other, nil).Once()

	_, err := f.svc.Start(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	active := f.svc.Active()
	require.NotNil(t, active)
	assert.Equal(t, "e7", active.RemoteID)
	assert.True(t, active.StartedAt.Equal(t0.Add(-time.Hour)))
}

func TestStart_RemoteFailureReturnsToIdle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"conflict", &domain.Error{Kind: domain.KindConflict, Status: 409}, domain.ErrConflict},
		{"server", &domain.Error{Kind: domain.KindServer, Status: 500}, domain.ErrServer},
		{"network without degraded mode", networkError("start timer"), domain.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTimerFixture(t, TimerConfig{})
			f.selectProjectAndTask(t)
			f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
			f.api.EXPECT().StartTimer(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			_, err := f.svc.Start(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.Equal(t, domain.TimerIdle, f.svc.State())
			assert.Empty(t, f.sink.Entries())
			assert.Equal(t, "t1", f.svc.Selection().TaskID, "form survives a failed start")
		})
	}
}

func TestStart_DegradedModeRunsLocally(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{DegradedMode: true})
	f.selectProjectAndTask(t)
	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
	f.api.EXPECT().StartTimer(mock.Anything, mock.Anything).Return(nil, networkError("start timer")).Once()
	f.store.EXPECT().SaveActiveTimer(mock.Anything, mock.MatchedBy(func(timer domain.Timer) bool {
		return timer.Degraded && timer.RemoteID == ""
	})).Return(nil).Once()

	timer, err := f.svc.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, timer.Degraded)
	assert.True(t, timer.StartedAt.Equal(t0))

	f.clock.Advance(90 * time.Minute)
	f.api.EXPECT().CreateEntry(mock.Anything, mock.MatchedBy(func(req ports.CreateEntryRequest) bool {
		return req.Duration == 90 && req.StartTime.Equal(t0) && !req.IsManualEntry
	})).Return(&domain.TimeEntry{ID: "e9", Duration: 90}, nil).Once()
	f.store.EXPECT().DeleteActiveTimer(mock.Anything, "u1").Return(nil).Once()

	entry, err := f.svc.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "e9", entry.ID)
}

func TestStart_CreatesInlineTaskFirst(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.tasks.EXPECT().ListTasks(mock.Anything, "p1").Return(nil, nil).Once()
	_, err := f.svc.SelectProject(context.Background(), "p1")
	require.NoError(t, err)
	f.svc.SetInlineTask("  Review  ")

	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
	f.tasks.EXPECT().CreateTask(mock.Anything, ports.CreateTaskRequest{Name: "Review", ProjectID: "p1"}).
		Return(&domain.Task{ID: "t9", Name: "Review", ProjectID: "p1"}, nil).Once()
	f.api.EXPECT().StartTimer(mock.Anything, mock.MatchedBy(func(req ports.StartTimerRequest) bool {
		return req.TaskID == "t9"
	})).Return(&domain.TimeEntry{ID: "e1", StartTime: t0}, nil).Once()
	f.store.EXPECT().SaveActiveTimer(mock.Anything, mock.Anything).Return(nil).Once()

	timer, err := f.svc.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "t9", timer.TaskID)
	assert.Equal(t, "t9", f.svc.Selection().TaskID)
	assert.Empty(t, f.svc.Selection().InlineTask)
}

func TestSelectProject_StaleResultIsDiscarded(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})

	fetching := make(chan struct{})
	release := make(chan struct{})
	f.tasks.EXPECT().ListTasks(mock.Anything, "p1").
		RunAndReturn(func(context.Context, string) ([]domain.Task, error) {
			close(fetching)
			<-release
			return []domain.Task{{ID: "t1", ProjectID: "p1"}}, nil
		}).Once()
	f.tasks.EXPECT().ListTasks(mock.Anything, "p2").
		Return([]domain.Task{{ID: "t2", ProjectID: "p2"}}, nil).Once()

	var (
		wg       sync.WaitGroup
		staleErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, staleErr = f.svc.SelectProject(context.Background(), "p1")
	}()

	<-fetching
	tasks, err := f.svc.SelectProject(context.Background(), "p2")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	close(release)
	wg.Wait()

	assert.ErrorIs(t, staleErr, domain.ErrStaleSelection)
	assert.Equal(t, "p2", f.svc.Selection().ProjectID)
	require.Len(t, f.svc.Tasks(), 1)
	assert.Equal(t, "t2", f.svc.Tasks()[0].ID)
}

func TestSelectTask_RejectsTaskOfAnotherProject(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.selectProjectAndTask(t)

	err := f.svc.SelectTask("t-other")

	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "t1", f.svc.Selection().TaskID)
}

func TestStop_FailureKeepsTimerRunning(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.startRunning(t)

	f.api.EXPECT().StopTimer(mock.Anything, "e1").Return(nil, networkError("stop timer")).Once()

	entry, err := f.svc.Stop(context.Background())

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, domain.TimerRunning, f.svc.State())
	assert.Empty(t, f.sink.Entries())
}

func TestStop_WithoutTimer(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})

	_, err := f.svc.Stop(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoActiveTimer)
}

func TestSaveManual_RecordsCompletedEntry(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.selectProjectAndTask(t)
	f.svc.SetManualMode(true)
	assert.Equal(t, "Save", f.svc.ButtonLabel())

	f.api.EXPECT().CreateEntry(mock.Anything, mock.MatchedBy(func(req ports.CreateEntryRequest) bool {
		return req.IsManualEntry &&
			req.Duration == 150 &&
			req.EndTime.Equal(t0) &&
			req.StartTime.Equal(t0.Add(-150*time.Minute))
	})).Return(&domain.TimeEntry{
		Duration:  150,
		EndTime:   t0,
		ID:        "m1",
		StartTime: t0.Add(-150 * time.Minute),
	}, nil).Once()

	entry, err := f.svc.SaveManual(context.Background(), "2:30:00")

	require.NoError(t, err)
	assert.Equal(t, 150, entry.Duration)
	assert.True(t, entry.IsManualEntry)
	assert.Equal(t, domain.TimerIdle, f.svc.State())
	require.Len(t, f.sink.Entries(), 1)
	assert.True(t, f.svc.Selection().ManualMode, "manual mode survives the form reset")
}

func TestSaveManual_InvalidDuration(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.selectProjectAndTask(t)

	for _, input := range []string{"", "2", "1:75", "0:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := f.svc.SaveManual(context.Background(), input)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestSaveManual_RejectedWhileTimerRuns(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.startRunning(t)
	f.svc.SetManualMode(true)

	entry, err := f.svc.SaveManual(context.Background(), "1:00")

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, domain.TimerRunning, f.svc.State())
	assert.Empty(t, f.sink.Entries())
	f.api.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
}

func TestStart_RejectedInManualMode(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.selectProjectAndTask(t)
	f.svc.SetManualMode(true)

	_, err := f.svc.Start(context.Background())

	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestRestore(t *testing.T) {
	serverStart := t0.Add(-40 * time.Minute)
	localRemote := &domain.Timer{
		RemoteID:  "e1",
		StartedAt: t0.Add(-10 * time.Minute),
		State:     domain.TimerRunning,
		UserID:    "u1",
	}

	tests := []struct {
		name       string
		local      *domain.Timer
		remote     []domain.TimeEntry
		remoteErr  error
		setup      func(store *portsmocks.MockTimerStore)
		wantRemote string
		wantStart  time.Time
	}{
		{
			name:  "server entry is adopted",
			local: nil,
			remote: []domain.TimeEntry{
				{ID: "e5", OwnerID: "u1", ProjectID: "p1", StartTime: serverStart, Status: domain.StatusInProgress},
			},
			setup: func(store *portsmocks.MockTimerStore) {
				store.EXPECT().SaveActiveTimer(mock.Anything, mock.MatchedBy(func(timer domain.Timer) bool {
					return timer.RemoteID == "e5"
				})).Return(nil).Once()
			},
			wantRemote: "e5",
			wantStart:  serverStart,
		},
		{
			name:  "server start time wins over local",
			local: &domain.Timer{RemoteID: "e5", StartedAt: t0, State: domain.TimerRunning, UserID: "u1"},
			remote: []domain.TimeEntry{
				{ID: "e5", StartTime: serverStart, Status: domain.StatusInProgress},
			},
			setup: func(store *portsmocks.MockTimerStore) {
				store.EXPECT().SaveActiveTimer(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantRemote: "e5",
			wantStart:  serverStart,
		},
		{
			name:   "timer stopped elsewhere is cleared",
			local:  localRemote,
			remote: nil,
			setup: func(store *portsmocks.MockTimerStore) {
				store.EXPECT().DeleteActiveTimer(mock.Anything, "u1").Return(nil).Once()
			},
		},
		{
			name:       "unreachable server keeps local copy",
			local:      localRemote,
			remoteErr:  networkError("list time entries"),
			wantRemote: "e1",
			wantStart:  localRemote.StartedAt,
		},
		{
			name: "nothing anywhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTimerFixture(t, TimerConfig{})
			f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(tt.local, nil).Once()
			f.api.EXPECT().ListEntries(mock.Anything, ports.EntryFilter{Status: domain.StatusInProgress, UserID: "u1"}).
				Return(tt.remote, tt.remoteErr).Once()
			if tt.setup != nil {
				tt.setup(f.store)
			}

			timer, err := f.svc.Restore(context.Background())

			require.NoError(t, err)
			if tt.wantRemote == "" {
				assert.Nil(t, timer)
				assert.Equal(t, domain.TimerIdle, f.svc.State())
				return
			}
			require.NotNil(t, timer)
			assert.Equal(t, tt.wantRemote, timer.RemoteID)
			assert.True(t, timer.StartedAt.Equal(tt.wantStart))
			assert.Equal(t, domain.TimerRunning, f.svc.State())
		})
	}
}

func TestRestore_ReloadShowsServerElapsed(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	started := t0.Add(-(time.Hour + 5*time.Minute + 7*time.Second))

	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).
		Return([]domain.TimeEntry{{ID: "e1", StartTime: started, Status: domain.StatusInProgress}}, nil).Once()
	f.store.EXPECT().SaveActiveTimer(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.svc.Restore(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "01:05:07", f.svc.Display(f.clock.Now()))
}

// blockingList makes ListEntries wait until release is closed; entered is
// closed once the call is in flight
func blockingList(api *portsmocks.MockTimeEntryAPI, entries []domain.TimeEntry) (entered, release chan struct{}) {
	entered = make(chan struct{})
	release = make(chan struct{})
	api.EXPECT().ListEntries(mock.Anything, ports.EntryFilter{Status: domain.StatusInProgress, UserID: "u1"}).
		RunAndReturn(func(context.Context, ports.EntryFilter) ([]domain.TimeEntry, error) {
			close(entered)
			<-release
			return entries, nil
		}).Once()
	return entered, release
}

func TestRestore_StopDuringReconcileWins(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.startRunning(t)

	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").
		Return(&domain.Timer{RemoteID: "e1", StartedAt: t0, State: domain.TimerRunning, UserID: "u1"}, nil).Once()
	entered, release := blockingList(f.api, []domain.TimeEntry{
		{ID: "e1", OwnerID: "u1", StartTime: t0, Status: domain.StatusInProgress},
	})

	var wg sync.WaitGroup
	wg.Add(1)
	var restoreErr error
	go func() {
		defer wg.Done()
		_, restoreErr = f.svc.Restore(context.Background())
	}()
	<-entered

	f.api.EXPECT().StopTimer(mock.Anything, "e1").
		Return(&domain.TimeEntry{EndTime: t0.Add(time.Minute), ID: "e1", StartTime: t0, Status: domain.StatusCompleted}, nil).Once()
	f.store.EXPECT().DeleteActiveTimer(mock.Anything, "u1").Return(nil).Once()
	_, err := f.svc.Stop(context.Background())
	require.NoError(t, err)

	close(release)
	wg.Wait()

	require.NoError(t, restoreErr)
	assert.Equal(t, domain.TimerIdle, f.svc.State())
	assert.Nil(t, f.svc.Active())
}

func TestRestore_StartDuringReconcileWins(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	f.selectProjectAndTask(t)

	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
	entered, release := blockingList(f.api, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	var restoreErr error
	go func() {
		defer wg.Done()
		_, restoreErr = f.svc.Restore(context.Background())
	}()
	<-entered

	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()
	f.api.EXPECT().StartTimer(mock.Anything, mock.Anything).
		Return(&domain.TimeEntry{ID: "e2", StartTime: t0, Status: domain.StatusInProgress}, nil).Once()
	f.store.EXPECT().SaveActiveTimer(mock.Anything, mock.Anything).Return(nil).Once()
	_, err := f.svc.Start(context.Background())
	require.NoError(t, err)

	close(release)
	wg.Wait()

	require.NoError(t, restoreErr)
	assert.Equal(t, domain.TimerRunning, f.svc.State())
	require.NotNil(t, f.svc.Active())
	assert.Equal(t, "e2", f.svc.Active().RemoteID)
}

func TestRestore_HoldsTimerLock(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	lock := portsmocks.NewMockProcessLock(t)
	f.svc.lock = lock

	held := false
	lock.EXPECT().Lock(mock.Anything).
		RunAndReturn(func(context.Context) (func() error, error) {
			held = true
			return func() error { held = false; return nil }, nil
		}).Once()
	f.store.EXPECT().GetActiveTimer(mock.Anything, "u1").
		RunAndReturn(func(context.Context, string) (*domain.Timer, error) {
			assert.True(t, held, "store read outside the timer lock")
			return &domain.Timer{RemoteID: "e1", StartedAt: t0, State: domain.TimerRunning, UserID: "u1"}, nil
		}).Once()
	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.store.EXPECT().DeleteActiveTimer(mock.Anything, "u1").
		RunAndReturn(func(context.Context, string) error {
			assert.True(t, held, "store write outside the timer lock")
			return nil
		}).Once()

	_, err := f.svc.Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, held)
}

func TestRestore_LockFailureKeepsState(t *testing.T) {
	f := newTimerFixture(t, TimerConfig{})
	lock := portsmocks.NewMockProcessLock(t)
	f.svc.lock = lock
	lock.EXPECT().Lock(mock.Anything).Return(nil, errors.New("resource busy")).Once()

	timer, err := f.svc.Restore(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire timer lock")
	assert.Nil(t, timer)
	assert.Equal(t, domain.TimerIdle, f.svc.State())
}
