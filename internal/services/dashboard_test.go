package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
	portsmocks "github.com/renato0307/punch/internal/ports/mocks"
)

type dashboardFixture struct {
	api        *portsmocks.MockTimeEntryAPI
	entryStore *portsmocks.MockEntryStore
	projects   *portsmocks.MockProjectAPI
	svc        *DashboardService
	timerStore *portsmocks.MockTimerStore
}

func newDashboardFixture(t *testing.T, user *domain.User) *dashboardFixture {
	t.Helper()
	f := &dashboardFixture{
		api:        portsmocks.NewMockTimeEntryAPI(t),
		entryStore: portsmocks.NewMockEntryStore(t),
		projects:   portsmocks.NewMockProjectAPI(t),
		timerStore: portsmocks.NewMockTimerStore(t),
	}
	identity := staticIdentity{user: user}
	clock := newFakeClock(t0)
	catalog := NewCatalogService(f.projects, portsmocks.NewMockTaskAPI(t), 0)
	entries := NewEntryCache(f.api, f.entryStore, identity, clock, false)
	lock := portsmocks.NewMockProcessLock(t)
	timer := NewTimerService(f.api, catalog, identity, f.timerStore, lock, entries, clock, TimerConfig{})
	f.svc = NewDashboardService(identity, catalog, entries, timer)
	return f
}

func TestDashboardLoad_AdminSeesEveryone(t *testing.T) {
	f := newDashboardFixture(t, admin())

	f.projects.EXPECT().ListProjects(mock.Anything).Return([]domain.Project{{ID: "p1", Name: "Website"}}, nil).Once()
	f.api.EXPECT().ListEntries(mock.Anything, ports.EntryFilter{}).
		Return([]domain.TimeEntry{{ID: "e1", OwnerID: "u1", Status: domain.StatusCompleted}}, nil).Once()
	f.entryStore.EXPECT().ListUnsynced(mock.Anything).Return(nil, nil).Once()
	f.entryStore.EXPECT().ReplaceEntries(mock.Anything, "all", mock.Anything).Return(nil).Once()
	f.timerStore.EXPECT().GetActiveTimer(mock.Anything, "a1").Return(nil, nil).Once()
	f.api.EXPECT().ListEntries(mock.Anything, ports.EntryFilter{Status: domain.StatusInProgress, UserID: "a1"}).
		Return(nil, nil).Once()

	data, err := f.svc.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Admin dashboard", data.User.Role.DashboardTitle())
	assert.Len(t, data.Projects, 1)
	assert.Len(t, data.Entries.Entries, 1)
	assert.Nil(t, data.Timer)
	assert.Empty(t, data.Warnings)
}

func TestDashboardLoad_OfflineDegradesToWarnings(t *testing.T) {
	f := newDashboardFixture(t, employee())

	f.projects.EXPECT().ListProjects(mock.Anything).Return(nil, networkError("list projects")).Once()
	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).Return(nil, networkError("list time entries")).Times(2)
	f.entryStore.EXPECT().ListEntries(mock.Anything, "own:u1").Return(nil, nil).Once()
	f.timerStore.EXPECT().GetActiveTimer(mock.Anything, "u1").Return(nil, nil).Once()

	data, err := f.svc.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, data.Entries.Sample)
	assert.Len(t, data.Warnings, 2)
}

func TestDashboardLoad_ServerErrorFails(t *testing.T) {
	f := newDashboardFixture(t, employee())

	f.projects.EXPECT().ListProjects(mock.Anything).
		Return(nil, &domain.Error{Kind: domain.KindServer, Status: 500}).Once()
	f.api.EXPECT().ListEntries(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.entryStore.EXPECT().ListUnsynced(mock.Anything).Return(nil, nil).Maybe()
	f.entryStore.EXPECT().ReplaceEntries(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.timerStore.EXPECT().GetActiveTimer(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := f.svc.Load(context.Background())

	assert.True(t, errors.Is(err, domain.ErrServer))
}

func TestDashboardLoad_RequiresSession(t *testing.T) {
	f := newDashboardFixture(t, nil)

	_, err := f.svc.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
