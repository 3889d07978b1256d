package ui

import (
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/services"
)

// Clock and polling messages

// tickMsg re-renders the clock; it never touches timer state
type tickMsg time.Time

// refreshMsg asks for a dashboard reload on the refresh interval
type refreshMsg struct{}

// sessionClearedMsg is delivered when the backend rejected the session
type sessionClearedMsg struct{}

// Results of commands that ran off the event loop

type dashboardLoadedMsg struct {
	data services.DashboardData
	err  error
}

type entryRemovedMsg struct {
	id        string
	localOnly bool
	err       error
}

type entryUpdatedMsg struct {
	entry *domain.TimeEntry
	err   error
}

type loggedInMsg struct {
	user *domain.User
	err  error
}

type manualSavedMsg struct {
	entry *domain.TimeEntry
	err   error
}

type syncedMsg struct {
	result services.PushResult
	err    error
}

type tasksLoadedMsg struct {
	projectID string
	tasks     []domain.Task
	err       error
}

type teamLoadedMsg struct {
	members []domain.TeamMember
	err     error
}

type timerStartedMsg struct {
	timer *domain.Timer
	err   error
}

type timerStoppedMsg struct {
	entry *domain.TimeEntry
	err   error
}

type verifiedMsg struct {
	result services.VerifyResult
	err    error
}

type projectsLoadedMsg struct {
	manual   bool
	projects []domain.Project
	err      error
}
