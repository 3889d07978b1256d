package services

import (
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// DefaultPhone satisfies backend validation when signup has no phone
const DefaultPhone = "0000000000"

// SignupParams contains parameters for creating an account
type SignupParams struct {
	Department string
	Email      string
	Name       string
	Password   string
	Phone      string
	Position   string
	Role       domain.Role
}

// VerifyOutcome is how a background session check ended
type VerifyOutcome string

const (
	VerifyConfirmed VerifyOutcome = "confirmed" // backend returned the user
	VerifyKept      VerifyOutcome = "kept"      // no answer in time, cached user kept
	VerifyRejected  VerifyOutcome = "rejected"  // session torn down
)

// VerifyResult contains the result of a session check
type VerifyResult struct {
	Err     error // cause when the outcome is not confirmed
	Outcome VerifyOutcome
	User    *domain.User
}

// Selection is the timer form state
type Selection struct {
	Billable     bool
	Description  string
	InlineTask   string
	ManualMode   bool
	ProjectID    string
	TaskID       string
	TrackingType domain.TrackingType
}

// EntryQuery selects which entries List returns
type EntryQuery struct {
	All       bool // every user's entries; admins and managers only
	From      time.Time
	ProjectID string
	Status    domain.EntryStatus
	To        time.Time
}

// IsFiltered reports whether the query narrows the scope beyond own/all
func (q EntryQuery) IsFiltered() bool {
	return q.ProjectID != "" || q.Status != "" || !q.From.IsZero() || !q.To.IsZero()
}

// Matches reports whether e satisfies the query's filters
func (q EntryQuery) Matches(e domain.TimeEntry) bool {
	if q.ProjectID != "" && e.ProjectID != q.ProjectID {
		return false
	}
	if q.Status != "" && e.Status != q.Status {
		return false
	}
	if !q.From.IsZero() && e.StartTime.Before(q.From) {
		return false
	}
	if !q.To.IsZero() && e.StartTime.After(q.To) {
		return false
	}
	return true
}

// ListResult contains entries plus where they came from
type ListResult struct {
	Entries []domain.TimeEntry
	Sample  bool // built-in placeholder data, backend unreachable and nothing cached
	Stale   bool // last synced local copy, backend unreachable
}

// PushResult summarises an explicit sync of offline edits
type PushResult struct {
	Failed int
	Pushed int
}

// DashboardData is everything the dashboard renders on load
type DashboardData struct {
	Entries  ListResult
	Projects []domain.Project
	Timer    *domain.Timer
	User     domain.User
	Warnings []string
}
