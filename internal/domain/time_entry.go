package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EntryStatus is the lifecycle status reported by the backend
type EntryStatus string

const (
	StatusInProgress EntryStatus = "in-progress"
	StatusCompleted  EntryStatus = "completed"
	StatusPending    EntryStatus = "pending"
)

// ParseEntryStatus accepts "In Progress", "in-progress", "completed", ...
func ParseEntryStatus(s string) (EntryStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")
	norm = strings.ReplaceAll(norm, "_", "-")
	switch EntryStatus(norm) {
	case StatusInProgress, StatusCompleted, StatusPending:
		return EntryStatus(norm), nil
	}
	return "", fmt.Errorf("unknown entry status %q", s)
}

// Label is the wire/display spelling
func (s EntryStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusPending:
		return "Pending"
	}
	return string(s)
}

// TimeEntry is a persisted record of time spent
type TimeEntry struct {
	Billable      bool
	Description   string
	Duration      int // minutes
	EndTime       time.Time
	ID            string
	IsManualEntry bool
	OwnerID       string
	OwnerName     string
	ProjectID     string
	ProjectName   string
	Sample        bool // built-in placeholder shown when the backend is unreachable
	StartTime     time.Time
	Status        EntryStatus
	TaskID        string
	TaskName      string
	TrackingType  TrackingType
	Unsynced      bool // changed locally, backend not confirmed
}

// DerivedDuration is floor((end-start)/60s), or zero when either end is missing
func (e TimeEntry) DerivedDuration() int {
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return 0
	}
	d := e.EndTime.Sub(e.StartTime)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// Normalize back-fills a zero duration from the timestamps and clamps negatives
func (e TimeEntry) Normalize() TimeEntry {
	if e.Duration < 0 {
		e.Duration = 0
	}
	if e.Duration == 0 {
		e.Duration = e.DerivedDuration()
	}
	return e
}

// EntryPatch holds the mutable fields of an entry; nil means unchanged
type EntryPatch struct {
	Billable    *bool
	Description *string
	Duration    *int
}

// IsEmpty reports whether the patch changes nothing
func (p EntryPatch) IsEmpty() bool {
	return p.Billable == nil && p.Description == nil && p.Duration == nil
}

// Apply returns a copy of e with the patch applied
func (p EntryPatch) Apply(e TimeEntry) TimeEntry {
	if p.Billable != nil {
		e.Billable = *p.Billable
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	return e
}

// ParseManualDuration parses "HH:MM" or "HH:MM:SS" as typed in manual entry mode
func ParseManualDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("duration %q must be HH:MM or HH:MM:SS", s)
	}

	values := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("duration %q must be HH:MM or HH:MM:SS", s)
		}
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("duration %q has a field above 59", s)
		}
		values[i] = n
	}

	d := time.Duration(values[0])*time.Hour +
		time.Duration(values[1])*time.Minute +
		time.Duration(values[2])*time.Second
	if d == 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return d, nil
}

// EntrySummary aggregates a list of entries for the dashboard header
type EntrySummary struct {
	BillableMinutes int
	Count           int
	TotalMinutes    int
}

// Summarize totals the given entries
func Summarize(entries []TimeEntry) EntrySummary {
	var s EntrySummary
	for _, e := range entries {
		e = e.Normalize()
		s.Count++
		s.TotalMinutes += e.Duration
		if e.Billable {
			s.BillableMinutes += e.Duration
		}
	}
	return s
}
