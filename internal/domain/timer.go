package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimerState is the controller state of a user's timer
type TimerState string

const (
	TimerIdle     TimerState = "idle"
	TimerPending  TimerState = "pending"
	TimerRunning  TimerState = "running"
	TimerStopping TimerState = "stopping"
)

// TrackingType is the granularity a timer is tracked at
type TrackingType string

const (
	TrackingHourly  TrackingType = "hourly"
	TrackingDaily   TrackingType = "daily"
	TrackingWeekly  TrackingType = "weekly"
	TrackingMonthly TrackingType = "monthly"
)

// TrackingTypes lists every tracking type in display order
var TrackingTypes = []TrackingType{TrackingHourly, TrackingDaily, TrackingWeekly, TrackingMonthly}

// ParseTrackingType accepts "hourly" as well as the wire form "Hourly"
func ParseTrackingType(s string) (TrackingType, error) {
	t := TrackingType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TrackingTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tracking type %q", s)
}

// Label is the capitalised form used on the wire and in the UI
func (t TrackingType) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Description is the help text shown next to the tracking tabs
func (t TrackingType) Description() string {
	switch t {
	case TrackingDaily:
		return "Track time by the day, for tasks across a day"
	case TrackingWeekly:
		return "Track time by the week, for long-running tasks"
	case TrackingMonthly:
		return "Track time by the month, for big projects"
	default:
		return "Track time by the hour"
	}
}

// Timer is the client-side view of an in-progress tracking session.
// Once RemoteID is set the backend owns StartedAt.
type Timer struct {
	Billable     bool
	Degraded     bool // running locally without backend confirmation
	Description  string
	ProjectID    string
	RemoteID     string
	StartedAt    time.Time
	State        TimerState
	TaskID       string
	TrackingType TrackingType
	UserID       string
}

// IsRunning reports whether the timer is counting
func (t *Timer) IsRunning() bool {
	return t != nil && (t.State == TimerRunning || t.State == TimerStopping)
}

// Elapsed is always derived from the start timestamp, never accumulated
func (t *Timer) Elapsed(now time.Time) time.Duration {
	if t == nil || t.StartedAt.IsZero() {
		return 0
	}
	d := now.Sub(t.StartedAt)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// FormatClock renders seconds as HH:MM:SS, clamping negatives to zero
func FormatClock(d time.Duration) string {
	seconds := int64(d / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// FormatMinutes renders minutes as H.MM for entry tables
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d.%02d", minutes/60, minutes%60)
}
