package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerElapsed_DerivedFromStart(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	timer := &Timer{StartedAt: start, State: TimerRunning}

	assert.Equal(t, 5*time.Second, timer.Elapsed(start.Add(5*time.Second)))
	assert.Equal(t, time.Hour+2*time.Minute, timer.Elapsed(start.Add(time.Hour+2*time.Minute+300*time.Millisecond)))
}

func TestTimerElapsed_NoDriftBetweenReads(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	timer := &Timer{StartedAt: start, State: TimerRunning}

	t1 := start.Add(7 * time.Second)
	// Any number of intermediate reads must not affect later ones
	for i := 0; i < 50; i++ {
		_ = timer.Elapsed(t1.Add(time.Duration(i) * time.Second))
	}
	t2 := t1.Add(93 * time.Second)

	assert.Equal(t, t2.Sub(t1), timer.Elapsed(t2)-timer.Elapsed(t1))
}

func TestTimerElapsed_ClampsClockSkew(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	timer := &Timer{StartedAt: start, State: TimerRunning}

	assert.Equal(t, time.Duration(0), timer.Elapsed(start.Add(-time.Minute)))

	var nilTimer *Timer
	assert.Equal(t, time.Duration(0), nilTimer.Elapsed(start))
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{0, "00:00:00"},
		{5 * time.Second, "00:00:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{101 * time.Hour, "101:00:00"},
		{-4 * time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.in))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "2.30", FormatMinutes(150))
	assert.Equal(t, "0.05", FormatMinutes(5))
	assert.Equal(t, "0.00", FormatMinutes(-3))
}

func TestParseTrackingType(t *testing.T) {
	tt, err := ParseTrackingType("Weekly")
	require.NoError(t, err)
	assert.Equal(t, TrackingWeekly, tt)
	assert.Equal(t, "Weekly", tt.Label())

	_, err = ParseTrackingType("yearly")
	require.Error(t, err)
}

func TestTimerIsRunning(t *testing.T) {
	var nilTimer *Timer
	assert.False(t, nilTimer.IsRunning())
	assert.False(t, (&Timer{State: TimerPending}).IsRunning())
	assert.True(t, (&Timer{State: TimerRunning}).IsRunning())
	assert.True(t, (&Timer{State: TimerStopping}).IsRunning())
}
