package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
)

func TestEntryColumns_DescriptionTakesRemainingWidth(t *testing.T) {
	narrow := entryColumns(40, false)
	wide := entryColumns(200, false)

	require.Len(t, narrow, 7)
	assert.Equal(t, minDescriptionWidth, narrow[3].Width)

	total := 0
	for _, c := range wide {
		total += c.Width + 2
	}
	assert.Equal(t, 200, total)

	withOwner := entryColumns(200, true)
	require.Len(t, withOwner, 8)
	assert.Equal(t, "User", withOwner[1].Title)
}

func TestEntryRows(t *testing.T) {
	entries := []domain.TimeEntry{
		{
			Billable:    true,
			Description: "Landing page",
			Duration:    90,
			ID:          "e1",
			OwnerName:   "Ana",
			ProjectName: "Website",
			StartTime:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
			Status:      domain.StatusCompleted,
			TaskName:    "Design",
		},
		{
			Duration:  15,
			ID:        "e2",
			ProjectID: "p2",
			Status:    domain.StatusPending,
			Unsynced:  true,
		},
	}

	rows := entryRows(entries, false)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2026-03-02 09:00", "Website", "Design", "Landing page", "1.30", "yes", "Completed"}, []string(rows[0]))
	assert.Equal(t, []string{"-", "p2", "-", "-", "0.15", "no", "*Pending"}, []string(rows[1]))

	owned := entryRows(entries, true)
	assert.Equal(t, "Ana", owned[0][1])
	assert.Equal(t, "-", owned[1][1])
}

func TestEntryForm_PatchHoldsOnlyChanges(t *testing.T) {
	entry := domain.TimeEntry{ID: "e1", Billable: true, Description: "Landing page", Duration: 60}

	form := NewEntryForm(entry)
	assert.Equal(t, "e1", form.EntryID())
	assert.True(t, form.Patch().IsEmpty())

	form.Description = "Landing page v2"
	form.Duration = " 75 "
	patch := form.Patch()

	require.NotNil(t, patch.Description)
	assert.Equal(t, "Landing page v2", *patch.Description)
	require.NotNil(t, patch.Duration)
	assert.Equal(t, 75, *patch.Duration)
	assert.Nil(t, patch.Billable)

	form.Duration = "abc"
	assert.Nil(t, form.Patch().Duration)
}

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		want     string
	}{
		{"nil", nil, 80, ""},
		{"short", errors.New("boom"), 80, "Error: boom"},
		{"conflict", domain.ErrConflict, 80, "Error: a timer is already running, stop it first"},
		{"wraps", errors.New("one two three four"), 17, "Error: one two\nthree four"},
		{"truncates", errors.New("aaaa bbbb cccc dddd eeee ffff"), 16, "Error: aaaa bbbb\ncccc dddd eee..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplay_NeverExceedsTwoLines(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 100))

	got := formatErrorForDisplay(err, 30)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasSuffix(got, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestHelpContent_HidesDisabledBindings(t *testing.T) {
	keys := NewKeyMap()
	assert.Contains(t, buildHelpContent(&keys), "team roster")

	keys.Team.SetEnabled(false)
	assert.NotContains(t, buildHelpContent(&keys), "team roster")
}
