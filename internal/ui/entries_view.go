package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/theme"
)

const (
	minDescriptionWidth = 12
	unsyncedMarker      = "*"
)

// entryColumns sizes the table to width; the description takes what is left
func entryColumns(width int, withOwner bool) []table.Column {
	cols := []table.Column{
		{Title: "Date", Width: 16},
	}
	if withOwner {
		cols = append(cols, table.Column{Title: "User", Width: 14})
	}
	cols = append(cols,
		table.Column{Title: "Project", Width: 16},
		table.Column{Title: "Task", Width: 16},
		table.Column{Title: "Description", Width: minDescriptionWidth},
		table.Column{Title: "Hours", Width: 7},
		table.Column{Title: "Billable", Width: 8},
		table.Column{Title: "Status", Width: 13},
	)

	used := 0
	descIndex := 0
	for i, c := range cols {
		// cell padding on both sides
		used += c.Width + 2
		if c.Title == "Description" {
			descIndex = i
		}
	}
	if extra := width - used; extra > 0 {
		cols[descIndex].Width += extra
	}
	return cols
}

// entryRows renders entries as plain cells; styling inside cells would
// throw off the table's width calculations
func entryRows(entries []domain.TimeEntry, withOwner bool) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		date := "-"
		if !e.StartTime.IsZero() {
			date = e.StartTime.Local().Format("2006-01-02 15:04")
		}
		status := e.Status.Label()
		if e.Unsynced {
			status = unsyncedMarker + status
		}
		billable := "no"
		if e.Billable {
			billable = "yes"
		}

		row := table.Row{date}
		if withOwner {
			row = append(row, orDash(e.OwnerName))
		}
		row = append(row,
			orDash(firstNonEmpty(e.ProjectName, e.ProjectID)),
			orDash(firstNonEmpty(e.TaskName, e.TaskID)),
			orDash(e.Description),
			domain.FormatMinutes(e.Duration),
			billable,
			status,
		)
		rows = append(rows, row)
	}
	return rows
}

// renderSummary is the line above the entries table
func renderSummary(entries []domain.TimeEntry, allUsers bool) string {
	s := domain.Summarize(entries)
	scope := "My entries"
	if allUsers {
		scope = "All entries"
	}
	return theme.SectionStyle.Render(scope) + theme.LabelStyle.Render(fmt.Sprintf(
		"  %d entries · %s h total · %s h billable",
		s.Count, domain.FormatMinutes(s.TotalMinutes), domain.FormatMinutes(s.BillableMinutes)))
}

// renderEntryDetail shows the selected entry below the table
func renderEntryDetail(e domain.TimeEntry) string {
	var b strings.Builder
	b.WriteString(theme.EntryStatusStyle(e.Status, e.Unsynced).Render(e.Status.Label()))
	if e.Unsynced {
		b.WriteString(theme.WarningStyle.Render(" · changed offline, press S to push"))
	}
	if e.Sample {
		b.WriteString(theme.WarningStyle.Render(" · sample entry"))
	}
	if e.IsManualEntry {
		b.WriteString(theme.LabelStyle.Render(" · manual"))
	}
	if e.TrackingType != "" {
		b.WriteString(theme.LabelStyle.Render(" · " + e.TrackingType.Label()))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
