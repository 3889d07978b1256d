package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/punch/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	RoleTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginTop(1)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Timer panel styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(0, 1)

	TimerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSubtle).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)
)

// Notice styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// TimerStateStyle colors the timer label by controller state
func TimerStateStyle(state domain.TimerState, degraded bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case degraded:
		return style.Foreground(ColorDegraded)
	case state == domain.TimerRunning || state == domain.TimerStopping:
		return style.Foreground(ColorRunning)
	case state == domain.TimerPending:
		return style.Foreground(ColorPending)
	}
	return style.Foreground(ColorIdle)
}

// EntryStatusStyle colors an entry status label
func EntryStatusStyle(status domain.EntryStatus, unsynced bool) lipgloss.Style {
	if unsynced {
		return lipgloss.NewStyle().Foreground(ColorUnsynced)
	}
	switch status {
	case domain.StatusCompleted:
		return lipgloss.NewStyle().Foreground(ColorCompleted)
	case domain.StatusInProgress:
		return lipgloss.NewStyle().Foreground(ColorInProgress)
	case domain.StatusPending:
		return lipgloss.NewStyle().Foreground(ColorPendingRow)
	}
	return NormalStyle
}
