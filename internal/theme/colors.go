package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, role title
)

// Timer state colors
const (
	ColorDegraded Color = "208" // Orange - running locally only
	ColorIdle     Color = "8"   // Gray - no timer
	ColorPending  Color = "3"   // Yellow - waiting for the backend
	ColorRunning  Color = "2"   // Green - counting
)

// Entry status colors
const (
	ColorCompleted  Color = "2"   // Green
	ColorInProgress Color = "33"  // Blue
	ColorPendingRow Color = "214" // Amber
	ColorUnsynced   Color = "205" // Pink - changed locally
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Dark gray - selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "178" // Gold - offline and sample notices
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorSpinner   Color = "205" // Pink
)
