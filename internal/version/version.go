package version

import "fmt"

// Tagline is shown in help text
const Tagline = "Punch in, punch out: timers and time entries from the terminal"

// Build information injected at build time via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("punch %s (commit: %s, built: %s, go: %s)", Version, Commit, Date, GoVersion)
}

// UserAgent is sent with every API request
func UserAgent() string {
	return "punch/" + Version
}
