package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	APIURL      string           `help:"Backend base URL (overrides $PUNCH_API_URL and settings.json)" name:"api-url"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Dashboard DashboardCmd `cmd:"" help:"Open the dashboard (default)" default:"1"`
	Entries   EntriesCmd   `cmd:"entries" help:"List, edit and delete time entries"`
	Login     LoginCmd     `cmd:"login" help:"Log in to the time-tracking backend"`
	Logout    LogoutCmd    `cmd:"logout" help:"Forget the stored session"`
	Projects  ProjectsCmd  `cmd:"projects" help:"List projects"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the dashboard over SSH"`
	Settings  SettingsCmd  `cmd:"settings" help:"Show settings (meta)"`
	Signup    SignupCmd    `cmd:"signup" help:"Create an account"`
	Tasks     TasksCmd     `cmd:"tasks" help:"List or create tasks of a project"`
	Team      TeamCmd      `cmd:"team" help:"Manage the team roster (admins and managers)"`
	Timer     TimerCmd     `cmd:"timer" help:"Start, stop and inspect the running timer"`
	Whoami    WhoamiCmd    `cmd:"whoami" help:"Show the logged in user"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	config    config.Config    `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply resolves configuration, initializes logging and wires the container.
// Precedence: CLI flags > env vars (and $PUNCH_HOME/.env) > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if err := config.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PUNCH_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PUNCH_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}
	if c.Debug {
		// the gorm logger bridge reads this to pick its level
		os.Setenv("PUNCH_DEBUG", "1")
	}

	cfg, err := c.settings.Resolve()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.APIURL != "" {
		cfg.APIURL = c.APIURL
	}
	c.config = cfg
	logging.Logger.Debug("Configuration resolved",
		"api_url", cfg.APIURL,
		"degraded_mode", cfg.DegradedMode,
		"offline_edits", cfg.OfflineEdits,
		"request_timeout", cfg.RequestTimeout)

	// Container is created after logging so gorm's logger has somewhere to write
	container, err := NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// DashboardCmd starts the TUI
type DashboardCmd struct {
	ErrorClearDelay int `help:"Seconds before error messages auto-clear (0 = settings value)" default:"0"`
}

// Run executes the TUI
func (d *DashboardCmd) Run(cli *CLI) error {
	errorClearDelay := cli.config.ErrorClearDelay
	if d.ErrorClearDelay > 0 {
		errorClearDelay = time.Duration(d.ErrorClearDelay) * time.Second
	}

	logging.Logger.Info("Starting punch TUI")
	model := ui.NewModel(cli.Container.UIServices(), ui.Config{
		ErrorClearDelay: errorClearDelay,
		RefreshInterval: cli.config.RefreshInterval,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
