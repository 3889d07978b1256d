package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/punch/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Show SettingsShowCmd `cmd:"show" help:"Show the resolved configuration (flags, env, settings.json, defaults)"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.SettingsPath()
	example := config.SettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"env_file":      config.EnvPath(),
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n", settingsFile)
	fmt.Printf("Env file:      %s\n\n", config.EnvPath())
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		data, _ := json.Marshal(example[key])
		fmt.Fprintf(w, "%s\t%s\n", key, string(data))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure punch.")
	fmt.Println("All settings are optional; PUNCH_* environment variables override them.")

	return nil
}

// SettingsShowCmd prints the configuration in effect
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	cfg := cli.config
	values := map[string]any{
		"api_url":               cfg.APIURL,
		"debug":                 cfg.Debug,
		"default_tracking_type": string(cfg.DefaultTrackingType),
		"degraded_mode":         cfg.DegradedMode,
		"error_clear_delay":     cfg.ErrorClearDelay.String(),
		"max_log_files":         cfg.MaxLogFiles,
		"offline_edits":         cfg.OfflineEdits,
		"refresh_interval":      cfg.RefreshInterval.String(),
		"request_timeout":       cfg.RequestTimeout.String(),
		"task_cache_ttl":        cfg.TaskCacheTTL.String(),
		"verify_timeout":        cfg.VerifyTimeout.String(),
	}

	if s.Format == "json" {
		return printJSON(values)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, values[key])
	}
	w.Flush()
	return nil
}
