package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/renato0307/punch/internal/domain"
)

const (
	DefaultAPIURL                 = "http://localhost:5000/api"
	DefaultErrorClearDelaySeconds = 10
	DefaultRefreshIntervalSeconds = 30
	DefaultRequestTimeoutSeconds  = 30
	DefaultTaskCacheTTLSeconds    = 300
	DefaultVerifyTimeoutSeconds   = 5
)

// Settings represents the structure of $PUNCH_HOME/settings.json.
// Nil fields fall back to environment variables and then defaults.
type Settings struct {
	APIURL                 string `json:"api_url,omitempty"`
	Debug                  *bool  `json:"debug,omitempty"`
	DefaultTrackingType    string `json:"default_tracking_type,omitempty"`
	DegradedMode           *bool  `json:"degraded_mode,omitempty"`
	ErrorClearDelay        *int   `json:"error_clear_delay,omitempty"`
	MaxLogFiles            *int   `json:"max_log_files,omitempty"`
	OfflineEdits           *bool  `json:"offline_edits,omitempty"`
	RefreshIntervalSeconds *int   `json:"refresh_interval_seconds,omitempty"`
	RequestTimeoutSeconds  *int   `json:"request_timeout_seconds,omitempty"`
	TaskCacheTTLSeconds    *int   `json:"task_cache_ttl_seconds,omitempty"`
	VerifyTimeoutSeconds   *int   `json:"verify_timeout_seconds,omitempty"`
}

// Config is the fully resolved configuration used by the composition root
type Config struct {
	APIURL              string
	Debug               bool
	DefaultTrackingType domain.TrackingType
	DegradedMode        bool
	ErrorClearDelay     time.Duration
	MaxLogFiles         int
	OfflineEdits        bool
	RefreshInterval     time.Duration
	RequestTimeout      time.Duration
	TaskCacheTTL        time.Duration
	VerifyTimeout       time.Duration
}

// LoadEnvFile loads $PUNCH_HOME/.env into the process environment.
// Variables already set win over the file. A missing file is not an error.
func LoadEnvFile() error {
	path := EnvPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadSettings reads settings.json, returning empty Settings when it does not exist
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings to $PUNCH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := SettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Resolve applies environment overrides on top of the settings file and
// fills the remaining gaps with defaults
func (s *Settings) Resolve() (Config, error) {
	if s == nil {
		s = &Settings{}
	}

	cfg := Config{
		APIURL:              firstNonEmpty(os.Getenv("PUNCH_API_URL"), s.APIURL, DefaultAPIURL),
		Debug:               boolOr(s.Debug, false),
		DefaultTrackingType: domain.TrackingHourly,
		DegradedMode:        boolOr(s.DegradedMode, false),
		ErrorClearDelay:     seconds(s.ErrorClearDelay, DefaultErrorClearDelaySeconds),
		MaxLogFiles:         intOr(s.MaxLogFiles, 1000),
		OfflineEdits:        boolOr(s.OfflineEdits, false),
		RefreshInterval:     seconds(s.RefreshIntervalSeconds, DefaultRefreshIntervalSeconds),
		RequestTimeout:      seconds(s.RequestTimeoutSeconds, DefaultRequestTimeoutSeconds),
		TaskCacheTTL:        seconds(s.TaskCacheTTLSeconds, DefaultTaskCacheTTLSeconds),
		VerifyTimeout:       seconds(s.VerifyTimeoutSeconds, DefaultVerifyTimeoutSeconds),
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if raw := firstNonEmpty(os.Getenv("PUNCH_TRACKING_TYPE"), s.DefaultTrackingType); raw != "" {
		tt, err := domain.ParseTrackingType(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid default_tracking_type: %w", err)
		}
		cfg.DefaultTrackingType = tt
	}

	envBools := map[string]*bool{
		"PUNCH_DEGRADED_MODE": &cfg.DegradedMode,
		"PUNCH_OFFLINE_EDITS": &cfg.OfflineEdits,
	}
	for name, target := range envBools {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		*target = v
	}

	if raw := os.Getenv("PUNCH_REQUEST_TIMEOUT_SECONDS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid PUNCH_REQUEST_TIMEOUT_SECONDS %q", raw)
		}
		cfg.RequestTimeout = time.Duration(n) * time.Second
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func seconds(v *int, def int) time.Duration {
	n := intOr(v, def)
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}
