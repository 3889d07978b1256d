package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PUNCH_API_URL", "PUNCH_TRACKING_TYPE", "PUNCH_DEGRADED_MODE",
		"PUNCH_OFFLINE_EDITS", "PUNCH_REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(name, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := (&Settings{}).Resolve()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, domain.TrackingHourly, cfg.DefaultTrackingType)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.VerifyTimeout)
	assert.False(t, cfg.DegradedMode)
	assert.False(t, cfg.OfflineEdits)
}

func TestResolve_SettingsThenEnv(t *testing.T) {
	clearEnv(t)
	degraded := true
	timeout := 12
	s := &Settings{
		APIURL:                "https://api.example.com/api/",
		DefaultTrackingType:   "Weekly",
		DegradedMode:          &degraded,
		RequestTimeoutSeconds: &timeout,
	}

	cfg, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api", cfg.APIURL)
	assert.Equal(t, domain.TrackingWeekly, cfg.DefaultTrackingType)
	assert.True(t, cfg.DegradedMode)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)

	t.Setenv("PUNCH_API_URL", "http://env:9000/api")
	t.Setenv("PUNCH_DEGRADED_MODE", "false")
	cfg, err = s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "http://env:9000/api", cfg.APIURL)
	assert.False(t, cfg.DegradedMode)
}

func TestResolve_InvalidValues(t *testing.T) {
	clearEnv(t)

	_, err := (&Settings{DefaultTrackingType: "yearly"}).Resolve()
	require.Error(t, err)

	t.Setenv("PUNCH_OFFLINE_EDITS", "maybe")
	_, err = (&Settings{}).Resolve()
	require.Error(t, err)
}

func TestLoadSettingsFrom(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadSettingsFrom(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)

	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_url":"http://x/api","offline_edits":true}`), 0644))
	s, err = LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://x/api", s.APIURL)
	require.NotNil(t, s.OfflineEdits)
	assert.True(t, *s.OfflineEdits)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	_, err = LoadSettingsFrom(path)
	require.Error(t, err)
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PUNCH_HOME", home)
	t.Setenv("PUNCH_API_URL", "http://already-set/api")
	t.Setenv("PUNCH_OFFLINE_EDITS", "")
	require.NoError(t, os.Unsetenv("PUNCH_OFFLINE_EDITS"))

	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"),
		[]byte("PUNCH_API_URL=http://from-file/api\nPUNCH_OFFLINE_EDITS=true\n"), 0644))

	require.NoError(t, LoadEnvFile())
	assert.Equal(t, "http://already-set/api", os.Getenv("PUNCH_API_URL"))
	assert.Equal(t, "true", os.Getenv("PUNCH_OFFLINE_EDITS"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	t.Setenv("PUNCH_HOME", t.TempDir())
	require.NoError(t, LoadEnvFile())
}

func TestSettingsExample_CoversEveryField(t *testing.T) {
	example := SettingsExample()
	assert.Equal(t, DefaultAPIURL, example["api_url"])
	assert.Equal(t, "hourly", example["default_tracking_type"])
	assert.Len(t, example, 11)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}
