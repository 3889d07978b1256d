package config

import (
	"os"
	"path/filepath"
)

// PunchHome returns PUNCH_HOME or ~/.punch
func PunchHome() string {
	home := os.Getenv("PUNCH_HOME")
	if home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".punch"
	}
	return filepath.Join(homeDir, ".punch")
}

// DBPath returns $PUNCH_HOME/state.db
func DBPath() string {
	return filepath.Join(PunchHome(), "state.db")
}

// SettingsPath returns $PUNCH_HOME/settings.json
func SettingsPath() string {
	return filepath.Join(PunchHome(), "settings.json")
}

// EnvPath returns $PUNCH_HOME/.env
func EnvPath() string {
	return filepath.Join(PunchHome(), ".env")
}

// LockPath returns $PUNCH_HOME/punch.lock
func LockPath() string {
	return filepath.Join(PunchHome(), "punch.lock")
}

// HostKeyPath returns the SSH host key used by punch serve
func HostKeyPath() string {
	return filepath.Join(PunchHome(), "ssh_host_ed25519")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	return filepath.Join(homeDir, path[1:])
}
