package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is how many debug logs are kept before the oldest are removed
const DefaultMaxLogFiles = 1000

// Logger is shared by every package. It discards output until Initialize enables debug.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize configures Logger from the debug flags and PUNCH_DEBUG* variables.
// It returns the log file path, empty when logging is disabled.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	envDebug := os.Getenv("PUNCH_DEBUG") == "1"
	if envDebug {
		debug = true
	}
	if debugFile == "" {
		debugFile = os.Getenv("PUNCH_DEBUG_FILE")
	}
	if env := os.Getenv("PUNCH_MAX_LOG_FILES"); env != "" && maxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(env); err == nil {
			maxLogFiles = parsed
		}
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath := debugFile
	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
	} else {
		logDir, err := LogDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if maxLogFiles > 0 {
			if err := rotateLogs(logDir, maxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		logFilePath = filepath.Join(logDir, uuid.NewString()+".log")
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", logFilePath, "inherited", envDebug)

	return logFilePath, nil
}

// rotateLogs deletes the oldest *.log files in logDir, leaving room for
// one more below maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	paths, err := filepath.Glob(filepath.Join(logDir, "*.log"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}

	modTimes := make(map[string]time.Time, len(paths))
	files := paths[:0]
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		modTimes[path] = info.ModTime()
		files = append(files, path)
	}

	excess := len(files) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(files, func(a, b string) int {
		return modTimes[a].Compare(modTimes[b])
	})
	for _, path := range files[:excess] {
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not remove %s: %v\n", path, err)
		}
	}
	return nil
}

// LogDir is where debug logs go: $PUNCH_LOG_DIR, or punch/logs under the
// user cache directory
func LogDir() (string, error) {
	if dir := os.Getenv("PUNCH_LOG_DIR"); dir != "" {
		return dir, nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "punch", "logs"), nil
}
