package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

const defaultPollInterval = 25 * time.Millisecond

// errWouldBlock is returned by tryLock when another holder owns the lock
var errWouldBlock = errors.New("lock is held elsewhere")

// FileLock is an exclusive advisory lock on a file, shared by every punch
// process using the same home directory
type FileLock struct {
	path         string
	pollInterval time.Duration
}

var _ ports.ProcessLock = (*FileLock)(nil)

// NewFileLock creates a lock backed by path. The file is created on first use.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path, pollInterval: defaultPollInterval}
}

// Lock blocks until the lock is acquired or ctx is done
func (l *FileLock) Lock(ctx context.Context) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	start := time.Now()
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		err := tryLock(file)
		if err == nil {
			break
		}
		if !errors.Is(err, errWouldBlock) {
			file.Close()
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		select {
		case <-ctx.Done():
			file.Close()
			return nil, fmt.Errorf("timed out waiting for lock %s: %w", l.path, ctx.Err())
		case <-ticker.C:
		}
	}

	logging.Logger.Debug("Process lock acquired", "path", l.path, "waited", time.Since(start))

	unlock := func() error {
		defer file.Close()
		if err := unlockFile(file); err != nil {
			return fmt.Errorf("failed to release lock: %w", err)
		}
		logging.Logger.Debug("Process lock released", "path", l.path)
		return nil
	}
	return unlock, nil
}
