package ports

import (
	"context"
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// CredentialStore persists the token and user together.
// Load returns nil, nil when nothing is stored.
type CredentialStore interface {
	ClearCredentials(ctx context.Context) error
	LoadCredentials(ctx context.Context) (*domain.Session, error)
	SaveCredentials(ctx context.Context, session domain.Session) error
}

// TimerStore persists the running timer so other processes see it.
// Get returns nil, nil when the user has no active timer.
type TimerStore interface {
	DeleteActiveTimer(ctx context.Context, userID string) error
	GetActiveTimer(ctx context.Context, userID string) (*domain.Timer, error)
	SaveActiveTimer(ctx context.Context, timer domain.Timer) error
}

// EntryStore is the local copy of the entry cache, keyed by scope
type EntryStore interface {
	DeleteEntry(ctx context.Context, entryID string) error
	ListEntries(ctx context.Context, scope string) ([]domain.TimeEntry, error)
	ListUnsynced(ctx context.Context) ([]domain.TimeEntry, error)
	ReplaceEntries(ctx context.Context, scope string, entries []domain.TimeEntry) error
	UpsertEntry(ctx context.Context, scope string, entry domain.TimeEntry) error
}

// StateRepository is the composite interface
type StateRepository interface {
	CredentialStore
	EntryStore
	TimerStore
	Close() error
}

// ProcessLock serialises timer mutations across punch processes
type ProcessLock interface {
	Lock(ctx context.Context) (unlock func() error, err error)
}

// Clock returns the current time
type Clock interface {
	Now() time.Time
}
