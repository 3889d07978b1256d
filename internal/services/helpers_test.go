package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/renato0307/punch/internal/domain"
	portsmocks "github.com/renato0307/punch/internal/ports/mocks"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type staticIdentity struct {
	user *domain.User
}

func (i staticIdentity) CurrentUser() *domain.User {
	if i.user == nil {
		return nil
	}
	u := *i.user
	return &u
}

type recordingSink struct {
	mu      sync.Mutex
	entries []domain.TimeEntry
}

func (s *recordingSink) Add(entry domain.TimeEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) Entries() []domain.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TimeEntry(nil), s.entries...)
}

func employee() *domain.User {
	return &domain.User{Email: "ana@example.com", ID: "u1", Name: "Ana", Role: domain.RoleEmployee}
}

func admin() *domain.User {
	return &domain.User{Email: "root@example.com", ID: "a1", Name: "Root", Role: domain.RoleAdmin}
}

// allowLock lets the service take the process lock any number of times
func allowLock(lock *portsmocks.MockProcessLock) {
	lock.EXPECT().Lock(mock.Anything).
		RunAndReturn(func(context.Context) (func() error, error) {
			return func() error { return nil }, nil
		}).Maybe()
}

func networkError(op string) error {
	return &domain.Error{Kind: domain.KindNetwork, Op: op, Message: "No response from server"}
}
