package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
)

// DashboardService loads everything the dashboard shows in one round
type DashboardService struct {
	catalog  *CatalogService
	entries  *EntryCache
	identity Identity
	timer    *TimerService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(identity Identity, catalog *CatalogService, entries *EntryCache, timer *TimerService) *DashboardService {
	return &DashboardService{
		catalog:  catalog,
		entries:  entries,
		identity: identity,
		timer:    timer,
	}
}

// Load fetches projects, entries and the running timer concurrently.
// Admins and managers get everyone's entries. An unreachable backend is
// reported as a warning as long as something can still be shown.
func (s *DashboardService) Load(ctx context.Context) (DashboardData, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return DashboardData{}, domain.ErrNotAuthenticated
	}

	data := DashboardData{User: *user}
	var (
		mu       sync.Mutex
		warnings []string
	)
	warn := func(msg string) {
		mu.Lock()
		warnings = append(warnings, msg)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		projects, err := s.catalog.Projects(gctx)
		if err != nil {
			if errors.Is(err, domain.ErrNetwork) {
				warn("Projects unavailable: " + err.Error())
				return nil
			}
			return err
		}
		data.Projects = projects
		return nil
	})

	g.Go(func() error {
		result, err := s.entries.List(gctx, EntryQuery{All: user.Role.CanViewAll()})
		if err != nil {
			return err
		}
		switch {
		case result.Sample:
			warn("Backend unreachable, showing sample entries")
		case result.Stale:
			warn("Backend unreachable, showing last synced entries")
		}
		data.Entries = result
		return nil
	})

	g.Go(func() error {
		timer, err := s.timer.Restore(gctx)
		if err != nil {
			warn("Timer not reconciled: " + err.Error())
		}
		data.Timer = timer
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardData{}, fmt.Errorf("failed to load dashboard: %w", err)
	}

	data.Warnings = warnings
	logging.Logger.Debug("Dashboard loaded",
		"projects", len(data.Projects), "entries", len(data.Entries.Entries),
		"timer_running", data.Timer != nil, "warnings", len(warnings))
	return data, nil
}
