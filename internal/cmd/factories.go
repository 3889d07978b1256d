package cmd

import (
	"context"
	"fmt"

	adapterapi "github.com/renato0307/punch/internal/adapters/api"
	adapterlock "github.com/renato0307/punch/internal/adapters/lock"
	adapterstorage "github.com/renato0307/punch/internal/adapters/storage"
	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
	"github.com/renato0307/punch/internal/services"
	"github.com/renato0307/punch/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	CatalogService   *services.CatalogService
	DashboardService *services.DashboardService
	EntryCache       *services.EntryCache
	SessionService   *services.SessionService
	TeamService      *services.TeamService
	TimerService     *services.TimerService

	// Internal - for cleanup only
	stateRepo ports.StateRepository
}

// NewContainer creates a new Container with all dependencies wired and the
// persisted session rehydrated
func NewContainer(cfg config.Config) (*Container, error) {
	// Create adapters
	stateRepo, err := adapterstorage.NewSQLiteRepository(config.DBPath())
	if err != nil {
		return nil, err
	}

	client := adapterapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
	processLock := adapterlock.NewFileLock(config.LockPath())
	clock := services.SystemClock()

	// Create services
	sessionService := services.NewSessionService(client, stateRepo, clock, cfg.VerifyTimeout)
	client.SetTokenSource(sessionService)
	client.OnAuthRejected(sessionService.HandleAuthRejected)

	catalogService := services.NewCatalogService(client, client, cfg.TaskCacheTTL)
	entryCache := services.NewEntryCache(client, stateRepo, sessionService, clock, cfg.OfflineEdits)
	timerService := services.NewTimerService(
		client,
		catalogService,
		sessionService,
		stateRepo,
		processLock,
		entryCache,
		clock,
		services.TimerConfig{
			DefaultTrackingType: cfg.DefaultTrackingType,
			DegradedMode:        cfg.DegradedMode,
		},
	)
	teamService := services.NewTeamService(client, sessionService)
	dashboardService := services.NewDashboardService(sessionService, catalogService, entryCache, timerService)

	if _, err := sessionService.Load(context.Background()); err != nil {
		stateRepo.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	logging.Logger.Debug("Container ready", "api_url", cfg.APIURL)

	return &Container{
		CatalogService:   catalogService,
		DashboardService: dashboardService,
		EntryCache:       entryCache,
		SessionService:   sessionService,
		TeamService:      teamService,
		TimerService:     timerService,
		stateRepo:        stateRepo,
	}, nil
}

// UIServices exposes the services the dashboard needs
func (c *Container) UIServices() ui.Services {
	return ui.Services{
		Catalog:   c.CatalogService,
		Dashboard: c.DashboardService,
		Entries:   c.EntryCache,
		Session:   c.SessionService,
		Team:      c.TeamService,
		Timer:     c.TimerService,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.stateRepo != nil {
		return c.stateRepo.Close()
	}
	return nil
}
