package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

// Identity supplies the authenticated user
type Identity interface {
	CurrentUser() *domain.User
}

// EntrySink receives entries created by the timer
type EntrySink interface {
	Add(entry domain.TimeEntry) bool
}

// TimerConfig holds the timer's tunables
type TimerConfig struct {
	DefaultTrackingType domain.TrackingType
	DegradedMode        bool // run locally when the backend cannot be reached
}

// TimerService is the single running timer of the current user plus the
// form used to start one
type TimerService struct {
	api      ports.TimeEntryAPI
	catalog  *CatalogService
	clock    ports.Clock
	cfg      TimerConfig
	identity Identity
	lock     ports.ProcessLock
	sink     EntrySink
	store    ports.TimerStore

	mu         sync.Mutex
	generation uint64 // bumped on every project selection
	selection  Selection
	tasks      []domain.Task
	timer      *domain.Timer
	timerGen   uint64 // bumped on every change of timer
}

// NewTimerService creates a new TimerService
func NewTimerService(
	api ports.TimeEntryAPI,
	catalog *CatalogService,
	identity Identity,
	store ports.TimerStore,
	lock ports.ProcessLock,
	sink EntrySink,
	clock ports.Clock,
	cfg TimerConfig,
) *TimerService {
	if cfg.DefaultTrackingType == "" {
		cfg.DefaultTrackingType = domain.TrackingHourly
	}
	return &TimerService{
		api:       api,
		catalog:   catalog,
		cfg:       cfg,
		clock:     clock,
		identity:  identity,
		lock:      lock,
		selection: Selection{TrackingType: cfg.DefaultTrackingType},
		sink:      sink,
		store:     store,
	}
}

// SelectProject switches the form to projectID and loads its tasks. When
// selections overlap only the latest one is applied; earlier ones return
// domain.ErrStaleSelection and change nothing.
func (s *TimerService) SelectProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.selection.ProjectID = projectID
	s.selection.TaskID = ""
	s.tasks = nil
	s.mu.Unlock()

	if projectID == "" {
		return nil, nil
	}

	logging.Logger.Debug("Loading tasks for project", "project_id", projectID, "generation", gen)
	tasks, err := s.catalog.Tasks(ctx, projectID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		logging.Logger.Debug("Discarding stale task list", "project_id", projectID, "generation", gen, "current", s.generation)
		return nil, domain.ErrStaleSelection
	}
	if err != nil {
		return nil, err
	}
	s.tasks = tasks
	return cloneTasks(tasks), nil
}

// SelectTask picks a task of the selected project. An inline task name is cleared.
func (s *TimerService) SelectTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if taskID != "" && len(s.tasks) > 0 {
		found := false
		for _, t := range s.tasks {
			if t.ID == taskID {
				found = true
				break
			}
		}
		if !found {
			return domain.NewValidationError("select task", "task does not belong to the selected project")
		}
	}
	s.selection.TaskID = taskID
	if taskID != "" {
		s.selection.InlineTask = ""
	}
	return nil
}

// SetInlineTask sets the name of a task to create on start. It replaces any selected task.
func (s *TimerService) SetInlineTask(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.InlineTask = strings.TrimSpace(name)
	if s.selection.InlineTask != "" {
		s.selection.TaskID = ""
	}
}

func (s *TimerService) SetDescription(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Description = description
}

func (s *TimerService) SetBillable(billable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Billable = billable
}

func (s *TimerService) SetTrackingType(tt domain.TrackingType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.TrackingType = tt
}

func (s *TimerService) SetManualMode(manual bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.ManualMode = manual
}

// Selection returns a copy of the form state
func (s *TimerService) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Tasks returns the task list of the selected project
func (s *TimerService) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// State returns the controller state
func (s *TimerService) State() domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil {
		return domain.TimerIdle
	}
	return s.timer.State
}

// Active returns a copy of the running timer, nil when idle
func (s *TimerService) Active() *domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil || !s.timer.IsRunning() {
		return nil
	}
	t := *s.timer
	return &t
}

// Elapsed is derived from the start timestamp on every call
func (s *TimerService) Elapsed(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.timer.IsRunning() {
		return 0
	}
	return s.timer.Elapsed(now)
}

// Display renders the elapsed time as HH:MM:SS
func (s *TimerService) Display(now time.Time) string {
	return domain.FormatClock(s.Elapsed(now))
}

// ButtonLabel is the label of the primary timer control
func (s *TimerService) ButtonLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.timer.IsRunning():
		return "Stop"
	case s.selection.ManualMode:
		return "Save"
	default:
		return "Start"
	}
}

func validateSelection(op string, sel Selection) error {
	if sel.ProjectID == "" {
		return domain.NewValidationError(op, "please select a project")
	}
	if sel.TaskID == "" && sel.InlineTask == "" {
		return domain.NewValidationError(op, "please select a task or enter a new task name")
	}
	return nil
}

// Start moves Idle -> Pending -> Running. A timer that is already running
// (here or in another punch process) is left untouched and reported as a
// conflict.
func (s *TimerService) Start(ctx context.Context) (*domain.Timer, error) {
	const op = "start timer"

	user := s.identity.CurrentUser()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	if s.timer != nil {
		state := s.timer.State
		s.mu.Unlock()
		if state == domain.TimerPending {
			return nil, domain.NewValidationError(op, "timer is already starting")
		}
		return nil, &domain.Error{Kind: domain.KindConflict, Op: op, Message: "a timer is already running"}
	}
	sel := s.selection
	if sel.ManualMode {
		s.mu.Unlock()
		return nil, domain.NewValidationError(op, "manual mode is on, save a manual entry instead")
	}
	if err := validateSelection(op, sel); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.timer = &domain.Timer{State: domain.TimerPending, UserID: user.ID}
	s.timerGen++
	s.mu.Unlock()

	timer, err := s.start(ctx, op, *user, sel)
	if err != nil {
		s.mu.Lock()
		if s.timer != nil && s.timer.State == domain.TimerPending {
			s.timer = nil
			s.timerGen++
		}
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.timer = timer
	s.timerGen++
	s.mu.Unlock()

	result := *timer
	return &result, nil
}

func (s *TimerService) start(ctx context.Context, op string, user domain.User, sel Selection) (*domain.Timer, error) {
	unlock, err := s.lock.Lock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire timer lock: %w", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logging.Logger.Warn("Failed to release timer lock", "error", err)
		}
	}()

	existing, err := s.store.GetActiveTimer(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for a running timer: %w", err)
	}
	if existing.IsRunning() {
		logging.Logger.Info("Start rejected, timer already running", "user_id", user.ID, "remote_id", existing.RemoteID)
		s.mu.Lock()
		s.timer = existing
		s.timerGen++
		s.mu.Unlock()
		return nil, &domain.Error{Kind: domain.KindConflict, Op: op, Message: "a timer is already running"}
	}

	taskID, err := s.resolveTask(ctx, sel)
	if err != nil {
		return nil, err
	}

	trackingType := sel.TrackingType
	if trackingType == "" {
		trackingType = s.cfg.DefaultTrackingType
	}

	timer := &domain.Timer{
		Billable:     sel.Billable,
		Description:  sel.Description,
		ProjectID:    sel.ProjectID,
		State:        domain.TimerRunning,
		TaskID:       taskID,
		TrackingType: trackingType,
		UserID:       user.ID,
	}

	logging.Logger.Info("Starting timer", "user_id", user.ID, "project_id", sel.ProjectID, "task_id", taskID)
	entry, err := s.api.StartTimer(ctx, ports.StartTimerRequest{
		Billable:     sel.Billable,
		Description:  sel.Description,
		ProjectID:    sel.ProjectID,
		TaskID:       taskID,
		TrackingType: trackingType,
		UserID:       user.ID,
	})
	switch {
	case err == nil:
		timer.RemoteID = entry.ID
		timer.StartedAt = entry.StartTime
		if timer.StartedAt.IsZero() {
			timer.StartedAt = s.clock.Now()
		}
	case s.cfg.DegradedMode && errors.Is(err, domain.ErrNetwork):
		logging.Logger.Warn("Backend unreachable, timer running locally", "error", err)
		timer.Degraded = true
		timer.StartedAt = s.clock.Now()
	default:
		logging.Logger.Warn("Failed to start timer", "error", err)
		return nil, fmt.Errorf("failed to start timer: %w", err)
	}

	if err := s.store.SaveActiveTimer(ctx, *timer); err != nil {
		logging.Logger.Error("Failed to persist active timer", "error", err)
	}

	logging.Logger.Info("Timer running", "remote_id", timer.RemoteID, "started_at", timer.StartedAt, "degraded", timer.Degraded)
	return timer, nil
}

// resolveTask creates the inline task when one was typed
func (s *TimerService) resolveTask(ctx context.Context, sel Selection) (string, error) {
	if sel.TaskID != "" {
		return sel.TaskID, nil
	}

	task, err := s.catalog.CreateTask(ctx, sel.ProjectID, sel.InlineTask)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.selection.ProjectID == sel.ProjectID {
		s.tasks = append(s.tasks, *task)
		s.selection.TaskID = task.ID
		s.selection.InlineTask = ""
	}
	s.mu.Unlock()

	return task.ID, nil
}

// Stop moves Running -> Stopping -> Idle. On failure the timer keeps running.
func (s *TimerService) Stop(ctx context.Context) (*domain.TimeEntry, error) {
	s.mu.Lock()
	if s.timer == nil || s.timer.State != domain.TimerRunning {
		s.mu.Unlock()
		return nil, domain.ErrNoActiveTimer
	}
	s.timer.State = domain.TimerStopping
	s.timerGen++
	running := *s.timer
	s.mu.Unlock()

	entry, err := s.stop(ctx, running)
	if err != nil {
		s.mu.Lock()
		if s.timer != nil && s.timer.State == domain.TimerStopping {
			s.timer.State = domain.TimerRunning
			s.timerGen++
		}
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.timer = nil
	s.timerGen++
	s.resetFormLocked()
	s.mu.Unlock()

	s.sink.Add(*entry)
	return entry, nil
}

func (s *TimerService) stop(ctx context.Context, running domain.Timer) (*domain.TimeEntry, error) {
	unlock, err := s.lock.Lock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire timer lock: %w", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logging.Logger.Warn("Failed to release timer lock", "error", err)
		}
	}()

	var entry *domain.TimeEntry
	if running.Degraded {
		end := s.clock.Now()
		logging.Logger.Info("Recording locally run timer", "started_at", running.StartedAt)
		entry, err = s.api.CreateEntry(ctx, ports.CreateEntryRequest{
			Billable:     running.Billable,
			Description:  running.Description,
			Duration:     int(running.Elapsed(end) / time.Minute),
			EndTime:      end,
			ProjectID:    running.ProjectID,
			StartTime:    running.StartedAt,
			TaskID:       running.TaskID,
			TrackingType: running.TrackingType,
			UserID:       running.UserID,
		})
	} else {
		logging.Logger.Info("Stopping timer", "remote_id", running.RemoteID)
		entry, err = s.api.StopTimer(ctx, running.RemoteID)
	}
	if err != nil {
		logging.Logger.Warn("Failed to stop timer", "error", err)
		return nil, fmt.Errorf("failed to stop timer: %w", err)
	}

	if err := s.store.DeleteActiveTimer(ctx, running.UserID); err != nil {
		logging.Logger.Error("Failed to clear persisted timer", "error", err)
	}

	normalized := fillFromTimer(*entry, running).Normalize()
	logging.Logger.Info("Timer stopped", "entry_id", normalized.ID, "duration_minutes", normalized.Duration)
	return &normalized, nil
}

// fillFromTimer completes a stop response that left fields out
func fillFromTimer(entry domain.TimeEntry, running domain.Timer) domain.TimeEntry {
	if running.Billable {
		entry.Billable = true
	}
	if entry.Description == "" {
		entry.Description = running.Description
	}
	if entry.OwnerID == "" {
		entry.OwnerID = running.UserID
	}
	if entry.ProjectID == "" {
		entry.ProjectID = running.ProjectID
	}
	if entry.StartTime.IsZero() {
		entry.StartTime = running.StartedAt
	}
	if entry.TaskID == "" {
		entry.TaskID = running.TaskID
	}
	if entry.TrackingType == "" {
		entry.TrackingType = running.TrackingType
	}
	if entry.Status == "" {
		entry.Status = domain.StatusCompleted
	}
	return entry
}

// SaveManual records a completed entry of the given HH:MM[:SS] duration
// ending now, without running a timer
func (s *TimerService) SaveManual(ctx context.Context, duration string) (*domain.TimeEntry, error) {
	const op = "save manual entry"

	user := s.identity.CurrentUser()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	sel := s.selection
	running := s.timer != nil
	s.mu.Unlock()

	if running {
		return nil, &domain.Error{Kind: domain.KindConflict, Op: op, Message: "stop the running timer before recording time manually"}
	}
	if err := validateSelection(op, sel); err != nil {
		return nil, err
	}
	d, err := domain.ParseManualDuration(duration)
	if err != nil {
		return nil, domain.NewValidationError(op, err.Error())
	}

	unlock, err := s.lock.Lock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire timer lock: %w", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logging.Logger.Warn("Failed to release timer lock", "error", err)
		}
	}()

	taskID, err := s.resolveTask(ctx, sel)
	if err != nil {
		return nil, err
	}

	trackingType := sel.TrackingType
	if trackingType == "" {
		trackingType = s.cfg.DefaultTrackingType
	}

	end := s.clock.Now()
	start := end.Add(-d)
	logging.Logger.Info("Saving manual entry", "user_id", user.ID, "duration", d)

	entry, err := s.api.CreateEntry(ctx, ports.CreateEntryRequest{
		Billable:      sel.Billable,
		Description:   sel.Description,
		Duration:      int(d / time.Minute),
		EndTime:       end,
		IsManualEntry: true,
		ProjectID:     sel.ProjectID,
		StartTime:     start,
		TaskID:        taskID,
		TrackingType:  trackingType,
		UserID:        user.ID,
	})
	if err != nil {
		logging.Logger.Warn("Failed to save manual entry", "error", err)
		return nil, fmt.Errorf("failed to save manual entry: %w", err)
	}

	normalized := entry.Normalize()
	normalized.IsManualEntry = true

	s.mu.Lock()
	s.resetFormLocked()
	s.mu.Unlock()

	s.sink.Add(normalized)
	return &normalized, nil
}

// resetFormLocked clears the per-entry fields; tracking type and manual mode stay
func (s *TimerService) resetFormLocked() {
	s.generation++
	s.selection.Billable = false
	s.selection.Description = ""
	s.selection.InlineTask = ""
	s.selection.ProjectID = ""
	s.selection.TaskID = ""
	s.tasks = nil
}

// Restore reconciles the local timer with the backend. The backend's
// in-progress entry wins; a local timer the backend no longer knows was
// stopped elsewhere and is dropped; without an answer the local copy stays.
// A start or stop that completes meanwhile wins over the reconciled result.
func (s *TimerService) Restore(ctx context.Context) (*domain.Timer, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return nil, nil
	}

	s.mu.Lock()
	gen := s.timerGen
	s.mu.Unlock()

	unlock, err := s.lock.Lock(ctx)
	if err != nil {
		return s.Active(), fmt.Errorf("failed to acquire timer lock: %w", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logging.Logger.Warn("Failed to release timer lock", "error", err)
		}
	}()

	local, err := s.store.GetActiveTimer(ctx, user.ID)
	if err != nil {
		return s.Active(), fmt.Errorf("failed to load active timer: %w", err)
	}

	remote, err := s.api.ListEntries(ctx, ports.EntryFilter{Status: domain.StatusInProgress, UserID: user.ID})
	if err != nil {
		logging.Logger.Info("Could not reconcile timer with backend, keeping local copy", "error", err)
		s.adopt(gen, local)
		if errors.Is(err, domain.ErrNetwork) {
			return s.Active(), nil
		}
		return s.Active(), fmt.Errorf("failed to reconcile timer: %w", err)
	}

	if s.changedSince(gen) {
		logging.Logger.Debug("Timer changed during reconcile, keeping current state")
		return s.Active(), nil
	}

	inProgress := latestInProgress(remote, user.ID)
	switch {
	case inProgress != nil:
		timer := &domain.Timer{
			Billable:     inProgress.Billable,
			Description:  inProgress.Description,
			ProjectID:    inProgress.ProjectID,
			RemoteID:     inProgress.ID,
			StartedAt:    inProgress.StartTime,
			State:        domain.TimerRunning,
			TaskID:       inProgress.TaskID,
			TrackingType: inProgress.TrackingType,
			UserID:       user.ID,
		}
		if timer.TrackingType == "" {
			timer.TrackingType = s.cfg.DefaultTrackingType
		}
		if local != nil && local.Degraded {
			logging.Logger.Warn("Backend has a running timer, discarding locally run timer", "local_started_at", local.StartedAt)
		}
		if local == nil || local.RemoteID != timer.RemoteID || !local.StartedAt.Equal(timer.StartedAt) {
			if err := s.store.SaveActiveTimer(ctx, *timer); err != nil {
				logging.Logger.Error("Failed to persist adopted timer", "error", err)
			}
		}
		logging.Logger.Info("Adopted running timer from backend", "remote_id", timer.RemoteID, "started_at", timer.StartedAt)
		s.adopt(gen, timer)

	case local != nil && local.RemoteID != "":
		logging.Logger.Info("Timer was stopped elsewhere, clearing local copy", "remote_id", local.RemoteID)
		if err := s.store.DeleteActiveTimer(ctx, user.ID); err != nil {
			logging.Logger.Error("Failed to clear stale timer", "error", err)
		}
		s.adopt(gen, nil)

	default:
		// nothing on the backend; a locally run timer keeps running
		s.adopt(gen, local)
	}

	return s.Active(), nil
}

func (s *TimerService) changedSince(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timerGen != gen
}

// adopt replaces the in-memory timer with a reconciled one. The result is
// dropped when the timer changed after gen was read.
func (s *TimerService) adopt(gen uint64, timer *domain.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timerGen != gen {
		logging.Logger.Debug("Discarding reconciled timer", "generation", gen, "current", s.timerGen)
		return
	}
	if s.timer != nil && (s.timer.State == domain.TimerPending || s.timer.State == domain.TimerStopping) {
		return
	}
	s.timerGen++
	if timer == nil || !timer.IsRunning() {
		s.timer = nil
		return
	}
	t := *timer
	s.timer = &t
}

func latestInProgress(entries []domain.TimeEntry, userID string) *domain.TimeEntry {
	var candidates []domain.TimeEntry
	for _, e := range entries {
		if e.Status != domain.StatusInProgress {
			continue
		}
		if e.OwnerID != "" && e.OwnerID != userID {
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].StartTime.After(candidates[j].StartTime)
	})
	return &candidates[0]
}
