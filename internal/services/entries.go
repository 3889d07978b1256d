package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

const (
	scopeAll      = "all"
	samplePrefix  = "sample-"
	persistBudget = 5 * time.Second
)

// EntryCache is the client mirror of the user's time entries. Remote
// confirmation comes first; the local copy is only a fallback for when
// the backend cannot be reached.
type EntryCache struct {
	api          ports.TimeEntryAPI
	clock        ports.Clock
	identity     Identity
	offlineEdits bool
	store        ports.EntryStore

	mu      sync.RWMutex
	entries []domain.TimeEntry
	sample  bool
	scope   string
}

// NewEntryCache creates a new EntryCache. With offlineEdits on, updates
// that cannot reach the backend are kept locally and flagged unsynced.
func NewEntryCache(
	api ports.TimeEntryAPI,
	store ports.EntryStore,
	identity Identity,
	clock ports.Clock,
	offlineEdits bool,
) *EntryCache {
	return &EntryCache{
		api:          api,
		clock:        clock,
		identity:     identity,
		offlineEdits: offlineEdits,
		store:        store,
	}
}

func ownScope(userID string) string {
	return "own:" + userID
}

// List fetches entries for the query. When the backend is unreachable it
// serves the last synced copy (Stale) or, with nothing cached, the built-in
// sample set (Sample).
func (c *EntryCache) List(ctx context.Context, q EntryQuery) (ListResult, error) {
	const op = "list time entries"

	user := c.identity.CurrentUser()
	if user == nil {
		return ListResult{}, domain.ErrNotAuthenticated
	}
	if q.All && !user.Role.CanViewAll() {
		return ListResult{}, domain.NewValidationError(op, "only admins and managers can list everyone's entries")
	}

	scope := ownScope(user.ID)
	filter := ports.EntryFilter{
		From:      q.From,
		ProjectID: q.ProjectID,
		Status:    q.Status,
		To:        q.To,
	}
	if q.All {
		scope = scopeAll
	} else {
		filter.UserID = user.ID
	}

	remote, err := c.api.ListEntries(ctx, filter)
	if err == nil {
		entries := c.overlayUnsynced(ctx, remote)
		if !q.IsFiltered() {
			if err := c.store.ReplaceEntries(ctx, scope, entries); err != nil {
				logging.Logger.Warn("Failed to cache entries locally", "scope", scope, "error", err)
			}
		}
		c.replace(scope, entries, false)
		logging.Logger.Debug("Entries loaded", "scope", scope, "count", len(entries))
		return ListResult{Entries: cloneEntries(entries)}, nil
	}

	if !errors.Is(err, domain.ErrNetwork) {
		return ListResult{}, fmt.Errorf("failed to list entries: %w", err)
	}

	cached, cacheErr := c.store.ListEntries(ctx, scope)
	if cacheErr != nil {
		logging.Logger.Warn("Failed to read cached entries", "scope", scope, "error", cacheErr)
	}
	if len(cached) > 0 {
		entries := make([]domain.TimeEntry, 0, len(cached))
		for _, e := range cached {
			if q.Matches(e) {
				entries = append(entries, e)
			}
		}
		logging.Logger.Info("Backend unreachable, serving cached entries", "scope", scope, "count", len(entries))
		c.replace(scope, entries, false)
		return ListResult{Entries: cloneEntries(entries), Stale: true}, nil
	}

	logging.Logger.Info("Backend unreachable and nothing cached, serving sample entries")
	samples := sampleEntries(c.clock.Now(), *user)
	c.replace(scope, samples, true)
	return ListResult{Entries: cloneEntries(samples), Sample: true}, nil
}

// overlayUnsynced keeps local edits visible until they are pushed
func (c *EntryCache) overlayUnsynced(ctx context.Context, remote []domain.TimeEntry) []domain.TimeEntry {
	pending, err := c.store.ListUnsynced(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read unsynced entries", "error", err)
	}
	byID := make(map[string]domain.TimeEntry, len(pending))
	for _, e := range pending {
		byID[e.ID] = e
	}

	entries := make([]domain.TimeEntry, 0, len(remote))
	for _, e := range remote {
		if local, ok := byID[e.ID]; ok {
			e.Billable = local.Billable
			e.Description = local.Description
			e.Duration = local.Duration
			e.Unsynced = true
		}
		entries = append(entries, e.Normalize())
	}
	return entries
}

func (c *EntryCache) replace(scope string, entries []domain.TimeEntry, sample bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = cloneEntries(entries)
	c.sample = sample
	c.scope = scope
}

// Add inserts entry unless one with the same id is already present.
// It returns false for duplicates.
func (c *EntryCache) Add(entry domain.TimeEntry) bool {
	entry = entry.Normalize()

	c.mu.Lock()
	if c.sample {
		// sample data is never mixed with real entries
		c.entries = nil
		c.sample = false
	}
	for _, e := range c.entries {
		if e.ID == entry.ID {
			c.mu.Unlock()
			logging.Logger.Debug("Ignoring duplicate entry", "entry_id", entry.ID)
			return false
		}
	}
	c.entries = append([]domain.TimeEntry{entry}, c.entries...)
	scope := c.scope
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistBudget)
	defer cancel()

	if scope == "" {
		if user := c.identity.CurrentUser(); user != nil {
			scope = ownScope(user.ID)
		}
	}
	scopes := []string{scope}
	if owner := entry.OwnerID; owner != "" && ownScope(owner) != scope {
		scopes = append(scopes, ownScope(owner))
	}
	for _, sc := range scopes {
		if sc == "" {
			continue
		}
		if err := c.store.UpsertEntry(ctx, sc, entry); err != nil {
			logging.Logger.Warn("Failed to cache new entry", "entry_id", entry.ID, "scope", sc, "error", err)
		}
	}
	return true
}

// Update changes description, billable or duration. The backend is asked
// first; with offline edits on, a network failure keeps the edit locally
// and flags the entry unsynced.
func (c *EntryCache) Update(ctx context.Context, id string, patch domain.EntryPatch) (*domain.TimeEntry, error) {
	const op = "update time entry"

	if patch.IsEmpty() {
		return nil, domain.NewValidationError(op, "nothing to change")
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		return nil, domain.NewValidationError(op, "duration cannot be negative")
	}
	if strings.HasPrefix(id, samplePrefix) {
		return nil, domain.NewValidationError(op, "sample entries cannot be edited")
	}

	local, known := c.lookup(ctx, id)

	logging.Logger.Info("Updating entry", "entry_id", id)
	updated, err := c.api.UpdateEntry(ctx, id, patch)
	if err != nil {
		if c.offlineEdits && known && errors.Is(err, domain.ErrNetwork) {
			edited := patch.Apply(local)
			edited.Unsynced = true
			c.persist(ctx, edited)
			logging.Logger.Warn("Backend unreachable, entry edited locally", "entry_id", id)
			return &edited, nil
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	var result domain.TimeEntry
	switch {
	case updated != nil:
		result = updated.Normalize()
	case known:
		result = patch.Apply(local)
	default:
		result = patch.Apply(domain.TimeEntry{ID: id})
	}
	result.Unsynced = false

	if updated != nil || known {
		c.persist(ctx, result)
	}
	return &result, nil
}

// persist writes entry to memory and every cached scope
func (c *EntryCache) persist(ctx context.Context, entry domain.TimeEntry) {
	c.mu.Lock()
	for i, e := range c.entries {
		if e.ID == entry.ID {
			c.entries[i] = entry
		}
	}
	scope := c.scope
	c.mu.Unlock()

	if scope == "" {
		if user := c.identity.CurrentUser(); user != nil {
			scope = ownScope(user.ID)
		}
	}
	if err := c.store.UpsertEntry(ctx, scope, entry); err != nil {
		logging.Logger.Warn("Failed to cache entry", "entry_id", entry.ID, "error", err)
	}
}

// lookup finds an entry in memory, then in the local cache
func (c *EntryCache) lookup(ctx context.Context, id string) (domain.TimeEntry, bool) {
	c.mu.RLock()
	for _, e := range c.entries {
		if e.ID == id {
			c.mu.RUnlock()
			return e, true
		}
	}
	c.mu.RUnlock()

	user := c.identity.CurrentUser()
	if user == nil {
		return domain.TimeEntry{}, false
	}
	scopes := []string{ownScope(user.ID)}
	if user.Role.CanViewAll() {
		scopes = append(scopes, scopeAll)
	}
	for _, scope := range scopes {
		cached, err := c.store.ListEntries(ctx, scope)
		if err != nil {
			logging.Logger.Warn("Failed to read cached entries", "scope", scope, "error", err)
			continue
		}
		for _, e := range cached {
			if e.ID == id {
				return e, true
			}
		}
	}
	return domain.TimeEntry{}, false
}

// Remove deletes an entry. When the backend cannot be reached the entry is
// still removed locally and localOnly is true.
func (c *EntryCache) Remove(ctx context.Context, id string) (localOnly bool, err error) {
	if strings.HasPrefix(id, samplePrefix) {
		return false, domain.NewValidationError("delete time entry", "sample entries cannot be deleted")
	}

	logging.Logger.Info("Deleting entry", "entry_id", id)
	if err := c.api.DeleteEntry(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNetwork) {
			return false, fmt.Errorf("failed to delete entry: %w", err)
		}
		logging.Logger.Warn("Backend unreachable, removing entry locally only", "entry_id", id)
		localOnly = true
	}

	c.mu.Lock()
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	c.entries = kept
	c.mu.Unlock()

	if err := c.store.DeleteEntry(ctx, id); err != nil {
		logging.Logger.Warn("Failed to remove cached entry", "entry_id", id, "error", err)
	}
	return localOnly, nil
}

// PushUnsynced retries every offline edit. It stops at the first network
// failure; other failures are counted and skipped.
func (c *EntryCache) PushUnsynced(ctx context.Context) (PushResult, error) {
	pending, err := c.store.ListUnsynced(ctx)
	if err != nil {
		return PushResult{}, fmt.Errorf("failed to list unsynced entries: %w", err)
	}

	var result PushResult
	for _, e := range pending {
		description, billable, duration := e.Description, e.Billable, e.Duration
		patch := domain.EntryPatch{Billable: &billable, Description: &description, Duration: &duration}

		updated, err := c.api.UpdateEntry(ctx, e.ID, patch)
		if err != nil {
			if errors.Is(err, domain.ErrNetwork) {
				return result, fmt.Errorf("failed to push entry %s: %w", e.ID, err)
			}
			logging.Logger.Warn("Failed to push unsynced entry", "entry_id", e.ID, "error", err)
			result.Failed++
			continue
		}

		synced := e
		if updated != nil {
			synced = updated.Normalize()
		}
		synced.Unsynced = false
		c.persist(ctx, synced)
		result.Pushed++
	}

	logging.Logger.Info("Pushed unsynced entries", "pushed", result.Pushed, "failed", result.Failed)
	return result, nil
}

// Entries returns a snapshot of the in-memory list
func (c *EntryCache) Entries() []domain.TimeEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneEntries(c.entries)
}

// IsSample reports whether the in-memory list is the built-in sample set
func (c *EntryCache) IsSample() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sample
}

// Summary totals the in-memory list
func (c *EntryCache) Summary() domain.EntrySummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.Summarize(c.entries)
}

func cloneEntries(entries []domain.TimeEntry) []domain.TimeEntry {
	if entries == nil {
		return nil
	}
	return append([]domain.TimeEntry(nil), entries...)
}

// sampleEntries is the placeholder list shown when nothing else is available
func sampleEntries(now time.Time, user domain.User) []domain.TimeEntry {
	day := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	samples := []struct {
		project, task, description string
		offset, minutes            int
		billable                   bool
	}{
		{"Website Redesign", "Homepage layout", "Sample entry", 0, 90, true},
		{"Mobile App", "Login screen", "Sample entry", 2, 45, true},
		{"Internal Training", "Onboarding", "Sample entry", 4, 60, false},
	}

	entries := make([]domain.TimeEntry, 0, len(samples))
	for i, s := range samples {
		start := day.Add(time.Duration(s.offset) * time.Hour)
		entries = append(entries, domain.TimeEntry{
			Billable:     s.billable,
			Description:  s.description,
			Duration:     s.minutes,
			EndTime:      start.Add(time.Duration(s.minutes) * time.Minute),
			ID:           fmt.Sprintf("%s%d", samplePrefix, i+1),
			OwnerID:      user.ID,
			OwnerName:    user.DisplayName(),
			ProjectName:  s.project,
			Sample:       true,
			StartTime:    start,
			Status:       domain.StatusCompleted,
			TaskName:     s.task,
			TrackingType: domain.TrackingHourly,
		})
	}
	return entries
}
