package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
)

const userType = "TeamMember"

// StartTimer creates an in-progress entry on the backend
func (c *Client) StartTimer(ctx context.Context, req ports.StartTimerRequest) (*domain.TimeEntry, error) {
	const op = "start timer"
	description := req.Description
	if description == "" {
		description = "Time tracking"
	}
	payload := map[string]any{
		"billable":     req.Billable,
		"description":  description,
		"project":      req.ProjectID,
		"task":         req.TaskID,
		"trackingType": req.TrackingType.Label(),
		"userId":       req.UserID,
		"userType":     userType,
	}
	raw, err := c.do(ctx, request{body: payload, method: http.MethodPost, op: op, path: "/time-entries/start"})
	if err != nil {
		return nil, err
	}
	return normalizeEntry(op, raw)
}

// StopTimer completes an in-progress entry
func (c *Client) StopTimer(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	const op = "stop timer"
	raw, err := c.do(ctx, request{method: http.MethodPut, op: op, path: "/time-entries/" + url.PathEscape(entryID) + "/stop"})
	if err != nil {
		return nil, err
	}
	return normalizeEntry(op, raw)
}

// CreateEntry records a completed entry
func (c *Client) CreateEntry(ctx context.Context, req ports.CreateEntryRequest) (*domain.TimeEntry, error) {
	const op = "create time entry"
	payload := map[string]any{
		"billable":      req.Billable,
		"description":   req.Description,
		"duration":      req.Duration,
		"endTime":       req.EndTime.UTC().Format(time.RFC3339),
		"isManualEntry": req.IsManualEntry,
		"project":       req.ProjectID,
		"startTime":     req.StartTime.UTC().Format(time.RFC3339),
		"task":          req.TaskID,
		"trackingType":  req.TrackingType.Label(),
		"userId":        req.UserID,
		"userType":      userType,
	}
	raw, err := c.do(ctx, request{body: payload, method: http.MethodPost, op: op, path: "/time-entries"})
	if err != nil {
		return nil, err
	}
	return normalizeEntry(op, raw)
}

// ListEntries lists entries matching filter
func (c *Client) ListEntries(ctx context.Context, filter ports.EntryFilter) ([]domain.TimeEntry, error) {
	const op = "list time entries"
	query := url.Values{}
	if filter.UserID != "" {
		query.Set("userId", filter.UserID)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status.Label())
	}
	if filter.ProjectID != "" {
		query.Set("project", filter.ProjectID)
	}
	if !filter.From.IsZero() {
		query.Set("startDate", filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		query.Set("endDate", filter.To.Format("2006-01-02"))
	}

	raw, err := c.do(ctx, request{method: http.MethodGet, op: op, path: "/time-entries", query: query})
	if err != nil {
		return nil, err
	}
	return normalizeEntries(op, raw)
}

// UpdateEntry sends only the fields the patch sets. It returns nil when the
// backend acknowledges without echoing the entry.
func (c *Client) UpdateEntry(ctx context.Context, entryID string, patch domain.EntryPatch) (*domain.TimeEntry, error) {
	const op = "update time entry"
	payload := map[string]any{}
	if patch.Billable != nil {
		payload["billable"] = *patch.Billable
	}
	if patch.Description != nil {
		payload["description"] = *patch.Description
	}
	if patch.Duration != nil {
		payload["duration"] = *patch.Duration
	}

	raw, err := c.do(ctx, request{body: payload, method: http.MethodPut, op: op, path: "/time-entries/" + url.PathEscape(entryID)})
	if err != nil {
		return nil, err
	}
	if !carriesEntity(raw) {
		return nil, nil
	}
	return normalizeEntry(op, raw)
}

// DeleteEntry removes an entry
func (c *Client) DeleteEntry(ctx context.Context, entryID string) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, op: "delete time entry", path: "/time-entries/" + url.PathEscape(entryID)})
	return err
}
