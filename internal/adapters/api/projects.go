package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
)

// ListProjects returns every project visible to the caller
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	const op = "list projects"
	raw, err := c.do(ctx, request{method: http.MethodGet, op: op, path: "/projects/all"})
	if err != nil {
		return nil, err
	}
	return normalizeProjects(op, raw)
}

// ListTasks returns the tasks of one project
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	const op = "list tasks"
	raw, err := c.do(ctx, request{
		method: http.MethodGet,
		op:     op,
		path:   "/tasks",
		query:  url.Values{"project": {projectID}},
	})
	if err != nil {
		return nil, err
	}
	return normalizeTasks(op, raw, projectID)
}

// CreateTask creates a task with the defaults the timer form uses
func (c *Client) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*domain.Task, error) {
	const op = "create task"
	description := req.Description
	if description == "" {
		description = "Task created from time tracker"
	}
	payload := map[string]any{
		"actualHours":    0,
		"assignedModel":  "TeamMember",
		"description":    description,
		"estimatedHours": 0,
		"isActive":       true,
		"name":           req.Name,
		"priority":       "medium",
		"project":        req.ProjectID,
		"status":         "todo",
		"tags":           []string{},
	}
	raw, err := c.do(ctx, request{body: payload, method: http.MethodPost, op: op, path: "/tasks"})
	if err != nil {
		return nil, err
	}
	return normalizeTask(op, raw, req.ProjectID)
}
