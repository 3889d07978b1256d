package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

const taskCacheSize = 64

// CatalogService reads projects and tasks. Task lists are cached per
// project for a short time because the timer form refetches them on every
// project change.
type CatalogService struct {
	projects  ports.ProjectAPI
	taskCache *expirable.LRU[string, []domain.Task]
	tasks     ports.TaskAPI
}

// NewCatalogService creates a new CatalogService. A ttl of zero disables caching.
func NewCatalogService(projects ports.ProjectAPI, tasks ports.TaskAPI, ttl time.Duration) *CatalogService {
	s := &CatalogService{projects: projects, tasks: tasks}
	if ttl > 0 {
		s.taskCache = expirable.NewLRU[string, []domain.Task](taskCacheSize, nil, ttl)
	}
	return s
}

// Projects lists every project visible to the user
func (s *CatalogService) Projects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	logging.Logger.Debug("Projects loaded", "count", len(projects))
	return projects, nil
}

// Tasks lists the tasks of projectID, served from cache when fresh
func (s *CatalogService) Tasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	if projectID == "" {
		return nil, domain.NewValidationError("list tasks", "project is required")
	}

	if s.taskCache != nil {
		if cached, ok := s.taskCache.Get(projectID); ok {
			logging.Logger.Debug("Task list served from cache", "project_id", projectID)
			return cloneTasks(cached), nil
		}
	}

	tasks, err := s.tasks.ListTasks(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if s.taskCache != nil {
		s.taskCache.Add(projectID, cloneTasks(tasks))
	}
	logging.Logger.Debug("Tasks loaded", "project_id", projectID, "count", len(tasks))
	return tasks, nil
}

// CreateTask creates a task in projectID and appends it to the cached list
func (s *CatalogService) CreateTask(ctx context.Context, projectID, name string) (*domain.Task, error) {
	name = strings.TrimSpace(name)
	if projectID == "" {
		return nil, domain.NewValidationError("create task", "project is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("create task", "task name is required")
	}

	logging.Logger.Info("Creating task", "project_id", projectID, "name", name)
	task, err := s.tasks.CreateTask(ctx, ports.CreateTaskRequest{Name: name, ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if s.taskCache != nil {
		if cached, ok := s.taskCache.Get(projectID); ok {
			s.taskCache.Add(projectID, append(cloneTasks(cached), *task))
		}
	}
	return task, nil
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	if tasks == nil {
		return nil
	}
	return append([]domain.Task(nil), tasks...)
}
