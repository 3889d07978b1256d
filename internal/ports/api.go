package ports

import (
	"context"
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// TokenSource supplies the bearer token for authenticated calls
type TokenSource interface {
	Token() string
}

// MemberSignupRequest registers an employee or manager
type MemberSignupRequest struct {
	Department string `json:"department"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Role       string `json:"role"`
}

// UserSignupRequest registers an admin
type UserSignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// AuthAPI authenticates against the backend
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Me(ctx context.Context) (*domain.User, error)
	SignupMember(ctx context.Context, req MemberSignupRequest) (*domain.Session, error)
	SignupUser(ctx context.Context, req UserSignupRequest) (*domain.Session, error)
}

// ProjectAPI reads projects
type ProjectAPI interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// CreateTaskRequest creates a task inline from the timer form
type CreateTaskRequest struct {
	Description string
	Name        string
	ProjectID   string
}

// TaskAPI reads and creates tasks scoped to a project
type TaskAPI interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*domain.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]domain.Task, error)
}

// StartTimerRequest starts a remote timer
type StartTimerRequest struct {
	Billable     bool
	Description  string
	ProjectID    string
	TaskID       string
	TrackingType domain.TrackingType
	UserID       string
}

// CreateEntryRequest creates a completed entry (manual or recovered degraded timer)
type CreateEntryRequest struct {
	Billable      bool
	Description   string
	Duration      int // minutes
	EndTime       time.Time
	IsManualEntry bool
	ProjectID     string
	StartTime     time.Time
	TaskID        string
	TrackingType  domain.TrackingType
	UserID        string
}

// EntryFilter narrows an entry listing. Empty fields are not sent.
type EntryFilter struct {
	From      time.Time
	ProjectID string
	Status    domain.EntryStatus
	To        time.Time
	UserID    string
}

// TimerAPI starts and stops remote timers
type TimerAPI interface {
	StartTimer(ctx context.Context, req StartTimerRequest) (*domain.TimeEntry, error)
	StopTimer(ctx context.Context, entryID string) (*domain.TimeEntry, error)
}

// TimeEntryReader lists entries
type TimeEntryReader interface {
	ListEntries(ctx context.Context, filter EntryFilter) ([]domain.TimeEntry, error)
}

// TimeEntryWriter creates, updates and deletes entries
type TimeEntryWriter interface {
	CreateEntry(ctx context.Context, req CreateEntryRequest) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	UpdateEntry(ctx context.Context, entryID string, patch domain.EntryPatch) (*domain.TimeEntry, error)
}

// TimeEntryAPI is the composite entry interface
type TimeEntryAPI interface {
	TimerAPI
	TimeEntryReader
	TimeEntryWriter
}

// TeamMemberRequest carries the editable roster fields
type TeamMemberRequest struct {
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty"`
	IsActive   *bool  `json:"isActive,omitempty"`
	Name       string `json:"name,omitempty"`
	Password   string `json:"password,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Position   string `json:"position,omitempty"`
	Role       string `json:"role,omitempty"`
}

// TeamAPI is a pass-through to the roster endpoints
type TeamAPI interface {
	AddMember(ctx context.Context, req TeamMemberRequest) (*domain.TeamMember, error)
	DeleteMember(ctx context.Context, id string) error
	ListTeam(ctx context.Context) ([]domain.TeamMember, error)
	UpdateMember(ctx context.Context, id string, req TeamMemberRequest) (*domain.TeamMember, error)
}

// APIClient is the composite backend interface
type APIClient interface {
	AuthAPI
	ProjectAPI
	TaskAPI
	TeamAPI
	TimeEntryAPI
}
