package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// ref is a reference that arrives either as an id string or as a
// populated object with _id and name
type ref struct {
	ID   string
	Name string
}

func (r *ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	var obj struct {
		AltID string `json:"id"`
		Email string `json:"email"`
		ID    string `json:"_id"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = firstNonEmpty(obj.ID, obj.AltID)
	r.Name = firstNonEmpty(obj.Name, obj.Email)
	return nil
}

type wireID struct {
	AltID string `json:"id"`
	ID    string `json:"_id"`
}

func (w wireID) id() string {
	return firstNonEmpty(w.ID, w.AltID)
}

type wireUser struct {
	wireID
	Department string `json:"department"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
}

type wireAuth struct {
	Token string    `json:"token"`
	User  *wireUser `json:"user"`
}

type wireProject struct {
	wireID
	Client      ref    `json:"client"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Status      string `json:"status"`
}

type wireTask struct {
	wireID
	Description string `json:"description"`
	Name        string `json:"name"`
	Priority    string `json:"priority"`
	Project     ref    `json:"project"`
	Status      string `json:"status"`
}

type wireEntry struct {
	wireID
	Billable      bool      `json:"billable"`
	Description   string    `json:"description"`
	Duration      float64   `json:"duration"`
	EndTime       time.Time `json:"endTime"`
	IsManualEntry bool      `json:"isManualEntry"`
	Project       ref       `json:"project"`
	StartTime     time.Time `json:"startTime"`
	Status        string    `json:"status"`
	Task          ref       `json:"task"`
	TrackingType  string    `json:"trackingType"`
	User          ref       `json:"user"`
	UserID        ref       `json:"userId"`
}

type wireMember struct {
	wireID
	Department string `json:"department"`
	Email      string `json:"email"`
	IsActive   *bool  `json:"isActive"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Role       string `json:"role"`
}

// carriesEntity reports whether raw looks like an object with an id,
// directly or under timeEntry
func carriesEntity(raw json.RawMessage) bool {
	var shape struct {
		wireID
		TimeEntry *wireID `json:"timeEntry"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &shape) != nil {
		return false
	}
	return shape.id() != "" || (shape.TimeEntry != nil && shape.TimeEntry.id() != "")
}

func parseError(op string, format string, args ...any) error {
	return &domain.Error{Kind: domain.KindParse, Op: op, Message: fmt.Sprintf(format, args...)}
}

func decode(op string, raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return parseError(op, "empty response body")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &domain.Error{Kind: domain.KindParse, Op: op, Message: "unexpected response shape", Err: err}
	}
	return nil
}

// decodeList accepts either a bare array or an object holding the array under key
func decodeList[T any](op string, raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, &domain.Error{Kind: domain.KindParse, Op: op, Message: "unexpected response shape", Err: err}
		}
		inner, ok := wrapped[key]
		if !ok {
			return nil, parseError(op, "response has no %q list", key)
		}
		trimmed = inner
	}

	var items []T
	if err := decode(op, trimmed, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func normalizeUser(op string, w *wireUser) (*domain.User, error) {
	if w == nil {
		return nil, parseError(op, "response has no user")
	}
	if w.id() == "" {
		return nil, parseError(op, "user has no id")
	}
	role, err := domain.ParseRole(w.Role)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindParse, Op: op, Message: "user has an unknown role", Err: err}
	}
	return &domain.User{
		Department: w.Department,
		Email:      w.Email,
		ID:         w.id(),
		Name:       w.Name,
		Phone:      w.Phone,
		Role:       role,
	}, nil
}

// normalizeAuth handles login and signup responses
func normalizeAuth(op string, raw json.RawMessage) (*domain.Session, error) {
	var w wireAuth
	if err := decode(op, raw, &w); err != nil {
		return nil, err
	}
	if w.Token == "" {
		return nil, parseError(op, "response has no token")
	}
	user, err := normalizeUser(op, w.User)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: w.Token, User: *user}, nil
}

// normalizeMe handles GET /auth/me, which returns the user bare or under "user"
func normalizeMe(op string, raw json.RawMessage) (*domain.User, error) {
	var shape struct {
		User *wireUser `json:"user"`
	}
	if err := decode(op, raw, &shape); err != nil {
		return nil, err
	}
	if shape.User != nil {
		return normalizeUser(op, shape.User)
	}

	var w wireUser
	if err := decode(op, raw, &w); err != nil {
		return nil, err
	}
	return normalizeUser(op, &w)
}

func normalizeProjects(op string, raw json.RawMessage) ([]domain.Project, error) {
	items, err := decodeList[wireProject](op, raw, "projects")
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(items))
	for _, w := range items {
		if w.id() == "" {
			return nil, parseError(op, "project %q has no id", w.Name)
		}
		projects = append(projects, domain.Project{
			Client:      w.Client.Name,
			Description: w.Description,
			ID:          w.id(),
			Name:        w.Name,
			Status:      w.Status,
		})
	}
	return projects, nil
}

func taskFromWire(op string, w wireTask, projectID string) (domain.Task, error) {
	if w.id() == "" {
		return domain.Task{}, parseError(op, "task %q has no id", w.Name)
	}
	return domain.Task{
		Description: w.Description,
		ID:          w.id(),
		Name:        w.Name,
		Priority:    w.Priority,
		ProjectID:   firstNonEmpty(w.Project.ID, projectID),
		Status:      w.Status,
	}, nil
}

func normalizeTasks(op string, raw json.RawMessage, projectID string) ([]domain.Task, error) {
	items, err := decodeList[wireTask](op, raw, "tasks")
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(items))
	for _, w := range items {
		task, err := taskFromWire(op, w, projectID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func normalizeTask(op string, raw json.RawMessage, projectID string) (*domain.Task, error) {
	var w wireTask
	if err := decode(op, raw, &w); err != nil {
		return nil, err
	}
	task, err := taskFromWire(op, w, projectID)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func entryFromWire(op string, w wireEntry) (domain.TimeEntry, error) {
	if w.id() == "" {
		return domain.TimeEntry{}, parseError(op, "time entry has no id")
	}

	owner := w.User
	if owner.ID == "" {
		owner = w.UserID
	}

	entry := domain.TimeEntry{
		Billable:      w.Billable,
		Description:   w.Description,
		Duration:      int(w.Duration),
		EndTime:       w.EndTime,
		ID:            w.id(),
		IsManualEntry: w.IsManualEntry,
		OwnerID:       owner.ID,
		OwnerName:     owner.Name,
		ProjectID:     w.Project.ID,
		ProjectName:   w.Project.Name,
		StartTime:     w.StartTime,
		TaskID:        w.Task.ID,
		TaskName:      w.Task.Name,
	}

	if w.Status != "" {
		status, err := domain.ParseEntryStatus(w.Status)
		if err != nil {
			return domain.TimeEntry{}, &domain.Error{Kind: domain.KindParse, Op: op, Message: "time entry has an unknown status", Err: err}
		}
		entry.Status = status
	} else if w.EndTime.IsZero() {
		entry.Status = domain.StatusInProgress
	} else {
		entry.Status = domain.StatusCompleted
	}

	if w.TrackingType != "" {
		tt, err := domain.ParseTrackingType(w.TrackingType)
		if err != nil {
			return domain.TimeEntry{}, &domain.Error{Kind: domain.KindParse, Op: op, Message: "time entry has an unknown tracking type", Err: err}
		}
		entry.TrackingType = tt
	}

	return entry.Normalize(), nil
}

func normalizeEntry(op string, raw json.RawMessage) (*domain.TimeEntry, error) {
	var shape struct {
		TimeEntry *wireEntry `json:"timeEntry"`
	}
	if err := decode(op, raw, &shape); err != nil {
		return nil, err
	}

	var w wireEntry
	if shape.TimeEntry != nil {
		w = *shape.TimeEntry
	} else if err := decode(op, raw, &w); err != nil {
		return nil, err
	}

	entry, err := entryFromWire(op, w)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func normalizeEntries(op string, raw json.RawMessage) ([]domain.TimeEntry, error) {
	items, err := decodeList[wireEntry](op, raw, "timeEntries")
	if err != nil {
		return nil, err
	}
	entries := make([]domain.TimeEntry, 0, len(items))
	for _, w := range items {
		entry, err := entryFromWire(op, w)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func memberFromWire(op string, w wireMember) (domain.TeamMember, error) {
	if w.id() == "" {
		return domain.TeamMember{}, parseError(op, "team member %q has no id", w.Name)
	}
	member := domain.TeamMember{
		Department: w.Department,
		Email:      w.Email,
		ID:         w.id(),
		IsActive:   w.IsActive == nil || *w.IsActive,
		Name:       w.Name,
		Phone:      w.Phone,
		Position:   w.Position,
	}
	if w.Role != "" {
		role, err := domain.ParseRole(w.Role)
		if err != nil {
			return domain.TeamMember{}, &domain.Error{Kind: domain.KindParse, Op: op, Message: "team member has an unknown role", Err: err}
		}
		member.Role = role
	}
	return member, nil
}

func normalizeTeam(op string, raw json.RawMessage) ([]domain.TeamMember, error) {
	items, err := decodeList[wireMember](op, raw, "members")
	if err != nil {
		return nil, err
	}
	members := make([]domain.TeamMember, 0, len(items))
	for _, w := range items {
		m, err := memberFromWire(op, w)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func normalizeMember(op string, raw json.RawMessage) (*domain.TeamMember, error) {
	var w wireMember
	if err := decode(op, raw, &w); err != nil {
		return nil, err
	}
	m, err := memberFromWire(op, w)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
