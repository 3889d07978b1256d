package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

// TeamService is a pass-through to the roster endpoints. It keeps the
// last fetched roster so views can render between refreshes.
type TeamService struct {
	api      ports.TeamAPI
	identity Identity

	mu      sync.RWMutex
	members []domain.TeamMember
}

// NewTeamService creates a new TeamService
func NewTeamService(api ports.TeamAPI, identity Identity) *TeamService {
	return &TeamService{api: api, identity: identity}
}

func (s *TeamService) authorize(op string) error {
	user := s.identity.CurrentUser()
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	if !user.Role.CanViewAll() {
		return domain.NewValidationError(op, "only admins and managers can manage the team")
	}
	return nil
}

// List fetches the roster
func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	if err := s.authorize("list team"); err != nil {
		return nil, err
	}

	members, err := s.api.ListTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}

	s.mu.Lock()
	s.members = append([]domain.TeamMember(nil), members...)
	s.mu.Unlock()

	logging.Logger.Debug("Team loaded", "count", len(members))
	return members, nil
}

// Refresh re-pulls the roster. Callers own the refresh interval.
func (s *TeamService) Refresh(ctx context.Context) error {
	_, err := s.List(ctx)
	return err
}

// Members returns the last fetched roster
func (s *TeamService) Members() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TeamMember(nil), s.members...)
}

// Add creates a team member
func (s *TeamService) Add(ctx context.Context, req ports.TeamMemberRequest) (*domain.TeamMember, error) {
	const op = "add team member"
	if err := s.authorize(op); err != nil {
		return nil, err
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Email == "" {
		return nil, domain.NewValidationError(op, "name and email are required")
	}
	if req.Role == "" {
		req.Role = string(domain.RoleEmployee)
	} else if _, err := domain.ParseRole(req.Role); err != nil {
		return nil, domain.NewValidationError(op, err.Error())
	}
	if strings.TrimSpace(req.Phone) == "" {
		req.Phone = DefaultPhone
	}

	logging.Logger.Info("Adding team member", "email", req.Email, "role", req.Role)
	member, err := s.api.AddMember(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	s.mu.Lock()
	s.members = append(s.members, *member)
	s.mu.Unlock()
	return member, nil
}

// Update edits a team member; empty fields are left unchanged
func (s *TeamService) Update(ctx context.Context, id string, req ports.TeamMemberRequest) (*domain.TeamMember, error) {
	const op = "update team member"
	if err := s.authorize(op); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.NewValidationError(op, "member id is required")
	}
	if req.Role != "" {
		if _, err := domain.ParseRole(req.Role); err != nil {
			return nil, domain.NewValidationError(op, err.Error())
		}
	}
	if req == (ports.TeamMemberRequest{}) {
		return nil, domain.NewValidationError(op, "nothing to change")
	}

	logging.Logger.Info("Updating team member", "member_id", id)
	member, err := s.api.UpdateMember(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	s.mu.Lock()
	for i, m := range s.members {
		if m.ID == id {
			s.members[i] = *member
		}
	}
	s.mu.Unlock()
	return member, nil
}

// Delete removes a team member
func (s *TeamService) Delete(ctx context.Context, id string) error {
	const op = "delete team member"
	if err := s.authorize(op); err != nil {
		return err
	}
	if id == "" {
		return domain.NewValidationError(op, "member id is required")
	}

	logging.Logger.Info("Deleting team member", "member_id", id)
	if err := s.api.DeleteMember(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	s.mu.Lock()
	kept := s.members[:0]
	for _, m := range s.members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.members = kept
	s.mu.Unlock()
	return nil
}
