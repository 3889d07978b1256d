package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles known to the backend
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole accepts the backend spellings ("Admin", "employee", ...)
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleManager:
		return RoleManager, nil
	case RoleEmployee:
		return RoleEmployee, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// CanViewAll reports whether the role may list every user's entries
func (r Role) CanViewAll() bool {
	return r == RoleAdmin || r == RoleManager
}

// DashboardTitle is the role-specific landing title
func (r Role) DashboardTitle() string {
	switch r {
	case RoleAdmin:
		return "Admin dashboard"
	case RoleManager:
		return "Manager dashboard"
	default:
		return "Employee dashboard"
	}
}

// User is the authenticated identity
type User struct {
	Department string `json:"department,omitempty"`
	Email      string `json:"email"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Role       Role   `json:"role"`
}

// DisplayName falls back to the email when the backend has no name
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Session is the authenticated identity plus its bearer token.
// Role is fixed for the lifetime of a session.
type Session struct {
	Token string
	User  User
}
