package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
)

// Login exchanges credentials for a session. Rejections from the login
// endpoint mean bad credentials, not an expired session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	const op = "login"
	raw, err := c.do(ctx, request{
		body:   map[string]string{"email": email, "password": password},
		method: http.MethodPost,
		op:     op,
		path:   "/auth/login",
		public: true,
	})
	if err != nil {
		return nil, asInvalidCredentials(err)
	}
	return normalizeAuth(op, raw)
}

// SignupMember registers an employee or manager
func (c *Client) SignupMember(ctx context.Context, req ports.MemberSignupRequest) (*domain.Session, error) {
	const op = "signup"
	raw, err := c.do(ctx, request{body: req, method: http.MethodPost, op: op, path: "/auth/member/signup", public: true})
	if err != nil {
		return nil, err
	}
	return normalizeAuth(op, raw)
}

// SignupUser registers an admin
func (c *Client) SignupUser(ctx context.Context, req ports.UserSignupRequest) (*domain.Session, error) {
	const op = "signup"
	raw, err := c.do(ctx, request{body: req, method: http.MethodPost, op: op, path: "/auth/user/signup", public: true})
	if err != nil {
		return nil, err
	}
	return normalizeAuth(op, raw)
}

// Me fetches the user behind the current token
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	const op = "verify session"
	raw, err := c.do(ctx, request{method: http.MethodGet, op: op, path: "/auth/me"})
	if err != nil {
		return nil, err
	}
	return normalizeMe(op, raw)
}

func asInvalidCredentials(err error) error {
	var e *domain.Error
	if !errors.As(err, &e) {
		return err
	}
	switch e.Status {
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusNotFound:
		return &domain.Error{Kind: domain.KindInvalidCredentials, Op: e.Op, Message: e.Message, Status: e.Status}
	}
	return err
}
