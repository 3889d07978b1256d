package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

// DefaultVerifyTimeout bounds background session verification
const DefaultVerifyTimeout = 5 * time.Second

// SessionService owns the authenticated identity. Token and user are only
// ever written here, and always together.
type SessionService struct {
	auth          ports.AuthAPI
	clock         ports.Clock
	store         ports.CredentialStore
	verifyGroup   singleflight.Group
	verifyTimeout time.Duration

	mu        sync.RWMutex
	listeners []func()
	session   *domain.Session
}

// NewSessionService creates a new SessionService
func NewSessionService(
	auth ports.AuthAPI,
	store ports.CredentialStore,
	clock ports.Clock,
	verifyTimeout time.Duration,
) *SessionService {
	if verifyTimeout <= 0 {
		verifyTimeout = DefaultVerifyTimeout
	}
	return &SessionService{
		auth:          auth,
		clock:         clock,
		store:         store,
		verifyTimeout: verifyTimeout,
	}
}

// Load rehydrates the persisted session. It is optimistic: the token is only
// rejected here when it is a JWT whose exp claim has passed.
func (s *SessionService) Load(ctx context.Context) (*domain.User, error) {
	session, err := s.store.LoadCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		logging.Logger.Debug("No persisted session")
		return nil, nil
	}

	if tokenExpired(session.Token, s.clock.Now()) {
		logging.Logger.Info("Persisted token expired, clearing session", "user_id", session.User.ID)
		if err := s.store.ClearCredentials(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear expired session: %w", err)
		}
		return nil, nil
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	logging.Logger.Debug("Session rehydrated", "user_id", session.User.ID, "role", session.User.Role)
	user := session.User
	return &user, nil
}

// Login authenticates and persists the session on success only
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("login", "email and password are required")
	}

	logging.Logger.Info("Logging in", "email", email)
	session, err := s.auth.Login(ctx, email, password)
	if err != nil {
		logging.Logger.Warn("Login failed", "email", email, "error", err)
		return nil, err
	}

	if err := s.establish(ctx, *session); err != nil {
		return nil, err
	}
	logging.Logger.Info("Logged in", "user_id", session.User.ID, "role", session.User.Role)
	user := session.User
	return &user, nil
}

// Signup creates an account and persists the resulting session. Admins go
// to the user endpoint, everyone else to the member endpoint.
func (s *SessionService) Signup(ctx context.Context, params SignupParams) (*domain.User, error) {
	params.Email = strings.TrimSpace(params.Email)
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, domain.NewValidationError("signup", "name, email and password are required")
	}
	if !strings.Contains(params.Email, "@") {
		return nil, domain.NewValidationError("signup", "email address is not valid")
	}
	if params.Role == "" {
		params.Role = domain.RoleEmployee
	}
	if _, err := domain.ParseRole(string(params.Role)); err != nil {
		return nil, domain.NewValidationError("signup", err.Error())
	}

	phone := strings.TrimSpace(params.Phone)
	if phone == "" {
		phone = DefaultPhone
	}

	logging.Logger.Info("Signing up", "email", params.Email, "role", params.Role)

	var (
		session *domain.Session
		err     error
	)
	if params.Role == domain.RoleAdmin {
		session, err = s.auth.SignupUser(ctx, ports.UserSignupRequest{
			Email:    params.Email,
			Name:     params.Name,
			Password: params.Password,
			Phone:    phone,
			Role:     string(params.Role),
		})
	} else {
		session, err = s.auth.SignupMember(ctx, ports.MemberSignupRequest{
			Department: params.Department,
			Email:      params.Email,
			Name:       params.Name,
			Password:   params.Password,
			Phone:      phone,
			Position:   params.Position,
			Role:       string(params.Role),
		})
	}
	if err != nil {
		logging.Logger.Warn("Signup failed", "email", params.Email, "error", err)
		return nil, err
	}

	if err := s.establish(ctx, *session); err != nil {
		return nil, err
	}
	user := session.User
	return &user, nil
}

func (s *SessionService) establish(ctx context.Context, session domain.Session) error {
	if err := s.store.SaveCredentials(ctx, session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
	return nil
}

// Logout clears both persisted keys. The backend is not called.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.store.ClearCredentials(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logging.Logger.Info("Logged out")
	return nil
}

// CurrentUser returns the cached user, nil when logged out
func (s *SessionService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	user := s.session.User
	return &user
}

// Token implements ports.TokenSource
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// OnSessionCleared registers fn to run after an auth rejection tears the session down
func (s *SessionService) OnSessionCleared(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// HandleAuthRejected is installed on the API client: any 401 on an
// authenticated call ends the session
func (s *SessionService) HandleAuthRejected() {
	s.mu.Lock()
	hadSession := s.session != nil
	s.session = nil
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	if !hadSession {
		return
	}

	logging.Logger.Warn("Session rejected by backend, clearing credentials")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.ClearCredentials(ctx); err != nil {
		logging.Logger.Error("Failed to clear rejected session", "error", err)
	}

	for _, fn := range listeners {
		fn()
	}
}

// Verify re-fetches the current user in the background. Concurrent callers
// share one request, which is bounded by the verify timeout regardless of
// the callers' contexts. Only an auth rejection or a role change ends the
// session; slow or failed checks keep the cached user.
func (s *SessionService) Verify(ctx context.Context) (VerifyResult, error) {
	s.mu.RLock()
	current := s.session
	s.mu.RUnlock()
	if current == nil {
		return VerifyResult{}, domain.ErrNotAuthenticated
	}

	v, _, _ := s.verifyGroup.Do("verify", func() (any, error) {
		return s.verify(ctx, *current), nil
	})
	return v.(VerifyResult), nil
}

func (s *SessionService) verify(ctx context.Context, current domain.Session) VerifyResult {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.verifyTimeout)
	defer cancel()

	logging.Logger.Debug("Verifying session", "user_id", current.User.ID, "timeout", s.verifyTimeout)
	user, err := s.auth.Me(ctx)

	cached := current.User
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAuthRejected):
		s.HandleAuthRejected()
		return VerifyResult{Err: err, Outcome: VerifyRejected}
	default:
		logging.Logger.Info("Session verification inconclusive, keeping cached user", "error", err)
		return VerifyResult{Err: err, Outcome: VerifyKept, User: &cached}
	}

	if user.Role != current.User.Role {
		logging.Logger.Warn("Role changed under an active session, tearing down",
			"user_id", current.User.ID, "was", current.User.Role, "now", user.Role)
		s.HandleAuthRejected()
		return VerifyResult{
			Err:     &domain.Error{Kind: domain.KindAuthRejected, Op: "verify session", Message: "role changed, log in again"},
			Outcome: VerifyRejected,
		}
	}

	s.mu.Lock()
	if s.session == nil || s.session.Token != current.Token {
		// logged out or re-authenticated while the check was in flight
		s.mu.Unlock()
		return VerifyResult{Outcome: VerifyKept, User: &cached}
	}
	refreshed := domain.Session{Token: current.Token, User: *user}
	s.session = &refreshed
	s.mu.Unlock()

	if err := s.store.SaveCredentials(ctx, refreshed); err != nil {
		logging.Logger.Warn("Failed to persist refreshed user", "error", err)
	}

	logging.Logger.Debug("Session verified", "user_id", user.ID)
	return VerifyResult{Outcome: VerifyConfirmed, User: user}
}

// tokenExpired reports whether token is a JWT whose exp is in the past.
// Opaque tokens and tokens without exp are trusted.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
