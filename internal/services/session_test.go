package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/ports"
	portsmocks "github.com/renato0307/punch/internal/ports/mocks"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "u1",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newSessionFixture(t *testing.T, timeout time.Duration) (*SessionService, *portsmocks.MockAuthAPI, *portsmocks.MockCredentialStore) {
	t.Helper()
	auth := portsmocks.NewMockAuthAPI(t)
	store := portsmocks.NewMockCredentialStore(t)
	return NewSessionService(auth, store, newFakeClock(t0), timeout), auth, store
}

// loggedIn rehydrates an employee session with an opaque token
func loggedIn(t *testing.T, svc *SessionService, store *portsmocks.MockCredentialStore) {
	t.Helper()
	store.EXPECT().LoadCredentials(mock.Anything).
		Return(&domain.Session{Token: "opaque-token", User: *employee()}, nil).Once()
	user, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestLogin_PersistsOnSuccess(t *testing.T) {
	svc, auth, store := newSessionFixture(t, 0)
	session := &domain.Session{Token: "tok", User: *employee()}

	auth.EXPECT().Login(mock.Anything, "ana@example.com", "secret").Return(session, nil).Once()
	store.EXPECT().SaveCredentials(mock.Anything, *session).Return(nil).Once()

	user, err := svc.Login(context.Background(), " ana@example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "tok", svc.Token())
	assert.Equal(t, domain.RoleEmployee, svc.CurrentUser().Role)
}

func TestLogin_FailureLeavesNothingPersisted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid credentials", &domain.Error{Kind: domain.KindInvalidCredentials, Status: 401}, domain.ErrInvalidCredentials},
		{"network", networkError("login"), domain.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, auth, _ := newSessionFixture(t, 0)
			auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			user, err := svc.Login(context.Background(), "ana@example.com", "wrong")

			assert.Nil(t, user)
			assert.True(t, errors.Is(err, tt.want))
			assert.Nil(t, svc.CurrentUser())
			assert.Empty(t, svc.Token())
		})
	}
}

func TestLogin_RequiresEmailAndPassword(t *testing.T) {
	svc, _, _ := newSessionFixture(t, 0)

	_, err := svc.Login(context.Background(), "  ", "secret")

	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSignup_RoutesByRole(t *testing.T) {
	t.Run("admin uses user endpoint", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 0)
		auth.EXPECT().SignupUser(mock.Anything, ports.UserSignupRequest{
			Email:    "root@example.com",
			Name:     "Root",
			Password: "pw",
			Phone:    DefaultPhone,
			Role:     "admin",
		}).Return(&domain.Session{Token: "tok", User: *admin()}, nil).Once()
		store.EXPECT().SaveCredentials(mock.Anything, mock.Anything).Return(nil).Once()

		user, err := svc.Signup(context.Background(), SignupParams{
			Email:    "root@example.com",
			Name:     "Root",
			Password: "pw",
			Role:     domain.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("employee uses member endpoint", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 0)
		auth.EXPECT().SignupMember(mock.Anything, mock.MatchedBy(func(req ports.MemberSignupRequest) bool {
			return req.Role == "employee" && req.Phone == "555-0100" && req.Department == "Design"
		})).Return(&domain.Session{Token: "tok", User: *employee()}, nil).Once()
		store.EXPECT().SaveCredentials(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.Signup(context.Background(), SignupParams{
			Department: "Design",
			Email:      "ana@example.com",
			Name:       "Ana",
			Password:   "pw",
			Phone:      "555-0100",
		})

		require.NoError(t, err)
	})

	t.Run("invalid input never reaches the backend", func(t *testing.T) {
		svc, _, _ := newSessionFixture(t, 0)

		for _, params := range []SignupParams{
			{Email: "ana@example.com", Password: "pw"},
			{Email: "not-an-email", Name: "Ana", Password: "pw"},
			{Email: "ana@example.com", Name: "Ana", Password: "pw", Role: "owner"},
		} {
			_, err := svc.Signup(context.Background(), params)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		}
	})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		token     func(t *testing.T) string
		wantUser  bool
		wantClear bool
	}{
		{"opaque token is trusted", func(*testing.T) string { return "opaque" }, true, false},
		{"unexpired jwt", func(t *testing.T) string { return signedToken(t, t0.Add(time.Hour)) }, true, false},
		{"expired jwt is cleared", func(t *testing.T) string { return signedToken(t, t0.Add(-time.Minute)) }, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, store := newSessionFixture(t, 0)
			store.EXPECT().LoadCredentials(mock.Anything).
				Return(&domain.Session{Token: tt.token(t), User: *employee()}, nil).Once()
			if tt.wantClear {
				store.EXPECT().ClearCredentials(mock.Anything).Return(nil).Once()
			}

			user, err := svc.Load(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user != nil)
			assert.Equal(t, tt.wantUser, svc.CurrentUser() != nil)
		})
	}
}

func TestLogout_ClearsWithoutRemoteCall(t *testing.T) {
	svc, _, store := newSessionFixture(t, 0)
	loggedIn(t, svc, store)
	store.EXPECT().ClearCredentials(mock.Anything).Return(nil).Once()

	require.NoError(t, svc.Logout(context.Background()))

	assert.Nil(t, svc.CurrentUser())
	assert.Empty(t, svc.Token())
}

func TestVerify(t *testing.T) {
	t.Run("confirmed replaces cached user", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 0)
		loggedIn(t, svc, store)

		fresh := *employee()
		fresh.Name = "Ana Maria"
		auth.EXPECT().Me(mock.Anything).Return(&fresh, nil).Once()
		store.EXPECT().SaveCredentials(mock.Anything, domain.Session{Token: "opaque-token", User: fresh}).Return(nil).Once()

		result, err := svc.Verify(context.Background())

		require.NoError(t, err)
		assert.Equal(t, VerifyConfirmed, result.Outcome)
		assert.Equal(t, "Ana Maria", svc.CurrentUser().Name)
	})

	t.Run("network failure keeps cached user", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 0)
		loggedIn(t, svc, store)
		auth.EXPECT().Me(mock.Anything).Return(nil, networkError("verify session")).Once()

		result, err := svc.Verify(context.Background())

		require.NoError(t, err)
		assert.Equal(t, VerifyKept, result.Outcome)
		assert.Equal(t, "u1", result.User.ID)
		assert.NotNil(t, svc.CurrentUser())
	})

	t.Run("auth rejection tears down", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 0)
		loggedIn(t, svc, store)

		var cleared atomic.Int32
		svc.OnSessionCleared(func() { cleared.Add(1) })
		auth.EXPECT().Me(mock.Anything).Return(nil, &domain.Error{Kind: domain.KindAuthRejected, Status: 401}).Once()
		store.EXPECT().ClearCredentials(mock.Anything).Return(nil).Once()

		result, err := svc.Verify(context.Background())

		require.NoError(t, err)
		assert.Equal(t, VerifyRejected, result.Outcome)
		assert.Nil(t, svc.CurrentUser())
		assert.Equal(t, int32(1), cleared.Load())
	})

	t.Run("role change tears down", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 0)
		loggedIn(t, svc, store)

		promoted := *employee()
		promoted.Role = domain.RoleManager
		auth.EXPECT().Me(mock.Anything).Return(&promoted, nil).Once()
		store.EXPECT().ClearCredentials(mock.Anything).Return(nil).Once()

		result, err := svc.Verify(context.Background())

		require.NoError(t, err)
		assert.Equal(t, VerifyRejected, result.Outcome)
		assert.True(t, errors.Is(result.Err, domain.ErrAuthRejected))
		assert.Nil(t, svc.CurrentUser())
	})

	t.Run("slow backend is bounded by the verify timeout", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 20*time.Millisecond)
		loggedIn(t, svc, store)
		auth.EXPECT().Me(mock.Anything).RunAndReturn(func(ctx context.Context) (*domain.User, error) {
			<-ctx.Done()
			return nil, networkError("verify session")
		}).Once()

		start := time.Now()
		result, err := svc.Verify(context.Background())

		require.NoError(t, err)
		assert.Equal(t, VerifyKept, result.Outcome)
		assert.Less(t, time.Since(start), 2*time.Second)
		assert.NotNil(t, svc.CurrentUser())
	})

	t.Run("cancelled caller does not cut the check short", func(t *testing.T) {
		svc, auth, store := newSessionFixture(t, 0)
		loggedIn(t, svc, store)
		auth.EXPECT().Me(mock.Anything).RunAndReturn(func(ctx context.Context) (*domain.User, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return employee(), nil
		}).Once()
		store.EXPECT().SaveCredentials(mock.Anything, mock.Anything).Return(nil).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := svc.Verify(ctx)

		require.NoError(t, err)
		assert.Equal(t, VerifyConfirmed, result.Outcome)
	})

	t.Run("logged out", func(t *testing.T) {
		svc, _, _ := newSessionFixture(t, 0)

		_, err := svc.Verify(context.Background())

		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}

func TestVerify_ConcurrentCallersShareOneRequest(t *testing.T) {
	svc, auth, store := newSessionFixture(t, time.Second)
	loggedIn(t, svc, store)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	auth.EXPECT().Me(mock.Anything).RunAndReturn(func(context.Context) (*domain.User, error) {
		close(inFlight)
		<-release
		return employee(), nil
	}).Once()
	store.EXPECT().SaveCredentials(mock.Anything, mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	results := make([]VerifyResult, 3)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = svc.Verify(context.Background())
	}()
	<-inFlight

	for i := 1; i < len(results); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = svc.Verify(context.Background())
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, VerifyConfirmed, r.Outcome)
	}
}

func TestHandleAuthRejected_IsIdempotent(t *testing.T) {
	svc, _, store := newSessionFixture(t, 0)
	loggedIn(t, svc, store)

	var cleared atomic.Int32
	svc.OnSessionCleared(func() { cleared.Add(1) })
	store.EXPECT().ClearCredentials(mock.Anything).Return(nil).Once()

	svc.HandleAuthRejected()
	svc.HandleAuthRejected()

	assert.Equal(t, int32(1), cleared.Load())
	assert.Nil(t, svc.CurrentUser())
}
