package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/training-marketplace/internal/auth"
	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/events"
	"github.com/spec-kit/training-marketplace/internal/seed"
	"github.com/spec-kit/training-marketplace/internal/service"
	"github.com/spec-kit/training-marketplace/internal/store"
)

func newAuthService(t *testing.T, s *store.Store, matcher auth.PasswordMatcher) (*service.AuthService, *recorder) {
	t.Helper()
	d, rec := newRecordingDispatcher()
	return service.NewAuthService(service.AuthDependencies{
		Store:      s,
		Passwords:  matcher,
		Tokens:     auth.NewTokenManager("test-secret", 5),
		Dispatcher: d,
	}), rec
}

func TestAuthService_Authenticate(t *testing.T) {
	s := store.New(seed.Fixtures())
	svc, rec := newAuthService(t, s, nil)
	ctx := context.Background()

	assert.True(t, svc.Authenticate(ctx, "admin@itplatform.com", "admin123"))
	p, ok := svc.CurrentPrincipal()
	require.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, p.Role)

	assert.False(t, svc.Authenticate(ctx, "admin@itplatform.com", "wrong"))
	p, ok = svc.CurrentPrincipal()
	require.True(t, ok, "failed login keeps the previous principal")
	assert.Equal(t, domain.RoleAdmin, p.Role)

	assert.Equal(t, []events.EventType{events.SessionStarted}, rec.types())
}

func TestAuthService_Authenticate_FailureWithoutPrincipal(t *testing.T) {
	s := store.New(seed.Fixtures())
	svc, _ := newAuthService(t, s, nil)

	assert.False(t, svc.Authenticate(context.Background(), "student@example.com", "admin123"))
	assert.False(t, svc.Authenticate(context.Background(), "STUDENT@example.com", "student123"), "emails match exactly")

	_, ok := svc.CurrentPrincipal()
	assert.False(t, ok)
}

func TestAuthService_ClearSession(t *testing.T) {
	s := store.New(seed.Fixtures())
	svc, rec := newAuthService(t, s, nil)
	ctx := context.Background()

	svc.ClearSession(ctx)
	assert.Empty(t, rec.types(), "clearing an empty session publishes nothing")

	require.True(t, svc.Authenticate(ctx, "student@example.com", "student123"))
	svc.ClearSession(ctx)

	_, ok := svc.CurrentPrincipal()
	assert.False(t, ok)
	assert.Equal(t, []events.EventType{events.SessionStarted, events.SessionCleared}, rec.types())
}

func TestAuthService_Login(t *testing.T) {
	s := store.New(seed.Fixtures())
	svc, _ := newAuthService(t, s, nil)

	user, session, err := svc.Login(context.Background(), "info@cloudmasters.com", "provider123")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.NotEmpty(t, session.Token)

	claims, err := svc.TokenManager().ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleProvider, claims.Role)

	_, _, err = svc.Login(context.Background(), "info@cloudmasters.com", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_HashedCredentials(t *testing.T) {
	users, err := auth.HashUsers(seed.Users(), bcrypt.MinCost)
	require.NoError(t, err)
	s := store.New(store.Seed{Events: seed.Events(), Users: users})
	svc, _ := newAuthService(t, s, auth.BcryptMatcher{})

	assert.True(t, svc.Authenticate(context.Background(), "admin@itplatform.com", "admin123"))
	assert.False(t, svc.Authenticate(context.Background(), "admin@itplatform.com", users[0].Password))
}

func TestAuthService_Login_SignsMatchedUserWhenPrincipalChanges(t *testing.T) {
	s := store.New(seed.Fixtures())
	admin, ok := s.UserByEmail("admin@itplatform.com")
	require.True(t, ok)

	d := events.NewInMemoryDispatcher()
	// Another request logs in as admin while the student's login is still running.
	d.Subscribe(events.SessionStarted, func(context.Context, events.Event) error {
		s.SetPrincipal(admin)
		return nil
	})
	svc := service.NewAuthService(service.AuthDependencies{
		Store:      s,
		Tokens:     auth.NewTokenManager("test-secret", 5),
		Dispatcher: d,
	})

	user, session, err := svc.Login(context.Background(), "student@example.com", "student123")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleStudent, user.Role)
	claims, err := svc.TokenManager().ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, claims.Role)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_Login_Concurrent(t *testing.T) {
	s := store.New(seed.Fixtures())
	svc, _ := newAuthService(t, s, nil)
	creds := []struct {
		email, password string
		role            domain.Role
	}{
		{"student@example.com", "student123", domain.RoleStudent},
		{"admin@itplatform.com", "admin123", domain.RoleAdmin},
	}

	var wg sync.WaitGroup
	errs := make(chan string, 200)
	for i := 0; i < 200; i++ {
		c := creds[i%len(creds)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, session, err := svc.Login(context.Background(), c.email, c.password)
			if err != nil {
				errs <- err.Error()
				return
			}
			claims, err := svc.TokenManager().ParseToken(session.Token)
			if err != nil {
				errs <- err.Error()
				return
			}
			if claims.Role != c.role {
				errs <- c.email + " received a " + string(claims.Role) + " token"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

func TestAuthService_Login_WithoutTokenManager(t *testing.T) {
	s := store.New(seed.Fixtures())
	svc := service.NewAuthService(service.AuthDependencies{Store: s})

	_, _, err := svc.Login(context.Background(), "student@example.com", "student123")

	assert.Error(t, err)
	_, ok := svc.CurrentPrincipal()
	assert.False(t, ok)
}
