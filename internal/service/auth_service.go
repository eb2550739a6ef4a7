package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/training-marketplace/internal/auth"
	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/events"
)

// SessionStore is the part of the entity store that tracks the principal.
type SessionStore interface {
	Users() []domain.User
	Principal() (domain.User, bool)
	SetPrincipal(u domain.User)
	ClearPrincipal()
}

// AuthService coordinates login and logout.
type AuthService struct {
	store      SessionStore
	passwords  auth.PasswordMatcher
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies bundles collaborators for the auth service.
type AuthDependencies struct {
	Store      SessionStore
	Passwords  auth.PasswordMatcher
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service. Without a matcher credentials are
// compared as plaintext.
func NewAuthService(deps AuthDependencies) *AuthService {
	svc := &AuthService{
		store:      deps.Store,
		passwords:  deps.Passwords,
		tokenMgr:   deps.Tokens,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
	if svc.passwords == nil {
		svc.passwords = auth.PlainMatcher{}
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// Authenticate looks for a user with exactly this email and password. On a
// match the user becomes the current principal; otherwise nothing changes.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) bool {
	_, ok := s.authenticate(ctx, email, password)
	return ok
}

// Login authenticates and issues an access token for the matched user. The
// token is signed for that user, never for whatever the shared principal
// slot holds by the time signing happens.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, domain.Session, error) {
	if s.tokenMgr == nil {
		return domain.User{}, domain.Session{}, errors.New("auth service has no token manager")
	}
	user, ok := s.authenticate(ctx, email, password)
	if !ok {
		return domain.User{}, domain.Session{}, domain.ErrInvalidCredentials
	}
	session, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	return user, session, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (domain.User, bool) {
	user, ok := s.findUser(email, password)
	if !ok {
		s.logger.Info("login rejected", zap.String("email", email))
		return domain.User{}, false
	}
	s.store.SetPrincipal(user)
	s.publish(ctx, events.SessionStarted, user)
	return user, true
}

// ClearSession forgets the current principal.
func (s *AuthService) ClearSession(ctx context.Context) {
	user, had := s.store.Principal()
	s.store.ClearPrincipal()
	if had {
		s.publish(ctx, events.SessionCleared, user)
	}
}

// CurrentPrincipal returns the signed in user, if any.
func (s *AuthService) CurrentPrincipal() (domain.User, bool) {
	return s.store.Principal()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) findUser(email, password string) (domain.User, bool) {
	for _, u := range s.store.Users() {
		if u.Email == email && s.passwords.Match(u.Password, password) {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *AuthService) publish(ctx context.Context, typ events.EventType, user domain.User) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Actor:     userActor(user),
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Warn("session handlers failed", zap.String("type", string(typ)), zap.Error(err))
	}
}
