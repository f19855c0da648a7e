// Package auth orchestrates login: the live backend first, the static mock
// directory as a deliberate fallback so the client stays usable offline.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rollcall-app/rollcall/internal/session"
	"github.com/rollcall-app/rollcall/pkg/client"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

// ErrInvalidCredentials means the email/password matched neither the live
// backend nor the mock directory. Its text is shown to the user as-is.
var ErrInvalidCredentials = errors.New("Invalid email or password")

// ErrLoginInFlight rejects a second Login while one is still running.
var ErrLoginInFlight = errors.New("a login attempt is already in progress")

// State is the auth service's login state machine position.
type State int

const (
	StateIdle State = iota
	StateAuthenticating
	StateAuthenticated
	StateFailed
)

// LoginStrategy is one way to turn credentials into an identity + token.
// The service composes a live strategy with the mock fallback; tests can
// exercise either path in isolation.
type LoginStrategy interface {
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

// LiveLogin authenticates through the API gateway.
type LiveLogin struct {
	Client *client.Client
}

func (l LiveLogin) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	resp, err := l.Client.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

// Service drives the login state machine and owns logout.
type Service struct {
	store    *session.Store
	client   *client.Client
	live     LoginStrategy
	fallback LoginStrategy
	log      zerolog.Logger

	mu       sync.Mutex
	state    State
	inFlight bool
}

// NewService wires the default strategies: live through c, mock as fallback.
func NewService(store *session.Store, c *client.Client, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		client:   c,
		live:     LiveLogin{Client: c},
		fallback: MockProvider{},
		log:      log,
	}
}

// NewServiceWithStrategies lets tests inject strategies directly.
func NewServiceWithStrategies(store *session.Store, live, fallback LoginStrategy, log zerolog.Logger) *Service {
	return &Service{store: store, live: live, fallback: fallback, log: log}
}

// State returns the current state machine position.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login runs the login state machine: Idle → Authenticating →
// {Authenticated, Failed}. ANY live failure — unreachable backend, timeout,
// non-2xx — falls through to the mock directory; that is the offline/demo
// policy, not an error path. Only a mock miss fails the attempt, and a
// failed attempt leaves any prior session untouched.
//
// At most one login may be in flight; a concurrent call gets ErrLoginInFlight.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return domain.User{}, ErrLoginInFlight
	}
	s.inFlight = true
	s.state = StateAuthenticating
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	user, token, err := s.live.Login(ctx, email, password)
	if err != nil {
		s.log.Debug().Err(err).Msg("live login failed, trying mock directory")
		user, token, err = s.fallback.Login(ctx, email, password)
	}
	if err != nil {
		s.mu.Lock()
		s.state = StateFailed
		s.mu.Unlock()
		return domain.User{}, ErrInvalidCredentials
	}

	s.store.SetAuth(user, token)
	s.mu.Lock()
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("authenticated")
	return user, nil
}

// Resume re-derives the identity for a credential restored from storage.
// Only the token survives a restart; until /auth/me answers, the session is
// identity-pending and the guard treats it as unauthenticated. A 401 here is
// handled by the gateway (session cleared) like everywhere else.
func (s *Service) Resume(ctx context.Context) error {
	snap := s.store.Snapshot()
	if !snap.IdentityPending() {
		return nil
	}
	if s.client == nil {
		return nil
	}
	me, err := s.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	s.store.SetAuth(*me, snap.Credential)
	s.mu.Lock()
	s.state = StateAuthenticated
	s.mu.Unlock()
	return nil
}

// Logout clears the session. It never contacts the backend; there is no
// server-side invalidation to perform.
func (s *Service) Logout() {
	s.store.ClearAuth()
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}
