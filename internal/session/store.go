// Package session owns the single authenticated session of the running
// client: the identity/credential pair, its derived authenticated flag, and
// the durable slot that lets the credential survive restarts.
package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// Session is a point-in-time snapshot of the authentication state.
type Session struct {
	Identity   *domain.User
	Credential string
}

// IsAuthenticated reports whether both identity and credential are present.
func (s Session) IsAuthenticated() bool {
	return s.Identity != nil && s.Credential != ""
}

// IdentityPending reports whether a credential was restored from storage but
// the identity has not been re-derived yet (it is never persisted). The auth
// service resolves this state via /auth/me at startup.
func (s Session) IdentityPending() bool {
	return s.Identity == nil && s.Credential != ""
}

// Store is the single source of truth for the current session. It is an
// injectable object, not package state: everything that needs the session
// receives the same *Store and reads synchronous snapshots from it.
//
// Durable-slot failures never propagate to callers; the store logs them and
// continues with in-memory state only.
type Store struct {
	mu         sync.Mutex
	slot       Slot
	log        zerolog.Logger
	identity   *domain.User
	credential string
}

// NewStore creates a store over the given durable slot.
func NewStore(slot Slot, log zerolog.Logger) *Store {
	return &Store{slot: slot, log: log}
}

// LoadFromStorage restores the credential from the durable slot. Only the
// credential is persisted; the identity stays empty until the next login or
// until the auth service re-derives it.
func (s *Store) LoadFromStorage() {
	cred, err := s.slot.Read()
	if err != nil {
		s.log.Warn().Err(err).Msg("session slot read failed, starting unauthenticated")
		return
	}
	s.mu.Lock()
	s.credential = cred
	s.mu.Unlock()
}

// SetAuth installs a new session and persists the credential. The triple
// (identity, credential, authenticated) updates atomically; no reader can
// observe a half-applied session. Calling twice with the same arguments is
// idempotent.
func (s *Store) SetAuth(identity domain.User, credential string) {
	s.mu.Lock()
	id := identity
	s.identity = &id
	s.credential = credential
	s.mu.Unlock()

	if err := s.slot.Write(credential); err != nil {
		s.log.Warn().Err(err).Msg("session slot write failed, session is in-memory only")
	}
}

// ClearAuth drops the session and removes the credential from the slot.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	s.identity = nil
	s.credential = ""
	s.mu.Unlock()

	if err := s.slot.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("session slot clear failed")
	}
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	var id *domain.User
	if s.identity != nil {
		cp := *s.identity
		id = &cp
	}
	return Session{Identity: id, Credential: s.credential}
}

// IsAuthenticated reports whether a full session is present.
func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// Identity returns a copy of the current identity, or nil.
func (s *Store) Identity() *domain.User {
	return s.Snapshot().Identity
}

// Credential returns the current bearer token, or "".
func (s *Store) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}
