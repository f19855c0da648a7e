package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

var testUser = domain.User{
	ID:       "1",
	Email:    "admin@school.com",
	Name:     "Admin User",
	Role:     domain.RoleAdmin,
	SchoolID: "1",
}

func newFileStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token")
	return NewStore(NewFileSlot(path), zerolog.Nop()), path
}

func TestIsAuthenticatedRequiresBoth(t *testing.T) {
	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{"empty", Session{}, false},
		{"credential only", Session{Credential: "tok"}, false},
		{"identity only", Session{Identity: &testUser}, false},
		{"both", Session{Identity: &testUser, Credential: "tok"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sess.IsAuthenticated(); got != tt.want {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetAuthThenReload(t *testing.T) {
	store, path := newFileStore(t)

	store.SetAuth(testUser, "bearer-abc")
	if !store.IsAuthenticated() {
		t.Fatal("expected authenticated after SetAuth")
	}

	// Simulate a fresh process over the same slot.
	reloaded := NewStore(NewFileSlot(path), zerolog.Nop())
	reloaded.LoadFromStorage()
	if got := reloaded.Credential(); got != "bearer-abc" {
		t.Errorf("Credential() after reload = %q, want %q", got, "bearer-abc")
	}
	if reloaded.IsAuthenticated() {
		t.Error("reloaded session must not be authenticated without identity")
	}
	if !reloaded.Snapshot().IdentityPending() {
		t.Error("reloaded session should be identity-pending")
	}
}

func TestClearAuthRemovesSlot(t *testing.T) {
	store, path := newFileStore(t)

	store.SetAuth(testUser, "bearer-abc")
	store.ClearAuth()

	if store.IsAuthenticated() {
		t.Error("expected unauthenticated after ClearAuth")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("token file still exists after ClearAuth (stat err = %v)", err)
	}

	reloaded := NewStore(NewFileSlot(path), zerolog.Nop())
	reloaded.LoadFromStorage()
	if reloaded.Credential() != "" {
		t.Error("expected empty credential after ClearAuth + reload")
	}
}

// countingSlot records writes so idempotence is observable.
type countingSlot struct {
	value  string
	writes int
}

func (s *countingSlot) Read() (string, error) { return s.value, nil }
func (s *countingSlot) Write(v string) error  { s.value = v; s.writes++; return nil }
func (s *countingSlot) Clear() error          { s.value = ""; return nil }

func TestSetAuthIdempotent(t *testing.T) {
	slot := &countingSlot{}
	store := NewStore(slot, zerolog.Nop())

	store.SetAuth(testUser, "tok")
	first := store.Snapshot()
	store.SetAuth(testUser, "tok")
	second := store.Snapshot()

	if *first.Identity != *second.Identity || first.Credential != second.Credential {
		t.Error("repeated SetAuth changed observable session state")
	}
	if slot.value != "tok" {
		t.Errorf("slot holds %q, want %q", slot.value, "tok")
	}
	if slot.writes != 2 {
		t.Errorf("slot writes = %d, want 2 (each write stores the same value)", slot.writes)
	}
}

// failingSlot simulates an unavailable durable slot.
type failingSlot struct{}

func (failingSlot) Read() (string, error) { return "", errors.New("storage unavailable") }
func (failingSlot) Write(string) error    { return errors.New("storage unavailable") }
func (failingSlot) Clear() error          { return errors.New("storage unavailable") }

func TestStorageFailureDegradesToMemory(t *testing.T) {
	store := NewStore(failingSlot{}, zerolog.Nop())

	store.LoadFromStorage() // must not panic or taint state
	store.SetAuth(testUser, "tok")
	if !store.IsAuthenticated() {
		t.Error("expected in-memory session despite slot write failure")
	}
	store.ClearAuth()
	if store.IsAuthenticated() {
		t.Error("expected unauthenticated despite slot clear failure")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore(&countingSlot{}, zerolog.Nop())
	store.SetAuth(testUser, "tok")

	snap := store.Snapshot()
	snap.Identity.Name = "mutated"
	if store.Identity().Name != "Admin User" {
		t.Error("mutating a snapshot leaked into the store")
	}
}
