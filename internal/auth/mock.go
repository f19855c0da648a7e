package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// mockEntry pairs a seeded identity with its expected password.
type mockEntry struct {
	user     domain.User
	password string
}

// mockDirectory is the static demo-mode credential table. It is read-only;
// nothing mutates it at runtime.
var mockDirectory = map[string]mockEntry{
	"admin@school.com": {
		user: domain.User{
			ID:       "1",
			Email:    "admin@school.com",
			Name:     "Admin User",
			Role:     domain.RoleAdmin,
			SchoolID: "1",
		},
		password: "password123",
	},
	"teacher@school.com": {
		user: domain.User{
			ID:       "2",
			Email:    "teacher@school.com",
			Name:     "Teacher User",
			Role:     domain.RoleTeacher,
			SchoolID: "1",
		},
		password: "password123",
	},
	"student@school.com": {
		user: domain.User{
			ID:       "3",
			Email:    "student@school.com",
			Name:     "Student User",
			Role:     domain.RoleStudent,
			SchoolID: "1",
		},
		password: "password123",
	},
}

// MockProvider resolves logins against the static directory. It performs no
// I/O; the result is a pure function of the table and the two inputs.
type MockProvider struct{}

// Resolve returns the seeded identity for an exact email/password match, or
// ErrInvalidCredentials.
func (MockProvider) Resolve(email, password string) (domain.User, error) {
	entry, ok := mockDirectory[email]
	if !ok || entry.password != password {
		return domain.User{}, ErrInvalidCredentials
	}
	return entry.user, nil
}

// Login implements LoginStrategy: a directory match completes the session
// with a freshly generated synthetic credential.
func (p MockProvider) Login(_ context.Context, email, password string) (domain.User, string, error) {
	user, err := p.Resolve(email, password)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, newMockToken(), nil
}

// newMockToken generates a synthetic bearer credential, unique per call.
// The timestamp keeps it recognizable in logs; the uuid fragment guarantees
// uniqueness within the same millisecond.
func newMockToken() string {
	return fmt.Sprintf("mock-jwt-token-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
