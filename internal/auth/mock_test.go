package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

func TestMockResolve(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantRole domain.Role
		wantErr  bool
	}{
		{"admin", "admin@school.com", "password123", domain.RoleAdmin, false},
		{"teacher", "teacher@school.com", "password123", domain.RoleTeacher, false},
		{"student", "student@school.com", "password123", domain.RoleStudent, false},
		{"wrong password", "admin@school.com", "hunter2", "", true},
		{"unknown email", "nobody@school.com", "password123", "", true},
		{"empty", "", "", "", true},
	}
	p := MockProvider{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := p.Resolve(tt.email, tt.password)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Fatalf("err = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if user.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", user.Role, tt.wantRole)
			}
			if user.Email != tt.email {
				t.Errorf("Email = %q, want %q", user.Email, tt.email)
			}
		})
	}
}

func TestMockTokensAreUnique(t *testing.T) {
	p := MockProvider{}
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		_, tok, err := p.Login(context.Background(), "admin@school.com", "password123")
		if err != nil {
			t.Fatalf("Login() error: %v", err)
		}
		if !strings.HasPrefix(tok, "mock-jwt-token-") {
			t.Fatalf("token %q missing mock prefix", tok)
		}
		if seen[tok] {
			t.Fatalf("duplicate token generated: %q", tok)
		}
		seen[tok] = true
	}
}

func TestMockDirectoryHasThreeSeededRows(t *testing.T) {
	if got := len(mockDirectory); got != 3 {
		t.Errorf("len(mockDirectory) = %d, want 3", got)
	}
}
