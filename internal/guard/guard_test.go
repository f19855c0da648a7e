package guard

import (
	"testing"

	"github.com/rollcall-app/rollcall/internal/session"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

func sessionFor(role domain.Role) session.Session {
	return session.Session{
		Identity:   &domain.User{ID: "1", Email: "x@school.com", Name: "X", Role: role},
		Credential: "tok",
	}
}

func TestAuthorizeUnauthenticated(t *testing.T) {
	tests := []struct {
		name string
		sess session.Session
	}{
		{"empty session", session.Session{}},
		{"credential only", session.Session{Credential: "tok"}},
		{"identity only", session.Session{Identity: &domain.User{ID: "1", Role: domain.RoleAdmin}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.sess, nil)
			if d.Allowed {
				t.Fatal("expected denial for unauthenticated session")
			}
			if d.Redirect != RouteLogin {
				t.Errorf("Redirect = %q, want %q", d.Redirect, RouteLogin)
			}
		})
	}
}

func TestAuthorizeRoles(t *testing.T) {
	tests := []struct {
		name         string
		role         domain.Role
		required     []domain.Role
		wantAllowed  bool
		wantRedirect string
	}{
		{"no requirement admits any role", domain.RoleStudent, nil, true, ""},
		{"empty requirement admits any role", domain.RoleTeacher, []domain.Role{}, true, ""},
		{"admin allowed on admin route", domain.RoleAdmin, []domain.Role{domain.RoleAdmin}, true, ""},
		{"teacher denied on admin route", domain.RoleTeacher, []domain.Role{domain.RoleAdmin}, false, RouteUnauthorized},
		{"teacher allowed on staff route", domain.RoleTeacher, []domain.Role{domain.RoleAdmin, domain.RoleTeacher}, true, ""},
		{"student denied on staff route", domain.RoleStudent, []domain.Role{domain.RoleAdmin, domain.RoleTeacher}, false, RouteUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(sessionFor(tt.role), tt.required)
			if d.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", d.Allowed, tt.wantAllowed)
			}
			if d.Redirect != tt.wantRedirect {
				t.Errorf("Redirect = %q, want %q", d.Redirect, tt.wantRedirect)
			}
		})
	}
}

func TestAuthorizeRouteTable(t *testing.T) {
	tests := []struct {
		route       string
		role        domain.Role
		wantAllowed bool
	}{
		{RouteDashboard, domain.RoleStudent, true},
		{RouteLeaves, domain.RoleStudent, true},
		{RouteStudents, domain.RoleTeacher, true},
		{RouteStudents, domain.RoleStudent, false},
		{RouteAttendance, domain.RoleAdmin, true},
		{RouteAttendance, domain.RoleStudent, false},
		{RouteReports, domain.RoleTeacher, true},
		{RouteReports, domain.RoleStudent, false},
		{RouteClasses, domain.RoleAdmin, true},
		{RouteClasses, domain.RoleTeacher, false},
	}
	for _, tt := range tests {
		t.Run(tt.route+"/"+string(tt.role), func(t *testing.T) {
			d := AuthorizeRoute(sessionFor(tt.role), tt.route)
			if d.Allowed != tt.wantAllowed {
				t.Errorf("AuthorizeRoute(%s, %s).Allowed = %v, want %v", tt.route, tt.role, d.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestAuthorizeIsPure(t *testing.T) {
	sess := sessionFor(domain.RoleTeacher)
	before := *sess.Identity
	_ = Authorize(sess, []domain.Role{domain.RoleAdmin})
	if *sess.Identity != before {
		t.Error("Authorize mutated the session")
	}
}
