// Package guard decides whether the current session may enter a route.
// It is a pure decision layer: no I/O, no side effects.
package guard

import (
	"github.com/rollcall-app/rollcall/internal/session"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

// Navigation targets used by redirect decisions.
const (
	RouteLogin        = "/login"
	RouteUnauthorized = "/unauthorized"
	RouteDashboard    = "/dashboard"
	RouteStudents     = "/students"
	RouteAttendance   = "/attendance"
	RouteClasses      = "/classes"
	RouteLeaves       = "/leaves"
	RouteReports      = "/reports"
)

// Decision is the outcome of an authorization check. Either the navigation
// is allowed, or the caller must redirect to Redirect.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Allow is the positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// RedirectTo denies navigation and names the target to go to instead.
func RedirectTo(target string) Decision {
	return Decision{Redirect: target}
}

// routeRoles maps each protected route to the roles allowed in. A nil entry
// means any authenticated role.
var routeRoles = map[string][]domain.Role{
	RouteDashboard:  nil,
	RouteLeaves:     nil,
	RouteStudents:   {domain.RoleAdmin, domain.RoleTeacher},
	RouteAttendance: {domain.RoleAdmin, domain.RoleTeacher},
	RouteReports:    {domain.RoleAdmin, domain.RoleTeacher},
	RouteClasses:    {domain.RoleAdmin},
}

// RolesFor returns the role allow-list for a route. The second result is
// false for routes the table does not know.
func RolesFor(route string) ([]domain.Role, bool) {
	roles, ok := routeRoles[route]
	return roles, ok
}

// Authorize gates navigation on session state and an optional role allow-list.
// An unauthenticated session always redirects to the login entry point; an
// authenticated session with a role outside the allow-list redirects to the
// unauthorized page.
func Authorize(sess session.Session, requiredRoles []domain.Role) Decision {
	if !sess.IsAuthenticated() {
		return RedirectTo(RouteLogin)
	}
	if len(requiredRoles) == 0 {
		return Allow()
	}
	for _, r := range requiredRoles {
		if sess.Identity.Role == r {
			return Allow()
		}
	}
	return RedirectTo(RouteUnauthorized)
}

// AuthorizeRoute is Authorize with the allow-list looked up from the route
// table. Unknown routes only require authentication.
func AuthorizeRoute(sess session.Session, route string) Decision {
	roles, _ := RolesFor(route)
	return Authorize(sess, roles)
}
