package domain

// Role is the authorization role carried by an authenticated user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ValidRole returns true if the given role is one rollcall knows about.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is the identity issued by the backend (or the mock directory) at login.
// It is immutable for the lifetime of a session and replaced wholesale on re-login.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	SchoolID string `json:"schoolId,omitempty"`
	ClassID  string `json:"classId,omitempty"`
	Photo    string `json:"photo,omitempty"`
}
