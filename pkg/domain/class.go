package domain

// Class groups students under a teacher and a section.
type Class struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Section   string `json:"section"`
	SchoolID  string `json:"schoolId"`
	TeacherID string `json:"teacherId"`
}
