package domain

import "time"

// Student is a roster entry within a school.
type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RollNumber string    `json:"rollNumber"`
	Class      string    `json:"class"`
	Section    string    `json:"section"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Photo      string    `json:"photo,omitempty"`
	SchoolID   string    `json:"schoolId"`
	CreatedAt  time.Time `json:"createdAt"`
}
