package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber"`
	Class      string `json:"class"`
	Section    string `json:"section"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Photo      string `json:"photo,omitempty"`
	SchoolID   string `json:"schoolId,omitempty"`
}

// ListStudents fetches the roster, optionally filtered by class.
func (c *Client) ListStudents(ctx context.Context, classID string) ([]domain.Student, error) {
	path := "/students"
	if classID != "" {
		params := url.Values{}
		params.Set("classId", classID)
		path += "?" + params.Encode()
	}
	var students []domain.Student
	if err := c.get(ctx, path, &students); err != nil {
		return nil, fmt.Errorf("client.ListStudents: %w", err)
	}
	return students, nil
}

// GetStudent fetches a single student by ID.
func (c *Client) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	var s domain.Student
	if err := c.get(ctx, "/students/"+url.PathEscape(id), &s); err != nil {
		return nil, fmt.Errorf("client.GetStudent: %w", err)
	}
	return &s, nil
}

// CreateStudent adds a student to the roster.
func (c *Client) CreateStudent(ctx context.Context, req StudentRequest) (*domain.Student, error) {
	var s domain.Student
	if err := c.post(ctx, "/students", req, &s); err != nil {
		return nil, fmt.Errorf("client.CreateStudent: %w", err)
	}
	return &s, nil
}

// UpdateStudent replaces a student's details.
func (c *Client) UpdateStudent(ctx context.Context, id string, req StudentRequest) (*domain.Student, error) {
	var s domain.Student
	if err := c.put(ctx, "/students/"+url.PathEscape(id), req, &s); err != nil {
		return nil, fmt.Errorf("client.UpdateStudent: %w", err)
	}
	return &s, nil
}

// DeleteStudent removes a student from the roster.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/students/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("client.DeleteStudent: %w", err)
	}
	return nil
}
