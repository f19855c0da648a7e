package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// MarkAttendanceRequest is the payload for recording a day's status.
type MarkAttendanceRequest struct {
	StudentID string                  `json:"studentId"`
	Date      string                  `json:"date"` // YYYY-MM-DD
	Status    domain.AttendanceStatus `json:"status"`
	Remarks   string                  `json:"remarks,omitempty"`
}

// MarkAttendance records attendance for one student and day.
func (c *Client) MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (*domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	if err := c.post(ctx, "/attendance", req, &rec); err != nil {
		return nil, fmt.Errorf("client.MarkAttendance: %w", err)
	}
	return &rec, nil
}

// ListAttendance fetches records, optionally filtered by student and/or date.
func (c *Client) ListAttendance(ctx context.Context, studentID, date string) ([]domain.AttendanceRecord, error) {
	params := url.Values{}
	if studentID != "" {
		params.Set("studentId", studentID)
	}
	if date != "" {
		params.Set("date", date)
	}
	path := "/attendance"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var recs []domain.AttendanceRecord
	if err := c.get(ctx, path, &recs); err != nil {
		return nil, fmt.Errorf("client.ListAttendance: %w", err)
	}
	return recs, nil
}

// AttendanceStats returns the class summary for a date (today when empty).
func (c *Client) AttendanceStats(ctx context.Context, classID, date string) (*domain.AttendanceStats, error) {
	path := "/attendance/stats/" + url.PathEscape(classID)
	if date != "" {
		params := url.Values{}
		params.Set("date", date)
		path += "?" + params.Encode()
	}
	var stats domain.AttendanceStats
	if err := c.get(ctx, path, &stats); err != nil {
		return nil, fmt.Errorf("client.AttendanceStats: %w", err)
	}
	return &stats, nil
}

// StudentAttendanceStats returns a student's running summary.
func (c *Client) StudentAttendanceStats(ctx context.Context, studentID string) (*domain.StudentAttendanceStats, error) {
	var stats domain.StudentAttendanceStats
	if err := c.get(ctx, "/attendance/student/"+url.PathEscape(studentID), &stats); err != nil {
		return nil, fmt.Errorf("client.StudentAttendanceStats: %w", err)
	}
	return &stats, nil
}

// UpdateAttendance corrects an existing record.
func (c *Client) UpdateAttendance(ctx context.Context, id string, req MarkAttendanceRequest) (*domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	if err := c.put(ctx, "/attendance/"+url.PathEscape(id), req, &rec); err != nil {
		return nil, fmt.Errorf("client.UpdateAttendance: %w", err)
	}
	return &rec, nil
}

// DeleteAttendance removes a record.
func (c *Client) DeleteAttendance(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/attendance/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("client.DeleteAttendance: %w", err)
	}
	return nil
}
