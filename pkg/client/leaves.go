package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// LeaveRequest is the payload for applying for leave.
type LeaveRequest struct {
	StudentID string `json:"studentId"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

// ApplyLeave submits a leave application.
func (c *Client) ApplyLeave(ctx context.Context, req LeaveRequest) (*domain.LeaveApplication, error) {
	var app domain.LeaveApplication
	if err := c.post(ctx, "/leaves", req, &app); err != nil {
		return nil, fmt.Errorf("client.ApplyLeave: %w", err)
	}
	return &app, nil
}

// ListLeaves fetches applications, optionally filtered by status.
func (c *Client) ListLeaves(ctx context.Context, status domain.LeaveStatus) ([]domain.LeaveApplication, error) {
	path := "/leaves"
	if status != "" {
		params := url.Values{}
		params.Set("status", string(status))
		path += "?" + params.Encode()
	}
	var apps []domain.LeaveApplication
	if err := c.get(ctx, path, &apps); err != nil {
		return nil, fmt.Errorf("client.ListLeaves: %w", err)
	}
	return apps, nil
}

// ApproveLeave marks an application approved.
func (c *Client) ApproveLeave(ctx context.Context, id string) (*domain.LeaveApplication, error) {
	var app domain.LeaveApplication
	if err := c.put(ctx, "/leaves/"+url.PathEscape(id)+"/approve", nil, &app); err != nil {
		return nil, fmt.Errorf("client.ApproveLeave: %w", err)
	}
	return &app, nil
}

// RejectLeave marks an application rejected.
func (c *Client) RejectLeave(ctx context.Context, id string) (*domain.LeaveApplication, error) {
	var app domain.LeaveApplication
	if err := c.put(ctx, "/leaves/"+url.PathEscape(id)+"/reject", nil, &app); err != nil {
		return nil, fmt.Errorf("client.RejectLeave: %w", err)
	}
	return &app, nil
}
