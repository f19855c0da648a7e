package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// ClassRequest is the payload for creating or updating a class.
type ClassRequest struct {
	Name      string `json:"name"`
	Section   string `json:"section"`
	TeacherID string `json:"teacherId"`
	SchoolID  string `json:"schoolId,omitempty"`
}

// ListClasses fetches all classes.
func (c *Client) ListClasses(ctx context.Context) ([]domain.Class, error) {
	var classes []domain.Class
	if err := c.get(ctx, "/classes", &classes); err != nil {
		return nil, fmt.Errorf("client.ListClasses: %w", err)
	}
	return classes, nil
}

// GetClass fetches a single class by ID.
func (c *Client) GetClass(ctx context.Context, id string) (*domain.Class, error) {
	var cl domain.Class
	if err := c.get(ctx, "/classes/"+url.PathEscape(id), &cl); err != nil {
		return nil, fmt.Errorf("client.GetClass: %w", err)
	}
	return &cl, nil
}

// CreateClass adds a class.
func (c *Client) CreateClass(ctx context.Context, req ClassRequest) (*domain.Class, error) {
	var cl domain.Class
	if err := c.post(ctx, "/classes", req, &cl); err != nil {
		return nil, fmt.Errorf("client.CreateClass: %w", err)
	}
	return &cl, nil
}

// UpdateClass replaces a class's details.
func (c *Client) UpdateClass(ctx context.Context, id string, req ClassRequest) (*domain.Class, error) {
	var cl domain.Class
	if err := c.put(ctx, "/classes/"+url.PathEscape(id), req, &cl); err != nil {
		return nil, fmt.Errorf("client.UpdateClass: %w", err)
	}
	return &cl, nil
}

// DeleteClass removes a class.
func (c *Client) DeleteClass(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/classes/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("client.DeleteClass: %w", err)
	}
	return nil
}
