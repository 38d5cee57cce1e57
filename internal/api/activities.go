// ABOUTME: Activity scheduling endpoints of the backend API
// ABOUTME: List with optional status filter, create, and mark-complete

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/krishisahai/krishi-cli/internal/models"
)

// ListActivities returns the user's activities, optionally filtered by status
// (pending, scheduled, done). Empty status means all.
func (c *Client) ListActivities(ctx context.Context, status string) ([]models.Activity, error) {
	path := "/activities"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var activities []models.Activity
	if err := c.do(ctx, http.MethodGet, path, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// CreateActivity schedules a new activity against a planting.
func (c *Client) CreateActivity(ctx context.Context, input models.ActivityCreate) (*models.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var activity models.Activity
	if err := c.do(ctx, http.MethodPost, "/activities", input, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// CompleteActivity marks an activity as done.
func (c *Client) CompleteActivity(ctx context.Context, activityID int64) (*models.Activity, error) {
	if activityID <= 0 {
		return nil, fmt.Errorf("activity id must be positive, got %d", activityID)
	}
	var activity models.Activity
	path := fmt.Sprintf("/activities/%d/complete", activityID)
	if err := c.do(ctx, http.MethodPut, path, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}
