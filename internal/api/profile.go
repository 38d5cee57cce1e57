// ABOUTME: Profile endpoints of the backend API
// ABOUTME: GET /profile and PUT /profile with partial updates

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/krishisahai/krishi-cli/internal/models"
)

// FetchProfile retrieves the farmer profile. models.ErrNotFound means the
// user has not onboarded yet; callers treat it as an empty state.
func (c *Client) FetchProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update and returns the stored profile.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	if update.Empty() {
		return nil, fmt.Errorf("no profile fields to update")
	}
	var profile models.Profile
	if err := c.do(ctx, http.MethodPut, "/profile", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
