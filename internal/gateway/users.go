package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bloghub/bloghub-client/internal/domain"
)

// PasswordChange is the payload for a password update.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ListUsers retrieves all user profiles.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users")
	if err != nil {
		return nil, err
	}

	var users []domain.User
	if err := c.handleResponse(resp, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser retrieves a single user profile.
func (c *Client) GetUser(ctx context.Context, userID string) (domain.User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/"+url.PathEscape(userID))
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User
	if err := c.handleResponse(resp, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateUser replaces a user's profile fields.
func (c *Client) UpdateUser(ctx context.Context, userID string, user domain.User) (domain.User, error) {
	resp, err := c.doRequestJSON(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), user)
	if err != nil {
		return domain.User{}, err
	}

	var updated domain.User
	if err := c.handleResponse(resp, &updated); err != nil {
		return domain.User{}, err
	}

	return updated, nil
}

// ChangePassword updates a user's password.
func (c *Client) ChangePassword(ctx context.Context, userID string, change PasswordChange) error {
	resp, err := c.doRequestJSON(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/password", change)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID))
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}
