package gateway

import (
	"context"
	"net/http"

	"github.com/bloghub/bloghub-client/internal/domain"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body of a successful login or registration. Either
// field may be absent on a misbehaving server; callers validate presence.
type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Login exchanges credentials for a user record and bearer token.
func (c *Client) Login(ctx context.Context, credentials Credentials) (AuthResponse, error) {
	resp, err := c.doRequestJSON(ctx, http.MethodPost, "/auth/login", credentials)
	if err != nil {
		return AuthResponse{}, err
	}

	var result AuthResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return AuthResponse{}, err
	}

	return result, nil
}

// Register creates a new account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, input RegisterInput) (AuthResponse, error) {
	resp, err := c.doRequestJSON(ctx, http.MethodPost, "/auth/register", input)
	if err != nil {
		return AuthResponse{}, err
	}

	var result AuthResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return AuthResponse{}, err
	}

	return result, nil
}
