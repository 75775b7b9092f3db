package client

import (
	"context"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// ProfileUpdate holds the fields to change. Nil fields are left unchanged.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, username, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/api/v1/auth/register", credentials{username, password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/api/v1/auth/login", credentials{username, password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile returns the signed-in user.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/api/v1/auth/profile", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile changes the signed-in user's username and/or password.
func (c *Client) UpdateProfile(ctx context.Context, update *ProfileUpdate) (*domain.User, error) {
	var u domain.User
	if err := c.put(ctx, "/api/v1/auth/profile", update, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
