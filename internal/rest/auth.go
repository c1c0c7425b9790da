package rest

import (
	"context"
	"fmt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token and stores it in the
// session. Auth endpoints never go through the 401-retry path.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var result tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&result).
		Post("/Auth/login")
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	
	return c.session.SetToken(result.Token)
}

// RefreshToken trades the current token for a fresh one.
func (c *Client) RefreshToken(ctx context.Context) error {
	var result tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.session.Token()).
		SetResult(&result).
		Post("/Auth/refresh")
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}
	
	return c.session.SetToken(result.Token)
}
