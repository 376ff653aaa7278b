package client

import (
	"context"
	"fmt"

	"farm-market/models"
)

// Login authenticates against the role-specific endpoint and persists the
// returned token so later calls pick it up.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.post(ctx, fmt.Sprintf("/%s/login", c.role), req, &out); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(c.role, out.AccessToken); err != nil {
		return nil, fmt.Errorf("storing session token: %w", err)
	}
	return &out, nil
}

// Logout drops the stored token. The backend keeps no session state to clear.
func (c *Client) Logout() error {
	return c.tokens.Clear(c.role)
}

func (c *Client) RegisterFarmer(ctx context.Context, req models.RegisterFarmerRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.post(ctx, "/farmer/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterBuyer(ctx context.Context, req models.RegisterBuyerRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.post(ctx, "/buyer/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser resolves the logged-in user behind the session token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.UserResponse
	if err := c.get(ctx, fmt.Sprintf("/%s/user", c.role), &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
