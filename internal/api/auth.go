package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/plateful/plateful/internal/models"
)

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns the issued token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, "Registration failed", &out)
	return out, err
}

// Login authenticates with email and password and returns the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil,
		map[string]string{"email": email, "password": password}, "Login failed", &out)
	return out, err
}

// RequestPasswordReset asks the backend to mail a reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, recipient, subject, msgBody string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/password-reset/request", nil,
		map[string]string{"recipient": recipient, "msgBody": msgBody, "subject": subject},
		"Failed to send email", nil)
}

// VerifyPasswordReset checks whether a reset token is still usable. The
// backend answers a valid token with a redirect to the web frontend, so any
// 2xx or 3xx counts as success; 404 and 410 classify to the reset-specific
// user messages.
func (c *Client) VerifyPasswordReset(ctx context.Context, token string) error {
	const path = "/auth/password-reset/verify"
	q := url.Values{}
	q.Set("token", token)

	req, err := c.newRequest(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	resp, err := c.send(req, "Failed to verify reset link")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return nil
	}
	return c.classify(resp, path, "Failed to verify reset link")
}

// ConfirmPasswordReset sets a new password using a reset token.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/password-reset/confirm", nil,
		map[string]string{"token": token, "password": password},
		"Failed to change password", nil)
}
