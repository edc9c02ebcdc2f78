package api

import (
	"context"
	"net/http"

	"pracd-client/internal/model"
)

type credentials struct {
	UserEmail string `json:"useremail"`
	Password  string `json:"password"`
}

type registration struct {
	Username  string     `json:"username"`
	UserEmail string     `json:"useremail"`
	Password  string     `json:"password"`
	Role      model.Role `json:"role"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login authenticates against POST /api/auth/login and, on success, issues
// a local session for the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.post(ctx, "/api/auth/login", public, credentials{UserEmail: email, Password: password}, &resp, "login failed")
	if err != nil {
		return "", err
	}
	if err := c.sessions.Issue(resp.Token); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// AdminLogin uses the dedicated admin surface. The caller must still check
// that the decoded role is admin before treating the session as one.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.post(ctx, "/api/auth/admin/login", public, credentials{UserEmail: email, Password: password}, &resp, "admin login failed")
	if err != nil {
		return "", err
	}
	if err := c.sessions.Issue(resp.Token); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an account. Some backends answer with a token
// (registration-login); when they do, a session is issued right away.
func (c *Client) Register(ctx context.Context, username, email, password string, role model.Role) error {
	var resp tokenResponse
	err := c.post(ctx, "/api/auth/register", public, registration{
		Username:  username,
		UserEmail: email,
		Password:  password,
		Role:      role,
	}, &resp, "registration failed")
	if err != nil {
		return err
	}
	if resp.Token != "" {
		return c.sessions.Issue(resp.Token)
	}
	return nil
}

// Logout revokes the session server-side on a best-effort basis. Local
// teardown always proceeds: local state must never outlive the user's
// explicit intent to leave.
func (c *Client) Logout(ctx context.Context) {
	defer c.sessions.Revoke()
	if _, ok := c.sessions.Current(); !ok {
		return
	}
	_ = c.do(ctx, http.MethodPost, "/api/auth/logout", bearer, nil, nil, "logout failed")
}
