package client

import (
	"context"
	"net/http"

	"github.com/apdreports/incident-reports/models"
)

// Login exchanges credentials for a bearer token and persists the resulting
// session. Unlike the data fetches, a failed login is reported to the
// caller: the login screen has to show it.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	var auth models.AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/token-auth/", creds, &auth); err != nil {
		return models.AuthResult{}, err
	}
	if c.session != nil {
		if err := c.session.SetUp(auth); err != nil {
			return models.AuthResult{}, err
		}
	}
	return auth, nil
}

// Logout revokes the server-side token and clears the local session. The
// local session is cleared even when the revoke call fails.
func (c *Client) Logout(ctx context.Context) {
	if err := c.doJSON(ctx, http.MethodDelete, "/auth/logout/", nil, nil); err != nil {
		logError("logout", err)
	}
	if c.session != nil {
		c.session.LogOut()
	}
}
