package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/hirepaso/internal/session"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// refresh exchanges the refresh token for a new pair. rejected is the access
// token the server just refused; if the session already holds a different one,
// another request refreshed in the meantime and nothing is sent.
// Any failure clears the session.
func (c *Client) refresh(ctx context.Context, rejected string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.session == nil {
		return ErrSessionExpired
	}
	if current := c.session.AccessToken(); current != "" && current != rejected {
		return nil
	}

	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		c.clearSession(ctx)
		return ErrSessionExpired
	}

	status, body, err := c.roundTrip(ctx, request{
		op:     "refresh token",
		method: http.MethodPost,
		path:   refreshPath,
		body:   refreshRequest{RefreshToken: refreshToken},
	}, "")
	if err != nil {
		return err
	}
	if _, err := checkStatus("refresh token", status, body); err != nil {
		c.logger.Warn("token refresh rejected", "status", status)
		c.clearSession(ctx)
		return ErrSessionExpired
	}

	var tokens tokenResponse
	if err := decodeJSON(body, &tokens); err != nil || tokens.AccessToken == "" {
		c.clearSession(ctx)
		return ErrSessionExpired
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}

	if err := c.session.Update(ctx, session.Tokens{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}); err != nil {
		c.logger.Error("failed to persist refreshed tokens", "error", err)
	}
	c.logger.Info("access token refreshed")
	return nil
}
