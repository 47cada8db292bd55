package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"portfolio-admin/internal/models"
)

// Login exchanges credentials for a session. On success the token, when the
// backend issued one, and the authenticated flag are persisted.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	payload, err := NewJSONPayload(models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		// Login is the one call that surfaces the server's reason
		var body models.ErrorResponse
		msg := msgLogin
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Message != "" {
			msg = body.Message
		}
		return nil, &StatusError{Message: msg, StatusCode: resp.StatusCode}
	}

	var body models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	if err := c.session.Persist(ctx, body.Token); err != nil {
		return nil, err
	}
	return &body, nil
}

// Logout ends the session. The local credential is always cleared; a
// failing or unreachable backend is only logged.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.Do(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		c.logger.Warn("logout request failed", zap.Error(err))
	} else {
		if !isSuccess(resp.StatusCode) {
			c.logger.Warn("logout rejected by backend", zap.Int("status", resp.StatusCode))
		}
		resp.Body.Close()
	}

	return c.session.Clear(ctx)
}
