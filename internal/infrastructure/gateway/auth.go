package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/studiofolio/site-console/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login exchanges credentials for a token and user record. The session
// manager treats a success payload missing either as malformed.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	data, err := c.sendJSON(ctx, "auth.login", http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", nil, err
	}

	var ld loginData
	if err := json.Unmarshal(data, &ld); err != nil {
		return "", nil, fmt.Errorf("%w: login payload: %v", domain.ErrMalformedResponse, err)
	}
	return ld.Token, ld.User, nil
}

// Me fetches the user behind the current bearer credential.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, "auth.me", "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
