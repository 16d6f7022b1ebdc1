package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

func (c *Client) GetSettings(ctx context.Context) (domain.Settings, error) {
	var s domain.Settings
	err := c.getJSON(ctx, "settings.get", "/settings", &s)
	return s, err
}

func (c *Client) UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	data, err := c.sendJSON(ctx, "settings.update", http.MethodPut, "/settings", s)
	if err != nil {
		return domain.Settings{}, err
	}
	var saved domain.Settings
	if err := json.Unmarshal(data, &saved); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: settings: %v", domain.ErrMalformedResponse, err)
	}
	return saved, nil
}

func (c *Client) GetProfile(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	err := c.getJSON(ctx, "profile.get", "/admin/profile", &p)
	return p, err
}

// UpdateProfile goes multipart when a photo is staged in the payload.
func (c *Client) UpdateProfile(ctx context.Context, payload ports.Payload) (domain.Profile, error) {
	data, err := c.submit(ctx, "profile.update", http.MethodPut, "/admin/profile", payload)
	if err != nil {
		return domain.Profile{}, err
	}
	var saved domain.Profile
	if err := json.Unmarshal(data, &saved); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: profile: %v", domain.ErrMalformedResponse, err)
	}
	return saved, nil
}
