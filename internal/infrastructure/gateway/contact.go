package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/studiofolio/site-console/internal/core/domain"
)

func (c *Client) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	_, err := c.sendJSON(ctx, "contact.submit", http.MethodPost, "/contact", msg)
	return err
}

func (c *Client) ListContact(ctx context.Context) ([]domain.ContactMessage, error) {
	var msgs []domain.ContactMessage
	if err := c.getJSON(ctx, "contact.list", "/contact", &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) MarkContactRead(ctx context.Context, id string) error {
	_, err := c.do(ctx, "contact.read", http.MethodPut, "/contact/"+id+"/read", nil, "")
	return err
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	data, err := c.do(ctx, "contact.unread", http.MethodGet, "/contact/unread/count", nil, "")
	if err != nil {
		return 0, err
	}

	var counted struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(data, &counted); err != nil {
		return 0, fmt.Errorf("%w: unread count: %v", domain.ErrMalformedResponse, err)
	}
	return counted.Count, nil
}
