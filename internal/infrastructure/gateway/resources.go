package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/studiofolio/site-console/internal/core/ports"
)

// The uniform CRUD surface shared by projects, services, blog, and
// testimonials. Records travel as raw envelope data; the generic editor
// decodes into its own type.

func (c *Client) List(ctx context.Context, route string) (json.RawMessage, error) {
	return c.do(ctx, route+".list", http.MethodGet, "/"+route, nil, "")
}

func (c *Client) Get(ctx context.Context, route, id string) (json.RawMessage, error) {
	return c.do(ctx, route+".get", http.MethodGet, "/"+route+"/"+id, nil, "")
}

func (c *Client) Create(ctx context.Context, route string, payload ports.Payload) (json.RawMessage, error) {
	return c.submit(ctx, route+".create", http.MethodPost, "/"+route, payload)
}

func (c *Client) Update(ctx context.Context, route, id string, payload ports.Payload) (json.RawMessage, error) {
	return c.submit(ctx, route+".update", http.MethodPut, "/"+route+"/"+id, payload)
}

func (c *Client) Delete(ctx context.Context, route, id string) error {
	_, err := c.do(ctx, route+".delete", http.MethodDelete, "/"+route+"/"+id, nil, "")
	return err
}

// Toggle sends only the changed boolean field.
func (c *Client) Toggle(ctx context.Context, route, id, field string, value bool) (json.RawMessage, error) {
	return c.sendJSON(ctx, route+".toggle", http.MethodPut, "/"+route+"/"+id, map[string]bool{field: value})
}
