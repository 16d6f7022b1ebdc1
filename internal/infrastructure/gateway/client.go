// Package gateway is the single outbound channel to the backend REST API.
// Every call attaches the stored bearer token, every response passes
// through one envelope-normalization point, and a rejected credential is
// handled here once (scrub the store, navigate to login) rather than at
// each call site.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// Config holds client configuration.
type Config struct {
	BaseURL    string
	Store      ports.Store
	Navigator  ports.Navigator
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client implements every gateway port over one configured http.Client.
type Client struct {
	baseURL string
	http    *http.Client
	store   ports.Store
	nav     ports.Navigator
	log     zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway: base URL is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("gateway: store is required")
	}
	if cfg.Navigator == nil {
		return nil, fmt.Errorf("gateway: navigator is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    httpClient,
		store:   cfg.Store,
		nav:     cfg.Navigator,
		log:     cfg.Logger,
	}, nil
}

// envelope is the backend's uniform response shape. Business failures ride
// in success=false with a message; callers must branch on success, never
// on HTTP status alone.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// do issues one call and normalizes the outcome onto the domain error
// taxonomy. It is the only place response shapes are interpreted.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	start := time.Now()
	data, err := c.roundTrip(ctx, op, method, path, body, contentType)
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(op, outcomeLabel(err)).Inc()
	return data, err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Outbound hook: the token is read fresh from the store on every call,
	// so an explicitly-cleared token can never ride along stale.
	if token, ok := c.store.Get(ports.KeyToken); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	// Inbound hook: a rejected credential logs the session out globally.
	// This is the only auto-logout path in the client.
	if resp.StatusCode == http.StatusUnauthorized {
		authFailuresTotal.Inc()
		ports.Scrub(c.store, ports.KeyToken, ports.KeyUser)
		c.nav.NavigateTo(ports.RouteLogin)
		c.log.Warn().Str("operation", op).Msg("credential rejected, session scrubbed")
		return nil, domain.ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrMalformedResponse, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if !env.Success {
		if resp.StatusCode == http.StatusNotFound && env.Message == "" {
			return nil, domain.ErrNotFound
		}
		return nil, domain.Reject(env.Message)
	}
	return env.Data, nil
}

// getJSON issues a GET and decodes the envelope data into out.
func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	data, err := c.do(ctx, op, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, op, err)
	}
	return nil
}

// sendJSON issues a call with a JSON body.
func (c *Client) sendJSON(ctx context.Context, op, method, path string, body any) (json.RawMessage, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", op, err)
	}
	return c.do(ctx, op, method, path, bytes.NewReader(raw), "application/json")
}

// submit sends a working-copy payload: JSON when no file is staged,
// multipart otherwise. Omitted and cleared fields are applied either way.
func (c *Client) submit(ctx context.Context, op, method, path string, p ports.Payload) (json.RawMessage, error) {
	if len(p.Files) == 0 {
		raw, err := encodeJSONPayload(p)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", op, err)
		}
		return c.do(ctx, op, method, path, bytes.NewReader(raw), "application/json")
	}

	body, contentType, err := encodeMultipartPayload(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", op, err)
	}
	return c.do(ctx, op, method, path, body, contentType)
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrUnreachable):
		return "unreachable"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	default:
		return "rejected"
	}
}
