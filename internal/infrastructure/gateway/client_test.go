package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type memStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStore() *memStore { return &memStore{values: make(map[string]string)} }

func (m *memStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

type recordingNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNav) NavigateTo(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNav) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

// newBackend serves just enough of the REST contract to pin the client's
// wire behavior.
func newBackend(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HideBanner = true

	e.POST("/auth/login", func(c echo.Context) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "invalid payload"})
		}
		if req.Password != "pw" {
			return c.JSON(http.StatusOK, response{Success: false, Message: "invalid credentials"})
		}
		return c.JSON(http.StatusOK, response{Success: true, Data: map[string]any{
			"token": "issued-token",
			"user":  domain.User{ID: "u1", Email: req.Email, Name: "Op", Role: domain.RoleAdmin},
		}})
	})

	e.GET("/projects", func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "Bearer stored-token" {
			return c.JSON(http.StatusUnauthorized, response{Success: false, Message: "invalid token"})
		}
		return c.JSON(http.StatusOK, response{Success: true, Data: []domain.Project{{ID: "p1", Title: "One"}}})
	})

	e.DELETE("/projects/:id", func(c echo.Context) error {
		return c.JSON(http.StatusConflict, response{Success: false, Message: "project is referenced by a case study"})
	})

	e.GET("/services", func(c echo.Context) error {
		return c.String(http.StatusOK, "<html>definitely not the envelope</html>")
	})

	e.POST("/blog", func(c echo.Context) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "expected multipart"})
		}
		if _, present := form.Value["coverImage"]; present {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "staged field must travel as a file part"})
		}
		if len(form.File["coverImage"]) != 1 {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "missing cover file"})
		}
		title := c.FormValue("title")
		return c.JSON(http.StatusOK, response{Success: true, Data: domain.BlogPost{ID: "b1", Title: title, CoverImage: "/media/c.png"}})
	})

	e.PUT("/blog/:id", func(c echo.Context) error {
		body := map[string]any{}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "invalid payload"})
		}
		if len(body) != 1 {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "toggle must send only the changed field"})
		}
		return c.JSON(http.StatusOK, response{Success: true, Data: domain.BlogPost{ID: c.Param("id"), Published: true}})
	})

	e.PUT("/testimonials/:id", func(c echo.Context) error {
		body := map[string]any{}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "invalid payload"})
		}
		if _, present := body["avatar"]; !present {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "expected explicit avatar clear"})
		}
		if body["avatar"] != "" {
			return c.JSON(http.StatusBadRequest, response{Success: false, Message: "clear must be an empty value"})
		}
		return c.JSON(http.StatusOK, response{Success: true, Data: domain.Testimonial{ID: c.Param("id"), Author: "Ana", Quote: "Great"}})
	})

	e.GET("/contact/unread/count", func(c echo.Context) error {
		return c.JSON(http.StatusOK, response{Success: true, Data: map[string]int{"count": 4}})
	})

	return e
}

func newTestClient(t *testing.T, baseURL string) (*Client, *memStore, *recordingNav) {
	t.Helper()
	st := newMemStore()
	nav := &recordingNav{}
	client, err := New(Config{BaseURL: baseURL, Store: st, Navigator: nav, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, st, nav
}

func TestClient_LoginReturnsTokenAndUser(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, _ := newTestClient(t, srv.URL)

	token, user, err := client.Login(context.Background(), "op@studiofolio.dev", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "issued-token" || user == nil || user.ID != "u1" {
		t.Fatalf("unexpected login result: %q %+v", token, user)
	}
}

func TestClient_LoginRejectionCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, _ := newTestClient(t, srv.URL)

	_, _, err := client.Login(context.Background(), "op@studiofolio.dev", "wrong")
	if !errors.Is(err, domain.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if msg, ok := domain.RejectionMessage(err); !ok || msg != "invalid credentials" {
		t.Fatalf("expected backend message verbatim, got %q", msg)
	}
}

func TestClient_AttachesStoredBearerToken(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, st, _ := newTestClient(t, srv.URL)
	_ = st.Set(ports.KeyToken, "stored-token")

	if _, err := client.List(context.Background(), "projects"); err != nil {
		t.Fatalf("list with bearer: %v", err)
	}
}

func TestClient_AutoLogoutOn401(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, st, nav := newTestClient(t, srv.URL)
	_ = st.Set(ports.KeyToken, "stale-token")
	_ = st.Set(ports.KeyUser, `{"id":"u1"}`)

	_, err := client.List(context.Background(), "projects")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, ok := st.Get(ports.KeyToken); ok {
		t.Fatalf("token must be scrubbed on 401")
	}
	if _, ok := st.Get(ports.KeyUser); ok {
		t.Fatalf("user must be scrubbed on 401")
	}
	if nav.last() != ports.RouteLogin {
		t.Fatalf("expected forced navigation to login, got %q", nav.last())
	}
}

func TestClient_BusinessRejectionIsNotAStatusBranch(t *testing.T) {
	// The backend signals business failure with success:false; the client
	// must surface the message rather than keying off the HTTP status.
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, nav := newTestClient(t, srv.URL)

	err := client.Delete(context.Background(), "projects", "p1")
	if !errors.Is(err, domain.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if msg, _ := domain.RejectionMessage(err); msg != "project is referenced by a case study" {
		t.Fatalf("expected backend message, got %q", msg)
	}
	if nav.last() != "" {
		t.Fatalf("business rejection must not force navigation")
	}
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, _ := newTestClient(t, srv.URL)

	_, err := client.List(context.Background(), "services")
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestClient_UnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	srv.Close() // nothing is listening any more
	client, _, _ := newTestClient(t, srv.URL)

	_, err := client.List(context.Background(), "projects")
	if !errors.Is(err, domain.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestClient_CreateWithStagedFileGoesMultipart(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, _ := newTestClient(t, srv.URL)

	payload := ports.Payload{
		Body:  domain.BlogPost{Title: "Hello", Body: "text"},
		Files: []ports.FilePart{{Field: "coverImage", Filename: "c.png", Content: []byte{1, 2, 3}}},
	}
	raw, err := client.Create(context.Background(), "blog", payload)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if string(raw) == "" {
		t.Fatalf("expected saved record data")
	}
}

func TestClient_UpdateSendsExplicitClearAsEmptyValue(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, _ := newTestClient(t, srv.URL)

	payload := ports.Payload{
		Body:  domain.Testimonial{ID: "t1", Author: "Ana", Quote: "Great", Avatar: "/media/old.png"},
		Clear: []string{"avatar"},
	}
	if _, err := client.Update(context.Background(), "testimonials", "t1", payload); err != nil {
		t.Fatalf("update with clear: %v", err)
	}
}

func TestClient_ToggleSendsOnlyChangedField(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, _ := newTestClient(t, srv.URL)

	if _, err := client.Toggle(context.Background(), "blog", "b1", "published", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
}

func TestClient_UnreadCount(t *testing.T) {
	srv := httptest.NewServer(newBackend(t))
	defer srv.Close()
	client, _, _ := newTestClient(t, srv.URL)

	n, err := client.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
}
