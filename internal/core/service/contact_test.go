package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
)

type stubContactGW struct {
	mu          sync.Mutex
	msgs        []domain.ContactMessage
	unread      int
	submitCalls int
	readIDs     []string
	err         error
}

func (s *stubContactGW) SubmitContact(_ context.Context, _ domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitCalls++
	return s.err
}

func (s *stubContactGW) ListContact(_ context.Context) ([]domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msgs, s.err
}

func (s *stubContactGW) MarkContactRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readIDs = append(s.readIDs, id)
	return s.err
}

func (s *stubContactGW) UnreadCount(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread, s.err
}

func TestContact_SubmitValidatesLocally(t *testing.T) {
	gw := &stubContactGW{}
	toasts := NewToasts(0, nil)
	c := NewContact(gw, toasts, 0, nil, zerolog.Nop())

	err := c.Submit(context.Background(), domain.ContactMessage{Name: "Ana", Email: "not-an-email", Message: "hi"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if gw.submitCalls != 0 {
		t.Fatalf("invalid form must not reach the network")
	}

	if err := c.Submit(context.Background(), domain.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "hi"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gw.submitCalls != 1 {
		t.Fatalf("expected one call, got %d", gw.submitCalls)
	}
}

func TestContact_MarkReadPatchesCacheInPlace(t *testing.T) {
	gw := &stubContactGW{msgs: []domain.ContactMessage{
		{ID: "m1", Name: "A", Email: "a@example.com", Message: "x"},
		{ID: "m2", Name: "B", Email: "b@example.com", Message: "y"},
	}}
	c := NewContact(gw, NewToasts(0, nil), 0, nil, zerolog.Nop())

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := c.MarkRead(context.Background(), "m1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	got, _ := c.Cache().Get("m1")
	if !got.Read {
		t.Fatalf("m1 should be read: %+v", got)
	}
	other, _ := c.Cache().Get("m2")
	if other.Read {
		t.Fatalf("m2 should be untouched")
	}
}

func TestContact_UnreadPollerReportsAndStopsWithContext(t *testing.T) {
	gw := &stubContactGW{unread: 3}

	var mu sync.Mutex
	counts := 0
	c := NewContact(gw, NewToasts(0, nil), 15*time.Millisecond, func(n int) {
		mu.Lock()
		defer mu.Unlock()
		if n == 3 {
			counts++
		}
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.RunUnreadPoller(ctx)
		close(done)
	}()

	if !eventually(time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return counts >= 2
	}) {
		t.Fatalf("poller did not report repeatedly")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("poller leaked past context cancellation")
	}
}
