package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studiofolio/site-console/internal/core/domain"
)

// DefaultToastDwell is how long a toast stays visible unless dismissed.
const DefaultToastDwell = 5 * time.Second

// Toasts is the notification queue. Entries expire after a fixed dwell or
// on explicit dismissal; dismissal cancels the pending expiry timer so a
// stale timer can never fire against an already-removed entry. Insertion
// order is display order.
type Toasts struct {
	dwell    time.Duration
	onChange func()

	mu     sync.Mutex
	items  []domain.Toast
	timers map[string]*time.Timer
	closed bool
}

// NewToasts builds a queue with the given dwell (DefaultToastDwell when
// zero). onChange, if non-nil, is invoked after every queue change.
func NewToasts(dwell time.Duration, onChange func()) *Toasts {
	if dwell <= 0 {
		dwell = DefaultToastDwell
	}
	return &Toasts{
		dwell:    dwell,
		onChange: onChange,
		timers:   make(map[string]*time.Timer),
	}
}

// Enqueue appends a toast and schedules its removal after the dwell.
func (t *Toasts) Enqueue(kind domain.ToastKind, message string) domain.Toast {
	toast := domain.Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return toast
	}
	t.items = append(t.items, toast)
	t.timers[toast.ID] = time.AfterFunc(t.dwell, func() { t.Dismiss(toast.ID) })
	t.mu.Unlock()

	t.notify()
	return toast
}

// Success, Error, Warning, Info are convenience wrappers around Enqueue.
func (t *Toasts) Success(message string) { t.Enqueue(domain.ToastSuccess, message) }
func (t *Toasts) Error(message string)   { t.Enqueue(domain.ToastError, message) }
func (t *Toasts) Warning(message string) { t.Enqueue(domain.ToastWarning, message) }
func (t *Toasts) Info(message string)    { t.Enqueue(domain.ToastInfo, message) }

// Dismiss removes a toast immediately and cancels its expiry timer.
// Dismissing an unknown id is a no-op.
func (t *Toasts) Dismiss(id string) {
	t.mu.Lock()
	timer, ok := t.timers[id]
	if ok {
		timer.Stop()
		delete(t.timers, id)
	}
	removed := false
	for i, it := range t.items {
		if it.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			removed = true
			break
		}
	}
	t.mu.Unlock()

	if removed {
		t.notify()
	}
}

// Active returns the visible toasts in insertion order.
func (t *Toasts) Active() []domain.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Toast(nil), t.items...)
}

// Close stops every pending timer and rejects further enqueues.
func (t *Toasts) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.items = nil
}

func (t *Toasts) notify() {
	if t.onChange != nil {
		t.onChange()
	}
}
