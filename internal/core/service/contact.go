package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// DefaultUnreadPollInterval matches the admin header badge refresh.
const DefaultUnreadPollInterval = 60 * time.Second

// Contact is the contact-message inbox: public form submission on one
// side, admin listing / mark-read / unread badge on the other.
type Contact struct {
	gw       ports.ContactGateway
	toasts   *Toasts
	log      zerolog.Logger
	interval time.Duration
	onCount  func(int)

	cache *ListCache[domain.ContactMessage]
}

// NewContact builds the inbox. onCount, if non-nil, receives every unread
// count the poller fetches.
func NewContact(gw ports.ContactGateway, toasts *Toasts, interval time.Duration, onCount func(int), log zerolog.Logger) *Contact {
	if interval <= 0 {
		interval = DefaultUnreadPollInterval
	}
	return &Contact{
		gw:       gw,
		toasts:   toasts,
		log:      log,
		interval: interval,
		onCount:  onCount,
		cache:    NewListCache[domain.ContactMessage](),
	}
}

func (c *Contact) Cache() *ListCache[domain.ContactMessage] { return c.cache }

// Submit sends a public contact-form message. Required fields are checked
// locally first; an invalid form never reaches the network.
func (c *Contact) Submit(ctx context.Context, msg domain.ContactMessage) error {
	if err := validateStruct(msg); err != nil {
		c.toasts.Warning(err.Error())
		return err
	}
	if err := c.gw.SubmitContact(ctx, msg); err != nil {
		c.toasts.Error(domain.FailureMessage(err, "could not send your message"))
		return err
	}
	c.toasts.Success("message sent, we'll get back to you soon")
	return nil
}

// Refresh reloads the inbox listing.
func (c *Contact) Refresh(ctx context.Context) error {
	msgs, err := c.gw.ListContact(ctx)
	if err != nil {
		return err
	}
	c.cache.Replace(msgs)
	return nil
}

// MarkRead flips one message to read and patches the cache in place.
func (c *Contact) MarkRead(ctx context.Context, id string) error {
	if err := c.gw.MarkContactRead(ctx, id); err != nil {
		c.toasts.Error(domain.FailureMessage(err, "could not mark message read"))
		return err
	}
	c.cache.Patch(id, func(m *domain.ContactMessage) { m.Read = true })
	return nil
}

// UnreadCount fetches the current unread badge value.
func (c *Contact) UnreadCount(ctx context.Context) (int, error) {
	return c.gw.UnreadCount(ctx)
}

// RunUnreadPoller refreshes the unread badge on a fixed interval until ctx
// is cancelled. It is a scheduled task tied to the caller's lifetime, so
// navigating away (cancelling ctx) cannot leak the timer. Poll failures
// are logged, not surfaced; the badge just goes stale for one interval.
func (c *Contact) RunUnreadPoller(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.pollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.pollOnce(ctx)
		}
	}
}

func (c *Contact) pollOnce(ctx context.Context) {
	n, err := c.gw.UnreadCount(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("unread count poll failed")
		return
	}
	if c.onCount != nil {
		c.onCount(n)
	}
}
