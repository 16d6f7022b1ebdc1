package ports

import "github.com/studiofolio/site-console/internal/core/domain"

// SchemeSource exposes the OS color-scheme preference as a live signal.
// It is the one external asynchronous event source in this layer; the
// theme resolver subscribes exactly once and the channel closes when the
// source shuts down.
type SchemeSource interface {
	Current() domain.ResolvedTheme
	Changes() <-chan domain.ResolvedTheme
	Close() error
}
