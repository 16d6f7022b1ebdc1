// Package scheme provides OS color-scheme sources for the theme resolver.
//
// Go has no portable view of the desktop color scheme, so the live signal
// is read from a hint file a desktop hook keeps up to date ("light" or
// "dark"). The polled source is the production adapter; Static serves
// tests and headless runs.
package scheme

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
)

const defaultPollInterval = 2 * time.Second

// Static is a SchemeSource whose signal is driven by explicit Set calls.
type Static struct {
	mu      sync.Mutex
	current domain.ResolvedTheme
	ch      chan domain.ResolvedTheme
	closed  bool
}

func NewStatic(initial domain.ResolvedTheme) *Static {
	return &Static{current: initial, ch: make(chan domain.ResolvedTheme, 4)}
}

func (s *Static) Current() domain.ResolvedTheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Static) Changes() <-chan domain.ResolvedTheme { return s.ch }

// Set publishes a new signal value.
func (s *Static) Set(t domain.ResolvedTheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || t == s.current {
		return
	}
	s.current = t
	s.ch <- t
}

func (s *Static) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	return nil
}

// FileSource polls a hint file for the OS scheme. A missing or
// unreadable file reads as light.
type FileSource struct {
	path     string
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	current domain.ResolvedTheme
	ch      chan domain.ResolvedTheme
	cancel  context.CancelFunc
	closed  bool
}

func NewFileSource(path string, interval time.Duration, log zerolog.Logger) *FileSource {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	f := &FileSource{
		path:     path,
		interval: interval,
		log:      log,
		ch:       make(chan domain.ResolvedTheme, 4),
	}
	f.current = f.read()

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go f.poll(ctx)
	return f
}

func (f *FileSource) Current() domain.ResolvedTheme {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *FileSource) Changes() <-chan domain.ResolvedTheme { return f.ch }

func (f *FileSource) Close() error {
	f.cancel()
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.ch)
	}
	return nil
}

func (f *FileSource) poll(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next := f.read()
			f.mu.Lock()
			if f.closed || next == f.current {
				f.mu.Unlock()
				continue
			}
			f.current = next
			select {
			case f.ch <- next:
			default:
				// Resolver not draining; drop rather than block the poll.
			}
			f.mu.Unlock()
		}
	}
}

func (f *FileSource) read() domain.ResolvedTheme {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return domain.ResolvedLight
	}
	if strings.TrimSpace(string(raw)) == string(domain.ResolvedDark) {
		return domain.ResolvedDark
	}
	return domain.ResolvedLight
}
