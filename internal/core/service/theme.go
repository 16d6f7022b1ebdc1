package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// ThemeResolver reconciles the operator's tri-state preference with the
// live OS color-scheme signal. The resolved value is recomputed whenever
// the preference changes, and whenever the OS signal changes while the
// preference is "system".
type ThemeResolver struct {
	store  ports.Store
	source ports.SchemeSource
	apply  func(domain.ResolvedTheme)
	log    zerolog.Logger

	mu     sync.RWMutex
	pref   domain.ThemePreference
	system domain.ResolvedTheme
}

// NewThemeResolver loads the stored preference (a corrupt value degrades
// to "system") and applies the initial resolved theme. apply is the
// document-level presentation hook; it receives every resolved change.
func NewThemeResolver(store ports.Store, source ports.SchemeSource, apply func(domain.ResolvedTheme), log zerolog.Logger) *ThemeResolver {
	stored, _ := store.Get(ports.KeyTheme)
	r := &ThemeResolver{
		store:  store,
		source: source,
		apply:  apply,
		log:    log,
		pref:   domain.ParseThemePreference(stored),
		system: source.Current(),
	}
	r.apply(r.Resolved())
	return r
}

// Run consumes the OS signal until ctx is cancelled, then tears down the
// subscription. Establish once at startup.
func (r *ThemeResolver) Run(ctx context.Context) {
	defer func() {
		if err := r.source.Close(); err != nil {
			r.log.Warn().Err(err).Msg("scheme source close failed")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case sys, ok := <-r.source.Changes():
			if !ok {
				return
			}
			r.onSystemChange(sys)
		}
	}
}

// SetPreference persists the new preference and recomputes the resolved
// theme.
func (r *ThemeResolver) SetPreference(pref domain.ThemePreference) error {
	pref = domain.ParseThemePreference(string(pref))

	r.mu.Lock()
	r.pref = pref
	resolved := domain.Resolve(r.pref, r.system)
	r.mu.Unlock()

	if err := r.store.Set(ports.KeyTheme, string(pref)); err != nil {
		return err
	}
	r.apply(resolved)
	r.log.Debug().Str("preference", string(pref)).Str("resolved", string(resolved)).Msg("theme preference set")
	return nil
}

func (r *ThemeResolver) Preference() domain.ThemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pref
}

// Resolved returns the concrete light/dark value currently in effect.
func (r *ThemeResolver) Resolved() domain.ResolvedTheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.Resolve(r.pref, r.system)
}

func (r *ThemeResolver) onSystemChange(sys domain.ResolvedTheme) {
	r.mu.Lock()
	r.system = sys
	pref := r.pref
	resolved := domain.Resolve(pref, sys)
	r.mu.Unlock()

	// Only the "system" preference tracks the signal, but the stored signal
	// is updated regardless so a later switch to "system" resolves fresh.
	if pref == domain.ThemeSystem {
		r.apply(resolved)
	}
}
