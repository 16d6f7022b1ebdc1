package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// Site caches the two singleton records, settings and profile, for the
// life of the process. They are fetched once at startup; a failed fetch
// falls back to hard-coded defaults rather than leaving either absent.
type Site struct {
	gw      ports.SiteGateway
	session *Session
	toasts  *Toasts
	log     zerolog.Logger

	mu       sync.RWMutex
	settings domain.Settings
	profile  domain.Profile
}

func NewSite(gw ports.SiteGateway, session *Session, toasts *Toasts, log zerolog.Logger) *Site {
	return &Site{
		gw:       gw,
		session:  session,
		toasts:   toasts,
		log:      log,
		settings: domain.DefaultSettings(),
		profile:  domain.DefaultProfile(),
	}
}

// Load fetches both singletons. Failures are logged and leave the defaults
// in place.
func (s *Site) Load(ctx context.Context) {
	if settings, err := s.gw.GetSettings(ctx); err != nil {
		s.log.Warn().Err(err).Msg("settings fetch failed, using defaults")
	} else {
		s.mu.Lock()
		s.settings = settings
		s.mu.Unlock()
	}

	if profile, err := s.gw.GetProfile(ctx); err != nil {
		s.log.Warn().Err(err).Msg("profile fetch failed, using defaults")
	} else {
		s.mu.Lock()
		s.profile = profile
		s.mu.Unlock()
	}
}

func (s *Site) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Site) Profile() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateSettings round-trips new settings through the backend and refreshes
// the cache from the response.
func (s *Site) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	saved, err := s.gw.UpdateSettings(ctx, settings)
	if err != nil {
		s.toasts.Error(domain.FailureMessage(err, "could not save settings"))
		return err
	}
	s.mu.Lock()
	s.settings = saved
	s.mu.Unlock()
	s.toasts.Success("settings saved")
	return nil
}

// UpdateProfile saves the operator's bio. A staged photo switches the call
// to multipart; clearPhoto sends the explicit clear instruction. The saved
// record also refreshes the session's user (name and avatar show in the
// admin header).
func (s *Site) UpdateProfile(ctx context.Context, profile domain.Profile, photo *ports.FilePart, clearPhoto bool) error {
	payload := ports.Payload{Body: profile}
	switch {
	case photo != nil:
		payload.Files = []ports.FilePart{*photo}
	case clearPhoto:
		payload.Clear = []string{"photo"}
	default:
		payload.Omit = []string{"photo"}
	}

	saved, err := s.gw.UpdateProfile(ctx, payload)
	if err != nil {
		s.toasts.Error(domain.FailureMessage(err, "could not save profile"))
		return err
	}

	s.mu.Lock()
	s.profile = saved
	s.mu.Unlock()

	if user := s.session.CurrentUser(); user != nil {
		user.Name = saved.Name
		user.Avatar = saved.Photo
		s.session.UpdateUser(*user)
	}
	s.toasts.Success("profile saved")
	return nil
}
