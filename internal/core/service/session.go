package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// Session owns the one process-wide authenticated-user lifecycle. It
// cycles between unauthenticated and authenticated for the life of the
// process; the initial rehydrating state resolves before any privileged
// screen may render.
//
// Invariant: token and user are persisted or scrubbed together, never one
// without the other.
type Session struct {
	gw    ports.AuthGateway
	store ports.Store
	log   zerolog.Logger

	mu    sync.RWMutex
	state domain.SessionState
	user  *domain.User
}

func NewSession(gw ports.AuthGateway, store ports.Store, log zerolog.Logger) *Session {
	return &Session{
		gw:    gw,
		store: store,
		log:   log,
		state: domain.StateRehydrating,
	}
}

// Rehydrate restores the session from the store. It is a synchronous gate:
// by the time it returns, the state is authenticated or unauthenticated,
// never still rehydrating. Any partial or undeserializable stored state is
// scrubbed rather than propagated.
func (s *Session) Rehydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, okToken := s.store.Get(ports.KeyToken)
	rawUser, okUser := s.store.Get(ports.KeyUser)
	if !okToken || !okUser {
		s.resetLocked("missing credentials")
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == "" {
		s.resetLocked("stored user undeserializable")
		return
	}

	if tokenExpired(token) {
		s.resetLocked("stored token expired")
		return
	}

	s.state = domain.StateAuthenticated
	s.user = &user
	s.log.Info().Str("user_id", user.ID).Msg("session rehydrated")
}

// Login authenticates against the backend. On anything other than a
// well-formed success carrying both token and user, the session returns to
// unauthenticated with the store scrubbed, and the error distinguishes
// unreachable, rejected, and malformed outcomes so the caller can show the
// right guidance.
func (s *Session) Login(ctx context.Context, email, password string) error {
	token, user, err := s.gw.Login(ctx, email, password)
	if err != nil {
		s.mu.Lock()
		s.resetLocked("login failed")
		s.mu.Unlock()
		return err
	}
	if token == "" || user == nil || user.ID == "" {
		// Success envelope with a hole in it: treat as malformed, leave the
		// store exactly as it was.
		s.mu.Lock()
		s.state = domain.StateUnauthenticated
		s.user = nil
		s.mu.Unlock()
		return fmt.Errorf("%w: login succeeded without credentials", domain.ErrMalformedResponse)
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serialize user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ports.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.store.Set(ports.KeyUser, string(rawUser)); err != nil {
		// Never leave a token without its user.
		ports.Scrub(s.store, ports.KeyToken)
		return fmt.Errorf("persist user: %w", err)
	}
	s.state = domain.StateAuthenticated
	s.user = user
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("logged in")
	return nil
}

// Logout scrubs the store and drops to unauthenticated. It never fails.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked("logged out")
}

// UpdateUser re-persists the given record and updates in-memory state. The
// caller has already round-tripped the change through the backend.
func (s *Session) UpdateUser(user domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Error().Err(err).Msg("user record not serializable")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateAuthenticated {
		return
	}
	if err := s.store.Set(ports.KeyUser, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("persist updated user failed")
	}
	s.user = &user
}

func (s *Session) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *Session) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) resetLocked(reason string) {
	ports.Scrub(s.store, ports.KeyToken, ports.KeyUser)
	s.state = domain.StateUnauthenticated
	s.user = nil
	s.log.Debug().Str("reason", reason).Msg("session unauthenticated")
}

// tokenExpired reports whether a stored JWT is past its expiry claim. The
// signature is not checked here (only the backend can); opaque tokens that
// do not parse as JWTs are accepted and left for the backend to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
