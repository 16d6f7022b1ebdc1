package service

import "github.com/studiofolio/site-console/internal/core/domain"

// Decision is the access guard's verdict for a privileged route.
type Decision int

const (
	// Allow renders the protected subtree.
	Allow Decision = iota
	// Wait renders nothing (or a neutral placeholder) while the session is
	// still rehydrating; flashing the login screen here would be wrong.
	Wait
	// RedirectToLogin sends the visitor to the login route.
	RedirectToLogin
)

// Guard gates privileged screens on session state. It performs no I/O and
// has no side effects; the routing layer acts on the decision.
type Guard struct{}

func (Guard) Decide(state domain.SessionState) Decision {
	switch state {
	case domain.StateAuthenticated:
		return Allow
	case domain.StateRehydrating:
		return Wait
	default:
		return RedirectToLogin
	}
}
