package domain

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User models the authenticated operator of the console.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// SessionState is the lifecycle state of the one process-wide session.
type SessionState string

const (
	// StateRehydrating is the initial state while stored credentials are
	// read back. Privileged UI must not render until it resolves.
	StateRehydrating     SessionState = "rehydrating"
	StateAuthenticated   SessionState = "authenticated"
	StateUnauthenticated SessionState = "unauthenticated"
)
