package ports

// Store keys. The session manager and theme resolver share the store but
// never share keys, so no cross-component locking is needed.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// Store is the durable client-side key/value store (the persistence port).
// Get is synchronous from the caller's perspective and never fails: a
// missing, corrupt, or unreadable value reports ok=false. Implementations
// must not surface deserialization problems to callers.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
	Remove(key string)
}

// Scrub removes every given key. Used on logout and on a rejected
// credential, where partial state (token without user, or vice versa)
// must never survive.
func Scrub(s Store, keys ...string) {
	for _, k := range keys {
		s.Remove(k)
	}
}
