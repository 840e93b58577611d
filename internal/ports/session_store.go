package ports

// Port: process-wide session state behind the shared-secret gate.
// A session exists only after the secret has been presented once;
// its token then authorizes subsequent requests.
type SessionStore interface {
	// Issue creates a new authenticated session and returns its token.
	Issue() (string, error)
	// Authenticated reports whether the token belongs to a live
	// authenticated session.
	Authenticated(token string) bool
}
