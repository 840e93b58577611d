// Package session holds the process-wide authenticated-session state
// behind the shared-secret gate.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type record struct {
	authenticated bool
	issuedAt      time.Time
}

// In-memory session store. Sessions live for the process lifetime;
// there is no persistence by design.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]record)}
}

// Issue creates an authenticated session and returns its bearer token.
func (s *MemoryStore) Issue() (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = record{authenticated: true, issuedAt: time.Now()}

	return token, nil
}

// Authenticated reports whether the token names a live authenticated
// session.
func (s *MemoryStore) Authenticated(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[token]
	return ok && rec.authenticated
}
