// Package session implements the in-process admin session table.
//
// A session is an opaque bearer token mapped to the admin identity that
// logged in and the issuance time. Tokens are minted from a secure random
// source with 256 bits of entropy, so collisions and guessing are not a
// practical concern. The table is the only long-lived shared mutable state
// in the service and is guarded by a mutex; it is safe to call Issue,
// Validate and Revoke from any number of request goroutines.
//
// Expiry is lazy: an expired entry fails validation and is evicted on the
// lookup that notices it. There is no background sweeper.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

// tokenBytes is the entropy of a raw token before base64url encoding.
const tokenBytes = 32

type entry struct {
	identity string
	issuedAt time.Time
}

// Manager owns the token table. The zero value is not usable; construct with
// NewManager.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]entry
}

// NewManager returns a Manager whose tokens expire after ttl. A ttl <= 0
// falls back to DefaultTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

// Issue mints a fresh URL-safe token for identity, records it with the
// current issuance time, and returns it. The only error source is the
// system's random generator.
func (m *Manager) Issue(identity string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	m.mu.Lock()
	m.sessions[token] = entry{identity: identity, issuedAt: m.now()}
	m.mu.Unlock()
	return token, nil
}

// Validate reports whether token names a live session: present in the table
// and younger than the TTL. Expired entries are evicted on the way out so
// the table does not accumulate dead tokens for callers that never log out.
func (m *Manager) Validate(token string) bool {
	if token == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[token]
	if !ok {
		return false
	}
	if m.now().Sub(e.issuedAt) >= m.ttl {
		delete(m.sessions, token)
		return false
	}
	return true
}

// Identity returns the admin identity a live token was issued to, or ""
// when the token is unknown or expired.
func (m *Manager) Identity(token string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[token]
	if !ok || m.now().Sub(e.issuedAt) >= m.ttl {
		return ""
	}
	return e.identity
}

// Revoke removes the session for token if one exists. Revoking an unknown
// or already-expired token is a no-op, which makes logout idempotent.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Len reports the number of table entries, including not-yet-evicted expired
// ones. Exposed for tests and diagnostics.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
