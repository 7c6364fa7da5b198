// Package services – AuthService
//
// This file implements the AuthService, which verifies the single admin
// identity against configured credentials and drives the session table.
// There are no roles: whoever holds a live token is the admin.
package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/advaithaa/realty-backend/internal/config"
	"github.com/advaithaa/realty-backend/internal/session"
)

// AuthService implements admin login, logout, and token verification on top
// of the session manager. Credential comparison is constant-time; when a
// bcrypt hash is configured it takes precedence over the plaintext secret.
type AuthService struct {
	// Sessions is the process-wide token table.
	Sessions *session.Manager
	// Admin holds the configured credentials.
	Admin config.AdminConfig
}

// NewAuthService constructs an AuthService over the given session table.
func NewAuthService(sessions *session.Manager, admin config.AdminConfig) *AuthService {
	return &AuthService{Sessions: sessions, Admin: admin}
}

// Login checks the supplied credentials and, on success, issues a fresh
// session token. It returns ErrInvalidCredentials on any mismatch without
// revealing which part failed.
func (s *AuthService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Admin.Username)) == 1
	if !s.passwordMatches(password) || !userOK {
		return "", ErrInvalidCredentials
	}
	return s.Sessions.Issue(s.Admin.Username)
}

// Logout revokes the session for token. Unknown and expired tokens are
// silently accepted so repeated logouts stay idempotent.
func (s *AuthService) Logout(token string) {
	s.Sessions.Revoke(token)
}

// Verify reports whether token names a live admin session.
func (s *AuthService) Verify(token string) bool {
	return s.Sessions.Validate(token)
}

// Identity returns the admin identity a live token was issued to, or ""
// for unknown and expired tokens.
func (s *AuthService) Identity(token string) string {
	return s.Sessions.Identity(token)
}

func (s *AuthService) passwordMatches(password string) bool {
	if s.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.Admin.PasswordHash), []byte(password)) == nil
	}
	if s.Admin.Password == "" {
		// Refuse all logins rather than accept an empty configured secret.
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.Admin.Password)) == 1
}
