// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides RequireSession, the admin gate for mutating routes. The
// service issues opaque bearer tokens at login; this middleware checks the
// token on each request against the in-memory session table and rejects
// anything unauthenticated with a JSON 401 before the handler runs.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionToken extracts the admin session token from a request.
//
// Lookup order:
//  1. "token" query parameter (the admin dashboard sends tokens this way)
//  2. Authorization: Bearer <token>
//
// Returns the empty string when neither is present.
func SessionToken(c *gin.Context) string {
	if tok := c.Query("token"); tok != "" {
		return tok
	}
	auth := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// RequireSession returns a Gin middleware that rejects requests lacking a
// valid admin session token.
//
// validate is the session check (typically session.Manager.Validate); it must
// be safe for concurrent use. On failure the middleware aborts with:
//
//	HTTP/1.1 401 Unauthorized
//	{
//	  "request_id": "<uuid>",
//	  "code":       "unauthorized",
//	  "message":    "authentication required"
//	}
//
// On success the token is stored in the Gin context under "sessionToken" so
// handlers (e.g., logout) can act on it without re-parsing the request.
func RequireSession(validate func(token string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := SessionToken(c)
		if tok == "" || !validate(tok) {
			rid, _ := c.Get(requestIDKey)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": asString(rid),
				"code":       "unauthorized",
				"message":    "authentication required",
			})
			return
		}
		c.Set("sessionToken", tok)
		c.Next()
	}
}
