// Admin auth HTTP handlers.
//
// This file exposes the admin session endpoints:
//   - POST /admin/login   (exchange credentials for a session token)
//   - POST /admin/logout  (revoke a session; idempotent)
//   - GET  /admin/verify  (check whether a token names a live session)
//
// Login, logout, and verify are reachable without a session; every other
// admin route is gated by the session middleware.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaithaa/realty-backend/internal/http/middleware"
)

// AuthService defines the admin session operations consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use.
type AuthService interface {
	// Login verifies credentials and returns a fresh session token.
	Login(username, password string) (string, error)
	// Logout revokes a session token; unknown tokens are a no-op.
	Logout(token string)
	// Verify reports whether a token names a live session.
	Verify(token string) bool
	// Identity returns the admin identity behind a live token, or "".
	Identity(token string) string
}

// LoginRequest is the JSON payload for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token issued on successful login.
type LoginResponse struct {
	Success bool   `json:"success" example:"true"`
	Token   string `json:"token" example:"um0LEz5S3Ci2vUDHJ3lxRgLyO2pLx3EkcPTjQPf_Ywk"`
	Message string `json:"message" example:"Login successful"`
}

// Login godoc
// @ID          adminLogin
// @Summary     Admin login
// @Description Exchanges admin credentials for an opaque session token. Tokens expire after the configured TTL.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
//
// @Success     200  {object}  handlers.LoginResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}

	token, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		// Do not reveal which part of the credentials failed.
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
		return
	}

	middleware.LoggerFrom(c).Info().Msg("admin login")
	ok(c, http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		Message: "Login successful",
	})
}

// Logout godoc
// @ID          adminLogout
// @Summary     Admin logout
// @Description Revokes the supplied session token. Unknown or expired tokens are accepted silently, so logout is idempotent.
// @Tags        Auth
// @Produce     json
//
// @Param       token  query  string  false  "Session token (or Authorization: Bearer)"
//
// @Success     200  {object}  map[string]any
// @Router      /admin/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	if tok := middleware.SessionToken(c); tok != "" {
		h.authSvc.Logout(tok)
	}
	ok(c, http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// Verify godoc
// @ID          adminVerify
// @Summary     Verify admin session
// @Description Reports whether the supplied token names a live admin session and which identity it was issued to.
// @Tags        Auth
// @Produce     json
//
// @Param       token  query  string  false  "Session token (or Authorization: Bearer)"
//
// @Success     200  {object}  map[string]any  "{"valid": true, "username": "admin"}"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid or expired session"
// @Router      /admin/verify [get]
func (h *Handlers) Verify(c *gin.Context) {
	tok := middleware.SessionToken(c)
	if !h.authSvc.Verify(tok) {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid or expired session")
		return
	}
	ok(c, http.StatusOK, gin.H{"valid": true, "username": h.authSvc.Identity(tok)})
}
