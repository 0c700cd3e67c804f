// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file resolves the caller's identity. Session() runs globally and is
// optional: it authenticates from the session cookie or a bearer token and
// stores the user id (uint) under "userID". RequireAuth() guards the routes
// that need an identity and answers 401 otherwise.
//
// Developer bypass: with DevMode on, a request carrying the cookie
// dev_mode=true is authenticated as the developer account.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey is the Gin context key of the authenticated user id (uint).
	userIDKey = "userID"

	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "session"
	// DevModeCookie enables the developer bypass when set to "true".
	DevModeCookie = "dev_mode"
)

// TokenParser validates a session token and returns its user id.
type TokenParser interface {
	Parse(token string) (uint, error)
}

// SessionOptions configures Session.
type SessionOptions struct {
	Tokens TokenParser
	// DevMode enables the dev_mode cookie bypass.
	DevMode bool
	// DevUser returns the developer account id; required when DevMode is on.
	DevUser func(ctx context.Context) (uint, error)
}

// Session authenticates the request when it carries credentials. It never
// rejects a request; invalid or expired tokens are treated as anonymous.
func Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.DevMode && opts.DevUser != nil {
			if v, err := c.Cookie(DevModeCookie); err == nil && v == "true" {
				id, err := opts.DevUser(c.Request.Context())
				if err == nil {
					c.Set(userIDKey, id)
					c.Next()
					return
				}
				LoggerFrom(c).Error().Err(err).Msg("dev user unavailable")
			}
		}

		if tok := sessionToken(c); tok != "" && opts.Tokens != nil {
			if id, err := opts.Tokens.Parse(tok); err == nil {
				c.Set(userIDKey, id)
			}
		}
		c.Next()
	}
}

// sessionToken prefers the Authorization bearer token over the cookie.
func sessionToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if tok, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(tok)
		}
	}
	if v, err := c.Cookie(SessionCookie); err == nil {
		return v
	}
	return ""
}

// RequireAuth aborts with 401 unless Session authenticated the request.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
