// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// SecurityHeaders hardens JSON responses. Everything the API serves is data,
// so the default CSP forbids every fetch; only the docs UI, which renders a
// real page, is left without one.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const apiCSP = "default-src 'none'; frame-ancestors 'none'"

// SecurityOptions configures SecurityHeaders.
//
// NoStorePrefixes lists path prefixes whose responses carry credentials or
// profile data (login, the current user) and must never be cached. DocsPrefix
// is exempt from the CSP.
type SecurityOptions struct {
	EnableHSTS      bool
	HSTSMaxAge      time.Duration // 180 days when <= 0
	NoStorePrefixes []string
	DocsPrefix      string
}

// SecurityHeaders sets nosniff, frame denial, no-referrer and a locked-down
// Permissions-Policy on every response. HSTS is sent only for HTTPS requests
// (directly or via X-Forwarded-Proto) and only when enabled.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	maxAge := opt.HSTSMaxAge
	if maxAge <= 0 {
		maxAge = 180 * 24 * time.Hour
	}
	hsts := "max-age=" + strconv.Itoa(int(maxAge.Seconds())) + "; includeSubDomains"

	return func(c *gin.Context) {
		h := c.Writer.Header()
		path := c.Request.URL.Path

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
		h.Set("Cross-Origin-Resource-Policy", "same-site")

		if opt.DocsPrefix == "" || !strings.HasPrefix(path, opt.DocsPrefix) {
			h.Set("Content-Security-Policy", apiCSP)
		}
		if hasAnyPrefix(path, opt.NoStorePrefixes) {
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")
		}
		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hsts)
		}
		c.Next()
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
