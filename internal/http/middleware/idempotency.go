// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements idempotency support for POST requests. A request
// carrying a valid Idempotency-Key header from an authenticated user is
// scoped by method and path. The first successful (2xx) response is recorded;
// a retry with the same key within the TTL window is answered from the record
// with Idempotency-Replayed: true, skipping the handler (and the AI call
// behind it) and the rate limiter.
//
// Persistence is decoupled via the IdempotencyStore interface.
package middleware

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header that clients use to convey an
// idempotency key for unsafe operations.
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderIdempotencyReplayed marks a response served from a stored record.
const HeaderIdempotencyReplayed = "Idempotency-Replayed"

// Context keys used internally to stash idempotency state.
const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay" // bool: true when a stored replay was served
	ctxKeyRateBypass = "rate.bypass" // bool: true to skip rate limiting
)

// maxRecordedBody caps the response size that is stored for replay.
const maxRecordedBody = 1 << 20

// GetIdempotencyKey returns the validated idempotency key stored in the Gin
// context by IdempotencyValidator. The second return value indicates presence.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether the response was served from a stored record.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IdempotencyOptions configures IdempotencyValidator.
type IdempotencyOptions struct {
	// MaxLen caps the accepted key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters. If nil, ^[A-Za-z0-9._~\-:]+$ is used.
	Pattern *regexp.Regexp
	// TTL is how long a recorded response stays replayable.
	TTL time.Duration
}

// StoredResponse is a recorded response.
type StoredResponse struct {
	Status int
	Body   []byte
}

// IdempotencyStore persists responses per (user, scope, key). Lookup returns
// nil when no live record exists. Save may report a duplicate when a
// concurrent request recorded first; the middleware ignores that.
type IdempotencyStore interface {
	Lookup(ctx context.Context, userID uint, scope, key string, now time.Time) (*StoredResponse, error)
	Save(ctx context.Context, userID uint, scope, key string, resp StoredResponse, ttl time.Duration) error
}

// IdempotencyValidator validates the Idempotency-Key header and, when store is
// non-nil, replays or records responses.
//
// Behavior:
//   - Header absent or method not POST: no-op.
//   - Header invalid: 400 bad_idempotency_key.
//   - Anonymous caller: key is validated and stashed but nothing is recorded.
//   - Live record found: stored body replayed, handler chain aborted.
//   - Otherwise the handler runs and a 2xx response is recorded.
//
// Session() must run before this middleware so the user id is known.
func IdempotencyValidator(opts IdempotencyOptions, store IdempotencyStore) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			abortJSON(c, http.StatusBadRequest, "bad_idempotency_key", "invalid Idempotency-Key")
			return
		}
		c.Set(ctxKeyIdemKey, key)

		uid, authed := UserID(c)
		if store == nil || !authed {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		scope := c.Request.Method + " " + c.Request.URL.Path
		rec, err := store.Lookup(ctx, uid, scope, key, time.Now().UTC())
		if err != nil {
			LoggerFrom(c).Warn().Err(err).Msg("idempotency lookup failed")
		}
		if rec != nil {
			c.Set(ctxKeyIdemReplay, true)
			c.Set(ctxKeyRateBypass, true)
			c.Header(HeaderIdempotencyReplayed, "true")
			c.Data(rec.Status, "application/json; charset=utf-8", rec.Body)
			c.Abort()
			return
		}

		w := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < 200 || status >= 300 || w.overflow {
			return
		}
		resp := StoredResponse{Status: status, Body: w.buf.Bytes()}
		if err := store.Save(ctx, uid, scope, key, resp, ttl); err != nil {
			LoggerFrom(c).Debug().Err(err).Msg("idempotency record not saved")
		}
	}
}

// bodyRecorder tees the response body into a buffer, up to maxRecordedBody.
type bodyRecorder struct {
	gin.ResponseWriter
	buf      bytes.Buffer
	overflow bool
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.tee(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.tee([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *bodyRecorder) tee(b []byte) {
	if w.overflow {
		return
	}
	if w.buf.Len()+len(b) > maxRecordedBody {
		w.overflow = true
		w.buf.Reset()
		return
	}
	w.buf.Write(b)
}
