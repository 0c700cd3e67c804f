// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the per-caller token-bucket limiter. Every request
// spends tokens from the caller's bucket; routes that call the AI provider
// spend more, so a client hammering /jobs/match runs dry long before one
// browsing its saved jobs does. Replays flagged by IdempotencyValidator are
// free.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyFunc selects the identity used to key a rate-limit bucket, such as
// "user:<id>" or "ip:<addr>".
type keyFunc func(*gin.Context) string

// KeyByUserOrIP keys by the authenticated user (set by Session) and falls
// back to the client IP. Keys are prefixed so the namespaces never collide.
func KeyByUserOrIP() keyFunc {
	return func(c *gin.Context) string {
		if id := userIDString(c); id != "" {
			return "user:" + id
		}
		return "ip:" + c.ClientIP()
	}
}

// CostFunc returns how many tokens a request spends. Values < 1 count as 1.
type CostFunc func(*gin.Context) int

// CostByRoute charges heavy for the listed routes, given as method plus the
// pattern registered with Gin ("POST /api/jobs/match"), and 1 for the rest.
func CostByRoute(heavy int, routes ...string) CostFunc {
	set := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		set[r] = struct{}{}
	}
	return func(c *gin.Context) int {
		if _, ok := set[c.Request.Method+" "+c.FullPath()]; ok {
			return heavy
		}
		return 1
	}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds one token bucket per key. Idle buckets are evicted
// every sweepEvery lookups. Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc
	cost  CostFunc
	now   func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
	idleTTL time.Duration
	lookups int
}

const sweepEvery = 5000

// NewRateLimiter builds a limiter refilling rps tokens per second up to
// burst (coerced to at least 1). Every request costs one token unless a
// CostFunc is set with WithCost.
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		keyFn:   keyFn,
		now:     time.Now,
		buckets: make(map[string]*bucket),
		idleTTL: 10 * time.Minute,
	}
}

// WithCost sets the per-request token cost and returns rl.
func (rl *RateLimiter) WithCost(fn CostFunc) *RateLimiter {
	rl.cost = fn
	return rl
}

// limiterFor returns the bucket for key, creating it on first use. The idle
// sweep runs before the lookup so a stale bucket for key is replaced fresh.
func (rl *RateLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= sweepEvery {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) >= rl.idleTTL {
				delete(rl.buckets, k)
			}
		}
		rl.lookups = 0
	}

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.buckets[key] = &bucket{limiter: lim, lastSeen: now}
	return lim
}

// tokens is the clamped cost of the request; a cost above burst could
// never be satisfied.
func (rl *RateLimiter) tokens(c *gin.Context) int {
	n := 1
	if rl.cost != nil {
		n = rl.cost(c)
	}
	return min(max(n, 1), rl.burst)
}

// IsRateBypass reports whether IdempotencyValidator marked this request as a
// replay that must not spend tokens.
func IsRateBypass(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyRateBypass)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Handler enforces the limits. A rejected request gets 429
// too_many_requests with Retry-After set to the whole seconds until its
// cost would be affordable.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsRateBypass(c) {
			c.Next()
			return
		}

		now := rl.now()
		n := rl.tokens(c)
		lim := rl.limiterFor(rl.keyFn(c), now)
		if lim.AllowN(now, n) {
			c.Next()
			return
		}

		c.Header("Retry-After", strconv.Itoa(retryAfter(lim, now, n)))
		abortJSON(c, http.StatusTooManyRequests, "too_many_requests", "rate limit exceeded")
	}
}

// retryAfter peeks at the wait for n tokens without spending them.
func retryAfter(lim *rate.Limiter, now time.Time, n int) int {
	r := lim.ReserveN(now, n)
	if !r.OK() {
		return 1
	}
	d := r.DelayFrom(now)
	r.CancelAt(now)
	return max(1, int(math.Ceil(d.Seconds())))
}
