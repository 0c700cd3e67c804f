package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestKeyByUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	if key := KeyByUserOrIP()(c); !strings.HasPrefix(key, "ip:") || !strings.Contains(key, "203.0.113.9") {
		t.Fatalf("expected ip-based key; got %q", key)
	}

	c.Set(userIDKey, uint(123))
	if key := KeyByUserOrIP()(c); key != "user:123" {
		t.Fatalf("expected user-based key; got %q", key)
	}
}

func TestNewRateLimiter_BurstCoercion_AndBucketReuse(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByUserOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst coercion failed, got %d", rl.burst)
	}
	now := time.Now()
	lim := rl.limiterFor("k1", now)
	if got := rl.limiterFor("k1", now); got != lim {
		t.Fatalf("expected same limiter instance to be reused")
	}
}

func TestRateLimiter_IdleBucketsSwept(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())
	now := time.Now()

	rl.mu.Lock()
	rl.buckets["old"] = &bucket{limiter: rate.NewLimiter(1, 1), lastSeen: now.Add(-time.Hour)}
	rl.buckets["fresh"] = &bucket{limiter: rate.NewLimiter(1, 1), lastSeen: now}
	rl.lookups = sweepEvery - 1
	rl.mu.Unlock()

	_ = rl.limiterFor("new", now)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.buckets["old"]; ok {
		t.Fatalf("idle bucket survived the sweep")
	}
	if _, ok := rl.buckets["fresh"]; !ok {
		t.Fatalf("recent bucket was swept")
	}
	if _, ok := rl.buckets["new"]; !ok || rl.lookups != 0 {
		t.Fatalf("new bucket missing or counter not reset (lookups=%d)", rl.lookups)
	}
}

func TestIsRateBypass(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if IsRateBypass(c) {
		t.Fatalf("expected IsRateBypass=false by default")
	}
	c.Set(ctxKeyRateBypass, true)
	if !IsRateBypass(c) {
		t.Fatalf("expected IsRateBypass=true when set")
	}
	c.Set(ctxKeyRateBypass, "yes")
	if IsRateBypass(c) {
		t.Fatalf("expected IsRateBypass=false when non-bool stored")
	}
}

func limitedRouter(rl *RateLimiter, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(pre...)
	r.Use(rl.Handler())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/api/jobs", ok)
	r.POST("/api/jobs/match", ok)
	return r
}

func hit(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRateLimiter_Handler_Allow_Deny_And_Bypass(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())
	r := limitedRouter(rl)

	if w := hit(r, http.MethodGet, "/api/jobs"); w.Code != http.StatusOK {
		t.Fatalf("first request should be allowed, got %d", w.Code)
	}
	w := hit(r, http.MethodGet, "/api/jobs")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be rate-limited, got %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After=1, got %q", got)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != "too_many_requests" {
		t.Fatalf("unexpected JSON body: %v", body)
	}

	bypass := limitedRouter(rl, func(c *gin.Context) { c.Set(ctxKeyRateBypass, true) })
	if w := hit(bypass, http.MethodGet, "/api/jobs"); w.Code != http.StatusOK {
		t.Fatalf("bypass request should be allowed, got %d", w.Code)
	}
}

func TestRateLimiter_HeavyRoutesSpendMore(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1.0, 6, KeyByUserOrIP()).WithCost(CostByRoute(3, "POST /api/jobs/match"))
	rl.now = func() time.Time { return now }
	r := limitedRouter(rl)

	for i := 0; i < 2; i++ {
		if w := hit(r, http.MethodPost, "/api/jobs/match"); w.Code != http.StatusOK {
			t.Fatalf("match #%d = %d", i, w.Code)
		}
	}
	w := hit(r, http.MethodPost, "/api/jobs/match")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third match = %d, want 429", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "3" {
		t.Fatalf("Retry-After=%q, want 3", got)
	}

	// The rejection spent nothing: one second refills one cheap request.
	now = now.Add(time.Second)
	if w := hit(r, http.MethodGet, "/api/jobs"); w.Code != http.StatusOK {
		t.Fatalf("cheap request after refill = %d", w.Code)
	}
	if w := hit(r, http.MethodGet, "/api/jobs"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("bucket should be empty again, got %d", w.Code)
	}
}

func TestRateLimiter_CostClampedToBurst(t *testing.T) {
	rl := NewRateLimiter(1.0, 2, KeyByUserOrIP()).WithCost(func(*gin.Context) int { return 50 })
	if n := rl.tokens(nil); n != 2 {
		t.Fatalf("tokens=%d, want burst 2", n)
	}
	rl.WithCost(func(*gin.Context) int { return 0 })
	if n := rl.tokens(nil); n != 1 {
		t.Fatalf("tokens=%d, want 1", n)
	}
}
