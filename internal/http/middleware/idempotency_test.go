package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// memIdemStore is an in-memory IdempotencyStore.
type memIdemStore struct {
	mu      sync.Mutex
	recs    map[string]StoredResponse
	lookups int
	saves   int
}

func newMemIdemStore() *memIdemStore { return &memIdemStore{recs: map[string]StoredResponse{}} }

func idemKey(uid uint, scope, key string) string {
	return fmt.Sprintf("%d|%s|%s", uid, scope, key)
}

func (m *memIdemStore) Lookup(_ context.Context, uid uint, scope, key string, _ time.Time) (*StoredResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if r, ok := m.recs[idemKey(uid, scope, key)]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *memIdemStore) Save(_ context.Context, uid uint, scope, key string, resp StoredResponse, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.recs[idemKey(uid, scope, key)] = resp
	return nil
}

func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) { c.Set("userID", id); c.Next() }
}

func TestHelpers_GetIdempotencyKey_IsReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if k, ok := GetIdempotencyKey(c); k != "" || ok {
		t.Fatalf("expected empty key when not set")
	}
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false by default")
	}
	c.Set(ctxKeyIdemKey, 123)
	if _, ok := GetIdempotencyKey(c); ok {
		t.Fatalf("expected GetIdempotencyKey to be absent for non-string value")
	}
	c.Set(ctxKeyIdemReplay, true)
	if !IsReplay(c) {
		t.Fatalf("expected IsReplay=true")
	}
	c.Set(ctxKeyIdemReplay, "yes")
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false for non-bool")
	}
}

func TestIdempotencyValidator_NoHeaderOrSafeMethod_NoLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemIdemStore()
	r := gin.New()
	r.Use(asUser(1), IdempotencyValidator(IdempotencyOptions{}, store))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderIdempotencyKey, "k1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/ping", nil))

	if store.lookups != 0 || store.saves != 0 {
		t.Fatalf("store must not be used: lookups=%d saves=%d", store.lookups, store.saves)
	}
}

func TestIdempotencyValidator_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name string
		opts IdempotencyOptions
		key  string
	}{
		{"too long", IdempotencyOptions{MaxLen: 5}, "abcdef"},
		{"pattern", IdempotencyOptions{Pattern: regexp.MustCompile(`^[0-9]+$`)}, "abc123"},
		{"default pattern", IdempotencyOptions{}, "has space"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(IdempotencyValidator(tc.opts, nil))
			r.POST("/x", func(c *gin.Context) { t.Fatalf("handler must not run"); c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			req.Header.Set(HeaderIdempotencyKey, tc.key)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["code"] != "bad_idempotency_key" {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}

func TestIdempotencyValidator_Anonymous_StashesKeyOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemIdemStore()
	r := gin.New()
	r.Use(IdempotencyValidator(IdempotencyOptions{}, store))
	r.POST("/z", func(c *gin.Context) {
		if key, ok := GetIdempotencyKey(c); !ok || key != "abc-123" {
			t.Fatalf("expected stashed key abc-123, got %q ok=%v", key, ok)
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/z", nil)
	req.Header.Set(HeaderIdempotencyKey, "abc-123")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if store.lookups != 0 || store.saves != 0 {
		t.Fatalf("anonymous requests are not recorded")
	}
}

func TestIdempotencyValidator_RecordsAndReplays(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemIdemStore()
	calls := 0
	r := gin.New()
	r.Use(asUser(3), IdempotencyValidator(IdempotencyOptions{TTL: time.Hour}, store))
	r.POST("/chats/:id/message", func(c *gin.Context) {
		calls++
		if IsReplay(c) {
			t.Fatalf("handler must not see replays")
		}
		c.JSON(http.StatusOK, gin.H{"reply": calls})
	})

	send := func(path, key string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(HeaderIdempotencyKey, key)
		r.ServeHTTP(w, req)
		return w
	}

	first := send("/chats/1/message", "k-1")
	if first.Code != http.StatusOK || first.Header().Get(HeaderIdempotencyReplayed) != "" {
		t.Fatalf("first: code=%d replayed=%q", first.Code, first.Header().Get(HeaderIdempotencyReplayed))
	}
	second := send("/chats/1/message", "k-1")
	if second.Header().Get(HeaderIdempotencyReplayed) != "true" {
		t.Fatalf("retry should be replayed")
	}
	if second.Body.String() != first.Body.String() || second.Code != first.Code {
		t.Fatalf("replay differs: %q vs %q", second.Body.String(), first.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times; want 1", calls)
	}

	// Same key on another chat is a different scope.
	if w := send("/chats/2/message", "k-1"); w.Header().Get(HeaderIdempotencyReplayed) != "" {
		t.Fatalf("different scope must not replay")
	}
	if calls != 2 {
		t.Fatalf("handler ran %d times; want 2", calls)
	}
}

func TestIdempotencyValidator_FailedResponsesNotRecorded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemIdemStore()
	r := gin.New()
	r.Use(asUser(3), IdempotencyValidator(IdempotencyOptions{}, store))
	r.POST("/x", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{"code": "upstream_failed"}) })

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(HeaderIdempotencyKey, "k")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(HeaderIdempotencyReplayed) != "" {
			t.Fatalf("errors must not be replayed")
		}
	}
	if store.saves != 0 {
		t.Fatalf("5xx responses must not be recorded")
	}
}

func TestIdempotencyValidator_ReplayBypassesRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemIdemStore()
	rl := NewRateLimiter(0.0001, 1, KeyByUserOrIP())
	r := gin.New()
	r.Use(asUser(5), IdempotencyValidator(IdempotencyOptions{}, store), rl.Handler())
	r.POST("/x", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"id": 1}) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(HeaderIdempotencyKey, "same")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("attempt %d: got %d; replays must not be rate limited", i, w.Code)
		}
	}
}
