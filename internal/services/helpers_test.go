package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// ---------- test helpers ----------

func newSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())
	st, err := repo.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st.DB
}

// fakeAI replays a fixed reply (or error) and records requests.
type fakeAI struct {
	mu    sync.Mutex
	reply string
	err   error
	reqs  []ai.Request
}

func (f *fakeAI) Complete(_ context.Context, r ai.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, r)
	return f.reply, f.err
}

func (f *fakeAI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

func (f *fakeAI) last() ai.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.reqs) == 0 {
		return ai.Request{}
	}
	return f.reqs[len(f.reqs)-1]
}

var errAIDown = errors.New("provider down")

func mustUser(t *testing.T, db *gorm.DB, name string, premium bool) *domain.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), db, &domain.User{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		IsPremium:    premium,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func ptr[T any](v T) *T { return &v }
