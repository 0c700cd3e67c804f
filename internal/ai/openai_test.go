package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-career-backend/internal/config"
)

type capturedRequest struct {
	Model          string `json:"model"`
	MaxTokens      int    `json:"max_tokens"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionServer(t *testing.T, status int, content string, seen *capturedRequest, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"model":  "gpt-test",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		APIKey:        "test-key",
		BaseURL:       baseURL + "/v1",
		Model:         "gpt-small",
		EnhancedModel: "gpt-large",
		Timeout:       5 * time.Second,
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c := New(config.AIConfig{Model: "m"}, nil)
	assert.False(t, c.Configured())
	_, err := c.Complete(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Complete(t *testing.T) {
	var seen capturedRequest
	srv := completionServer(t, http.StatusOK, "  Hello there  ", &seen, nil)
	c := New(testConfig(srv.URL), srv.Client())

	out, err := c.Complete(context.Background(), Request{
		Purpose: "chat",
		System:  "be brief",
		Prompt:  "hi",
		History: []Message{{Role: "user", Content: "earlier"}, {Role: "assistant", Content: "reply"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", out)

	assert.Equal(t, "gpt-small", seen.Model)
	assert.Equal(t, defaultMaxTokens, seen.MaxTokens)
	assert.Nil(t, seen.ResponseFormat)
	require.Len(t, seen.Messages, 4)
	assert.Equal(t, "system", seen.Messages[0].Role)
	assert.Equal(t, "assistant", seen.Messages[2].Role)
	assert.Equal(t, "hi", seen.Messages[3].Content)
}

func TestClient_EnhancedModeAndJSON(t *testing.T) {
	var seen capturedRequest
	srv := completionServer(t, http.StatusOK, `{"ok":true}`, &seen, nil)
	c := New(testConfig(srv.URL), srv.Client())

	_, err := c.Complete(context.Background(), Request{Prompt: "x", Mode: ModeEnhanced, JSON: true, MaxTokens: 200})
	require.NoError(t, err)
	assert.Equal(t, "gpt-large", seen.Model)
	assert.Equal(t, 200, seen.MaxTokens)
	require.NotNil(t, seen.ResponseFormat)
	assert.Equal(t, "json_object", seen.ResponseFormat.Type)

	assert.Equal(t, "gpt-small", c.ModelFor(ModeMagicLoops))
}

func TestClient_EmptyCompletion(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "   ", nil, nil)
	c := New(testConfig(srv.URL), srv.Client())
	_, err := c.Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestClient_UpstreamErrorThenBreakerOpens(t *testing.T) {
	var calls int32
	srv := completionServer(t, http.StatusInternalServerError, "", nil, &calls)
	c := New(testConfig(srv.URL), srv.Client())

	// The SDK does not retry; each Complete is one upstream call.
	var last error
	for i := 0; i < 5; i++ {
		_, last = c.Complete(context.Background(), Request{Prompt: "x"})
		require.Error(t, last)
	}
	assert.Equal(t, http.StatusInternalServerError, StatusCode(last))

	before := atomic.LoadInt32(&calls)
	_, err := c.Complete(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, before, atomic.LoadInt32(&calls))
}

func TestCompleterFunc(t *testing.T) {
	var f Completer = CompleterFunc(func(_ context.Context, r Request) (string, error) {
		return "echo:" + r.Prompt, nil
	})
	out, err := f.Complete(context.Background(), Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "echo:a", out)
}
