package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/tbourn/go-career-backend/internal/breaker"
	"github.com/tbourn/go-career-backend/internal/config"
)

var (
	completions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_completions_total",
			Help: "AI completion calls by purpose and outcome.",
		},
		[]string{"purpose", "outcome"},
	)

	completionLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_completion_duration_seconds",
			Help:    "Duration of AI completion calls in seconds.",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"purpose"},
	)
)

func init() {
	prometheus.MustRegister(completions, completionLat)
}

const defaultMaxTokens = 1500

// Client is the OpenAI Completer. A Client without an API key answers every
// call with ErrNotConfigured.
type Client struct {
	api           *openai.Client
	model         string
	enhancedModel string
	timeout       time.Duration
	cb            *gobreaker.CircuitBreaker
}

var _ Completer = (*Client)(nil)

// New builds a Client from cfg. httpClient may be nil.
func New(cfg config.AIConfig, httpClient *http.Client) *Client {
	c := &Client{
		model:         cfg.Model,
		enhancedModel: cfg.EnhancedModel,
		timeout:       cfg.Timeout,
		cb:            breaker.New(breaker.Default("openai")),
	}
	if c.enhancedModel == "" {
		c.enhancedModel = c.model
	}
	if cfg.APIKey == "" {
		return c
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if httpClient != nil {
		oc.HTTPClient = httpClient
	}
	c.api = openai.NewClientWithConfig(oc)
	return c
}

// Configured reports whether the client has credentials.
func (c *Client) Configured() bool { return c.api != nil }

// ModelFor returns the model used for mode.
func (c *Client) ModelFor(mode string) string {
	if mode == ModeEnhanced {
		return c.enhancedModel
	}
	return c.model
}

// Complete implements Completer. Calls are bounded by the configured timeout
// and are never retried.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	purpose := req.Purpose
	if purpose == "" {
		purpose = "unspecified"
	}
	if c.api == nil {
		completions.WithLabelValues(purpose, "not_configured").Inc()
		return "", ErrNotConfigured
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.create(ctx, req)
	})
	completionLat.WithLabelValues(purpose).Observe(time.Since(start).Seconds())

	switch {
	case breaker.IsOpen(err):
		completions.WithLabelValues(purpose, "unavailable").Inc()
		return "", ErrUnavailable
	case err != nil:
		completions.WithLabelValues(purpose, "error").Inc()
		log.Ctx(ctx).Warn().Err(err).Str("purpose", purpose).Msg("ai completion failed")
		return "", err
	}
	completions.WithLabelValues(purpose, "ok").Inc()
	return out.(string), nil
}

func (c *Client) create(ctx context.Context, req Request) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	for _, m := range req.History {
		role := openai.ChatMessageRoleUser
		if m.Role == openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	creq := openai.ChatCompletionRequest{
		Model:     c.ModelFor(req.Mode),
		Messages:  msgs,
		MaxTokens: maxTokens,
	}
	if req.JSON {
		creq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, creq)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

// StatusCode extracts the provider's HTTP status from err, or 0.
func StatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
