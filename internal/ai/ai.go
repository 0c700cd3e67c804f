// Package ai defines the completion contract the services depend on and an
// OpenAI-backed implementation guarded by a circuit breaker.
package ai

import (
	"context"
	"errors"
)

// Errors returned by Completer implementations.
var (
	// ErrNotConfigured means no provider credentials were supplied.
	ErrNotConfigured = errors.New("ai: provider not configured")
	// ErrUnavailable means the breaker is open and the call was not attempted.
	ErrUnavailable = errors.New("ai: provider temporarily unavailable")
	// ErrEmptyCompletion means the provider answered without any content.
	ErrEmptyCompletion = errors.New("ai: empty completion")
)

// Modes select the model tier. They mirror domain chat modes.
const (
	ModeStandard   = "standard"
	ModeEnhanced   = "enhanced"
	ModeMagicLoops = "magic-loops"
)

// Message is one prior turn of a conversation.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Request is a single completion request.
type Request struct {
	// Purpose labels the call in metrics and logs (e.g. "skill_gap").
	Purpose string
	System  string
	Prompt  string
	// Mode picks the model; empty means ModeStandard.
	Mode string
	// JSON asks the provider for a JSON object response.
	JSON      bool
	MaxTokens int
	// History is replayed before Prompt.
	History []Message
}

// Completer produces a completion for a request.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
