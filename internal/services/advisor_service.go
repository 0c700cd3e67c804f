// Package services – AdvisorService
//
// This file implements the stateless AI tools: business-idea evaluation for
// authenticated users and the free content generator. Neither persists
// anything.
package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/extract"
)

// BusinessIdeaInput is the idea to evaluate.
type BusinessIdeaInput struct {
	Idea       string
	Industry   string
	Budget     string
	Experience string
}

// AdvisorService evaluates business ideas.
type AdvisorService struct {
	AI        ai.Completer
	Extractor extract.Extractor
}

// EvaluateBusinessIdea scores the idea and lists its strengths, weaknesses,
// opportunities, entry barriers and next steps. Sections the AI leaves out
// come back empty; a missing score is extract.DefaultScore.
func (s *AdvisorService) EvaluateBusinessIdea(ctx context.Context, userID uint, in BusinessIdeaInput) (*extract.BusinessEvaluation, error) {
	tr := otel.Tracer("services/AdvisorService")
	ctx, span := tr.Start(ctx, "EvaluateBusinessIdea",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	text, err := s.AI.Complete(ctx, ai.Request{
		Purpose: "business_evaluation",
		System:  systemBusiness,
		Prompt:  businessPrompt(in),
	})
	if err != nil {
		span.RecordError(err)
		return nil, upstream("evaluate business idea", err)
	}

	ex := s.Extractor
	if ex == nil {
		ex = extract.Default{}
	}
	ev := ex.BusinessEvaluation(text)
	ev.FeasibilityScore = extract.ClampScore(ev.FeasibilityScore)
	span.SetAttributes(attribute.Int("feasibility", ev.FeasibilityScore))
	return &ev, nil
}

// ContentInput is a free-form generation request.
type ContentInput struct {
	Prompt string
	// Kind is an optional hint such as "cover letter" or "linkedin summary".
	Kind string
}

// ContentService generates free-form text.
type ContentService struct {
	AI ai.Completer
}

// Generate returns the AI's content for the prompt.
func (s *ContentService) Generate(ctx context.Context, in ContentInput) (string, error) {
	tr := otel.Tracer("services/ContentService")
	ctx, span := tr.Start(ctx, "Generate")
	defer span.End()

	prompt := strings.TrimSpace(in.Prompt)
	if k := strings.TrimSpace(in.Kind); k != "" {
		prompt = "Write a " + k + ".\n\n" + prompt
	}
	out, err := s.AI.Complete(ctx, ai.Request{
		Purpose: "content",
		System:  systemContent,
		Prompt:  prompt,
	})
	if err != nil {
		span.RecordError(err)
		return "", upstream("generate content", err)
	}
	return out, nil
}
