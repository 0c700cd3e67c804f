package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tbourn/go-career-backend/internal/extract"
)

func TestAdvisorService_EvaluateBusinessIdea(t *testing.T) {
	fake := &fakeAI{reply: "Feasibility: 140/100\n\nStrengths: Good market fit. Strong team.\n\nWeaknesses:\n- Thin margins"}
	s := &AdvisorService{AI: fake}

	ev, err := s.EvaluateBusinessIdea(context.Background(), 1, BusinessIdeaInput{Idea: "Coffee truck", Budget: "$20k"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.FeasibilityScore != 100 {
		t.Fatalf("score should clamp to 100, got %d", ev.FeasibilityScore)
	}
	if len(ev.Strengths) != 2 || ev.Strengths[0] != "Good market fit" {
		t.Fatalf("strengths: %+v", ev.Strengths)
	}
	if ev.Opportunities == nil || len(ev.Opportunities) != 0 {
		t.Fatalf("missing sections must be empty, got %#v", ev.Opportunities)
	}
	if !strings.Contains(fake.last().Prompt, "Coffee truck") {
		t.Fatalf("prompt should carry the idea: %q", fake.last().Prompt)
	}
}

func TestAdvisorService_NoScoreDefaults(t *testing.T) {
	s := &AdvisorService{AI: &fakeAI{reply: "Sounds interesting."}, Extractor: extract.Default{}}
	ev, err := s.EvaluateBusinessIdea(context.Background(), 1, BusinessIdeaInput{Idea: "x"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.FeasibilityScore != extract.DefaultScore || len(ev.Strengths) != 0 {
		t.Fatalf("unexpected evaluation: %+v", ev)
	}
}

func TestAdvisorService_AIFailure(t *testing.T) {
	s := &AdvisorService{AI: &fakeAI{err: errAIDown}}
	if _, err := s.EvaluateBusinessIdea(context.Background(), 1, BusinessIdeaInput{Idea: "x"}); !errors.Is(err, ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestContentService_Generate(t *testing.T) {
	fake := &fakeAI{reply: "Dear hiring manager"}
	s := &ContentService{AI: fake}

	out, err := s.Generate(context.Background(), ContentInput{Prompt: " backend role at Acme ", Kind: "cover letter"})
	if err != nil || out != "Dear hiring manager" {
		t.Fatalf("generate: %v %q", err, out)
	}
	if got := fake.last().Prompt; got != "Write a cover letter.\n\nbackend role at Acme" {
		t.Fatalf("prompt: %q", got)
	}

	s.AI = &fakeAI{err: errAIDown}
	if _, err := s.Generate(context.Background(), ContentInput{Prompt: "x"}); !errors.Is(err, ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}
