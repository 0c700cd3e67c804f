package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/go-career-backend/internal/domain"
)

func TestResumeService_CreateUpdate(t *testing.T) {
	db := newSvcDB(t)
	s := &ResumeService{DB: db}
	ctx := context.Background()
	ada := mustUser(t, db, "ada", false)

	r, err := s.Create(ctx, ada.ID, ResumeInput{Title: " CV ", OriginalContent: "Worked at Acme."})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Status != domain.ResumeDraft || r.Title != "CV" || r.AISuggestions == nil {
		t.Fatalf("unexpected resume: %+v", r)
	}

	got, err := s.Update(ctx, ada.ID, r.ID, ResumePatch{TargetRole: ptr("SRE")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.TargetRole != "SRE" || got.OriginalContent != "Worked at Acme." || !got.CreatedAt.Equal(r.CreatedAt) {
		t.Fatalf("shallow merge broken: %+v", got)
	}
	if _, err := s.Update(ctx, ada.ID+1, r.ID, ResumePatch{Title: ptr("x")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update: %v", err)
	}
}

func TestResumeService_Optimize_JSON(t *testing.T) {
	db := newSvcDB(t)
	fake := &fakeAI{reply: `{"optimizedContent": "Led Acme's platform team.", "suggestions": ["Quantify impact", " "]}`}
	s := &ResumeService{DB: db, AI: fake}
	ctx := context.Background()
	ada := mustUser(t, db, "ada", false)
	r, _ := s.Create(ctx, ada.ID, ResumeInput{OriginalContent: "Worked at Acme.", TargetRole: "Manager"})

	got, err := s.Optimize(ctx, ada.ID, r.ID, OptimizeInput{})
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if got.OptimizedContent == nil || *got.OptimizedContent != "Led Acme's platform team." {
		t.Fatalf("optimized content: %+v", got.OptimizedContent)
	}
	if len(got.AISuggestions) != 1 || got.AISuggestions[0] != "Quantify impact" {
		t.Fatalf("suggestions: %+v", got.AISuggestions)
	}
	if got.Status != domain.ResumeOptimized || got.OriginalContent != "Worked at Acme." || got.TargetRole != "Manager" {
		t.Fatalf("unexpected resume: %+v", got)
	}
	if fake.last().MaxTokens == 0 {
		t.Fatalf("optimize should raise the token budget")
	}
}

func TestResumeService_Optimize_ProseFallback(t *testing.T) {
	db := newSvcDB(t)
	fake := &fakeAI{reply: "Senior engineer with 8 years at Acme.\n\n**Suggestions:**\n- Quantify impact\n- Add keywords\n"}
	s := &ResumeService{DB: db, AI: fake}
	ctx := context.Background()
	ada := mustUser(t, db, "ada", false)
	r, _ := s.Create(ctx, ada.ID, ResumeInput{OriginalContent: "Engineer."})

	got, err := s.Optimize(ctx, ada.ID, r.ID, OptimizeInput{TargetRole: "Staff Engineer"})
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if *got.OptimizedContent != "Senior engineer with 8 years at Acme." {
		t.Fatalf("body: %q", *got.OptimizedContent)
	}
	if len(got.AISuggestions) != 2 || got.AISuggestions[1] != "Add keywords" {
		t.Fatalf("suggestions: %+v", got.AISuggestions)
	}
	if got.TargetRole != "Staff Engineer" {
		t.Fatalf("target role: %q", got.TargetRole)
	}
}

func TestResumeService_Optimize_Failures(t *testing.T) {
	db := newSvcDB(t)
	fake := &fakeAI{err: errAIDown}
	s := &ResumeService{DB: db, AI: fake}
	ctx := context.Background()
	ada := mustUser(t, db, "ada", false)

	if _, err := s.Optimize(ctx, ada.ID, 42, OptimizeInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing resume: want ErrNotFound, got %v", err)
	}
	if fake.calls() != 0 {
		t.Fatalf("AI must not be called for a missing resume")
	}

	r, _ := s.Create(ctx, ada.ID, ResumeInput{OriginalContent: "Engineer."})
	if _, err := s.Optimize(ctx, ada.ID, r.ID, OptimizeInput{}); !errors.Is(err, ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
	got, _ := s.Get(ctx, ada.ID, r.ID)
	if got.Status != domain.ResumeDraft || got.OptimizedContent != nil {
		t.Fatalf("failed optimization changed the resume: %+v", got)
	}
}

func TestParseResumeCompletion_NoSuggestions(t *testing.T) {
	body, sugg := parseResumeCompletion("  Just a rewritten resume.  ")
	if body != "Just a rewritten resume." {
		t.Fatalf("body: %q", body)
	}
	if sugg == nil || len(sugg) != 0 {
		t.Fatalf("suggestions: %#v", sugg)
	}
}
