// Package services – ResumeService
//
// This file implements resume CRUD and AI optimization. Optimization keeps
// the original text, stores the rewrite and its suggestions, and marks the
// resume optimized.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/extract"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// ResumeInput carries a new resume.
type ResumeInput struct {
	Title           string
	OriginalContent string
	TargetRole      string
	Status          string
}

// ResumePatch lists the fields to change; nil fields are kept.
type ResumePatch struct {
	Title            *string
	OriginalContent  *string
	OptimizedContent *string
	AISuggestions    *[]string
	TargetRole       *string
	Status           *string
}

func (p ResumePatch) fields() map[string]any {
	f := map[string]any{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.OriginalContent != nil {
		f["original_content"] = *p.OriginalContent
	}
	if p.OptimizedContent != nil {
		f["optimized_content"] = *p.OptimizedContent
	}
	if p.AISuggestions != nil {
		f["ai_suggestions"] = datatypes.JSONSlice[string](nonNilStrings(*p.AISuggestions))
	}
	if p.TargetRole != nil {
		f["target_role"] = *p.TargetRole
	}
	if p.Status != nil {
		f["status"] = *p.Status
	}
	return f
}

// OptimizeInput tunes an optimization.
type OptimizeInput struct {
	TargetRole     string
	JobDescription string
}

// ResumeService manages resumes.
type ResumeService struct {
	DB *gorm.DB
	AI ai.Completer
}

// Create stores a resume for userID.
func (s *ResumeService) Create(ctx context.Context, userID uint, in ResumeInput) (*domain.Resume, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = domain.ResumeDraft
	}
	r, err := repo.CreateResume(ctx, s.DB, &domain.Resume{
		UserID:          userID,
		Title:           strings.TrimSpace(in.Title),
		OriginalContent: in.OriginalContent,
		TargetRole:      strings.TrimSpace(in.TargetRole),
		AISuggestions:   []string{},
		Status:          status,
	})
	if err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return r, nil
}

// List returns the user's resumes in creation order.
func (s *ResumeService) List(ctx context.Context, userID uint) ([]domain.Resume, error) {
	return repo.ListResumesByUser(ctx, s.DB, userID)
}

// Get returns one of the user's resumes.
func (s *ResumeService) Get(ctx context.Context, userID, id uint) (*domain.Resume, error) {
	r, err := repo.GetResume(ctx, s.DB, id)
	if err != nil {
		return nil, notFound("get resume", err)
	}
	if r.UserID != userID {
		return nil, ErrNotFound
	}
	return r, nil
}

// Update shallow-merges p onto one of the user's resumes.
func (s *ResumeService) Update(ctx context.Context, userID, id uint, p ResumePatch) (*domain.Resume, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	r, err := repo.UpdateResume(ctx, s.DB, id, p.fields())
	if err != nil {
		return nil, notFound("update resume", err)
	}
	return r, nil
}

type aiResume struct {
	OptimizedContent string   `json:"optimizedContent"`
	Suggestions      []string `json:"suggestions"`
}

// Optimize asks the AI to rewrite one of the user's resumes and stores the
// result. The resume is untouched when the AI call fails.
func (s *ResumeService) Optimize(ctx context.Context, userID, id uint, in OptimizeInput) (*domain.Resume, error) {
	tr := otel.Tracer("services/ResumeService")
	ctx, span := tr.Start(ctx, "Optimize",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("resume.id", int(id)),
		),
	)
	defer span.End()

	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.TargetRole == "" {
		in.TargetRole = r.TargetRole
	}

	text, err := s.AI.Complete(ctx, ai.Request{
		Purpose:   "resume_optimize",
		System:    systemResume,
		Prompt:    resumePrompt(r.OriginalContent, in),
		JSON:      true,
		MaxTokens: 2500,
	})
	if err != nil {
		span.RecordError(err)
		return nil, upstream("optimize resume", err)
	}

	optimized, suggestions := parseResumeCompletion(text)
	fields := map[string]any{
		"optimized_content": optimized,
		"ai_suggestions":    datatypes.JSONSlice[string](suggestions),
		"status":            domain.ResumeOptimized,
	}
	if in.TargetRole != "" {
		fields["target_role"] = in.TargetRole
	}
	out, err := repo.UpdateResume(ctx, s.DB, id, fields)
	if err != nil {
		return nil, notFound("store optimized resume", err)
	}
	return out, nil
}

// parseResumeCompletion reads {"optimizedContent", "suggestions"} or falls back
// to prose: the "Suggestions" section becomes the suggestions and the text
// before it the rewrite.
func parseResumeCompletion(text string) (string, []string) {
	var p aiResume
	if err := extract.DecodeJSON(text, &p); err == nil && strings.TrimSpace(p.OptimizedContent) != "" {
		return strings.TrimSpace(p.OptimizedContent), cleanStrings(p.Suggestions)
	}

	suggestions := extract.ExtractSection(text, extract.HeadingSuggestions)
	body := text
	if loc := suggestionsHeadingRE.FindStringIndex(text); loc != nil && loc[0] > 0 && len(suggestions) > 0 {
		body = text[:loc[0]]
	}
	body = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(body), "#*_"))
	return body, suggestions
}

var suggestionsHeadingRE = regexp.MustCompile(`(?im)^[\s#>*_]*suggestions\b`)

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
