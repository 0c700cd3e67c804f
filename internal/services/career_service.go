// Package services – CareerService
//
// This file implements AI career recommendations. Each recommendation in the
// completion becomes a persisted Career; fit scores are clamped to [0,100].
package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/extract"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// CareerInput describes the person careers are recommended for.
type CareerInput struct {
	Skills         []string
	Interests      []string
	EducationLevel string
	Experience     string
}

// CareerService generates and lists career recommendations.
type CareerService struct {
	DB *gorm.DB
	AI ai.Completer
}

type aiCareer struct {
	CareerTitle    string   `json:"careerTitle"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SalaryRange    string   `json:"salaryRange"`
	GrowthRate     string   `json:"growthRate"`
	FitScore       flexInt  `json:"fitScore"`
	RequiredSkills []string `json:"requiredSkills"`
}

// Generate asks the AI for recommendations and stores them for userID in
// one batch. An AI failure stores nothing.
func (s *CareerService) Generate(ctx context.Context, userID uint, in CareerInput) ([]domain.Career, error) {
	tr := otel.Tracer("services/CareerService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	text, err := s.AI.Complete(ctx, ai.Request{
		Purpose: "career_recommendation",
		System:  systemCareer,
		Prompt:  careerPrompt(in),
		JSON:    true,
	})
	if err != nil {
		span.RecordError(err)
		return nil, upstream("generate careers", err)
	}

	recs := decodeList[aiCareer](text, "careers")
	out := make([]domain.Career, 0, len(recs))
	err = repo.Batch(ctx, s.DB, func(tx *gorm.DB) error {
		for _, r := range recs {
			title := strings.TrimSpace(r.CareerTitle)
			if title == "" {
				title = strings.TrimSpace(r.Title)
			}
			if title == "" {
				continue
			}
			c, err := repo.CreateCareer(ctx, tx, &domain.Career{
				UserID:         userID,
				CareerTitle:    title,
				Description:    r.Description,
				SalaryRange:    r.SalaryRange,
				GrowthRate:     r.GrowthRate,
				FitScore:       extract.ClampScore(int(r.FitScore)),
				RequiredSkills: nonNilStrings(r.RequiredSkills),
			})
			if err != nil {
				return err
			}
			out = append(out, *c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store careers: %w", err)
	}
	span.SetAttributes(attribute.Int("careers.count", len(out)))
	return out, nil
}

// List returns the user's recommendations in creation order.
func (s *CareerService) List(ctx context.Context, userID uint) ([]domain.Career, error) {
	return repo.ListCareersByUser(ctx, s.DB, userID)
}

// Get returns one of the user's recommendations.
func (s *CareerService) Get(ctx context.Context, userID, id uint) (*domain.Career, error) {
	c, err := repo.GetCareer(ctx, s.DB, id)
	if err != nil {
		return nil, notFound("get career", err)
	}
	if c.UserID != userID {
		return nil, ErrNotFound
	}
	return c, nil
}
