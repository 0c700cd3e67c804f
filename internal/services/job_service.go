// Package services – JobService
//
// This file implements AI job matching and the saved-jobs workflow. Matched
// jobs are persisted per user; only IsSaved and ApplicationStatus change later.
package services

import (
	"context"
	"fmt"
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

// Match tiers derived from the match percentage when the AI gives none.
const (
	TierExcellent = "excellent"
	TierStrong    = "strong"
	TierModerate  = "moderate"
	TierStretch   = "stretch"
)

// MatchTier maps a percentage to its tier.
func MatchTier(pct int) string {
	switch {
	case pct >= 85:
		return TierExcellent
	case pct >= 70:
		return TierStrong
	case pct >= 50:
		return TierModerate
	}
	return TierStretch
}

// MatchInput describes the candidate.
type MatchInput struct {
	UserSkills     []string
	UserExperience string
	Preferences    string
}

// JobPatch lists the job fields users may change; nil fields are kept.
type JobPatch struct {
	IsSaved           *bool
	ApplicationStatus *string
}

func (p JobPatch) fields() map[string]any {
	f := map[string]any{}
	if p.IsSaved != nil {
		f["is_saved"] = *p.IsSaved
	}
	if p.ApplicationStatus != nil {
		f["application_status"] = strings.TrimSpace(*p.ApplicationStatus)
	}
	return f
}

// JobService matches and tracks jobs.
type JobService struct {
	DB *gorm.DB
	AI ai.Completer
}

type aiJob struct {
	JobTitle          string                   `json:"jobTitle"`
	Title             string                   `json:"title"`
	Company           string                   `json:"company"`
	Description       string                   `json:"description"`
	MatchPercentage   flexInt                  `json:"matchPercentage"`
	MatchTier         string                   `json:"matchTier"`
	Salary            string                   `json:"salary"`
	Location          string                   `json:"location"`
	RequiredSkills    []string                 `json:"requiredSkills"`
	UserSkillMatch    []string                 `json:"userSkillMatch"`
	SkillGaps         []string                 `json:"skillGaps"`
	DevelopmentPlan   domain.DevelopmentPlan   `json:"developmentPlan"`
	CareerProgression domain.CareerProgression `json:"careerProgression"`
}

// Match asks the AI for job matches and stores them for userID in one batch.
func (s *JobService) Match(ctx context.Context, userID uint, in MatchInput) ([]domain.Job, error) {
	tr := otel.Tracer("services/JobService")
	ctx, span := tr.Start(ctx, "Match",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	text, err := s.AI.Complete(ctx, ai.Request{
		Purpose: "job_match",
		System:  systemJobMatch,
		Prompt:  jobMatchPrompt(in),
		JSON:    true,
	})
	if err != nil {
		span.RecordError(err)
		return nil, upstream("match jobs", err)
	}

	recs := decodeList[aiJob](text, "jobs")
	out := make([]domain.Job, 0, len(recs))
	err = repo.Batch(ctx, s.DB, func(tx *gorm.DB) error {
		for _, r := range recs {
			title := strings.TrimSpace(r.JobTitle)
			if title == "" {
				title = strings.TrimSpace(r.Title)
			}
			if title == "" {
				continue
			}
			pct := extract.ClampScore(int(r.MatchPercentage))
			tier := strings.ToLower(strings.TrimSpace(r.MatchTier))
			if tier == "" {
				tier = MatchTier(pct)
			}
			j, err := repo.CreateJob(ctx, tx, &domain.Job{
				UserID:            userID,
				JobTitle:          title,
				Company:           r.Company,
				Description:       r.Description,
				MatchPercentage:   pct,
				MatchTier:         tier,
				Salary:            r.Salary,
				Location:          r.Location,
				RequiredSkills:    nonNilStrings(r.RequiredSkills),
				UserSkillMatch:    nonNilStrings(r.UserSkillMatch),
				SkillGaps:         nonNilStrings(r.SkillGaps),
				DevelopmentPlan:   datatypes.NewJSONType(normalizePlan(r.DevelopmentPlan)),
				CareerProgression: datatypes.NewJSONType(normalizeProgression(r.CareerProgression)),
			})
			if err != nil {
				return err
			}
			out = append(out, *j)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store jobs: %w", err)
	}
	span.SetAttributes(attribute.Int("jobs.count", len(out)))
	return out, nil
}

// List returns the user's jobs; a non-nil saved filters on IsSaved.
func (s *JobService) List(ctx context.Context, userID uint, saved *bool) ([]domain.Job, error) {
	return repo.ListJobsByUser(ctx, s.DB, userID, saved)
}

// Get returns one of the user's jobs.
func (s *JobService) Get(ctx context.Context, userID, id uint) (*domain.Job, error) {
	j, err := repo.GetJob(ctx, s.DB, id)
	if err != nil {
		return nil, notFound("get job", err)
	}
	if j.UserID != userID {
		return nil, ErrNotFound
	}
	return j, nil
}

// Update applies p to one of the user's jobs.
func (s *JobService) Update(ctx context.Context, userID, id uint, p JobPatch) (*domain.Job, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	j, err := repo.UpdateJob(ctx, s.DB, id, p.fields())
	if err != nil {
		return nil, notFound("update job", err)
	}
	return j, nil
}

func normalizePlan(p domain.DevelopmentPlan) domain.DevelopmentPlan {
	p.PrioritySkills = nonNilStrings(p.PrioritySkills)
	p.Certifications = nonNilStrings(p.Certifications)
	p.ExperienceBuilding = nonNilStrings(p.ExperienceBuilding)
	return p
}

func normalizeProgression(p domain.CareerProgression) domain.CareerProgression {
	p.NextRoles = nonNilStrings(p.NextRoles)
	return p
}
