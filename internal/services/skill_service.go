// Package services – SkillService
//
// This file implements skill CRUD and the AI skill-gap analysis. The gap
// analysis persists every missing skill and every recommended course inside
// one batch: either all of them are stored or none are.
//
// Observability: AnalyzeGap is OpenTelemetry-instrumented; the span records
// the number of skills and learning paths persisted.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/extract"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// Skill categories written by the service.
const (
	CategoryGeneral = "general"
	CategoryGap     = "gap"
)

// SkillInput carries a new skill.
type SkillInput struct {
	SkillName   string
	Category    string
	Proficiency *int
	IsMissing   bool
}

// SkillPatch lists the skill fields to change; nil fields are kept.
type SkillPatch struct {
	SkillName   *string
	Category    *string
	Proficiency *int
	IsMissing   *bool
}

func (p SkillPatch) fields() map[string]any {
	f := map[string]any{}
	if p.SkillName != nil {
		f["skill_name"] = strings.TrimSpace(*p.SkillName)
	}
	if p.Category != nil {
		f["category"] = *p.Category
	}
	if p.Proficiency != nil {
		f["proficiency"] = *p.Proficiency
	}
	if p.IsMissing != nil {
		f["is_missing"] = *p.IsMissing
	}
	return f
}

// GapInput is the subject of a skill-gap analysis.
type GapInput struct {
	CurrentSkills []string
	TargetCareer  string
}

// GapResult is the analysis plus the records it created.
type GapResult struct {
	Analysis      extract.GapAnalysis   `json:"analysis"`
	Skills        []domain.Skill        `json:"skills"`
	LearningPaths []domain.LearningPath `json:"learningPaths"`
}

// SkillService manages skills and runs gap analyses.
type SkillService struct {
	DB        *gorm.DB
	AI        ai.Completer
	Extractor extract.Extractor
}

func (s *SkillService) extractor() extract.Extractor {
	if s.Extractor == nil {
		return extract.Default{}
	}
	return s.Extractor
}

// Create stores a skill for userID.
func (s *SkillService) Create(ctx context.Context, userID uint, in SkillInput) (*domain.Skill, error) {
	cat := strings.TrimSpace(in.Category)
	if cat == "" {
		cat = CategoryGeneral
	}
	sk, err := repo.CreateSkill(ctx, s.DB, &domain.Skill{
		UserID:      userID,
		SkillName:   strings.TrimSpace(in.SkillName),
		Category:    cat,
		Proficiency: in.Proficiency,
		IsMissing:   in.IsMissing,
	})
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return sk, nil
}

// List returns the user's skills in creation order.
func (s *SkillService) List(ctx context.Context, userID uint) ([]domain.Skill, error) {
	return repo.ListSkillsByUser(ctx, s.DB, userID)
}

// Get returns one of the user's skills.
func (s *SkillService) Get(ctx context.Context, userID, id uint) (*domain.Skill, error) {
	sk, err := repo.GetSkill(ctx, s.DB, id)
	if err != nil {
		return nil, notFound("get skill", err)
	}
	if sk.UserID != userID {
		return nil, ErrNotFound
	}
	return sk, nil
}

// Update shallow-merges p onto one of the user's skills.
func (s *SkillService) Update(ctx context.Context, userID, id uint, p SkillPatch) (*domain.Skill, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	sk, err := repo.UpdateSkill(ctx, s.DB, id, p.fields())
	if err != nil {
		return nil, notFound("update skill", err)
	}
	return sk, nil
}

// Delete removes one of the user's skills. Learning paths that reference it
// are left in place.
func (s *SkillService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	ok, err := repo.DeleteSkill(ctx, s.DB, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// AnalyzeGap asks the AI what userID lacks for the target career, then stores
// each missing skill as a new skill with IsMissing set (no dedupe) and each
// recommended course as a learning path. A course's backing skill is the
// user's existing skill with the same name ignoring case, or a new missing
// skill. Nothing is stored when the AI call or any insert fails.
func (s *SkillService) AnalyzeGap(ctx context.Context, userID uint, in GapInput) (*GapResult, error) {
	tr := otel.Tracer("services/SkillService")
	ctx, span := tr.Start(ctx, "AnalyzeGap",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("target_career", in.TargetCareer),
		),
	)
	defer span.End()

	in.TargetCareer = strings.TrimSpace(in.TargetCareer)
	text, err := s.AI.Complete(ctx, ai.Request{
		Purpose: "skill_gap",
		System:  systemSkillGap,
		Prompt:  skillGapPrompt(in),
		JSON:    true,
	})
	if err != nil {
		span.RecordError(err)
		return nil, upstream("analyze skill gap", err)
	}

	analysis := s.extractor().GapAnalysis(text, in.TargetCareer, in.CurrentSkills)
	analysis.ReadinessScore = extract.ClampScore(analysis.ReadinessScore)

	res := &GapResult{
		Analysis:      analysis,
		Skills:        []domain.Skill{},
		LearningPaths: []domain.LearningPath{},
	}
	err = repo.Batch(ctx, s.DB, func(tx *gorm.DB) error {
		for _, name := range analysis.MissingSkills {
			sk, err := repo.CreateSkill(ctx, tx, &domain.Skill{
				UserID:    userID,
				SkillName: name,
				Category:  CategoryGap,
				IsMissing: true,
			})
			if err != nil {
				return err
			}
			res.Skills = append(res.Skills, *sk)
		}

		for _, c := range analysis.Courses {
			name := c.SkillName
			if name == "" {
				name = c.CourseTitle
			}
			sk, created, err := findOrCreateSkill(ctx, tx, userID, name)
			if err != nil {
				return err
			}
			if created {
				res.Skills = append(res.Skills, *sk)
			}
			lp, err := repo.CreateLearningPath(ctx, tx, &domain.LearningPath{
				UserID:      userID,
				SkillID:     sk.ID,
				CourseTitle: c.CourseTitle,
				Platform:    c.Platform,
				Cost:        c.Cost,
				Duration:    c.Duration,
				URL:         c.URL,
				Status:      domain.PathNotStarted,
			})
			if err != nil {
				return err
			}
			res.LearningPaths = append(res.LearningPaths, *lp)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("store gap analysis: %w", err)
	}

	span.SetAttributes(
		attribute.Int("skills.created", len(res.Skills)),
		attribute.Int("learning_paths.created", len(res.LearningPaths)),
	)
	log.Ctx(ctx).Info().
		Uint("user_id", userID).
		Int("skills", len(res.Skills)).
		Int("learning_paths", len(res.LearningPaths)).
		Msg("skill gap persisted")
	return res, nil
}

// findOrCreateSkill returns the user's skill named name (ignoring case),
// creating a missing-skill row when none exists.
func findOrCreateSkill(ctx context.Context, db *gorm.DB, userID uint, name string) (*domain.Skill, bool, error) {
	sk, err := repo.FindSkillByName(ctx, db, userID, name)
	if err == nil {
		return sk, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}
	sk, err = repo.CreateSkill(ctx, db, &domain.Skill{
		UserID:    userID,
		SkillName: strings.TrimSpace(name),
		Category:  CategoryGap,
		IsMissing: true,
	})
	if err != nil {
		return nil, false, err
	}
	return sk, true, nil
}
