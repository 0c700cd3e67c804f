// Package services – LearningPathService
//
// This file implements learning-path CRUD. A path must point at a skill the
// caller owns; creating by skill name reuses the user's skill with that name
// (ignoring case) or creates it.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// LearningPathInput carries a new learning path. SkillID wins over SkillName.
type LearningPathInput struct {
	SkillID     uint
	SkillName   string
	CourseTitle string
	Platform    string
	Cost        string
	Duration    string
	URL         string
	Status      string
}

// LearningPathPatch lists the fields to change; nil fields are kept.
type LearningPathPatch struct {
	CourseTitle *string
	Platform    *string
	Cost        *string
	Duration    *string
	URL         *string
	Status      *string
}

func (p LearningPathPatch) fields() map[string]any {
	f := map[string]any{}
	if p.CourseTitle != nil {
		f["course_title"] = strings.TrimSpace(*p.CourseTitle)
	}
	if p.Platform != nil {
		f["platform"] = *p.Platform
	}
	if p.Cost != nil {
		f["cost"] = *p.Cost
	}
	if p.Duration != nil {
		f["duration"] = *p.Duration
	}
	if p.URL != nil {
		f["url"] = *p.URL
	}
	if p.Status != nil {
		f["status"] = *p.Status
	}
	return f
}

// LearningPathService manages learning paths.
type LearningPathService struct {
	DB *gorm.DB
}

// Create stores a learning path for userID.
func (s *LearningPathService) Create(ctx context.Context, userID uint, in LearningPathInput) (*domain.LearningPath, error) {
	status := in.Status
	if status == "" {
		status = domain.PathNotStarted
	}

	var out *domain.LearningPath
	err := repo.Batch(ctx, s.DB, func(tx *gorm.DB) error {
		skillID := in.SkillID
		switch {
		case skillID != 0:
			sk, err := repo.GetSkill(ctx, tx, skillID)
			if errors.Is(err, repo.ErrNotFound) || (err == nil && sk.UserID != userID) {
				return ErrSkillNotOwned
			}
			if err != nil {
				return err
			}
		case strings.TrimSpace(in.SkillName) != "":
			sk, _, err := findOrCreateSkill(ctx, tx, userID, in.SkillName)
			if err != nil {
				return err
			}
			skillID = sk.ID
		default:
			return ErrSkillNotOwned
		}

		lp, err := repo.CreateLearningPath(ctx, tx, &domain.LearningPath{
			UserID:      userID,
			SkillID:     skillID,
			CourseTitle: strings.TrimSpace(in.CourseTitle),
			Platform:    in.Platform,
			Cost:        in.Cost,
			Duration:    in.Duration,
			URL:         in.URL,
			Status:      status,
		})
		out = lp
		return err
	})
	if errors.Is(err, ErrSkillNotOwned) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("create learning path: %w", err)
	}
	return out, nil
}

// List returns the user's learning paths in creation order.
func (s *LearningPathService) List(ctx context.Context, userID uint) ([]domain.LearningPath, error) {
	return repo.ListLearningPathsByUser(ctx, s.DB, userID)
}

// Get returns one of the user's learning paths.
func (s *LearningPathService) Get(ctx context.Context, userID, id uint) (*domain.LearningPath, error) {
	lp, err := repo.GetLearningPath(ctx, s.DB, id)
	if err != nil {
		return nil, notFound("get learning path", err)
	}
	if lp.UserID != userID {
		return nil, ErrNotFound
	}
	return lp, nil
}

// Update applies p to one of the user's learning paths. Any status may
// follow any other.
func (s *LearningPathService) Update(ctx context.Context, userID, id uint, p LearningPathPatch) (*domain.LearningPath, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	lp, err := repo.UpdateLearningPath(ctx, s.DB, id, p.fields())
	if err != nil {
		return nil, notFound("update learning path", err)
	}
	return lp, nil
}
