// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Skill model.
//
// Skill is the only kind that is ever physically deleted. Deleting does not
// cascade: learning paths keep their skill_id.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateSkill inserts a skill row. Duplicate names per user are allowed.
func CreateSkill(ctx context.Context, db *gorm.DB, s *domain.Skill) (*domain.Skill, error) {
	return create(ctx, db, s)
}

// GetSkill fetches a skill by id, or ErrNotFound.
func GetSkill(ctx context.Context, db *gorm.DB, id uint) (*domain.Skill, error) {
	return getByID[domain.Skill](ctx, db, id)
}

// ListSkillsByUser returns the user's skills in insertion order.
func ListSkillsByUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Skill, error) {
	return listByUser[domain.Skill](ctx, db, userID)
}

// CountSkillsByUser returns the number of skills owned by userID.
func CountSkillsByUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	return countByUser[domain.Skill](ctx, db, userID)
}

// FindSkillByName returns the user's earliest skill whose name equals name
// ignoring case, or ErrNotFound.
func FindSkillByName(ctx context.Context, db *gorm.DB, userID uint, name string) (*domain.Skill, error) {
	var s domain.Skill
	err := db.WithContext(ctx).
		Where("user_id = ? AND name_fold = ?", userID, domain.Fold(name)).
		Order("id asc").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSkill shallow-merges fields onto the skill.
func UpdateSkill(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Skill, error) {
	return updateByID[domain.Skill](ctx, db, id, withFold(fields, "skill_name", "name_fold"))
}

// DeleteSkill removes the skill and reports whether it existed.
func DeleteSkill(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	res := db.WithContext(ctx).Delete(&domain.Skill{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
