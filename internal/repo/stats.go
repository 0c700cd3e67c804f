// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// statsModels maps a list kind to the model whose table it aggregates.
var statsModels = map[string]any{
	"careers":        &domain.Career{},
	"skills":         &domain.Skill{},
	"resumes":        &domain.Resume{},
	"jobs":           &domain.Job{},
	"learning-paths": &domain.LearningPath{},
	"chats":          &domain.Chat{},
}

// Stats returns aggregate metadata for a user's rows of the given kind: the
// total number of rows and the maximum UpdatedAt timestamp among them. When
// the user has no rows, count is 0 and maxUpdatedAt is nil.
//
// Deleting a row lowers the count, so the pair changes on every create,
// update and delete.
func Stats(ctx context.Context, db *gorm.DB, kind string, userID uint) (count int64, maxUpdatedAt *time.Time, err error) {
	model, ok := statsModels[kind]
	if !ok {
		return 0, nil, fmt.Errorf("repo: unknown stats kind %q", kind)
	}
	q := db.WithContext(ctx).Model(model).Where("user_id = ?", userID)

	// Count
	if err = q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Session(&gorm.Session{}).Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
