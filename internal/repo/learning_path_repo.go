package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateLearningPath inserts a learning path. SkillID is not checked here.
func CreateLearningPath(ctx context.Context, db *gorm.DB, p *domain.LearningPath) (*domain.LearningPath, error) {
	return create(ctx, db, p)
}

// GetLearningPath fetches a learning path by id, or ErrNotFound.
func GetLearningPath(ctx context.Context, db *gorm.DB, id uint) (*domain.LearningPath, error) {
	return getByID[domain.LearningPath](ctx, db, id)
}

// ListLearningPathsByUser returns the user's learning paths in insertion order.
func ListLearningPathsByUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.LearningPath, error) {
	return listByUser[domain.LearningPath](ctx, db, userID)
}

// CountLearningPathsByUser returns the number of paths owned by userID.
func CountLearningPathsByUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	return countByUser[domain.LearningPath](ctx, db, userID)
}

// UpdateLearningPath shallow-merges fields onto the learning path.
func UpdateLearningPath(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.LearningPath, error) {
	return updateByID[domain.LearningPath](ctx, db, id, fields)
}
