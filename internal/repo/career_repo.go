package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateCareer inserts a career recommendation.
func CreateCareer(ctx context.Context, db *gorm.DB, c *domain.Career) (*domain.Career, error) {
	return create(ctx, db, c)
}

// GetCareer fetches a career by id, or ErrNotFound.
func GetCareer(ctx context.Context, db *gorm.DB, id uint) (*domain.Career, error) {
	return getByID[domain.Career](ctx, db, id)
}

// ListCareersByUser returns the user's careers in insertion order.
func ListCareersByUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Career, error) {
	return listByUser[domain.Career](ctx, db, userID)
}

// UpdateCareer shallow-merges fields onto the career.
func UpdateCareer(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Career, error) {
	return updateByID[domain.Career](ctx, db, id, fields)
}
