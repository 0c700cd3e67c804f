package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateResume inserts a resume.
func CreateResume(ctx context.Context, db *gorm.DB, r *domain.Resume) (*domain.Resume, error) {
	return create(ctx, db, r)
}

// GetResume fetches a resume by id, or ErrNotFound.
func GetResume(ctx context.Context, db *gorm.DB, id uint) (*domain.Resume, error) {
	return getByID[domain.Resume](ctx, db, id)
}

// ListResumesByUser returns the user's resumes in insertion order.
func ListResumesByUser(ctx context.Context, db *gorm.DB, userID uint) ([]domain.Resume, error) {
	return listByUser[domain.Resume](ctx, db, userID)
}

// UpdateResume shallow-merges fields onto the resume.
func UpdateResume(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Resume, error) {
	return updateByID[domain.Resume](ctx, db, id, fields)
}
