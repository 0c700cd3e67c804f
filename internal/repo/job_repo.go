package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateJob inserts a job match.
func CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) (*domain.Job, error) {
	return create(ctx, db, j)
}

// GetJob fetches a job by id, or ErrNotFound.
func GetJob(ctx context.Context, db *gorm.DB, id uint) (*domain.Job, error) {
	return getByID[domain.Job](ctx, db, id)
}

// ListJobsByUser returns the user's jobs in insertion order. A non-nil saved
// restricts the result to jobs whose is_saved equals *saved.
func ListJobsByUser(ctx context.Context, db *gorm.DB, userID uint, saved *bool) ([]domain.Job, error) {
	if saved == nil {
		return listByUser[domain.Job](ctx, db, userID)
	}
	return listByUser[domain.Job](ctx, db, userID, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_saved = ?", *saved)
	})
}

// UpdateJob shallow-merges fields onto the job.
func UpdateJob(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.Job, error) {
	return updateByID[domain.Job](ctx, db, id, fields)
}
