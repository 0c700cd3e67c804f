package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// Generic helpers shared by the per-kind repositories. Every entity kind has
// an autoincrement uint primary key and a user_id owner column except User.

func create[T any](ctx context.Context, db *gorm.DB, rec *T) (*T, error) {
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// getByID returns ErrNotFound when id is absent.
func getByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// listByUser returns the user's rows in insertion (ascending id) order.
// The result is never nil.
func listByUser[T any](ctx context.Context, db *gorm.DB, userID uint, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	out := make([]T, 0)
	err := db.WithContext(ctx).
		Scopes(scopes...).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// updateByID shallow-merges fields (keyed by column or field name) onto the
// row. A missing id yields ErrNotFound and writes nothing. Nested JSON
// columns are replaced whole.
func updateByID[T any](ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*T, error) {
	var rec T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&rec).Omit("id", "created_at", "user_id").Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&rec, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func countByUser[T any](ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(T)).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// withFold copies fields and, when src is being written, adds its folded
// form under dst. Map updates bypass the models' BeforeSave hooks.
func withFold(fields map[string]any, src, dst string) map[string]any {
	v, ok := fields[src].(string)
	if !ok {
		return fields
	}
	out := make(map[string]any, len(fields)+1)
	for k, f := range fields {
		out[k] = f
	}
	out[dst] = domain.Fold(v)
	return out
}
