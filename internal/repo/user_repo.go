// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// Uniqueness of username and email is checked by the service before insert;
// the unique indexes back that check, so a lost race surfaces here as
// ErrDuplicate instead of a second row.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// CreateUser inserts u and returns it with ID and CreatedAt populated.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) (*domain.User, error) {
	out, err := create(ctx, db, u)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	return out, err
}

// GetUser fetches a user by id, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, id uint) (*domain.User, error) {
	return getByID[domain.User](ctx, db, id)
}

// GetUserByUsername fetches a user by exact username, or ErrNotFound.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return firstUserWhere(ctx, db, "username = ?", strings.TrimSpace(username))
}

// GetUserByEmail fetches a user by email (case-insensitive), or ErrNotFound.
func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	return firstUserWhere(ctx, db, "email_fold = ?", domain.Fold(email))
}

// UpdateUser shallow-merges fields onto the user. Renames that collide with
// another account return ErrDuplicate.
func UpdateUser(ctx context.Context, db *gorm.DB, id uint, fields map[string]any) (*domain.User, error) {
	out, err := updateByID[domain.User](ctx, db, id, withFold(fields, "email", "email_fold"))
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	return out, err
}

// CountUsers returns the number of user rows.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}

func firstUserWhere(ctx context.Context, db *gorm.DB, cond string, arg any) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Where(cond, arg).Order("id asc").First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

