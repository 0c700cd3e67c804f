// Package services implements the career-coaching business logic: accounts,
// AI career recommendations, skills and gap analysis, job matches, learning
// paths, resumes, coaching chats and the stateless advisor tools.
//
// This file centralizes service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"
	"fmt"

	"github.com/tbourn/go-career-backend/internal/repo"
)

var (
	// ErrNotFound indicates that the requested record does not exist or is
	// not accessible to the current user.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned by Register and UpdateProfile when the
	// username belongs to another account.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned by Register and UpdateProfile when the email
	// belongs to another account.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned by Login for an unknown user or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPremiumRequired is returned when a non-premium user asks for the
	// enhanced chat mode.
	ErrPremiumRequired = errors.New("enhanced mode requires a premium account")

	// ErrSkillNotOwned is returned when a learning path references a skill
	// the caller does not own.
	ErrSkillNotOwned = errors.New("skill not found for this user")

	// ErrUpstream wraps failures of the AI provider.
	ErrUpstream = errors.New("upstream service failed")
)

// upstream wraps an AI error so callers can match ErrUpstream while the
// original cause stays available to errors.Is.
func upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}

// notFound maps a store miss to ErrNotFound and wraps other store errors.
func notFound(op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
