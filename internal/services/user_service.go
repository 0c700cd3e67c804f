// Package services – UserService
//
// This file implements account registration, login and profile updates.
// Username and email uniqueness is checked before insert; the unique indexes
// in the store turn a lost race into the same error.
package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/auth"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// DevUsername is the account used by the developer bypass.
const DevUsername = "developer"

// RegisterInput carries a new account.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	Skills         []string
	Interests      []string
	EducationLevel string
	Experience     string
	TargetCareer   string
}

// ProfilePatch lists the profile fields to change; nil fields are kept.
type ProfilePatch struct {
	Username        *string
	Email           *string
	Skills          *[]string
	Interests       *[]string
	EducationLevel  *string
	Experience      *string
	TargetCareer    *string
	ProfileComplete *bool
}

func (p ProfilePatch) fields() map[string]any {
	f := map[string]any{}
	if p.Username != nil {
		f["username"] = strings.TrimSpace(*p.Username)
	}
	if p.Email != nil {
		f["email"] = strings.TrimSpace(*p.Email)
	}
	if p.Skills != nil {
		f["skills"] = datatypes.JSONSlice[string](nonNilStrings(*p.Skills))
	}
	if p.Interests != nil {
		f["interests"] = datatypes.JSONSlice[string](nonNilStrings(*p.Interests))
	}
	if p.EducationLevel != nil {
		f["education_level"] = *p.EducationLevel
	}
	if p.Experience != nil {
		f["experience"] = *p.Experience
	}
	if p.TargetCareer != nil {
		f["target_career"] = *p.TargetCareer
	}
	if p.ProfileComplete != nil {
		f["profile_complete"] = *p.ProfileComplete
	}
	return f
}

// UserService manages accounts.
type UserService struct {
	DB *gorm.DB
}

// Register creates an account. A username or email already in use yields
// ErrUsernameTaken or ErrEmailTaken and creates nothing.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.checkAvailable(ctx, 0, &in.Username, &in.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := repo.CreateUser(ctx, s.DB, &domain.User{
		Username:       in.Username,
		Email:          in.Email,
		PasswordHash:   hash,
		Skills:         nonNilStrings(in.Skills),
		Interests:      nonNilStrings(in.Interests),
		EducationLevel: in.EducationLevel,
		Experience:     in.Experience,
		TargetCareer:   in.TargetCareer,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, s.duplicateCause(ctx, in.Username)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	span.SetAttributes(attribute.Int("user.id", int(u.ID)))
	return u, nil
}

// Login verifies credentials. The identifier may be a username or an email.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "Login")
	defer span.End()

	identifier = strings.TrimSpace(identifier)
	u, err := repo.GetUserByUsername(ctx, s.DB, identifier)
	if errors.Is(err, repo.ErrNotFound) && strings.Contains(identifier, "@") {
		u, err = repo.GetUserByEmail(ctx, s.DB, identifier)
	}
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, id)
	if err != nil {
		return nil, notFound("get user", err)
	}
	return u, nil
}

// UpdateProfile shallow-merges p onto the user's profile. Changing the
// username or email re-checks uniqueness against other accounts.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, p ProfilePatch) (*domain.User, error) {
	tr := otel.Tracer("services/UserService")
	ctx, span := tr.Start(ctx, "UpdateProfile",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	if p.Username != nil || p.Email != nil {
		if err := s.checkAvailable(ctx, id, p.Username, p.Email); err != nil {
			return nil, err
		}
	}
	u, err := repo.UpdateUser(ctx, s.DB, id, p.fields())
	if errors.Is(err, repo.ErrDuplicate) {
		name := ""
		if p.Username != nil {
			name = *p.Username
		}
		return nil, s.duplicateCause(ctx, name)
	}
	if err != nil {
		return nil, notFound("update user", err)
	}
	return u, nil
}

// EnsureDevUser returns the developer account, creating it as a premium user
// on first use.
func (s *UserService) EnsureDevUser(ctx context.Context) (*domain.User, error) {
	u, err := repo.GetUserByUsername(ctx, s.DB, DevUsername)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(hex.EncodeToString(buf))
	if err != nil {
		return nil, err
	}
	u, err = repo.CreateUser(ctx, s.DB, &domain.User{
		Username:        DevUsername,
		Email:           "developer@localhost",
		PasswordHash:    hash,
		Skills:          []string{},
		Interests:       []string{},
		ProfileComplete: true,
		IsPremium:       true,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		// created concurrently
		return repo.GetUserByUsername(ctx, s.DB, DevUsername)
	}
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Uint("user_id", u.ID).Msg("developer account created")
	return u, nil
}

// checkAvailable reports whether username and email (when non-nil) are free
// for the account self (0 for a new account). DevUsername, in any case, is
// reserved for the developer account itself.
func (s *UserService) checkAvailable(ctx context.Context, self uint, username, email *string) error {
	if username != nil {
		name := *username
		if strings.EqualFold(strings.TrimSpace(name), DevUsername) {
			name = DevUsername
		}
		u, err := repo.GetUserByUsername(ctx, s.DB, name)
		if err == nil && u.ID != self {
			return ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		if name == DevUsername && err != nil {
			return ErrUsernameTaken
		}
	}
	if email != nil {
		u, err := repo.GetUserByEmail(ctx, s.DB, *email)
		if err == nil && u.ID != self {
			return ErrEmailTaken
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}
	}
	return nil
}

// duplicateCause decides which unique index a lost insert race hit.
func (s *UserService) duplicateCause(ctx context.Context, username string) error {
	if username != "" {
		if _, err := repo.GetUserByUsername(ctx, s.DB, username); err == nil {
			return ErrUsernameTaken
		}
	}
	return ErrEmailTaken
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
