// Package handlers exposes the REST endpoints of the career-coach API.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/extract"
	"github.com/tbourn/go-career-backend/internal/http/middleware"
	"github.com/tbourn/go-career-backend/internal/market"
	"github.com/tbourn/go-career-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// UserService manages accounts and profiles.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (*domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uint, p services.ProfilePatch) (*domain.User, error)
}

// CareerService generates and lists career recommendations.
type CareerService interface {
	Generate(ctx context.Context, userID uint, in services.CareerInput) ([]domain.Career, error)
	List(ctx context.Context, userID uint) ([]domain.Career, error)
}

// SkillService manages skills and runs gap analyses.
type SkillService interface {
	Create(ctx context.Context, userID uint, in services.SkillInput) (*domain.Skill, error)
	List(ctx context.Context, userID uint) ([]domain.Skill, error)
	Get(ctx context.Context, userID, id uint) (*domain.Skill, error)
	Update(ctx context.Context, userID, id uint, p services.SkillPatch) (*domain.Skill, error)
	Delete(ctx context.Context, userID, id uint) error
	AnalyzeGap(ctx context.Context, userID uint, in services.GapInput) (*services.GapResult, error)
}

// JobService matches and tracks job opportunities.
type JobService interface {
	Match(ctx context.Context, userID uint, in services.MatchInput) ([]domain.Job, error)
	List(ctx context.Context, userID uint, saved *bool) ([]domain.Job, error)
	Get(ctx context.Context, userID, id uint) (*domain.Job, error)
	Update(ctx context.Context, userID, id uint, p services.JobPatch) (*domain.Job, error)
}

// LearningPathService manages course recommendations.
type LearningPathService interface {
	Create(ctx context.Context, userID uint, in services.LearningPathInput) (*domain.LearningPath, error)
	List(ctx context.Context, userID uint) ([]domain.LearningPath, error)
	Get(ctx context.Context, userID, id uint) (*domain.LearningPath, error)
	Update(ctx context.Context, userID, id uint, p services.LearningPathPatch) (*domain.LearningPath, error)
}

// ResumeService manages and optimizes resumes.
type ResumeService interface {
	Create(ctx context.Context, userID uint, in services.ResumeInput) (*domain.Resume, error)
	List(ctx context.Context, userID uint) ([]domain.Resume, error)
	Get(ctx context.Context, userID, id uint) (*domain.Resume, error)
	Update(ctx context.Context, userID, id uint, p services.ResumePatch) (*domain.Resume, error)
	Optimize(ctx context.Context, userID, id uint, in services.OptimizeInput) (*domain.Resume, error)
}

// ChatService manages coaching chats.
type ChatService interface {
	Create(ctx context.Context, userID uint, in services.ChatInput) (*domain.Chat, error)
	List(ctx context.Context, userID uint) ([]domain.Chat, error)
	Get(ctx context.Context, userID, id uint) (*domain.Chat, error)
	PostMessage(ctx context.Context, userID, chatID uint, content, mode string) (*domain.Chat, error)
}

// AdvisorService evaluates business ideas.
type AdvisorService interface {
	EvaluateBusinessIdea(ctx context.Context, userID uint, in services.BusinessIdeaInput) (*extract.BusinessEvaluation, error)
}

// ContentService generates free-form text.
type ContentService interface {
	Generate(ctx context.Context, in services.ContentInput) (string, error)
}

// SessionIssuer mints session tokens.
type SessionIssuer interface {
	Issue(userID uint, username string) (string, error)
	TTL() time.Duration
}

// StatsFunc reports the row count and latest update of a user's rows of kind.
type StatsFunc func(ctx context.Context, kind string, userID uint) (int64, *time.Time, error)

//
// Handler wiring
//

// Deps lists the collaborators of Handlers. Stats may be nil, which
// disables ETags.
type Deps struct {
	Users        UserService
	Careers      CareerService
	Skills       SkillService
	Jobs         JobService
	Paths        LearningPathService
	Resumes      ResumeService
	Chats        ChatService
	Advisor      AdvisorService
	Content      ContentService
	Market       market.Provider
	Sessions     SessionIssuer
	Stats        StatsFunc
	SecureCookie bool
}

// Handlers groups the HTTP endpoints. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	users    UserService
	careers  CareerService
	skills   SkillService
	jobs     JobService
	paths    LearningPathService
	resumes  ResumeService
	chats    ChatService
	advisor  AdvisorService
	content  ContentService
	market   market.Provider
	sessions SessionIssuer
	stats    StatsFunc

	secureCookie bool
}

// New constructs Handlers bound to d and registers the request validators.
func New(d Deps) *Handlers {
	RegisterValidators()
	return &Handlers{
		users:        d.Users,
		careers:      d.Careers,
		skills:       d.Skills,
		jobs:         d.Jobs,
		paths:        d.Paths,
		resumes:      d.Resumes,
		chats:        d.Chats,
		advisor:      d.Advisor,
		content:      d.Content,
		market:       d.Market,
		sessions:     d.Sessions,
		stats:        d.Stats,
		secureCookie: d.SecureCookie,
	}
}

//
// Helpers
//

// userID returns the authenticated user id set by the session middleware.
// Routes calling it sit behind RequireAuth, so 0 only shows up in misrouted
// requests and never matches an owned record.
func userID(c *gin.Context) uint {
	id, _ := middleware.UserID(c)
	return id
}

// idParam parses the ":id" path parameter. It writes a 400 and returns false
// when the value is not a positive integer.
func idParam(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return 0, false
	}
	return uint(n), true
}

// notModified sets a weak ETag for the caller's rows of kind and reports
// whether the client already holds the current list, in which case a 304 has
// been written. variant distinguishes filtered views of the same rows.
func (h *Handlers) notModified(c *gin.Context, kind, variant string, uid uint) bool {
	if h.stats == nil {
		return false
	}
	count, maxTS, err := h.stats(c.Request.Context(), kind, uid)
	if err != nil {
		// Best effort: serve the list without an ETag.
		return false
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.UnixNano()
	}
	tag := kind
	if variant != "" {
		tag += "?" + variant
	}
	etag := fmt.Sprintf(`W/"%s:%d:%d:%d"`, tag, uid, count, ts)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
