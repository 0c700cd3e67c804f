// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// sessions, CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/go-career-backend/docs" // registers the OpenAPI document
	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/auth"
	"github.com/tbourn/go-career-backend/internal/config"
	"github.com/tbourn/go-career-backend/internal/http/handlers"
	"github.com/tbourn/go-career-backend/internal/http/middleware"
	"github.com/tbourn/go-career-backend/internal/market"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/services"
)

// aiRequestCost is the rate-limit token cost of a route that calls the AI.
const aiRequestCost = 3

// aiRoutes are the routes whose handlers call the AI provider.
var aiRoutes = []string{
	"POST /careers/generate",
	"POST /skills/analyze-gap",
	"POST /jobs/match",
	"POST /resumes/:id/optimize",
	"POST /chats",
	"POST /chats/:id/message",
	"POST /business-ideas/evaluate",
	"POST /generate-content",
}

// Deps are the process-wide collaborators the routes are built from.
type Deps struct {
	DB       *gorm.DB
	AI       ai.Completer
	Market   market.Provider
	Sessions *auth.Sessions
}

// idempotencyStore persists replayable responses through the repo package.
type idempotencyStore struct{ db *gorm.DB }

func (s idempotencyStore) Lookup(ctx context.Context, userID uint, scope, key string, now time.Time) (*middleware.StoredResponse, error) {
	rec, err := repo.GetIdempotency(ctx, s.db, userID, scope, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &middleware.StoredResponse{Status: rec.Status, Body: rec.Body}, nil
}

func (s idempotencyStore) Save(ctx context.Context, userID uint, scope, key string, resp middleware.StoredResponse, ttl time.Duration) error {
	_, err := repo.CreateIdempotency(ctx, s.db, userID, scope, key, resp.Status, resp.Body, ttl)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter and gzip
//  6. Metrics
//  7. Session: resolve the caller from cookie or bearer token
//  8. Idempotency (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per user/IP, bypass on replay)
//  10. CORS and Security headers
func RegisterRoutes(r *gin.Engine, deps Deps, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	db := deps.DB

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB) and response compression
	r.Use(limitBody(1 << 20))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics("/metrics"))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Sessions
	users := &services.UserService{DB: db}
	r.Use(middleware.Session(middleware.SessionOptions{
		Tokens:  deps.Sessions,
		DevMode: cfg.DevMode,
		DevUser: func(ctx context.Context) (uint, error) {
			u, err := users.EnsureDevUser(ctx)
			if err != nil {
				return 0, err
			}
			return u.ID, nil
		},
	}))

	// 8) Idempotent POST replay
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{
		MaxLen: 200,
		TTL:    cfg.IdempotencyTTL,
	}, idempotencyStore{db: db}))

	// 9) Token-bucket rate limiter per user/IP; AI-backed routes cost more
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP()).
		WithCost(middleware.CostByRoute(aiRequestCost, prefixed(cfg.APIBasePath, aiRoutes)...))
	r.Use(rl.Handler())

	// 10) CORS posture
	r.Use(corsMiddleware(cfg.CORS))

	base := strings.TrimRight(cfg.APIBasePath, "/")
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:      cfg.Security.EnableHSTS,
		HSTSMaxAge:      cfg.Security.HSTSMaxAge,
		NoStorePrefixes: []string{base + "/auth", base + "/user"},
		DocsPrefix:      "/swagger",
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			middleware.LoggerFrom(c).Error().Err(err).Msg("health: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/ai/market
	h := handlers.New(handlers.Deps{
		Users:    users,
		Careers:  &services.CareerService{DB: db, AI: deps.AI},
		Skills:   &services.SkillService{DB: db, AI: deps.AI},
		Jobs:     &services.JobService{DB: db, AI: deps.AI},
		Paths:    &services.LearningPathService{DB: db},
		Resumes:  &services.ResumeService{DB: db, AI: deps.AI},
		Chats:    services.NewChatService(db, deps.AI),
		Advisor:  &services.AdvisorService{AI: deps.AI},
		Content:  &services.ContentService{AI: deps.AI},
		Market:   deps.Market,
		Sessions: deps.Sessions,
		Stats: func(ctx context.Context, kind string, uid uint) (int64, *time.Time, error) {
			return repo.Stats(ctx, db, kind, uid)
		},
		SecureCookie: cfg.Session.Secure,
	})

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Accounts
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)

		// Anonymous tools
		api.POST("/generate-content", h.GenerateContent)
		api.GET("/market-trends/stocks", h.StockQuote)
		api.GET("/market-trends/search", h.SearchSymbols)
	}

	p := api.Group("", middleware.RequireAuth())
	{
		p.GET("/auth/user", h.CurrentUser)
		p.PATCH("/user", h.UpdateProfile)

		// Careers
		p.POST("/careers/generate", h.GenerateCareers)
		p.GET("/careers", h.ListCareers)

		// Skills
		p.POST("/skills", h.CreateSkill)
		p.GET("/skills", h.ListSkills)
		p.POST("/skills/analyze-gap", h.AnalyzeGap)
		p.GET("/skills/:id", h.GetSkill)
		p.PATCH("/skills/:id", h.UpdateSkill)
		p.DELETE("/skills/:id", h.DeleteSkill)

		// Jobs
		p.POST("/jobs/match", h.MatchJobs)
		p.GET("/jobs", h.ListJobs)
		p.GET("/jobs/:id", h.GetJob)
		p.PATCH("/jobs/:id", h.UpdateJob)

		// Learning paths
		p.POST("/learning-paths", h.CreateLearningPath)
		p.GET("/learning-paths", h.ListLearningPaths)
		p.GET("/learning-paths/:id", h.GetLearningPath)
		p.PATCH("/learning-paths/:id", h.UpdateLearningPath)

		// Resumes
		p.POST("/resumes", h.CreateResume)
		p.GET("/resumes", h.ListResumes)
		p.GET("/resumes/:id", h.GetResume)
		p.PATCH("/resumes/:id", h.UpdateResume)
		p.POST("/resumes/:id/optimize", h.OptimizeResume)

		// Chats
		p.POST("/chats", h.CreateChat)
		p.GET("/chats", h.ListChats)
		p.GET("/chats/:id", h.GetChat)
		p.POST("/chats/:id/message", h.PostMessage)

		// Advisor
		p.POST("/business-ideas/evaluate", h.EvaluateBusinessIdea)
	}
}

// corsMiddleware allows any origin without credentials when no allowlist is
// configured; with an allowlist, listed origins may send the session cookie.
func corsMiddleware(cc config.CORSConfig) gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match", middleware.HeaderIdempotencyKey},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length", "ETag", middleware.HeaderIdempotencyReplayed},
		MaxAge:        12 * time.Hour,
	}
	if len(cc.AllowedOrigins) == 0 {
		base.AllowAllOrigins = true // credentials must stay off
		inner := cors.New(base)
		// Force ACAO: * even for requests without an Origin header.
		return func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			inner(c)
		}
	}
	base.AllowOrigins = cc.AllowedOrigins
	base.AllowCredentials = true
	return cors.New(base)
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// prefixed joins the API base path onto each "METHOD /path" route.
func prefixed(base string, routes []string) []string {
	base = strings.TrimRight(base, "/")
	out := make([]string, len(routes))
	for i, r := range routes {
		method, path, _ := strings.Cut(r, " ")
		out[i] = method + " " + base + path
	}
	return out
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
