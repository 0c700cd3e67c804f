// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes server timeouts,
// logging, storage, rate limiting, sessions, upstream providers (OpenAI,
// Alpha Vantage) and observability.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tbourn/go-career-backend/internal/sysutil"
)

// minSecretLen is the shortest SESSION_SECRET accepted in production.
const minSecretLen = 32

// devSessionSecret signs sessions when no secret is configured outside production.
const devSessionSecret = "dev-only-session-secret-change-me"

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// AIConfig configures the OpenAI completion client.
type AIConfig struct {
	APIKey        string        // OPENAI_API_KEY; empty disables AI features
	BaseURL       string        // OPENAI_BASE_URL; empty uses the SDK default
	Model         string        // OPENAI_MODEL (standard + magic-loops modes)
	EnhancedModel string        // OPENAI_ENHANCED_MODEL (premium chat mode)
	Timeout       time.Duration // AI_TIMEOUT per completion
}

// MarketConfig configures the Alpha Vantage stock-data provider.
type MarketConfig struct {
	APIKey   string        // ALPHA_VANTAGE_API_KEY
	BaseURL  string        // ALPHA_VANTAGE_BASE_URL
	CacheTTL time.Duration // MARKET_CACHE_TTL
	Timeout  time.Duration // MARKET_TIMEOUT
}

// SessionConfig configures signed session tokens.
type SessionConfig struct {
	Secret string        // SESSION_SECRET
	TTL    time.Duration // SESSION_TTL
	Secure bool          // derived: Secure cookie flag (production)
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 90s (AI calls are slow)
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Environment
	AppEnv  string // APP_ENV, falls back to NODE_ENV; "production" hardens defaults
	DevMode bool   // DEV_MODE enables the dev_mode cookie bypass

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// Storage
	DBPath string // SQLite DSN or path; default is a shared in-memory database

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid

	// Upstreams
	AI     AIConfig
	Market MarketConfig

	// Sessions
	Session SessionConfig

	// Observability
	OTEL OTELConfig
}

// IsProduction reports whether the service runs with production hardening.
func (c Config) IsProduction() bool { return c.AppEnv == "production" }

// MustLoad is Load for process start-up: it panics on any error.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the environment, fills defaults and validates the result. A
// variable that is set but malformed is an error, not a silent default. All
// problems are reported together, joined with errors.Join.
func Load() (Config, error) {
	var e env
	cfg := Config{
		Port:              e.str("PORT", "5000"),
		ReadTimeout:       e.dur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: e.dur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      e.dur("WRITE_TIMEOUT", 90*time.Second),
		IdleTimeout:       e.dur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    e.integer("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(e.str("GIN_MODE", "release")),

		AppEnv:  strings.ToLower(strings.TrimSpace(sysutil.FirstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("NODE_ENV"), "development"))),
		DevMode: e.flag("DEV_MODE", false),

		LogLevel:       strings.ToLower(e.str("LOG_LEVEL", "info")),
		LogPretty:      e.flag("LOG_PRETTY", false),
		SwaggerEnabled: e.flag("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(e.str("API_BASE_PATH", "/api")),

		DBPath: e.str("DB_PATH", "file:careercoach?mode=memory&cache=shared"),

		RateRPS:   e.number("RATE_RPS", 5),
		RateBurst: e.integer("RATE_BURST", 10),

		CORS: CORSConfig{AllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS"))},
		Security: SecurityConfig{
			EnableHSTS: e.flag("ENABLE_HSTS", false),
			HSTSMaxAge: e.dur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		IdempotencyTTL: e.dur("IDEMPOTENCY_TTL", 24*time.Hour),

		AI: AIConfig{
			APIKey:        os.Getenv("OPENAI_API_KEY"),
			BaseURL:       os.Getenv("OPENAI_BASE_URL"),
			Model:         e.str("OPENAI_MODEL", "gpt-4o-mini"),
			EnhancedModel: e.str("OPENAI_ENHANCED_MODEL", "gpt-4o"),
			Timeout:       e.dur("AI_TIMEOUT", 60*time.Second),
		},
		Market: MarketConfig{
			APIKey:   os.Getenv("ALPHA_VANTAGE_API_KEY"),
			BaseURL:  e.str("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co/query"),
			CacheTTL: e.dur("MARKET_CACHE_TTL", time.Minute),
			Timeout:  e.dur("MARKET_TIMEOUT", 10*time.Second),
		},

		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
			TTL:    e.dur("SESSION_TTL", 7*24*time.Hour),
		},

		OTEL: OTELConfig{
			Enabled:     e.flag("OTEL_ENABLED", false),
			Endpoint:    e.str("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    e.flag("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: e.str("OTEL_SERVICE_NAME", "go-career-backend"),
			SampleRatio: e.number("OTEL_TRACES_SAMPLER_ARG", 1),
		},
	}

	cfg.normalize()
	return cfg, errors.Join(append(e.errs, cfg.validate()...)...)
}

func (c *Config) normalize() {
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}
	c.Session.Secure = c.IsProduction()
	if c.Session.Secret == "" && !c.IsProduction() {
		c.Session.Secret = devSessionSecret
	}
}

// validate returns one error per violated rule.
func (c *Config) validate() []error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q must be one of: debug, info, warn, error, fatal, panic", c.LogLevel))
	}
	check(strings.TrimSpace(c.Port) != "", "PORT must not be empty")
	check(c.ReadTimeout > 0 && c.ReadHeaderTimeout > 0 && c.WriteTimeout > 0 && c.IdleTimeout > 0,
		"server timeouts must be positive")
	check(c.MaxHeaderBytes > 0, "MAX_HEADER_BYTES must be > 0")
	check(strings.TrimSpace(c.DBPath) != "", "DB_PATH must not be empty")
	check(c.RateRPS >= 0, "RATE_RPS must be >= 0")
	check(c.RateBurst >= 1, "RATE_BURST must be >= 1")
	check(c.Security.HSTSMaxAge >= 0, "HSTS_MAX_AGE must be >= 0")
	check(c.IdempotencyTTL > 0, "IDEMPOTENCY_TTL must be > 0")
	check(c.AI.Timeout > 0, "AI_TIMEOUT must be > 0")
	check(c.Market.Timeout > 0, "MARKET_TIMEOUT must be > 0")
	check(c.Market.CacheTTL >= 0, "MARKET_CACHE_TTL must be >= 0")
	check(c.Session.TTL > 0, "SESSION_TTL must be > 0")
	check(c.OTEL.SampleRatio >= 0 && c.OTEL.SampleRatio <= 1, "OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	if c.IsProduction() {
		check(len(c.Session.Secret) >= minSecretLen,
			fmt.Sprintf("SESSION_SECRET must be at least %d characters in production", minSecretLen))
		check(!c.DevMode, "DEV_MODE must be off in production")
	}
	return errs
}

// env reads typed variables, recording a parse error per malformed value.
// Unset or empty variables take the default.
type env struct {
	errs []error
}

func (e *env) lookup(k string) (string, bool) {
	v, ok := os.LookupEnv(k)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e *env) fail(k, v string, err error) {
	e.errs = append(e.errs, fmt.Errorf("%s=%q: %w", k, v, err))
}

func (e *env) str(k, def string) string {
	if v, ok := e.lookup(k); ok {
		return v
	}
	return def
}

func (e *env) integer(k string, def int) int {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(k, v, err)
		return def
	}
	return n
}

func (e *env) number(k string, def float64) float64 {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(k, v, err)
		return def
	}
	return f
}

func (e *env) dur(k string, def time.Duration) time.Duration {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(k, v, err)
		return def
	}
	return d
}

func (e *env) flag(k string, def bool) bool {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	if sysutil.IsTruthy(v) {
		return true
	}
	switch strings.ToLower(v) {
	case "0", "false", "no", "n", "off":
		return false
	}
	e.fail(k, v, errors.New("not a boolean"))
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeBasePath returns p with one leading slash and no trailing slash;
// empty means "/".
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}
