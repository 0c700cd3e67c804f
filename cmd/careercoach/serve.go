package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-career-backend/internal/ai"
	"github.com/tbourn/go-career-backend/internal/auth"
	"github.com/tbourn/go-career-backend/internal/config"
	httpapi "github.com/tbourn/go-career-backend/internal/http"
	"github.com/tbourn/go-career-backend/internal/market"
	"github.com/tbourn/go-career-backend/internal/observability"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/services"
	"github.com/tbourn/go-career-backend/internal/sysutil"
)

const (
	sweepSchedule   = "@every 5m"
	shutdownTimeout = 15 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		sysutil.ConfigureLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired idempotency records once and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		sysutil.ConfigureLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty)

		st, err := repo.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		m := &services.Maintenance{DB: st.DB}
		return m.Sweep(cmd.Context())
	},
}

func serve(ctx context.Context, cfg config.Config) error {
	shutdownTracing, err := observability.SetupOTel(ctx, cfg.OTEL, observability.ServiceInfo{
		Name:        cfg.OTEL.ServiceName,
		Version:     version,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	st, err := repo.Open(cfg.DBPath, repo.OpenOptions{Tracing: cfg.OTEL.Enabled})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("store close")
		}
	}()

	completer := ai.New(cfg.AI, nil)
	if !completer.Configured() {
		log.Warn().Msg("OPENAI_API_KEY not set; AI features answer with upstream errors")
	}
	stocks := market.New(cfg.Market, nil)

	maint := &services.Maintenance{DB: st.DB, Caches: []services.CacheSweeper{stocks}}
	sched := cron.New()
	if _, err := sched.AddFunc(sweepSchedule, func() {
		_ = maint.Sweep(ctx)
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, httpapi.Deps{
		DB:       st.DB,
		AI:       completer,
		Market:   stocks,
		Sessions: auth.NewSessions(cfg.Session.Secret, cfg.Session.TTL),
	}, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.AppEnv).
			Str("version", version).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
