// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver) and schema migrations.
package repo

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-career-backend/internal/domain"
)

// OpenOptions tunes OpenSQLite.
type OpenOptions struct {
	// Tracing installs the GORM OpenTelemetry plugin so queries become spans.
	Tracing bool
	// LogLevel is the GORM logger level; zero means Silent.
	LogLevel logger.LogLevel
}

// IsMemoryDSN reports whether dsn names an in-memory SQLite database.
func IsMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
//
// In-memory databases live only as long as one connection stays open, so
// they get a single never-recycled connection. That also serializes writers,
// which keeps id assignment and Batch transactions race-free.
func OpenSQLite(path string, opts ...OpenOptions) (*gorm.DB, error) {
	var o OpenOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.LogLevel == 0 {
		o.LogLevel = logger.Silent
	}

	memory := IsMemoryDSN(path)
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if !memory && !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, err
	}
	if o.Tracing {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return nil, err
		}
	}

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		if memory {
			sqlDB.SetMaxOpenConns(1)
			sqlDB.SetMaxIdleConns(1)
			sqlDB.SetConnMaxIdleTime(0)
			sqlDB.SetConnMaxLifetime(0)
		} else {
			sqlDB.SetMaxOpenConns(10)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxIdleTime(5 * time.Minute)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
		}
	}

	// PRAGMAs
	if !memory {
		db.Exec("PRAGMA journal_mode=WAL;")
		db.Exec("PRAGMA synchronous=NORMAL;")
	}
	db.Exec("PRAGMA busy_timeout=5000;")

	return db, nil
}

// AutoMigrate creates or updates the tables for every entity kind.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Career{},
		&domain.Skill{},
		&domain.Resume{},
		&domain.Job{},
		&domain.LearningPath{},
		&domain.Chat{},
		&domain.Idempotency{},
	)
}
