package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound so callers can use either.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates a unique-constraint violation.
var ErrDuplicate = errors.New("duplicate")

// Store owns the database handle for the process. It is built once at
// startup and handed to services; tests build one per test.
type Store struct {
	DB *gorm.DB
}

// Open opens the database at dsn, applies migrations and returns the Store.
func Open(dsn string, opts ...OpenOptions) (*Store, error) {
	db, err := OpenSQLite(dsn, opts...)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Batch runs fn inside one transaction on s.
func (s *Store) Batch(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return Batch(ctx, s.DB, fn)
}

// Ping verifies the underlying connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool. An in-memory database is discarded.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Batch runs fn inside a transaction: every write fn makes through tx commits
// together, or none do when fn returns an error or panics. fn must use tx
// for all reads and writes.
func Batch(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// isUniqueViolation detects UNIQUE failures; glebarez/sqlite often returns
// plain-text errors instead of gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique")
}
