package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/repo"
)

// CacheSweeper evicts expired cache entries and reports how many it removed.
type CacheSweeper interface {
	Sweep() int
}

// Maintenance runs the periodic cleanup jobs.
type Maintenance struct {
	DB     *gorm.DB
	Caches []CacheSweeper
}

// Sweep deletes expired idempotency records and evicts expired cache entries.
func (m *Maintenance) Sweep(ctx context.Context) error {
	n, err := repo.DeleteExpiredIdempotency(ctx, m.DB, time.Now().UTC())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("idempotency sweep failed")
		return err
	}
	evicted := 0
	for _, c := range m.Caches {
		evicted += c.Sweep()
	}
	log.Ctx(ctx).Debug().
		Int64("idempotency_deleted", n).
		Int("cache_evicted", evicted).
		Msg("maintenance sweep")
	return nil
}
