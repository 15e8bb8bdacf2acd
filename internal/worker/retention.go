package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/confirmly/dashboard-api/internal/repository"
	"github.com/confirmly/dashboard-api/pkg/metrics"
)

// RetentionWorker periodically deletes batches older than the retention
// window. DailyStats survive the sweep by default (trend charts need the
// history); the store decides that policy.
type RetentionWorker struct {
	store         repository.Storage
	retentionDays int
	sweepInterval time.Duration
	logger        zerolog.Logger
	metrics       *metrics.Metrics
}

func NewRetentionWorker(store repository.Storage, retentionDays int, sweepInterval time.Duration, logger zerolog.Logger, m *metrics.Metrics) *RetentionWorker {
	return &RetentionWorker{
		store:         store,
		retentionDays: retentionDays,
		sweepInterval: sweepInterval,
		logger:        logger,
		metrics:       m,
	}
}

// Start runs the sweep loop until the context is cancelled. One sweep
// runs immediately so a freshly restarted process does not wait a full
// interval with stale data.
func (w *RetentionWorker) Start(ctx context.Context) {
	if err := w.sweep(ctx); err != nil {
		w.logger.Error().Err(err).Msg("retention sweep failed")
	}

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				w.logger.Error().Err(err).Msg("retention sweep failed")
			}
		}
	}
}

func (w *RetentionWorker) sweep(ctx context.Context) error {
	deleted, err := w.store.DeleteBatchesOlderThan(ctx, w.retentionDays)
	if err != nil {
		return fmt.Errorf("failed to delete batches older than %d days: %w", w.retentionDays, err)
	}

	if w.metrics != nil {
		w.metrics.RetentionSweeps.Inc()
		w.metrics.RetentionBatchesDeleted.Add(float64(deleted))
	}

	w.logger.Info().
		Int("retention_days", w.retentionDays).
		Int("deleted", deleted).
		Msg("retention sweep finished")
	return nil
}
