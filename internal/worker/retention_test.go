package worker

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/repository/memory"
)

var testToday = time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

func TestSweepRunsImmediately(t *testing.T) {
	store, err := memory.NewStore(memory.DefaultGeneratorConfig(), memory.WithClock(func() time.Time { return testToday }))
	require.NoError(t, err)

	w := NewRetentionWorker(store, 10, time.Hour, zerolog.Nop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// The first sweep runs before the first tick; poll for its effect.
	cutoff := testToday.AddDate(0, 0, -10).Format("2006-01-02")
	assert.Eventually(t, func() bool {
		page, err := store.QueryBatches(ctx, &model.BatchFilters{Limit: 1000})
		if err != nil {
			return false
		}
		for _, b := range page.Batches {
			if b.Date < cutoff {
				return false
			}
		}
		return page.Total == 22 // 11 days kept, 2 batches each
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}
