package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confirmly/dashboard-api/internal/model"
)

func TestQueryBatchesAll(t *testing.T) {
	s := newTestStore(t)

	page, err := s.QueryBatches(context.Background(), &model.BatchFilters{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 60, page.Total)
	assert.Len(t, page.Batches, 60)
}

func TestQueryBatchesTypeFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	page, err := s.QueryBatches(ctx, &model.BatchFilters{Type: model.BatchTypeSent, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 30, page.Total)
	require.Len(t, page.Batches, 5)

	// The five most recent sent batches, newest first.
	for i, b := range page.Batches {
		assert.Equal(t, model.BatchTypeSent, b.Type)
		expected := testToday.AddDate(0, 0, -i).Format(dateLayout)
		assert.Equal(t, expected, b.Date)
	}
}

func TestQueryBatchesDateRange(t *testing.T) {
	s := newTestStore(t)

	from := testToday.AddDate(0, 0, -4).Format(dateLayout)
	to := testToday.AddDate(0, 0, -2).Format(dateLayout)

	page, err := s.QueryBatches(context.Background(), &model.BatchFilters{
		DateFrom: from,
		DateTo:   to,
		Limit:    100,
	})
	require.NoError(t, err)
	// Bounds are inclusive: 3 days, 2 batches each.
	assert.Equal(t, 6, page.Total)
	for _, b := range page.Batches {
		assert.GreaterOrEqual(t, b.Date, from)
		assert.LessOrEqual(t, b.Date, to)
	}
}

func TestQueryBatchesOrdering(t *testing.T) {
	s := newTestStore(t)

	page, err := s.QueryBatches(context.Background(), &model.BatchFilters{Limit: 1000})
	require.NoError(t, err)

	for i := 1; i < len(page.Batches); i++ {
		prev, cur := page.Batches[i-1], page.Batches[i]
		if prev.Date != cur.Date {
			assert.Greater(t, prev.Date, cur.Date, "dates must descend")
			continue
		}
		// Same date: received sorts before sent.
		assert.LessOrEqual(t, string(prev.Type), string(cur.Type))
	}
}

func TestQueryBatchesPaginationReconstructsSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	filters := &model.BatchFilters{Type: model.BatchTypeReceived}

	var collected []string
	for offset := 0; ; offset += 7 {
		page, err := s.QueryBatches(ctx, &model.BatchFilters{
			Type:   filters.Type,
			Limit:  7,
			Offset: offset,
		})
		require.NoError(t, err)
		assert.Equal(t, 30, page.Total, "total must be stable across pages")
		if len(page.Batches) == 0 {
			break
		}
		for _, b := range page.Batches {
			collected = append(collected, b.ID)
		}
	}

	require.Len(t, collected, 30)
	seen := make(map[string]bool, len(collected))
	for _, id := range collected {
		assert.False(t, seen[id], "batch %s appeared twice", id)
		seen[id] = true
	}
}

func TestQueryBatchesOffsetBeyondSize(t *testing.T) {
	s := newTestStore(t)

	page, err := s.QueryBatches(context.Background(), &model.BatchFilters{Offset: 10000})
	require.NoError(t, err)
	assert.Empty(t, page.Batches)
	assert.Equal(t, 60, page.Total)
}

func TestQueryBatchesLimitDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	page, err := s.QueryBatches(ctx, &model.BatchFilters{})
	require.NoError(t, err)
	assert.Len(t, page.Batches, 50, "zero limit falls back to the default page size")

	page, err = s.QueryBatches(ctx, &model.BatchFilters{Limit: -3, Offset: -5})
	require.NoError(t, err)
	assert.Len(t, page.Batches, 50)
	assert.Equal(t, 60, page.Total)
}

func TestQueryBatchesEnrichment(t *testing.T) {
	s := newTestStore(t)

	page, err := s.QueryBatches(context.Background(), &model.BatchFilters{Limit: 1000})
	require.NoError(t, err)

	for _, b := range page.Batches {
		switch b.Type {
		case model.BatchTypeReceived:
			require.NotNil(t, b.TotalResponses)
			assert.Equal(t, b.Confirmed+b.NotConfirmed+b.Questions+b.Other, *b.TotalResponses)
		case model.BatchTypeSent:
			assert.Nil(t, b.TotalResponses)
		}
	}
}

func TestQueryBatchesNilFilters(t *testing.T) {
	s := newTestStore(t)

	page, err := s.QueryBatches(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 60, page.Total)
	assert.Len(t, page.Batches, 50)
}
