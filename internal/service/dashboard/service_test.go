package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/repository"
)

// countingStore wraps a fixed response set and counts reads, to observe
// cache behavior.
type countingStore struct {
	repository.Storage
	metricsCalls int
	chartCalls   int
}

func (c *countingStore) GetDashboardMetrics(context.Context) (*model.DashboardMetrics, error) {
	c.metricsCalls++
	return &model.DashboardMetrics{Date: "2024-01-15", TotalSent: 180, TotalReceived: 140, ResponseRate: 78}, nil
}

func (c *countingStore) GetChartData(_ context.Context, days int) ([]*model.ChartPoint, error) {
	c.chartCalls++
	points := make([]*model.ChartPoint, days)
	for i := range points {
		points[i] = &model.ChartPoint{Date: "2024-01-15"}
	}
	return points, nil
}

func (c *countingStore) GetCategoryData(context.Context) ([]*model.CategoryPoint, error) {
	return []*model.CategoryPoint{{Name: "Confirmed", Value: 90, Color: "#10b981"}}, nil
}

func TestMetricsAreCached(t *testing.T) {
	store := &countingStore{}
	s := NewService(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		m, err := s.GetMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 78, m.ResponseRate)
	}
	assert.Equal(t, 1, store.metricsCalls, "repeated reads must hit the cache")
}

func TestChartCachedPerWindow(t *testing.T) {
	store := &countingStore{}
	s := NewService(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.GetChartData(ctx, 7)
		require.NoError(t, err)
	}
	_, err := s.GetChartData(ctx, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, store.chartCalls, "distinct windows cache separately")
}

func TestInvalidateDropsCache(t *testing.T) {
	store := &countingStore{}
	s := NewService(store)
	ctx := context.Background()

	_, err := s.GetMetrics(ctx)
	require.NoError(t, err)
	s.Invalidate()
	_, err = s.GetMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, store.metricsCalls)
}

// failingStore errors on every read; the service must not cache errors.
type failingStore struct {
	repository.Storage
	calls int
}

func (f *failingStore) GetDashboardMetrics(context.Context) (*model.DashboardMetrics, error) {
	f.calls++
	return nil, errors.New("backend down")
}

func TestErrorsAreNotCached(t *testing.T) {
	store := &failingStore{}
	s := NewService(store)
	ctx := context.Background()

	_, err := s.GetMetrics(ctx)
	require.Error(t, err)
	_, err = s.GetMetrics(ctx)
	require.Error(t, err)

	assert.Equal(t, 2, store.calls)
}
