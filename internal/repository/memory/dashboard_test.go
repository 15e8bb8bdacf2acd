package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confirmly/dashboard-api/internal/model"
)

func TestDashboardMetricsToday(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	today := testToday.Format(dateLayout)
	st, err := s.GetDailyStats(ctx, today)
	require.NoError(t, err)

	m, err := s.GetDashboardMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, today, m.Date)
	assert.Equal(t, st.TotalSent, m.TotalSent)
	assert.Equal(t, st.TotalReceived, m.TotalReceived)
	assert.Equal(t, st.Pending, m.Pending)

	expectedRate := int(math.Round(float64(st.TotalReceived) / float64(st.TotalSent) * 100))
	assert.Equal(t, expectedRate, m.ResponseRate)
}

func TestDashboardMetricsFallsBackToLatest(t *testing.T) {
	// "Today" is two days past the newest generated day.
	gap := func() time.Time { return testToday.AddDate(0, 0, 2) }

	cfg := DefaultGeneratorConfig()
	s, err := NewStore(cfg, WithClock(testClock))
	require.NoError(t, err)
	s.now = gap

	m, err := s.GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testToday.Format(dateLayout), m.Date, "must fall back to the most recent stats")
	assert.Positive(t, m.TotalSent)
}

func TestDashboardMetricsEmptyStore(t *testing.T) {
	s := newTestStore(t)
	// Empty the stats directly; simulates a store before any data lands.
	s.stats = map[string]*model.DailyStats{}

	m, err := s.GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testToday.Format(dateLayout), m.Date)
	assert.Zero(t, m.TotalSent)
	assert.Zero(t, m.ResponseRate)
}

func TestChartDataComplete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	points, err := s.GetChartData(ctx, 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	for i, p := range points {
		expected := testToday.AddDate(0, 0, -(6 - i)).Format(dateLayout)
		assert.Equal(t, expected, p.Date, "ascending, oldest first")
		assert.Positive(t, p.Sent)
	}
}

func TestChartDataZeroFillsGaps(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.DaysOfHistory = 3
	s, err := NewStore(cfg, WithClock(testClock))
	require.NoError(t, err)

	points, err := s.GetChartData(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, points, 10, "series must have exactly the requested length")

	// First 7 days predate the generated history and must be zeros.
	for _, p := range points[:7] {
		assert.Zero(t, p.Sent, "gap day %s must be zero-filled", p.Date)
		assert.Zero(t, p.Received)
	}
	for _, p := range points[7:] {
		assert.Positive(t, p.Sent)
	}
}

func TestCategoryData(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.GetDashboardMetrics(ctx)
	require.NoError(t, err)

	categories, err := s.GetCategoryData(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)

	assert.Equal(t, "Confirmed", categories[0].Name)
	assert.Equal(t, m.Confirmed, categories[0].Value)
	assert.Equal(t, "#10b981", categories[0].Color)

	total := 0
	for _, c := range categories {
		assert.NotEmpty(t, c.Color)
		total += c.Value
	}
	assert.Equal(t, m.TotalReceived, total)
}
