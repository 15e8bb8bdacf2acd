package memory

import (
	"context"
	"math"

	"github.com/confirmly/dashboard-api/internal/model"
)

// Display colors for the four response categories.
const (
	colorConfirmed    = "#10b981"
	colorNotConfirmed = "#ef4444"
	colorQuestions    = "#f59e0b"
	colorOther        = "#6b7280"
)

// GetDashboardMetrics reads today's DailyStats, falling back to the most
// recent day available. An empty store yields a zero-filled view dated
// today.
func (s *Store) GetDashboardMetrics(_ context.Context) (*model.DashboardMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.now().Format(dateLayout)

	st, ok := s.stats[today]
	if !ok {
		latest := ""
		for date := range s.stats {
			if date > latest {
				latest = date
			}
		}
		if latest == "" {
			return &model.DashboardMetrics{Date: today}, nil
		}
		st = s.stats[latest]
	}

	rate := 0
	if st.TotalSent > 0 {
		rate = int(math.Round(float64(st.TotalReceived) / float64(st.TotalSent) * 100))
	}

	return &model.DashboardMetrics{
		Date:          st.Date,
		TotalSent:     st.TotalSent,
		TotalReceived: st.TotalReceived,
		Confirmed:     st.Confirmed,
		NotConfirmed:  st.NotConfirmed,
		Questions:     st.Questions,
		Other:         st.Other,
		Pending:       st.Pending,
		ResponseRate:  rate,
	}, nil
}

// GetChartData returns the sent/received series for the last `days`
// calendar days ending today, oldest first. Days with no stats appear as
// zeros; the series never has gaps.
func (s *Store) GetChartData(_ context.Context, days int) ([]*model.ChartPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	points := make([]*model.ChartPoint, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset).Format(dateLayout)
		p := &model.ChartPoint{Date: date}
		if st, ok := s.stats[date]; ok {
			p.Sent = st.TotalSent
			p.Received = st.TotalReceived
		}
		points = append(points, p)
	}
	return points, nil
}

// GetCategoryData derives the four fixed response categories from the
// current dashboard metrics.
func (s *Store) GetCategoryData(ctx context.Context) ([]*model.CategoryPoint, error) {
	m, err := s.GetDashboardMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return []*model.CategoryPoint{
		{Name: "Confirmed", Value: m.Confirmed, Color: colorConfirmed},
		{Name: "Not confirmed", Value: m.NotConfirmed, Color: colorNotConfirmed},
		{Name: "Questions", Value: m.Questions, Color: colorQuestions},
		{Name: "Other", Value: m.Other, Color: colorOther},
	}, nil
}
