package dashboard

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/repository"
)

// The dashboard polls these views on every page load; a short TTL cache
// keeps repeated reads off the storage lock without letting the numbers
// go visibly stale.
const (
	cacheTTL     = 30 * time.Second
	cacheCleanup = 5 * time.Minute

	keyMetrics    = "metrics"
	keyCategories = "categories"
)

type DashboardService interface {
	GetMetrics(ctx context.Context) (*model.DashboardMetrics, error)
	GetChartData(ctx context.Context, days int) ([]*model.ChartPoint, error)
	GetCategoryData(ctx context.Context) ([]*model.CategoryPoint, error)
}

type Service struct {
	store repository.Storage
	cache *gocache.Cache
}

func NewService(store repository.Storage) *Service {
	return &Service{
		store: store,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

func (s *Service) GetMetrics(ctx context.Context) (*model.DashboardMetrics, error) {
	if v, ok := s.cache.Get(keyMetrics); ok {
		return v.(*model.DashboardMetrics), nil
	}
	m, err := s.store.GetDashboardMetrics(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyMetrics, m)
	return m, nil
}

func (s *Service) GetChartData(ctx context.Context, days int) ([]*model.ChartPoint, error) {
	key := fmt.Sprintf("chart:%d", days)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*model.ChartPoint), nil
	}
	points, err := s.store.GetChartData(ctx, days)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, points)
	return points, nil
}

func (s *Service) GetCategoryData(ctx context.Context) ([]*model.CategoryPoint, error) {
	if v, ok := s.cache.Get(keyCategories); ok {
		return v.([]*model.CategoryPoint), nil
	}
	categories, err := s.store.GetCategoryData(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyCategories, categories)
	return categories, nil
}

// Invalidate drops all cached views; writes that change today's numbers
// call it so the dashboard converges immediately.
func (s *Service) Invalidate() {
	s.cache.Flush()
}
