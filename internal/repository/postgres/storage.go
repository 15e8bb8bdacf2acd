package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/repository"
	apperrors "github.com/confirmly/dashboard-api/pkg/errors"
)

// storage is the database-backed variant of the storage contract. The
// schema and queries have not landed yet; every operation fails fast
// with NotImplemented so a deployment pointed at dev/prod mode cannot
// silently serve empty data. The connection is still established and
// pinged at startup, so wiring problems surface immediately.
type storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) repository.Storage {
	return &storage{db: db}
}

var _ repository.Storage = (*storage)(nil)

func (s *storage) GetCustomer(_ context.Context, _ string) (*model.Customer, error) {
	return nil, apperrors.NotImplemented("GetCustomer")
}

func (s *storage) GetCustomerByPhone(_ context.Context, _ string) (*model.Customer, error) {
	return nil, apperrors.NotImplemented("GetCustomerByPhone")
}

func (s *storage) CreateCustomer(_ context.Context, _ *model.CreateCustomerRequest) (*model.Customer, error) {
	return nil, apperrors.NotImplemented("CreateCustomer")
}

func (s *storage) GetBatch(_ context.Context, _ string) (*model.Batch, error) {
	return nil, apperrors.NotImplemented("GetBatch")
}

func (s *storage) QueryBatches(_ context.Context, _ *model.BatchFilters) (*model.BatchPage, error) {
	return nil, apperrors.NotImplemented("QueryBatches")
}

func (s *storage) CreateBatch(_ context.Context, _ *model.CreateBatchRequest) (*model.Batch, error) {
	return nil, apperrors.NotImplemented("CreateBatch")
}

func (s *storage) DeleteBatchesOlderThan(_ context.Context, _ int) (int, error) {
	return 0, apperrors.NotImplemented("DeleteBatchesOlderThan")
}

func (s *storage) GetDailyStats(_ context.Context, _ string) (*model.DailyStats, error) {
	return nil, apperrors.NotImplemented("GetDailyStats")
}

func (s *storage) GetDailyStatsRange(_ context.Context, _, _ string) ([]*model.DailyStats, error) {
	return nil, apperrors.NotImplemented("GetDailyStatsRange")
}

func (s *storage) CreateOrUpdateDailyStats(_ context.Context, _ *model.DailyStats) (*model.DailyStats, error) {
	return nil, apperrors.NotImplemented("CreateOrUpdateDailyStats")
}

func (s *storage) GetDashboardMetrics(_ context.Context) (*model.DashboardMetrics, error) {
	return nil, apperrors.NotImplemented("GetDashboardMetrics")
}

func (s *storage) GetChartData(_ context.Context, _ int) ([]*model.ChartPoint, error) {
	return nil, apperrors.NotImplemented("GetChartData")
}

func (s *storage) GetCategoryData(_ context.Context) ([]*model.CategoryPoint, error) {
	return nil, apperrors.NotImplemented("GetCategoryData")
}
