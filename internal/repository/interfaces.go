package repository

import (
	"context"

	"github.com/confirmly/dashboard-api/internal/model"
)

// Storage is the contract every data-source mode satisfies: the
// deterministic in-memory mock and the (pending) database-backed
// variant. Callers never know which one they hold.
//
// Lookups with no match return a NotFound application error, never nil
// alongside a nil error.
type Storage interface {
	// Customers
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)

	// Batches
	GetBatch(ctx context.Context, id string) (*model.Batch, error)
	QueryBatches(ctx context.Context, filters *model.BatchFilters) (*model.BatchPage, error)
	CreateBatch(ctx context.Context, req *model.CreateBatchRequest) (*model.Batch, error)
	DeleteBatchesOlderThan(ctx context.Context, retentionDays int) (int, error)

	// Daily stats
	GetDailyStats(ctx context.Context, date string) (*model.DailyStats, error)
	GetDailyStatsRange(ctx context.Context, start, end string) ([]*model.DailyStats, error)
	CreateOrUpdateDailyStats(ctx context.Context, stats *model.DailyStats) (*model.DailyStats, error)

	// Dashboard views
	GetDashboardMetrics(ctx context.Context) (*model.DashboardMetrics, error)
	GetChartData(ctx context.Context, days int) ([]*model.ChartPoint, error)
	GetCategoryData(ctx context.Context) ([]*model.CategoryPoint, error)
}
