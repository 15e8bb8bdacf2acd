package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/repository"
	apperrors "github.com/confirmly/dashboard-api/pkg/errors"
	"github.com/confirmly/dashboard-api/pkg/metrics"
)

const dateLayout = "2006-01-02"

// Store is the deterministic mock data source. The dataset is generated
// once at construction; afterwards the collections only change through
// the explicit write operations (CreateCustomer, CreateBatch,
// CreateOrUpdateDailyStats, DeleteBatchesOlderThan). A single RWMutex
// guards everything; the dataset is small and fully in memory.
type Store struct {
	mu      sync.RWMutex
	now     func() time.Time
	logger  zerolog.Logger
	metrics *metrics.Metrics

	// keepStats controls the retention asymmetry: by default the sweep
	// removes old batches but keeps DailyStats so trend charts retain
	// their history. Disable to sweep both with the same cutoff.
	keepStats bool

	customers  map[string]*model.Customer
	phoneIndex map[string]string // phone -> customer id
	batches    map[string]*model.Batch
	batchOrder []string // insertion order, for deterministic iteration
	stats      map[string]*model.DailyStats
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock overrides the time source. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithStatsSweep makes the retention sweep delete DailyStats alongside
// batches instead of keeping them for trend history.
func WithStatsSweep() Option {
	return func(s *Store) { s.keepStats = false }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithMetrics exposes dataset size gauges for the store.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// NewStore validates the generator configuration, builds the full
// synthetic dataset and returns a ready store. Generation is atomic: on
// a config error nothing is built.
func NewStore(cfg GeneratorConfig, opts ...Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		now:        time.Now,
		logger:     zerolog.Nop(),
		keepStats:  true,
		customers:  make(map[string]*model.Customer),
		phoneIndex: make(map[string]string),
		batches:    make(map[string]*model.Batch),
		stats:      make(map[string]*model.DailyStats),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.generate(cfg)
	s.updateGauges()

	s.logger.Info().
		Int64("seed", cfg.Seed).
		Int("days", cfg.DaysOfHistory).
		Int("customers", len(s.customers)).
		Int("batches", len(s.batches)).
		Msg("mock dataset generated")

	return s, nil
}

var _ repository.Storage = (*Store)(nil)

// updateGauges refreshes the dataset size gauges. Callers hold the
// write lock or run before the store is shared.
func (s *Store) updateGauges() {
	if s.metrics == nil {
		return
	}
	s.metrics.DatasetBatches.Set(float64(len(s.batches)))
	s.metrics.DatasetCustomers.Set(float64(len(s.customers)))
}

func (s *Store) GetCustomer(_ context.Context, id string) (*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, apperrors.NotFound("customer")
	}
	out := *c
	return &out, nil
}

func (s *Store) GetCustomerByPhone(_ context.Context, phone string) (*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.phoneIndex[phone]
	if !ok {
		return nil, apperrors.NotFound("customer")
	}
	out := *s.customers[id]
	return &out, nil
}

func (s *Store) CreateCustomer(_ context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.phoneIndex[req.Phone]; exists {
		return nil, apperrors.Conflict("customer with this phone already exists")
	}

	c := &model.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		CreatedAt: s.now(),
	}
	s.customers[c.ID] = c
	s.phoneIndex[c.Phone] = c.ID
	s.updateGauges()

	out := *c
	return &out, nil
}

func (s *Store) GetBatch(_ context.Context, id string) (*model.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.batches[id]
	if !ok {
		return nil, apperrors.NotFound("batch")
	}
	out := *b
	return &out, nil
}

func (s *Store) CreateBatch(_ context.Context, req *model.CreateBatchRequest) (*model.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &model.Batch{
		ID:            batchID(req.Type, req.Date),
		Date:          req.Date,
		Type:          req.Type,
		FileName:      req.FileName,
		Channel:       req.Channel,
		CustomerCount: req.CustomerCount,
		Confirmed:     req.Confirmed,
		NotConfirmed:  req.NotConfirmed,
		Questions:     req.Questions,
		Other:         req.Other,
		CreatedAt:     s.now(),
	}
	if b.FileName == "" {
		b.FileName = batchFileName(b.Type, b.Date)
	}
	if b.Channel == "" {
		b.Channel = defaultChannel
	}
	if _, exists := s.batches[b.ID]; exists {
		return nil, apperrors.Conflict("batch already exists for this type and date")
	}

	s.batches[b.ID] = b
	s.batchOrder = append(s.batchOrder, b.ID)
	s.updateGauges()

	out := *b
	return &out, nil
}

// DeleteBatchesOlderThan removes every batch whose date is strictly
// before today minus retentionDays and returns the number removed.
// DailyStats for swept dates are kept unless the store was built with
// WithStatsSweep.
func (s *Store) DeleteBatchesOlderThan(_ context.Context, retentionDays int) (int, error) {
	if retentionDays < 0 {
		return 0, apperrors.BadRequest("retention days must be non-negative", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -retentionDays).Format(dateLayout)

	deleted := 0
	kept := s.batchOrder[:0]
	for _, id := range s.batchOrder {
		b := s.batches[id]
		if b.Date < cutoff {
			delete(s.batches, id)
			deleted++
			continue
		}
		kept = append(kept, id)
	}
	s.batchOrder = kept

	if !s.keepStats {
		for date := range s.stats {
			if date < cutoff {
				delete(s.stats, date)
			}
		}
	}

	s.updateGauges()

	s.logger.Info().
		Str("cutoff", cutoff).
		Int("deleted", deleted).
		Bool("stats_swept", !s.keepStats).
		Msg("retention sweep completed")

	return deleted, nil
}

func (s *Store) GetDailyStats(_ context.Context, date string) (*model.DailyStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stats[date]
	if !ok {
		return nil, apperrors.NotFound("daily stats")
	}
	out := *st
	return &out, nil
}

// GetDailyStatsRange returns stats with start <= date <= end, ascending
// by date. Empty bounds are open.
func (s *Store) GetDailyStatsRange(_ context.Context, start, end string) ([]*model.DailyStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.DailyStats, 0)
	for date, st := range s.stats {
		if start != "" && date < start {
			continue
		}
		if end != "" && date > end {
			continue
		}
		cp := *st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *Store) CreateOrUpdateDailyStats(_ context.Context, stats *model.DailyStats) (*model.DailyStats, error) {
	if stats.Date == "" {
		return nil, apperrors.BadRequest("daily stats date is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *stats
	s.stats[cp.Date] = &cp

	out := cp
	return &out, nil
}
