package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/repository"
	apperrors "github.com/confirmly/dashboard-api/pkg/errors"
)

const (
	dateLayout = "2006-01-02"

	// Page size used internally when streaming the full filtered set
	// for export.
	exportPageSize = 500
)

type BatchService interface {
	QueryBatches(ctx context.Context, filters *model.BatchFilters) (*model.BatchPage, error)
	GetBatch(ctx context.Context, id string) (*model.Batch, error)
	CreateBatch(ctx context.Context, req *model.CreateBatchRequest) (*model.Batch, error)
	DeleteOlderThan(ctx context.Context, retentionDays int) (int, error)
	ExportCSV(ctx context.Context, filters *model.BatchFilters, w io.Writer) error
}

type Service struct {
	store  repository.Storage
	logger zerolog.Logger
}

func NewService(store repository.Storage, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) QueryBatches(ctx context.Context, filters *model.BatchFilters) (*model.BatchPage, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	page, err := s.store.QueryBatches(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	return page, nil
}

func (s *Service) GetBatch(ctx context.Context, id string) (*model.Batch, error) {
	return s.store.GetBatch(ctx, id)
}

func (s *Service) CreateBatch(ctx context.Context, req *model.CreateBatchRequest) (*model.Batch, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	b, err := s.store.CreateBatch(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("batch_id", b.ID).
		Str("type", string(b.Type)).
		Str("date", b.Date).
		Int("customer_count", b.CustomerCount).
		Msg("batch created")

	return b, nil
}

func (s *Service) DeleteOlderThan(ctx context.Context, retentionDays int) (int, error) {
	deleted, err := s.store.DeleteBatchesOlderThan(ctx, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old batches: %w", err)
	}
	return deleted, nil
}

// ExportCSV writes the complete filtered batch history as CSV, newest
// first, paging through storage so the export sees the same ordering the
// listing does. Limit/Offset on the incoming filters are ignored.
func (s *Service) ExportCSV(ctx context.Context, filters *model.BatchFilters, w io.Writer) error {
	if filters == nil {
		filters = &model.BatchFilters{}
	}
	if err := validateFilters(filters); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"id", "date", "type", "file_name", "channel",
		"customer_count", "confirmed", "not_confirmed", "questions", "other",
		"created_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	page := *filters
	page.Limit = exportPageSize
	page.Offset = 0
	for {
		result, err := s.store.QueryBatches(ctx, &page)
		if err != nil {
			return fmt.Errorf("failed to query batches for export: %w", err)
		}
		for _, b := range result.Batches {
			record := []string{
				b.ID,
				b.Date,
				string(b.Type),
				b.FileName,
				b.Channel,
				strconv.Itoa(b.CustomerCount),
				strconv.Itoa(b.Confirmed),
				strconv.Itoa(b.NotConfirmed),
				strconv.Itoa(b.Questions),
				strconv.Itoa(b.Other),
				b.CreatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write csv record: %w", err)
			}
		}
		page.Offset += len(result.Batches)
		if page.Offset >= result.Total || len(result.Batches) == 0 {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func validateFilters(filters *model.BatchFilters) error {
	if filters == nil {
		return nil
	}
	if filters.Type != "" && !filters.Type.Valid() {
		return apperrors.BadRequest(fmt.Sprintf("invalid batch type %q", filters.Type), nil)
	}
	for _, d := range []string{filters.DateFrom, filters.DateTo} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return apperrors.BadRequest(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", d), err)
		}
	}
	return nil
}

func validateCreate(req *model.CreateBatchRequest) error {
	if !req.Type.Valid() {
		return apperrors.BadRequest(fmt.Sprintf("invalid batch type %q", req.Type), nil)
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return apperrors.BadRequest(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date), err)
	}
	if req.CustomerCount < 0 || req.Confirmed < 0 || req.NotConfirmed < 0 || req.Questions < 0 || req.Other < 0 {
		return apperrors.BadRequest("counts must be non-negative", nil)
	}
	switch req.Type {
	case model.BatchTypeSent:
		if req.Confirmed+req.NotConfirmed+req.Questions+req.Other != 0 {
			return apperrors.BadRequest("sent batches must have zero response categories", nil)
		}
	case model.BatchTypeReceived:
		if req.Confirmed+req.NotConfirmed+req.Questions+req.Other != req.CustomerCount {
			return apperrors.BadRequest("response categories must sum to customer_count", nil)
		}
	}
	return nil
}
