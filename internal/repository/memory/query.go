package memory

import (
	"context"
	"sort"

	"github.com/confirmly/dashboard-api/internal/model"
)

const defaultPageSize = 50

// QueryBatches answers a filtered, paginated batch listing. Total is
// the size of the filtered set before pagination, so callers can step
// offset by limit and reconstruct the whole set.
func (s *Store) QueryBatches(_ context.Context, filters *model.BatchFilters) (*model.BatchPage, error) {
	if filters == nil {
		filters = &model.BatchFilters{}
	}

	s.mu.RLock()
	filtered := make([]*model.Batch, 0, len(s.batchOrder))
	for _, id := range s.batchOrder {
		b := s.batches[id]
		if filters.Type != "" && b.Type != filters.Type {
			continue
		}
		// Zero-padded ISO dates: lexicographic compare is chronological.
		if filters.DateFrom != "" && b.Date < filters.DateFrom {
			continue
		}
		if filters.DateTo != "" && b.Date > filters.DateTo {
			continue
		}
		filtered = append(filtered, b)
	}
	s.mu.RUnlock()

	// Date descending; same-date rows ordered by type then creation time
	// so pagination stays stable regardless of insertion order.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	total := len(filtered)

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]*model.Batch, 0, end-offset)
	for _, b := range filtered[offset:end] {
		cp := *b
		if cp.Type == model.BatchTypeReceived {
			tr := cp.Confirmed + cp.NotConfirmed + cp.Questions + cp.Other
			cp.TotalResponses = &tr
		}
		page = append(page, &cp)
	}

	return &model.BatchPage{Batches: page, Total: total}, nil
}
