package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/repository"
	apperrors "github.com/confirmly/dashboard-api/pkg/errors"
)

type CustomerService interface {
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)
}

type Service struct {
	store  repository.Storage
	logger zerolog.Logger
}

func NewService(store repository.Storage, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}

func (s *Service) GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	return s.store.GetCustomerByPhone(ctx, phone)
}

func (s *Service) CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	if !strings.HasPrefix(req.Phone, "+") {
		return nil, apperrors.BadRequest("phone must be in international format", nil)
	}

	c, err := s.store.CreateCustomer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().Str("customer_id", c.ID).Msg("customer created")
	return c, nil
}
