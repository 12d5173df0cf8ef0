// Package payment serves paginated payment listings.
package payment

import (
	"context"
	"log/slog"

	"github.com/njagi/paylens/pkg/dto"
	"github.com/njagi/paylens/pkg/repository"
)

const (
	defaultPage = 1
	defaultSize = 50
	maxSize     = 100
)

// Service lists stored payments.
type Service struct {
	payments repository.Payment
	logger   *slog.Logger
}

// New creates the payment service.
func New(payments repository.Payment, logger *slog.Logger) *Service {
	return &Service{payments: payments, logger: logger}
}

// List returns one page of payments ordered by insertion. Out-of-range
// page and size values are clamped rather than rejected.
func (s *Service) List(ctx context.Context, page, size int) (*dto.Page[dto.PaymentRead], error) {
	if page < 1 {
		page = defaultPage
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	offset := (page - 1) * size
	items, total, err := s.payments.List(ctx, size, offset)
	if err != nil {
		s.logger.Error("failed to list payments", "error", err)
		return nil, err
	}
	result := dto.NewPage(items, total, page, size)
	return &result, nil
}
