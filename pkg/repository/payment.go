// Package repository declares the read-side persistence contracts. The
// GORM-backed implementations live under infra/repository.
package repository

import (
	"context"
	"time"

	"github.com/njagi/paylens/pkg/domain"
	"github.com/njagi/paylens/pkg/dto"
)

// Payment exposes the read-only aggregation queries over the
// end_user_payments table. Every query takes an optional date range
// (nil bound means unbounded) and an optional consumer phone number
// (empty string means no subject filter).
type Payment interface {
	// TotalByPeriod sums amount and counts rows for the given direction.
	// domain.DirectionAll disables the direction filter. An empty match
	// yields Total 0.00 and Count 0, never an error.
	TotalByPeriod(
		ctx context.Context,
		start, end *time.Time,
		direction domain.Direction,
		phone string,
	) (dto.SpendingSummary, error)

	// ListByRecipientName returns payments whose counterparty name contains
	// the given fragment, case-insensitively, most recently settled first.
	// Rows without a settlement time sort last. An empty match yields an
	// empty slice.
	ListByRecipientName(
		ctx context.Context,
		name string,
		limit int,
		phone string,
	) ([]dto.PaymentRead, error)

	// TopRecipients groups by counterparty name (null names excluded),
	// summing and counting per group, ordered by total descending.
	TopRecipients(
		ctx context.Context,
		direction domain.Direction,
		start, end *time.Time,
		limit int,
		phone string,
	) ([]dto.RecipientTotal, error)

	// SpendingBySender groups outgoing payments by payment-method
	// identifier, ordered by total descending.
	SpendingBySender(
		ctx context.Context,
		start, end *time.Time,
		phone string,
	) ([]dto.SenderSpend, error)

	// TrendData buckets outgoing payments by calendar day, ISO week or
	// calendar month, most recent bucket first.
	TrendData(
		ctx context.Context,
		granularity domain.Granularity,
		limit int,
		phone string,
	) ([]dto.TrendPoint, error)

	// List returns a page of payments in insertion order plus the total
	// row count, for the paginated listing endpoint.
	List(ctx context.Context, limit, offset int) ([]dto.PaymentRead, int64, error)
}
