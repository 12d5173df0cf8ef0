// Package dto defines read-side data transfer objects for payment queries
// and API responses.
package dto

import (
	"time"

	"github.com/njagi/paylens/pkg/domain"
	"github.com/shopspring/decimal"
)

// PaymentRead is a read-optimized DTO for one consumer payment row.
type PaymentRead struct {
	ID                  int64              `json:"id"`
	ConsumerUID         string             `json:"consumer_uid"`
	TransactionID       string             `json:"transaction_id"`
	Name                *string            `json:"name"`
	IsBusiness          bool               `json:"is_business"`
	Direction           domain.Direction   `json:"direction"`
	Amount              decimal.Decimal    `json:"amount"`
	SenderID            string             `json:"sender_id"`
	CountryCode         domain.CountryCode `json:"country_code"`
	ConsumerPhoneNumber string             `json:"consumer_phone_number"`
	PaidAt              *time.Time         `json:"paid_at"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// SpendingSummary is the aggregate of a totals query. Zero values, not
// nulls, represent an empty result set.
type SpendingSummary struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// RecipientTotal is one group of the top-recipients aggregation.
type RecipientTotal struct {
	Name    string          `json:"name"`
	Total   decimal.Decimal `json:"total"`
	Count   int64           `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// SenderSpend is one group of the spending-by-payment-method aggregation.
// Percentage of the grand total is computed by the caller, not the store.
type SenderSpend struct {
	SenderID string          `json:"sender_id"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// TrendPoint is one bucket of the spending-trend aggregation. Period is a
// bucket label such as "2026-01", "2026-01-15" or "2026-03" depending on
// granularity.
type TrendPoint struct {
	Period  string          `json:"period"`
	Total   decimal.Decimal `json:"total"`
	Count   int64           `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// Page is a limit/offset pagination envelope.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage wraps items with pagination bookkeeping.
func NewPage[T any](items []T, total int64, page, size int) Page[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{Items: items, Total: total, Page: page, Size: size, Pages: pages}
}
