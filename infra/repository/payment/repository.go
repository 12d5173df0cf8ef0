// Package payment implements the read-side payment queries on GORM.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/njagi/paylens/pkg/domain"
	"github.com/njagi/paylens/pkg/dto"
	repo "github.com/njagi/paylens/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a payment read repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Payment {
	return &repository{db: db}
}

// trendBucketFormats maps granularities to postgres to_char formats.
// "week" uses the ISO year/week pair so buckets never straddle years.
var trendBucketFormats = map[domain.Granularity]string{
	domain.GranularityDay:   "YYYY-MM-DD",
	domain.GranularityWeek:  "IYYY-IW",
	domain.GranularityMonth: "YYYY-MM",
}

func (r *repository) scoped(
	ctx context.Context,
	start, end *time.Time,
	phone string,
) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Payment{})
	if start != nil {
		q = q.Where("paid_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("paid_at <= ?", *end)
	}
	if phone != "" {
		q = q.Where("consumer_phone_number = ?", phone)
	}
	return q
}

// TotalByPeriod implements repository.Payment.
func (r *repository) TotalByPeriod(
	ctx context.Context,
	start, end *time.Time,
	direction domain.Direction,
	phone string,
) (dto.SpendingSummary, error) {
	if !direction.IsValid() {
		return dto.SpendingSummary{}, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, direction)
	}

	q := r.scoped(ctx, start, end, phone)
	if direction != domain.DirectionAll {
		q = q.Where("direction = ?", direction)
	}

	var row struct {
		Total decimal.Decimal
		Count int64
	}
	err := q.Select("COALESCE(SUM(amount), 0) AS total, COUNT(id) AS count").
		Scan(&row).Error
	if err != nil {
		return dto.SpendingSummary{}, err
	}
	return dto.SpendingSummary{Total: row.Total, Count: row.Count}, nil
}

// ListByRecipientName implements repository.Payment.
func (r *repository) ListByRecipientName(
	ctx context.Context,
	name string,
	limit int,
	phone string,
) ([]dto.PaymentRead, error) {
	q := r.db.WithContext(ctx).Model(&Payment{}).
		Where("name ILIKE ?", "%"+name+"%")
	if phone != "" {
		q = q.Where("consumer_phone_number = ?", phone)
	}

	var rows []Payment
	err := q.Order("paid_at DESC NULLS LAST").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.PaymentRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToReadDTO(&rows[i]))
	}
	return result, nil
}

// TopRecipients implements repository.Payment.
func (r *repository) TopRecipients(
	ctx context.Context,
	direction domain.Direction,
	start, end *time.Time,
	limit int,
	phone string,
) ([]dto.RecipientTotal, error) {
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, direction)
	}

	q := r.scoped(ctx, start, end, phone).Where("name IS NOT NULL")
	if direction != domain.DirectionAll {
		q = q.Where("direction = ?", direction)
	}

	var rows []struct {
		Name  string
		Total decimal.Decimal
		Count int64
	}
	err := q.Select("name, SUM(amount) AS total, COUNT(id) AS count").
		Group("name").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.RecipientTotal, 0, len(rows))
	for _, row := range rows {
		avg := decimal.Zero
		if row.Count > 0 {
			avg = row.Total.Div(decimal.NewFromInt(row.Count)).Round(2)
		}
		result = append(result, dto.RecipientTotal{
			Name:    row.Name,
			Total:   row.Total,
			Count:   row.Count,
			Average: avg,
		})
	}
	return result, nil
}

// SpendingBySender implements repository.Payment.
func (r *repository) SpendingBySender(
	ctx context.Context,
	start, end *time.Time,
	phone string,
) ([]dto.SenderSpend, error) {
	q := r.scoped(ctx, start, end, phone).
		Where("direction = ?", domain.DirectionOutgoing)

	var rows []dto.SenderSpend
	err := q.Select("sender_id, SUM(amount) AS total, COUNT(id) AS count").
		Group("sender_id").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TrendData implements repository.Payment.
func (r *repository) TrendData(
	ctx context.Context,
	granularity domain.Granularity,
	limit int,
	phone string,
) ([]dto.TrendPoint, error) {
	format, ok := trendBucketFormats[granularity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGranularity, granularity)
	}

	// The format string comes from the closed map above, never from input.
	bucket := fmt.Sprintf("to_char(paid_at, '%s')", format)

	q := r.db.WithContext(ctx).Model(&Payment{}).
		Where("direction = ?", domain.DirectionOutgoing)
	if phone != "" {
		q = q.Where("consumer_phone_number = ?", phone)
	}

	var rows []struct {
		Period  string
		Total   decimal.Decimal
		Count   int64
		Average decimal.Decimal
	}
	err := q.Select(bucket + " AS period, SUM(amount) AS total, COUNT(id) AS count, AVG(amount) AS average").
		Group(bucket).
		Order("period DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.TrendPoint, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.TrendPoint{
			Period:  row.Period,
			Total:   row.Total,
			Count:   row.Count,
			Average: row.Average.Round(2),
		})
	}
	return result, nil
}

// List implements repository.Payment.
func (r *repository) List(
	ctx context.Context,
	limit, offset int,
) ([]dto.PaymentRead, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Payment
	err := r.db.WithContext(ctx).Model(&Payment{}).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.PaymentRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToReadDTO(&rows[i]))
	}
	return result, total, nil
}
