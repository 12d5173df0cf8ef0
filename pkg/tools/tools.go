// Package tools exposes the fixed set of financial analysis tools the
// agent can plan against. Each tool name is bound to one payment
// aggregation query, with validated parameters and JSON-ready results.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/njagi/paylens/pkg/domain"
	"github.com/njagi/paylens/pkg/period"
	"github.com/njagi/paylens/pkg/repository"
)

// Name identifies one tool from the closed set of five.
type Name string

const (
	SpendingSummary     Name = "get_spending_summary"
	PaymentsByRecipient Name = "get_payments_by_recipient"
	TopRecipients       Name = "get_top_recipients"
	SpendingByCategory  Name = "get_spending_by_category"
	PaymentTrends       Name = "get_payment_trends"
)

// Names lists every registered tool, in prompt order.
var Names = []Name{
	SpendingSummary,
	PaymentsByRecipient,
	TopRecipients,
	SpendingByCategory,
	PaymentTrends,
}

var (
	// ErrUnknownTool is wrapped when a plan names a tool outside the set.
	ErrUnknownTool = fmt.Errorf("unknown tool")

	// ErrInvalidArgument is wrapped for parameter violations.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// phoneParam is the parameter key carrying the subject filter.
const phoneParam = "consumer_phone_number"

// Registry dispatches validated tool calls onto the payment store.
type Registry struct {
	payments repository.Payment
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a tool registry over the payment repository.
func New(payments repository.Payment, logger *slog.Logger) *Registry {
	return &Registry{
		payments: payments,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute validates and runs one planned tool call. A non-empty phone is
// the externally supplied subject filter; it is written into params before
// dispatch and always takes precedence over whatever the plan carried.
// Results are JSON-ready values: a map for summaries, a slice of maps for
// listings, per the closed serialization in serialize.go.
func (r *Registry) Execute(
	ctx context.Context,
	name Name,
	params map[string]any,
	phone string,
) (any, error) {
	if params == nil {
		params = map[string]any{}
	}
	if phone != "" {
		params[phoneParam] = phone
	}

	r.logger.Info("executing tool", "tool", name, "params", params)

	switch name {
	case SpendingSummary:
		return r.spendingSummary(ctx, params)
	case PaymentsByRecipient:
		return r.paymentsByRecipient(ctx, params)
	case TopRecipients:
		return r.topRecipients(ctx, params)
	case SpendingByCategory:
		return r.spendingByCategory(ctx, params)
	case PaymentTrends:
		return r.paymentTrends(ctx, params)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// spendingSummaryParams carries the validated inputs of get_spending_summary.
type spendingSummaryParams struct {
	Period    period.Token
	Direction domain.Direction
	Phone     string
}

func parseSpendingSummaryParams(m map[string]any) (spendingSummaryParams, error) {
	p := spendingSummaryParams{
		Period:    period.Token(stringParam(m, "period", string(period.ThisMonth))),
		Direction: domain.Direction(stringParam(m, "direction", string(domain.DirectionOutgoing))),
		Phone:     stringParam(m, phoneParam, ""),
	}
	if !p.Period.IsValid() {
		return p, invalidPeriodErr(p.Period)
	}
	if !p.Direction.IsValid() {
		return p, fmt.Errorf("%w: direction must be one of outgoing, incoming, all, got %q",
			ErrInvalidArgument, p.Direction)
	}
	return p, nil
}

func (r *Registry) spendingSummary(ctx context.Context, m map[string]any) (any, error) {
	p, err := parseSpendingSummaryParams(m)
	if err != nil {
		return nil, err
	}

	now := r.now()
	start, end, err := period.Resolve(p.Period, now)
	if err != nil {
		return nil, err
	}

	summary, err := r.payments.TotalByPeriod(ctx, start, end, p.Direction, p.Phone)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"total":      jsonValue(summary.Total),
		"count":      summary.Count,
		"period":     period.Label(p.Period, now),
		"start_date": jsonValue(start),
		"end_date":   jsonValue(end),
		"direction":  p.Direction.String(),
	}, nil
}

// paymentsByRecipientParams carries the validated inputs of
// get_payments_by_recipient.
type paymentsByRecipientParams struct {
	Name  string
	Limit int
	Phone string
}

func parsePaymentsByRecipientParams(m map[string]any) (paymentsByRecipientParams, error) {
	p := paymentsByRecipientParams{
		Name:  stringParam(m, "name", ""),
		Limit: intParam(m, "limit", 10),
		Phone: stringParam(m, phoneParam, ""),
	}
	if p.Name == "" {
		return p, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if p.Limit < 1 || p.Limit > 100 {
		return p, fmt.Errorf("%w: limit must be between 1 and 100", ErrInvalidArgument)
	}
	return p, nil
}

func (r *Registry) paymentsByRecipient(ctx context.Context, m map[string]any) (any, error) {
	p, err := parsePaymentsByRecipientParams(m)
	if err != nil {
		return nil, err
	}

	payments, err := r.payments.ListByRecipientName(ctx, p.Name, p.Limit, p.Phone)
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0, len(payments))
	for _, payment := range payments {
		// Ordering comes from the stored settlement column; unsettled
		// rows fall back to creation time for display only.
		date := payment.PaidAt
		if date == nil {
			created := payment.CreatedAt
			date = &created
		}
		result = append(result, map[string]any{
			"name":           jsonValue(payment.Name),
			"amount":         jsonValue(payment.Amount),
			"date":           jsonValue(date),
			"direction":      payment.Direction.String(),
			"transaction_id": payment.TransactionID,
		})
	}
	return result, nil
}

// topRecipientsParams carries the validated inputs of get_top_recipients.
type topRecipientsParams struct {
	Direction domain.Direction
	Limit     int
	Period    period.Token
	Phone     string
}

func parseTopRecipientsParams(m map[string]any) (topRecipientsParams, error) {
	p := topRecipientsParams{
		Direction: domain.Direction(stringParam(m, "direction", string(domain.DirectionOutgoing))),
		Limit:     intParam(m, "limit", 5),
		Period:    period.Token(stringParam(m, "period", string(period.AllTime))),
		Phone:     stringParam(m, phoneParam, ""),
	}
	if p.Limit < 1 || p.Limit > 20 {
		return p, fmt.Errorf("%w: limit must be between 1 and 20", ErrInvalidArgument)
	}
	if !p.Direction.IsValid() {
		return p, fmt.Errorf("%w: direction must be one of outgoing, incoming, all, got %q",
			ErrInvalidArgument, p.Direction)
	}
	if !p.Period.IsValid() {
		return p, invalidPeriodErr(p.Period)
	}
	return p, nil
}

func (r *Registry) topRecipients(ctx context.Context, m map[string]any) (any, error) {
	p, err := parseTopRecipientsParams(m)
	if err != nil {
		return nil, err
	}

	start, end, err := period.Resolve(p.Period, r.now())
	if err != nil {
		return nil, err
	}

	recipients, err := r.payments.TopRecipients(ctx, p.Direction, start, end, p.Limit, p.Phone)
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0, len(recipients))
	for _, recipient := range recipients {
		result = append(result, map[string]any{
			"name":    recipient.Name,
			"total":   jsonValue(recipient.Total),
			"count":   recipient.Count,
			"average": jsonValue(recipient.Average),
		})
	}
	return result, nil
}

// spendingByCategoryParams carries the validated inputs of
// get_spending_by_category.
type spendingByCategoryParams struct {
	Period period.Token
	Phone  string
}

func parseSpendingByCategoryParams(m map[string]any) (spendingByCategoryParams, error) {
	p := spendingByCategoryParams{
		Period: period.Token(stringParam(m, "period", string(period.ThisMonth))),
		Phone:  stringParam(m, phoneParam, ""),
	}
	if !p.Period.IsValid() {
		return p, invalidPeriodErr(p.Period)
	}
	return p, nil
}

func (r *Registry) spendingByCategory(ctx context.Context, m map[string]any) (any, error) {
	p, err := parseSpendingByCategoryParams(m)
	if err != nil {
		return nil, err
	}

	start, end, err := period.Resolve(p.Period, r.now())
	if err != nil {
		return nil, err
	}

	categories, err := r.payments.SpendingBySender(ctx, start, end, p.Phone)
	if err != nil {
		return nil, err
	}

	grandTotal := decimalSum(categories)

	result := make([]map[string]any, 0, len(categories))
	for _, cat := range categories {
		pct := 0.0
		if grandTotal.IsPositive() {
			pct = cat.Total.Div(grandTotal).Mul(oneHundred).InexactFloat64()
		}
		result = append(result, map[string]any{
			"sender_id":  cat.SenderID,
			"total":      jsonValue(cat.Total),
			"count":      cat.Count,
			"percentage": pct,
		})
	}
	return result, nil
}

// paymentTrendsParams carries the validated inputs of get_payment_trends.
type paymentTrendsParams struct {
	Granularity domain.Granularity
	Limit       int
	Phone       string
}

func parsePaymentTrendsParams(m map[string]any) (paymentTrendsParams, error) {
	p := paymentTrendsParams{
		Granularity: domain.Granularity(stringParam(m, "granularity", string(domain.GranularityMonth))),
		Limit:       intParam(m, "limit", 12),
		Phone:       stringParam(m, phoneParam, ""),
	}
	if p.Limit < 1 || p.Limit > 365 {
		return p, fmt.Errorf("%w: limit must be between 1 and 365", ErrInvalidArgument)
	}
	if !p.Granularity.IsValid() {
		return p, fmt.Errorf("%w: granularity must be one of day, week, month, got %q",
			ErrInvalidArgument, p.Granularity)
	}
	return p, nil
}

func (r *Registry) paymentTrends(ctx context.Context, m map[string]any) (any, error) {
	p, err := parsePaymentTrendsParams(m)
	if err != nil {
		return nil, err
	}

	trends, err := r.payments.TrendData(ctx, p.Granularity, p.Limit, p.Phone)
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0, len(trends))
	for _, point := range trends {
		result = append(result, map[string]any{
			"period":  point.Period,
			"total":   jsonValue(point.Total),
			"count":   point.Count,
			"average": jsonValue(point.Average),
		})
	}
	return result, nil
}

func invalidPeriodErr(t period.Token) error {
	return fmt.Errorf(
		"%w: unknown period %q (valid options: this_month, last_month, this_year, last_year, all_time)",
		ErrInvalidArgument, t)
}
