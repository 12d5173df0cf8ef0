package tools

import (
	"time"

	"github.com/njagi/paylens/pkg/dto"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// jsonValue converts a tool result value into its JSON-ready form:
// decimals become floats, timestamps become RFC 3339 text, nil pointers
// become JSON null, and containers are transformed recursively. The value
// variants are a closed set; anything else passes through unchanged.
func jsonValue(v any) any {
	switch t := v.(type) {
	case decimal.Decimal:
		return t.InexactFloat64()
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(time.RFC3339)
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonValue(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			out = append(out, jsonValue(val))
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, 0, len(t))
		for _, m := range t {
			out = append(out, jsonValue(m).(map[string]any))
		}
		return out
	default:
		return v
	}
}

func decimalSum(categories []dto.SenderSpend) decimal.Decimal {
	sum := decimal.Zero
	for _, cat := range categories {
		sum = sum.Add(cat.Total)
	}
	return sum
}
