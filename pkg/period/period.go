// Package period resolves symbolic time-window tokens into concrete
// datetime ranges.
//
// Invariants:
//   - A resolved range always covers whole days: start at 00:00:00 and
//     end at 23:59:59.999999 in naive local time.
//   - AllTime resolves to (nil, nil), meaning "no date filter".
package period

import (
	"fmt"
	"strconv"
	"time"
)

// Token identifies a symbolic time window relative to the current instant.
type Token string

const (
	ThisMonth Token = "this_month"
	LastMonth Token = "last_month"
	ThisYear  Token = "this_year"
	LastYear  Token = "last_year"
	AllTime   Token = "all_time"
)

// Tokens lists every valid period token.
var Tokens = []Token{ThisMonth, LastMonth, ThisYear, LastYear, AllTime}

// ErrUnknownToken is wrapped by Resolve and Label for unrecognized tokens.
var ErrUnknownToken = fmt.Errorf("unknown period")

// endOfDay is the intraday offset of a range's upper bound.
const endOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second + 999999*time.Microsecond

// IsValid reports whether the token belongs to the closed set.
func (t Token) IsValid() bool {
	switch t {
	case ThisMonth, LastMonth, ThisYear, LastYear, AllTime:
		return true
	}
	return false
}

// String returns the token as a string.
func (t Token) String() string { return string(t) }

// Resolve converts a token into start and end bounds relative to now.
// Both bounds are nil for AllTime. An unrecognized token yields an error
// wrapping ErrUnknownToken that names the token and the valid set.
func Resolve(t Token, now time.Time) (start, end *time.Time, err error) {
	switch t {
	case AllTime:
		return nil, nil, nil
	case ThisMonth:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-24 * time.Hour).Add(endOfDay)
		return &s, &e, nil
	case LastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		s := firstOfThis.AddDate(0, -1, 0)
		e := firstOfThis.Add(-24 * time.Hour).Add(endOfDay)
		return &s, &e, nil
	case ThisYear:
		s := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		e := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()).Add(endOfDay)
		return &s, &e, nil
	case LastYear:
		s := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
		e := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location()).Add(endOfDay)
		return &s, &e, nil
	default:
		return nil, nil, fmt.Errorf(
			"%w: %q (valid options: this_month, last_month, this_year, last_year, all_time)",
			ErrUnknownToken, t,
		)
	}
}

// Label returns a human-readable name for the window: "January 2026" for
// month tokens, the four-digit year for year tokens, "All Time" otherwise.
// Unknown tokens are returned unchanged.
func Label(t Token, now time.Time) string {
	switch t {
	case AllTime:
		return "All Time"
	case ThisMonth:
		return now.Format("January 2006")
	case LastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfThis.AddDate(0, -1, 0).Format("January 2006")
	case ThisYear:
		return strconv.Itoa(now.Year())
	case LastYear:
		return strconv.Itoa(now.Year() - 1)
	default:
		return string(t)
	}
}
