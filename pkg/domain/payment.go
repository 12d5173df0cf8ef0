// Package domain holds the closed value sets shared by the payment
// queries, the tool registry, and the HTTP layer.
package domain

import "fmt"

// Direction classifies the flow of a payment relative to the consumer.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"

	// DirectionAll is a query-side wildcard, never stored on a row.
	DirectionAll Direction = "all"
)

// ErrInvalidDirection is wrapped for direction values outside the closed set.
var ErrInvalidDirection = fmt.Errorf("invalid direction")

// IsValid reports whether d is usable as a query filter.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionOutgoing, DirectionIncoming, DirectionAll:
		return true
	}
	return false
}

// String returns the direction as a string.
func (d Direction) String() string { return string(d) }

// CountryCode is an ISO alpha-2 country code from the supported subset.
type CountryCode string

const (
	CountryKE CountryCode = "KE"
	CountryNG CountryCode = "NG"
	CountryCI CountryCode = "CI"
	CountryGH CountryCode = "GH"
)

// Granularity is the bucketing unit for trend queries.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ErrInvalidGranularity is wrapped for granularities outside the closed set.
var ErrInvalidGranularity = fmt.Errorf("invalid granularity")

// IsValid reports whether g belongs to the closed set.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// String returns the granularity as a string.
func (g Granularity) String() string { return string(g) }
