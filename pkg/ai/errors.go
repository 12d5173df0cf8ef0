package ai

import "fmt"

// ErrorCode is a stable machine-readable identifier for a provider failure.
type ErrorCode string

const (
	CodeInsufficientBalance ErrorCode = "insufficient_balance"
	CodeRateLimitExceeded   ErrorCode = "rate_limit_exceeded"
	CodeInvalidAPIKey       ErrorCode = "invalid_api_key"
	CodeServiceUnavailable  ErrorCode = "service_unavailable"
	CodeRequestTimeout      ErrorCode = "request_timeout"
	CodeAPIError            ErrorCode = "api_error"
	CodeInternalError       ErrorCode = "internal_error"
)

// Error is the closed provider failure kind. Status is the HTTP status the
// boundary should answer with; for CodeAPIError it carries the provider's
// own status.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ai: %s: %s", e.Code, e.Message)
}

// ErrInsufficientBalance builds the 402 insufficient-balance failure.
func ErrInsufficientBalance() *Error {
	return &Error{
		Code:    CodeInsufficientBalance,
		Status:  402,
		Message: "AI service has insufficient balance. Please contact support.",
	}
}

// ErrRateLimitExceeded builds the 429 rate-limited failure.
func ErrRateLimitExceeded() *Error {
	return &Error{
		Code:    CodeRateLimitExceeded,
		Status:  429,
		Message: "AI service rate limit exceeded. Please try again later.",
	}
}

// ErrInvalidAPIKey builds the invalid-credentials failure. Kept at 500 so
// credential details never leak to API consumers.
func ErrInvalidAPIKey() *Error {
	return &Error{
		Code:    CodeInvalidAPIKey,
		Status:  500,
		Message: "AI service configuration error. Please contact support.",
	}
}

// ErrServiceUnavailable builds the 503 unavailable failure.
func ErrServiceUnavailable(msg string) *Error {
	if msg == "" {
		msg = "AI service is temporarily unavailable. Please try again later."
	}
	return &Error{Code: CodeServiceUnavailable, Status: 503, Message: msg}
}

// ErrRequestTimeout builds the 504 timeout failure.
func ErrRequestTimeout() *Error {
	return &Error{
		Code:    CodeRequestTimeout,
		Status:  504,
		Message: "AI service request timed out. Please try again.",
	}
}

// ErrAPIError builds a failure carrying the provider's own status code.
func ErrAPIError(status int, msg string) *Error {
	return &Error{Code: CodeAPIError, Status: status, Message: msg}
}

// ErrInternal builds the catch-all 500 failure.
func ErrInternal(msg string) *Error {
	if msg == "" {
		msg = "An unexpected error occurred while processing your request."
	}
	return &Error{Code: CodeInternalError, Status: 500, Message: msg}
}
