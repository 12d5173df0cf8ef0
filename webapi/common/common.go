// Package common holds the response envelope, RFC 9457 problem details
// and request binding helpers shared by the route packages.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/njagi/paylens/pkg/ai"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ProblemDetailsJSON writes a problem response for err, deriving the
// status from ErrorToStatusCode unless an explicit status is passed.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, status ...int) error {
	code := fiber.StatusInternalServerError
	if err != nil {
		code = ErrorToStatusCode(err)
	}
	if len(status) > 0 {
		code = status[0]
	}
	var detail any
	if err != nil {
		detail = err.Error()
	}
	return ErrorResponseJSON(c, code, title, detail)
}

// ErrorToStatusCode maps service errors to HTTP status codes. Provider
// failures carry their own status; anything unrecognized is a 500.
func ErrorToStatusCode(err error) int {
	var aiErr *ai.Error
	if errors.As(err, &aiErr) {
		return aiErr.Status
	}
	return fiber.StatusInternalServerError
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes an
// error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error()) //nolint:errcheck
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error()) //nolint:errcheck
		return nil, err
	}
	return &input, nil
}
