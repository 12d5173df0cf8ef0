// Package payment exposes the paginated payments listing endpoint.
package payment

import (
	"github.com/gofiber/fiber/v2"
	paymentsvc "github.com/njagi/paylens/pkg/service/payment"
	"github.com/njagi/paylens/webapi/common"
)

// Routes registers the payment endpoints.
func Routes(app *fiber.App, paymentSvc *paymentsvc.Service) {
	group := app.Group("/api/payments")
	group.Get("/", List(paymentSvc))
}

// List returns a Fiber handler serving one page of payments.
// @Summary List payments
// @Description Get a paginated list of payment records
// @Tags payments
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 50, max 100)"
// @Success 200 {object} dto.Page[dto.PaymentRead]
// @Failure 500 {object} common.ProblemDetails
// @Router /api/payments [get]
func List(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		size := c.QueryInt("size", 50)

		result, err := paymentSvc.List(c.Context(), page, size)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list payments", err)
		}
		return c.Status(fiber.StatusOK).JSON(result)
	}
}
