// Package financial exposes the natural-language payment question endpoints.
package financial

import (
	"github.com/gofiber/fiber/v2"
	agentsvc "github.com/njagi/paylens/pkg/service/agent"
	"github.com/njagi/paylens/webapi/common"
)

// AskRequest is the financial question request body. ConsumerPhoneNumber,
// when present, scopes every tool call to that consumer's payments.
type AskRequest struct {
	Question            string `json:"question" validate:"required"`
	ConsumerPhoneNumber string `json:"consumer_phone_number"`
}

// Routes registers the financial agent endpoints.
func Routes(app *fiber.App, agentSvc *agentsvc.Service) {
	group := app.Group("/api/financial")
	group.Post("/ask", Ask(agentSvc))
	group.Post("/ask/text", AskText(agentSvc))
}

// Ask returns a Fiber handler answering a financial question with the
// structured answer, including every tool call made.
// @Summary Ask a financial question
// @Description Answer a natural-language question about payment data
// @Tags financial
// @Accept json
// @Produce json
// @Success 200 {object} dto.FinancialAnswer
// @Failure 400 {object} common.ProblemDetails
// @Router /api/financial/ask [post]
func Ask(agentSvc *agentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AskRequest](c)
		if input == nil {
			return err
		}

		answer := agentSvc.Ask(c.Context(), input.Question, input.ConsumerPhoneNumber)
		return c.Status(fiber.StatusOK).JSON(answer)
	}
}

// AskText returns a Fiber handler answering a financial question as plain
// conversational prose, with the structured detail rewritten by a second
// LLM pass.
// @Summary Ask a financial question, prose answer
// @Description Answer a natural-language question as conversational text
// @Tags financial
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} common.ProblemDetails
// @Router /api/financial/ask/text [post]
func AskText(agentSvc *agentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AskRequest](c)
		if input == nil {
			return err
		}

		answer := agentSvc.Ask(c.Context(), input.Question, input.ConsumerPhoneNumber)
		text := agentSvc.FormatNaturally(c.Context(), answer)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"answer": text})
	}
}
