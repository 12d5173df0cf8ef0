// Package chat exposes the direct LLM passthrough endpoint.
package chat

import (
	"github.com/gofiber/fiber/v2"
	chatsvc "github.com/njagi/paylens/pkg/service/chat"
	"github.com/njagi/paylens/webapi/common"
)

// ChatRequest is the passthrough request body.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Routes registers the AI chat endpoints.
func Routes(app *fiber.App, chatSvc *chatsvc.Service) {
	group := app.Group("/api/ai")
	group.Post("/chat", Chat(chatSvc))
}

// Chat returns a Fiber handler relaying one message to the LLM provider.
// @Summary Send a chat message
// @Description Forward a single message to the LLM provider and return its reply
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 402 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /api/ai/chat [post]
func Chat(chatSvc *chatsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ChatRequest](c)
		if input == nil {
			return err
		}

		reply, err := chatSvc.Send(c.Context(), input.Message)
		if err != nil {
			return common.ProblemDetailsJSON(c, "AI service error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Chat completed", fiber.Map{
			"message": reply,
		})
	}
}
