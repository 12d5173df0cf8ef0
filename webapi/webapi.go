// Package webapi provides the HTTP boundary for the payment insights
// service. It is organized into sub-packages per domain:
// - chat: direct LLM passthrough endpoint
// - financial: natural-language financial agent endpoints
// - payment: paginated payments listing
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/njagi/paylens/pkg/app"
	chatweb "github.com/njagi/paylens/webapi/chat"
	"github.com/njagi/paylens/webapi/common"
	financialweb "github.com/njagi/paylens/webapi/financial"
	paymentweb "github.com/njagi/paylens/webapi/payment"
)

// SetupApp initializes Fiber with custom configuration.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return common.ProblemDetailsJSON(c, fiberErr.Message, err, fiberErr.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Uses X-Forwarded-For header when behind a proxy, falling back to
	// X-Real-IP and then the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(
				c,
				fiber.StatusTooManyRequests,
				"Too Many Requests",
				"rate limit exceeded",
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("PayLens API is running! 🚀")
		},
	)

	chatweb.Routes(fiberApp, a.ChatService)
	financialweb.Routes(fiberApp, a.AgentService)
	paymentweb.Routes(fiberApp, a.PaymentService)
	return fiberApp
}
