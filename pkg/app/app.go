// Package app wires repositories, the LLM provider and the services into
// one application value consumed by the HTTP layer and the CLI tools.
package app

import (
	"log/slog"

	"github.com/njagi/paylens/pkg/ai"
	"github.com/njagi/paylens/pkg/config"
	"github.com/njagi/paylens/pkg/repository"
	"github.com/njagi/paylens/pkg/service/agent"
	"github.com/njagi/paylens/pkg/service/chat"
	"github.com/njagi/paylens/pkg/service/payment"
	"github.com/njagi/paylens/pkg/tools"
)

// Deps contains the externally constructed dependencies the services
// are built from.
type Deps struct {
	Payments repository.Payment
	AIClient ai.Client
	Logger   *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	ChatService    *chat.Service
	AgentService   *agent.Service
	PaymentService *payment.Service
}

func New(deps *Deps, cfg *config.App) *App {
	registry := tools.New(deps.Payments, deps.Logger)
	return &App{
		Deps:           deps,
		Config:         cfg,
		ChatService:    chat.New(deps.AIClient, deps.Logger),
		AgentService:   agent.New(deps.AIClient, registry, deps.Logger),
		PaymentService: payment.New(deps.Payments, deps.Logger),
	}
}
