// Package initializer constructs the application dependencies from
// configuration: logger, database pool, payment store and LLM client.
package initializer

import (
	"fmt"

	"github.com/njagi/paylens/infra"
	"github.com/njagi/paylens/infra/provider/deepseek"
	paymentrepo "github.com/njagi/paylens/infra/repository/payment"
	"github.com/njagi/paylens/pkg/app"
	"github.com/njagi/paylens/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &app.Deps{
		Payments: paymentrepo.New(db),
		AIClient: deepseek.New(cfg.AI, logger),
		Logger:   logger,
	}, nil
}
