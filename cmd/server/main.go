package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/njagi/paylens/infra/initializer"
	"github.com/njagi/paylens/pkg/app"
	"github.com/njagi/paylens/pkg/config"
	"github.com/njagi/paylens/webapi"
)

// @title PayLens API
// @version 1.0.0
// @description Payment insights and AI agent API
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
