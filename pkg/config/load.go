package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the optional .env file(s) and then processes the environment
// into an App config. Missing .env files are logged and ignored; the
// environment alone may satisfy the configuration.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found, using system environment variables")
		}
	} else {
		for _, path := range envFilePath {
			if err := godotenv.Load(path); err != nil {
				logger.Warn("Environment file not loaded", "path", path, "error", err)
			}
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"ai_base_url", cfg.AI.BaseURL,
		"ai_model", cfg.AI.Model,
		"ai_api_key", maskValue(cfg.AI.APIKey),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
