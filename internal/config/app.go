package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/triagebot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"TRIAGE_RUNTIME_PATH" envDefault:".triagebot"`
	// Allow selecting the completion provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"`

	// Transport flags
	HTTPPort       int  `env:"HTTP_PORT" envDefault:"8080"`
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"false"`

	// Context management
	HistoryTokenBudget int `env:"HISTORY_TOKEN_BUDGET" envDefault:"6000"`

	// Upper bound on one completion call; on expiry the turn fails as
	// upstream-unavailable.
	CompletionTimeoutSec int `env:"COMPLETION_TIMEOUT_SEC" envDefault:"90"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "triagebot.db")
}
