package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/triagebot/internal/config"
	"github.com/sandevgo/triagebot/internal/core"
)

// NewProvider builds the configured completion provider. Credentials and
// model selection are configuration concerns; the core never sees them.
func NewProvider(ctx context.Context, appCfg *config.AppConfig) (core.Completer, error) {
	switch appCfg.LLMProvider {
	case "openai":
		cfg := config.NewOpenAIConfig(ctx)
		return NewOpenAI(cfg.APIKey, cfg.Model), nil
	case "openrouter":
		cfg := config.NewOpenRouterConfig(ctx)
		return NewOpenRouter(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", appCfg.LLMProvider)
	}
}
