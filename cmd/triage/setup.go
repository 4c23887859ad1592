package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/triagebot/internal/config"
	"github.com/sandevgo/triagebot/internal/core"
	"github.com/sandevgo/triagebot/internal/corpus"
	"github.com/sandevgo/triagebot/internal/providers/llm"
	"github.com/sandevgo/triagebot/internal/service/session"
	"github.com/sandevgo/triagebot/internal/service/triage"
	"github.com/sandevgo/triagebot/internal/storage/sqlite"
	"github.com/sandevgo/triagebot/internal/transport/cli"
	triagehttp "github.com/sandevgo/triagebot/internal/transport/http"
	"github.com/sandevgo/triagebot/internal/transport/telegram"
	"github.com/sandevgo/triagebot/pkg/log"
	"github.com/sandevgo/triagebot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, store, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Completion provider
	completer, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Services
	sessions := session.NewManager(store)
	triageSvc := triage.NewService(triage.Config{
		CompletionTimeout:  time.Duration(appCfg.CompletionTimeoutSec) * time.Second,
		HistoryTokenBudget: appCfg.HistoryTokenBudget,
	}, sessions, completer, corpus.All())

	// 5. Transports
	transports, err := initTransports(ctx, appCfg, triageSvc, sessions)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.SessionStore, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewSessionRepo(db), nil
}

func initTransports(ctx context.Context, cfg *config.AppConfig, triageSvc *triage.Service, sessions *session.Manager) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableHTTP {
		services = append(services, triagehttp.NewServer(ctx, cfg.HTTPPort, triageSvc, sessions))
	}

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, triageSvc)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(triageSvc, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
