package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/triagebot/internal/config"
	"github.com/sandevgo/triagebot/internal/service/triage"
	"github.com/sandevgo/triagebot/pkg/log"
)

// ReadLine is an interactive terminal chat. Each run is one session.
type ReadLine struct {
	cfg       *config.AppConfig
	triage    *triage.Service
	rl        *readline.Instance
	sessionID string
}

func NewReadLine(triageSvc *triage.Service, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		triage: triageSvc,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("triage chat started. Describe your symptoms; type 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		result, err := r.triage.Turn(ctx, r.sessionID, line)
		if err != nil {
			logger.Error().Err(err).Msg("turn failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}
		r.sessionID = result.SessionID

		if len(result.Matches) > 0 {
			fmt.Fprintln(r.rl.Stdout(), "[Local matches]")
			for _, m := range result.Matches {
				fmt.Fprintf(r.rl.Stdout(), "  %s — %d%% (%s)\n",
					m.Condition.Name, int(math.Round(m.Score*100)), m.Condition.Severity)
			}
		}
		fmt.Fprintf(r.rl.Stdout(), "%s\n", result.Reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
