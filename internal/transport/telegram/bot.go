package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/triagebot/internal/config"
	"github.com/sandevgo/triagebot/internal/service/triage"
	"github.com/sandevgo/triagebot/pkg/conv"
	"github.com/sandevgo/triagebot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot maps one Telegram chat onto one triage session. /new starts a fresh
// session for the chat.
type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	triage  *triage.Service
	ownerID int64

	mu       sync.Mutex
	sessions map[int64]string
}

func NewBot(ctx context.Context, cfg *config.TelegramConfig, triageSvc *triage.Service) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		triage:   triageSvc,
		ownerID:  cfg.OwnerID,
		sessions: make(map[int64]string),
	}

	// Use context from signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/new", bot.handleNew)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleNew(c tele.Context) error {
	b.mu.Lock()
	delete(b.sessions, c.Chat().ID)
	b.mu.Unlock()
	return c.Send("Started a new consultation. Describe your symptoms.")
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	chatID := c.Chat().ID

	b.mu.Lock()
	sessionID := b.sessions[chatID]
	b.mu.Unlock()

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	result, err := b.triage.Turn(ctx, sessionID, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("turn failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	b.mu.Lock()
	b.sessions[chatID] = result.SessionID
	b.mu.Unlock()

	return b.sendMarkdown(ctx, c, result.Reply)
}

const maxTelegramMsgLen = 4000 // Safety margin below 4096

// sendMarkdown converts the assistant markdown to Telegram HTML and sends it
// in chunks if needed.
func (b *Bot) sendMarkdown(ctx context.Context, c tele.Context, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		if err := c.Send(chunk, tele.ModeHTML); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitHTML splits text into chunks respecting Telegram's limit. It tries to
// split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
