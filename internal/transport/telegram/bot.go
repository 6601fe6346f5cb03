// Package telegram exposes the query path as an owner-only chat bot:
// any text message is answered against the configured topic file.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/nutshell/internal/config"
	"github.com/sandevgo/nutshell/internal/service/query"
	"github.com/sandevgo/nutshell/pkg/conv"
	"github.com/sandevgo/nutshell/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	topicFile string
	svc       *query.Service
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	svc *query.Service,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		topicFile: cfg.TopicFile,
		svc:       svc,
		ownerID:   cfg.OwnerID,
	}

	// Carry the signal context (with logger) into handlers
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Only the owner may query
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", func(c tele.Context) error {
		return c.Send(fmt.Sprintf("Ask me anything about %s.", bot.topicFile))
	})
	b.Handle(tele.OnText, bot.handleQuestion)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("topic_file", b.topicFile).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleQuestion(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	_ = c.Notify(tele.Typing)

	rec, err := b.svc.AskFile(ctx, b.topicFile, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("query failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(rec.Response)))
	if html == "" {
		html = "(empty answer)"
	}
	if err := c.Send(html, tele.ModeHTML); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram message")
		return err
	}

	logger.Info().Str("interaction_id", rec.ID).Msg("question answered")
	return nil
}
