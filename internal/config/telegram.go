package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/nutshell/pkg/log"
)

type TelegramConfig struct {
	Token   string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"TELEGRAM_OWNER_ID,required"`
	// The extracted topic text file the bot answers questions about.
	TopicFile string `env:"NUTSHELL_TOPIC_FILE,required,notEmpty"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse telegram config")
	}
	return c
}
