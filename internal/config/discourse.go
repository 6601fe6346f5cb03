package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/nutshell/pkg/log"
)

type DiscourseConfig struct {
	BaseURL string `env:"DISCOURSE_BASE_URL" envDefault:"https://discuss.python.org"`
	// Optional; anonymous reads work for public topics.
	APIKey string `env:"DISCOURSE_API_KEY"`
}

func NewDiscourseConfig(ctx context.Context) *DiscourseConfig {
	c := &DiscourseConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse discourse config")
	}
	return c
}
