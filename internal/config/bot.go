package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Bot struct {
	Token   string `env:"DISCORD_TOKEN,required"`
	Prefix  string `env:"BOT_PREFIX" envDefault:"!mines"`
	LogFile string `env:"BOT_LOG_FILE"`
}

func NewBot() (*Bot, error) {
	var cfg Bot
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse bot env: %w", err)
	}
	return &cfg, nil
}
