// Package config reads service configuration from the environment,
// one concern per struct.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type App struct {
	Addr        string `env:"APP_ADDR" envDefault:":8080"`
	Development bool   `env:"DEVELOPMENT"`
}

func NewApp() (*App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse app env: %w", err)
	}
	return &cfg, nil
}
