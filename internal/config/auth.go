package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
)

// Auth holds the shared HMAC secret for the API bearer tokens. An
// empty secret disables authentication entirely.
type Auth struct {
	Secret        string        `env:"API_TOKEN_SECRET"`
	TokenLifetime time.Duration `env:"API_TOKEN_LIFETIME" envDefault:"24h"`
}

func NewAuth() (*Auth, error) {
	var cfg Auth
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse auth env: %w", err)
	}
	return &cfg, nil
}

func (a Auth) Enabled() bool {
	return a.Secret != ""
}

func (a Auth) Keyfunc(t *jwt.Token) (any, error) {
	return []byte(a.Secret), nil
}

// Sign issues a token accepted by the auth middleware; used by
// operators to mint API credentials.
func (a Auth) Sign(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.TokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.Secret))
}

// Verify parses and validates a compact token against the secret.
func (a Auth) Verify(raw string) error {
	_, err := jwt.Parse(raw, a.Keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	return err
}
