// internal/config/config.go
//
// Runtime configuration, parsed from environment variables. The word
// endpoint, default difficulty, and fallback behavior are injected here
// rather than hardcoded so tests can substitute doubles for the provider.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration for the service.
type Config struct {
	// Port the host adapter listens on.
	Port string `env:"PORT" envDefault:"5175"`
	// ClientOrigin is the single origin allowed by credentialed CORS.
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	// SessionSecret signs the session cookie JWT.
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`

	// WordEndpoint is the remote word service URL.
	WordEndpoint string `env:"WORD_ENDPOINT" envDefault:"http://localhost:9000/word"`
	// WordTimeout bounds the whole word fetch.
	WordTimeout time.Duration `env:"WORD_TIMEOUT" envDefault:"5s"`
	// Difficulty is the default difficulty sent to the word endpoint.
	Difficulty string `env:"DIFFICULTY" envDefault:"normal"`

	// AllowFixedAnswer permits /round/new to carry a caller-chosen answer.
	// Off by default; enable only for testing.
	AllowFixedAnswer bool `env:"ALLOW_FIXED_ANSWER" envDefault:"false"`

	// LogLevel is a zerolog level name (debug, info, warn, ...).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Parse loads Config from the environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
