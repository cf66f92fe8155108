package commands

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment configuration for the CLI. Command line flags
// override environment variables, which override the built-in defaults.
type Config struct {
	Credentials string        `env:"GSHEET_KEYRING_CREDENTIALS"`
	Workdir     string        `env:"GSHEET_KEYRING_WORKDIR"`
	URL         string        `env:"GSHEET_KEYRING_URL"`
	Key         string        `env:"GSHEET_KEYRING_KEY"`
	Title       string        `env:"GSHEET_KEYRING_TITLE"`
	Window      time.Duration `env:"GSHEET_KEYRING_CACHE_WINDOW"`
}

// NewConfig returns a Config initialised from the built-in defaults and the
// GSHEET_KEYRING_* environment variables.
func NewConfig() (Config, error) {
	c := Config{
		Credentials: DEFAULT_CREDENTIALS,
		Workdir:     DEFAULT_WORKDIR,
	}

	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("invalid environment configuration (%v)", err)
	}

	return c, nil
}
