package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is read, when present, before the environment is parsed.
const DefaultDotEnvFile = ".env"

// Config holds all application configuration.
type Config struct {
	// Storage
	ExpenseFile string `env:"EXPENSE_FILE" envDefault:"expenses.json" validate:"required"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"warn"    validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`

	// Metrics (optional - leave empty to disable)
	MetricsTextfile string `env:"METRICS_TEXTFILE" envDefault:""`
}

// Load loads configuration from environment variables. Variables from the
// given dotenv files (or DefaultDotEnvFile) fill in anything not already set;
// missing dotenv files are ignored.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{DefaultDotEnvFile}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
