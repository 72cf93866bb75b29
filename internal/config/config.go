// Package config loads matrixcalc settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Log encoder names accepted in MATRIXCALC_LOG_FORMAT.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalid reports a setting that parsed but is out of its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the CLI settings. Flags override these after Load.
type Config struct {
	LogLevel  zapcore.Level `env:"MATRIXCALC_LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"MATRIXCALC_LOG_FORMAT" envDefault:"console"`
	// MaxOrder bounds det/complements/inverse; Laplace expansion is O(n!).
	MaxOrder int  `env:"MATRIXCALC_MAX_ORDER" envDefault:"10"`
	Strict   bool `env:"MATRIXCALC_STRICT" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that the env tags cannot express.
func (c Config) Validate() error {
	if c.MaxOrder < 1 {
		return fmt.Errorf("%w: max order %d must be >= 1", ErrInvalid, c.MaxOrder)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want %s or %s)", ErrInvalid, c.LogFormat, FormatConsole, FormatJSON)
	}
	return nil
}
