package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, read from SOTORA_* variables.
type Config struct {
	// ConfigDir holds key_binds.yaml. Empty means <user config dir>/sotora.
	ConfigDir string `env:"SOTORA_CONFIG_DIR"`

	// Environment selects the log format: "production" logs JSON.
	Environment string `env:"SOTORA_ENV" envDefault:"development"`

	LogLevel slog.Level `env:"SOTORA_LOG_LEVEL" envDefault:"info"`

	// LogFile receives all logs; the terminal is owned by the game screen.
	LogFile string `env:"SOTORA_LOG_FILE" envDefault:"sotora.log"`

	// TickRate is the number of simulation ticks per second.
	TickRate int `env:"SOTORA_TICK_RATE" envDefault:"30"`

	// WatchKeyBinds reloads key_binds.yaml when it changes on disk.
	WatchKeyBinds bool `env:"SOTORA_WATCH_KEYBINDS" envDefault:"true"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Environment:   "development",
		LogLevel:      slog.LevelInfo,
		LogFile:       "sotora.log",
		TickRate:      30,
		WatchKeyBinds: true,
	}
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option ranges.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return errors.New("SOTORA_TICK_RATE must be between 1 and 240")
	}
	return nil
}

// TickInterval is the wall-clock time between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
