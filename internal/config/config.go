// Package config loads the application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds the application configuration parameters.
type Config struct {
	EnvBotToken       string `env:"BOT_TOKEN"`                               // Telegram bot token, required
	EnvLogsLevel      string `env:"LOG_LEVEL" envDefault:"info"`             // logrus level
	EnvLogFileName    string `env:"LOG_FILE_NAME" envDefault:"calobot.log"`  // rotating log file
	EnvLogMaxSizeMB   int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`         // rotate after this many megabytes
	EnvLogMaxBackups  int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`          // rotated files to keep
	EnvLogMaxAgeDays  int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`        // days to keep rotated files
	EnvTimezone       string `env:"TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`  // schedule timezone
	EnvHTTPAddr       string `env:"HTTP_ADDR" envDefault:":8099"`            // status server listen address
	EnvWalkResetDaily bool   `env:"WALK_RESET_DAILY" envDefault:"true"`      // re-ask the walk question every day

	Location *time.Location // resolved from EnvTimezone, not read from the environment
}

// NewConfig parses the environment into a Config. A .env file is loaded
// first if present. A missing BOT_TOKEN or an unknown timezone is an error;
// the caller is expected to treat it as fatal.
func NewConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.EnvBotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	loc, err := time.LoadLocation(cfg.EnvTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.EnvTimezone, err)
	}
	cfg.Location = loc
	return cfg, nil
}
