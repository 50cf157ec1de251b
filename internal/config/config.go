// Package config loads process configuration from the environment and
// builds the shared logger.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is everything the commands need to wire the storyteller
type Config struct {
	GRPCPort        int           `env:"STORYTELLER_GRPC_PORT" envDefault:"50051"`
	Store           string        `env:"STORYTELLER_STORE" envDefault:"sqlite"`
	RedisAddr       string        `env:"STORYTELLER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB         int           `env:"STORYTELLER_REDIS_DB" envDefault:"0"`
	RedisTLS        bool          `env:"STORYTELLER_REDIS_TLS" envDefault:"false"`
	RedisPoolSize   int           `env:"STORYTELLER_REDIS_POOL_SIZE" envDefault:"10"`
	SQLitePath      string        `env:"STORYTELLER_SQLITE_PATH" envDefault:"storyteller.db"`
	ContentDir      string        `env:"STORYTELLER_CONTENT_DIR"`
	LogLevel        string        `env:"STORYTELLER_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"STORYTELLER_LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"STORYTELLER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.InvalidField("GRPCPort", "must be between 1 and 65535")
	}
	switch c.Store {
	case StoreRedis:
		if c.RedisAddr == "" {
			vb.RequiredField("RedisAddr")
		}
		if c.RedisDB < 0 {
			vb.InvalidField("RedisDB", "must not be negative")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			vb.RequiredField("SQLitePath")
		}
	default:
		vb.InvalidField("Store", "must be redis or sqlite")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("LogLevel", "must be debug, info, warn or error")
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		vb.InvalidField("LogFormat", "must be text or json")
	}
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("ShutdownTimeout", "must be positive")
	}

	return vb.Build()
}

// Logger builds a slog logger writing to w
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// InstallLogger builds the logger and makes it the process default
func (c *Config) InstallLogger(w io.Writer) *slog.Logger {
	logger := c.Logger(w)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
