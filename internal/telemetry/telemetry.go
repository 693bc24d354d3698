// Package telemetry configures the engine's structured logger: a dual
// file+stdout slog.Logger driven by environment variables via caarlos0/env.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config is populated from the environment. LogPath left empty disables the
// file sink and logs to stdout only.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	JSON      bool   `env:"LOG_JSON" envDefault:"true"`
	AddSource bool   `env:"LOG_SOURCE" envDefault:"false"`
	LogPath   string `env:"LOG_PATH" envDefault:""`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("telemetry: parse config: %w", err)
	}
	return &cfg, nil
}

// New builds the logger described by cfg. When cfg.LogPath is set, the
// returned closer must be closed by the caller on shutdown; otherwise it is
// a no-op.
func New(cfg *Config) (*slog.Logger, io.Closer, error) {
	if cfg == nil {
		return slog.Default(), nopCloser{}, nil
	}

	var writer io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("telemetry: open log file %q: %w", cfg.LogPath, err)
		}
		writer = io.MultiWriter(os.Stdout, f)
		closer = f
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.LogLevel),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler), closer, nil
}

// SetGlobal builds a logger from the environment and installs it as the
// slog default, returning its closer.
func SetGlobal() (io.Closer, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}
	logger, closer, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closer, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type loggerKey struct{}

// WithContext attaches logger to ctx for retrieval via FromContext.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached by WithContext, or slog.Default
// when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// RunStage logs entry/exit of a named pro forma stage (e.g. "depreciation",
// "disposition") at debug level, with any error promoted to an error log.
func RunStage(ctx context.Context, stage string, fn func() error) error {
	logger := FromContext(ctx)
	logger.Debug("stage started", "stage", stage)
	if err := fn(); err != nil {
		logger.Error("stage failed", "stage", stage, "error", err)
		return err
	}
	logger.Debug("stage completed", "stage", stage)
	return nil
}
