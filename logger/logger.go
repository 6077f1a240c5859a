package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config represents logger configuration
type Config struct {
	Level       string // debug, info, warn, error
	Environment string // development, production, test
}

// Init configures the global zerolog logger.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stdout
	if cfg.Environment == "development" || cfg.Environment == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Caller().Logger()
}

type contextKey string

const ContextKey contextKey = "logger"

// FromContext returns the request logger or the global one.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ContextKey).(*zerolog.Logger); ok && l != nil {
			return l
		}
	}
	return &log.Logger
}

func WithContext(ctx context.Context, l *zerolog.Logger) context.Context {
	return context.WithValue(ctx, ContextKey, l)
}
