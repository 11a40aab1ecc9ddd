package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func NewLogger(cfg Config) (zerolog.Logger, error) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	if level == zerolog.NoLevel {
		level = zerolog.DebugLevel
	}

	w := out
	switch strings.ToLower(cfg.LogFormat) {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
	default:
		return zerolog.Nop(), errors.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
