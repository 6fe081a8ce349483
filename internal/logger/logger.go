package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/yukikurage/task-assignment-api/internal/config"
)

// New builds the application logger for the configured environment.
// Local runs get a human readable console writer, everything else logs JSON.
func New(cfg *config.Config) (zerolog.Logger, error) {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zerolog.TimestampFieldName = "timestamp"

	w := out
	switch cfg.Env {
	case config.EnvLocal:
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	case config.EnvDev, config.EnvProd, config.EnvTest:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown env: %s", cfg.Env)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger(), nil
}
