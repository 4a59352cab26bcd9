package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dex/internal/config"
)

// Logger is the structured logger used across dex.
type Logger = zerolog.Logger

// NewLogger builds the process logger on stderr and sets the global level
// and timestamp format.
func NewLogger(cfg config.Config) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	l := New(cfg, os.Stderr)
	zerolog.SetGlobalLevel(l.GetLevel())
	return l
}

// New builds a logger writing to w: JSON lines, or a console layout when
// cfg.Logging.Pretty is set. An unknown level falls back to info.
func New(cfg config.Config, w io.Writer) Logger {
	if cfg.Logging.Pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "dex").Logger()
}
