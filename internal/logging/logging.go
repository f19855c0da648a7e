package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w. LOG_LEVEL and LOG_FORMAT ("json" or
// "console") are read from the environment; defaults are info/console.
func New(w io.Writer) zerolog.Logger {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	format := os.Getenv("LOG_FORMAT")
	if format == "json" {
		return zerolog.New(w).With().Timestamp().Logger().Level(level)
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(level)
}

// FileWriter opens (creating if needed) the log file under the state dir.
// The TUI owns stdout, so interactive runs log here instead.
func FileWriter(stateDir string) (io.WriteCloser, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(stateDir, "rollcall.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
