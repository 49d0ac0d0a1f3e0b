// Package iologger sets up the global slog logger from log settings.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	gnmusic "github.com/gnames/gnmusic/pkg"
	"github.com/gnames/gnmusic/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "gnmusic.log"

// Init replaces the default slog logger. With the "file" destination
// records are appended to LogFile in logDir. Every record carries the
// application version. The returned function closes the log file and
// must be called before the next Init.
func Init(logDir string, cfg config.LogConfig) (func() error, error) {
	w, closer, err := output(logDir, cfg.Destination)
	if err != nil {
		return closer, err
	}

	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(h).With("version", gnmusic.Version)
	slog.SetDefault(logger)
	return closer, nil
}

// output opens the destination of log records. Unknown destinations
// fall back to STDERR.
func output(logDir, dest string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch dest {
	case "stdout":
		return os.Stdout, noop, nil
	case "file":
		path := filepath.Join(logDir, LogFile)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, noop, CreateLogFileError(path, err)
		}
		return f, f.Close, nil
	default:
		return os.Stderr, noop, nil
	}
}

// parseLevel understands slog level names, anything else is info.
func parseLevel(level string) slog.Level {
	var res slog.Level
	if err := res.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return res
}
