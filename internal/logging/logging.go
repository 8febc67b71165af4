// Package logging builds the slog loggers used by clueboard.
//
// The terminal UI owns stdout and stderr while it runs, so in that mode
// records go to a JSON log file. The web server logs to stderr, as text
// when stderr is a terminal and as JSON when it is piped.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

// Level returns the minimum level for the verbose flag.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New returns a logger writing to w.
func New(w io.Writer, verbose, json bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: Level(verbose)}
	if json {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}

// NewStderr returns a logger for stderr, human-readable on a terminal.
func NewStderr(verbose bool) *slog.Logger {
	return New(os.Stderr, verbose, !term.IsTerminal(int(os.Stderr.Fd())))
}

// OpenFile appends JSON records to path, creating parent directories. The
// returned func closes the file.
func OpenFile(path string, verbose bool) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, verbose, true), file.Close, nil
}
