package main

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger logs to stderr and appends to the log file at path. The file
// records info and above; stderr only shows warnings unless verbose is set,
// in which case both record debug messages.
func newLogger(stderr io.Writer, path string, verbose bool) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	fileLevel, consoleLevel := slog.LevelInfo, slog.LevelWarn
	if verbose {
		fileLevel, consoleLevel = slog.LevelDebug, slog.LevelDebug
	}

	h := slogmulti.Fanout(
		slog.NewTextHandler(f, &slog.HandlerOptions{Level: fileLevel}),
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: consoleLevel}),
	)
	return slog.New(h), f.Close, nil
}
