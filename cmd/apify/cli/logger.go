// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command
// operations. When stderr is a terminal, uses slog.TextHandler for
// human-readable output. When stderr is piped or redirected (CI,
// scripts), uses slog.JSONHandler for machine-parseable output.
//
// The dispatcher scopes the logger with the resolved command path:
//
//	logger := cli.NewCommandLogger(slog.LevelInfo).With("command", "actors build")
func NewCommandLogger(level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
