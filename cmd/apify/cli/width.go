// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// MaxLineWidthEnv overrides the help output width.
	MaxLineWidthEnv = "APIFY_CLI_MAX_LINE_WIDTH"

	// DefaultLineWidth applies when output is not a terminal or the
	// terminal width cannot be read.
	DefaultLineWidth = 80

	// MinLineWidth is the narrowest width used for a terminal.
	MinLineWidth = 40
)

// LineWidth computes the maximum help line width once and remembers
// it. The zero value reads the process environment and stdout; tests
// replace the hooks. Not safe for concurrent first use.
type LineWidth struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	// IsTerminal reports whether output is interactive. Defaults to
	// checking stdout.
	IsTerminal func() bool

	// TerminalWidth returns the terminal's column count. Defaults to
	// querying stdout.
	TerminalWidth func() (int, error)

	value    int
	resolved bool
}

// Value returns the memoized width, computing it on first call:
// a positive integer in APIFY_CLI_MAX_LINE_WIDTH wins; a
// non-interactive output gets 80; a terminal gets its width clamped to
// at least 40, or 80 when the width cannot be read.
func (w *LineWidth) Value() int {
	if w.resolved {
		return w.value
	}
	w.value = w.compute()
	w.resolved = true
	return w.value
}

// Reset forgets the memoized width so the next Value recomputes it.
func (w *LineWidth) Reset() {
	w.resolved = false
	w.value = 0
}

func (w *LineWidth) compute() int {
	getenv := w.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if raw := strings.TrimSpace(getenv(MaxLineWidthEnv)); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}

	isTerminal := w.IsTerminal
	if isTerminal == nil {
		isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	}
	if !isTerminal() {
		return DefaultLineWidth
	}

	terminalWidth := w.TerminalWidth
	if terminalWidth == nil {
		terminalWidth = func() (int, error) {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			return width, err
		}
	}
	width, err := terminalWidth()
	if err != nil || width <= 0 {
		return DefaultLineWidth
	}
	return max(width, MinLineWidth)
}
