// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
)

func noopRun(context.Context, *Invocation, *slog.Logger) error { return nil }

// fixedWidth returns a LineWidth that always reads width.
func fixedWidth(width string) *LineWidth {
	return &LineWidth{Getenv: func(name string) string {
		if name == MaxLineWidthEnv {
			return width
		}
		return ""
	}}
}
