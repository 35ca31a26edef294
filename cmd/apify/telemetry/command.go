// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry implements "apify telemetry enable|disable|status".
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/apify/apify-cli/cmd/apify/cli"
	usage "github.com/apify/apify-cli/lib/telemetry"
)

// Options carries what the telemetry commands need.
type Options struct {
	Stdout io.Writer

	// StatePath is the telemetry state file.
	StatePath string

	// DisabledByEnvironment reports an APIFY_CLI_DISABLE_TELEMETRY or
	// configuration opt-out, which overrides the stored preference.
	DisabledByEnvironment bool
}

// statusOutput is the --json form of "telemetry status".
type statusOutput struct {
	Enabled               bool   `json:"enabled"`
	StoredEnabled         bool   `json:"stored_enabled"`
	DisabledByEnvironment bool   `json:"disabled_by_environment"`
	AnonymousID           string `json:"anonymous_id,omitempty"`
}

// Command returns the "apify telemetry" group.
func Command(options Options) *cli.Command {
	return &cli.Command{
		Name:    "telemetry",
		Summary: "Manage anonymous usage data collection",
		Description: `Manage anonymous usage data collection.

Set APIFY_CLI_DISABLE_TELEMETRY=1 to disable collection for a single
environment regardless of the stored preference.`,
		Subcommands: []*cli.Command{
			setCommand(options, "enable", true),
			setCommand(options, "disable", false),
			statusCommand(options),
		},
	}
}

func setCommand(options Options, name string, enabled bool) *cli.Command {
	verb := "Disable"
	if enabled {
		verb = "Enable"
	}
	return &cli.Command{
		Name:    name,
		Summary: verb + " anonymous usage data collection",
		Run: func(_ context.Context, _ *cli.Invocation, logger *slog.Logger) error {
			state, err := usage.SetEnabled(options.StatePath, enabled)
			if err != nil {
				return cli.Internal("%w", err)
			}
			logger.Debug("telemetry preference saved", "path", options.StatePath, "enabled", state.Enabled)
			if enabled {
				fmt.Fprintln(options.Stdout, "Telemetry enabled.")
				if options.DisabledByEnvironment {
					fmt.Fprintln(options.Stdout, "Note: collection stays off while APIFY_CLI_DISABLE_TELEMETRY or the configuration disables it.")
				}
			} else {
				fmt.Fprintln(options.Stdout, "Telemetry disabled.")
			}
			return nil
		},
	}
}

func statusCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:    "status",
		Summary: "Show whether usage data collection is enabled",
		Flags:   []cli.Flag{cli.JSONFlag()},
		Run: func(_ context.Context, invocation *cli.Invocation, _ *slog.Logger) error {
			state, exists, err := usage.LoadState(options.StatePath)
			if err != nil {
				return cli.Internal("%w", err)
			}
			output := statusOutput{
				StoredEnabled:         !exists || state.Enabled,
				DisabledByEnvironment: options.DisabledByEnvironment,
				AnonymousID:           state.AnonymousID,
			}
			output.Enabled = output.StoredEnabled && !output.DisabledByEnvironment

			if done, err := cli.EmitJSON(invocation, options.Stdout, output); done {
				return err
			}
			switch {
			case output.Enabled:
				fmt.Fprintln(options.Stdout, "Telemetry is enabled.")
			case output.DisabledByEnvironment:
				fmt.Fprintln(options.Stdout, "Telemetry is disabled by APIFY_CLI_DISABLE_TELEMETRY or the configuration.")
			default:
				fmt.Fprintln(options.Stdout, "Telemetry is disabled.")
			}
			return nil
		},
	}
}
