// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apify/apify-cli/cmd/apify/cli"
	usage "github.com/apify/apify-cli/lib/telemetry"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func subcommand(t *testing.T, group *cli.Command, name string) *cli.Command {
	t.Helper()
	for _, command := range group.Subcommands {
		if command.Name == name {
			return command
		}
	}
	t.Fatalf("subcommand %q not found", name)
	return nil
}

func TestEnableDisable(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), usage.StateFile)
	var stdout bytes.Buffer
	group := Command(Options{Stdout: &stdout, StatePath: statePath})

	if err := subcommand(t, group, "disable").Run(context.Background(), cli.NewInvocation("telemetry disable", nil), discard); err != nil {
		t.Fatalf("disable Run() error: %v", err)
	}
	state, _, err := usage.LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState() error: %v", err)
	}
	if state.Enabled {
		t.Error("state enabled after disable")
	}

	if err := subcommand(t, group, "enable").Run(context.Background(), cli.NewInvocation("telemetry enable", nil), discard); err != nil {
		t.Fatalf("enable Run() error: %v", err)
	}
	state, _, err = usage.LoadState(statePath)
	if err != nil {
		t.Fatalf("LoadState() error: %v", err)
	}
	if !state.Enabled {
		t.Error("state disabled after enable")
	}
	if !strings.Contains(stdout.String(), "Telemetry disabled.") || !strings.Contains(stdout.String(), "Telemetry enabled.") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func pointer(value bool) *bool { return &value }

func TestStatus(t *testing.T) {
	tests := []struct {
		name        string
		stored      *bool
		environment bool
		want        bool
	}{
		{"no state file", nil, false, true},
		{"stored disabled", pointer(false), false, false},
		{"environment override", pointer(true), true, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			statePath := filepath.Join(t.TempDir(), usage.StateFile)
			if test.stored != nil {
				if _, err := usage.SetEnabled(statePath, *test.stored); err != nil {
					t.Fatal(err)
				}
			}
			var stdout bytes.Buffer
			group := Command(Options{Stdout: &stdout, StatePath: statePath, DisabledByEnvironment: test.environment})

			invocation := cli.NewInvocation("telemetry status", map[string]any{"json": true})
			if err := subcommand(t, group, "status").Run(context.Background(), invocation, discard); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			var output statusOutput
			if err := json.Unmarshal(stdout.Bytes(), &output); err != nil {
				t.Fatalf("decoding %q: %v", stdout.String(), err)
			}
			if output.Enabled != test.want {
				t.Errorf("Enabled = %v, want %v", output.Enabled, test.want)
			}
		})
	}
}
