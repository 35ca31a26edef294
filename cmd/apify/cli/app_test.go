// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"testing"
)

type recordedEvent struct {
	event      string
	properties map[string]any
}

type recordingTracker struct {
	events []recordedEvent
}

func (r *recordingTracker) Track(event string, properties map[string]any) {
	r.events = append(r.events, recordedEvent{event: event, properties: properties})
}

type appHarness struct {
	app     *App
	stdout  *bytes.Buffer
	tracker *recordingTracker
	ran     []*Invocation
}

func newAppHarness(t *testing.T) *appHarness {
	t.Helper()
	harness := &appHarness{stdout: &bytes.Buffer{}, tracker: &recordingTracker{}}
	record := func(_ context.Context, invocation *Invocation, _ *slog.Logger) error {
		harness.ran = append(harness.ran, invocation)
		return nil
	}

	registry := NewRegistry()
	err := registry.RegisterTree(
		&Command{
			Name:    "run",
			Summary: "Run the actor",
			Flags: []Flag{
				BooleanFlag("purge", BooleanFlagOptions{Aliases: []string{"p"}}),
				StringFlag("input", StringFlagOptions{Aliases: []string{"i"}}),
			},
			Args: []Arg{StringArg("rest", ArgOptions{CatchAll: true})},
			Run:  record,
		},
		&Command{
			Name:    "actors",
			Summary: "Manage actors",
			Subcommands: []*Command{
				{Name: "ls", Summary: "List actors", Flags: []Flag{JSONFlag()}, Run: record},
			},
		},
		&Command{Name: "fail", Summary: "Always fails", Run: func(context.Context, *Invocation, *slog.Logger) error {
			return &ExitError{Code: 3}
		}},
	)
	if err != nil {
		t.Fatalf("RegisterTree() error: %v", err)
	}

	harness.app = &App{
		Program:   "apify",
		Version:   "1.2.3",
		Registry:  registry,
		Width:     fixedWidth("80"),
		Stdin:     NoStdin,
		Stdout:    harness.stdout,
		Stderr:    &bytes.Buffer{},
		Telemetry: harness.tracker,
	}
	return harness
}

func (h *appHarness) execute(args ...string) error {
	return h.app.Execute(context.Background(), args)
}

func TestApp_MainHelp(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"--help"}, {"-h"}} {
		harness := newAppHarness(t)
		if err := harness.execute(args...); err != nil {
			t.Fatalf("Execute(%q) error: %v", args, err)
		}
		if !strings.Contains(harness.stdout.String(), "TOPICS\n  actors  Manage actors") {
			t.Errorf("Execute(%q) did not print the main help:\n%s", args, harness.stdout)
		}
		if len(harness.tracker.events) != 0 {
			t.Errorf("Execute(%q) tracked %d events, want 0", args, len(harness.tracker.events))
		}
	}
}

func TestApp_Version(t *testing.T) {
	harness := newAppHarness(t)
	if err := harness.execute("--version"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "apify/1.2.3 " + runtime.GOOS + "-" + runtime.GOARCH + "\n"
	if got := harness.stdout.String(); got != want {
		t.Errorf("version output = %q, want %q", got, want)
	}
}

func TestApp_CommandHelp(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"help command", []string{"help", "actors", "ls"}},
		{"trailing marker", []string{"actors", "ls", "--help"}},
		{"marker among flags", []string{"actors", "ls", "-h", "--json"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			harness := newAppHarness(t)
			if err := harness.execute(test.args...); err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if !strings.Contains(harness.stdout.String(), "$ apify actors ls [--json]") {
				t.Errorf("output is not the help for actors ls:\n%s", harness.stdout)
			}
			if len(harness.ran) != 0 {
				t.Error("help request ran the command")
			}
		})
	}
}

func TestApp_HelpMarkerAfterDoubleDash(t *testing.T) {
	harness := newAppHarness(t)
	if err := harness.execute("run", "--", "--help"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(harness.ran) != 1 {
		t.Fatalf("run was called %d times, want 1", len(harness.ran))
	}
	if got, _ := harness.ran[0].Arg("rest"); got != "--help" {
		t.Errorf("rest = %q, want %q", got, "--help")
	}
}

func TestApp_GroupWithoutRun(t *testing.T) {
	harness := newAppHarness(t)
	if err := harness.execute("actors"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(harness.stdout.String(), "SUBCOMMANDS\n  actors ls  List actors") {
		t.Errorf("bare group did not print its help:\n%s", harness.stdout)
	}

	err := harness.execute("actors", "lss")
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("Execute() error = %v, want *UnknownCommandError", err)
	}
	if unknown.Input != "actors lss" {
		t.Errorf("Input = %q, want %q", unknown.Input, "actors lss")
	}
	if len(unknown.Suggestions) != 1 || unknown.Suggestions[0].Path != "actors ls" {
		t.Errorf("Suggestions = %v, want [actors ls]", unknown.Suggestions)
	}
}

func TestApp_UnknownCommand(t *testing.T) {
	harness := newAppHarness(t)
	err := harness.execute("rnu")
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("Execute() error = %v, want *UnknownCommandError", err)
	}
	if len(unknown.Suggestions) != 1 || unknown.Suggestions[0].Path != "run" {
		t.Errorf("Suggestions = %v, want [run]", unknown.Suggestions)
	}

	var unknownFlag *UnknownFlagError
	if err := harness.execute("--verbose"); !errors.As(err, &unknownFlag) {
		t.Errorf("Execute(--verbose) error = %v, want *UnknownFlagError", err)
	}
}

func TestApp_RunTracksEvent(t *testing.T) {
	harness := newAppHarness(t)
	if err := harness.execute("run", "-p", "--input", "{}", "extra", "words"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(harness.ran) != 1 {
		t.Fatalf("run was called %d times, want 1", len(harness.ran))
	}
	if got, _ := harness.ran[0].Arg("rest"); got != "extra words" {
		t.Errorf("rest = %q, want %q", got, "extra words")
	}

	if len(harness.tracker.events) != 1 {
		t.Fatalf("tracked %d events, want 1", len(harness.tracker.events))
	}
	event := harness.tracker.events[0]
	if event.event != "cli_command_run" {
		t.Errorf("event = %q, want %q", event.event, "cli_command_run")
	}
	flagsUsed, _ := event.properties["flagsUsed"].([]string)
	if !slices.Equal(flagsUsed, []string{"input", "purge"}) {
		t.Errorf("flagsUsed = %q, want [input purge]", flagsUsed)
	}
	if event.properties["commandString"] != "run" {
		t.Errorf("commandString = %v, want %q", event.properties["commandString"], "run")
	}
}

func TestApp_NestedEventName(t *testing.T) {
	harness := newAppHarness(t)
	if err := harness.execute("actors", "ls"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(harness.tracker.events) != 1 || harness.tracker.events[0].event != "cli_command_actors_ls" {
		t.Errorf("events = %v, want one cli_command_actors_ls", harness.tracker.events)
	}
}

func TestApp_ParseErrorIsNotTracked(t *testing.T) {
	harness := newAppHarness(t)
	err := harness.execute("run", "--bogus")
	if !isType[*UnknownFlagError](err) {
		t.Fatalf("Execute() error = %v, want *UnknownFlagError", err)
	}
	if len(harness.tracker.events) != 0 || len(harness.ran) != 0 {
		t.Errorf("a parse failure tracked %d events and ran %d times", len(harness.tracker.events), len(harness.ran))
	}
}

func TestApp_ExitErrorPassesThrough(t *testing.T) {
	harness := newAppHarness(t)
	err := harness.execute("fail")
	if got := ExitCode(err); got != 3 {
		t.Errorf("ExitCode() = %d, want 3", got)
	}
}

func TestApp_RenderHelp(t *testing.T) {
	harness := newAppHarness(t)
	if err := harness.app.RenderHelp("actors ls"); err != nil {
		t.Fatalf("RenderHelp() error: %v", err)
	}
	if !strings.Contains(harness.stdout.String(), "List actors") {
		t.Errorf("RenderHelp output:\n%s", harness.stdout)
	}
	if err := harness.app.RenderHelp("nothing"); !isType[*UnknownCommandError](err) {
		t.Errorf("RenderHelp(nothing) error = %v, want *UnknownCommandError", err)
	}
}
