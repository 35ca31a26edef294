// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
)

// EventTracker receives one event per dispatched command. Tracking is
// fire-and-forget: implementations swallow their own failures.
type EventTracker interface {
	Track(event string, properties map[string]any)
}

// App dispatches argv to the commands in a [Registry].
type App struct {
	// Program is the binary name shown in usage and hints.
	Program string

	// Version is printed by --version and in the main help menu.
	Version string

	// Description heads the main help menu.
	Description string

	Registry *Registry

	// Width is the shared help line width. Nil means a fresh
	// [LineWidth] reading the process environment.
	Width *LineWidth

	// Stdin is consulted by stdin-mode arguments and flags. Nil means
	// the process's standard input.
	Stdin Stdin

	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger

	// Telemetry may be nil.
	Telemetry EventTracker
}

// Execute runs one invocation:
//
//   - no arguments, "help", or a leading help marker print the main
//     help menu; "help <command...>" prints that command's help;
//     "--version" alone prints the version
//   - the longest registered command path is resolved; when nothing
//     matches, an [UnknownCommandError] with suggestions is returned
//   - a help marker anywhere before "--" prints the resolved command's
//     help without running it
//   - a group without a Run function prints its help, or reports an
//     unknown subcommand when a further word was given
//   - otherwise the remaining tokens are parsed, a telemetry event is
//     recorded, and the command's Run function is called
func (a *App) Execute(ctx context.Context, args []string) error {
	a.applyDefaults()

	if len(args) == 0 || isHelpMarker(args[0]) {
		return a.help().RenderMain(a.Registry)
	}
	if args[0] == "help" {
		if len(args) == 1 {
			return a.help().RenderMain(a.Registry)
		}
		return a.renderHelpFor(args[1:])
	}
	if len(args) == 1 && (args[0] == "--version" || args[0] == "-v") {
		_, err := fmt.Fprintf(a.Stdout, "%s/%s %s-%s\n", a.Program, a.Version, runtime.GOOS, runtime.GOARCH)
		return err
	}

	resolution, ok := a.Registry.Resolve(args)
	if !ok {
		if isFlagToken(args[0]) {
			return &UnknownFlagError{Flag: args[0]}
		}
		return &UnknownCommandError{
			Input:       args[0],
			Suggestions: a.Registry.Suggest(args[0]),
			Program:     a.Program,
		}
	}

	command := resolution.Command
	if hasHelpMarker(resolution.Remaining) {
		return a.help().Render(resolution.Path, command)
	}

	if command.Run == nil {
		if len(resolution.Remaining) > 0 && !isFlagToken(resolution.Remaining[0]) {
			typed := joinPath(resolution.Path, resolution.Remaining[0])
			return &UnknownCommandError{
				Input:       typed,
				Suggestions: a.Registry.Suggest(typed),
				Program:     a.Program,
			}
		}
		return a.help().Render(resolution.Path, command)
	}

	invocation, err := Parse(command, resolution.Path, resolution.Remaining, a.Stdin)
	if err != nil {
		return err
	}

	a.track(invocation)

	logger := a.Logger.With("command", resolution.Path)
	logger.Debug("dispatching command", "flags", len(invocation.present), "args", len(invocation.args))
	return command.Run(ctx, invocation, logger)
}

// RenderHelp writes the help for the command at path, for commands
// that print their own help on misuse.
func (a *App) RenderHelp(path string) error {
	a.applyDefaults()
	command, canonical, ok := a.Registry.Lookup(path)
	if !ok {
		return &UnknownCommandError{Input: path, Suggestions: a.Registry.Suggest(path), Program: a.Program}
	}
	return a.help().Render(canonical, command)
}

func (a *App) renderHelpFor(tokens []string) error {
	resolution, ok := a.Registry.Resolve(tokens)
	if !ok || len(resolution.Remaining) > 0 {
		input := strings.Join(tokens, " ")
		return &UnknownCommandError{Input: input, Suggestions: a.Registry.Suggest(input), Program: a.Program}
	}
	return a.help().Render(resolution.Path, resolution.Command)
}

func (a *App) help() *HelpRenderer {
	renderer := NewHelpRenderer(a.Stdout, a.Width)
	renderer.Program = a.Program
	renderer.Description = a.Description
	renderer.Version = a.Version
	return renderer
}

func (a *App) applyDefaults() {
	if a.Program == "" {
		a.Program = "apify"
	}
	if a.Registry == nil {
		a.Registry = NewRegistry()
	}
	if a.Width == nil {
		a.Width = &LineWidth{}
	}
	if a.Stdin == nil {
		a.Stdin = ProcessStdin()
	}
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	if a.Stderr == nil {
		a.Stderr = os.Stderr
	}
	if a.Logger == nil {
		a.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// track records "cli_command_<path>" with the names of the flags the
// user set. The tracker owns error handling.
func (a *App) track(invocation *Invocation) {
	if a.Telemetry == nil {
		return
	}
	flagsUsed := make([]string, 0, len(invocation.present))
	for name := range invocation.present {
		flagsUsed = append(flagsUsed, name)
	}
	sort.Strings(flagsUsed)
	a.Telemetry.Track("cli_command_"+strings.ReplaceAll(invocation.Path, " ", "_"), map[string]any{
		"commandString": invocation.Path,
		"entrypoint":    a.Program,
		"flagsUsed":     flagsUsed,
		"osArch":        runtime.GOARCH,
	})
}

// isHelpMarker reports whether token asks for help.
func isHelpMarker(token string) bool {
	return token == "-h" || token == "--help"
}

// hasHelpMarker reports whether a help marker appears before "--".
func hasHelpMarker(tokens []string) bool {
	for _, token := range tokens {
		if token == "--" {
			return false
		}
		if isHelpMarker(token) {
			return true
		}
	}
	return false
}
