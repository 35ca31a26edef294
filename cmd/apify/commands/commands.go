// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete apify command tree and the
// [cli.App] that dispatches to it. The binary and the tree tests share
// this single source of truth.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/apify/apify-cli/cmd/apify/cli"
	createcmd "github.com/apify/apify-cli/cmd/apify/create"
	doctorcmd "github.com/apify/apify-cli/cmd/apify/doctor"
	"github.com/apify/apify-cli/cmd/apify/resources"
	runcmd "github.com/apify/apify-cli/cmd/apify/run"
	telemetrycmd "github.com/apify/apify-cli/cmd/apify/telemetry"
	"github.com/apify/apify-cli/lib/clock"
	"github.com/apify/apify-cli/lib/config"
	"github.com/apify/apify-cli/lib/git"
	"github.com/apify/apify-cli/lib/platform"
	"github.com/apify/apify-cli/lib/prompt"
	"github.com/apify/apify-cli/lib/runtimes"
	"github.com/apify/apify-cli/lib/scaffold"
	"github.com/apify/apify-cli/lib/version"
)

// Description heads the main help menu.
const Description = `Apify command-line interface (CLI) helps you create, develop, build
and run actors, and manage the platform from a local computer.`

// Dependencies are the collaborators the command tree is built with.
// Zero fields are filled by [Dependencies.withDefaults].
type Dependencies struct {
	Config *config.Config

	// Stdin feeds stdin-mode flags. Child processes always inherit the
	// process's standard input.
	Stdin  cli.Stdin
	Stdout io.Writer
	Stderr io.Writer

	Platform   platform.Client
	Scaffolder scaffold.Scaffolder

	JavaScript runtimes.Finder
	Python     runtimes.Finder

	Executor runcmd.Executor

	WorkingDirectory func() (string, error)

	// Prompter asks for values "create" was not given. Nil fills in a
	// terminal prompter when stdin and stdout are both terminals.
	Prompter prompt.Prompter

	// InitRepository initializes git in projects made by "create".
	InitRepository func(ctx context.Context, directory string) error

	Clock  clock.Clock
	Logger *slog.Logger
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Stdin == nil {
		d.Stdin = cli.ProcessStdin()
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Platform == nil {
		d.Platform = platform.Unconfigured{}
	}
	if d.Scaffolder == nil {
		d.Scaffolder = scaffold.Skeleton{}
	}
	timeout, _ := d.Config.ProbeTimeoutDuration()
	if d.JavaScript == nil {
		detector := runtimes.NewJavaScriptDetector(d.Logger)
		detector.ProbeTimeout = timeout
		d.JavaScript = detector
	}
	if d.Python == nil {
		d.Python = &runtimes.PythonDetector{ProbeTimeout: timeout, Logger: d.Logger}
	}
	if d.Executor == nil {
		d.Executor = runcmd.ExecExecutor{Stdin: os.Stdin, Stdout: d.Stdout, Stderr: d.Stderr}
	}
	if d.WorkingDirectory == nil {
		d.WorkingDirectory = os.Getwd
	}
	if d.Prompter == nil && d.Stdout == io.Writer(os.Stdout) && prompt.IsTerminal(os.Stdin) && prompt.IsTerminal(os.Stdout) {
		d.Prompter = prompt.Terminal{Input: os.Stdin, Output: os.Stdout}
	}
	if d.InitRepository == nil {
		d.InitRepository = initRepository
	}
	if d.Clock == nil {
		d.Clock = clock.Real()
	}
	return d
}

// initRepository runs git init in a new project unless it already
// lives inside a work tree.
func initRepository(ctx context.Context, directory string) error {
	repository := git.NewRepository(directory)
	if repository.InsideWorkTree(ctx) {
		return nil
	}
	return repository.Init(ctx)
}

// Root builds the top-level commands in registration order.
func Root(dependencies Dependencies) []*cli.Command {
	d := dependencies.withDefaults()

	commands := []*cli.Command{
		createcmd.Command(createcmd.Options{
			Stdout:           d.Stdout,
			Scaffolder:       d.Scaffolder,
			WorkingDirectory: d.WorkingDirectory,
			Prompter:         d.Prompter,
			Installer: createcmd.Installer{
				JavaScript: d.JavaScript,
				Python:     d.Python,
				Executor:   d.Executor,
				Logger:     d.Logger,
			},
			InitRepository: d.InitRepository,
		}),
		runcmd.Command(runcmd.Options{
			Stderr:           d.Stderr,
			JavaScript:       d.JavaScript,
			Python:           d.Python,
			Executor:         d.Executor,
			StorageDirectory: d.Config.Storage.Directory,
			WorkingDirectory: d.WorkingDirectory,
			Clock:            d.Clock,
		}),
		doctorcmd.Command(doctorcmd.Options{
			Stdout:           d.Stdout,
			JavaScript:       d.JavaScript,
			Python:           d.Python,
			WorkingDirectory: d.WorkingDirectory,
		}),
	}
	commands = append(commands, resources.Commands(resources.Options{
		Stdout:           d.Stdout,
		Client:           d.Platform,
		WorkingDirectory: d.WorkingDirectory,
	})...)
	commands = append(commands,
		telemetrycmd.Command(telemetrycmd.Options{
			Stdout:                d.Stdout,
			StatePath:             d.Config.TelemetryStatePath(),
			DisabledByEnvironment: d.Config.Telemetry.Disabled,
		}),
		versionCommand(d.Stdout),
	)
	return commands
}

func versionCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags:   []cli.Flag{cli.JSONFlag()},
		Run: func(_ context.Context, invocation *cli.Invocation, _ *slog.Logger) error {
			if done, err := cli.EmitJSON(invocation, stdout, map[string]string{
				"version":    version.Short(),
				"commit":     version.GitCommit,
				"build_time": version.BuildTime,
			}); done {
				return err
			}
			_, err := fmt.Fprintf(stdout, "apify %s\n", version.Full())
			return err
		},
	}
}

// NewRegistry registers the tree built from dependencies.
func NewRegistry(dependencies Dependencies) (*cli.Registry, error) {
	registry := cli.NewRegistry()
	if err := registry.RegisterTree(Root(dependencies)...); err != nil {
		return nil, err
	}
	return registry, nil
}

// NewApp builds the dispatcher for the binary. tracker may be nil.
func NewApp(dependencies Dependencies, tracker cli.EventTracker) (*cli.App, error) {
	d := dependencies.withDefaults()
	registry, err := NewRegistry(d)
	if err != nil {
		return nil, err
	}
	return &cli.App{
		Program:     "apify",
		Version:     version.Short(),
		Description: Description,
		Registry:    registry,
		Stdin:       d.Stdin,
		Stdout:      d.Stdout,
		Stderr:      d.Stderr,
		Logger:      d.Logger,
		Telemetry:   tracker,
	}, nil
}
