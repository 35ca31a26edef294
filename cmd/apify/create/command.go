// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package create implements "apify create", which hands a new project
// to the scaffolding collaborator.
package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/apify/apify-cli/cmd/apify/cli"
	"github.com/apify/apify-cli/lib/prompt"
	"github.com/apify/apify-cli/lib/scaffold"
)

// Options carries the collaborators the create command needs.
type Options struct {
	Stdout io.Writer

	Scaffolder scaffold.Scaffolder

	WorkingDirectory func() (string, error)

	// Prompter asks for a missing actor name or template. Nil means
	// the session is not interactive: a missing name is an error and
	// the template falls back to [scaffold.DefaultTemplate].
	Prompter prompt.Prompter

	// Installer installs the new project's dependencies unless
	// --skip-dependency-install is given. Nil skips installation.
	Installer DependencyInstaller

	// InitRepository initializes a git repository in a new project.
	// Nil skips initialization.
	InitRepository func(ctx context.Context, directory string) error
}

type output struct {
	scaffold.Result
	DependenciesInstalled bool `json:"dependencies_installed"`
}

// Command returns the "apify create" command.
func Command(options Options) *cli.Command {
	return &cli.Command{
		Name:    "create",
		Summary: "Create a new actor project from a template",
		Description: `Create a new actor project in a new directory named after the actor.

The directory must not exist or must be empty. When the actor name or
the template is omitted on a terminal, the command asks for it. The
project's dependencies are installed and a git repository is
initialized in it unless --skip-dependency-install or --skip-git-init
is given.`,
		Flags: []cli.Flag{
			cli.StringFlag("template", cli.StringFlagOptions{
				Description: "Template for the actor. If not provided, the command prompts for it.",
				Aliases:     []string{"t"},
				Choices:     scaffold.Templates(),
			}),
			cli.BooleanFlag("skip-dependency-install", cli.BooleanFlagOptions{
				Description: "Skip installing actor dependencies.",
			}),
			cli.BooleanFlag("skip-git-init", cli.BooleanFlagOptions{
				Description: "Do not initialize a git repository in the actor directory.",
			}),
			cli.JSONFlag(),
		},
		Args: []cli.Arg{
			cli.StringArg("actor-name", cli.ArgOptions{
				Description: "Name of the actor and its directory. If not provided, the command prompts for it.",
			}),
		},
		Examples: []cli.Example{
			{
				Description: "Create a Python actor",
				Command:     "apify create my-actor --template python-start",
			},
		},
		Run: func(ctx context.Context, invocation *cli.Invocation, logger *slog.Logger) error {
			name, err := actorName(ctx, invocation, options.Prompter)
			if err != nil {
				return err
			}
			template, err := templateName(ctx, invocation, options.Prompter)
			if err != nil {
				return err
			}
			directory, err := options.WorkingDirectory()
			if err != nil {
				return cli.Internal("resolving working directory: %w", err)
			}

			result, err := options.Scaffolder.Scaffold(ctx, scaffold.Request{
				Name:      name,
				Template:  template,
				Directory: directory,
			})
			if errors.Is(err, scaffold.ErrDirectoryNotEmpty) {
				return cli.Validation("cannot create actor %q: %w; choose a different name", name, err)
			}
			if err != nil {
				return cli.Internal("creating actor %q: %w", name, err)
			}
			logger.Debug("project scaffolded", "directory", result.Directory, "template", result.Template)

			installed := false
			if options.Installer != nil && !invocation.Bool("skip-dependency-install") {
				installed, err = options.Installer.Install(ctx, result.Directory)
				if err != nil {
					return cli.Internal("installing dependencies of actor %q: %w", name, err)
				}
			}

			if options.InitRepository != nil && !invocation.Bool("skip-git-init") {
				if err := options.InitRepository(ctx, result.Directory); err != nil {
					logger.Warn("git repository was not initialized", "directory", result.Directory, "error", err)
				}
			}

			if done, err := cli.EmitJSON(invocation, options.Stdout, output{Result: result, DependenciesInstalled: installed}); done {
				return err
			}
			fmt.Fprintf(options.Stdout, "Actor %q was created from the %s template in %s.\n", name, result.Template, result.Directory)
			if installed {
				fmt.Fprintf(options.Stdout, "To run it, change to its directory and call \"apify run\".\n")
			} else {
				fmt.Fprintf(options.Stdout, "Install its dependencies to be able to run it with \"apify run\".\n")
			}
			return nil
		},
	}
}

// actorName returns the actor-name argument, asking for it when it was
// omitted and a prompter is available.
func actorName(ctx context.Context, invocation *cli.Invocation, prompter prompt.Prompter) (string, error) {
	name, ok := invocation.Arg("actor-name")
	if ok && name != "" {
		if err := scaffold.ValidateName(name); err != nil {
			return "", cli.Validation("%w", err)
		}
		return name, nil
	}
	if prompter == nil {
		return "", &cli.MissingRequiredArgumentError{Arguments: []string{"actor-name"}}
	}
	name, err := prompter.Text(ctx, prompt.Question{
		Label:       "Name of your new actor:",
		Placeholder: "my-actor",
		Validate:    scaffold.ValidateName,
	})
	if errors.Is(err, prompt.ErrCanceled) {
		return "", cli.Validation("actor creation canceled")
	}
	if err != nil {
		return "", cli.Internal("asking for the actor name: %w", err)
	}
	return name, nil
}

// templateName returns --template, asking for it when it was omitted
// and a prompter is available.
func templateName(ctx context.Context, invocation *cli.Invocation, prompter prompt.Prompter) (string, error) {
	if template := invocation.String("template"); template != "" {
		return template, nil
	}
	if prompter == nil {
		return scaffold.DefaultTemplate, nil
	}
	template, err := prompter.Choose(ctx, "Choose a template for your new actor:", scaffold.Templates())
	if errors.Is(err, prompt.ErrCanceled) {
		return "", cli.Validation("actor creation canceled")
	}
	if err != nil {
		return "", cli.Internal("asking for the template: %w", err)
	}
	return template, nil
}
