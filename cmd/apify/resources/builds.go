// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apify/apify-cli/cmd/apify/cli"
	"github.com/apify/apify-cli/lib/project"
)

func buildsCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:          "builds",
		Summary:       "Manage actor builds",
		HiddenAliases: []string{"build"},
		Subcommands: []*cli.Command{
			{
				Name:          "ls",
				Summary:       "List the builds of an actor",
				HiddenAliases: []string{"list"},
				Flags: append([]cli.Flag{
					cli.StringFlag("actor", cli.StringFlagOptions{
						Description: "Actor whose builds to list. Defaults to the actor in the current directory.",
						Aliases:     []string{"a"},
					}),
				}, listFlags()...),
				Run: func(ctx context.Context, invocation *cli.Invocation, logger *slog.Logger) error {
					listing, err := listOptions(invocation)
					if err != nil {
						return err
					}
					actorID, err := resolveActor(options, invocation.String("actor"))
					if err != nil {
						return err
					}
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					builds, err := options.Client.ListBuilds(ctx, actorID, listing)
					if err != nil {
						return clientError(fmt.Sprintf("listing builds of %q", actorID), err)
					}
					logger.Debug("builds listed", "actor", actorID, "count", len(builds))
					if done, err := cli.EmitJSON(invocation, options.Stdout, builds); done {
						return err
					}
					rows := make([]string, len(builds))
					for index, build := range builds {
						rows[index] = fmt.Sprintf("%s\t%s\t%s\t%s\t%s", build.ID, build.BuildNumber, build.Status, timestamp(build.StartedAt), timestamp(build.FinishedAt))
					}
					return table(options.Stdout, "ID\tNUMBER\tSTATUS\tSTARTED\tFINISHED", rows)
				},
			},
			{
				Name:    "info",
				Summary: "Show information about a build",
				Args:    idArg("build-id", "ID of the build."),
				Flags:   []cli.Flag{cli.JSONFlag()},
				Run: func(ctx context.Context, invocation *cli.Invocation, _ *slog.Logger) error {
					id, _ := invocation.Arg("build-id")
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					build, err := options.Client.GetBuild(ctx, id)
					if err != nil {
						return clientError(fmt.Sprintf("getting build %q", id), err)
					}
					if done, err := cli.EmitJSON(invocation, options.Stdout, build); done {
						return err
					}
					return fields(options.Stdout, [][2]string{
						{"ID", build.ID},
						{"Actor", build.ActorID},
						{"Number", build.BuildNumber},
						{"Status", build.Status},
						{"Started", timestamp(build.StartedAt)},
						{"Finished", timestamp(build.FinishedAt)},
					})
				},
			},
		},
	}
}

// resolveActor returns explicit, or the actor name from the current
// project's .actor/actor.json.
func resolveActor(options Options, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	root, err := options.WorkingDirectory()
	if err != nil {
		return "", cli.Internal("resolving working directory: %w", err)
	}
	config, err := project.ReadActorConfig(root)
	if err != nil {
		return "", cli.Validation("%w", err)
	}
	if config == nil || config.Name == "" {
		return "", cli.Validation("no --actor given and %s does not name an actor", project.ActorConfigPath)
	}
	return config.Name, nil
}
