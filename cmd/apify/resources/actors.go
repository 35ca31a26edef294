// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apify/apify-cli/cmd/apify/cli"
)

func actorsCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:          "actors",
		Summary:       "Manage actors on the platform",
		HiddenAliases: []string{"actor"},
		Subcommands: []*cli.Command{
			{
				Name:          "ls",
				Summary:       "List your actors",
				HiddenAliases: []string{"list"},
				Flags:         listFlags(),
				Examples: []cli.Example{
					{Description: "List the ten most recently modified actors", Command: "apify actors ls --desc --limit 10"},
				},
				Run: func(ctx context.Context, invocation *cli.Invocation, logger *slog.Logger) error {
					listing, err := listOptions(invocation)
					if err != nil {
						return err
					}
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					actors, err := options.Client.ListActors(ctx, listing)
					if err != nil {
						return clientError("listing actors", err)
					}
					logger.Debug("actors listed", "count", len(actors))
					if done, err := cli.EmitJSON(invocation, options.Stdout, actors); done {
						return err
					}
					rows := make([]string, len(actors))
					for index, actor := range actors {
						rows[index] = fmt.Sprintf("%s\t%s/%s\t%s\t%s", actor.ID, actor.Username, actor.Name, actor.Title, timestamp(actor.ModifiedAt))
					}
					return table(options.Stdout, "ID\tNAME\tTITLE\tMODIFIED", rows)
				},
			},
			{
				Name:    "info",
				Summary: "Show information about an actor",
				Args:    idArg("actor-id", "ID or username/name of the actor."),
				Flags:   []cli.Flag{cli.JSONFlag()},
				Run: func(ctx context.Context, invocation *cli.Invocation, _ *slog.Logger) error {
					id, _ := invocation.Arg("actor-id")
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					actor, err := options.Client.GetActor(ctx, id)
					if err != nil {
						return clientError(fmt.Sprintf("getting actor %q", id), err)
					}
					if done, err := cli.EmitJSON(invocation, options.Stdout, actor); done {
						return err
					}
					return fields(options.Stdout, [][2]string{
						{"ID", actor.ID},
						{"Name", actor.Username + "/" + actor.Name},
						{"Title", actor.Title},
						{"Modified", timestamp(actor.ModifiedAt)},
					})
				},
			},
		},
	}
}
