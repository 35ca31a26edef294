// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/apify/apify-cli/cmd/apify/cli"
)

func datasetsCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:    "datasets",
		Summary: "Manage datasets",
		Subcommands: []*cli.Command{
			{
				Name:          "ls",
				Summary:       "List datasets",
				HiddenAliases: []string{"list"},
				Flags:         listFlags(),
				Run: func(ctx context.Context, invocation *cli.Invocation, logger *slog.Logger) error {
					listing, err := listOptions(invocation)
					if err != nil {
						return err
					}
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					datasets, err := options.Client.ListDatasets(ctx, listing)
					if err != nil {
						return clientError("listing datasets", err)
					}
					logger.Debug("datasets listed", "count", len(datasets))
					if done, err := cli.EmitJSON(invocation, options.Stdout, datasets); done {
						return err
					}
					rows := make([]string, len(datasets))
					for index, dataset := range datasets {
						rows[index] = fmt.Sprintf("%s\t%s\t%d\t%s", dataset.ID, orDash(dataset.Name), dataset.ItemCount, timestamp(dataset.ModifiedAt))
					}
					return table(options.Stdout, "ID\tNAME\tITEMS\tMODIFIED", rows)
				},
			},
			{
				Name:    "info",
				Summary: "Show information about a dataset",
				Args:    idArg("dataset-id", "ID or name of the dataset."),
				Flags:   []cli.Flag{cli.JSONFlag()},
				Run: func(ctx context.Context, invocation *cli.Invocation, _ *slog.Logger) error {
					id, _ := invocation.Arg("dataset-id")
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					dataset, err := options.Client.GetDataset(ctx, id)
					if err != nil {
						return clientError(fmt.Sprintf("getting dataset %q", id), err)
					}
					if done, err := cli.EmitJSON(invocation, options.Stdout, dataset); done {
						return err
					}
					return fields(options.Stdout, [][2]string{
						{"ID", dataset.ID},
						{"Name", orDash(dataset.Name)},
						{"Items", strconv.Itoa(dataset.ItemCount)},
						{"Modified", timestamp(dataset.ModifiedAt)},
					})
				},
			},
		},
	}
}

func keyValueStoresCommand(options Options) *cli.Command {
	return &cli.Command{
		Name:    "key-value-stores",
		Summary: "Manage key-value stores",
		Aliases: []string{"kvs"},
		Subcommands: []*cli.Command{
			{
				Name:          "ls",
				Summary:       "List key-value stores",
				HiddenAliases: []string{"list"},
				Flags:         listFlags(),
				Run: func(ctx context.Context, invocation *cli.Invocation, logger *slog.Logger) error {
					listing, err := listOptions(invocation)
					if err != nil {
						return err
					}
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					stores, err := options.Client.ListKeyValueStores(ctx, listing)
					if err != nil {
						return clientError("listing key-value stores", err)
					}
					logger.Debug("key-value stores listed", "count", len(stores))
					if done, err := cli.EmitJSON(invocation, options.Stdout, stores); done {
						return err
					}
					rows := make([]string, len(stores))
					for index, store := range stores {
						rows[index] = fmt.Sprintf("%s\t%s\t%s", store.ID, orDash(store.Name), timestamp(store.ModifiedAt))
					}
					return table(options.Stdout, "ID\tNAME\tMODIFIED", rows)
				},
			},
			{
				Name:    "info",
				Summary: "Show information about a key-value store",
				Args:    idArg("store-id", "ID or name of the key-value store."),
				Flags:   []cli.Flag{cli.JSONFlag()},
				Run: func(ctx context.Context, invocation *cli.Invocation, _ *slog.Logger) error {
					id, _ := invocation.Arg("store-id")
					ctx, cancel := withTimeout(ctx)
					defer cancel()

					store, err := options.Client.GetKeyValueStore(ctx, id)
					if err != nil {
						return clientError(fmt.Sprintf("getting key-value store %q", id), err)
					}
					if done, err := cli.EmitJSON(invocation, options.Stdout, store); done {
						return err
					}
					return fields(options.Stdout, [][2]string{
						{"ID", store.ID},
						{"Name", orDash(store.Name)},
						{"Modified", timestamp(store.ModifiedAt)},
					})
				},
			},
		},
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
