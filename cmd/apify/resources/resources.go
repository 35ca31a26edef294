// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/apify/apify-cli/cmd/apify/cli"
	"github.com/apify/apify-cli/lib/platform"
)

// requestTimeout bounds every platform call.
const requestTimeout = 30 * time.Second

// Options carries the collaborators the resource commands need.
type Options struct {
	Stdout io.Writer

	Client platform.Client

	// WorkingDirectory locates the project whose actor "builds ls"
	// lists when --actor is not given.
	WorkingDirectory func() (string, error)
}

// Commands returns the resource groups in registration order.
func Commands(options Options) []*cli.Command {
	return []*cli.Command{
		actorsCommand(options),
		buildsCommand(options),
		datasetsCommand(options),
		keyValueStoresCommand(options),
	}
}

// listFlags are shared by every "ls" command.
func listFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntegerFlag("offset", cli.IntegerFlagOptions{
			Description: "Number of resources to skip.",
		}),
		cli.IntegerFlag("limit", cli.IntegerFlagOptions{
			Description: "Number of resources to list.",
			Default:     20,
		}),
		cli.BooleanFlag("desc", cli.BooleanFlagOptions{
			Description: "List the most recently modified resources first.",
		}),
		cli.JSONFlag(),
	}
}

func listOptions(invocation *cli.Invocation) (platform.ListOptions, error) {
	options := platform.ListOptions{
		Offset:     invocation.Int("offset"),
		Limit:      invocation.Int("limit"),
		Descending: invocation.Bool("desc"),
	}
	if options.Offset < 0 {
		return options, cli.Validation("--offset must not be negative")
	}
	if options.Limit < 1 {
		return options, cli.Validation("--limit must be at least 1")
	}
	return options, nil
}

// idArg declares the required identifier argument of "info" commands.
func idArg(name, description string) []cli.Arg {
	return []cli.Arg{cli.StringArg(name, cli.ArgOptions{Description: description, Required: true})}
}

// withTimeout bounds ctx by requestTimeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, requestTimeout)
}

// clientError categorizes a platform client failure.
func clientError(action string, err error) error {
	switch {
	case errors.Is(err, platform.ErrNotConfigured):
		return cli.Unavailable("%s: %w", action, err)
	case errors.Is(err, platform.ErrNotFound):
		return cli.NotFound("%s: %w", action, err)
	default:
		return cli.Internal("%s: %w", action, err)
	}
}

// table writes tab-separated rows aligned into columns.
func table(writer io.Writer, header string, rows []string) error {
	tabs := tabwriter.NewWriter(writer, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tabs, header)
	for _, row := range rows {
		fmt.Fprintln(tabs, row)
	}
	return tabs.Flush()
}

// fields writes "Label: value" lines aligned on the colon.
func fields(writer io.Writer, pairs [][2]string) error {
	tabs := tabwriter.NewWriter(writer, 2, 0, 1, ' ', 0)
	for _, pair := range pairs {
		fmt.Fprintf(tabs, "%s:\t%s\n", pair[0], pair[1])
	}
	return tabs.Flush()
}

// timestamp formats t for tables, "-" for the zero time.
func timestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
