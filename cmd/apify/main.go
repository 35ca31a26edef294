// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/apify/apify-cli/cmd/apify/cli"
	"github.com/apify/apify-cli/cmd/apify/commands"
	"github.com/apify/apify-cli/lib/config"
	"github.com/apify/apify-cli/lib/process"
	"github.com/apify/apify-cli/lib/telemetry"
)

func main() {
	err := run()
	cli.ReportError(os.Stderr, err)
	process.Exit(cli.ExitCode(err))
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		process.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		process.Fatal(fmt.Errorf("invalid configuration: %w", err))
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := telemetry.Open(telemetry.Options{
		Home:     cfg.Home,
		Disabled: cfg.Telemetry.Disabled,
		Notice:   os.Stderr,
		Logger:   logger,
	})

	app, err := commands.NewApp(commands.Dependencies{Config: cfg, Logger: logger}, tracker)
	if err != nil {
		return err
	}
	return app.Execute(ctx, os.Args[1:])
}
