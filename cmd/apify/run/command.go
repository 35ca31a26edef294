// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/apify/apify-cli/cmd/apify/cli"
	"github.com/apify/apify-cli/lib/clock"
	"github.com/apify/apify-cli/lib/project"
	"github.com/apify/apify-cli/lib/runtimes"
	"github.com/apify/apify-cli/lib/storage"
)

// nodeHeaderOption restores the larger HTTP header limit scrapers need.
const nodeHeaderOption = "--max-http-header-size=80000"

// Options carries the collaborators the run command needs.
type Options struct {
	Stderr io.Writer

	JavaScript runtimes.Finder
	Python     runtimes.Finder

	Executor Executor

	// StorageDirectory is the configured storage directory, relative
	// to the project root unless absolute.
	StorageDirectory string

	// Environ returns the process environment. Defaults to os.Environ.
	Environ func() []string

	WorkingDirectory func() (string, error)

	Clock clock.Clock
}

// Command returns the "apify run" command.
func Command(options Options) *cli.Command {
	return &cli.Command{
		Name:    "run",
		Summary: "Run the actor locally in the current directory",
		Description: `Run the actor locally in the current directory.

The actor's storages (datasets, key-value stores and request queues) are
kept in the local "storage" directory instead of on the platform. Input
given with --input (or piped to standard input with --input=-) is
written to the default key-value store as INPUT before the run starts.

JavaScript projects run their package.json "start" script or main file
with the detected runtime. Python projects run "python -m <module>" for
the directory holding __main__.py.`,
		Flags: []cli.Flag{
			cli.StringFlag("input", cli.StringFlagOptions{
				Description: `JSON input for the run. Use "-" to read it from standard input.`,
				Aliases:     []string{"i"},
				Stdin:       true,
			}),
			cli.BooleanFlag("purge", cli.BooleanFlagOptions{
				Description: "Purge the default dataset, request queue and key-value store (except INPUT) before the run starts.",
				Aliases:     []string{"p"},
			}),
			cli.BooleanFlag("purge-queue", cli.BooleanFlagOptions{
				Description: "Delete the default request queue before the run starts.",
			}),
			cli.BooleanFlag("purge-dataset", cli.BooleanFlagOptions{
				Description: "Delete the default dataset before the run starts.",
			}),
			cli.BooleanFlag("purge-key-value-store", cli.BooleanFlagOptions{
				Description: "Delete all records of the default key-value store except INPUT before the run starts.",
			}),
			cli.StringFlag("entrypoint", cli.StringFlagOptions{
				Description: "Script or file to run instead of the detected entrypoint.",
				Hidden:      true,
			}),
		},
		Examples: []cli.Example{
			{
				Description: "Run the actor with a fresh storage",
				Command:     "apify run --purge",
			},
			{
				Description: "Run with input from a file",
				Command:     "apify run --input=- < input.json",
			},
		},
		Run: func(ctx context.Context, invocation *cli.Invocation, logger *slog.Logger) error {
			return execute(ctx, options, invocation, logger)
		},
	}
}

func execute(ctx context.Context, options Options, invocation *cli.Invocation, logger *slog.Logger) error {
	root, err := options.WorkingDirectory()
	if err != nil {
		return cli.Internal("resolving working directory: %w", err)
	}

	detected, err := project.Detect(ctx, root, project.Detectors{
		JavaScript: options.JavaScript,
		Python:     options.Python,
	})
	if err != nil {
		return cli.Validation("inspecting project: %w", err)
	}
	if entrypoint := invocation.String("entrypoint"); entrypoint != "" {
		detected.Entrypoint = overrideEntrypoint(root, detected, entrypoint)
	}
	if detected.Language == project.LanguageUnknown || detected.Entrypoint == nil {
		return cli.NotFound("actor is of an unknown format: make sure either the package.json file or the src/__main__.py file exists, or run inside a Scrapy project")
	}
	logger.Debug("project detected", "language", detected.Language, "entrypoint", detected.Entrypoint)

	local := storage.Open(root, options.StorageDirectory)
	purgeOnStart, err := prepareStorage(root, local, invocation, options.Stderr, logger)
	if err != nil {
		return err
	}

	environment, err := buildEnvironment(root, local, purgeOnStart, options.environ())
	if err != nil {
		return err
	}

	process, err := buildProcess(detected, environment)
	if err != nil {
		return err
	}
	process.Directory = root

	clk := options.Clock
	if clk == nil {
		clk = clock.Real()
	}
	started := clk.Now()
	logger.Debug("starting actor", "path", process.Path, "args", process.Args)
	err = options.Executor.Execute(ctx, process)
	logger.Debug("actor finished", "duration", clk.Since(started), "error", err)
	return err
}

// prepareStorage migrates the legacy directory, writes the input and
// applies the purge flags. It reports whether Crawlee should purge on
// start itself.
func prepareStorage(root string, local *storage.Local, invocation *cli.Invocation, stderr io.Writer, logger *slog.Logger) (bool, error) {
	migrated, err := local.MigrateLegacy(root)
	if err != nil {
		return false, cli.Internal("%w", err)
	}
	if migrated {
		fmt.Fprintf(stderr, "Warning: the legacy %q directory was renamed to %q. Contents were left intact.\n",
			storage.LegacyDirectory, local.Directory)
	}

	if invocation.IsSet("input") {
		if err := local.WriteInput([]byte(invocation.String("input"))); err != nil {
			return false, cli.Internal("%w", err)
		}
		logger.Debug("input written", "store", local.DefaultKeyValueStore())
	}

	purgeOnStart := false
	purge := invocation.Bool("purge")
	if purge {
		if project.DefaultChain().First(root) == project.TypeCrawlee {
			purgeOnStart = true
		} else {
			if err := local.Purge(); err != nil {
				return false, cli.Internal("purging local storage: %w", err)
			}
			fmt.Fprintln(stderr, "All default local stores were purged.")
		}
	}

	steps := []struct {
		flag    string
		purge   func() error
		message string
	}{
		{"purge-queue", local.PurgeDefaultRequestQueue, "Default local request queue was purged."},
		{"purge-dataset", local.PurgeDefaultDataset, "Default local dataset was purged."},
		{"purge-key-value-store", local.PurgeDefaultKeyValueStore, "Default local key-value store was purged."},
	}
	for _, step := range steps {
		if !invocation.Bool(step.flag) {
			continue
		}
		if err := step.purge(); err != nil {
			return false, cli.Internal("%w", err)
		}
		fmt.Fprintln(stderr, step.message)
	}

	if !purge {
		empty, err := local.IsEmpty()
		if err != nil {
			return false, cli.Internal("inspecting local storage: %w", err)
		}
		if !empty {
			fmt.Fprintln(stderr, "Warning: the storage directory contains a previous state, the actor will continue where it left off. "+
				"To start from the initial state, use --purge to clean the storage directory.")
		}
	}
	return purgeOnStart, nil
}

// buildEnvironment layers the storage variables, then the actor's
// configured environment variables, then the process environment,
// later layers winning.
func buildEnvironment(root string, local *storage.Local, purgeOnStart bool, environ []string) (map[string]string, error) {
	environment := local.Env(purgeOnStart)

	config, err := project.ReadActorConfig(root)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if config != nil {
		maps.Copy(environment, config.Environment)
	}

	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok {
			environment[key] = value
		}
	}
	return environment, nil
}

// buildProcess picks the command line for the detected project.
func buildProcess(detected *project.Project, environment map[string]string) (Process, error) {
	if detected.Runtime == nil {
		switch detected.Language {
		case project.LanguageJavaScript:
			return Process{}, cli.NotFound("%w: install Node.js to run JavaScript actors locally", runtimes.ErrNoRuntime)
		default:
			return Process{}, cli.NotFound("%w: install Python %s or newer to run Python actors locally",
				runtimes.ErrNoRuntime, runtimes.MinimumPythonVersion)
		}
	}
	info := detected.Runtime

	var process Process
	switch detected.Language {
	case project.LanguageJavaScript:
		if info.Shorthand == "" {
			if existing := environment["NODE_OPTIONS"]; existing != "" {
				environment["NODE_OPTIONS"] = existing + " " + nodeHeaderOption
			} else {
				environment["NODE_OPTIONS"] = nodeHeaderOption
			}
		}
		if script := detected.Entrypoint.Script; script != "" {
			if info.PackageManagerPath == "" {
				return Process{}, cli.Unavailable("no package manager found to run the %q script", script)
			}
			process = Process{Path: info.PackageManagerPath, Args: scriptArgs(info, script)}
		} else {
			process = Process{Path: info.ExecutablePath, Args: []string{detected.Entrypoint.Path}}
		}

	case project.LanguagePython, project.LanguageScrapy:
		if !runtimes.PythonVersionSupported(info.Version) {
			return Process{}, cli.Validation("python actors require Python %s or newer, but %s is %s",
				runtimes.MinimumPythonVersion, info.ExecutablePath, info.Version)
		}
		module := detected.Entrypoint.Path
		if module == "" {
			module = "src"
		}
		process = Process{Path: info.ExecutablePath, Args: []string{"-m", module}}

	default:
		return Process{}, cli.Validation("cannot run %s projects", detected.Language)
	}

	process.Env = flatten(environment)
	return process, nil
}

// scriptArgs runs a package.json script: "npm start" for npm and the
// runtime's own task runner for deno and bun.
func scriptArgs(info *runtimes.Info, script string) []string {
	switch info.Shorthand {
	case "deno":
		return []string{"task", script}
	case "bun":
		return []string{"run", script}
	default:
		if script == "start" {
			return []string{"start"}
		}
		return []string{"run", script}
	}
}

// overrideEntrypoint maps --entrypoint onto the detected project: a
// package.json script name for JavaScript projects that define it, a
// module for Python projects, a file otherwise.
func overrideEntrypoint(root string, detected *project.Project, value string) *project.Entrypoint {
	switch detected.Language {
	case project.LanguagePython, project.LanguageScrapy:
		return &project.Entrypoint{Path: value}
	}
	if manifest, err := project.ReadPackageManifest(root); err == nil && manifest.Scripts[value] != "" {
		return &project.Entrypoint{Script: value}
	}
	return &project.Entrypoint{Path: value}
}

func flatten(environment map[string]string) []string {
	keys := slices.Sorted(maps.Keys(environment))
	entries := make([]string, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, key+"="+environment[key])
	}
	return entries
}

func (o Options) environ() []string {
	if o.Environ == nil {
		return os.Environ()
	}
	return o.Environ()
}
