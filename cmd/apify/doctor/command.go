// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/apify/apify-cli/cmd/apify/cli"
	"github.com/apify/apify-cli/cmd/apify/cli/doctor"
	"github.com/apify/apify-cli/lib/project"
	"github.com/apify/apify-cli/lib/runtimes"
)

// Options carries the collaborators the doctor command needs.
type Options struct {
	Stdout io.Writer

	JavaScript runtimes.Finder
	Python     runtimes.Finder

	// WorkingDirectory returns the project root to inspect.
	WorkingDirectory func() (string, error)
}

// Command returns the "apify doctor" command.
func Command(options Options) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Summary: "Check that the local environment can run this project",
		Description: `Check the local development environment: JavaScript and Python
runtimes, package managers, the project type and entrypoint detected in
the current directory, the actor configuration, and Scrapy spiders.

Failed checks print a hint describing how to fix them, and the command
exits with status 1.`,
		Flags: []cli.Flag{cli.JSONFlag()},
		Examples: []cli.Example{
			{
				Description: "Check the current project",
				Command:     "apify doctor",
			},
			{
				Description: "Machine-readable output",
				Command:     "apify doctor --json",
			},
		},
		Run: func(ctx context.Context, invocation *cli.Invocation, logger *slog.Logger) error {
			root, err := options.WorkingDirectory()
			if err != nil {
				return cli.Internal("resolving working directory: %w", err)
			}
			results := runChecks(ctx, root, options, logger)

			if done, err := cli.EmitJSON(invocation, options.Stdout, doctor.BuildJSON(results)); done {
				if err != nil {
					return err
				}
				if hasFailure(results) {
					return &cli.ExitError{Code: 1}
				}
				return nil
			}
			return doctor.PrintChecklist(options.Stdout, results)
		},
	}
}

func runChecks(ctx context.Context, root string, options Options, logger *slog.Logger) []doctor.Result {
	var results []doctor.Result
	results = append(results, checkJavaScript(ctx, root, options.JavaScript)...)
	results = append(results, checkPython(ctx, root, options.Python))
	results = append(results, checkProjectType(root, logger))
	results = append(results, checkEntrypoint(ctx, root))
	results = append(results, checkActorConfig(root))
	results = append(results, checkSpiders(root))
	return results
}

func hasFailure(results []doctor.Result) bool {
	for _, result := range results {
		if result.Status == doctor.StatusFail {
			return true
		}
	}
	return false
}

func checkJavaScript(ctx context.Context, root string, finder runtimes.Finder) []doctor.Result {
	if finder == nil {
		return []doctor.Result{doctor.Skip("javascript runtime", "detection disabled")}
	}
	info, ok := finder.Find(ctx, root)
	if !ok {
		return []doctor.Result{
			doctor.Warn("javascript runtime", "no node, deno or bun found on PATH"),
			doctor.Skip("package manager", "no javascript runtime"),
		}
	}

	name := info.Shorthand
	if name == "" {
		name = "node"
	}
	results := []doctor.Result{
		doctor.Pass("javascript runtime", fmt.Sprintf("%s %s at %s", name, info.Version, info.ExecutablePath)),
	}
	if info.PackageManagerPath == "" {
		results = append(results, doctor.Warn("package manager", "npm not found on PATH"))
	} else {
		results = append(results, doctor.Pass("package manager",
			fmt.Sprintf("%s %s at %s", info.PackageManagerName, info.PackageManagerVersion, info.PackageManagerPath)))
	}
	return results
}

func checkPython(ctx context.Context, root string, finder runtimes.Finder) doctor.Result {
	if finder == nil {
		return doctor.Skip("python runtime", "detection disabled")
	}
	info, ok := finder.Find(ctx, root)
	if !ok {
		return doctor.Warn("python runtime", "no python3 or python found on PATH or in .venv")
	}
	message := fmt.Sprintf("python %s at %s", info.Version, info.ExecutablePath)
	if !runtimes.PythonVersionSupported(info.Version) {
		return doctor.FailWithHint("python runtime", message,
			fmt.Sprintf("install Python %s or newer", runtimes.MinimumPythonVersion))
	}
	return doctor.Pass("python runtime", message)
}

func checkProjectType(root string, logger *slog.Logger) doctor.Result {
	types := project.DefaultChain().All(root)
	names := make([]string, len(types))
	for index, projectType := range types {
		names[index] = string(projectType)
	}
	logger.Debug("project analyzers", "types", names)
	if len(types) == 1 && types[0] == project.TypeUnknown {
		return doctor.Warn("project type", "no known SDK or framework detected")
	}
	return doctor.Pass("project type", strings.Join(names, ", "))
}

func checkEntrypoint(ctx context.Context, root string) doctor.Result {
	detected, err := project.Detect(ctx, root, project.Detectors{})
	if err != nil {
		return doctor.Fail("entrypoint", err.Error())
	}
	if detected.Language == project.LanguageUnknown || detected.Entrypoint == nil {
		return doctor.FailWithHint("entrypoint", "no entrypoint found",
			"add a package.json start script or src/__main__.py")
	}
	entrypoint := detected.Entrypoint.Path
	if detected.Entrypoint.Script != "" {
		entrypoint = "package.json script " + detected.Entrypoint.Script
	}
	return doctor.Pass("entrypoint", fmt.Sprintf("%s (%s)", entrypoint, detected.Language))
}

func checkActorConfig(root string) doctor.Result {
	config, err := project.ReadActorConfig(root)
	if err != nil {
		return doctor.Fail("actor config", err.Error())
	}
	if config == nil {
		return doctor.Warn("actor config", project.ActorConfigPath+" not found")
	}
	if config.Name == "" {
		return doctor.FailWithHint("actor config", project.ActorConfigPath+" has no name",
			`set "name" in `+project.ActorConfigPath)
	}
	return doctor.Pass("actor config", config.Name)
}

func checkSpiders(root string) doctor.Result {
	if !project.IsScrapyProject(root) {
		return doctor.Skip("scrapy spiders", "not a Scrapy project")
	}
	config, err := project.ReadScrapyConfig(root)
	if err != nil {
		return doctor.Fail("scrapy spiders", err.Error())
	}
	spiders, err := config.Spiders(root)
	if err != nil {
		return doctor.Fail("scrapy spiders", err.Error())
	}
	if len(spiders) == 0 {
		return doctor.Warn("scrapy spiders", "no spider classes found")
	}
	names := make([]string, len(spiders))
	for index, spider := range spiders {
		names[index] = spider.ClassName
	}
	return doctor.Pass("scrapy spiders", strings.Join(names, ", "))
}
