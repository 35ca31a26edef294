// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package create

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	runcmd "github.com/apify/apify-cli/cmd/apify/run"
	"github.com/apify/apify-cli/lib/project"
	"github.com/apify/apify-cli/lib/runtimes"
)

// DependencyInstaller installs the dependencies of a new project. It
// reports false when nothing was installed and the user has to
// install them by hand.
type DependencyInstaller interface {
	Install(ctx context.Context, directory string) (bool, error)
}

var pipArgs = []string{"-m", "pip", "install", "--no-cache-dir", "--no-warn-script-location"}

// Installer runs the package manager that matches the project: the
// JavaScript runtime's package manager for package.json, and pip in a
// project virtual environment for requirements.txt. A missing or
// unsupported runtime is logged and leaves the project uninstalled.
type Installer struct {
	JavaScript runtimes.Finder
	Python     runtimes.Finder
	Executor   runcmd.Executor

	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	Logger *slog.Logger
}

// Install implements [DependencyInstaller].
func (i Installer) Install(ctx context.Context, directory string) (bool, error) {
	switch {
	case isFile(filepath.Join(directory, project.PackageManifestFile)):
		return i.installJavaScript(ctx, directory)
	case isFile(filepath.Join(directory, project.RequirementsFile)):
		return i.installPython(ctx, directory)
	}
	return false, nil
}

func (i Installer) installJavaScript(ctx context.Context, directory string) (bool, error) {
	logger := i.logger()
	info, ok := i.JavaScript.Find(ctx, directory)
	if !ok {
		logger.Warn("no JavaScript runtime found; install Node.js to run the actor locally")
		return false, nil
	}
	if info.PackageManagerPath == "" {
		logger.Warn("no package manager found next to the JavaScript runtime", "runtime", info.ExecutablePath)
		return false, nil
	}
	err := i.Executor.Execute(ctx, runcmd.Process{
		Path:      info.PackageManagerPath,
		Args:      []string{"install"},
		Directory: directory,
	})
	if err != nil {
		return false, fmt.Errorf("%s install: %w", info.PackageManagerName, err)
	}
	return true, nil
}

func (i Installer) installPython(ctx context.Context, directory string) (bool, error) {
	logger := i.logger()
	info, ok := i.Python.Find(ctx, directory)
	if !ok {
		logger.Warn("no Python found; install Python to run the actor locally",
			"minimum_version", runtimes.MinimumPythonVersion)
		return false, nil
	}
	if !runtimes.PythonVersionSupported(info.Version) {
		logger.Warn("python version is too old to run actors",
			"version", info.Version, "minimum_version", runtimes.MinimumPythonVersion)
		return false, nil
	}

	python := info.ExecutablePath
	if i.getenv("VIRTUAL_ENV") == "" {
		logger.Info("creating virtual environment", "directory", runtimes.VirtualEnvDirectory)
		if err := i.python(ctx, directory, python, "-m", "venv", "--prompt", ".", runtimes.VirtualEnvDirectory); err != nil {
			return false, err
		}
		python = runtimes.VirtualEnvInterpreter(filepath.Join(directory, runtimes.VirtualEnvDirectory))
	}

	upgrade := append(append([]string{}, pipArgs...), "--upgrade", "pip", "setuptools", "wheel")
	if err := i.python(ctx, directory, python, upgrade...); err != nil {
		return false, err
	}
	requirements := append(append([]string{}, pipArgs...), "-r", project.RequirementsFile)
	if err := i.python(ctx, directory, python, requirements...); err != nil {
		return false, err
	}
	return true, nil
}

func (i Installer) python(ctx context.Context, directory, python string, args ...string) error {
	err := i.Executor.Execute(ctx, runcmd.Process{Path: python, Args: args, Directory: directory})
	if err != nil {
		return fmt.Errorf("python %s %s: %w", args[0], args[1], err)
	}
	return nil
}

func (i Installer) getenv(name string) string {
	if i.Getenv == nil {
		return os.Getenv(name)
	}
	return i.Getenv(name)
}

func (i Installer) logger() *slog.Logger {
	if i.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return i.Logger
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
