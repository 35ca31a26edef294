// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Masterminds/semver/v3"
)

// VirtualEnvDirectory is the project-local virtual environment.
const VirtualEnvDirectory = ".venv"

// MinimumPythonVersion is the oldest Python the SDK supports.
const MinimumPythonVersion = "3.9.0"

var minimumPython = semver.MustParse(MinimumPythonVersion)

// PythonVersionSupported reports whether version is at least
// [MinimumPythonVersion]. Unparseable versions are unsupported.
func PythonVersionSupported(version string) bool {
	parsed, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return !parsed.LessThan(minimumPython)
}

var pythonVersionArgs = []string{"-c", "import platform; print(platform.python_version())"}

// PythonDetector finds a Python interpreter for a project. An active
// virtual environment ($VIRTUAL_ENV) or the project's .venv wins over
// python3 and python on the search path.
type PythonDetector struct {
	// Prober defaults to [ExecProber].
	Prober Prober

	// ProbeTimeout bounds each probe. Zero means DefaultProbeTimeout.
	ProbeTimeout time.Duration

	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	Logger *slog.Logger
}

// Detect returns the first interpreter that reports a version.
func (d *PythonDetector) Detect(ctx context.Context, projectRoot string) (Info, bool) {
	prober := d.Prober
	if prober == nil {
		prober = ExecProber{}
	}
	logger := loggerOrDiscard(d.Logger)

	venvPath := d.virtualEnvInterpreter(projectRoot)
	if _, err := os.Stat(venvPath); err == nil {
		if version := probeVersion(ctx, prober, d.ProbeTimeout, venvPath, pythonVersionArgs); version != "" {
			logger.Debug("python detected in virtual environment", "path", venvPath, "version", version)
			return Info{ExecutablePath: venvPath, Version: version}, true
		}
	}

	fallbacks := []string{"python3", "python"}
	if runtime.GOOS == "windows" {
		fallbacks = append(fallbacks, "python3.exe", "python.exe")
	}
	for _, name := range fallbacks {
		path, err := prober.LookPath(name)
		if err != nil {
			continue
		}
		if version := probeVersion(ctx, prober, d.ProbeTimeout, path, pythonVersionArgs); version != "" {
			logger.Debug("python detected", "path", path, "version", version)
			return Info{ExecutablePath: path, Version: version}, true
		}
	}
	return Info{}, false
}

// Find implements [Finder].
func (d *PythonDetector) Find(ctx context.Context, projectRoot string) (Info, bool) {
	return d.Detect(ctx, projectRoot)
}

func (d *PythonDetector) virtualEnvInterpreter(projectRoot string) string {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	base := getenv("VIRTUAL_ENV")
	if base == "" {
		base = filepath.Join(projectRoot, VirtualEnvDirectory)
	}
	return VirtualEnvInterpreter(base)
}

// VirtualEnvInterpreter returns the Python interpreter inside the
// virtual environment rooted at base.
func VirtualEnvInterpreter(base string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(base, "Scripts", "python.exe")
	}
	return filepath.Join(base, "bin", "python3")
}
