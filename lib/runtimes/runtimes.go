// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultProbeTimeout bounds each version probe.
const DefaultProbeTimeout = 10 * time.Second

// ErrNoRuntime is returned by callers that require a runtime when
// detection found none.
var ErrNoRuntime = errors.New("no suitable runtime found on the search path")

// Info describes a detected runtime. Package manager fields are empty
// when no package manager was found.
type Info struct {
	ExecutablePath string `json:"executable_path"`
	Version        string `json:"version"`

	// Shorthand is set for runtimes that are not the primary candidate,
	// e.g. "bun", so callers can pick the right invocation style.
	Shorthand string `json:"shorthand,omitempty"`

	PackageManagerName    string `json:"package_manager_name,omitempty"`
	PackageManagerPath    string `json:"package_manager_path,omitempty"`
	PackageManagerVersion string `json:"package_manager_version,omitempty"`
}

// Finder locates a runtime for the project at projectRoot.
type Finder interface {
	Find(ctx context.Context, projectRoot string) (Info, bool)
}

// Prober runs executables on behalf of a detector.
type Prober interface {
	// LookPath resolves name on the search path.
	LookPath(name string) (string, error)

	// Output runs path with args and returns its standard output.
	Output(ctx context.Context, path string, args ...string) (string, error)
}

// ExecProber implements [Prober] with os/exec.
type ExecProber struct{}

func (ExecProber) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (ExecProber) Output(ctx context.Context, path string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, path, args...).Output()
	return string(output), err
}

// normalizeVersion trims whitespace and one leading "v".
func normalizeVersion(output string) string {
	return strings.TrimPrefix(strings.TrimSpace(output), "v")
}
