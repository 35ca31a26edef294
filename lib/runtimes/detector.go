// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Candidate is one executable a [Detector] may select.
type Candidate struct {
	// Name is looked up on the search path.
	Name string

	// VersionArgs make the executable print its version.
	VersionArgs []string

	// Companion is a package manager probed with --version when this
	// candidate is selected.
	Companion string

	// SelfManaged candidates act as their own package manager; their
	// name is also reported as the runtime shorthand.
	SelfManaged bool
}

// JavaScriptCandidates returns node, deno and bun in preference order.
// deno and bun report the Node.js version they are compatible with.
func JavaScriptCandidates() []Candidate {
	return []Candidate{
		{Name: "node", VersionArgs: []string{"--version"}, Companion: "npm"},
		{Name: "deno", VersionArgs: []string{"eval", "console.log(process.versions.node)"}, SelfManaged: true},
		{Name: "bun", VersionArgs: []string{"--eval", "console.log(process.versions.node)"}, SelfManaged: true},
	}
}

// Detector probes candidates in order and returns the first that
// reports a version.
type Detector struct {
	Candidates []Candidate

	// Prober defaults to [ExecProber].
	Prober Prober

	// ProbeTimeout bounds each probe. Zero means DefaultProbeTimeout.
	ProbeTimeout time.Duration

	Logger *slog.Logger
}

// NewJavaScriptDetector returns a detector for JavaScript runtimes.
func NewJavaScriptDetector(logger *slog.Logger) *Detector {
	return &Detector{Candidates: JavaScriptCandidates(), Logger: logger}
}

// Detect returns the first candidate found on the search path whose
// version probe prints something. ok is false when no candidate
// qualifies.
func (d *Detector) Detect(ctx context.Context) (Info, bool) {
	for _, candidate := range d.Candidates {
		path, err := d.prober().LookPath(candidate.Name)
		if err != nil {
			d.logger().Debug("runtime not on search path", "runtime", candidate.Name)
			continue
		}
		version := probeVersion(ctx, d.prober(), d.ProbeTimeout, path, candidate.VersionArgs)
		if version == "" {
			d.logger().Debug("runtime version probe failed", "runtime", candidate.Name, "path", path)
			continue
		}

		info := Info{ExecutablePath: path, Version: version}
		if candidate.SelfManaged {
			info.Shorthand = candidate.Name
			info.PackageManagerName = candidate.Name
			info.PackageManagerPath = path
			info.PackageManagerVersion = version
		} else if candidate.Companion != "" {
			if companionPath, err := d.prober().LookPath(candidate.Companion); err == nil {
				info.PackageManagerName = candidate.Companion
				info.PackageManagerPath = companionPath
				info.PackageManagerVersion = probeVersion(ctx, d.prober(), d.ProbeTimeout, companionPath, []string{"--version"})
			}
		}
		d.logger().Debug("runtime detected", "runtime", candidate.Name, "path", path, "version", version)
		return info, true
	}
	return Info{}, false
}

// Find implements [Finder]. JavaScript runtimes do not depend on the
// project directory.
func (d *Detector) Find(ctx context.Context, projectRoot string) (Info, bool) {
	return d.Detect(ctx)
}

func (d *Detector) prober() Prober {
	if d.Prober == nil {
		return ExecProber{}
	}
	return d.Prober
}

func (d *Detector) logger() *slog.Logger {
	return loggerOrDiscard(d.Logger)
}

// probeVersion runs one version probe under its own timeout and
// returns the normalized output, or "" on any failure.
func probeVersion(ctx context.Context, prober Prober, timeout time.Duration, path string, args []string) string {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	output, err := prober.Output(probeCtx, path, args...)
	if err != nil {
		return ""
	}
	return normalizeVersion(output)
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
