// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package git provides typed access to the git CLI. The CLI uses git
// to initialize a repository in newly created actor projects. All
// commands target a specific directory via the -C flag, which every
// Repository method injects.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Repository represents a git working tree at a specific directory.
// All operations target this directory via "git -C <dir>". There is
// no default directory: callers always say which repository they mean.
type Repository struct {
	dir string

	// executable defaults to "git". Tests point it at a fake.
	executable string
}

// NewRepository returns a Repository targeting the given directory.
// The directory need not be a repository yet; see [Repository.Init].
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir, executable: "git"}
}

// Dir returns the repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Run executes a git command targeting this repository and returns
// stdout. Stderr is captured separately and included in error messages
// on failure.
func (r *Repository) Run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", r.dir}, args...)
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, r.executable, fullArgs...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("git %s in %s: %w (stderr: %s)",
			strings.Join(args, " "), r.dir, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Init creates an empty repository in the directory. Re-running it in
// an existing repository is harmless.
func (r *Repository) Init(ctx context.Context) error {
	_, err := r.Run(ctx, "init", "--quiet")
	return err
}

// InsideWorkTree reports whether the directory is already part of a
// git working tree, such as a project created inside a monorepo.
func (r *Repository) InsideWorkTree(ctx context.Context) bool {
	output, err := r.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(output) == "true"
}
