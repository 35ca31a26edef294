// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/apify/apify-cli/cmd/apify/cli"
)

// Process is one child process invocation.
type Process struct {
	Path      string
	Args      []string
	Directory string

	// Env is the complete environment in KEY=VALUE form.
	Env []string
}

// Executor runs a child process to completion.
type Executor interface {
	Execute(ctx context.Context, process Process) error
}

// ExecExecutor runs processes with os/exec, attaching the given
// streams. A non-zero exit becomes a [cli.ExitError] carrying the
// child's exit code.
type ExecExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (e ExecExecutor) Execute(ctx context.Context, process Process) error {
	command := exec.CommandContext(ctx, process.Path, process.Args...)
	command.Dir = process.Directory
	command.Env = process.Env
	command.Stdin = e.Stdin
	command.Stdout = e.Stdout
	command.Stderr = e.Stderr

	err := command.Run()
	var exitError *exec.ExitError
	if errors.As(err, &exitError) && exitError.ExitCode() > 0 {
		return &cli.ExitError{Code: exitError.ExitCode()}
	}
	return err
}
