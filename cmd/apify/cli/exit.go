// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. A command returns it when it has already written its
// own output and a non-zero exit is an expected outcome, such as
// "doctor" finding failed checks or "run" propagating the exit status
// of the project's process.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCode maps an error returned by [App.Execute] to a process exit
// status: 0 for nil, the code carried by an error implementing
// ExitCode() int, and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// ReportError writes err for the user. Errors carrying an explicit
// exit code are silent, since their command already reported.
func ReportError(writer io.Writer, err error) {
	if err == nil {
		return
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return
	}
	fmt.Fprintf(writer, "error: %v\n", err)
}
