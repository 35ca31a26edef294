// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/apify/apify-cli/cmd/apify/cli"
)

// PrintChecklist prints check results as a human-readable checklist.
// Hints for failed checks are listed under their check. Returns an
// [cli.ExitError] with code 1 when any check failed.
func PrintChecklist(writer io.Writer, results []Result) error {
	anyFailed := false
	for _, result := range results {
		prefix := strings.ToUpper(string(result.Status))
		fmt.Fprintf(writer, "[%-4s]  %-28s  %s\n", prefix, result.Name, result.Message)
		if result.Status == StatusFail {
			anyFailed = true
			if result.Hint != "" {
				fmt.Fprintf(writer, "        %-28s  hint: %s\n", "", result.Hint)
			}
		}
	}

	fmt.Fprintln(writer)

	if anyFailed {
		fmt.Fprintln(writer, "Some checks failed.")
		return &cli.ExitError{Code: 1}
	}
	fmt.Fprintln(writer, "All checks passed.")
	return nil
}
