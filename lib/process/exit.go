// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"os"
)

// Fatal writes "error: err" to stderr and exits with code 1. Use it in
// main() for start-up errors where the structured logger may not be
// initialized.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// Exit flushes nothing and exits with code. It exists so main has a
// single exit point alongside [Fatal].
func Exit(code int) {
	os.Exit(code)
}
