// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package cli

// isRedirected treats any non-terminal input as redirected.
func isRedirected(fd int) bool {
	return true
}
