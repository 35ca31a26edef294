// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package cli

import "golang.org/x/sys/unix"

// isRedirected reports whether fd is a named pipe or a regular file.
// Character devices such as /dev/null are not treated as input.
func isRedirected(fd int) bool {
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return false
	}
	mode := stat.Mode & unix.S_IFMT
	return mode == unix.S_IFIFO || mode == unix.S_IFREG
}
