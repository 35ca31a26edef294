// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for the apify
// binary. These functions centralize the raw I/O that happens before
// the structured logger exists or after main has finished:
//
//   - Fatal error reporting to stderr when the logger may not be
//     initialized.
//   - Process exit with the code carried by a command error.
package process
