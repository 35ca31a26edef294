// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package run implements "apify run", which runs the project in the
// current directory locally.
//
// The command detects the project's language, entrypoint and runtime,
// prepares the local storage directory (optional input, purging,
// legacy directory migration), builds the environment the SDKs read,
// and executes the project with its standard streams attached. The
// project's exit status becomes the CLI's exit status.
package run
