// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package statefile reads and atomically writes small JSON state files
// such as the telemetry preference under the CLI home directory.
//
// [Write] writes to a temporary file, fsyncs it, renames it into place
// and fsyncs the parent directory, so a concurrent reader (another
// apify process starting up) never sees a partial or corrupt file.
//
// This package has no dependencies on other apify packages.
package statefile
