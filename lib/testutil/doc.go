// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for apify packages.
//
// [WriteTree] lays out a project fixture (package.json,
// requirements.txt, scrapy.cfg and friends) under a temporary
// directory from a path-to-content map.
//
// [FakeExecutable] writes a shell script into a directory so that
// runtime detection can be exercised against a controlled PATH
// without the real interpreters installed.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no apify-internal dependencies.
package testutil
