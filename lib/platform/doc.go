// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package platform defines the interface the CLI's resource commands
// use to reach the hosting platform.
//
// [Client] covers the listing and inspection operations of the
// actors, builds, datasets and key-value-stores command groups. The
// wire protocol lives outside this module; until a client is wired
// in, [Unconfigured] answers every call with [ErrNotConfigured] so the
// commands fail with a clear message instead of a nil dereference.
package platform
