// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package resources implements the platform resource command groups:
// "actors", "builds", "datasets" and "key-value-stores" (alias "kvs").
//
// Each group offers "ls" to list resources and "info" to show one.
// The commands only format what the [platform.Client] returns; the
// client owns every network interaction.
package resources
