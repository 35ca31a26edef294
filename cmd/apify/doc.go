// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Apify is the command-line interface for developing actors locally
// and inspecting them on the Apify platform. It provides project
// commands (create, run, doctor), platform resource listings (actors,
// builds, datasets, key-value-stores) and telemetry preferences.
package main
