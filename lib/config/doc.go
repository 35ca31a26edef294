// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the apify CLI.
//
// Configuration comes from three layers, later layers winning:
//
//  1. [Default] values
//  2. the YAML file named by APIFY_CLI_CONFIG, when set (there is no
//     automatic file discovery)
//  3. environment overrides: APIFY_CLI_HOME, APIFY_CLI_DEBUG and
//     APIFY_CLI_DISABLE_TELEMETRY
//
// ${HOME} and ${VAR:-default} patterns are expanded in path fields
// after loading.
//
// Key exports:
//
//   - [Config] -- home directory, debug, telemetry, runtime probing,
//     local storage and platform settings
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [TelemetryDisabledByEnv] -- the APIFY_CLI_DISABLE_TELEMETRY rule
package config
