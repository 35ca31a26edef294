// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry records anonymous CLI usage events.
//
// The persisted [State] (telemetry.json in the CLI home directory)
// holds whether collection is enabled and the anonymous identifier
// attached to every event. The identifier is "CLI:" followed by a
// random UUID and is created on first use, at which point a notice is
// printed so the user learns how to opt out.
//
// [Tracker] is the fire-and-forget sink the command dispatcher calls
// after a successful parse. [Spool] appends events as JSON lines to a
// local queue file for a separate uploader; transmission itself is
// not part of this package. Every Tracker swallows its own failures:
// telemetry must never change the outcome of a command.
//
// Collection is off when APIFY_CLI_DISABLE_TELEMETRY is set to
// anything other than "", "false" or "0", or when the stored state
// says so.
package telemetry
