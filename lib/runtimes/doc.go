// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package runtimes finds an interpreter able to run a project.
//
// A [Detector] probes an ordered list of [Candidate] executables: each
// is looked up on the search path and asked for its version. The first
// candidate that answers with non-empty output wins. Lookup failures,
// probe failures and empty output all mean "absent" and move on to the
// next candidate; detection itself never fails. Every probe runs under
// its own timeout so a hung interpreter cannot stall the CLI.
//
// [JavaScriptCandidates] prefers node (with npm as its package
// manager), then deno and bun, which act as their own package
// managers. [PythonDetector] prefers the project's virtual environment
// and then python3 and python on the search path.
//
// Process execution goes through the [Prober] interface; [ExecProber]
// is the os/exec implementation.
package runtimes
