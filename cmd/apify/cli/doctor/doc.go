// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides the result model and output for diagnostic
// checklists such as "apify doctor".
//
// Each check produces a [Result] with a status and message; failing
// checks may carry a hint describing how to fix them. The package
// provides:
//
//   - Constructors: [Pass], [Fail], [FailWithHint], [Warn], [Skip]
//   - [PrintChecklist] for human-readable output
//   - [BuildJSON] for machine-readable output
//
// What to check lives in the command's package; this package only
// formats and aggregates.
package doctor
