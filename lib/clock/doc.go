// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Production code accepts a Clock instead of calling time.Now
// directly. In production, Real() provides the standard library
// behavior. In tests, Fake() provides a clock that moves only when
// Advance or Set is called, so timestamps in telemetry events and run
// summaries are deterministic:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	tracker := telemetry.NewSpool(path, c, logger)
//	c.Advance(5 * time.Second)
package clock
