// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package storage manages the local storage directory an actor uses
// when run on a developer machine.
//
// The layout mirrors the platform's default storages:
//
//	storage/
//	  datasets/default/
//	  key_value_stores/default/INPUT.json
//	  request_queues/default/
//
// [Local] writes the run input, purges default storages before a run
// and reports whether a previous run left state behind. [Local.Env]
// returns the environment variables that point the SDKs at the
// directory.
package storage
