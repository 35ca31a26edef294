// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package project classifies the project in a directory: which SDK
// generation or framework it targets, and how to start it.
//
// Classification is a [Chain] of rules, each pairing a [Type] with an
// [Analyzer]. An analyzer answers a single question about a directory
// with a boolean and never fails: unreadable or malformed manifests
// simply make it not applicable. [DefaultChain] lists the rules in
// priority order: Scrapy, Crawlee, then the legacy Apify SDK.
//
// Manifests are package.json (read with comment tolerance via
// tidwall/jsonc) and requirements.txt. Version constraints in
// package.json are compared with Masterminds/semver after stripping a
// leading "~" or "^".
//
// [Detect] goes further than classification: it decides the project
// language, its entrypoint, and (through the runtimes package) the
// interpreter that can run it. [ReadScrapyConfig] and [ScanSpiders]
// read Scrapy project metadata; [ReadActorConfig] reads
// .actor/actor.json.
package project
