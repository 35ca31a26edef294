// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor implements "apify doctor", a checklist of everything
// needed to run the project in the current directory locally: the
// JavaScript and Python runtimes, their package managers, the detected
// project type and entrypoint, the actor configuration and, for
// Scrapy projects, the discovered spiders.
package doctor
