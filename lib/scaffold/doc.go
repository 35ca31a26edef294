// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package scaffold creates new actor project directories.
//
// [Scaffolder] is the collaborator the create command hands a project
// name and template identifier to. Template content (source files,
// Dockerfiles, READMEs) is fetched and unpacked by template-aware
// implementations outside this module. [Skeleton] is the built-in
// implementation: it validates the request, creates the directory and
// writes the project metadata every template shares, namely
// .actor/actor.json and an empty run input.
package scaffold
