// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the apify CLI.
//
// Commands are declared as data: a [Command] record carries a name,
// descriptions, aliases, an ordered list of [Flag] and [Arg]
// descriptors built with [StringFlag], [IntegerFlag], [BooleanFlag]
// and [StringArg], nested subcommands, and a Run function. The tree is
// loaded into a [Registry] once at start-up, keyed by the space-joined
// command path ("actors build"). Registration rejects path collisions
// with [DuplicateCommandError] and malformed descriptors with
// [DescriptorError].
//
// [App.Execute] is the dispatch boundary. It resolves the longest
// command path from argv with [Registry.Resolve], short-circuits to the
// [HelpRenderer] when a help marker is present, suggests corrections
// for unknown commands via [Registry.Suggest] (Levenshtein distance and
// Jaro-Winkler similarity), and otherwise parses the remaining tokens
// into an [Invocation] with [Parse] before calling the command body.
//
// Every user-input failure is a typed error (see errors.go) that
// travels back to main, where [ReportError] prints it and [ExitCode]
// maps it to the process exit status.
//
// The maximum line width for help output is a lazily computed value
// owned by the [App] ([LineWidth]): APIFY_CLI_MAX_LINE_WIDTH wins, a
// non-interactive stdout gets 80 columns, and a terminal gets its width
// clamped to at least 40.
package cli
