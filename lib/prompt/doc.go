// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt asks the user for input on a terminal. Each prompt is
// a small bubbletea program: [TextModel] reads one line with a
// bubbles text input and re-asks until the answer validates,
// [SelectModel] picks one entry from a list with the arrow keys or
// j/k.
//
// [Terminal] runs the models against the given streams. Callers decide
// whether the session is interactive (see [IsTerminal]) and fall back
// to flags and defaults when it is not.
package prompt
