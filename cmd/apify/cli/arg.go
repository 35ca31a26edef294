// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// Arg describes one positional argument. Positionals are assigned in
// declaration order; a catch-all argument must be declared last and
// receives every remaining token joined with single spaces.
type Arg struct {
	name        string
	description string
	required    bool
	stdin       bool
	catchAll    bool
}

// ArgOptions configures a positional argument.
type ArgOptions struct {
	Description string
	Required    bool

	// Stdin fills the argument from piped standard input when no value
	// was given on the command line, or when the value is "-".
	Stdin bool

	// CatchAll collects all remaining positional tokens.
	CatchAll bool
}

// StringArg builds a string positional argument.
func StringArg(name string, options ArgOptions) Arg {
	return Arg{
		name:        name,
		description: options.Description,
		required:    options.Required,
		stdin:       options.Stdin,
		catchAll:    options.CatchAll,
	}
}

func (a Arg) Name() string        { return a.name }
func (a Arg) Description() string { return a.description }
func (a Arg) Required() bool      { return a.required }
func (a Arg) Stdin() bool         { return a.stdin }
func (a Arg) CatchAll() bool      { return a.catchAll }
