// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "maps"

// ArgValue is one positional argument after parsing.
type ArgValue struct {
	Name  string
	Value string

	// Set is false when the argument received no value.
	Set bool
}

// Invocation is the parsed form of one command invocation: the
// resolved path, coerced flag values, ordered argument values, and the
// raw piped input when any was read.
type Invocation struct {
	// Path is the canonical space-joined command path.
	Path string

	// Stdin holds the piped input consumed by a stdin-mode argument or
	// flag, or nil when none was read.
	Stdin []byte

	flags   map[string]any
	present map[string]bool
	args    []ArgValue
}

// NewInvocation builds an invocation directly. Command tests use it
// to call Run functions without going through the parser.
func NewInvocation(path string, flags map[string]any, args ...ArgValue) *Invocation {
	invocation := &Invocation{
		Path:    path,
		flags:   make(map[string]any, len(flags)),
		present: make(map[string]bool, len(flags)),
		args:    append([]ArgValue(nil), args...),
	}
	for name, value := range flags {
		invocation.flags[name] = value
		invocation.present[name] = true
	}
	return invocation
}

// String returns a string or choice flag's value, or "" when unset.
func (i *Invocation) String(name string) string {
	value, _ := i.flags[name].(string)
	return value
}

// Int returns an integer flag's value, or its default when absent.
func (i *Invocation) Int(name string) int {
	value, _ := i.flags[name].(int)
	return value
}

// Bool returns a boolean flag's value.
func (i *Invocation) Bool(name string) bool {
	value, _ := i.flags[name].(bool)
	return value
}

// IsSet reports whether the flag was given on the command line, as
// opposed to reading its default.
func (i *Invocation) IsSet(name string) bool {
	return i.present[name]
}

// Flags returns a copy of all flag values that are set or defaulted.
func (i *Invocation) Flags() map[string]any {
	return maps.Clone(i.flags)
}

// Arg returns the value of the named positional argument.
func (i *Invocation) Arg(name string) (string, bool) {
	for _, arg := range i.args {
		if arg.Name == name {
			return arg.Value, arg.Set
		}
	}
	return "", false
}

// Args returns the positional arguments in declaration order.
func (i *Invocation) Args() []ArgValue {
	return append([]ArgValue(nil), i.args...)
}
