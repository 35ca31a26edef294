// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string

	// Command is the literal command line (without the leading "$ ").
	Command string
}

// RunFunc is the body of a leaf command. The logger is scoped with the
// resolved command path.
type RunFunc func(ctx context.Context, invocation *Invocation, logger *slog.Logger) error

// Command describes one node of the command tree. A command with
// Subcommands and no Run is a group: invoking it bare prints its help.
//
// Commands are plain data. They are loaded into a [Registry] once and
// must not be modified afterwards.
type Command struct {
	// Name is the command's path segment. Unique among its siblings.
	Name string

	// Summary is a one-line description shown in command lists.
	// When empty, the first line of Description is used.
	Summary string

	// Description is the full help text.
	Description string

	// Aliases are alternate path segments shown in help and offered as
	// suggestions.
	Aliases []string

	// HiddenAliases resolve like Aliases but are never displayed or
	// suggested.
	HiddenAliases []string

	// Hidden omits the command from help listings.
	Hidden bool

	Flags       []Flag
	Args        []Arg
	Examples    []Example
	Subcommands []*Command

	Run RunFunc
}

// IsGroup reports whether the command has subcommands.
func (c *Command) IsGroup() bool {
	return len(c.Subcommands) > 0
}

// ShortDescription returns Summary, or the first line of Description.
func (c *Command) ShortDescription() string {
	if c.Summary != "" {
		return c.Summary
	}
	first, _, _ := strings.Cut(c.Description, "\n")
	return first
}

// lookupFlag finds a flag by name or alias.
func (c *Command) lookupFlag(token string) (Flag, bool) {
	for _, flag := range c.Flags {
		if flag.matches(token) {
			return flag, true
		}
	}
	return Flag{}, false
}

// validate checks the descriptor invariants: a name, unique flag names
// and aliases, unique argument names, and at most one catch-all
// argument which must come last.
func (c *Command) validate(path string) error {
	if c.Name == "" {
		return &DescriptorError{Path: path, Reason: "command has no name"}
	}
	if strings.ContainsAny(c.Name, " \t") {
		return &DescriptorError{Path: path, Reason: fmt.Sprintf("command name %q contains whitespace", c.Name)}
	}

	flagOwners := make(map[string]string)
	for _, flag := range c.Flags {
		if flag.name == "" {
			return &DescriptorError{Path: path, Reason: "flag has no name"}
		}
		if flag.kind == KindChoice && flag.hasDefault && !slices.Contains(flag.choices, flag.defaultText) {
			return &DescriptorError{Path: path, Reason: fmt.Sprintf("default %q of flag --%s is not one of its choices", flag.defaultText, flag.name)}
		}
		for _, token := range append([]string{flag.name}, flag.aliases...) {
			if token == "help" || token == "h" {
				return &DescriptorError{Path: path, Reason: fmt.Sprintf("flag name %q is reserved for help", token)}
			}
			if owner, exists := flagOwners[token]; exists {
				return &DescriptorError{Path: path, Reason: fmt.Sprintf("flag name %q is used by both --%s and --%s", token, owner, flag.name)}
			}
			flagOwners[token] = flag.name
		}
	}

	argNames := make(map[string]bool)
	for index, arg := range c.Args {
		if arg.name == "" {
			return &DescriptorError{Path: path, Reason: fmt.Sprintf("argument %d has no name", index)}
		}
		if argNames[arg.name] {
			return &DescriptorError{Path: path, Reason: fmt.Sprintf("argument %q is declared twice", arg.name)}
		}
		argNames[arg.name] = true
		if arg.catchAll && index != len(c.Args)-1 {
			return &DescriptorError{Path: path, Reason: fmt.Sprintf("catch-all argument %q must be the last argument", arg.name)}
		}
	}
	return nil
}
