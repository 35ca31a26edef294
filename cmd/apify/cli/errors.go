// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"
)

// DuplicateCommandError is returned by [Registry.Register] when a
// command path (or one of its alias paths) is already taken. It is a
// programming error and fatal at start-up.
type DuplicateCommandError struct {
	// Path is the space-joined path that collided.
	Path string

	// Existing is the canonical path of the command already registered
	// under Path.
	Existing string
}

func (e *DuplicateCommandError) Error() string {
	if e.Existing != "" && e.Existing != e.Path {
		return fmt.Sprintf("command %q is already registered (as an alias of %q)", e.Path, e.Existing)
	}
	return fmt.Sprintf("command %q is already registered", e.Path)
}

// DescriptorError reports a malformed command descriptor: a missing
// name, a flag name used twice, or a misplaced catch-all argument.
type DescriptorError struct {
	Path   string
	Reason string
}

func (e *DescriptorError) Error() string {
	if e.Path == "" {
		return "invalid command: " + e.Reason
	}
	return fmt.Sprintf("invalid command %q: %s", e.Path, e.Reason)
}

// UnknownCommandError is returned when argv names no registered
// command. Suggestions lists close matches in registry order.
type UnknownCommandError struct {
	// Input is the command path as the user typed it.
	Input string

	Suggestions []Suggestion

	// Program is the binary name used in the "--help" hint.
	Program string
}

func (e *UnknownCommandError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "unknown command %q", e.Input)
	switch len(e.Suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(&builder, " (did you mean %q?)", e.Suggestions[0].String())
	default:
		builder.WriteString("\n\nDid you mean one of these?")
		for _, suggestion := range e.Suggestions {
			builder.WriteString("\n  ")
			builder.WriteString(suggestion.String())
		}
	}
	program := e.Program
	if program == "" {
		program = "apify"
	}
	fmt.Fprintf(&builder, "\n\nRun '%s --help' for usage.", program)
	return builder.String()
}

// UnknownFlagError is returned when a token looks like a flag but names
// none of the command's flags or aliases.
type UnknownFlagError struct {
	// Flag is the token as given, including dashes.
	Flag string

	// Suggestion is the closest flag name, without dashes, or empty.
	Suggestion string
}

func (e *UnknownFlagError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown flag %s (did you mean --%s?)", e.Flag, e.Suggestion)
	}
	return fmt.Sprintf("unknown flag %s", e.Flag)
}

// MissingRequiredFlagError is returned when a required flag has no
// value after parsing.
type MissingRequiredFlagError struct {
	Flag string
}

func (e *MissingRequiredFlagError) Error() string {
	return fmt.Sprintf("flag --%s is required, but was not provided", e.Flag)
}

// InvalidFlagValueError is returned when a flag value cannot be
// coerced to the flag's kind, a value is missing, or a flag is given
// more than once.
type InvalidFlagValueError struct {
	Flag   string
	Value  string
	Reason string
}

func (e *InvalidFlagValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("flag --%s %s", e.Flag, e.Reason)
	}
	return fmt.Sprintf("invalid value %q for flag --%s: %s", e.Value, e.Flag, e.Reason)
}

// InvalidChoiceError is returned when a choice flag receives a value
// outside its choice set.
type InvalidChoiceError struct {
	Flag    string
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid value %q for flag --%s: must be one of %s",
		e.Value, e.Flag, strings.Join(e.Choices, ", "))
}

// MissingRequiredArgumentError is returned when required positional
// arguments received no value.
type MissingRequiredArgumentError struct {
	Arguments []string
}

func (e *MissingRequiredArgumentError) Error() string {
	noun := "argument"
	if len(e.Arguments) != 1 {
		noun = "arguments"
	}
	return fmt.Sprintf("missing %d required %s: %s", len(e.Arguments), noun, strings.Join(e.Arguments, ", "))
}

// UnexpectedArgumentError is returned when more positional tokens are
// given than the command declares and no catch-all absorbs them.
type UnexpectedArgumentError struct {
	Value string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument %q", e.Value)
}

// StdinReadError wraps a failure to read piped standard input.
type StdinReadError struct {
	Err error
}

func (e *StdinReadError) Error() string {
	return fmt.Sprintf("reading standard input: %v", e.Err)
}

func (e *StdinReadError) Unwrap() error { return e.Err }
