// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Parse turns the tokens that follow a resolved command path into an
// [Invocation].
//
// Flags may be written as --name value, --name=value, -alias value or
// -alias=value; names and aliases of any length accept one or two
// dashes. A "--" token ends flag parsing. Boolean flags take no
// separate value token but accept --name=false. Tokens are first
// normalized to --canonical=value form and then applied to a
// [pflag.FlagSet] whose values coerce and validate per flag kind.
//
// stdin may be nil when the command has no stdin-mode arguments or
// flags.
func Parse(command *Command, path string, tokens []string, stdin Stdin) (*Invocation, error) {
	normalized, positionals, err := normalizeTokens(command, tokens)
	if err != nil {
		return nil, err
	}

	flagSet := pflag.NewFlagSet(path, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	values := make([]*flagValue, len(command.Flags))
	for index, flag := range command.Flags {
		values[index] = &flagValue{flag: flag}
		registered := flagSet.VarPF(values[index], flag.name, "", flag.description)
		if flag.kind == KindBoolean {
			registered.NoOptDefVal = "true"
		}
	}

	if err := flagSet.Parse(normalized); err != nil {
		for _, value := range values {
			if value.failure != nil {
				return nil, value.failure
			}
		}
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	buffer := &stdinBuffer{source: stdin}
	invocation := &Invocation{
		Path:    path,
		flags:   make(map[string]any),
		present: make(map[string]bool),
	}

	for _, value := range values {
		flag := value.flag
		if value.fromStdin {
			data, available, err := buffer.load()
			if err != nil {
				return nil, err
			}
			if !available {
				return nil, &InvalidFlagValueError{Flag: flag.name, Reason: "was given \"-\" but standard input is not piped"}
			}
			if err := value.Set(string(data)); err != nil {
				return nil, err
			}
		}
		if value.set {
			invocation.flags[flag.name] = value.value
			invocation.present[flag.name] = true
			continue
		}
		if flag.required && !flag.hasDefault {
			return nil, &MissingRequiredFlagError{Flag: flag.name}
		}
		if zero := flag.zeroValue(); zero != nil {
			invocation.flags[flag.name] = zero
		}
	}

	args, err := assignPositionals(command.Args, positionals, buffer)
	if err != nil {
		return nil, err
	}
	invocation.args = args
	if buffer.loaded {
		invocation.Stdin = buffer.data
	}
	return invocation, nil
}

// normalizeTokens splits tokens into canonical "--name[=value]" flag
// tokens for pflag and positional tokens. It reports unknown flags,
// repeated flags, and value-taking flags without a value.
func normalizeTokens(command *Command, tokens []string) (normalized, positionals []string, err error) {
	seen := make(map[string]bool)
	for index := 0; index < len(tokens); index++ {
		token := tokens[index]
		if token == "--" {
			positionals = append(positionals, tokens[index+1:]...)
			break
		}
		if !isFlagToken(token) {
			positionals = append(positionals, token)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(token, "-"), "=")
		flag, known := command.lookupFlag(name)
		if !known {
			return nil, nil, &UnknownFlagError{Flag: token, Suggestion: suggestFlag(name, command)}
		}
		if seen[flag.name] {
			return nil, nil, &InvalidFlagValueError{Flag: flag.name, Reason: "can only be specified once"}
		}
		seen[flag.name] = true

		if flag.kind == KindBoolean {
			if hasValue {
				normalized = append(normalized, "--"+flag.name+"="+value)
			} else {
				normalized = append(normalized, "--"+flag.name)
			}
			continue
		}

		if !hasValue {
			if index+1 >= len(tokens) || expectsFlag(command, tokens[index+1]) {
				return nil, nil, &InvalidFlagValueError{Flag: flag.name, Reason: "expects a value"}
			}
			index++
			value = tokens[index]
		}
		normalized = append(normalized, "--"+flag.name+"="+value)
	}
	return normalized, positionals, nil
}

// isFlagToken reports whether token should be read as a flag. A lone
// "-" and negative numbers are positional values.
func isFlagToken(token string) bool {
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(token, 64); err == nil {
		return false
	}
	return true
}

// expectsFlag reports whether the token after a value-taking flag is
// itself a flag, meaning the value is missing. Double-dash tokens
// always count; single-dash tokens count only when they name one of
// the command's flags.
func expectsFlag(command *Command, token string) bool {
	if token == "--" || strings.HasPrefix(token, "--") {
		return true
	}
	if !isFlagToken(token) {
		return false
	}
	name, _, _ := strings.Cut(token[1:], "=")
	_, known := command.lookupFlag(name)
	return known
}

// assignPositionals maps positional tokens onto declared arguments
// left to right. A catch-all argument joins the remaining tokens with
// single spaces. Stdin-mode arguments without a value, or with the
// value "-", read piped input when available.
func assignPositionals(declared []Arg, positionals []string, buffer *stdinBuffer) ([]ArgValue, error) {
	values := make([]ArgValue, len(declared))
	next := 0
	for index, arg := range declared {
		values[index].Name = arg.name
		if next >= len(positionals) {
			continue
		}
		if arg.catchAll {
			values[index].Value = strings.Join(positionals[next:], " ")
			next = len(positionals)
		} else {
			values[index].Value = positionals[next]
			next++
		}
		values[index].Set = true
	}
	if next < len(positionals) {
		return nil, &UnexpectedArgumentError{Value: positionals[next]}
	}

	var missing []string
	for index, arg := range declared {
		if arg.stdin && (!values[index].Set || values[index].Value == "-") {
			data, available, err := buffer.load()
			if err != nil {
				return nil, err
			}
			if available {
				values[index].Value = string(data)
				values[index].Set = true
			} else {
				values[index] = ArgValue{Name: arg.name}
			}
		}
		if arg.required && !values[index].Set {
			missing = append(missing, arg.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredArgumentError{Arguments: missing}
	}
	return values, nil
}

// flagValue is the [pflag.Value] behind every declared flag. Coercion
// failures are kept as typed errors in failure, since pflag wraps
// whatever Set returns in its own message.
type flagValue struct {
	flag      Flag
	set       bool
	fromStdin bool
	raw       string
	value     any
	failure   error
}

func (v *flagValue) String() string {
	if !v.set {
		text, _ := v.flag.Default()
		return text
	}
	return v.raw
}

func (v *flagValue) Type() string {
	switch v.flag.kind {
	case KindInteger:
		return "int"
	case KindBoolean:
		return "bool"
	default:
		return "string"
	}
}

func (v *flagValue) Set(raw string) error {
	if v.flag.stdin && raw == "-" && !v.fromStdin {
		v.fromStdin = true
		return nil
	}

	var failure error
	var value any
	switch v.flag.kind {
	case KindInteger:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			failure = &InvalidFlagValueError{Flag: v.flag.name, Value: raw, Reason: "expected an integer"}
		}
		value = parsed
	case KindBoolean:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			failure = &InvalidFlagValueError{Flag: v.flag.name, Value: raw, Reason: "expected true or false"}
		}
		value = parsed
	case KindChoice:
		if !slices.Contains(v.flag.choices, raw) {
			failure = &InvalidChoiceError{Flag: v.flag.name, Value: raw, Choices: v.flag.Choices()}
		}
		value = raw
	default:
		value = raw
	}
	if failure != nil {
		v.failure = failure
		return failure
	}
	v.set = true
	v.raw = raw
	v.value = value
	return nil
}
