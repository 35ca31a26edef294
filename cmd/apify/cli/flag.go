// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"slices"
	"strconv"
)

// FlagKind is the value type a flag accepts.
type FlagKind int

const (
	// KindString accepts any value.
	KindString FlagKind = iota

	// KindInteger accepts base-10 integers.
	KindInteger

	// KindBoolean takes no value: presence means true.
	KindBoolean

	// KindChoice accepts one member of a fixed set of strings.
	KindChoice
)

// String returns the kind name used in error messages and help output.
func (k FlagKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindChoice:
		return "choice"
	default:
		return "FlagKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Flag describes one named option of a command. Flags are built with
// [StringFlag], [IntegerFlag] or [BooleanFlag] and are immutable after
// construction; the accessor methods return copies of slice fields.
type Flag struct {
	name        string
	kind        FlagKind
	description string
	aliases     []string
	required    bool
	hidden      bool
	stdin       bool
	choices     []string
	defaultText string
	hasDefault  bool
	defaultBool bool
	defaultInt  int
}

// StringFlagOptions configures a string flag. A non-empty Choices list
// turns the flag into a choice flag whose value must be one of the
// listed strings.
type StringFlagOptions struct {
	Description string
	Aliases     []string
	Required    bool
	Hidden      bool

	// Stdin allows the value "-" to mean "read the value from piped
	// standard input".
	Stdin bool

	Choices []string

	// Default is used when the flag is absent. Empty means no default.
	Default string
}

// IntegerFlagOptions configures an integer flag.
type IntegerFlagOptions struct {
	Description string
	Aliases     []string
	Required    bool
	Hidden      bool

	// Default is used when the flag is absent. Zero means no default
	// is shown in help; an absent flag still reads as zero.
	Default int
}

// BooleanFlagOptions configures a boolean flag.
type BooleanFlagOptions struct {
	Description string
	Aliases     []string
	Required    bool
	Hidden      bool
	Default     bool
}

// StringFlag builds a string flag, or a choice flag when
// options.Choices is non-empty.
func StringFlag(name string, options StringFlagOptions) Flag {
	kind := KindString
	if len(options.Choices) > 0 {
		kind = KindChoice
	}
	return Flag{
		name:        name,
		kind:        kind,
		description: options.Description,
		aliases:     slices.Clone(options.Aliases),
		required:    options.Required,
		hidden:      options.Hidden,
		stdin:       options.Stdin,
		choices:     slices.Clone(options.Choices),
		defaultText: options.Default,
		hasDefault:  options.Default != "",
	}
}

// IntegerFlag builds an integer flag.
func IntegerFlag(name string, options IntegerFlagOptions) Flag {
	return Flag{
		name:        name,
		kind:        KindInteger,
		description: options.Description,
		aliases:     slices.Clone(options.Aliases),
		required:    options.Required,
		hidden:      options.Hidden,
		defaultInt:  options.Default,
		defaultText: strconv.Itoa(options.Default),
		hasDefault:  options.Default != 0,
	}
}

// BooleanFlag builds a boolean flag.
func BooleanFlag(name string, options BooleanFlagOptions) Flag {
	return Flag{
		name:        name,
		kind:        KindBoolean,
		description: options.Description,
		aliases:     slices.Clone(options.Aliases),
		required:    options.Required,
		hidden:      options.Hidden,
		defaultBool: options.Default,
		defaultText: strconv.FormatBool(options.Default),
		hasDefault:  options.Default,
	}
}

func (f Flag) Name() string        { return f.name }
func (f Flag) Kind() FlagKind      { return f.kind }
func (f Flag) Description() string { return f.description }
func (f Flag) Required() bool      { return f.required }
func (f Flag) Hidden() bool        { return f.hidden }
func (f Flag) Stdin() bool         { return f.stdin }
func (f Flag) Aliases() []string   { return slices.Clone(f.aliases) }
func (f Flag) Choices() []string   { return slices.Clone(f.choices) }

// Default returns the textual default value and whether one was set.
func (f Flag) Default() (string, bool) {
	return f.defaultText, f.hasDefault
}

// TakesValue reports whether the flag consumes a value token.
func (f Flag) TakesValue() bool {
	return f.kind != KindBoolean
}

// matches reports whether token (without leading dashes) names this
// flag or one of its aliases.
func (f Flag) matches(token string) bool {
	return token == f.name || slices.Contains(f.aliases, token)
}

// shortAlias returns the first single-character alias, rendered as
// "-x" in help output.
func (f Flag) shortAlias() string {
	for _, alias := range f.aliases {
		if len(alias) == 1 {
			return alias
		}
	}
	return ""
}

// zeroValue returns the value an absent flag reads as.
func (f Flag) zeroValue() any {
	switch f.kind {
	case KindInteger:
		return f.defaultInt
	case KindBoolean:
		return f.defaultBool
	default:
		if f.hasDefault {
			return f.defaultText
		}
		return nil
	}
}
