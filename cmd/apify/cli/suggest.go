// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

const (
	// maxCommandDistance is the largest edit distance at which a
	// registered path is offered as a suggestion.
	maxCommandDistance = 2

	// minCommandSimilarity is the Jaro-Winkler similarity at or above
	// which a registered path is offered regardless of edit distance.
	minCommandSimilarity = 0.975

	// maxFlagDistance bounds "did you mean" hints for flags.
	maxFlagDistance = 3
)

// Suggestion is one candidate correction for an unknown command.
type Suggestion struct {
	// Path is the registered path that matched, possibly an alias.
	Path string

	// AliasOf is the canonical path when Path is an alias, else empty.
	AliasOf string
}

// String renders the suggestion as shown to the user:
// "kvs (alias for key-value-stores)" for aliases, the bare path
// otherwise.
func (s Suggestion) String() string {
	if s.AliasOf == "" {
		return s.Path
	}
	return s.Path + " (alias for " + s.AliasOf + ")"
}

// Suggest returns every registered path close to input, compared
// case-insensitively. A path qualifies when its Levenshtein distance
// from input is at most 2 or its Jaro-Winkler similarity is at least
// 0.975. Results are in registration order; alias entries appear
// alongside their canonical path. Hidden aliases are never returned.
func (r *Registry) Suggest(input string) []Suggestion {
	lowered := strings.ToLower(input)
	var suggestions []Suggestion
	for _, e := range r.entries {
		if e.hidden {
			continue
		}
		candidate := strings.ToLower(e.path)
		if levenshtein.ComputeDistance(lowered, candidate) > maxCommandDistance &&
			smetrics.JaroWinkler(lowered, candidate, 0.7, 4) < minCommandSimilarity {
			continue
		}
		suggestion := Suggestion{Path: e.path}
		if e.isAlias() {
			suggestion.AliasOf = e.canonical
		}
		suggestions = append(suggestions, suggestion)
	}
	return suggestions
}

// suggestFlag returns the flag name or alias of command closest to
// input, or "" when nothing is within maxFlagDistance.
func suggestFlag(input string, command *Command) string {
	if input == "" {
		return ""
	}
	bestName := ""
	bestDistance := maxFlagDistance + 1
	for _, flag := range command.Flags {
		if flag.hidden {
			continue
		}
		for _, token := range append([]string{flag.name}, flag.aliases...) {
			if len(token) == 1 {
				continue
			}
			distance := levenshtein.ComputeDistance(input, token)
			if distance < bestDistance {
				bestDistance = distance
				bestName = flag.name
			}
		}
	}
	return bestName
}
