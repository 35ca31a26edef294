// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"
)

// entry is one row of the command table. Every command has one entry
// for its canonical path plus one per alias.
type entry struct {
	// path is the space-joined lookup key.
	path string

	// canonical is the command's canonical path. Equal to path for
	// the primary entry.
	canonical string

	command *Command

	// hidden marks hidden-alias entries, which resolve but are never
	// suggested.
	hidden bool
}

func (e *entry) isAlias() bool {
	return e.path != e.canonical
}

// Registry is the command table, keyed by space-joined path. Entries
// keep insertion order, which is the order suggestions and listings
// use. A Registry is built once at start-up and read-only afterwards;
// it is not safe for concurrent registration.
type Registry struct {
	entries []*entry
	byPath  map[string]*entry
	roots   []*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byPath: make(map[string]*entry)}
}

// Register inserts command under parentPath ("" for a top-level
// command). The command's aliases and hidden aliases are registered
// under the same parent. Subcommands are not registered; use
// [Registry.RegisterTree] for whole trees.
func (r *Registry) Register(command *Command, parentPath string) error {
	path := joinPath(parentPath, command.Name)
	if err := command.validate(path); err != nil {
		return err
	}
	if parentPath != "" {
		parent, exists := r.byPath[parentPath]
		if !exists || parent.isAlias() {
			return &DescriptorError{Path: path, Reason: fmt.Sprintf("parent command %q is not registered", parentPath)}
		}
	}

	paths := []string{path}
	for _, alias := range command.Aliases {
		paths = append(paths, joinPath(parentPath, alias))
	}
	for _, alias := range command.HiddenAliases {
		paths = append(paths, joinPath(parentPath, alias))
	}
	seen := make(map[string]bool, len(paths))
	for _, candidate := range paths {
		if existing, taken := r.byPath[candidate]; taken {
			return &DuplicateCommandError{Path: candidate, Existing: existing.canonical}
		}
		if seen[candidate] {
			return &DuplicateCommandError{Path: candidate, Existing: path}
		}
		seen[candidate] = true
	}

	r.add(&entry{path: path, canonical: path, command: command})
	for _, alias := range command.Aliases {
		r.add(&entry{path: joinPath(parentPath, alias), canonical: path, command: command})
	}
	for _, alias := range command.HiddenAliases {
		r.add(&entry{path: joinPath(parentPath, alias), canonical: path, command: command, hidden: true})
	}
	if parentPath == "" {
		r.roots = append(r.roots, command)
	}
	return nil
}

func (r *Registry) add(e *entry) {
	r.entries = append(r.entries, e)
	r.byPath[e.path] = e
}

// RegisterTree registers each command and its subcommands depth-first
// in declaration order.
func (r *Registry) RegisterTree(commands ...*Command) error {
	for _, command := range commands {
		if err := r.registerTree(command, ""); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) registerTree(command *Command, parentPath string) error {
	if err := r.Register(command, parentPath); err != nil {
		return err
	}
	path := joinPath(parentPath, command.Name)
	for _, subcommand := range command.Subcommands {
		if err := r.registerTree(subcommand, path); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the command registered under path (canonical or
// alias) and its canonical path.
func (r *Registry) Lookup(path string) (*Command, string, bool) {
	found, exists := r.byPath[path]
	if !exists {
		return nil, "", false
	}
	return found.command, found.canonical, true
}

// Roots returns the top-level commands in registration order.
func (r *Registry) Roots() []*Command {
	return append([]*Command(nil), r.roots...)
}

// Paths returns every canonical path in registration order.
func (r *Registry) Paths() []string {
	var paths []string
	for _, e := range r.entries {
		if !e.isAlias() {
			paths = append(paths, e.path)
		}
	}
	return paths
}

// Resolution is the result of [Registry.Resolve].
type Resolution struct {
	// Command is the deepest command matched.
	Command *Command

	// Path is the canonical space-joined path of Command.
	Path string

	// Consumed is the number of leading tokens that named commands.
	Consumed int

	// Remaining holds the tokens after the command path.
	Remaining []string
}

// Resolve matches the longest command path at the start of tokens.
// Each token is looked up under the canonical path matched so far, so
// aliases work at every level. Matching stops at the first token that
// names no child, or at a command without subcommands. ok is false
// when not even the first token names a command.
func (r *Registry) Resolve(tokens []string) (Resolution, bool) {
	var resolution Resolution
	for index, token := range tokens {
		if token == "" || strings.HasPrefix(token, "-") || strings.ContainsRune(token, ' ') {
			break
		}
		found, exists := r.byPath[joinPath(resolution.Path, token)]
		if !exists {
			break
		}
		resolution.Command = found.command
		resolution.Path = found.canonical
		resolution.Consumed = index + 1
		if !found.command.IsGroup() {
			break
		}
	}
	if resolution.Command == nil {
		return Resolution{Remaining: tokens}, false
	}
	resolution.Remaining = tokens[resolution.Consumed:]
	return resolution, true
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + " " + name
}
