// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"slices"
	"testing"
)

func testTree() []*Command {
	return []*Command{
		{Name: "run", Run: noopRun},
		{
			Name:          "key-value-stores",
			Aliases:       []string{"kvs"},
			HiddenAliases: []string{"kv-store"},
			Subcommands: []*Command{
				{Name: "ls", HiddenAliases: []string{"list"}, Run: noopRun},
				{Name: "info", Run: noopRun, Args: []Arg{StringArg("id", ArgOptions{Required: true})}},
			},
		},
	}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	if err := registry.RegisterTree(testTree()...); err != nil {
		t.Fatalf("RegisterTree() error: %v", err)
	}
	return registry
}

func TestRegistry_Paths(t *testing.T) {
	registry := testRegistry(t)
	want := []string{"run", "key-value-stores", "key-value-stores ls", "key-value-stores info"}
	if got := registry.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %q, want %q", got, want)
	}
	roots := registry.Roots()
	if len(roots) != 2 || roots[0].Name != "run" || roots[1].Name != "key-value-stores" {
		t.Errorf("Roots() returned %d commands, want run and key-value-stores", len(roots))
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := testRegistry(t)
	tests := []struct {
		path      string
		canonical string
	}{
		{"run", "run"},
		{"kvs", "key-value-stores"},
		{"kv-store", "key-value-stores"},
		{"key-value-stores list", "key-value-stores ls"},
	}
	for _, test := range tests {
		_, canonical, ok := registry.Lookup(test.path)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", test.path)
			continue
		}
		if canonical != test.canonical {
			t.Errorf("Lookup(%q) canonical = %q, want %q", test.path, canonical, test.canonical)
		}
	}
	if _, _, ok := registry.Lookup("kvs ls"); ok {
		t.Error("Lookup(\"kvs ls\") should not match: children are keyed by canonical path")
	}
}

func TestRegistry_Resolve(t *testing.T) {
	registry := testRegistry(t)
	tests := []struct {
		name      string
		tokens    []string
		path      string
		remaining []string
	}{
		{"leaf", []string{"run", "--purge"}, "run", []string{"--purge"}},
		{"nested", []string{"key-value-stores", "info", "abc"}, "key-value-stores info", []string{"abc"}},
		{"alias at every level", []string{"kvs", "list", "--json"}, "key-value-stores ls", []string{"--json"}},
		{"group only", []string{"kvs"}, "key-value-stores", []string{}},
		{"unknown child", []string{"kvs", "bogus"}, "key-value-stores", []string{"bogus"}},
		{"leaf stops matching", []string{"run", "ls"}, "run", []string{"ls"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolution, ok := registry.Resolve(test.tokens)
			if !ok {
				t.Fatalf("Resolve(%q) found nothing", test.tokens)
			}
			if resolution.Path != test.path {
				t.Errorf("Path = %q, want %q", resolution.Path, test.path)
			}
			if !slices.Equal(resolution.Remaining, test.remaining) {
				t.Errorf("Remaining = %q, want %q", resolution.Remaining, test.remaining)
			}
		})
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	registry := testRegistry(t)
	for _, tokens := range [][]string{{"bogus"}, {"--json"}, {}} {
		resolution, ok := registry.Resolve(tokens)
		if ok {
			t.Errorf("Resolve(%q) matched %q, want no match", tokens, resolution.Path)
		}
	}
}

func TestRegistry_Duplicates(t *testing.T) {
	tests := []struct {
		name     string
		commands []*Command
		path     string
	}{
		{
			name:     "same name",
			commands: []*Command{{Name: "run", Run: noopRun}, {Name: "run", Run: noopRun}},
			path:     "run",
		},
		{
			name:     "alias collides with name",
			commands: []*Command{{Name: "run", Run: noopRun}, {Name: "start", Aliases: []string{"run"}, Run: noopRun}},
			path:     "run",
		},
		{
			name:     "hidden alias collides with alias",
			commands: []*Command{{Name: "actors", Aliases: []string{"a"}, Run: noopRun}, {Name: "builds", HiddenAliases: []string{"a"}, Run: noopRun}},
			path:     "a",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := NewRegistry().RegisterTree(test.commands...)
			var duplicate *DuplicateCommandError
			if !errors.As(err, &duplicate) {
				t.Fatalf("RegisterTree() error = %v, want *DuplicateCommandError", err)
			}
			if duplicate.Path != test.path {
				t.Errorf("duplicate path = %q, want %q", duplicate.Path, test.path)
			}
		})
	}
}

func TestRegistry_MissingParent(t *testing.T) {
	err := NewRegistry().Register(&Command{Name: "ls", Run: noopRun}, "actors")
	var descriptor *DescriptorError
	if !errors.As(err, &descriptor) {
		t.Fatalf("Register() error = %v, want *DescriptorError", err)
	}
}

func TestCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		command *Command
	}{
		{"no name", &Command{}},
		{"whitespace in name", &Command{Name: "a b"}},
		{"reserved help flag", &Command{Name: "x", Flags: []Flag{BooleanFlag("help", BooleanFlagOptions{})}}},
		{"reserved h alias", &Command{Name: "x", Flags: []Flag{StringFlag("host", StringFlagOptions{Aliases: []string{"h"}})}}},
		{"duplicate flag", &Command{Name: "x", Flags: []Flag{
			StringFlag("input", StringFlagOptions{Aliases: []string{"i"}}),
			BooleanFlag("ignore", BooleanFlagOptions{Aliases: []string{"i"}}),
		}}},
		{"choice default outside choices", &Command{Name: "x", Flags: []Flag{
			StringFlag("template", StringFlagOptions{Choices: []string{"a", "b"}, Default: "c"}),
		}}},
		{"duplicate argument", &Command{Name: "x", Args: []Arg{
			StringArg("id", ArgOptions{}),
			StringArg("id", ArgOptions{}),
		}}},
		{"catch-all not last", &Command{Name: "x", Args: []Arg{
			StringArg("rest", ArgOptions{CatchAll: true}),
			StringArg("id", ArgOptions{}),
		}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var descriptor *DescriptorError
			if err := NewRegistry().Register(test.command, ""); !errors.As(err, &descriptor) {
				t.Errorf("Register() error = %v, want *DescriptorError", err)
			}
		})
	}
}
