// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/apify/apify-cli/lib/project"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"my-actor", true},
		{"abc", true},
		{"ab", false},
		{"My-Actor", false},
		{"-leading", false},
		{"trailing-", false},
		{"has space", false},
	}
	for _, test := range tests {
		err := ValidateName(test.name)
		if (err == nil) != test.valid {
			t.Errorf("ValidateName(%q) error = %v, want valid=%v", test.name, err, test.valid)
		}
	}
}

func TestSkeletonScaffold(t *testing.T) {
	parent := t.TempDir()
	result, err := Skeleton{}.Scaffold(context.Background(), Request{Name: "my-actor", Template: "python-start", Directory: parent})
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}
	if result.Directory != filepath.Join(parent, "my-actor") {
		t.Errorf("Directory = %q", result.Directory)
	}
	if result.Template != "python-start" {
		t.Errorf("Template = %q, want python-start", result.Template)
	}

	config, err := project.ReadActorConfig(result.Directory)
	if err != nil {
		t.Fatalf("ReadActorConfig() error: %v", err)
	}
	if config == nil || config.Name != "my-actor" {
		t.Errorf("actor config = %+v, want name my-actor", config)
	}
	if _, err := os.Stat(filepath.Join(result.Directory, "storage", "key_value_stores", "default", "INPUT.json")); err != nil {
		t.Errorf("INPUT.json missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(result.Directory, GitignoreFile)); err != nil {
		t.Errorf(".gitignore missing: %v", err)
	}
}

func TestSkeletonScaffoldDefaultTemplate(t *testing.T) {
	result, err := Skeleton{}.Scaffold(context.Background(), Request{Name: "my-actor", Directory: t.TempDir()})
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}
	if result.Template != DefaultTemplate {
		t.Errorf("Template = %q, want %q", result.Template, DefaultTemplate)
	}
}

func TestSkeletonScaffoldRejects(t *testing.T) {
	parent := t.TempDir()
	if err := os.MkdirAll(filepath.Join(parent, "taken"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(parent, "taken", "main.js"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Skeleton{}.Scaffold(context.Background(), Request{Name: "taken", Directory: parent})
	if !errors.Is(err, ErrDirectoryNotEmpty) {
		t.Errorf("Scaffold() into non-empty directory error = %v, want ErrDirectoryNotEmpty", err)
	}

	_, err = Skeleton{}.Scaffold(context.Background(), Request{Name: "fresh", Template: "cobol-start", Directory: parent})
	if err == nil {
		t.Error("Scaffold() with unknown template returned nil error")
	}
}
