// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/apify/apify-cli/lib/project"
	"github.com/apify/apify-cli/lib/storage"
)

// DefaultTemplate is used when the request names none.
const DefaultTemplate = "js-start"

// Templates lists the template identifiers the create command accepts.
func Templates() []string {
	return []string{
		"js-start",
		"js-crawlee-cheerio",
		"js-crawlee-playwright-chrome",
		"ts-start",
		"ts-crawlee-cheerio",
		"ts-crawlee-playwright-chrome",
		"python-start",
		"python-beautifulsoup",
		"python-scrapy",
	}
}

// ErrDirectoryNotEmpty is returned when the target directory already
// holds files.
var ErrDirectoryNotEmpty = errors.New("directory already exists and is not empty")

// Request describes the project to create.
type Request struct {
	// Name is the actor name; it also names the directory.
	Name string

	// Template is one of [Templates]. Empty means [DefaultTemplate].
	Template string

	// Directory is the parent directory the project is created in.
	Directory string
}

// Result reports what was created.
type Result struct {
	// Directory is the new project's absolute directory.
	Directory string `json:"directory"`
	Template  string `json:"template"`
}

// Scaffolder creates projects.
type Scaffolder interface {
	Scaffold(ctx context.Context, request Request) (Result, error)
}

var namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidateName checks an actor name: lowercase letters, digits and
// inner dashes, 3 to 63 characters.
func ValidateName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return fmt.Errorf("actor name %q must be 3 to 63 characters long", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("actor name %q may contain only lowercase letters, digits and dashes, and must not start or end with a dash", name)
	}
	return nil
}

// Skeleton writes the metadata shared by every template.
type Skeleton struct{}

// Scaffold creates <Directory>/<Name> containing .actor/actor.json, an
// empty INPUT record and a .gitignore. An existing empty directory is
// reused.
func (Skeleton) Scaffold(ctx context.Context, request Request) (Result, error) {
	if err := ValidateName(request.Name); err != nil {
		return Result{}, err
	}
	template := request.Template
	if template == "" {
		template = DefaultTemplate
	}
	if !slices.Contains(Templates(), template) {
		return Result{}, fmt.Errorf("unknown template %q", template)
	}

	parent, err := filepath.Abs(request.Directory)
	if err != nil {
		return Result{}, err
	}
	directory := filepath.Join(parent, request.Name)
	if entries, err := os.ReadDir(directory); err == nil && len(entries) > 0 {
		return Result{}, fmt.Errorf("%s: %w", directory, ErrDirectoryNotEmpty)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	config := project.ActorConfig{
		ActorSpecification: 1,
		Name:               request.Name,
		Version:            "0.0",
		BuildTag:           "latest",
	}
	data, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		return Result{}, err
	}
	configPath := filepath.Join(directory, project.ActorConfigPath)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("creating project directory: %w", err)
	}
	if err := os.WriteFile(configPath, append(data, '\n'), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", project.ActorConfigPath, err)
	}
	if err := storage.Open(directory, "").WriteInput([]byte("{}\n")); err != nil {
		return Result{}, err
	}
	if _, err := EnsureGitignore(directory); err != nil {
		return Result{}, err
	}
	return Result{Directory: directory, Template: template}, nil
}
