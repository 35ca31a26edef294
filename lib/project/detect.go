// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/apify/apify-cli/lib/runtimes"
)

// Language is the execution environment a project needs.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageScrapy     Language = "scrapy"
	LanguageUnknown    Language = "unknown"
)

// Entrypoint is how a project is started: a file or Python module in
// Path, or a package.json script in Script.
type Entrypoint struct {
	Path   string `json:"path,omitempty"`
	Script string `json:"script,omitempty"`
}

// Project is the result of [Detect].
type Project struct {
	Root       string         `json:"root"`
	Language   Language       `json:"language"`
	Entrypoint *Entrypoint    `json:"entrypoint,omitempty"`
	Runtime    *runtimes.Info `json:"runtime,omitempty"`
}

// Detectors supplies the runtime lookups [Detect] uses. A nil finder
// leaves Project.Runtime unset for that language.
type Detectors struct {
	JavaScript runtimes.Finder
	Python     runtimes.Finder
}

// Detect decides the language, entrypoint and runtime of the project
// at projectRoot. Scrapy projects are checked first, then Python
// projects (a __main__.py in a known location), then JavaScript
// projects (package.json main or start script, or a conventional index
// file). A directory matching none is [LanguageUnknown] with no error.
func Detect(ctx context.Context, projectRoot string, detectors Detectors) (*Project, error) {
	project := &Project{Root: projectRoot, Language: LanguageUnknown}

	if IsScrapyProject(projectRoot) {
		project.Language = LanguageScrapy
		project.Runtime = find(ctx, detectors.Python, projectRoot)
		config, err := ReadScrapyConfig(projectRoot)
		if err != nil {
			return nil, err
		}
		if config.MainPyLocation != "" {
			project.Entrypoint = &Entrypoint{Path: config.MainPyLocation}
		}
		return project, nil
	}

	if module := pythonEntrypointModule(projectRoot); module != "" {
		project.Language = LanguagePython
		project.Entrypoint = &Entrypoint{Path: module}
		project.Runtime = find(ctx, detectors.Python, projectRoot)
		return project, nil
	}

	if entrypoint := javaScriptEntrypoint(projectRoot); entrypoint != nil {
		project.Language = LanguageJavaScript
		project.Entrypoint = entrypoint
		project.Runtime = find(ctx, detectors.JavaScript, projectRoot)
		return project, nil
	}

	return project, nil
}

func find(ctx context.Context, finder runtimes.Finder, projectRoot string) *runtimes.Info {
	if finder == nil {
		return nil
	}
	info, ok := finder.Find(ctx, projectRoot)
	if !ok {
		return nil
	}
	return &info
}

// pythonEntrypointModule returns the module name to run with
// "python -m": the directory holding the first __main__.py found in
// src/, the root, a directory named after the project, or that name
// with "-" and " " folded to "_".
func pythonEntrypointModule(projectRoot string) string {
	baseName := filepath.Base(projectRoot)
	candidates := []string{
		filepath.Join(projectRoot, "src", "__main__.py"),
		filepath.Join(projectRoot, "__main__.py"),
		filepath.Join(projectRoot, baseName, "__main__.py"),
		filepath.Join(projectRoot, strings.NewReplacer("-", "_", " ", "_").Replace(baseName), "__main__.py"),
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return filepath.Base(filepath.Dir(candidate))
		}
	}
	return ""
}

// javaScriptEntrypoint prefers package.json "main", then a "start"
// script, then the first conventional index file that exists.
func javaScriptEntrypoint(projectRoot string) *Entrypoint {
	if manifest, err := ReadPackageManifest(projectRoot); err == nil {
		if manifest.Main != "" {
			return &Entrypoint{Path: filepath.Join(projectRoot, manifest.Main)}
		}
		if manifest.Scripts["start"] != "" {
			return &Entrypoint{Script: "start"}
		}
	}
	for _, directory := range []string{"", "src", "dist"} {
		for _, name := range []string{"index.js", "index.mjs", "index.cjs"} {
			candidate := filepath.Join(projectRoot, directory, name)
			if fileExists(candidate) {
				return &Entrypoint{Path: candidate}
			}
		}
	}
	return nil
}
