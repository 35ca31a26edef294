// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

const (
	// PackageManifestFile is the JavaScript project manifest.
	PackageManifestFile = "package.json"

	// RequirementsFile is the Python dependency list.
	RequirementsFile = "requirements.txt"
)

// PackageManifest holds the package.json fields the CLI reads.
// Only runtime dependencies count for classification; devDependencies
// are ignored.
type PackageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Main         string            `json:"main"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

// ReadPackageManifest reads and parses package.json in projectRoot.
// Comments and trailing commas are tolerated.
func ReadPackageManifest(projectRoot string) (*PackageManifest, error) {
	path := filepath.Join(projectRoot, PackageManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var manifest PackageManifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &manifest, nil
}

// Dependency returns the version constraint of a runtime dependency.
func (m *PackageManifest) Dependency(name string) (string, bool) {
	constraint, ok := m.Dependencies[name]
	return constraint, ok
}

// Requirements is a parsed requirements.txt: normalized package name
// to version specifier ("" when unpinned).
type Requirements map[string]string

// ReadRequirements reads and parses requirements.txt in projectRoot.
func ReadRequirements(projectRoot string) (Requirements, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, RequirementsFile))
	if err != nil {
		return nil, err
	}
	return ParseRequirements(data), nil
}

// ParseRequirements extracts package names from requirements.txt
// content. Comments, blank lines and pip options ("-r", "--index-url")
// are skipped. Names are lower-cased with "_" and "." folded to "-",
// and extras ("apify[scrapy]") are dropped.
func ParseRequirements(data []byte) Requirements {
	requirements := make(Requirements)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if index := strings.IndexByte(line, '#'); index >= 0 {
			line = line[:index]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}
		end := strings.IndexAny(line, "[<>=!~;@ \t")
		name, specifier := line, ""
		if end >= 0 {
			name, specifier = line[:end], strings.TrimSpace(line[end:])
			if strings.HasPrefix(specifier, "[") {
				if closing := strings.IndexByte(specifier, ']'); closing >= 0 {
					specifier = strings.TrimSpace(specifier[closing+1:])
				}
			}
		}
		if name == "" {
			continue
		}
		requirements[normalizePythonName(name)] = specifier
	}
	return requirements
}

// Has reports whether the named package is listed.
func (r Requirements) Has(name string) bool {
	_, ok := r[normalizePythonName(name)]
	return ok
}

func normalizePythonName(name string) string {
	return strings.NewReplacer("_", "-", ".", "-").Replace(strings.ToLower(name))
}
