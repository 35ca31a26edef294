// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/apify/apify-cli/lib/storage"
)

// GitignoreFile is the ignore file kept in every project root.
const GitignoreFile = ".gitignore"

// gitignoreHeader precedes entries appended to an existing file.
const gitignoreHeader = "# Added by Apify CLI"

// GitignoreEntries are the lines every project's .gitignore must hold:
// local storage, installed JavaScript packages and the Python virtual
// environment.
func GitignoreEntries() []string {
	return []string{storage.DefaultDirectory, "node_modules", ".venv"}
}

// EnsureGitignore creates .gitignore in projectRoot with
// [GitignoreEntries], or appends the entries an existing file lacks
// under a header line. A line matches only when it equals the entry
// exactly. Reports whether the file changed.
func EnsureGitignore(projectRoot string) (bool, error) {
	path := filepath.Join(projectRoot, GitignoreFile)
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	lines := strings.Split(strings.ReplaceAll(string(existing), "\r\n", "\n"), "\n")
	var missing []string
	for _, entry := range GitignoreEntries() {
		if !slices.Contains(lines, entry) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	if len(existing) == 0 {
		if err := os.WriteFile(path, []byte(strings.Join(missing, "\n")+"\n"), 0o644); err != nil {
			return false, fmt.Errorf("writing %s: %w", GitignoreFile, err)
		}
		return true, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return false, err
	}
	addition := "\n" + gitignoreHeader + "\n" + strings.Join(missing, "\n") + "\n"
	if _, err := file.WriteString(addition); err != nil {
		file.Close()
		return false, fmt.Errorf("appending to %s: %w", GitignoreFile, err)
	}
	return true, file.Close()
}
