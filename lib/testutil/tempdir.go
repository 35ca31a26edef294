// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

// WriteTree creates a fresh temporary directory, writes each file in
// files (slash-separated relative path to content) beneath it, and
// returns the directory. Parent directories are created as needed.
//
//	root := testutil.WriteTree(t, map[string]string{
//	    "package.json": `{"dependencies": {"crawlee": "^3.0.0"}}`,
//	    "src/main.js":  "",
//	})
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		absolute := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(absolute), 0o755); err != nil {
			t.Fatalf("creating directory for %s: %v", path, err)
		}
		if err := os.WriteFile(absolute, []byte(files[path]), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return root
}

// FakeExecutable writes an executable shell script named name into
// directory that prints output and exits 0. Returns the script path.
// Skips the test on Windows, where shell scripts are not executable.
func FakeExecutable(t *testing.T, directory, name, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script executables are not supported on windows")
	}

	path := filepath.Join(directory, name)
	script := "#!/bin/sh\ncat <<'APIFY_FAKE_OUTPUT'\n" + output + "\nAPIFY_FAKE_OUTPUT\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake executable %s: %v", name, err)
	}
	return path
}
