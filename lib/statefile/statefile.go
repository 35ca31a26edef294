// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write atomically writes value as indented JSON to path. The file is
// written to a temporary location in the same directory, fsynced, and
// renamed into place, so readers never see a partial write. The parent
// directory must already exist.
func Write(path string, value any, mode os.FileMode) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	temporaryPath := path + ".tmp"
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	// Write, sync, close. On any failure the temporary file is removed.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming %s into place: %w", filepath.Base(path), err)
	}

	parentDirectory, err := os.Open(filepath.Dir(path))
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}
	return nil
}

// Read parses the JSON file at path into value. When the file does not
// exist, the returned error wraps os.ErrNotExist (testable with
// errors.Is).
func Read(path string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Clear removes the file at path. Idempotent: returns nil when the
// file does not exist.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", filepath.Base(path), err)
	}
	return nil
}
