// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirectory is the storage directory name inside a project.
	DefaultDirectory = "storage"

	// LegacyDirectory is the pre-Crawlee storage directory name,
	// renamed to DefaultDirectory on first run.
	LegacyDirectory = "apify_storage"

	datasetsDirectory       = "datasets"
	keyValueStoresDirectory = "key_value_stores"
	requestQueuesDirectory  = "request_queues"
	defaultStore            = "default"

	// InputKey is the key-value store record holding the run input.
	InputKey = "INPUT"
)

// Local is a local storage directory.
type Local struct {
	// Directory is the absolute storage directory.
	Directory string
}

// Open returns the storage for projectRoot. directory is relative to
// the project root unless absolute; empty means [DefaultDirectory].
func Open(projectRoot, directory string) *Local {
	if directory == "" {
		directory = DefaultDirectory
	}
	if !filepath.IsAbs(directory) {
		directory = filepath.Join(projectRoot, directory)
	}
	return &Local{Directory: directory}
}

// MigrateLegacy renames <projectRoot>/apify_storage to the storage
// directory when only the legacy directory exists. Reports whether a
// rename happened.
func (l *Local) MigrateLegacy(projectRoot string) (bool, error) {
	legacy := filepath.Join(projectRoot, LegacyDirectory)
	if !isDirectory(legacy) || exists(l.Directory) {
		return false, nil
	}
	if err := os.Rename(legacy, l.Directory); err != nil {
		return false, fmt.Errorf("renaming %s to %s: %w", legacy, l.Directory, err)
	}
	return true, nil
}

// DefaultDataset, DefaultKeyValueStore and DefaultRequestQueue return
// the default storage directories.
func (l *Local) DefaultDataset() string {
	return filepath.Join(l.Directory, datasetsDirectory, defaultStore)
}

func (l *Local) DefaultKeyValueStore() string {
	return filepath.Join(l.Directory, keyValueStoresDirectory, defaultStore)
}

func (l *Local) DefaultRequestQueue() string {
	return filepath.Join(l.Directory, requestQueuesDirectory, defaultStore)
}

// WriteInput stores data as the INPUT record of the default key-value
// store, replacing any existing INPUT record.
func (l *Local) WriteInput(data []byte) error {
	store := l.DefaultKeyValueStore()
	if err := os.MkdirAll(store, 0o755); err != nil {
		return fmt.Errorf("creating default key-value store: %w", err)
	}
	if err := removeRecords(store, func(key string) bool { return key == InputKey }); err != nil {
		return err
	}
	path := filepath.Join(store, InputKey+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing input: %w", err)
	}
	return nil
}

// PurgeDefaultDataset deletes the default dataset.
func (l *Local) PurgeDefaultDataset() error {
	return removeAll(l.DefaultDataset())
}

// PurgeDefaultRequestQueue deletes the default request queue.
func (l *Local) PurgeDefaultRequestQueue() error {
	return removeAll(l.DefaultRequestQueue())
}

// PurgeDefaultKeyValueStore deletes every record of the default
// key-value store except INPUT.
func (l *Local) PurgeDefaultKeyValueStore() error {
	return removeRecords(l.DefaultKeyValueStore(), func(key string) bool { return key != InputKey })
}

// Purge deletes the default dataset and request queue and all
// non-INPUT records of the default key-value store.
func (l *Local) Purge() error {
	return errors.Join(
		l.PurgeDefaultRequestQueue(),
		l.PurgeDefaultKeyValueStore(),
		l.PurgeDefaultDataset(),
	)
}

// IsEmpty reports whether no previous run state exists: no dataset
// items, no request queue entries and no key-value records other than
// INPUT.
func (l *Local) IsEmpty() (bool, error) {
	for _, directory := range []string{l.DefaultDataset(), l.DefaultRequestQueue()} {
		entries, err := readDir(directory)
		if err != nil {
			return false, err
		}
		if len(entries) > 0 {
			return false, nil
		}
	}
	entries, err := readDir(l.DefaultKeyValueStore())
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if recordKey(entry.Name()) != InputKey {
			return false, nil
		}
	}
	return true, nil
}

// Env returns the variables that point the SDKs at the storage
// directory. purgeOnStart asks Crawlee to purge on start itself.
func (l *Local) Env(purgeOnStart bool) map[string]string {
	purge := "0"
	if purgeOnStart {
		purge = "1"
	}
	return map[string]string{
		"APIFY_LOCAL_STORAGE_DIR": l.Directory,
		"CRAWLEE_STORAGE_DIR":     l.Directory,
		"CRAWLEE_PURGE_ON_START":  purge,
	}
}

// recordKey strips the extension from a record file name.
func recordKey(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// removeRecords deletes the files in store whose key matches remove.
func removeRecords(store string, remove func(key string) bool) error {
	entries, err := readDir(store)
	if err != nil {
		return err
	}
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !remove(recordKey(entry.Name())) {
			continue
		}
		if err := os.Remove(filepath.Join(store, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func removeAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("purging %s: %w", path, err)
	}
	return nil
}

// readDir lists directory, treating a missing directory as empty.
func readDir(directory string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(directory)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return entries, err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
