// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apify/apify-cli/lib/testutil"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		directory string
		want      string
	}{
		{"", filepath.Join("/project", "storage")},
		{"local", filepath.Join("/project", "local")},
		{"/elsewhere", "/elsewhere"},
	}
	for _, test := range tests {
		if got := Open("/project", test.directory).Directory; got != test.want {
			t.Errorf("Open(%q).Directory = %q, want %q", test.directory, got, test.want)
		}
	}
}

func TestWriteInputReplacesExisting(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"storage/key_value_stores/default/INPUT.txt":   "old",
		"storage/key_value_stores/default/OUTPUT.json": "{}",
	})
	local := Open(root, "")

	if err := local.WriteInput([]byte(`{"url":"https://example.com"}`)); err != nil {
		t.Fatalf("WriteInput() error: %v", err)
	}

	store := local.DefaultKeyValueStore()
	if _, err := os.Stat(filepath.Join(store, "INPUT.txt")); !os.IsNotExist(err) {
		t.Errorf("old INPUT.txt still present (stat error %v)", err)
	}
	data, err := os.ReadFile(filepath.Join(store, "INPUT.json"))
	if err != nil {
		t.Fatalf("reading INPUT.json: %v", err)
	}
	if string(data) != `{"url":"https://example.com"}` {
		t.Errorf("INPUT.json = %q", data)
	}
	if _, err := os.Stat(filepath.Join(store, "OUTPUT.json")); err != nil {
		t.Errorf("OUTPUT.json removed: %v", err)
	}
}

func TestPurgeKeepsInput(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"storage/datasets/default/000000001.json":     "{}",
		"storage/request_queues/default/abc.json":     "{}",
		"storage/key_value_stores/default/INPUT.json": "{}",
		"storage/key_value_stores/default/STATE.json": "{}",
		"storage/key_value_stores/other/RECORD.json":  "{}",
	})
	local := Open(root, "")

	empty, err := local.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty() error: %v", err)
	}
	if empty {
		t.Error("IsEmpty() = true before purge, want false")
	}

	if err := local.Purge(); err != nil {
		t.Fatalf("Purge() error: %v", err)
	}

	empty, err = local.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty() error: %v", err)
	}
	if !empty {
		t.Error("IsEmpty() = false after purge, want true")
	}
	for _, kept := range []string{
		"storage/key_value_stores/default/INPUT.json",
		"storage/key_value_stores/other/RECORD.json",
	} {
		if _, err := os.Stat(filepath.Join(root, kept)); err != nil {
			t.Errorf("%s removed by purge: %v", kept, err)
		}
	}
}

func TestIsEmptyMissingDirectory(t *testing.T) {
	empty, err := Open(t.TempDir(), "").IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty() error: %v", err)
	}
	if !empty {
		t.Error("IsEmpty() on missing storage = false, want true")
	}
}

func TestMigrateLegacy(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"apify_storage/datasets/default/1.json": "{}",
	})
	local := Open(root, "")

	migrated, err := local.MigrateLegacy(root)
	if err != nil {
		t.Fatalf("MigrateLegacy() error: %v", err)
	}
	if !migrated {
		t.Fatal("MigrateLegacy() = false, want true")
	}
	if _, err := os.Stat(filepath.Join(local.DefaultDataset(), "1.json")); err != nil {
		t.Errorf("migrated record missing: %v", err)
	}

	migrated, err = local.MigrateLegacy(root)
	if err != nil || migrated {
		t.Errorf("second MigrateLegacy() = %v, %v; want false, nil", migrated, err)
	}
}

func TestEnv(t *testing.T) {
	env := Open("/project", "").Env(true)
	if env["CRAWLEE_STORAGE_DIR"] != filepath.Join("/project", "storage") {
		t.Errorf("CRAWLEE_STORAGE_DIR = %q", env["CRAWLEE_STORAGE_DIR"])
	}
	if env["CRAWLEE_PURGE_ON_START"] != "1" {
		t.Errorf("CRAWLEE_PURGE_ON_START = %q, want 1", env["CRAWLEE_PURGE_ON_START"])
	}
}
