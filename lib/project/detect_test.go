// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/apify/apify-cli/lib/runtimes"
	"github.com/apify/apify-cli/lib/testutil"
)

type fakeFinder struct {
	info runtimes.Info
	ok   bool
}

func (f fakeFinder) Find(context.Context, string) (runtimes.Info, bool) {
	return f.info, f.ok
}

func TestChain(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		first Type
		all   []Type
	}{
		{
			name:  "scrapy with sdk",
			files: map[string]string{"scrapy.cfg": "[settings]\ndefault = a.settings\n", "requirements.txt": "apify\nscrapy\n"},
			first: TypeScrapy,
			all:   []Type{TypeScrapy, TypeApifySDK},
		},
		{
			name:  "crawlee",
			files: map[string]string{"package.json": `{"dependencies": {"crawlee": "^3.0.0", "apify": "^3.0.0"}}`},
			first: TypeCrawlee,
			all:   []Type{TypeCrawlee},
		},
		{
			name:  "legacy sdk",
			files: map[string]string{"package.json": `{"dependencies": {"apify": "^2.3.0"}}`},
			first: TypeApifySDK,
			all:   []Type{TypeApifySDK},
		},
		{
			name:  "unknown",
			files: map[string]string{"README.md": "hello"},
			first: TypeUnknown,
			all:   []Type{TypeUnknown},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root := testutil.WriteTree(t, test.files)
			chain := DefaultChain()
			if got := chain.First(root); got != test.first {
				t.Errorf("First() = %q, want %q", got, test.first)
			}
			if got := chain.All(root); !slices.Equal(got, test.all) {
				t.Errorf("All() = %q, want %q", got, test.all)
			}
		})
	}
}

func TestChain_FirstStopsEarly(t *testing.T) {
	evaluated := 0
	counting := AnalyzerFunc(func(string) bool {
		evaluated++
		return true
	})
	chain := Chain{
		{Type: TypeCrawlee, Analyzer: counting},
		{Type: TypeApifySDK, Analyzer: counting},
	}
	if got := chain.First(t.TempDir()); got != TypeCrawlee {
		t.Errorf("First() = %q, want %q", got, TypeCrawlee)
	}
	if evaluated != 1 {
		t.Errorf("First() evaluated %d analyzers, want 1", evaluated)
	}
}

func TestDetect(t *testing.T) {
	node := fakeFinder{info: runtimes.Info{ExecutablePath: "/usr/bin/node", Version: "20.11.0"}, ok: true}
	python := fakeFinder{info: runtimes.Info{ExecutablePath: "/usr/bin/python3", Version: "3.12.1"}, ok: true}
	detectors := Detectors{JavaScript: node, Python: python}

	tests := []struct {
		name         string
		files        map[string]string
		language     Language
		path         string
		script       string
		runtime      string
		noEntrypoint bool
	}{
		{
			name:     "scrapy wrapped",
			files:    map[string]string{"scrapy.cfg": "[settings]\ndefault = books.settings\n\n[apify]\nmainpy_location = books\n"},
			language: LanguageScrapy,
			path:     "books",
			runtime:  "/usr/bin/python3",
		},
		{
			name:         "scrapy unwrapped",
			files:        map[string]string{"scrapy.cfg": "[settings]\ndefault = books.settings\n"},
			language:     LanguageScrapy,
			runtime:      "/usr/bin/python3",
			noEntrypoint: true,
		},
		{
			name:     "python src module",
			files:    map[string]string{"src/__main__.py": "", "requirements.txt": "apify\n"},
			language: LanguagePython,
			path:     "src",
			runtime:  "/usr/bin/python3",
		},
		{
			name:     "javascript main",
			files:    map[string]string{"package.json": `{"main": "src/main.js", "scripts": {"start": "node src/main.js"}}`},
			language: LanguageJavaScript,
			path:     "src/main.js",
			runtime:  "/usr/bin/node",
		},
		{
			name:     "javascript start script",
			files:    map[string]string{"package.json": `{"scripts": {"start": "node dist/main.js"}}`},
			language: LanguageJavaScript,
			script:   "start",
			runtime:  "/usr/bin/node",
		},
		{
			name:     "javascript index file",
			files:    map[string]string{"src/index.mjs": ""},
			language: LanguageJavaScript,
			path:     "src/index.mjs",
			runtime:  "/usr/bin/node",
		},
		{
			name:         "unknown",
			files:        map[string]string{"README.md": ""},
			language:     LanguageUnknown,
			noEntrypoint: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root := testutil.WriteTree(t, test.files)
			project, err := Detect(context.Background(), root, detectors)
			if err != nil {
				t.Fatalf("Detect() error: %v", err)
			}
			if project.Language != test.language {
				t.Errorf("Language = %q, want %q", project.Language, test.language)
			}
			if test.noEntrypoint {
				if project.Entrypoint != nil {
					t.Errorf("Entrypoint = %+v, want nil", project.Entrypoint)
				}
			} else {
				if project.Entrypoint == nil {
					t.Fatal("Entrypoint = nil")
				}
				wantPath := test.path
				if wantPath != "" && test.language == LanguageJavaScript {
					wantPath = filepath.Join(root, filepath.FromSlash(test.path))
				}
				if project.Entrypoint.Path != wantPath {
					t.Errorf("Entrypoint.Path = %q, want %q", project.Entrypoint.Path, wantPath)
				}
				if project.Entrypoint.Script != test.script {
					t.Errorf("Entrypoint.Script = %q, want %q", project.Entrypoint.Script, test.script)
				}
			}
			gotRuntime := ""
			if project.Runtime != nil {
				gotRuntime = project.Runtime.ExecutablePath
			}
			if gotRuntime != test.runtime {
				t.Errorf("Runtime = %q, want %q", gotRuntime, test.runtime)
			}
		})
	}
}

func TestDetect_PythonModuleNamedAfterDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my-actor")
	module := filepath.Join(root, "my_actor")
	if err := os.MkdirAll(module, 0o755); err != nil {
		t.Fatalf("creating %s: %v", module, err)
	}
	if err := os.WriteFile(filepath.Join(module, "__main__.py"), nil, 0o644); err != nil {
		t.Fatalf("writing __main__.py: %v", err)
	}

	project, err := Detect(context.Background(), root, Detectors{})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if project.Language != LanguagePython || project.Entrypoint == nil || project.Entrypoint.Path != "my_actor" {
		t.Errorf("Detect() = %+v, want python module my_actor", project)
	}
	if project.Runtime != nil {
		t.Errorf("Runtime = %+v, want nil without a finder", project.Runtime)
	}
}

func TestDetect_NoRuntime(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"index.js": ""})
	project, err := Detect(context.Background(), root, Detectors{JavaScript: fakeFinder{}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if project.Language != LanguageJavaScript {
		t.Errorf("Language = %q, want %q", project.Language, LanguageJavaScript)
	}
	if project.Runtime != nil {
		t.Errorf("Runtime = %+v, want nil when the finder reports nothing", project.Runtime)
	}
}
