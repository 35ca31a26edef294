// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package runtimes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apify/apify-cli/lib/testutil"
)

// fakeProber resolves names from a fixed table and answers probes with
// canned output. A path listed in hang blocks until the probe context
// is done.
type fakeProber struct {
	paths   map[string]string
	outputs map[string]string
	hang    map[string]bool
	probed  []string
}

func (f *fakeProber) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeProber) Output(ctx context.Context, path string, args ...string) (string, error) {
	f.probed = append(f.probed, path)
	if f.hang[path] {
		<-ctx.Done()
		return "", ctx.Err()
	}
	output, ok := f.outputs[path]
	if !ok {
		return "", errors.New("exit status 1")
	}
	return output, nil
}

func TestDetector_PrefersNodeWithNpm(t *testing.T) {
	prober := &fakeProber{
		paths:   map[string]string{"node": "/usr/bin/node", "npm": "/usr/bin/npm", "bun": "/usr/bin/bun"},
		outputs: map[string]string{"/usr/bin/node": "v20.11.0\n", "/usr/bin/npm": "10.2.4\n", "/usr/bin/bun": "20.0.0\n"},
	}
	detector := &Detector{Candidates: JavaScriptCandidates(), Prober: prober}
	info, ok := detector.Detect(context.Background())
	if !ok {
		t.Fatal("Detect() found nothing")
	}
	want := Info{
		ExecutablePath:        "/usr/bin/node",
		Version:               "20.11.0",
		PackageManagerName:    "npm",
		PackageManagerPath:    "/usr/bin/npm",
		PackageManagerVersion: "10.2.4",
	}
	if info != want {
		t.Errorf("Detect() = %+v, want %+v", info, want)
	}
}

func TestDetector_FallsBackToSelfManaged(t *testing.T) {
	prober := &fakeProber{
		// node is installed but its probe fails.
		paths:   map[string]string{"node": "/usr/bin/node", "bun": "/opt/bun"},
		outputs: map[string]string{"/opt/bun": "20.8.0"},
	}
	detector := &Detector{Candidates: JavaScriptCandidates(), Prober: prober}
	info, ok := detector.Find(context.Background(), t.TempDir())
	if !ok {
		t.Fatal("Find() found nothing")
	}
	want := Info{
		ExecutablePath:        "/opt/bun",
		Version:               "20.8.0",
		Shorthand:             "bun",
		PackageManagerName:    "bun",
		PackageManagerPath:    "/opt/bun",
		PackageManagerVersion: "20.8.0",
	}
	if info != want {
		t.Errorf("Find() = %+v, want %+v", info, want)
	}
}

func TestDetector_NodeWithoutNpm(t *testing.T) {
	prober := &fakeProber{
		paths:   map[string]string{"node": "/usr/bin/node"},
		outputs: map[string]string{"/usr/bin/node": "v18.0.0"},
	}
	info, ok := (&Detector{Candidates: JavaScriptCandidates(), Prober: prober}).Detect(context.Background())
	if !ok {
		t.Fatal("Detect() found nothing")
	}
	if info.PackageManagerName != "" || info.PackageManagerPath != "" {
		t.Errorf("package manager = %q at %q, want none", info.PackageManagerName, info.PackageManagerPath)
	}
}

func TestDetector_NothingFound(t *testing.T) {
	detector := &Detector{Candidates: JavaScriptCandidates(), Prober: &fakeProber{}}
	if info, ok := detector.Detect(context.Background()); ok {
		t.Errorf("Detect() = %+v, want nothing", info)
	}
}

func TestDetector_ProbeTimeout(t *testing.T) {
	prober := &fakeProber{
		paths:   map[string]string{"node": "/usr/bin/node", "deno": "/usr/bin/deno"},
		outputs: map[string]string{"/usr/bin/deno": "20.11.1"},
		hang:    map[string]bool{"/usr/bin/node": true},
	}
	detector := &Detector{Candidates: JavaScriptCandidates(), Prober: prober, ProbeTimeout: 20 * time.Millisecond}

	start := time.Now()
	info, ok := detector.Detect(context.Background())
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Detect() took %v, want the hung probe cut off", elapsed)
	}
	if !ok || info.ExecutablePath != "/usr/bin/deno" {
		t.Errorf("Detect() = %+v, %v, want deno", info, ok)
	}
}

func TestPythonDetector_PrefersProjectVirtualEnv(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{".venv/bin/python3": ""})
	venvPython := filepath.Join(root, ".venv", "bin", "python3")
	prober := &fakeProber{
		paths:   map[string]string{"python3": "/usr/bin/python3"},
		outputs: map[string]string{venvPython: "3.11.4\n", "/usr/bin/python3": "3.8.10\n"},
	}
	detector := &PythonDetector{Prober: prober, Getenv: func(string) string { return "" }}
	info, ok := detector.Find(context.Background(), root)
	if !ok {
		t.Fatal("Find() found nothing")
	}
	if info.ExecutablePath != venvPython || info.Version != "3.11.4" {
		t.Errorf("Find() = %+v, want the virtual environment interpreter", info)
	}
}

func TestPythonDetector_ActiveVirtualEnv(t *testing.T) {
	venv := testutil.WriteTree(t, map[string]string{"bin/python3": ""})
	venvPython := filepath.Join(venv, "bin", "python3")
	prober := &fakeProber{outputs: map[string]string{venvPython: "3.12.0"}}
	detector := &PythonDetector{Prober: prober, Getenv: func(name string) string {
		if name == "VIRTUAL_ENV" {
			return venv
		}
		return ""
	}}
	info, ok := detector.Detect(context.Background(), t.TempDir())
	if !ok || info.ExecutablePath != venvPython {
		t.Errorf("Detect() = %+v, %v, want %s", info, ok, venvPython)
	}
}

func TestPythonDetector_SearchPathFallback(t *testing.T) {
	prober := &fakeProber{
		paths:   map[string]string{"python3": "/usr/bin/python3", "python": "/usr/bin/python"},
		outputs: map[string]string{"/usr/bin/python": "3.10.2"},
	}
	detector := &PythonDetector{Prober: prober, Getenv: func(string) string { return "" }}
	info, ok := detector.Detect(context.Background(), t.TempDir())
	if !ok || info.ExecutablePath != "/usr/bin/python" || info.Version != "3.10.2" {
		t.Errorf("Detect() = %+v, %v, want /usr/bin/python 3.10.2", info, ok)
	}
}

func TestPythonVersionSupported(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"3.9.0", true},
		{"3.12.1", true},
		{"3.9", true},
		{"3.8.18", false},
		{"2.7.18", false},
		{"", false},
		{"not a version", false},
	}
	for _, test := range tests {
		if got := PythonVersionSupported(test.version); got != test.want {
			t.Errorf("PythonVersionSupported(%q) = %v, want %v", test.version, got, test.want)
		}
	}
}

func TestExecProber(t *testing.T) {
	directory := t.TempDir()
	testutil.FakeExecutable(t, directory, "node", "v20.11.0")
	t.Setenv("PATH", directory+string(os.PathListSeparator)+os.Getenv("PATH"))

	detector := &Detector{Candidates: []Candidate{{Name: "node", VersionArgs: []string{"--version"}}}}
	info, ok := detector.Detect(context.Background())
	if !ok {
		t.Fatal("Detect() found nothing")
	}
	if info.ExecutablePath != filepath.Join(directory, "node") {
		t.Errorf("ExecutablePath = %q, want the fake node", info.ExecutablePath)
	}
	if info.Version != "20.11.0" {
		t.Errorf("Version = %q, want %q", info.Version, "20.11.0")
	}
}
