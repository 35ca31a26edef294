// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/apify/apify-cli/lib/statefile"
)

// stateVersion is written to every state file.
const stateVersion = 1

// AnonymousIDPrefix starts every anonymous identifier.
const AnonymousIDPrefix = "CLI:"

// State is the persisted telemetry preference.
type State struct {
	Version     int    `json:"version"`
	Enabled     bool   `json:"enabled"`
	AnonymousID string `json:"anonymousId"`
}

// NewState returns an enabled state with a fresh anonymous identifier.
func NewState() State {
	return State{
		Version:     stateVersion,
		Enabled:     true,
		AnonymousID: AnonymousIDPrefix + uuid.NewString(),
	}
}

// LoadState reads the state file at path. exists is false (with a nil
// error) when the file does not exist.
func LoadState(path string) (state State, exists bool, err error) {
	err = statefile.Read(path, &state)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("reading telemetry state: %w", err)
	}
	if state.AnonymousID == "" {
		state.AnonymousID = AnonymousIDPrefix + uuid.NewString()
	}
	return state, true, nil
}

// SaveState writes state to path, creating parent directories.
func SaveState(path string, state State) error {
	if state.Version == 0 {
		state.Version = stateVersion
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating telemetry state directory: %w", err)
	}
	if err := statefile.Write(path, state, 0o644); err != nil {
		return fmt.Errorf("writing telemetry state: %w", err)
	}
	return nil
}

// EnsureState loads the state at path, creating and saving a fresh
// enabled state when none exists. When a state is created, the opt-out
// notice is written to notice (which may be nil).
func EnsureState(path string, notice io.Writer) (State, error) {
	state, exists, err := LoadState(path)
	if err != nil {
		return State{}, err
	}
	if exists {
		return state, nil
	}
	state = NewState()
	if err := SaveState(path, state); err != nil {
		return State{}, err
	}
	if notice != nil {
		fmt.Fprintln(notice, Notice)
	}
	return state, nil
}

// SetEnabled updates the enabled flag at path, creating the state when
// needed, and returns the saved state.
func SetEnabled(path string, enabled bool) (State, error) {
	state, exists, err := LoadState(path)
	if err != nil {
		return State{}, err
	}
	if !exists {
		state = NewState()
	}
	state.Enabled = enabled
	if err := SaveState(path, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Notice is printed once, when the state file is first created.
const Notice = "apify collects anonymous usage data to improve the CLI.\n" +
	"Run 'apify telemetry disable' or set APIFY_CLI_DISABLE_TELEMETRY=1 to opt out."
