// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apify/apify-cli/lib/clock"
)

// Tracker receives usage events. Track never blocks on the network
// and never reports failure to the caller.
type Tracker interface {
	Track(event string, properties map[string]any)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Track(string, map[string]any) {}

// Event is one spooled record.
type Event struct {
	Event       string         `json:"event"`
	Timestamp   time.Time      `json:"timestamp"`
	AnonymousID string         `json:"anonymousId"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// Spool appends events as JSON lines to a queue file. Write failures
// are logged at debug level and otherwise ignored.
type Spool struct {
	path        string
	anonymousID string
	clock       clock.Clock
	logger      *slog.Logger

	mu sync.Mutex
}

// NewSpool returns a spool appending to path. A nil logger discards.
func NewSpool(path, anonymousID string, clk clock.Clock, logger *slog.Logger) *Spool {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Spool{path: path, anonymousID: anonymousID, clock: clk, logger: logger}
}

// Track appends one event.
func (s *Spool) Track(event string, properties map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := json.Marshal(Event{
		Event:       event,
		Timestamp:   s.clock.Now().UTC(),
		AnonymousID: s.anonymousID,
		Properties:  properties,
	})
	if err != nil {
		s.logger.Debug("telemetry event not serializable", "event", event, "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Debug("telemetry spool directory unavailable", "path", s.path, "error", err)
		return
	}
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Debug("telemetry spool unavailable", "path", s.path, "error", err)
		return
	}
	defer file.Close()
	if _, err := file.Write(append(line, '\n')); err != nil {
		s.logger.Debug("telemetry spool write failed", "path", s.path, "error", err)
	}
}

// Options configures [Open].
type Options struct {
	// Home is the CLI state directory.
	Home string

	// Disabled forces the no-op tracker (configuration or environment
	// opt-out).
	Disabled bool

	// Notice receives the first-run notice. May be nil.
	Notice io.Writer

	Clock  clock.Clock
	Logger *slog.Logger
}

// StateFile and SpoolFile are created under the CLI home directory.
const (
	StateFile = "telemetry.json"
	SpoolFile = "telemetry-events.jsonl"
)

// Open returns the tracker the CLI should use: [Nop] when disabled by
// options or stored state, or when the state cannot be read or
// created; a [Spool] under Home otherwise.
func Open(options Options) Tracker {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if options.Disabled {
		return Nop{}
	}
	state, err := EnsureState(filepath.Join(options.Home, StateFile), options.Notice)
	if err != nil {
		logger.Debug("telemetry state unavailable", "error", err)
		return Nop{}
	}
	if !state.Enabled {
		return Nop{}
	}
	clk := options.Clock
	if clk == nil {
		clk = clock.Real()
	}
	return NewSpool(filepath.Join(options.Home, SpoolFile), state.AnonymousID, clk, logger)
}
