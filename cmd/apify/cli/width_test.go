// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"
)

func TestLineWidth(t *testing.T) {
	tests := []struct {
		name     string
		override string
		terminal bool
		columns  int
		sizeErr  error
		want     int
	}{
		{name: "override wins", override: "50", terminal: true, columns: 200, want: 50},
		{name: "override below minimum", override: "10", want: 10},
		{name: "invalid override ignored", override: "wide", want: DefaultLineWidth},
		{name: "zero override ignored", override: "0", want: DefaultLineWidth},
		{name: "not a terminal", want: DefaultLineWidth},
		{name: "terminal width", terminal: true, columns: 120, want: 120},
		{name: "narrow terminal clamped", terminal: true, columns: 30, want: MinLineWidth},
		{name: "unreadable terminal", terminal: true, sizeErr: errors.New("no tty"), want: DefaultLineWidth},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			width := &LineWidth{
				Getenv:        func(string) string { return test.override },
				IsTerminal:    func() bool { return test.terminal },
				TerminalWidth: func() (int, error) { return test.columns, test.sizeErr },
			}
			if got := width.Value(); got != test.want {
				t.Errorf("Value() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestLineWidth_Memoized(t *testing.T) {
	columns := 100
	width := &LineWidth{
		Getenv:        func(string) string { return "" },
		IsTerminal:    func() bool { return true },
		TerminalWidth: func() (int, error) { return columns, nil },
	}
	if got := width.Value(); got != 100 {
		t.Fatalf("Value() = %d, want 100", got)
	}
	columns = 60
	if got := width.Value(); got != 100 {
		t.Errorf("Value() after resize = %d, want the memoized 100", got)
	}
	width.Reset()
	if got := width.Value(); got != 60 {
		t.Errorf("Value() after Reset = %d, want 60", got)
	}
}
