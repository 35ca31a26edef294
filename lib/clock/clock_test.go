// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeNow(t *testing.T) {
	c := Fake(epoch)
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now() = %v, want %v", got, epoch)
	}

	c.Advance(90 * time.Second)
	want := epoch.Add(90 * time.Second)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", got, want)
	}
	if got := c.Since(epoch); got != 90*time.Second {
		t.Errorf("Since(epoch) = %v, want 90s", got)
	}

	c.Set(epoch)
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now() after Set = %v, want %v", got, epoch)
	}
}

func TestFakeAdvanceNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Advance(-1) did not panic")
		}
	}()
	Fake(epoch).Advance(-1)
}

func TestReal(t *testing.T) {
	before := time.Now()
	got := Real().Now()
	if got.Before(before) {
		t.Errorf("Real().Now() = %v, earlier than %v", got, before)
	}
}
