// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package clock_test

import (
	"testing"
	"time"

	"github.com/chertdb/chert/lib/clock"
)

func TestFakeClockStandsStill(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := clock.Fake(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", c.Now(), start)
	}
	if !c.Now().Equal(start) {
		t.Fatal("fake clock moved without Advance")
	}
}

func TestFakeClockAdvance(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := clock.Fake(start)

	c.Advance(90 * time.Second)
	want := start.Add(90 * time.Second)
	if !c.Now().Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", c.Now(), want)
	}
}

func TestFakeClockSet(t *testing.T) {
	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	target := time.Date(2030, 12, 31, 23, 59, 0, 0, time.UTC)

	c.Set(target)
	if !c.Now().Equal(target) {
		t.Fatalf("Now() after Set = %v, want %v", c.Now(), target)
	}
}

func TestRealClockTracksTime(t *testing.T) {
	c := clock.Real()
	before := time.Now()
	got := c.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Fatalf("Real().Now() = %v, outside [%v, %v]", got, before, after)
	}
}
