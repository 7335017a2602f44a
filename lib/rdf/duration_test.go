// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chertdb/chert/lib/clock"
	"github.com/chertdb/chert/lib/rdf"
)

func TestDurationParse(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{text: "1w", want: 604800},
		{text: "2d", want: 172800},
		{text: "3h", want: 10800},
		{text: "90m", want: 5400},
		{text: "45s", want: 45},
		{text: "3600", want: 3600},
		{text: "0", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			duration, err := rdf.DurationFromHumanReadable(tt.text)
			if err != nil {
				t.Fatalf("DurationFromHumanReadable: %v", err)
			}
			if got := duration.Seconds(); got != tt.want {
				t.Fatalf("parsed %q = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestDurationCanonicalForm(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{seconds: 3600, want: "1h"},
		{seconds: 604800, want: "1w"},
		{seconds: 172800, want: "2d"},
		{seconds: 5400, want: "90m"},
		{seconds: 45, want: "45s"},
		{seconds: 0, want: "0w"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := rdf.NewDuration(tt.seconds).String(); got != tt.want {
				t.Fatalf("String(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestDurationWireIsCanonicalText(t *testing.T) {
	duration, err := rdf.DurationFromHumanReadable("3600")
	if err != nil {
		t.Fatalf("DurationFromHumanReadable: %v", err)
	}
	if got := string(duration.SerializeToWire()); got != "1h" {
		t.Fatalf("wire form = %q, want canonical %q", got, "1h")
	}
}

func TestDurationBadSuffixIsUnclassified(t *testing.T) {
	_, err := rdf.DurationFromHumanReadable("12x")
	if err == nil {
		t.Fatalf("bad suffix parsed without error")
	}
	// The bad-suffix fault deliberately sits outside the sentinel
	// taxonomy; callers cannot classify it.
	for _, sentinel := range []error{rdf.ErrDecode, rdf.ErrInitialize, rdf.ErrValue, rdf.ErrTypeMismatch} {
		if errors.Is(err, sentinel) {
			t.Errorf("bad-suffix error unexpectedly matches %v", sentinel)
		}
	}
}

func TestDurationBadNumber(t *testing.T) {
	_, err := rdf.DurationFromHumanReadable("h")
	if !errors.Is(err, rdf.ErrInitialize) {
		t.Fatalf("error = %v, want ErrInitialize", err)
	}
}

func TestDurationExpiry(t *testing.T) {
	hour, err := rdf.DurationFromHumanReadable("1h")
	if err != nil {
		t.Fatalf("DurationFromHumanReadable: %v", err)
	}

	base := rdf.DatetimeFromSecondsSinceEpoch(1000)
	if got := hour.Expiry(base).AsSecondsSinceEpoch(); got != 4600 {
		t.Fatalf("Expiry(base) = %d, want 4600", got)
	}

	start := time.Date(2015, time.June, 15, 12, 0, 0, 0, time.UTC)
	restore := rdf.SetClock(clock.Fake(start))
	defer restore()
	if got := hour.Expiry(nil).AsSecondsSinceEpoch(); got != start.Unix()+3600 {
		t.Fatalf("Expiry(nil) = %d, want now+3600", got)
	}
}

func TestDurationArithmetic(t *testing.T) {
	duration := rdf.NewDuration(90)

	if got := duration.Add(10).Seconds(); got != 100 {
		t.Errorf("Add = %d, want 100", got)
	}
	if got := duration.Sub(30).Seconds(); got != 60 {
		t.Errorf("Sub = %d, want 60", got)
	}
	if got := duration.Scale(0.5).Seconds(); got != 45 {
		t.Errorf("Scale = %d, want 45", got)
	}
	if got := rdf.NewDuration(-30).Abs().Seconds(); got != 30 {
		t.Errorf("Abs = %d, want 30", got)
	}
	if got := duration.Microseconds(); got != 90*rdf.Microseconds {
		t.Errorf("Microseconds = %d", got)
	}
}
