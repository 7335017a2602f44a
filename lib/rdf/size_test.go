// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf_test

import (
	"errors"
	"testing"

	"github.com/chertdb/chert/lib/rdf"
)

func TestByteSizeParse(t *testing.T) {
	tests := []struct {
		text    string
		want    int64
		wantErr bool
	}{
		{text: "100", want: 100},
		{text: "100b", want: 100},
		{text: "1kb", want: 1000},
		{text: "1Kib", want: 1024},
		{text: "2MB", want: 2_000_000},
		{text: "2MiB", want: 2 * 1024 * 1024},
		{text: "1gb", want: 1_000_000_000},
		{text: "1.5GiB", want: 1610612736},
		{text: "1.5Gi", want: 1610612736}, // trailing "b" is optional
		{text: "0.5KiB", want: 512},
		{text: "1.5", wantErr: true}, // fraction needs a multiplier
		{text: "1xb", wantErr: true},
		{text: "12 kb", wantErr: true},
		{text: "one", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			size, err := rdf.ByteSizeFromHumanReadable(tt.text)
			if tt.wantErr {
				if !errors.Is(err, rdf.ErrDecode) {
					t.Fatalf("error = %v, want ErrDecode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ByteSizeFromHumanReadable: %v", err)
			}
			if got := size.Bytes(); got != tt.want {
				t.Fatalf("parsed %q = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestByteSizeString(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{bytes: 100, want: "100B"},
		{bytes: 1024, want: "1024B"}, // exactly 1KiB stays in bytes
		{bytes: 2048, want: "2.0KiB"},
		{bytes: 1536, want: "1.5KiB"},
		{bytes: 3 * 1024 * 1024, want: "3.0MiB"},
		{bytes: 2 * 1024 * 1024 * 1024, want: "2.0GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := rdf.NewByteSize(tt.bytes).String(); got != tt.want {
				t.Fatalf("String(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestByteSizeWireIsDecimal(t *testing.T) {
	size, err := rdf.ByteSizeFromHumanReadable("1Kib")
	if err != nil {
		t.Fatalf("ByteSizeFromHumanReadable: %v", err)
	}
	if got := string(size.SerializeToWire()); got != "1024" {
		t.Fatalf("wire form = %q, want %q", got, "1024")
	}
}
