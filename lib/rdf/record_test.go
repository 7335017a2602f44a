// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chertdb/chert/lib/codec"
	"github.com/chertdb/chert/lib/rdf"
)

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		kind string
		wire string
	}{
		{kind: "bytes", wire: "\x01\x02\x03"},
		{kind: "string", wire: "hello"},
		{kind: "integer", wire: "-5"},
		{kind: "datetime", wire: "1434321632000000"},
		{kind: "duration", wire: "1h"},
		{kind: "urn", wire: "aff4:/clients/C-1"},
		{kind: "session_id", wire: "aff4:/flows/W:ABCDEF"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			original, err := rdf.FromWire(tt.kind, []byte(tt.wire), nil)
			if err != nil {
				t.Fatalf("FromWire: %v", err)
			}
			original.SetRawAge(123456789)

			encoded, err := rdf.EncodeRecord(original)
			if err != nil {
				t.Fatalf("EncodeRecord: %v", err)
			}
			decoded, err := rdf.DecodeRecord(encoded)
			if err != nil {
				t.Fatalf("DecodeRecord: %v", err)
			}

			if decoded.Kind() != tt.kind {
				t.Errorf("kind = %q, want %q", decoded.Kind(), tt.kind)
			}
			if !bytes.Equal(decoded.SerializeToWire(), original.SerializeToWire()) {
				t.Errorf("wire form = %q, want %q", decoded.SerializeToWire(), original.SerializeToWire())
			}
			if got := decoded.Age().AsMicrosecondsSinceEpoch(); got != 123456789 {
				t.Errorf("age = %d, want 123456789", got)
			}
		})
	}
}

func TestRecordEncodingIsDeterministic(t *testing.T) {
	value := rdf.NewString("stable")
	value.SetRawAge(1)

	first, err := rdf.EncodeRecord(value)
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	second, err := rdf.EncodeRecord(value)
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("encoding not deterministic:\n%x\n%x", first, second)
	}
}

func TestDecodeRecordUnknownKind(t *testing.T) {
	encoded, err := codec.Marshal(map[string]any{
		"kind":  "no-such-kind",
		"store": "string",
		"text":  "x",
		"age":   int64(0),
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := rdf.DecodeRecord(encoded); !errors.Is(err, rdf.ErrInitialize) {
		t.Fatalf("error = %v, want ErrInitialize", err)
	}
}

func TestDecodeRecordStoreTagMismatch(t *testing.T) {
	// A record claiming "integer" stores a string scalar was written
	// by an incompatible schema and must be rejected, not coerced.
	encoded, err := codec.Marshal(map[string]any{
		"kind":  "integer",
		"store": "string",
		"text":  "42",
		"age":   int64(0),
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := rdf.DecodeRecord(encoded); !errors.Is(err, rdf.ErrTypeMismatch) {
		t.Fatalf("error = %v, want ErrTypeMismatch", err)
	}
}

func TestDecodeRecordGarbage(t *testing.T) {
	if _, err := rdf.DecodeRecord([]byte("not cbor at all")); !errors.Is(err, rdf.ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}
}
