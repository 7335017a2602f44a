// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"github.com/chertdb/chert/lib/codec"
)

// storeRecord is the self-describing envelope a value travels in when
// written to the store as a whole row rather than a bare scalar. The
// kind name and store tag make the record decodable without external
// schema; exactly one payload field is populated, selected by the tag.
type storeRecord struct {
	Kind  string `cbor:"kind"`
	Store string `cbor:"store"`
	Bytes []byte `cbor:"bytes,omitempty"`
	Text  string `cbor:"text,omitempty"`
	Int   int64  `cbor:"int,omitempty"`
	Age   int64  `cbor:"age"`
}

// EncodeRecord serializes a value into the deterministic CBOR
// envelope, carrying its datastore scalar and age.
func EncodeRecord(v Value) ([]byte, error) {
	record := storeRecord{
		Kind:  v.Kind(),
		Store: v.Store().String(),
		Age:   v.Age().AsMicrosecondsSinceEpoch(),
	}

	scalar := v.SerializeToStore()
	switch v.Store() {
	case StoreBytes:
		raw, err := bytesScalar(scalar, v.Kind())
		if err != nil {
			return nil, err
		}
		record.Bytes = raw
	case StoreString:
		text, err := stringScalar(scalar, v.Kind())
		if err != nil {
			return nil, err
		}
		record.Text = text
	case StoreInteger, StoreUnsignedInteger:
		n, err := intScalar(scalar, v.Kind())
		if err != nil {
			return nil, err
		}
		record.Int = n
	default:
		return nil, typeMismatchf("kind %q has unknown store tag %v", v.Kind(), v.Store())
	}

	return codec.Marshal(record)
}

// DecodeRecord deserializes an envelope back into a typed value. The
// kind must be registered and the embedded store tag must agree with
// the kind's declared tag; disagreement means the record was written
// by an incompatible schema.
func DecodeRecord(data []byte) (Value, error) {
	var record storeRecord
	if err := codec.Unmarshal(data, &record); err != nil {
		return nil, decodeErrorf("store record envelope: %v", err)
	}

	descriptor, ok := Lookup(record.Kind)
	if !ok {
		return nil, initializeErrorf("unknown value kind %q", record.Kind)
	}
	if got := descriptor.Store.String(); got != record.Store {
		return nil, typeMismatchf("record for kind %q tagged %q, kind stores %q",
			record.Kind, record.Store, got)
	}

	value := descriptor.New()
	var scalar any
	switch descriptor.Store {
	case StoreBytes:
		scalar = record.Bytes
	case StoreString:
		scalar = record.Text
	default:
		scalar = record.Int
	}
	if err := value.ParseFromStore(scalar); err != nil {
		return nil, err
	}
	value.SetRawAge(record.Age)
	return value, nil
}
