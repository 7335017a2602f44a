// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"github.com/zeebo/blake3"
)

// StoreType tags the native datastore scalar a kind serializes to.
type StoreType int

const (
	// StoreBytes: the scalar is a raw byte slice.
	StoreBytes StoreType = iota

	// StoreString: the scalar is a string.
	StoreString

	// StoreInteger: the scalar is a signed int64.
	StoreInteger

	// StoreUnsignedInteger: the scalar is an int64 holding a
	// non-negative count (timestamps, durations, sizes). The store
	// may index these differently from signed integers.
	StoreUnsignedInteger
)

// String returns the store tag name used in schemas and diagnostics.
func (t StoreType) String() string {
	switch t {
	case StoreBytes:
		return "bytes"
	case StoreString:
		return "string"
	case StoreInteger:
		return "integer"
	case StoreUnsignedInteger:
		return "unsigned_integer"
	default:
		return "unknown"
	}
}

// Value is the contract every kind implements. Concrete kinds are
// pointer types embedding base; their payload type never changes after
// parsing, only the payload content does.
type Value interface {
	// Kind returns the registry name of this value's kind.
	Kind() string

	// ParseFromWire replaces the payload from wire bytes. The exact
	// inverse of SerializeToWire.
	ParseFromWire(data []byte) error

	// SerializeToWire returns the canonical wire encoding.
	SerializeToWire() []byte

	// ParseFromStore replaces the payload from a datastore scalar.
	// The scalar's runtime type must match Store().
	ParseFromStore(scalar any) error

	// SerializeToStore returns the datastore scalar. Defaults to the
	// wire bytes; numeric, textual, and path kinds return native
	// int64 or string scalars instead, for storage efficiency and
	// sort-order correctness.
	SerializeToStore() any

	// Store tags the scalar type of SerializeToStore/ParseFromStore.
	Store() StoreType

	// Age is the instant this value was created or captured.
	Age() *Datetime

	// SetAge replaces the age.
	SetAge(age *Datetime)

	// SetRawAge replaces the age from a raw microsecond count, as
	// read back from the store.
	SetRawAge(micros int64)

	// Dirty reports whether the payload was mutated through an
	// update operation since construction. Consumed by the attribute
	// layer to detect unsaved changes; never interpreted here.
	Dirty() bool
}

// HumanReadable is implemented by kinds that are human-editable:
// they additionally parse an operator-facing text grammar.
type HumanReadable interface {
	Value
	ParseFromHumanReadable(text string) error
}

// base carries the bookkeeping every kind embeds: the age and the
// dirty flag. The age is stored as a raw microsecond count and
// upgraded to a Datetime on read, so values deserialized from the
// store pay for the temporal wrapper only when someone asks.
type base struct {
	ageMicros int64
	dirty     bool
}

// Age returns the creation/capture instant. The returned Datetime's
// own age is left at zero to terminate the recursion.
func (b *base) Age() *Datetime {
	return &Datetime{value: b.ageMicros}
}

// SetAge replaces the age with the given instant.
func (b *base) SetAge(age *Datetime) {
	b.ageMicros = age.AsMicrosecondsSinceEpoch()
}

// SetRawAge replaces the age from a raw microsecond count.
func (b *base) SetRawAge(micros int64) {
	b.ageMicros = micros
}

// Dirty reports whether an update operation has touched the payload.
func (b *base) Dirty() bool { return b.dirty }

// stampAge sets the age to the current instant. Called by every
// constructor.
func (b *base) stampAge() {
	b.ageMicros = nowMicros()
}

// Scalar assertion helpers. ParseFromStore implementations use these
// so a wrong runtime type surfaces as ErrTypeMismatch instead of being
// coerced.

func bytesScalar(scalar any, kind string) ([]byte, error) {
	raw, ok := scalar.([]byte)
	if !ok {
		return nil, typeMismatchf("kind %q expects a bytes scalar, got %T", kind, scalar)
	}
	return raw, nil
}

func stringScalar(scalar any, kind string) (string, error) {
	text, ok := scalar.(string)
	if !ok {
		return "", typeMismatchf("kind %q expects a string scalar, got %T", kind, scalar)
	}
	return text, nil
}

func intScalar(scalar any, kind string) (int64, error) {
	switch n := scalar.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, typeMismatchf("kind %q expects an integer scalar, got %T", kind, scalar)
	}
}

// fingerprintKey is the BLAKE3 domain key for value fingerprints. The
// bytes are the ASCII domain name zero-padded to 32, readable in hex
// dumps without weakening the keyed mode.
var fingerprintKey = [32]byte{
	'c', 'h', 'e', 'r', 't', '.', 'v', 'a', 'l', 'u', 'e', 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns the keyed BLAKE3 digest of a value's wire form.
// Values with equal wire serializations have equal fingerprints, so
// fingerprints serve as hash keys for deduplication and map indexing.
func Fingerprint(v Value) [32]byte {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("rdf: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(v.SerializeToWire())
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}
