// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"strconv"
	"strings"
)

// Integer holds a signed integer. The wire form is decimal text.
// Arithmetic methods return fresh typed results so Integer values
// chain; use Int64 or Float64 where a raw number is needed.
type Integer struct {
	base
	value int64
}

func init() {
	Register(&Descriptor{Name: "integer", Store: StoreInteger, New: func() Value { return NewInteger(0) }})
	Register(&Descriptor{Name: "bool", Store: StoreUnsignedInteger, New: func() Value { return NewBool(false) }})
}

// NewInteger returns an Integer holding n.
func NewInteger(n int64) *Integer {
	i := &Integer{value: n}
	i.stampAge()
	return i
}

// Kind implements Value.
func (i *Integer) Kind() string { return "integer" }

// Store implements Value.
func (i *Integer) Store() StoreType { return StoreInteger }

// ParseFromWire decodes decimal text. Empty input means zero.
func (i *Integer) ParseFromWire(data []byte) error {
	if len(data) == 0 {
		i.value = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return decodeErrorf("integer payload %q: %v", data, err)
	}
	i.value = n
	return nil
}

// SerializeToWire implements Value.
func (i *Integer) SerializeToWire() []byte {
	return []byte(strconv.FormatInt(i.value, 10))
}

// ParseFromStore implements Value.
func (i *Integer) ParseFromStore(scalar any) error {
	n, err := intScalar(scalar, i.Kind())
	if err != nil {
		return err
	}
	i.value = n
	return nil
}

// SerializeToStore returns the native int64 scalar.
func (i *Integer) SerializeToStore() any { return i.value }

// ParseFromHumanReadable implements HumanReadable.
func (i *Integer) ParseFromHumanReadable(text string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return decodeErrorf("integer %q: %v", text, err)
	}
	i.value = n
	return nil
}

// Int64 returns the payload.
func (i *Integer) Int64() int64 { return i.value }

// Float64 returns the payload as a float.
func (i *Integer) Float64() float64 { return float64(i.value) }

func (i *Integer) String() string { return strconv.FormatInt(i.value, 10) }

// Copy returns an independent instance with identical payload and age.
func (i *Integer) Copy() *Integer {
	out := NewInteger(0)
	_ = out.ParseFromWire(i.SerializeToWire())
	out.SetRawAge(i.ageMicros)
	return out
}

// Arithmetic. Each method returns a fresh Integer; the receiver is
// never mutated.

// Add returns a new Integer holding the sum.
func (i *Integer) Add(n int64) *Integer { return NewInteger(i.value + n) }

// Sub returns a new Integer holding the difference.
func (i *Integer) Sub(n int64) *Integer { return NewInteger(i.value - n) }

// Mul returns a new Integer holding the product.
func (i *Integer) Mul(n int64) *Integer { return NewInteger(i.value * n) }

// Div returns a new Integer holding the integer quotient.
func (i *Integer) Div(n int64) *Integer { return NewInteger(i.value / n) }

// And returns a new Integer holding the bitwise conjunction.
func (i *Integer) And(n int64) *Integer { return NewInteger(i.value & n) }

// Or returns a new Integer holding the bitwise disjunction.
func (i *Integer) Or(n int64) *Integer { return NewInteger(i.value | n) }

// Equal reports payload equality with another Integer.
func (i *Integer) Equal(other *Integer) bool {
	return other != nil && i.value == other.value
}

// EqualInt reports payload equality with a raw integer.
func (i *Integer) EqualInt(n int64) bool { return i.value == n }

// Compare orders two Integers numerically.
func (i *Integer) Compare(other *Integer) int {
	switch {
	case i.value < other.value:
		return -1
	case i.value > other.value:
		return 1
	default:
		return 0
	}
}

// Bool is an Integer whose human-readable parser accepts boolean
// text. The payload is 0 or 1.
type Bool struct {
	Integer
}

// NewBool returns a Bool holding v.
func NewBool(v bool) *Bool {
	b := &Bool{}
	b.stampAge()
	if v {
		b.value = 1
	}
	return b
}

// Kind implements Value.
func (b *Bool) Kind() string { return "bool" }

// Store implements Value.
func (b *Bool) Store() StoreType { return StoreUnsignedInteger }

// ParseFromHumanReadable accepts case-insensitive "TRUE" or "1" for
// true and "FALSE" or "0" for false.
func (b *Bool) ParseFromHumanReadable(text string) error {
	switch {
	case strings.EqualFold(text, "TRUE") || text == "1":
		b.value = 1
	case strings.EqualFold(text, "FALSE") || text == "0":
		b.value = 0
	default:
		return valueErrorf("unparsable boolean string %q", text)
	}
	return nil
}

// Bool returns the payload as a Go bool.
func (b *Bool) Bool() bool { return b.value != 0 }

// Copy returns an independent instance with identical payload and age.
func (b *Bool) Copy() *Bool {
	out := NewBool(false)
	_ = out.ParseFromWire(b.SerializeToWire())
	out.SetRawAge(b.ageMicros)
	return out
}

var _ HumanReadable = (*Integer)(nil)
var _ HumanReadable = (*Bool)(nil)
