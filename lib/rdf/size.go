// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ByteSize is a byte count with standard unit-prefix parsing, per IEC
// 60027-2 A.2 and ISO/IEC 80000: binary prefixes Ki/Mi/Gi are powers
// of 1024, SI prefixes k/m/g are powers of 1000. The wire form is
// decimal text; the unit grammar is input-only.
type ByteSize struct {
	base
	value int64
}

func init() {
	Register(&Descriptor{Name: "bytesize", Store: StoreUnsignedInteger, New: func() Value { return NewByteSize(0) }})
}

var byteSizePattern = regexp.MustCompile(`(?i)^([0-9.]+)([kmgi]*)b?$`)

var byteSizeMultipliers = map[string]int64{
	"":   1,
	"k":  1000,
	"m":  1000 * 1000,
	"g":  1000 * 1000 * 1000,
	"ki": 1024,
	"mi": 1024 * 1024,
	"gi": 1024 * 1024 * 1024,
}

// NewByteSize returns a ByteSize holding n bytes.
func NewByteSize(n int64) *ByteSize {
	s := &ByteSize{value: n}
	s.stampAge()
	return s
}

// ByteSizeFromHumanReadable parses size text like "1.5GiB" or "500kb".
func ByteSizeFromHumanReadable(text string) (*ByteSize, error) {
	s := NewByteSize(0)
	if err := s.ParseFromHumanReadable(text); err != nil {
		return nil, err
	}
	return s, nil
}

// Kind implements Value.
func (s *ByteSize) Kind() string { return "bytesize" }

// Store implements Value.
func (s *ByteSize) Store() StoreType { return StoreUnsignedInteger }

// ParseFromWire decodes the decimal byte count.
func (s *ByteSize) ParseFromWire(data []byte) error {
	if len(data) == 0 {
		s.value = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return decodeErrorf("byte size payload %q: %v", data, err)
	}
	s.value = n
	return nil
}

// SerializeToWire implements Value.
func (s *ByteSize) SerializeToWire() []byte {
	return []byte(strconv.FormatInt(s.value, 10))
}

// ParseFromStore implements Value.
func (s *ByteSize) ParseFromStore(scalar any) error {
	n, err := intScalar(scalar, s.Kind())
	if err != nil {
		return err
	}
	s.value = n
	return nil
}

// SerializeToStore returns the native int64 byte count.
func (s *ByteSize) SerializeToStore() any { return s.value }

// ParseFromHumanReadable parses the unit grammar. A fractional
// coefficient needs a unit multiplier — "1.5GiB" is meaningful,
// "1.5b" would silently lose the fraction. The result is truncated to
// whole bytes after multiplication. Empty input leaves the payload
// unchanged.
func (s *ByteSize) ParseFromHumanReadable(text string) error {
	if text == "" {
		return nil
	}

	match := byteSizePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if match == nil {
		return decodeErrorf("unknown specification for ByteSize %q", text)
	}

	multiplier, ok := byteSizeMultipliers[match[2]]
	if !ok {
		return decodeErrorf("invalid multiplier %q", match[2])
	}

	coefficient := match[1]
	if strings.Contains(coefficient, ".") {
		if match[2] == "" {
			return decodeErrorf("fractional byte count %q requires a unit multiplier", text)
		}
		fraction, err := strconv.ParseFloat(coefficient, 64)
		if err != nil {
			return decodeErrorf("unknown specification for ByteSize %q", text)
		}
		s.value = int64(fraction * float64(multiplier))
		return nil
	}

	n, err := strconv.ParseInt(coefficient, 10, 64)
	if err != nil {
		return decodeErrorf("unknown specification for ByteSize %q", text)
	}
	s.value = n * multiplier
	return nil
}

// Bytes returns the payload.
func (s *ByteSize) Bytes() int64 { return s.value }

// String renders the count in the largest IEC unit the payload
// strictly exceeds, to one decimal place; small counts print as plain
// bytes.
func (s *ByteSize) String() string {
	const (
		kibibyte = 1024
		mebibyte = 1024 * 1024
		gibibyte = 1024 * 1024 * 1024
	)
	switch {
	case s.value > gibibyte:
		return fmt.Sprintf("%.1fGiB", float64(s.value)/gibibyte)
	case s.value > mebibyte:
		return fmt.Sprintf("%.1fMiB", float64(s.value)/mebibyte)
	case s.value > kibibyte:
		return fmt.Sprintf("%.1fKiB", float64(s.value)/kibibyte)
	default:
		return strconv.FormatInt(s.value, 10) + "B"
	}
}

// Copy returns an independent instance with identical payload and age.
func (s *ByteSize) Copy() *ByteSize {
	out := NewByteSize(0)
	_ = out.ParseFromWire(s.SerializeToWire())
	out.SetRawAge(s.ageMicros)
	return out
}

// Equal reports payload equality with another ByteSize.
func (s *ByteSize) Equal(other *ByteSize) bool {
	return other != nil && s.value == other.value
}

// EqualInt reports payload equality with a raw byte count.
func (s *ByteSize) EqualInt(n int64) bool { return s.value == n }

// Compare orders two ByteSizes numerically.
func (s *ByteSize) Compare(other *ByteSize) int {
	switch {
	case s.value < other.value:
		return -1
	case s.value > other.value:
		return 1
	default:
		return 0
	}
}

var _ HumanReadable = (*ByteSize)(nil)
