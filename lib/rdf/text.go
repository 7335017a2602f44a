// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"strings"
	"unicode/utf8"
)

// String holds unicode text. The wire form is UTF-8; the datastore
// scalar is the string itself — the one kind whose store form and
// wire form differ in type, not just encoding, so the store can
// collate text natively.
type String struct {
	base
	value string
}

func init() {
	Register(&Descriptor{Name: "string", Store: StoreString, New: func() Value { return NewString("") }})
}

// NewString returns a String value holding text.
func NewString(text string) *String {
	s := &String{value: text}
	s.stampAge()
	return s
}

// Kind implements Value.
func (s *String) Kind() string { return "string" }

// Store implements Value.
func (s *String) Store() StoreType { return StoreString }

// ParseFromWire decodes UTF-8 wire bytes.
func (s *String) ParseFromWire(data []byte) error {
	if !utf8.Valid(data) {
		return decodeErrorf("string payload is not valid UTF-8")
	}
	s.value = string(data)
	return nil
}

// SerializeToWire implements Value.
func (s *String) SerializeToWire() []byte { return []byte(s.value) }

// ParseFromStore implements Value.
func (s *String) ParseFromStore(scalar any) error {
	text, err := stringScalar(scalar, s.Kind())
	if err != nil {
		return err
	}
	s.value = text
	return nil
}

// SerializeToStore returns the native string scalar.
func (s *String) SerializeToStore() any { return s.value }

// ParseFromHumanReadable implements HumanReadable.
func (s *String) ParseFromHumanReadable(text string) error {
	s.value = text
	return nil
}

func (s *String) String() string { return s.value }

// Split splits the payload around sep, mirroring strings.Split.
func (s *String) Split(sep string) []string {
	return strings.Split(s.value, sep)
}

// Copy returns an independent instance with identical payload and age.
func (s *String) Copy() *String {
	out := NewString("")
	_ = out.ParseFromWire(s.SerializeToWire())
	out.SetRawAge(s.ageMicros)
	return out
}

// Equal reports payload equality with another String.
func (s *String) Equal(other *String) bool {
	return other != nil && s.value == other.value
}

// EqualString reports payload equality with a raw string.
func (s *String) EqualString(text string) bool { return s.value == text }

// EqualBytes reports equality with a raw UTF-8 byte string. Kept for
// backward compatibility with callers that still hold encoded bytes.
func (s *String) EqualBytes(raw []byte) bool {
	return s.value == string(raw)
}

// Compare orders two Strings lexicographically.
func (s *String) Compare(other *String) int {
	return strings.Compare(s.value, other.value)
}

var _ HumanReadable = (*String)(nil)
