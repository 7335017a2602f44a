// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"path"
	"strings"
)

// urnScheme is the prefix synthesized on output and stripped on input.
// The payload never carries it, so path manipulation stays scheme-free.
const urnScheme = "aff4:"

// URN is a normalized hierarchical path identifier. The payload is an
// absolute path with no empty segments and no dot components; the
// scheme prefix exists only in the serialized forms. The datastore
// scalar is the serialized string, so the store collates URNs in path
// order.
type URN struct {
	base
	value string
}

func init() {
	Register(&Descriptor{Name: "urn", Store: StoreString, New: func() Value {
		u := &URN{}
		u.stampAge()
		return u
	}})
}

// normalizePath collapses dot components, duplicate separators and
// trailing slashes, and anchors the result at the root. Idempotent.
func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return "/"
	}
	return cleaned
}

// NewURN returns a URN for the given path text. The scheme prefix is
// stripped if present and the remainder normalized.
func NewURN(text string) *URN {
	u := &URN{}
	u.stampAge()
	u.setFromText(text)
	return u
}

// URNFromURN copies another URN directly. The source payload is
// already normalized, so this skips the parsing path entirely.
func URNFromURN(other *URN) *URN {
	u := &URN{value: other.value}
	u.stampAge()
	return u
}

func (u *URN) setFromText(text string) {
	if strings.HasPrefix(text, urnScheme+"/") {
		text = text[len(urnScheme):]
	}
	u.value = normalizePath(text)
}

// Kind implements Value.
func (u *URN) Kind() string { return "urn" }

// Store implements Value.
func (u *URN) Store() StoreType { return StoreString }

// ParseFromWire decodes the serialized form, stripping the scheme and
// normalizing. Stored values written by older code are not guaranteed
// to be normalized, so the full parse runs here too.
func (u *URN) ParseFromWire(data []byte) error {
	u.setFromText(string(data))
	return nil
}

// SerializeToWire returns the scheme-qualified form.
func (u *URN) SerializeToWire() []byte { return []byte(u.String()) }

// ParseFromStore implements Value.
func (u *URN) ParseFromStore(scalar any) error {
	text, err := stringScalar(scalar, u.Kind())
	if err != nil {
		return err
	}
	u.setFromText(text)
	return nil
}

// SerializeToStore returns the scheme-qualified string scalar.
func (u *URN) SerializeToStore() any { return u.String() }

// ParseFromHumanReadable implements HumanReadable.
func (u *URN) ParseFromHumanReadable(text string) error {
	u.setFromText(text)
	return nil
}

// Path returns the normalized payload, without the scheme.
func (u *URN) Path() string { return u.value }

// String returns the scheme-qualified form, e.g. "aff4:/flows/F:1".
func (u *URN) String() string { return urnScheme + u.value }

// Dirname returns the parent path of the payload.
func (u *URN) Dirname() string { return path.Dir(u.value) }

// Basename returns the final path segment of the payload.
func (u *URN) Basename() string { return path.Base(u.value) }

// Add returns a new URN whose path is the normalized join of the
// current path and segment. The receiver is never mutated; the result
// carries a fresh age.
func (u *URN) Add(segment string) *URN {
	result := URNFromURN(u)
	result.Update(path.Join(u.value, segment))
	return result
}

// Update replaces the payload in place and marks the value dirty. The
// new path is normalized.
func (u *URN) Update(p string) {
	u.value = normalizePath(p)
	u.dirty = true
}

// Split returns the non-empty path segments. If count is positive, the
// payload is split at most count times and the result padded with
// empty strings to exactly count elements, so fixed-arity
// destructuring never fails on short paths:
//
//	parts := u.Split(2) // parts[0] = namespace, parts[1] = rest
func (u *URN) Split(count int) []string {
	var pieces []string
	if count > 0 {
		pieces = strings.SplitN(u.value, "/", count+1)
	} else {
		pieces = strings.Split(u.value, "/")
	}

	result := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if piece != "" {
			result = append(result, piece)
		}
	}
	for count > 0 && len(result) < count {
		result = append(result, "")
	}
	return result
}

// RelativeName returns this URN's path relative to volume, with
// leading separators trimmed. The second result is false when this
// URN does not live under volume.
func (u *URN) RelativeName(volume *URN) (string, bool) {
	full := u.String()
	prefix := volume.String()
	if !strings.HasPrefix(full, prefix) {
		return "", false
	}
	return strings.TrimLeft(full[len(prefix):], "/"), true
}

// Copy returns an independent instance with identical payload and age.
func (u *URN) Copy() *URN {
	out := URNFromURN(u)
	out.SetRawAge(u.ageMicros)
	return out
}

// Equal reports payload equality with another URN.
func (u *URN) Equal(other *URN) bool {
	return other != nil && u.value == other.value
}

// EqualString reports equality with a raw path-like string, which is
// parsed the same way a constructor input would be.
func (u *URN) EqualString(text string) bool {
	return u.value == NewURN(text).value
}

// Compare orders two URNs by payload.
func (u *URN) Compare(other *URN) int {
	return strings.Compare(u.value, other.value)
}

var _ HumanReadable = (*URN)(nil)
