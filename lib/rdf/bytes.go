// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Bytes holds an opaque byte sequence. The wire form is the payload
// itself; the human-readable form is the UTF-8 encoding of the given
// text. Ordering is lexicographic byte ordering.
type Bytes struct {
	base
	value []byte
}

func init() {
	Register(&Descriptor{Name: "bytes", Store: StoreBytes, New: func() Value { return NewBytes(nil) }})
	Register(&Descriptor{Name: "zipped_bytes", Store: StoreBytes, New: func() Value { return NewZippedBytes(nil) }})
	Register(&Descriptor{Name: "hash_digest", Store: StoreBytes, New: func() Value { return NewHashDigest(nil) }})
}

// NewBytes returns a Bytes value holding a copy of payload.
func NewBytes(payload []byte) *Bytes {
	b := &Bytes{}
	b.stampAge()
	if payload != nil {
		b.value = append([]byte(nil), payload...)
	}
	return b
}

// Kind implements Value.
func (b *Bytes) Kind() string { return "bytes" }

// Store implements Value.
func (b *Bytes) Store() StoreType { return StoreBytes }

// ParseFromWire implements Value. Any byte sequence is well-formed.
func (b *Bytes) ParseFromWire(data []byte) error {
	b.value = append([]byte(nil), data...)
	return nil
}

// SerializeToWire implements Value.
func (b *Bytes) SerializeToWire() []byte {
	return append([]byte(nil), b.value...)
}

// ParseFromStore implements Value.
func (b *Bytes) ParseFromStore(scalar any) error {
	raw, err := bytesScalar(scalar, b.Kind())
	if err != nil {
		return err
	}
	b.value = append([]byte(nil), raw...)
	return nil
}

// SerializeToStore implements Value.
func (b *Bytes) SerializeToStore() any { return b.SerializeToWire() }

// ParseFromHumanReadable stores the UTF-8 encoding of text.
func (b *Bytes) ParseFromHumanReadable(text string) error {
	b.value = []byte(text)
	return nil
}

// AsBytes returns a copy of the payload.
func (b *Bytes) AsBytes() []byte {
	return append([]byte(nil), b.value...)
}

// Len returns the payload length.
func (b *Bytes) Len() int { return len(b.value) }

// Copy returns an independent instance with identical payload and
// age, round-tripped through the wire form.
func (b *Bytes) Copy() *Bytes {
	out := NewBytes(nil)
	// Wire parse of our own wire form cannot fail.
	_ = out.ParseFromWire(b.SerializeToWire())
	out.SetRawAge(b.ageMicros)
	return out
}

// Equal reports payload equality with another Bytes.
func (b *Bytes) Equal(other *Bytes) bool {
	return other != nil && bytes.Equal(b.value, other.value)
}

// EqualBytes reports payload equality with a raw byte slice.
func (b *Bytes) EqualBytes(raw []byte) bool {
	return bytes.Equal(b.value, raw)
}

// Compare orders two Bytes lexicographically.
func (b *Bytes) Compare(other *Bytes) int {
	return bytes.Compare(b.value, other.value)
}

func (b *Bytes) String() string { return string(b.value) }

// ZippedBytes is a Bytes whose payload is a zlib-compressed byte
// sequence. The wire and store forms carry the compressed bytes;
// Uncompress recovers the original data.
type ZippedBytes struct {
	Bytes
}

// NewZippedBytes wraps an already-compressed payload.
func NewZippedBytes(compressed []byte) *ZippedBytes {
	z := &ZippedBytes{}
	z.stampAge()
	if compressed != nil {
		z.value = append([]byte(nil), compressed...)
	}
	return z
}

// ZipBytes compresses raw with zlib and returns the resulting value.
func ZipBytes(raw []byte) *ZippedBytes {
	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)
	// Writes to an in-memory buffer cannot fail.
	_, _ = writer.Write(raw)
	_ = writer.Close()
	return NewZippedBytes(buffer.Bytes())
}

// Kind implements Value.
func (z *ZippedBytes) Kind() string { return "zipped_bytes" }

// Uncompress inflates the payload. An empty payload yields empty
// output.
func (z *ZippedBytes) Uncompress() ([]byte, error) {
	if len(z.value) == 0 {
		return nil, nil
	}
	reader, err := zlib.NewReader(bytes.NewReader(z.value))
	if err != nil {
		return nil, decodeErrorf("zipped bytes: %v", err)
	}
	defer reader.Close()
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, decodeErrorf("zipped bytes: %v", err)
	}
	return raw, nil
}

// Copy returns an independent instance with identical payload and age.
func (z *ZippedBytes) Copy() *ZippedBytes {
	out := NewZippedBytes(nil)
	_ = out.ParseFromWire(z.SerializeToWire())
	out.SetRawAge(z.ageMicros)
	return out
}

// HashDigest is a binary hash digest with a hex string text form.
type HashDigest struct {
	Bytes
}

// NewHashDigest wraps a raw binary digest.
func NewHashDigest(digest []byte) *HashDigest {
	h := &HashDigest{}
	h.stampAge()
	if digest != nil {
		h.value = append([]byte(nil), digest...)
	}
	return h
}

// Kind implements Value.
func (h *HashDigest) Kind() string { return "hash_digest" }

// ParseFromHumanReadable decodes a hex digest string.
func (h *HashDigest) ParseFromHumanReadable(text string) error {
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return decodeErrorf("hash digest %q: %v", text, err)
	}
	h.value = decoded
	return nil
}

// HexDigest returns the hex encoding of the digest.
func (h *HashDigest) HexDigest() string {
	return hex.EncodeToString(h.value)
}

func (h *HashDigest) String() string { return h.HexDigest() }

// EqualString reports whether text equals either the raw digest bytes
// or their hex encoding. Callers compare digests against both forms.
func (h *HashDigest) EqualString(text string) bool {
	return string(h.value) == text || h.HexDigest() == text
}

// Copy returns an independent instance with identical payload and age.
func (h *HashDigest) Copy() *HashDigest {
	out := NewHashDigest(nil)
	_ = out.ParseFromWire(h.SerializeToWire())
	out.SetRawAge(h.ageMicros)
	return out
}

var _ HumanReadable = (*Bytes)(nil)
var _ HumanReadable = (*ZippedBytes)(nil)
var _ HumanReadable = (*HashDigest)(nil)
var _ fmt.Stringer = (*Bytes)(nil)
