// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Chert's standard CBOR encoding configuration.
//
// Store records and internal protocol envelopes are CBOR; operator
// surfaces (CLI output) are text. This package holds the shared
// encoding and decoding modes so every Chert package encodes
// identically without duplicating configuration. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. Same logical data
// always produces identical bytes — a requirement for store records,
// whose bytes are compared and content-addressed.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
package codec
