// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

// Package rdf implements Chert's typed-value layer. Every unit of data
// exchanged between client agents, the store, and operators is wrapped
// in a strongly-typed value that knows how to represent itself in three
// independent encodings:
//
//   - Wire bytes: the canonical byte encoding used for transport. For
//     every kind, ParseFromWire is the exact inverse of
//     SerializeToWire.
//   - Datastore scalar: the native storage representation — raw bytes,
//     a string, or an int64, tagged per kind by Store(). Kinds whose
//     payload is numeric or textual override the bytes default so the
//     store can index and sort them natively.
//   - Human-readable text: an input-only, kind-specific grammar for
//     operator-facing tools (durations like "90m", byte sizes like
//     "1.5GiB", calendar timestamps).
//
// Every value carries an age — the instant it was created or captured,
// stamped from the package clock at construction — and a dirty flag
// that kind-specific update operations set so the attribute layer can
// detect unsaved changes.
//
// Kinds self-register in a process-wide registry during package
// initialization. Collaborators that declare their own kinds may
// reference a kind that has not been registered yet via OnDeclared,
// which queues a callback until the target name appears. The registry
// is written only during this bounded declaration phase; afterwards it
// is read-only and safe for concurrent readers. Value instances are
// not internally synchronized.
package rdf
