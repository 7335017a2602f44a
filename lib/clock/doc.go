// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Production code accepts a Clock instead of calling time.Now
// directly. Real() provides the standard library behavior; Fake()
// provides a deterministic clock that moves only when Advance or Set
// is called. The typed-value layer stamps value ages and resolves
// "now" and "current year" through a Clock, so tests of temporal
// parsing and arithmetic are reproducible.
package clock
