// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Chert packages.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation. Use it instead of time.Now() when tests need unique
// flow names, path segments, or payloads that must be distinguishable
// when a run interleaves many of them.
//
// This package has no Chert-internal dependencies.
package testutil
