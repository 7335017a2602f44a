// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"sync/atomic"

	"github.com/chertdb/chert/lib/clock"
)

// valueClock supplies the wall-clock instant for age stamping,
// DatetimeNow, and the current-year defaults of calendar parsing.
// Production uses the real clock; tests swap in clock.Fake.
var valueClock atomic.Pointer[clock.Clock]

func init() {
	real := clock.Real()
	valueClock.Store(&real)
}

// SetClock replaces the package clock and returns a function that
// restores the previous one. Intended for tests:
//
//	restore := rdf.SetClock(clock.Fake(start))
//	defer restore()
func SetClock(c clock.Clock) func() {
	previous := valueClock.Swap(&c)
	return func() { valueClock.Store(previous) }
}

func packageClock() clock.Clock {
	return *valueClock.Load()
}

// nowMicros returns the current instant as microseconds since epoch.
func nowMicros() int64 {
	now := packageClock().Now()
	return now.Unix()*Microseconds + int64(now.Nanosecond())/1000
}
