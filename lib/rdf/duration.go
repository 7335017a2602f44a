// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"fmt"
	"strconv"
)

// Duration is a length of time stored as signed whole seconds. The
// wire form is the canonical human-readable text ("1h", "2d"), so
// durations stay legible in transit.
type Duration struct {
	base
	value int64
}

func init() {
	Register(&Descriptor{Name: "duration", Store: StoreUnsignedInteger, New: func() Value { return NewDuration(0) }})
}

// durationUnits maps suffix letters to seconds, largest first. The
// canonical text form uses the first unit that divides the payload
// evenly.
var durationUnits = []struct {
	suffix  byte
	seconds int64
}{
	{'w', 7 * 24 * 60 * 60},
	{'d', 24 * 60 * 60},
	{'h', 60 * 60},
	{'m', 60},
	{'s', 1},
}

// NewDuration returns a Duration holding seconds.
func NewDuration(seconds int64) *Duration {
	d := &Duration{value: seconds}
	d.stampAge()
	return d
}

// DurationFromHumanReadable parses duration text: an optional integer
// followed by an optional unit suffix from w/d/h/m/s. No suffix means
// raw seconds.
func DurationFromHumanReadable(text string) (*Duration, error) {
	d := NewDuration(0)
	if err := d.ParseFromHumanReadable(text); err != nil {
		return nil, err
	}
	return d, nil
}

// Kind implements Value.
func (d *Duration) Kind() string { return "duration" }

// Store implements Value.
func (d *Duration) Store() StoreType { return StoreUnsignedInteger }

// ParseFromWire decodes the canonical text form.
func (d *Duration) ParseFromWire(data []byte) error {
	return d.ParseFromHumanReadable(string(data))
}

// SerializeToWire returns the canonical text form.
func (d *Duration) SerializeToWire() []byte {
	return []byte(d.String())
}

// ParseFromStore implements Value.
func (d *Duration) ParseFromStore(scalar any) error {
	n, err := intScalar(scalar, d.Kind())
	if err != nil {
		return err
	}
	d.value = n
	return nil
}

// SerializeToStore returns the native int64 second count.
func (d *Duration) SerializeToStore() any { return d.value }

// ParseFromHumanReadable parses duration text. Empty input leaves the
// payload unchanged. An unrecognized suffix letter is not a typed
// decode error but a plain fault — a long-standing inconsistency that
// callers depend on, kept distinct from the ErrDecode taxonomy.
func (d *Duration) ParseFromHumanReadable(text string) error {
	if text == "" {
		return nil
	}

	multiplier := int64(1)
	digits := text
	last := text[len(text)-1]
	if last < '0' || last > '9' {
		seconds, ok := unitSeconds(last)
		if !ok {
			return fmt.Errorf("invalid duration multiplicator: %q (%q)", string(last), text)
		}
		multiplier = seconds
		digits = text[:len(text)-1]
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return initializeErrorf("could not parse duration %q", text)
	}
	d.value = n * multiplier
	return nil
}

func unitSeconds(suffix byte) (int64, bool) {
	for _, unit := range durationUnits {
		if unit.suffix == suffix {
			return unit.seconds, true
		}
	}
	return 0, false
}

// Seconds returns the payload.
func (d *Duration) Seconds() int64 { return d.value }

// Microseconds returns the payload scaled to microseconds.
func (d *Duration) Microseconds() int64 { return d.value * Microseconds }

// String returns the canonical text form: the count in the largest
// unit that divides the payload evenly, so 3600 formats as "1h", not
// "60m" or "3600s".
func (d *Duration) String() string {
	for _, unit := range durationUnits {
		if d.value%unit.seconds == 0 {
			return fmt.Sprintf("%d%c", d.value/unit.seconds, unit.suffix)
		}
	}
	// Unreachable: the seconds unit divides everything.
	return fmt.Sprintf("%ds", d.value)
}

// Expiry returns base advanced by this duration, as an instant built
// from whole seconds. A nil base means now.
func (d *Duration) Expiry(base *Datetime) *Datetime {
	if base == nil {
		base = DatetimeNow()
	}
	return DatetimeFromSecondsSinceEpoch(base.AsSecondsSinceEpoch() + d.value)
}

// Add returns a new Duration extended by seconds.
func (d *Duration) Add(seconds int64) *Duration { return NewDuration(d.value + seconds) }

// AddDuration returns the sum of two Durations.
func (d *Duration) AddDuration(other *Duration) *Duration {
	return NewDuration(d.value + other.value)
}

// Sub returns a new Duration shortened by seconds.
func (d *Duration) Sub(seconds int64) *Duration { return NewDuration(d.value - seconds) }

// Scale returns the duration multiplied by factor, truncated to whole
// seconds.
func (d *Duration) Scale(factor float64) *Duration {
	return NewDuration(int64(float64(d.value) * factor))
}

// Abs returns the non-negative magnitude.
func (d *Duration) Abs() *Duration {
	if d.value < 0 {
		return NewDuration(-d.value)
	}
	return NewDuration(d.value)
}

// Copy returns an independent instance with identical payload and age.
func (d *Duration) Copy() *Duration {
	out := NewDuration(0)
	_ = out.ParseFromWire(d.SerializeToWire())
	out.SetRawAge(d.ageMicros)
	return out
}

// Equal reports payload equality with another Duration.
func (d *Duration) Equal(other *Duration) bool {
	return other != nil && d.value == other.value
}

// EqualInt reports payload equality with a raw second count.
func (d *Duration) EqualInt(seconds int64) bool { return d.value == seconds }

// Compare orders two Durations by length.
func (d *Duration) Compare(other *Duration) int {
	switch {
	case d.value < other.value:
		return -1
	case d.value > other.value:
		return 1
	default:
		return 0
	}
}

var _ HumanReadable = (*Duration)(nil)
