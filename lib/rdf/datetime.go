// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Microseconds is the number of microseconds in one second — the
// conversion factor between Datetime's unit and Duration's.
const Microseconds = 1_000_000

// Datetime is an instant stored as microseconds since the Unix epoch.
//
// Arithmetic units are deliberately asymmetric: AddSeconds and
// SubSeconds treat their operand as seconds and rescale it to
// microseconds, Sub of two instants yields a whole-second Duration,
// but Scale multiplies the raw microsecond payload. This mirrors how
// calling code mixes second-denominated deadlines with raw timestamp
// math; do not "fix" it.
type Datetime struct {
	base
	value int64
}

func init() {
	Register(&Descriptor{Name: "datetime", Store: StoreUnsignedInteger, New: func() Value { return NewDatetime(0) }})
	Register(&Descriptor{Name: "datetime_seconds", Store: StoreUnsignedInteger, New: func() Value { return NewDatetimeSeconds(0) }})
}

// NewDatetime returns an instant holding micros microseconds since
// epoch.
func NewDatetime(micros int64) *Datetime {
	d := &Datetime{value: micros}
	d.stampAge()
	return d
}

// DatetimeNow returns the current instant from the package clock.
func DatetimeNow() *Datetime {
	return NewDatetime(nowMicros())
}

// DatetimeFromSecondsSinceEpoch builds an instant from whole seconds.
func DatetimeFromSecondsSinceEpoch(seconds int64) *Datetime {
	return NewDatetime(seconds * Microseconds)
}

// DatetimeFromTime converts a time.Time, truncating to microseconds.
func DatetimeFromTime(t time.Time) *Datetime {
	return NewDatetime(t.Unix()*Microseconds + int64(t.Nanosecond())/1000)
}

// DatetimeFromHumanReadable parses operator-facing timestamp text.
// When endOfYear is set, unspecified calendar fields default to
// December 31st 23:59 UTC of the current year instead of January 1st
// midnight — callers expressing "some time in year Y" choose the
// earliest or latest instant.
func DatetimeFromHumanReadable(text string, endOfYear bool) (*Datetime, error) {
	d := NewDatetime(0)
	value, err := parseHumanInstant(text, endOfYear, Microseconds)
	if err != nil {
		return nil, err
	}
	d.value = value
	return d, nil
}

// Kind implements Value.
func (d *Datetime) Kind() string { return "datetime" }

// Store implements Value.
func (d *Datetime) Store() StoreType { return StoreUnsignedInteger }

// ParseFromWire decodes the decimal microsecond count.
func (d *Datetime) ParseFromWire(data []byte) error {
	if len(data) == 0 {
		d.value = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return decodeErrorf("datetime payload %q: %v", data, err)
	}
	d.value = n
	return nil
}

// SerializeToWire implements Value.
func (d *Datetime) SerializeToWire() []byte {
	return []byte(strconv.FormatInt(d.value, 10))
}

// ParseFromStore implements Value.
func (d *Datetime) ParseFromStore(scalar any) error {
	n, err := intScalar(scalar, d.Kind())
	if err != nil {
		return err
	}
	d.value = n
	return nil
}

// SerializeToStore returns the native int64 scalar, so the store
// sorts instants chronologically.
func (d *Datetime) SerializeToStore() any { return d.value }

// ParseFromHumanReadable parses with start-of-year defaults. Use
// DatetimeFromHumanReadable for end-of-year defaults.
func (d *Datetime) ParseFromHumanReadable(text string) error {
	value, err := parseHumanInstant(text, false, Microseconds)
	if err != nil {
		return err
	}
	d.value = value
	return nil
}

// AsSecondsSinceEpoch returns the instant in whole seconds.
func (d *Datetime) AsSecondsSinceEpoch() int64 { return d.value / Microseconds }

// AsMicrosecondsSinceEpoch returns the raw payload.
func (d *Datetime) AsMicrosecondsSinceEpoch() int64 { return d.value }

// AsTime returns the instant as a UTC time.Time.
func (d *Datetime) AsTime() time.Time {
	return time.Unix(d.value/Microseconds, (d.value%Microseconds)*1000).UTC()
}

// Format renders the instant in UTC per strftime semantics.
func (d *Datetime) Format(format string) string {
	return strftime.Format(format, d.AsTime())
}

// String returns the instant in human-readable UTC form.
func (d *Datetime) String() string {
	return d.Format("%Y-%m-%d %H:%M:%S")
}

// AddSeconds returns the instant moved forward by seconds. The
// operand is in seconds, rescaled to this instant's microseconds.
func (d *Datetime) AddSeconds(seconds int64) *Datetime {
	return NewDatetime(d.value + seconds*Microseconds)
}

// AddDuration returns the instant moved forward by a Duration.
func (d *Datetime) AddDuration(duration *Duration) *Datetime {
	return d.AddSeconds(duration.Seconds())
}

// SubSeconds returns the instant moved backward by seconds.
func (d *Datetime) SubSeconds(seconds int64) *Datetime {
	return NewDatetime(d.value - seconds*Microseconds)
}

// SubDuration returns the instant moved backward by a Duration.
func (d *Datetime) SubDuration(duration *Duration) *Datetime {
	return d.SubSeconds(duration.Seconds())
}

// Sub returns the Duration between two instants: the difference of
// their whole-second counts, not sub-second-precise.
func (d *Datetime) Sub(other *Datetime) *Duration {
	return NewDuration(d.AsSecondsSinceEpoch() - other.AsSecondsSinceEpoch())
}

// Scale multiplies the raw microsecond payload by factor, truncating.
// Unlike AddSeconds, the operand is not second-denominated.
func (d *Datetime) Scale(factor float64) *Datetime {
	return NewDatetime(int64(float64(d.value) * factor))
}

// Floor rounds the instant down to the nearest multiple of the
// interval's seconds, expressed via seconds since epoch.
func (d *Datetime) Floor(interval *Duration) *Datetime {
	seconds := d.AsSecondsSinceEpoch() / interval.Seconds() * interval.Seconds()
	return DatetimeFromSecondsSinceEpoch(seconds)
}

// Copy returns an independent instance with identical payload and age.
func (d *Datetime) Copy() *Datetime {
	out := NewDatetime(0)
	_ = out.ParseFromWire(d.SerializeToWire())
	out.SetRawAge(d.ageMicros)
	return out
}

// Equal reports payload equality with another Datetime.
func (d *Datetime) Equal(other *Datetime) bool {
	return other != nil && d.value == other.value
}

// EqualInt reports payload equality with a raw microsecond count.
func (d *Datetime) EqualInt(micros int64) bool { return d.value == micros }

// Compare orders two instants chronologically.
func (d *Datetime) Compare(other *Datetime) int {
	switch {
	case d.value < other.value:
		return -1
	case d.value > other.value:
		return 1
	default:
		return 0
	}
}

// LerpDatetime interpolates linearly between two instants on their
// raw payloads: round((1-t)*start + t*end). The progress t must lie
// in [0, 1].
func LerpDatetime(t float64, start, end *Datetime) (*Datetime, error) {
	if t < 0.0 || t > 1.0 {
		return nil, valueErrorf("interpolation progress %v does not belong to [0.0, 1.0]", t)
	}
	interpolated := math.Round((1-t)*float64(start.value) + t*float64(end.value))
	return NewDatetime(int64(interpolated)), nil
}

// DatetimeSeconds is an instant stored in whole seconds since the
// Unix epoch. Semantics match Datetime with a converter of one; used
// where microsecond resolution is storage waste (poll intervals,
// expiry stamps).
type DatetimeSeconds struct {
	base
	value int64
}

// NewDatetimeSeconds returns an instant holding seconds since epoch.
func NewDatetimeSeconds(seconds int64) *DatetimeSeconds {
	d := &DatetimeSeconds{value: seconds}
	d.stampAge()
	return d
}

// DatetimeSecondsNow returns the current instant from the package
// clock, truncated to seconds.
func DatetimeSecondsNow() *DatetimeSeconds {
	return NewDatetimeSeconds(nowMicros() / Microseconds)
}

// DatetimeSecondsFromHumanReadable parses timestamp text with the
// same defaults as DatetimeFromHumanReadable.
func DatetimeSecondsFromHumanReadable(text string, endOfYear bool) (*DatetimeSeconds, error) {
	d := NewDatetimeSeconds(0)
	value, err := parseHumanInstant(text, endOfYear, 1)
	if err != nil {
		return nil, err
	}
	d.value = value
	return d, nil
}

// Kind implements Value.
func (d *DatetimeSeconds) Kind() string { return "datetime_seconds" }

// Store implements Value.
func (d *DatetimeSeconds) Store() StoreType { return StoreUnsignedInteger }

// ParseFromWire decodes the decimal second count.
func (d *DatetimeSeconds) ParseFromWire(data []byte) error {
	if len(data) == 0 {
		d.value = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return decodeErrorf("datetime payload %q: %v", data, err)
	}
	d.value = n
	return nil
}

// SerializeToWire implements Value.
func (d *DatetimeSeconds) SerializeToWire() []byte {
	return []byte(strconv.FormatInt(d.value, 10))
}

// ParseFromStore implements Value.
func (d *DatetimeSeconds) ParseFromStore(scalar any) error {
	n, err := intScalar(scalar, d.Kind())
	if err != nil {
		return err
	}
	d.value = n
	return nil
}

// SerializeToStore returns the native int64 scalar.
func (d *DatetimeSeconds) SerializeToStore() any { return d.value }

// ParseFromHumanReadable parses with start-of-year defaults.
func (d *DatetimeSeconds) ParseFromHumanReadable(text string) error {
	value, err := parseHumanInstant(text, false, 1)
	if err != nil {
		return err
	}
	d.value = value
	return nil
}

// AsSecondsSinceEpoch returns the raw payload.
func (d *DatetimeSeconds) AsSecondsSinceEpoch() int64 { return d.value }

// AsMicrosecondsSinceEpoch returns the instant in microseconds.
func (d *DatetimeSeconds) AsMicrosecondsSinceEpoch() int64 { return d.value * Microseconds }

// AsTime returns the instant as a UTC time.Time.
func (d *DatetimeSeconds) AsTime() time.Time {
	return time.Unix(d.value, 0).UTC()
}

// Format renders the instant in UTC per strftime semantics.
func (d *DatetimeSeconds) Format(format string) string {
	return strftime.Format(format, d.AsTime())
}

// String returns the instant in human-readable UTC form.
func (d *DatetimeSeconds) String() string {
	return d.Format("%Y-%m-%d %H:%M:%S")
}

// AddSeconds returns the instant moved forward by seconds.
func (d *DatetimeSeconds) AddSeconds(seconds int64) *DatetimeSeconds {
	return NewDatetimeSeconds(d.value + seconds)
}

// AddDuration returns the instant moved forward by a Duration.
func (d *DatetimeSeconds) AddDuration(duration *Duration) *DatetimeSeconds {
	return d.AddSeconds(duration.Seconds())
}

// SubSeconds returns the instant moved backward by seconds.
func (d *DatetimeSeconds) SubSeconds(seconds int64) *DatetimeSeconds {
	return NewDatetimeSeconds(d.value - seconds)
}

// SubDuration returns the instant moved backward by a Duration.
func (d *DatetimeSeconds) SubDuration(duration *Duration) *DatetimeSeconds {
	return d.SubSeconds(duration.Seconds())
}

// Sub returns the Duration between two instants.
func (d *DatetimeSeconds) Sub(other *DatetimeSeconds) *Duration {
	return NewDuration(d.value - other.value)
}

// Scale multiplies the raw second payload by factor, truncating.
func (d *DatetimeSeconds) Scale(factor float64) *DatetimeSeconds {
	return NewDatetimeSeconds(int64(float64(d.value) * factor))
}

// Floor rounds the instant down to the nearest multiple of the
// interval's seconds.
func (d *DatetimeSeconds) Floor(interval *Duration) *DatetimeSeconds {
	return NewDatetimeSeconds(d.value / interval.Seconds() * interval.Seconds())
}

// Copy returns an independent instance with identical payload and age.
func (d *DatetimeSeconds) Copy() *DatetimeSeconds {
	out := NewDatetimeSeconds(0)
	_ = out.ParseFromWire(d.SerializeToWire())
	out.SetRawAge(d.ageMicros)
	return out
}

// Equal reports payload equality with another DatetimeSeconds.
func (d *DatetimeSeconds) Equal(other *DatetimeSeconds) bool {
	return other != nil && d.value == other.value
}

// EqualInt reports payload equality with a raw second count.
func (d *DatetimeSeconds) EqualInt(seconds int64) bool { return d.value == seconds }

// Compare orders two instants chronologically.
func (d *DatetimeSeconds) Compare(other *DatetimeSeconds) int {
	switch {
	case d.value < other.value:
		return -1
	case d.value > other.value:
		return 1
	default:
		return 0
	}
}

// calendarLayouts are the accepted calendar/time shapes, tried in
// order. The flags record which fields the layout carries; absent
// fields come from the start-of-year or end-of-year default.
var calendarLayouts = []struct {
	layout     string
	hasYear    bool
	hasMonth   bool
	hasDay     bool
	hasClock   bool
	hasSeconds bool
	hasZone    bool
}{
	{layout: time.RFC3339, hasYear: true, hasMonth: true, hasDay: true, hasClock: true, hasSeconds: true, hasZone: true},
	{layout: "2006-01-02T15:04:05", hasYear: true, hasMonth: true, hasDay: true, hasClock: true, hasSeconds: true},
	{layout: "2006-01-02 15:04:05", hasYear: true, hasMonth: true, hasDay: true, hasClock: true, hasSeconds: true},
	{layout: "2006-01-02T15:04", hasYear: true, hasMonth: true, hasDay: true, hasClock: true},
	{layout: "2006-01-02 15:04", hasYear: true, hasMonth: true, hasDay: true, hasClock: true},
	{layout: "2006/01/02 15:04:05", hasYear: true, hasMonth: true, hasDay: true, hasClock: true, hasSeconds: true},
	{layout: "2006-01-02", hasYear: true, hasMonth: true, hasDay: true},
	{layout: "2006/01/02", hasYear: true, hasMonth: true, hasDay: true},
	{layout: "2006-01", hasYear: true, hasMonth: true},
	{layout: "2006", hasYear: true},
	{layout: "15:04:05", hasClock: true, hasSeconds: true},
	{layout: "15:04", hasClock: true},
}

// parseHumanInstant parses timestamp text into the kind's own unit
// (converter units per second). A plain integer is a raw timestamp in
// that unit; anything else is calendar text whose unspecified fields
// default to January 1st 00:00 UTC of the current year, or December
// 31st 23:59 UTC when endOfYear is set. Calendar results are whole
// seconds scaled by converter.
func parseHumanInstant(text string, endOfYear bool, converter int64) (int64, error) {
	trimmed := strings.TrimSpace(text)

	if raw, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return raw, nil
	}

	currentYear := packageClock().Now().UTC().Year()
	var defaults time.Time
	if endOfYear {
		defaults = time.Date(currentYear, time.December, 31, 23, 59, 0, 0, time.UTC)
	} else {
		defaults = time.Date(currentYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	for _, candidate := range calendarLayouts {
		parsed, err := time.Parse(candidate.layout, trimmed)
		if err != nil {
			continue
		}
		if candidate.hasZone {
			return parsed.UTC().Unix() * converter, nil
		}

		year, month, day := defaults.Date()
		hour, minute, second := defaults.Clock()
		if candidate.hasYear {
			year = parsed.Year()
		}
		if candidate.hasMonth {
			month = parsed.Month()
		}
		if candidate.hasDay {
			day = parsed.Day()
		}
		if candidate.hasClock {
			hour, minute = parsed.Hour(), parsed.Minute()
			second = 0
		}
		if candidate.hasSeconds {
			second = parsed.Second()
		}
		merged := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
		return merged.Unix() * converter, nil
	}

	return 0, decodeErrorf("unrecognized timestamp %q", text)
}

var _ HumanReadable = (*Datetime)(nil)
var _ HumanReadable = (*DatetimeSeconds)(nil)
