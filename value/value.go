// Package value defines the logical temporal values moved in and out of wire
// representation by the codec.
//
// Each type carries the numeric components the store persists (epoch days,
// nanosecond counts, minute offsets) rather than a time.Time, so encode and
// decode are exact integer transforms. Conversions to and from time.Time are
// provided for callers at the edges; calendar arithmetic is out of scope.
package value

import (
	"github.com/graphlite/temporal/format"
)

// Value is the closed set of logical temporal values understood by the codec.
type Value interface {
	// Kind reports which temporal variant this value is.
	Kind() format.Kind
}

// Date is a calendar date stored as a day count since the Unix epoch.
type Date struct {
	EpochDay int64
}

// LocalTime is a time of day without zone, stored as nanoseconds since
// midnight.
type LocalTime struct {
	NanoOfDay int64
}

// LocalDateTime is a date and time without zone, stored as seconds since the
// Unix epoch (interpreted in UTC) plus a nanosecond-of-second adjustment.
type LocalDateTime struct {
	EpochSecond int64
	Nano        int32
}

// OffsetTime is a time of day with a fixed UTC offset in minutes.
//
// Offsets are always within ±18:00, so OffsetMinutes is at most ±1080 and
// fits the 16-bit field the array format packs it into.
type OffsetTime struct {
	NanoOfDay     int64
	OffsetMinutes int16
}

// ZonedDateTime is an instant with a fixed UTC offset in minutes.
//
// A non-empty ZoneName marks a named time zone (for example
// "Europe/Stockholm"). The codec cannot store named zones yet; encoding such
// a value fails with errs.ErrNamedZoneUnsupported. Decoded values always have
// an empty ZoneName.
type ZonedDateTime struct {
	EpochSecond   int64
	Nano          int32
	OffsetMinutes int16
	ZoneName      string
}

// Duration is a calendar-aware amount of time. Months and days are kept
// separate from seconds because their length varies by calendar context.
type Duration struct {
	Months  int64
	Days    int64
	Seconds int64
	Nanos   int32
}

func (Date) Kind() format.Kind          { return format.KindDate }
func (LocalTime) Kind() format.Kind     { return format.KindLocalTime }
func (LocalDateTime) Kind() format.Kind { return format.KindLocalDateTime }
func (OffsetTime) Kind() format.Kind    { return format.KindOffsetTime }
func (ZonedDateTime) Kind() format.Kind { return format.KindZonedDateTime }
func (Duration) Kind() format.Kind      { return format.KindDuration }
