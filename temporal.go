// Package temporal implements the temporal-value binary codec of the
// graphlite property store.
//
// The codec converts logical temporal values (date, time, date-time, their
// local and offset variants, and durations) to and from compact fixed-width
// word sequences used for scalar property storage, and to and from packed
// byte buffers used for array-typed properties.
//
// # Scalar blocks
//
// A scalar value occupies 1-4 words. The low bits of the first word belong to
// the host store (property key id and store type tag); the codec writes the
// kind tag and payload above them. Date and LocalTime inline magnitudes of up
// to 31 bits into the first word and spill wider ones into a second:
//
//	words, _ := temporal.EncodeDate(5, 19000)   // 1 word, inlined
//	v, _ := temporal.Decode(words)              // value.Date{EpochDay: 19000}
//	n := temporal.BlockCount(words[0])          // 1, from the first word alone
//
// # Array buffers
//
// Arrays of one kind are arranged into a kind-specific word payload, framed
// by the word packer and prefixed with a two-byte temporal header:
//
//	buf, _ := temporal.EncodeDateArray([]value.Date{{EpochDay: 19000}})
//	vals, _ := temporal.DecodeArray(buf)
//
// # Package structure
//
// This package provides convenience wrappers with the default store layout
// (24-bit key ids) and default array codec. For custom layouts, compression
// or checksums, use the block package directly.
//
// All operations are pure functions over their inputs and safe for
// unsynchronized concurrent use.
package temporal

import (
	"github.com/graphlite/temporal/block"
	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
	"github.com/graphlite/temporal/value"
)

var (
	defaultLayout   = block.DefaultLayout()
	defaultCodec, _ = block.NewCodec()
)

// EncodeDate encodes a date given as a day count since the Unix epoch.
func EncodeDate(keyID uint32, epochDay int64) ([]uint64, error) {
	return defaultLayout.EncodeDate(keyID, value.Date{EpochDay: epochDay})
}

// EncodeLocalTime encodes a time of day given as nanoseconds since midnight.
func EncodeLocalTime(keyID uint32, nanoOfDay int64) ([]uint64, error) {
	return defaultLayout.EncodeLocalTime(keyID, value.LocalTime{NanoOfDay: nanoOfDay})
}

// EncodeLocalDateTime encodes a zoneless date-time given as an epoch-second
// plus nanosecond-of-second adjustment.
func EncodeLocalDateTime(keyID uint32, epochSecond int64, nano int32) ([]uint64, error) {
	return defaultLayout.EncodeLocalDateTime(keyID, value.LocalDateTime{
		EpochSecond: epochSecond,
		Nano:        nano,
	})
}

// EncodeOffsetTime encodes a time of day with a fixed UTC offset given in
// seconds. The offset is stored with minute precision.
func EncodeOffsetTime(keyID uint32, nanoOfDay int64, offsetSeconds int32) ([]uint64, error) {
	return defaultLayout.EncodeOffsetTime(keyID, value.OffsetTime{
		NanoOfDay:     nanoOfDay,
		OffsetMinutes: int16(offsetSeconds / 60),
	})
}

// EncodeZonedDateTime encodes an instant with a fixed UTC offset given in
// seconds. The offset is stored with minute precision.
func EncodeZonedDateTime(keyID uint32, epochSecond int64, nano int32, offsetSeconds int32) ([]uint64, error) {
	return defaultLayout.EncodeZonedDateTime(keyID, value.ZonedDateTime{
		EpochSecond:   epochSecond,
		Nano:          nano,
		OffsetMinutes: int16(offsetSeconds / 60),
	})
}

// EncodeZonedDateTimeNamed would encode an instant in a named time zone.
// Named-zone storage is not supported yet; this always fails with
// errs.ErrNamedZoneUnsupported.
func EncodeZonedDateTimeNamed(keyID uint32, epochSecond int64, nano int32, zoneName string) ([]uint64, error) {
	return nil, errs.ErrNamedZoneUnsupported
}

// EncodeDuration encodes a calendar-aware duration.
func EncodeDuration(keyID uint32, months, days, seconds int64, nanos int32) ([]uint64, error) {
	return defaultLayout.EncodeDuration(keyID, value.Duration{
		Months:  months,
		Days:    days,
		Seconds: seconds,
		Nanos:   nanos,
	})
}

// Encode encodes any logical temporal value with the default layout.
func Encode(keyID uint32, v value.Value) ([]uint64, error) {
	return defaultLayout.Encode(keyID, v)
}

// Decode decodes a scalar word sequence with the default layout.
func Decode(words []uint64) (value.Value, error) {
	return defaultLayout.Decode(words)
}

// BlockCount reports, from the first word alone, how many words the full
// value occupies. An unreadable kind tag reports 0.
func BlockCount(word0 uint64) int {
	return defaultLayout.BlockCount(word0)
}

// KindOf extracts the temporal kind from the first word of a scalar block.
func KindOf(word0 uint64) format.Kind {
	return defaultLayout.KindOf(word0)
}

// EncodeDateArray encodes a date array into a tagged byte buffer.
func EncodeDateArray(dates []value.Date) ([]byte, error) {
	return defaultCodec.EncodeDateArray(dates)
}

// EncodeLocalTimeArray encodes a local-time array into a tagged byte buffer.
func EncodeLocalTimeArray(times []value.LocalTime) ([]byte, error) {
	return defaultCodec.EncodeLocalTimeArray(times)
}

// EncodeLocalDateTimeArray encodes a local date-time array into a tagged byte
// buffer.
func EncodeLocalDateTimeArray(times []value.LocalDateTime) ([]byte, error) {
	return defaultCodec.EncodeLocalDateTimeArray(times)
}

// EncodeOffsetTimeArray encodes an offset-time array into a tagged byte
// buffer.
func EncodeOffsetTimeArray(times []value.OffsetTime) ([]byte, error) {
	return defaultCodec.EncodeOffsetTimeArray(times)
}

// EncodeZonedDateTimeArray encodes a zoned date-time array into a tagged byte
// buffer. Elements carrying a named zone fail with
// errs.ErrNamedZoneUnsupported.
func EncodeZonedDateTimeArray(times []value.ZonedDateTime) ([]byte, error) {
	return defaultCodec.EncodeZonedDateTimeArray(times)
}

// EncodeDurationArray encodes a duration array into a tagged byte buffer.
func EncodeDurationArray(durations []value.Duration) ([]byte, error) {
	return defaultCodec.EncodeDurationArray(durations)
}

// DecodeArray decodes a tagged array buffer back into its elements.
func DecodeArray(data []byte) ([]value.Value, error) {
	return defaultCodec.DecodeArray(data)
}
