package block

import (
	"math/bits"

	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
	"github.com/graphlite/temporal/value"
)

// Encode encodes one logical temporal value, together with the caller's
// property key id, into a sequence of 1-4 words.
func (l Layout) Encode(keyID uint32, v value.Value) ([]uint64, error) {
	switch tv := v.(type) {
	case value.Date:
		return l.EncodeDate(keyID, tv)
	case value.LocalTime:
		return l.EncodeLocalTime(keyID, tv)
	case value.LocalDateTime:
		return l.EncodeLocalDateTime(keyID, tv)
	case value.OffsetTime:
		return l.EncodeOffsetTime(keyID, tv)
	case value.ZonedDateTime:
		return l.EncodeZonedDateTime(keyID, tv)
	case value.Duration:
		return l.EncodeDuration(keyID, tv)
	default:
		return nil, errs.ErrInvalidKind
	}
}

// EncodeDate encodes a date as its epoch-day count, inlined into the first
// word when the magnitude fits.
func (l Layout) EncodeDate(keyID uint32, v value.Date) ([]uint64, error) {
	return l.encodeInlinable(keyID, v.EpochDay, format.KindDate)
}

// EncodeLocalTime encodes a local time as its nanosecond-of-day count,
// inlined into the first word when the magnitude fits.
func (l Layout) EncodeLocalTime(keyID uint32, v value.LocalTime) ([]uint64, error) {
	return l.encodeInlinable(keyID, v.NanoOfDay, format.KindLocalTime)
}

// encodeInlinable packs a single integer magnitude. Magnitudes needing at
// most 31 bits land in word 0 above the inline flag; anything wider, and any
// negative magnitude, spills into a full second word with the flag clear.
func (l Layout) encodeInlinable(keyID uint32, val int64, kind format.Kind) ([]uint64, error) {
	keyAndType, err := l.keyAndType(keyID)
	if err != nil {
		return nil, err
	}
	word0 := keyAndType | l.kindBits(kind)

	if requiredBits(val) <= inlineMaxBits {
		return []uint64{word0 | 1<<inlineFlagBit | uint64(val)<<(inlineFlagBit+1)}, nil
	}

	return []uint64{word0, uint64(val)}, nil
}

// requiredBits reports how many bits the magnitude occupies. Negative values
// need the full word, which forces the spill branch.
func requiredBits(val int64) int {
	if val < 0 {
		return 64
	}
	if val == 0 {
		return 1
	}

	return bits.Len64(uint64(val))
}

// EncodeLocalDateTime encodes a local date-time into two words: the
// nanosecond-of-second in bits [32,64) of word 0 and the epoch-second in
// word 1. The nanosecond never needs more than 30 bits, so no inline flag is
// involved.
func (l Layout) EncodeLocalDateTime(keyID uint32, v value.LocalDateTime) ([]uint64, error) {
	keyAndType, err := l.keyAndType(keyID)
	if err != nil {
		return nil, err
	}

	return []uint64{
		keyAndType | l.kindBits(format.KindLocalDateTime) | uint64(uint32(v.Nano))<<32,
		uint64(v.EpochSecond),
	}, nil
}

// EncodeOffsetTime encodes an offset time into two words: the minute offset
// in bits [32,64) of word 0 and the nanosecond-of-day in word 1. Offsets are
// always within ±18:00, so the minute offset never needs more than 12 bits.
func (l Layout) EncodeOffsetTime(keyID uint32, v value.OffsetTime) ([]uint64, error) {
	keyAndType, err := l.keyAndType(keyID)
	if err != nil {
		return nil, err
	}

	return []uint64{
		keyAndType | l.kindBits(format.KindOffsetTime) | uint64(uint32(int32(v.OffsetMinutes)))<<32,
		uint64(v.NanoOfDay),
	}, nil
}

// EncodeZonedDateTime encodes an offset-based zoned date-time into three
// words: word 0 carries the offset flag at bit 32 and the nanosecond-of-second
// in bits [33,64), word 1 the epoch-second and word 2 the minute offset.
//
// Values carrying a named time zone cannot be stored yet and fail with
// errs.ErrNamedZoneUnsupported.
func (l Layout) EncodeZonedDateTime(keyID uint32, v value.ZonedDateTime) ([]uint64, error) {
	if v.ZoneName != "" {
		return nil, errs.ErrNamedZoneUnsupported
	}

	keyAndType, err := l.keyAndType(keyID)
	if err != nil {
		return nil, err
	}

	return []uint64{
		keyAndType | l.kindBits(format.KindZonedDateTime) | 1<<inlineFlagBit | uint64(uint32(v.Nano))<<33,
		uint64(v.EpochSecond),
		uint64(int64(v.OffsetMinutes)),
	}, nil
}

// EncodeDuration encodes a duration into four words: nanoseconds in bits
// [32,64) of word 0, then months, days and seconds in full words.
func (l Layout) EncodeDuration(keyID uint32, v value.Duration) ([]uint64, error) {
	keyAndType, err := l.keyAndType(keyID)
	if err != nil {
		return nil, err
	}

	return []uint64{
		keyAndType | l.kindBits(format.KindDuration) | uint64(uint32(v.Nanos))<<32,
		uint64(v.Months),
		uint64(v.Days),
		uint64(v.Seconds),
	}, nil
}
