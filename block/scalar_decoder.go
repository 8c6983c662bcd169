package block

import (
	"fmt"

	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
	"github.com/graphlite/temporal/value"
)

// BlockCount reports how many words the full value occupies, reading only the
// first word. The host store uses this to know how many words to read off
// disk before calling Decode, so it must not require any later word.
//
// An invalid kind tag reports 0, marking the block as unreadable without
// failing; the failure surfaces when the block is actually decoded.
func (l Layout) BlockCount(word0 uint64) int {
	switch l.KindOf(word0) {
	case format.KindDate, format.KindLocalTime:
		if valueInlined(word0) {
			return 1
		}

		return 2
	case format.KindLocalDateTime, format.KindOffsetTime:
		return 2
	case format.KindZonedDateTime:
		return 3
	case format.KindDuration:
		return 4
	default:
		return 0
	}
}

// Decode decodes a word sequence back into a logical value. The property key
// id in the metadata region is ignored.
//
// Decode fails only for the invalid kind, for zoned date-times stored without
// the offset flag (named-zone storage is unsupported) and for word slices
// shorter than the first word declares; it never panics on corrupt input.
func (l Layout) Decode(words []uint64) (value.Value, error) {
	if len(words) == 0 {
		return nil, errs.ErrNotEnoughBlocks
	}

	word0 := words[0]
	kind := l.KindOf(word0)
	if kind == format.KindInvalid {
		return nil, errs.ErrInvalidKind
	}

	if need := l.BlockCount(word0); len(words) < need {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", errs.ErrNotEnoughBlocks, kind, need, len(words))
	}

	switch kind {
	case format.KindDate:
		return value.Date{EpochDay: decodeInlinable(words)}, nil
	case format.KindLocalTime:
		return value.LocalTime{NanoOfDay: decodeInlinable(words)}, nil
	case format.KindLocalDateTime:
		return value.LocalDateTime{
			EpochSecond: int64(words[1]),
			Nano:        int32(uint32(word0 >> 32)),
		}, nil
	case format.KindOffsetTime:
		return value.OffsetTime{
			NanoOfDay:     int64(words[1]),
			OffsetMinutes: int16(uint16(word0 >> 32)),
		}, nil
	case format.KindZonedDateTime:
		if !storingZoneOffset(word0) {
			return nil, errs.ErrNamedZoneUnsupported
		}

		return value.ZonedDateTime{
			EpochSecond:   int64(words[1]),
			Nano:          int32(uint32(word0 >> 33)),
			OffsetMinutes: int16(int64(words[2])),
		}, nil
	default:
		return value.Duration{
			Months:  int64(words[1]),
			Days:    int64(words[2]),
			Seconds: int64(words[3]),
			Nanos:   int32(uint32(word0 >> 32)),
		}, nil
	}
}

// decodeInlinable reads the magnitude of an inlinable kind: bits [33,64) of
// word 0 when the inline flag is set, the full second word otherwise.
func decodeInlinable(words []uint64) int64 {
	if valueInlined(words[0]) {
		return int64(words[0] >> 33)
	}

	return int64(words[1])
}

func valueInlined(word0 uint64) bool {
	return word0&(1<<inlineFlagBit) != 0
}

// storingZoneOffset reports whether a zoned date-time block stores a fixed
// offset. A clear flag marks named-zone storage, which is reserved.
func storingZoneOffset(word0 uint64) bool {
	return word0&(1<<inlineFlagBit) != 0
}
