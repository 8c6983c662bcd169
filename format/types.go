package format

import (
	"fmt"
)

type (
	// Kind identifies which temporal variant a block or array buffer holds.
	// Kind tags are part of the persisted store format and must never be
	// renumbered.
	Kind uint8

	// CompressionType identifies the compression applied to a packed payload.
	CompressionType uint8

	// PayloadType identifies the shape of a packed payload.
	PayloadType uint8
)

const (
	KindInvalid       Kind = 0 // KindInvalid is the safe decode target for corrupt tags, never encoded.
	KindDate          Kind = 1 // KindDate stores an epoch-day count.
	KindLocalTime     Kind = 2 // KindLocalTime stores a nanosecond-of-day count.
	KindLocalDateTime Kind = 3 // KindLocalDateTime stores epoch-second plus nanosecond-of-second.
	KindOffsetTime    Kind = 4 // KindOffsetTime stores nanosecond-of-day plus a UTC minute offset.
	KindZonedDateTime Kind = 5 // KindZonedDateTime stores an instant plus a UTC minute offset. Named zones are unsupported.
	KindDuration      Kind = 6 // KindDuration stores months, days, seconds and nanoseconds.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	PayloadWords PayloadType = 0x1 // PayloadWords represents a flat array of 64-bit words.
	PayloadBytes PayloadType = 0x2 // PayloadBytes represents an opaque byte payload.
)

// KindCount is the number of declared kinds, including KindInvalid.
const KindCount = 7

// kindNames follows the display names of the property store; the offset and
// zoned variants are historically named "Time" and "DateTime".
var kindNames = [KindCount]string{
	"Invalid",
	"Date",
	"LocalTime",
	"LocalDateTime",
	"Time",
	"DateTime",
	"Duration",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, KindCount)
	for tag, name := range kindNames {
		m[name] = Kind(tag)
	}

	return m
}()

// KindOf returns the kind with the given tag, or KindInvalid when the tag is
// out of range. It never fails: record-chain traversal decodes corrupt blocks
// and one bad property must not abort its siblings.
func KindOf(tag int) Kind {
	if tag < 0 || tag >= KindCount {
		return KindInvalid
	}

	return Kind(tag)
}

// KindByName returns the kind with the given display name.
//
// Unlike KindOf this fails for unknown names; name lookup serves human-facing
// configuration, not hot-path decode.
func KindByName(name string) (Kind, error) {
	kind, ok := kindsByName[name]
	if !ok {
		return KindInvalid, fmt.Errorf("no known temporal kind: %q", name)
	}

	return kind, nil
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (p PayloadType) String() string {
	switch p {
	case PayloadWords:
		return "Words"
	case PayloadBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}
