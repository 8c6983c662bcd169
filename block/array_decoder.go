package block

import (
	"fmt"

	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
	"github.com/graphlite/temporal/internal/packer"
	"github.com/graphlite/temporal/section"
	"github.com/graphlite/temporal/value"
)

// DecodeArray decodes a tagged array buffer, as produced by the encode
// methods, back into its elements. The temporal header is read off the front;
// the remainder is handed to the word packer.
func (c *Codec) DecodeArray(data []byte) ([]value.Value, error) {
	header, err := section.ParseTemporalHeader(data)
	if err != nil {
		return nil, err
	}

	return c.DecodeArrayPayload(header, data[section.TemporalHeaderSize:])
}

// DecodeArrayPayload decodes a packed payload whose temporal header has
// already been stripped by the host store.
//
// The packer payload must be an array of 64-bit words; any other shape is
// reported as a format-integrity error, distinct from the unsupported-feature
// errors.
func (c *Codec) DecodeArrayPayload(header section.TemporalHeader, data []byte) ([]value.Value, error) {
	payload, err := packer.Unpack(data)
	if err != nil {
		return nil, err
	}
	if payload.Type != format.PayloadWords {
		return nil, fmt.Errorf("%w: got %s, expected %s",
			errs.ErrPayloadTypeMismatch, payload.Type, format.PayloadWords)
	}

	words := payload.Words

	switch header.Kind {
	case format.KindDate:
		return decodeDateArray(words), nil
	case format.KindLocalTime:
		return decodeLocalTimeArray(words), nil
	case format.KindLocalDateTime:
		return decodeLocalDateTimeArray(words), nil
	case format.KindOffsetTime:
		return decodeOffsetTimeArray(words), nil
	case format.KindZonedDateTime:
		return decodeZonedDateTimeArray(words)
	case format.KindDuration:
		return decodeDurationArray(words), nil
	default:
		return nil, fmt.Errorf("%w: array", errs.ErrInvalidKind)
	}
}

func decodeDateArray(words []uint64) []value.Value {
	values := make([]value.Value, len(words))
	for i, w := range words {
		values[i] = value.Date{EpochDay: int64(w)}
	}

	return values
}

func decodeLocalTimeArray(words []uint64) []value.Value {
	values := make([]value.Value, len(words))
	for i, w := range words {
		values[i] = value.LocalTime{NanoOfDay: int64(w)}
	}

	return values
}

func decodeLocalDateTimeArray(words []uint64) []value.Value {
	values := make([]value.Value, len(words)/2)
	for i := range values {
		values[i] = value.LocalDateTime{
			EpochSecond: int64(words[i*2]),
			Nano:        int32(uint32(words[i*2+1])),
		}
	}

	return values
}

// decodeOffsetTimeArray reverses the split payload: with N elements the first
// N words hold nanosecond-of-day counts and the remaining ceil(N/4) words
// pack four 16-bit minute offsets each, so N = len(words)*4/5.
func decodeOffsetTimeArray(words []uint64) []value.Value {
	n := len(words) * 4 / 5
	values := make([]value.Value, n)
	for i := range values {
		shift := (i % 4) * 16
		values[i] = value.OffsetTime{
			NanoOfDay:     int64(words[i]),
			OffsetMinutes: int16(uint16(words[n+i/4] >> shift)),
		}
	}

	return values
}

func decodeZonedDateTimeArray(words []uint64) ([]value.Value, error) {
	values := make([]value.Value, len(words)/3)
	for i := range values {
		zone := words[i*3+2]
		if zone&1 == 0 {
			return nil, errs.ErrNamedZoneUnsupported
		}
		values[i] = value.ZonedDateTime{
			EpochSecond:   int64(words[i*3]),
			Nano:          int32(uint32(words[i*3+1])),
			OffsetMinutes: int16(uint16(zone >> 1)),
		}
	}

	return values, nil
}

// decodeDurationArray uses a stride of four words per element, matching the
// encode stride exactly.
func decodeDurationArray(words []uint64) []value.Value {
	values := make([]value.Value, len(words)/4)
	for i := range values {
		values[i] = value.Duration{
			Months:  int64(words[i*4]),
			Days:    int64(words[i*4+1]),
			Seconds: int64(words[i*4+2]),
			Nanos:   int32(uint32(words[i*4+3])),
		}
	}

	return values
}
