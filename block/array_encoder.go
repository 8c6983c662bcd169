package block

import (
	"github.com/graphlite/temporal/compress"
	"github.com/graphlite/temporal/endian"
	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
	"github.com/graphlite/temporal/internal/options"
	"github.com/graphlite/temporal/internal/packer"
	"github.com/graphlite/temporal/internal/pool"
	"github.com/graphlite/temporal/section"
	"github.com/graphlite/temporal/value"
)

// Codec encodes homogeneous arrays of one temporal kind into tagged byte
// buffers and back. The kind-specific payload arrangement is decided here;
// the final byte framing is delegated to the word packer.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	cfg packer.Config
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// WithLittleEndian sets little-endian byte order for packed payloads.
func WithLittleEndian() CodecOption {
	return options.NoError(func(c *Codec) {
		c.cfg.Engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian sets big-endian byte order for packed payloads.
func WithBigEndian() CodecOption {
	return options.NoError(func(c *Codec) {
		c.cfg.Engine = endian.GetBigEndianEngine()
	})
}

// WithCompression selects the compression applied to packed payloads.
func WithCompression(compression format.CompressionType) CodecOption {
	return options.New(func(c *Codec) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		c.cfg.Compression = compression

		return nil
	})
}

// WithChecksum enables or disables the integrity checksum trailer on packed
// payloads.
func WithChecksum(enabled bool) CodecOption {
	return options.NoError(func(c *Codec) {
		c.cfg.Checksum = enabled
	})
}

// NewCodec creates an array codec. Defaults: little-endian, no compression,
// no checksum.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := &Codec{cfg: packer.DefaultConfig()}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// EncodeDateArray encodes dates as one epoch-day word per element.
func (c *Codec) EncodeDateArray(dates []value.Date) ([]byte, error) {
	words, cleanup := pool.GetUint64Slice(len(dates))
	defer cleanup()

	for i, d := range dates {
		words[i] = uint64(d.EpochDay)
	}

	return c.finish(format.KindDate, words)
}

// EncodeLocalTimeArray encodes local times as one nanosecond-of-day word per
// element.
func (c *Codec) EncodeLocalTimeArray(times []value.LocalTime) ([]byte, error) {
	words, cleanup := pool.GetUint64Slice(len(times))
	defer cleanup()

	for i, t := range times {
		words[i] = uint64(t.NanoOfDay)
	}

	return c.finish(format.KindLocalTime, words)
}

// EncodeLocalDateTimeArray encodes local date-times as contiguous
// epoch-second, nanosecond-of-second word pairs.
func (c *Codec) EncodeLocalDateTimeArray(times []value.LocalDateTime) ([]byte, error) {
	words, cleanup := pool.GetUint64Slice(len(times) * 2)
	defer cleanup()

	for i, t := range times {
		words[i*2] = uint64(t.EpochSecond)
		words[i*2+1] = uint64(uint32(t.Nano))
	}

	return c.finish(format.KindLocalDateTime, words)
}

// EncodeOffsetTimeArray encodes offset times into two regions for
// cache-friendly scanning: first one nanosecond-of-day word per element, then
// the minute offsets packed four 16-bit fields per word.
func (c *Codec) EncodeOffsetTimeArray(times []value.OffsetTime) ([]byte, error) {
	n := len(times)
	words, cleanup := pool.GetUint64Slice(n + (n+3)/4)
	defer cleanup()

	for i, t := range times {
		words[i] = uint64(t.NanoOfDay)
	}
	for j, t := range times {
		shift := (j % 4) * 16
		words[n+j/4] |= uint64(uint16(t.OffsetMinutes)) << shift
	}

	return c.finish(format.KindOffsetTime, words)
}

// EncodeZonedDateTimeArray encodes zoned date-times as three words per
// element: epoch-second, nanosecond-of-second and a zone word whose lowest
// bit flags offset storage, with the minute offset in the bits above it.
//
// A clear lowest bit is reserved for named-zone storage; elements carrying a
// ZoneName fail with errs.ErrNamedZoneUnsupported.
func (c *Codec) EncodeZonedDateTimeArray(times []value.ZonedDateTime) ([]byte, error) {
	words, cleanup := pool.GetUint64Slice(len(times) * 3)
	defer cleanup()

	for i, t := range times {
		if t.ZoneName != "" {
			return nil, errs.ErrNamedZoneUnsupported
		}
		words[i*3] = uint64(t.EpochSecond)
		words[i*3+1] = uint64(uint32(t.Nano))
		words[i*3+2] = uint64(int64(t.OffsetMinutes)<<1 | 1)
	}

	return c.finish(format.KindZonedDateTime, words)
}

// EncodeDurationArray encodes durations as four words per element: months,
// days, seconds, nanoseconds.
func (c *Codec) EncodeDurationArray(durations []value.Duration) ([]byte, error) {
	words, cleanup := pool.GetUint64Slice(len(durations) * 4)
	defer cleanup()

	for i, d := range durations {
		words[i*4] = uint64(d.Months)
		words[i*4+1] = uint64(d.Days)
		words[i*4+2] = uint64(d.Seconds)
		words[i*4+3] = uint64(uint32(d.Nanos))
	}

	return c.finish(format.KindDuration, words)
}

// finish packs the arranged words and prefixes the temporal header.
func (c *Codec) finish(kind format.Kind, words []uint64) ([]byte, error) {
	packed, err := packer.PackWords(words, c.cfg)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, section.TemporalHeaderSize+len(packed))
	section.NewTemporalHeader(kind).WriteTo(buf)
	copy(buf[section.TemporalHeaderSize:], packed)

	return buf, nil
}
