// Package packer converts flat arrays of 64-bit words to and from
// self-describing byte buffers.
//
// The buffer layout is:
//
//	[payloadType:1][flags:1][count:4][reserved:2][body:N][checksum:0|8]
//
// The flags byte records the byte order, whether a checksum trailer is
// present, and the compression applied to the body. The count field and the
// body use the flagged byte order; payload type and flags are single bytes
// and order-free. The optional trailer is the xxHash64 of the body as stored,
// after compression.
package packer

import (
	"fmt"

	"github.com/graphlite/temporal/compress"
	"github.com/graphlite/temporal/endian"
	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
	"github.com/graphlite/temporal/internal/hash"
	"github.com/graphlite/temporal/internal/pool"
)

const (
	// HeaderSize is the fixed size of the packer header in bytes.
	HeaderSize = 8

	checksumSize = 8

	flagBigEndian = 0x01
	flagChecksum  = 0x02

	compressionShift = 4
)

// Config controls how a payload is packed. The zero value is not valid; use
// DefaultConfig as a starting point.
type Config struct {
	// Engine is the byte order used for the count field and the body.
	Engine endian.EndianEngine
	// Compression is applied to the body after serialization.
	Compression format.CompressionType
	// Checksum appends an xxHash64 trailer over the stored body.
	Checksum bool
}

// DefaultConfig returns the packing defaults: little-endian, no compression,
// no checksum.
func DefaultConfig() Config {
	return Config{
		Engine:      endian.GetLittleEndianEngine(),
		Compression: format.CompressionNone,
		Checksum:    false,
	}
}

// Payload is the result of unpacking a buffer. Exactly one of Words or Bytes
// is populated, matching Type.
type Payload struct {
	Type  format.PayloadType
	Words []uint64
	Bytes []byte
}

// PackWords packs a word array into a self-describing byte buffer.
func PackWords(words []uint64, cfg Config) ([]byte, error) {
	scratch, cleanup := pool.GetByteSlice(len(words) * 8)
	defer cleanup()

	body := scratch
	for _, w := range words {
		body = cfg.Engine.AppendUint64(body, w)
	}

	return pack(format.PayloadWords, uint32(len(words)), body, cfg)
}

// PackBytes packs an opaque byte payload into a self-describing byte buffer.
func PackBytes(data []byte, cfg Config) ([]byte, error) {
	return pack(format.PayloadBytes, uint32(len(data)), data, cfg)
}

func pack(ptype format.PayloadType, count uint32, body []byte, cfg Config) ([]byte, error) {
	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	stored, err := codec.Compress(body)
	if err != nil {
		return nil, err
	}

	size := HeaderSize + len(stored)
	if cfg.Checksum {
		size += checksumSize
	}

	buf := make([]byte, 0, size)
	buf = append(buf, byte(ptype), packFlags(cfg))
	buf = cfg.Engine.AppendUint32(buf, count)
	buf = append(buf, 0, 0)
	buf = append(buf, stored...)

	if cfg.Checksum {
		buf = cfg.Engine.AppendUint64(buf, hash.Checksum(stored))
	}

	return buf, nil
}

func packFlags(cfg Config) byte {
	var flags byte
	if cfg.Engine == endian.GetBigEndianEngine() {
		flags |= flagBigEndian
	}
	if cfg.Checksum {
		flags |= flagChecksum
	}
	flags |= byte(cfg.Compression) << compressionShift

	return flags
}

// Unpack parses a buffer produced by PackWords or PackBytes, verifying the
// checksum when present and validating the body length against the declared
// element count.
func Unpack(data []byte) (Payload, error) {
	if len(data) < HeaderSize {
		return Payload{}, fmt.Errorf("%w: packed buffer has %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	ptype := format.PayloadType(data[0])
	if ptype != format.PayloadWords && ptype != format.PayloadBytes {
		return Payload{}, fmt.Errorf("%w: unknown payload type tag %d", errs.ErrPayloadTypeMismatch, data[0])
	}

	flags := data[1]
	engine := endian.GetLittleEndianEngine()
	if flags&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	codec, err := compress.GetCodec(format.CompressionType(flags >> compressionShift))
	if err != nil {
		return Payload{}, err
	}

	count := engine.Uint32(data[2:6])
	stored := data[HeaderSize:]

	if flags&flagChecksum != 0 {
		if len(stored) < checksumSize {
			return Payload{}, fmt.Errorf("%w: missing checksum trailer", errs.ErrInvalidHeaderSize)
		}

		trailer := stored[len(stored)-checksumSize:]
		stored = stored[:len(stored)-checksumSize]
		if engine.Uint64(trailer) != hash.Checksum(stored) {
			return Payload{}, errs.ErrChecksumMismatch
		}
	}

	body, err := codec.Decompress(stored)
	if err != nil {
		return Payload{}, err
	}

	switch ptype {
	case format.PayloadBytes:
		if len(body) != int(count) {
			return Payload{}, fmt.Errorf("%w: %d bytes for declared count %d", errs.ErrInvalidPayloadLength, len(body), count)
		}

		return Payload{Type: ptype, Bytes: body}, nil
	default:
		if len(body) != int(count)*8 {
			return Payload{}, fmt.Errorf("%w: %d body bytes for %d words", errs.ErrInvalidPayloadLength, len(body), count)
		}

		words := make([]uint64, count)
		for i := range words {
			words[i] = engine.Uint64(body[i*8:])
		}

		return Payload{Type: ptype, Words: words}, nil
	}
}
