// Package compress provides the per-buffer compression codecs used for packed
// temporal array payloads.
//
// Array payloads are flat word sequences with highly regular structure
// (epoch seconds, nanosecond counts, repeated offsets), which compress well.
// Compression is selected per buffer via the packer's flags field; scalar
// blocks are never compressed.
package compress

import (
	"fmt"

	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
)

// Compressor compresses a complete payload buffer.
//
// The returned slice is newly allocated and owned by the caller; the input
// slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// The input must have been produced by the matching Compressor; corrupted or
// mismatched data yields an error, never a partial result.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
