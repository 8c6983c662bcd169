// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into a single EndianEngine interface, so codecs can both read fixed fields
// and append to growing buffers through one value. The engines returned here
// are the standard library's binary.LittleEndian and binary.BigEndian; they
// are immutable, stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder for
// convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
