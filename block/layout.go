// Package block implements the temporal property codec: it converts logical
// temporal values to and from the compact fixed-width word sequences used for
// scalar property storage, and to and from packed byte buffers used for
// array-typed properties.
package block

import (
	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
	"github.com/graphlite/temporal/section"
)

const (
	// DefaultKeyIDBits is the property-key-id field width of the standard
	// record format.
	DefaultKeyIDBits = 24

	storeTypeFieldBits = 4
	kindFieldBits      = 4

	// inlineFlagBit is the bit position of the inline flag in the first
	// word of inlinable kinds.
	inlineFlagBit = 32

	// inlineMaxBits is the widest magnitude that still fits the first word
	// above the inline flag: bits [33,64).
	inlineMaxBits = 31
)

// Layout describes where the host store places its metadata inside the first
// word of a property block: the key id occupies bits [0,M), the store type
// tag bits [M,M+4) and the kind tag bits [M+4,M+8), with M the key-id width.
//
// The codec itself only ever writes and reads bits above the metadata region;
// M is genuinely external to temporal encoding and is therefore explicit
// configuration rather than an assumption.
type Layout struct {
	keyIDBits uint
}

// NewLayout creates a layout with the given key-id field width. The width
// plus the type and kind fields must stay within the low 32 bits of the first
// word, below the inline flag.
func NewLayout(keyIDBits uint) (Layout, error) {
	if keyIDBits == 0 || keyIDBits+storeTypeFieldBits+kindFieldBits > inlineFlagBit {
		return Layout{}, errs.ErrInvalidKeyIDBits
	}

	return Layout{keyIDBits: keyIDBits}, nil
}

// DefaultLayout returns the layout of the standard record format, with a
// 24-bit key-id field.
func DefaultLayout() Layout {
	return Layout{keyIDBits: DefaultKeyIDBits}
}

// KeyIDBits returns the configured key-id field width.
func (l Layout) KeyIDBits() uint {
	return l.keyIDBits
}

func (l Layout) kindShift() uint {
	return l.keyIDBits + storeTypeFieldBits
}

// keyAndType assembles the host metadata region of the first word: the key id
// plus the temporal store type tag directly above it.
func (l Layout) keyAndType(keyID uint32) (uint64, error) {
	if uint64(keyID) >= 1<<l.keyIDBits {
		return 0, errs.ErrKeyIDOutOfRange
	}

	return uint64(keyID) | uint64(section.StoreTagTemporal)<<l.keyIDBits, nil
}

func (l Layout) kindBits(kind format.Kind) uint64 {
	return uint64(kind) << l.kindShift()
}

// KindOf extracts the temporal kind from the first word of a block sequence.
// Corrupt tag bits resolve to format.KindInvalid, never an error.
func (l Layout) KindOf(word0 uint64) format.Kind {
	return format.KindOf(int((word0 >> l.kindShift()) & 0xF))
}

// KeyID extracts the property key id from the first word of a block sequence.
func (l Layout) KeyID(word0 uint64) uint32 {
	return uint32(word0 & (1<<l.keyIDBits - 1))
}
