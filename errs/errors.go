// Package errs defines the sentinel errors shared across the temporal codec.
//
// All errors are plain sentinels so callers can classify failures with
// errors.Is; call sites wrap them with fmt.Errorf("%w: ...") when extra
// context helps.
package errs

import "errors"

// Unsupported-feature errors. These signal known, intentional gaps, not data
// corruption, and must never be silently substituted with a default value.
var (
	// ErrInvalidKind is returned when decoding a block or array whose kind
	// tag resolved to the invalid kind.
	ErrInvalidKind = errors.New("cannot decode invalid temporal")

	// ErrNamedZoneUnsupported is returned when encoding or decoding a zoned
	// date-time carrying a named time zone instead of a fixed UTC offset.
	ErrNamedZoneUnsupported = errors.New("cannot store date-time with named time zone")
)

// Format-integrity errors reported while parsing packed buffers.
var (
	// ErrInvalidHeaderSize is returned when a buffer is too short to hold
	// its fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrNotTemporalArray is returned when an array buffer does not carry
	// the temporal store type tag.
	ErrNotTemporalArray = errors.New("buffer is not a temporal array")

	// ErrPayloadTypeMismatch is returned when a packed payload has a shape
	// other than the expected one.
	ErrPayloadTypeMismatch = errors.New("packed payload has unexpected type")

	// ErrInvalidPayloadLength is returned when a packed payload's byte
	// length disagrees with its declared element count.
	ErrInvalidPayloadLength = errors.New("packed payload length mismatch")

	// ErrChecksumMismatch is returned when a packed payload fails its
	// integrity checksum.
	ErrChecksumMismatch = errors.New("packed payload checksum mismatch")

	// ErrInvalidCompression is returned for an unknown compression tag.
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Caller-input errors reported by the scalar codec.
var (
	// ErrNotEnoughBlocks is returned when a block slice is shorter than the
	// word count its first block declares.
	ErrNotEnoughBlocks = errors.New("not enough value blocks")

	// ErrKeyIDOutOfRange is returned when a property key id does not fit
	// the layout's key-id field.
	ErrKeyIDOutOfRange = errors.New("property key id out of range")

	// ErrInvalidKeyIDBits is returned when a layout is configured with a
	// key-id width that leaves no room for the type and kind fields.
	ErrInvalidKeyIDBits = errors.New("invalid key id bit width")
)
