package section

import (
	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
)

// TemporalHeader is the two-byte tag pair prefixed to temporal array buffers:
// the store-level "this is a temporal array" marker followed by the kind tag.
//
// Headers are ephemeral: one is built per encode or decode call and never
// persisted apart from the buffer it tags.
type TemporalHeader struct {
	Kind format.Kind
}

// NewTemporalHeader creates a header tagging an array buffer of the given
// kind.
func NewTemporalHeader(kind format.Kind) TemporalHeader {
	return TemporalHeader{Kind: kind}
}

// WriteTo writes the header into the first two bytes of b.
func (h TemporalHeader) WriteTo(b []byte) {
	b[0] = StoreTagTemporal
	b[1] = byte(h.Kind)
}

// ParseTemporalHeader reads the header from the start of an array buffer.
//
// The kind byte is resolved defensively: an out-of-range tag yields
// format.KindInvalid rather than an error, so the failure surfaces only when
// the caller actually decodes the array. A wrong store tag means the buffer
// is not a temporal array at all and is reported as a format error.
func ParseTemporalHeader(data []byte) (TemporalHeader, error) {
	if len(data) < TemporalHeaderSize {
		return TemporalHeader{}, errs.ErrInvalidHeaderSize
	}

	if data[0] != StoreTagTemporal {
		return TemporalHeader{}, errs.ErrNotTemporalArray
	}

	return TemporalHeader{Kind: format.KindOf(int(data[1]))}, nil
}
