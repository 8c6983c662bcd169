package section

// Store-level type tags, as persisted by the host property store. The values
// are part of the on-disk format and must not change.
const (
	StoreTagArray    = 10 // dynamic-array property records
	StoreTagTemporal = 14 // temporal property blocks and array buffers
)

const (
	// TemporalHeaderSize is the size of the header prefixed to temporal
	// array buffers, independent of the word packer's own header.
	TemporalHeaderSize = 2
)
