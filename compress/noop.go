package compress

// NoOpCompressor bypasses data without compression. It is the default for
// array payloads, where the fixed-width word layout is already compact.
//
// Both methods return the input slice as-is without copying; callers must not
// modify the input afterwards if they keep the returned slice.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
