package compress

// ZstdCompressor compresses payloads with Zstandard, trading encode speed for
// the best ratio of the built-in codecs. Suitable for cold or archived
// property data that is decoded infrequently.
//
// Two backends exist: the pure-Go klauspost implementation (default) and the
// cgo gozstd implementation selected with the zstdcgo build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
