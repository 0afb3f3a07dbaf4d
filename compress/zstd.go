package compress

// ZstdCompressor provides Zstandard compression for envelope payloads,
// preferred when compression ratio matters more than speed (archival,
// bandwidth-limited transport).
//
// The implementation is selected at build time: cgo builds use valyala/gozstd
// (bindings to libzstd), pure-Go builds fall back to klauspost/compress/zstd.
// Both produce standard zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
