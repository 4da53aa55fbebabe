package compress

// ZstdCompressor provides Zstandard compression for record payloads.
//
// Zstd trades speed for the best ratio of the built-in codecs, which
// suits blobs written once and shipped or archived. Two implementations
// sit behind this type: cgo builds use the libzstd binding, every other
// build uses the pure Go port (see zstd_cgo.go and zstd_pure.go).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
