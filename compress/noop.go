package compress

// NoOpCompressor passes payloads through untouched.
//
// It backs CompressionNone and doubles as the baseline when benchmarking
// the other codecs. Both directions return the input slice as-is, so the
// caller must not mutate the input while holding the result.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates the pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
