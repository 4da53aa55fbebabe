package compress

// Compression identifies the algorithm applied to a record payload. The
// byte values are stored in record headers and must stay stable.
type Compression uint8

const (
	CompressionNone Compression = 0x1 // CompressionNone stores the payload uncompressed.
	CompressionZstd Compression = 0x2 // CompressionZstd is Zstandard, best ratio.
	CompressionS2   Compression = 0x3 // CompressionS2 is S2 (Snappy family), fastest.
	CompressionLZ4  Compression = 0x4 // CompressionLZ4 is LZ4 block compression.
)

// IsValid reports whether c is a known compression identifier.
func (c Compression) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
