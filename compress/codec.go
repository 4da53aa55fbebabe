package compress

import (
	"fmt"

	"github.com/arloliu/textfmt/errs"
)

// Compressor compresses record payloads before they are framed into a
// blob.
//
// Payloads are rendered text records with length prefixes, typically a
// few hundred bytes to a few megabytes, with heavy byte-level repetition
// from shared format strings. All built-in implementations are stateless
// values and safe for concurrent use.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// Memory management:
	//   - The returned slice is newly allocated and owned by the caller
	//     (CompressionNone returns the input unchanged).
	//   - The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores record payloads read back from a blob.
//
// The input must have been produced by the matching Compressor; corrupted
// or mismatched data returns an error rather than garbage where the
// algorithm can detect it.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload.
	//
	// Memory management:
	//   - The returned slice is newly allocated and owned by the caller
	//     (CompressionNone returns the input unchanged).
	//   - The input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats summarizes one payload's trip through a codec.
type Stats struct {
	// Algorithm identifies the codec used.
	Algorithm Compression

	// RawSize is the payload size before compression.
	RawSize int64

	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// Ratio returns compressed size over raw size. Values below 1.0 mean the
// payload shrank; 0.0 means nothing was compressed.
func (s Stats) Ratio() float64 {
	if s.RawSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.RawSize)
}

// SpaceSavings returns the saved fraction as a percentage (0-100).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[Compression]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
//
// Parameters:
//   - compression: algorithm identifier, usually read from a record header
//
// Returns:
//   - Codec: stateless shared codec instance
//   - error: errs.ErrUnsupportedCompression for unknown identifiers
func GetCodec(compression Compression) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compression)
}
