package record

import (
	"fmt"

	"github.com/arloliu/textfmt/compress"
	"github.com/arloliu/textfmt/endian"
	"github.com/arloliu/textfmt/errs"
)

const (
	// HeaderSize is the fixed size of a serialized record blob header.
	HeaderSize = 24

	// MagicNumber identifies a record blob. The magic is written in the
	// blob's own byte order, so reading it back little-endian yields either
	// MagicNumber or its byte-swapped form, which is how readers detect the
	// byte order before trusting any flag.
	MagicNumber uint16 = 0x5446

	magicByteSwapped uint16 = 0x4654

	// optBigEndian is bit 0 of the options byte: set for big-endian blobs.
	// It must mirror the byte order implied by the magic field. Bits 1-7
	// are reserved and must be zero.
	optBigEndian uint8 = 0x01

	// MaxRecordSize is the largest single record a writer accepts.
	MaxRecordSize = 16 * 1024 * 1024

	// MaxRecordCount is the largest record count a header can describe.
	MaxRecordCount = 1<<32 - 1

	// recordPrefixSize is the length prefix in front of every record in
	// the payload.
	recordPrefixSize = 4
)

// Header field offsets within the serialized form.
const (
	offMagic          = 0
	offOptions        = 2
	offCodec          = 3
	offCount          = 4
	offRawSize        = 8
	offCompressedSize = 12
	offChecksum       = 16
)

// Header is the fixed-size metadata block in front of a record blob's
// compressed payload.
//
// Serialized layout (24 bytes):
//
//	magic:uint16 | options:uint8 | codec:uint8 | count:uint32 |
//	rawSize:uint32 | compressedSize:uint32 | checksum:uint64
//
// All multi-byte fields use the byte order selected by the options byte.
type Header struct {
	// Options packs header flags. Bit 0 selects the byte order, the
	// remaining bits are reserved and must be zero.
	Options uint8
	// Codec identifies the payload compression algorithm.
	Codec compress.Compression
	// Count is the number of records framed in the payload.
	Count uint32
	// RawSize is the payload size in bytes before compression.
	RawSize uint32
	// CompressedSize is the payload size in bytes as stored in the blob.
	CompressedSize uint32
	// Checksum is the xxHash64 of the compressed payload.
	Checksum uint64
}

// Parse decodes and validates a serialized header from the front of data.
// Extra bytes past the header are ignored, so the whole blob may be passed.
//
// Returns:
//   - errs.ErrInvalidHeaderSize: data is shorter than HeaderSize
//   - errs.ErrInvalidHeaderFlags: bad magic, byte order flag contradicting
//     the magic, or reserved option bits set
//   - errs.ErrUnsupportedCompression: unknown codec identifier
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The magic is read little-endian first; a byte-swapped match means
	// the blob was written big-endian.
	magic := uint16(data[offMagic]) | uint16(data[offMagic+1])<<8

	big := false
	switch magic {
	case MagicNumber:
	case magicByteSwapped:
		big = true
	default:
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidHeaderFlags, magic)
	}

	h.Options = data[offOptions]
	h.Codec = compress.Compression(data[offCodec])

	if h.IsBigEndian() != big {
		return fmt.Errorf("%w: byte order flag disagrees with magic", errs.ErrInvalidHeaderFlags)
	}

	if reserved := h.Options &^ optBigEndian; reserved != 0 {
		return fmt.Errorf("%w: reserved option bits 0x%02x", errs.ErrInvalidHeaderFlags, reserved)
	}

	if !h.Codec.IsValid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, data[offCodec])
	}

	eng := h.Engine()
	h.Count = eng.Uint32(data[offCount:offRawSize])
	h.RawSize = eng.Uint32(data[offRawSize:offCompressedSize])
	h.CompressedSize = eng.Uint32(data[offCompressedSize:offChecksum])
	h.Checksum = eng.Uint64(data[offChecksum:HeaderSize])

	return nil
}

// Bytes serializes the header into a fresh HeaderSize byte slice using the
// byte order selected by the options byte.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	eng := h.Engine()
	eng.PutUint16(b[offMagic:offOptions], MagicNumber)
	b[offOptions] = h.Options
	b[offCodec] = byte(h.Codec)
	eng.PutUint32(b[offCount:offRawSize], h.Count)
	eng.PutUint32(b[offRawSize:offCompressedSize], h.RawSize)
	eng.PutUint32(b[offCompressedSize:offChecksum], h.CompressedSize)
	eng.PutUint64(b[offChecksum:HeaderSize], h.Checksum)

	return b
}

// IsBigEndian reports whether the header's multi-byte fields and payload
// length prefixes use big-endian byte order.
func (h *Header) IsBigEndian() bool {
	return h.Options&optBigEndian != 0
}

// SetBigEndian sets or clears the byte order bit in the options byte.
func (h *Header) SetBigEndian(big bool) {
	if big {
		h.Options |= optBigEndian
	} else {
		h.Options &^= optBigEndian
	}
}

// Engine returns the endian engine matching the header's byte order bit.
func (h *Header) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
