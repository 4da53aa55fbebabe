package record

import (
	"fmt"
	"iter"

	"github.com/arloliu/textfmt/compress"
	"github.com/arloliu/textfmt/engine"
	"github.com/arloliu/textfmt/errs"
	"github.com/arloliu/textfmt/internal/hash"
	"github.com/arloliu/textfmt/internal/options"
	"github.com/arloliu/textfmt/internal/pool"
	"github.com/arloliu/textfmt/value"
)

// Reader gives random access to the records of a serialized blob.
//
// NewReader validates the header and checksum, decompresses the payload
// once, and indexes the record boundaries; Record and All afterwards
// slice one shared string without copying or allocating. The offset index
// is pooled, so callers should Close a reader they are done with. A
// Reader is safe for concurrent use after construction, except for Close.
type Reader struct {
	header  Header
	matcher *engine.Matcher
	records string
	offsets []int
	release func()
	count   int
}

// NewReader parses and indexes a record blob. The blob is not retained;
// the reader keeps its own copy of the decompressed payload.
//
// Parameters:
//   - blob: serialized blob as produced by Writer.Finish
//   - opts: optional configuration (WithMatcher)
//
// Returns:
//   - *Reader: reader over the blob's records
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidHeaderFlags,
//     errs.ErrUnsupportedCompression, errs.ErrInvalidPayloadSize,
//     errs.ErrChecksumMismatch, or a codec failure
func NewReader(blob []byte, opts ...ReaderOption) (*Reader, error) {
	cfg := NewReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := &Reader{matcher: cfg.matcher}
	if r.matcher == nil {
		var err error

		r.matcher, err = engine.NewMatcher()
		if err != nil {
			return nil, err
		}
	}

	if err := r.header.Parse(blob); err != nil {
		return nil, err
	}

	payload := blob[HeaderSize:]
	if len(payload) != int(r.header.CompressedSize) {
		return nil, fmt.Errorf("%w: header says %d compressed bytes, blob carries %d",
			errs.ErrInvalidPayloadSize, r.header.CompressedSize, len(payload))
	}

	if hash.Checksum(payload) != r.header.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%016x", errs.ErrChecksumMismatch, r.header.Checksum)
	}

	codec, err := compress.GetCodec(r.header.Codec)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	if len(raw) != int(r.header.RawSize) {
		return nil, fmt.Errorf("%w: header says %d raw bytes, payload decompressed to %d",
			errs.ErrInvalidPayloadSize, r.header.RawSize, len(raw))
	}

	if err := r.index(raw); err != nil {
		return nil, err
	}

	return r, nil
}

// index walks the length prefixes and records each record's start and end
// position. The payload is copied into a string once here; record access
// never touches raw again.
func (r *Reader) index(raw []byte) error {
	count := int(r.header.Count)
	offsets, release := pool.GetIntSlice(2 * count)

	eng := r.header.Engine()
	pos := 0

	for i := range count {
		if len(raw)-pos < recordPrefixSize {
			release()
			return fmt.Errorf("%w: truncated length prefix for record %d", errs.ErrInvalidPayloadSize, i)
		}

		size := int(eng.Uint32(raw[pos : pos+recordPrefixSize]))
		pos += recordPrefixSize

		if size > len(raw)-pos {
			release()
			return fmt.Errorf("%w: record %d claims %d bytes, %d remain",
				errs.ErrInvalidPayloadSize, i, size, len(raw)-pos)
		}

		offsets[2*i] = pos
		offsets[2*i+1] = pos + size
		pos += size
	}

	if pos != len(raw) {
		release()
		return fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidPayloadSize, len(raw)-pos)
	}

	r.records = string(raw)
	r.offsets = offsets
	r.release = release
	r.count = count

	return nil
}

// Count returns the number of records in the blob.
func (r *Reader) Count() int {
	return r.count
}

// Record returns record i without copying.
//
// Returns:
//   - string: the record text, valid for the life of the process
//   - error: errs.ErrRecordOutOfRange for i outside [0, Count)
func (r *Reader) Record(i int) (string, error) {
	if i < 0 || i >= r.count {
		return "", fmt.Errorf("%w: %d of %d", errs.ErrRecordOutOfRange, i, r.count)
	}

	return r.records[r.offsets[2*i]:r.offsets[2*i+1]], nil
}

// All returns an iterator over (index, record) pairs in storage order.
//
// Example:
//
//	for i, rec := range reader.All() {
//		fmt.Println(i, rec)
//	}
func (r *Reader) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(i, r.records[r.offsets[2*i]:r.offsets[2*i+1]]) {
				return
			}
		}
	}
}

// ScanRecord runs the matcher over record i.
//
// Parameters:
//   - i: record index
//   - format: match grammar format string
//   - slots: destinations for converted values
//
// Returns:
//   - int: number of values assigned
//   - error: errs.ErrRecordOutOfRange, or any matcher error
func (r *Reader) ScanRecord(i int, format string, slots ...value.Slot) (int, error) {
	rec, err := r.Record(i)
	if err != nil {
		return 0, err
	}

	return r.matcher.Scan(rec, format, slots...)
}

// Stats reports the payload sizes recorded in the blob header.
func (r *Reader) Stats() compress.Stats {
	return compress.Stats{
		Algorithm:      r.header.Codec,
		RawSize:        int64(r.header.RawSize),
		CompressedSize: int64(r.header.CompressedSize),
	}
}

// Close returns the offset index to its pool. The reader is empty
// afterwards: Count reports zero and Record rejects every index. Close is
// idempotent.
func (r *Reader) Close() {
	if r.release != nil {
		r.release()
		r.release = nil
	}

	r.offsets = nil
	r.records = ""
	r.count = 0
}
