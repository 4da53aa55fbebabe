package record

import (
	"fmt"
	"math"

	"github.com/arloliu/textfmt/compress"
	"github.com/arloliu/textfmt/endian"
	"github.com/arloliu/textfmt/engine"
	"github.com/arloliu/textfmt/errs"
	"github.com/arloliu/textfmt/internal/hash"
	"github.com/arloliu/textfmt/internal/options"
	"github.com/arloliu/textfmt/internal/pool"
	"github.com/arloliu/textfmt/value"
)

// Writer collects text records and serializes them into a single blob:
// a Header followed by the compressed payload of length-prefixed records.
//
// The payload is staged in a pooled buffer that Finish returns to its
// pool, so each Writer serves exactly one blob. A Writer is not safe for
// concurrent use.
type Writer struct {
	eng         endian.EndianEngine
	formatter   *engine.Formatter
	payload     *pool.ByteBuffer
	compression compress.Compression
	stats       compress.Stats
	count       uint32
	finished    bool
}

// NewWriter creates a record blob writer.
//
// Parameters:
//   - opts: optional configuration (WithCompression, WithBigEndian,
//     WithLittleEndian, WithInitCapacity, WithFormatter)
//
// Returns:
//   - *Writer: writer ready to accept records
//   - error: configuration error from an option
func NewWriter(opts ...WriterOption) (*Writer, error) {
	cfg := NewWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	formatter := cfg.formatter
	if formatter == nil {
		var err error

		formatter, err = engine.NewFormatter()
		if err != nil {
			return nil, err
		}
	}

	payload := pool.GetPayloadBuffer()
	if cfg.initCap > 0 {
		payload.Grow(cfg.initCap)
	}

	return &Writer{
		eng:         cfg.byteOrder,
		formatter:   formatter,
		payload:     payload,
		compression: cfg.compression,
	}, nil
}

// Append adds one record to the payload.
//
// Returns:
//   - errs.ErrWriterFinished: Finish was already called
//   - errs.ErrRecordTooLarge: text exceeds MaxRecordSize
//   - errs.ErrTooManyRecords: the writer holds MaxRecordCount records
//   - errs.ErrInvalidPayloadSize: the payload would outgrow its header field
func (w *Writer) Append(text string) error {
	if w.finished {
		return errs.ErrWriterFinished
	}

	if len(text) > MaxRecordSize {
		return fmt.Errorf("%w: %d bytes (limit %d)", errs.ErrRecordTooLarge, len(text), MaxRecordSize)
	}

	if err := w.reserve(len(text)); err != nil {
		return err
	}

	start := w.payload.Len()
	w.payload.ExtendOrGrow(recordPrefixSize)
	w.eng.PutUint32(w.payload.Slice(start, start+recordPrefixSize), uint32(len(text)))
	w.payload.MustWriteString(text)
	w.count++

	return nil
}

// AppendFormat renders format against args directly into the payload and
// frames the result as one record, sparing the intermediate string an
// Append(Format(...)) pair would build.
//
// On any error the payload is left exactly as it was before the call.
func (w *Writer) AppendFormat(format string, args ...value.Value) error {
	if w.finished {
		return errs.ErrWriterFinished
	}

	if err := w.reserve(0); err != nil {
		return err
	}

	// Reserve the length prefix, render into the buffer, then backfill
	// the prefix once the rendered size is known.
	start := w.payload.Len()
	w.payload.ExtendOrGrow(recordPrefixSize)

	out, err := w.formatter.AppendFormat(w.payload.B, format, args...)
	w.payload.B = out

	if err != nil {
		w.payload.SetLength(start)
		return err
	}

	size := w.payload.Len() - start - recordPrefixSize
	if size > MaxRecordSize {
		w.payload.SetLength(start)
		return fmt.Errorf("%w: %d bytes (limit %d)", errs.ErrRecordTooLarge, size, MaxRecordSize)
	}

	if int64(w.payload.Len()) > math.MaxUint32 {
		w.payload.SetLength(start)
		return fmt.Errorf("%w: payload would exceed %d bytes", errs.ErrInvalidPayloadSize, uint32(math.MaxUint32))
	}

	w.eng.PutUint32(w.payload.Slice(start, start+recordPrefixSize), uint32(size))
	w.count++

	return nil
}

// reserve verifies one more record of n payload bytes still fits the
// header's count and size fields.
func (w *Writer) reserve(n int) error {
	if w.count == MaxRecordCount {
		return fmt.Errorf("%w: limit %d", errs.ErrTooManyRecords, uint32(MaxRecordCount))
	}

	if int64(w.payload.Len())+recordPrefixSize+int64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: payload would exceed %d bytes", errs.ErrInvalidPayloadSize, uint32(math.MaxUint32))
	}

	return nil
}

// Finish compresses the payload, assembles the final blob, and releases
// the staging buffer. The writer rejects all further calls except Count
// and Stats afterwards.
//
// Returns:
//   - []byte: Header followed by the compressed payload
//   - error: errs.ErrWriterFinished on a second call, or a codec failure
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}

	codec, err := compress.GetCodec(w.compression)
	if err != nil {
		return nil, err
	}

	raw := w.payload.Bytes()

	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	if int64(len(compressed)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload is %d bytes", errs.ErrInvalidPayloadSize, len(compressed))
	}

	header := Header{
		Codec:          w.compression,
		Count:          w.count,
		RawSize:        uint32(len(raw)),
		CompressedSize: uint32(len(compressed)),
		Checksum:       hash.Checksum(compressed),
	}
	header.SetBigEndian(w.eng == endian.GetBigEndianEngine())

	blob := make([]byte, 0, HeaderSize+len(compressed))
	blob = append(blob, header.Bytes()...)
	blob = append(blob, compressed...)

	w.stats = compress.Stats{
		Algorithm:      w.compression,
		RawSize:        int64(len(raw)),
		CompressedSize: int64(len(compressed)),
	}

	pool.PutPayloadBuffer(w.payload)
	w.payload = nil
	w.finished = true

	return blob, nil
}

// Count returns the number of records appended so far.
func (w *Writer) Count() int {
	return int(w.count)
}

// RawSize returns the accumulated payload size in bytes before
// compression, including the record length prefixes.
func (w *Writer) RawSize() int {
	if w.finished {
		return int(w.stats.RawSize)
	}

	return w.payload.Len()
}

// Stats reports the payload's trip through the codec. It is zero until
// Finish succeeds.
func (w *Writer) Stats() compress.Stats {
	return w.stats
}
