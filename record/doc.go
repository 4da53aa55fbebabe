// Package record batches rendered text records into compact blobs.
//
// A blob is a fixed 24-byte header followed by a compressed payload of
// length-prefixed records:
//
//	+--------+---------+-------+-------+---------+----------------+----------+
//	| magic  | options | codec | count | rawSize | compressedSize | checksum |
//	| uint16 | uint8   | uint8 | uint32| uint32  | uint32         | uint64   |
//	+--------+---------+-------+-------+---------+----------------+----------+
//	| payload: (len:uint32 | record bytes) * count, compressed     ...       |
//	+-------------------------------------------------------------+---------+
//
// The magic number doubles as the byte order probe: it is written in the
// blob's own byte order, and a reader seeing it byte-swapped switches to
// big-endian decoding. Bit 0 of the options byte must agree with that
// probe. The checksum is the xxHash64 of the compressed payload, verified
// before decompression.
//
// Writing:
//
//	writer, _ := record.NewWriter(record.WithCompression(compress.CompressionZstd))
//	_ = writer.Append("metric cpu.load 0.75")
//	_ = writer.AppendFormat("metric %s %.2f", value.Str("mem.used"), value.Float64(0.41))
//	blob, err := writer.Finish()
//
// Reading:
//
//	reader, err := record.NewReader(blob)
//	defer reader.Close()
//	for i, rec := range reader.All() {
//		fmt.Println(i, rec)
//	}
//
// ScanRecord applies the match grammar to one stored record, turning a
// blob into a poor man's column store for text metrics.
package record
