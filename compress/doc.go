// Package compress provides the payload codecs used by record blobs.
//
// Four algorithms are built in, identified by a Compression byte that is
// stored in the blob header:
//
//	CompressionNone  pass-through, zero overhead
//	CompressionS2    fastest, mild ratio (klauspost/compress/s2)
//	CompressionLZ4   balanced block compression (pierrec/lz4)
//	CompressionZstd  best ratio (libzstd via cgo, pure Go otherwise)
//
// All codecs are stateless values safe for concurrent use; encoder and
// decoder state that is worth keeping warm is pooled internally. Obtain a
// shared instance through GetCodec:
//
//	codec, err := compress.GetCodec(compress.CompressionS2)
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(payload)
//
// Record payloads are length-prefixed rendered text, so even the fast
// codecs compress them well; Zstd is worth its CPU cost mainly for blobs
// that leave the process.
package compress
