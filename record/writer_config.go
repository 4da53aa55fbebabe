package record

import (
	"fmt"

	"github.com/arloliu/textfmt/compress"
	"github.com/arloliu/textfmt/endian"
	"github.com/arloliu/textfmt/engine"
	"github.com/arloliu/textfmt/errs"
	"github.com/arloliu/textfmt/internal/options"
)

// WriterConfig handles record writer configuration.
type WriterConfig struct {
	compression compress.Compression
	byteOrder   endian.EndianEngine
	formatter   *engine.Formatter
	initCap     int
}

// NewWriterConfig creates a WriterConfig with defaults: zstd compression,
// little-endian byte order, a pooled payload buffer at its default
// capacity, and a fresh uncached formatter for AppendFormat.
func NewWriterConfig() *WriterConfig {
	return &WriterConfig{
		compression: compress.CompressionZstd,
		byteOrder:   endian.GetLittleEndianEngine(),
	}
}

// WriterOption is a functional option for configuring a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithCompression selects the codec applied to the payload at Finish.
//
// Returns errs.ErrUnsupportedCompression for identifiers outside the
// built-in set.
func WithCompression(compression compress.Compression) WriterOption {
	return options.New(func(cfg *WriterConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, uint8(compression))
		}

		cfg.compression = compression

		return nil
	})
}

// WithLittleEndian selects little-endian byte order for the header and the
// record length prefixes. This is the default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(cfg *WriterConfig) {
		cfg.byteOrder = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian selects big-endian byte order for the header and the
// record length prefixes.
func WithBigEndian() WriterOption {
	return options.NoError(func(cfg *WriterConfig) {
		cfg.byteOrder = endian.GetBigEndianEngine()
	})
}

// WithInitCapacity pre-grows the payload buffer to hold capacity bytes,
// avoiding regrowth when the caller knows the batch size up front.
func WithInitCapacity(capacity int) WriterOption {
	return options.New(func(cfg *WriterConfig) error {
		if capacity < 0 {
			return fmt.Errorf("initial capacity must not be negative, got %d", capacity)
		}

		cfg.initCap = capacity

		return nil
	})
}

// WithFormatter supplies the formatter used by AppendFormat, typically one
// sharing a program cache with the rest of the application.
func WithFormatter(formatter *engine.Formatter) WriterOption {
	return options.New(func(cfg *WriterConfig) error {
		if formatter == nil {
			return fmt.Errorf("formatter must not be nil")
		}

		cfg.formatter = formatter

		return nil
	})
}
