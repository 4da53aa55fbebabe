// Package textfmt provides a sprintf/sscanf-style text conversion engine:
// a formatter that renders typed values through printf directives and a
// matcher that converts text back through the same grammar.
//
// # Core Features
//
//   - One directive grammar (`%[flags][width][.precision][length]kind`)
//     shared by both engines
//   - Typed, reflection-free argument passing (value.Value / value.Slot)
//   - Correctly rounded float rendering with C-style flag semantics
//   - Compiled format programs with a shared xxHash64-keyed cache
//   - Record container for batching rendered text into compressed blobs
//     (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Formatting:
//
//	out, err := textfmt.Format("%s used %05.1f%%", value.Str("cpu"), value.Float64(93.5))
//	// out == "cpu used 093.5%"
//
// Matching:
//
//	var name string
//	var used float64
//	n, err := textfmt.Scan("cpu used 093.5%", "%s used %lf%%",
//	    value.StringSlot(&name), value.Float64Slot(&used))
//	// n == 2, name == "cpu", used == 93.5
//
// Batching records:
//
//	writer, _ := textfmt.NewRecordWriter()
//	_ = writer.AppendFormat("%s=%d", value.Str("requests"), value.Int(1042))
//	blob, _ := writer.Finish()
//
//	reader, _ := textfmt.NewRecordReader(blob)
//	defer reader.Close()
//	for i, rec := range reader.All() {
//	    fmt.Println(i, rec)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the engine
// and record packages, sharing one program cache so repeated format
// strings skip parsing. For fine-grained control (private caches, custom
// codecs, byte order) use the engine and record packages directly.
package textfmt

import (
	"github.com/arloliu/textfmt/engine"
	"github.com/arloliu/textfmt/record"
	"github.com/arloliu/textfmt/value"
)

// The default engine pair behind the package-level calls. Both share one
// bounded program cache, so independent goroutines formatting the same
// format strings hit compiled programs.
var (
	defaultCache     = engine.NewCache(0)
	defaultFormatter = mustFormatter(engine.WithFormatCache(defaultCache))
	defaultMatcher   = mustMatcher(engine.WithScanCache(defaultCache))
)

func mustFormatter(opts ...engine.FormatterOption) *engine.Formatter {
	f, err := engine.NewFormatter(opts...)
	if err != nil {
		panic(err)
	}

	return f
}

func mustMatcher(opts ...engine.MatcherOption) *engine.Matcher {
	m, err := engine.NewMatcher(opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Format renders format against args and returns the result.
//
// It uses a process-wide formatter with a shared program cache and is
// safe for concurrent use.
//
// Parameters:
//   - format: directive grammar format string
//   - args: typed values consumed left to right
//
// Returns:
//   - string: rendered text (partial output accompanies an error)
//   - error: errs.ErrArgExhausted or errs.ErrArgTypeMismatch
//
// Example:
//
//	out, err := textfmt.Format("id=%06d ratio=%+.3f", value.Int(42), value.Float64(0.5))
//	// out == "id=000042 ratio=+0.500"
func Format(format string, args ...value.Value) (string, error) {
	return defaultFormatter.Format(format, args...)
}

// AppendFormat renders format against args and appends the result to dst,
// returning the extended slice. It is the allocation-conscious variant of
// Format for callers that reuse buffers.
func AppendFormat(dst []byte, format string, args ...value.Value) ([]byte, error) {
	return defaultFormatter.AppendFormat(dst, format, args...)
}

// Scan matches input against format and stores converted values through
// slots, returning the number of values assigned.
//
// It uses a process-wide matcher with a shared program cache and is safe
// for concurrent use.
//
// Parameters:
//   - input: text to match
//   - format: directive grammar format string
//   - slots: typed destinations consumed left to right
//
// Returns:
//   - int: number of values assigned before the first mismatch
//   - error: errs.ErrInputDepleted when input runs out before the first
//     assignment, or a slot error
//
// Example:
//
//	var id int
//	n, err := textfmt.Scan("id=000042", "id=%d", value.IntSlot(&id))
//	// n == 1, id == 42
func Scan(input, format string, slots ...value.Slot) (int, error) {
	return defaultMatcher.Scan(input, format, slots...)
}

// NewFormatter creates a formatter with custom options.
//
// Use this instead of the package-level Format when the application wants
// its own program cache or must isolate cache pressure between
// subsystems.
//
// Available options:
//   - engine.WithFormatCache(cache)
func NewFormatter(opts ...engine.FormatterOption) (*engine.Formatter, error) {
	return engine.NewFormatter(opts...)
}

// NewMatcher creates a matcher with custom options.
//
// Available options:
//   - engine.WithScanCache(cache)
func NewMatcher(opts ...engine.MatcherOption) (*engine.Matcher, error) {
	return engine.NewMatcher(opts...)
}

// NewCache creates a bounded compiled-program cache holding up to
// maxEntries programs; maxEntries <= 0 selects the default size. A single
// cache may back any number of formatters and matchers.
func NewCache(maxEntries int) *engine.Cache {
	return engine.NewCache(maxEntries)
}

// NewRecordWriter creates a record blob writer whose AppendFormat shares
// the package-level program cache. Explicit options override the shared
// formatter.
//
// Available options:
//   - record.WithCompression(compress.CompressionNone|Zstd|S2|LZ4)
//   - record.WithLittleEndian() / record.WithBigEndian()
//   - record.WithInitCapacity(n)
//   - record.WithFormatter(formatter)
//
// Example:
//
//	writer, err := textfmt.NewRecordWriter(record.WithCompression(compress.CompressionS2))
//	_ = writer.Append("raw line")
//	blob, err := writer.Finish()
func NewRecordWriter(opts ...record.WriterOption) (*record.Writer, error) {
	allOpts := append([]record.WriterOption{record.WithFormatter(defaultFormatter)}, opts...)

	return record.NewWriter(allOpts...)
}

// NewRecordReader creates a reader over a record blob produced by a
// record writer. Its ScanRecord shares the package-level program cache.
// Explicit options override the shared matcher.
//
// Available options:
//   - record.WithMatcher(matcher)
//
// Example:
//
//	reader, err := textfmt.NewRecordReader(blob)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//
//	for i, rec := range reader.All() {
//	    fmt.Println(i, rec)
//	}
func NewRecordReader(blob []byte, opts ...record.ReaderOption) (*record.Reader, error) {
	allOpts := append([]record.ReaderOption{record.WithMatcher(defaultMatcher)}, opts...)

	return record.NewReader(blob, allOpts...)
}
