package record

import (
	"testing"

	"github.com/arloliu/textfmt/compress"
	"github.com/arloliu/textfmt/engine"
	"github.com/arloliu/textfmt/value"
)

const benchBatchSize = 256

func benchBlob(b *testing.B, compression compress.Compression) []byte {
	b.Helper()

	w, err := NewWriter(WithCompression(compression))
	if err != nil {
		b.Fatal(err)
	}

	for i := range benchBatchSize {
		if err := w.AppendFormat("host=worker-%03d cpu=%08.2f state=%s",
			value.Int(i), value.Float64(float64(i)/2.5), value.Str("running")); err != nil {
			b.Fatal(err)
		}
	}

	blob, err := w.Finish()
	if err != nil {
		b.Fatal(err)
	}

	return blob
}

func BenchmarkWriter_Append(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		w, _ := NewWriter(WithCompression(compress.CompressionNone))
		for range benchBatchSize {
			_ = w.Append("host=worker-042 cpu=00093.50 state=running")
		}
		_, _ = w.Finish()
	}
}

func BenchmarkWriter_AppendFormat(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		w, _ := NewWriter(WithCompression(compress.CompressionNone))
		for i := range benchBatchSize {
			_ = w.AppendFormat("host=worker-%03d cpu=%08.2f state=%s",
				value.Int(i), value.Float64(float64(i)/2.5), value.Str("running"))
		}
		_, _ = w.Finish()
	}
}

func BenchmarkWriter_Finish(b *testing.B) {
	for _, compression := range []compress.Compression{
		compress.CompressionNone,
		compress.CompressionZstd,
		compress.CompressionS2,
		compress.CompressionLZ4,
	} {
		b.Run(compression.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				w, _ := NewWriter(WithCompression(compression))
				for range benchBatchSize {
					_ = w.Append("host=worker-042 cpu=00093.50 state=running")
				}
				_, _ = w.Finish()
			}
		})
	}
}

func BenchmarkReader_New(b *testing.B) {
	blob := benchBlob(b, compress.CompressionZstd)

	b.ReportAllocs()
	for b.Loop() {
		reader, err := NewReader(blob)
		if err != nil {
			b.Fatal(err)
		}
		reader.Close()
	}
}

func BenchmarkReader_All(b *testing.B) {
	blob := benchBlob(b, compress.CompressionNone)

	reader, err := NewReader(blob)
	if err != nil {
		b.Fatal(err)
	}
	defer reader.Close()

	b.ReportAllocs()
	for b.Loop() {
		total := 0
		for _, rec := range reader.All() {
			total += len(rec)
		}
		if total == 0 {
			b.Fatal("no records")
		}
	}
}

func BenchmarkReader_ScanRecord(b *testing.B) {
	blob := benchBlob(b, compress.CompressionNone)

	matcher, err := engine.NewMatcher(engine.WithScanCache(engine.NewCache(0)))
	if err != nil {
		b.Fatal(err)
	}

	reader, err := NewReader(blob, WithMatcher(matcher))
	if err != nil {
		b.Fatal(err)
	}
	defer reader.Close()

	var (
		host  int
		cpu   float64
		state string
	)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := reader.ScanRecord(42, "host=worker-%d cpu=%lf state=%s",
			value.IntSlot(&host), value.Float64Slot(&cpu), value.StringSlot(&state)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHeader_Parse(b *testing.B) {
	blob := benchBlob(b, compress.CompressionS2)

	b.ReportAllocs()
	for b.Loop() {
		var h Header
		if err := h.Parse(blob); err != nil {
			b.Fatal(err)
		}
		if h.Count != benchBatchSize {
			b.Fatalf("bad count %d", h.Count)
		}
	}
}
