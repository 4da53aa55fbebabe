package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/textfmt/errs"
	"github.com/arloliu/textfmt/value"
)

func mustMatcher(t *testing.T, opts ...MatcherOption) *Matcher {
	t.Helper()

	m, err := NewMatcher(opts...)
	require.NoError(t, err)

	return m
}

func TestMatcher_SignedIntegers(t *testing.T) {
	m := mustMatcher(t)

	tests := []struct {
		name   string
		input  string
		format string
		want   int
	}{
		{name: "plain", input: "42", format: "%d", want: 42},
		{name: "negative", input: "-42", format: "%d", want: -42},
		{name: "explicit plus", input: "+7", format: "%d", want: 7},
		{name: "leading whitespace skipped", input: "  42", format: "%d", want: 42},
		{name: "auto base hex", input: "0x1f", format: "%i", want: 31},
		{name: "auto base octal", input: "017", format: "%i", want: 15},
		{name: "auto base lone zero", input: "0", format: "%i", want: 0},
		{name: "width limits digits", input: "12345", format: "%3d", want: 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int
			n, err := m.Scan(tt.input, tt.format, value.IntSlot(&got))
			require.NoError(t, err)
			require.Equal(t, 1, n)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("stops at first non digit", func(t *testing.T) {
		var d int
		var s string
		n, err := m.Scan("42abc", "%d%s", value.IntSlot(&d), value.StringSlot(&s))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, 42, d)
		require.Equal(t, "abc", s)
	})
}

func TestMatcher_UnsignedIntegers(t *testing.T) {
	m := mustMatcher(t)

	t.Run("decimal", func(t *testing.T) {
		var v uint
		n, err := m.Scan("42", "%u", value.UintSlot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint(42), v)
	})

	t.Run("negated value wraps", func(t *testing.T) {
		var v uint
		n, err := m.Scan("-5", "%u", value.UintSlot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint(math.MaxUint64-4), v)
	})

	t.Run("octal stops at invalid digit", func(t *testing.T) {
		var d int
		var u uint
		n, err := m.Scan("19", "%o%d", value.UintSlot(&u), value.IntSlot(&d))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, uint(1), u)
		require.Equal(t, 9, d)
	})

	t.Run("hex with prefix", func(t *testing.T) {
		var v uint
		n, err := m.Scan("0xff", "%x", value.UintSlot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint(255), v)
	})

	t.Run("hex upper digits", func(t *testing.T) {
		var v uint
		n, err := m.Scan("FF", "%X", value.UintSlot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint(255), v)
	})

	t.Run("bare prefix consumes the zero only", func(t *testing.T) {
		var v uint
		var c byte
		n, err := m.Scan("0x", "%x%c", value.UintSlot(&v), value.ByteSlot(&c))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, uint(0), v)
		require.Equal(t, byte('x'), c)
	})

	t.Run("pointer", func(t *testing.T) {
		var p uintptr
		n, err := m.Scan("0xdeadbeef", "%p", value.UintptrSlot(&p))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uintptr(0xdeadbeef), p)
	})
}

func TestMatcher_Saturation(t *testing.T) {
	m := mustMatcher(t)

	t.Run("signed maximum", func(t *testing.T) {
		var v int
		n, err := m.Scan("99999999999999999999", "%d", value.IntSlot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, math.MaxInt64, v)
	})

	t.Run("signed minimum", func(t *testing.T) {
		var v int64
		n, err := m.Scan("-99999999999999999999", "%ld", value.Int64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, int64(math.MinInt64), v)
	})

	t.Run("unsigned maximum", func(t *testing.T) {
		var v uint64
		n, err := m.Scan("18446744073709551616", "%lu", value.Uint64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint64(math.MaxUint64), v)
	})

	t.Run("saturation consumes remaining digits", func(t *testing.T) {
		var v int
		var c byte
		n, err := m.Scan("99999999999999999999x", "%d%c", value.IntSlot(&v), value.ByteSlot(&c))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, math.MaxInt64, v)
		require.Equal(t, byte('x'), c)
	})
}

func TestMatcher_LengthClasses(t *testing.T) {
	m := mustMatcher(t)

	t.Run("hh truncates to int8", func(t *testing.T) {
		var v int8
		n, err := m.Scan("300", "%hhd", value.Int8Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, int8(44), v)
	})

	t.Run("h truncates to int16", func(t *testing.T) {
		var v int16
		n, err := m.Scan("70000", "%hd", value.Int16Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, int16(4464), v)
	})

	t.Run("hh unsigned", func(t *testing.T) {
		var v uint8
		n, err := m.Scan("300", "%hhu", value.Uint8Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint8(44), v)
	})

	t.Run("ll matches int64", func(t *testing.T) {
		var v int64
		n, err := m.Scan("-9000000000", "%lld", value.Int64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, int64(-9000000000), v)
	})

	t.Run("L matches float64", func(t *testing.T) {
		var v float64
		n, err := m.Scan("2.5", "%Lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 2.5, v)
	})

	t.Run("length ignored for strings", func(t *testing.T) {
		var s string
		n, err := m.Scan("ab", "%hs", value.StringSlot(&s))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, "ab", s)
	})
}

func TestMatcher_Floats(t *testing.T) {
	m := mustMatcher(t)

	t.Run("float32 slot", func(t *testing.T) {
		var v float32
		n, err := m.Scan("3.5", "%f", value.Float32Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, float32(3.5), v)
	})

	t.Run("float64 slot", func(t *testing.T) {
		var v float64
		n, err := m.Scan("3.14", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.InDelta(t, 3.14, v, 1e-9)
	})

	t.Run("exponent scales", func(t *testing.T) {
		var v float64
		n, err := m.Scan("-2.5e3", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, -2500.0, v)
	})

	t.Run("negative exponent", func(t *testing.T) {
		var v float64
		n, err := m.Scan("1e-3", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.InDelta(t, 0.001, v, 1e-12)
	})

	t.Run("bare fraction", func(t *testing.T) {
		var v float64
		n, err := m.Scan(".5", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 0.5, v)
	})

	t.Run("trailing point", func(t *testing.T) {
		var v float64
		n, err := m.Scan("5.", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 5.0, v)
	})

	t.Run("lone point fails", func(t *testing.T) {
		var v float64
		n, err := m.Scan(".", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Zero(t, n)
		require.Zero(t, v)
	})

	t.Run("nan compares unequal to itself", func(t *testing.T) {
		var v float32
		n, err := m.Scan("nan", "%f", value.Float32Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.NotEqual(t, v, v) //nolint:testifylint // NaN identity is the point
	})

	t.Run("infinity aliases", func(t *testing.T) {
		var v float64
		n, err := m.Scan("INFINITY", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.True(t, math.IsInf(v, 1))

		n, err = m.Scan("-inf", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.True(t, math.IsInf(v, -1))
	})

	t.Run("hex mantissa", func(t *testing.T) {
		var v float64
		n, err := m.Scan("0x1f.8", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 31.5, v)
	})

	t.Run("exponent letter needs digits", func(t *testing.T) {
		var v float64
		var s string
		n, err := m.Scan("1e", "%lf%s", value.Float64Slot(&v), value.StringSlot(&s))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, 1.0, v)
		require.Equal(t, "e", s)
	})

	t.Run("exponent stops cleanly", func(t *testing.T) {
		var v float64
		var c byte
		n, err := m.Scan("2.5e2x", "%lf%c", value.Float64Slot(&v), value.ByteSlot(&c))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, 250.0, v)
		require.Equal(t, byte('x'), c)
	})

	t.Run("width cuts the exponent", func(t *testing.T) {
		var v float32
		n, err := m.Scan("1.5e2", "%4f", value.Float32Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, float32(1.5), v)
	})

	t.Run("overflow saturates to infinity", func(t *testing.T) {
		var v float64
		n, err := m.Scan("1e999", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.True(t, math.IsInf(v, 1))
	})

	t.Run("underflow collapses to zero", func(t *testing.T) {
		var v float64
		n, err := m.Scan("1e-999", "%lf", value.Float64Slot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Zero(t, v)
	})
}

func TestMatcher_Strings(t *testing.T) {
	m := mustMatcher(t)

	t.Run("two words", func(t *testing.T) {
		var a, b string
		n, err := m.Scan("hello world", "%s %s", value.StringSlot(&a), value.StringSlot(&b))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, "hello", a)
		require.Equal(t, "world", b)
	})

	t.Run("leading whitespace skipped", func(t *testing.T) {
		var s string
		n, err := m.Scan("  padded", "%s", value.StringSlot(&s))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, "padded", s)
	})

	t.Run("width splits the run", func(t *testing.T) {
		var a, b string
		n, err := m.Scan("abcdef", "%3s%s", value.StringSlot(&a), value.StringSlot(&b))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, "abc", a)
		require.Equal(t, "def", b)
	})

	t.Run("second word missing", func(t *testing.T) {
		var a, b string
		n, err := m.Scan("one", "%s%s", value.StringSlot(&a), value.StringSlot(&b))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, "one", a)
		require.Empty(t, b)
	})
}

func TestMatcher_Char(t *testing.T) {
	m := mustMatcher(t)

	t.Run("single byte", func(t *testing.T) {
		var c byte
		n, err := m.Scan("abc", "%c", value.ByteSlot(&c))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, byte('a'), c)
	})

	t.Run("whitespace not skipped", func(t *testing.T) {
		var c byte
		n, err := m.Scan(" x", "%c", value.ByteSlot(&c))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, byte(' '), c)
	})

	t.Run("width advances past extra bytes", func(t *testing.T) {
		var a, b byte
		n, err := m.Scan("abc", "%2c%c", value.ByteSlot(&a), value.ByteSlot(&b))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, byte('a'), a)
		require.Equal(t, byte('c'), b)
	})
}

func TestMatcher_PercentAndLiterals(t *testing.T) {
	m := mustMatcher(t)

	t.Run("percent literal", func(t *testing.T) {
		var d int
		var s string
		n, err := m.Scan("50% off", "%d%% %s", value.IntSlot(&d), value.StringSlot(&s))
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, 50, d)
		require.Equal(t, "off", s)
	})

	t.Run("percent mismatch stops without error", func(t *testing.T) {
		var d int
		n, err := m.Scan("50x", "%d%%", value.IntSlot(&d))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 50, d)
	})

	t.Run("percent skips whitespace", func(t *testing.T) {
		n, err := m.Scan("  %", "%%")
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("literal mismatch stops untouched", func(t *testing.T) {
		v := 5
		n, err := m.Scan("abc", "xyz%d", value.IntSlot(&v))
		require.NoError(t, err)
		require.Zero(t, n)
		require.Equal(t, 5, v)
	})

	t.Run("literal with embedded directive", func(t *testing.T) {
		var d int
		n, err := m.Scan("x=5", "x=%d", value.IntSlot(&d))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 5, d)
	})

	t.Run("format whitespace matches any run", func(t *testing.T) {
		var pos int
		n, err := m.Scan("a \t\n b", "a b%n", value.IntSlot(&pos))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 6, pos)
	})

	t.Run("trailing format whitespace matches nothing", func(t *testing.T) {
		n, err := m.Scan("ab", "ab \t")
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestMatcher_Count(t *testing.T) {
	m := mustMatcher(t)

	t.Run("suppressed value then position", func(t *testing.T) {
		var n int
		count, err := m.Scan("42", "%*d%n", value.IntSlot(&n))
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.Equal(t, 2, n)
	})

	t.Run("position includes skipped whitespace", func(t *testing.T) {
		var v, pos int
		count, err := m.Scan("  7 ", "%d%n", value.IntSlot(&v), value.IntSlot(&pos))
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.Equal(t, 7, v)
		require.Equal(t, 3, pos)
	})

	t.Run("no skip before the counter", func(t *testing.T) {
		var pos int
		count, err := m.Scan("ab  ", "ab%n", value.IntSlot(&pos))
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.Equal(t, 2, pos)
	})

	t.Run("length modifier picks the slot type", func(t *testing.T) {
		var v int
		var pos int64
		count, err := m.Scan("5", "%d%ln", value.IntSlot(&v), value.Int64Slot(&pos))
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.Equal(t, int64(1), pos)
	})

	t.Run("suppressed counter needs no slot", func(t *testing.T) {
		count, err := m.Scan("x", "x%*n")
		require.NoError(t, err)
		require.Zero(t, count)
	})
}

func TestMatcher_Suppression(t *testing.T) {
	m := mustMatcher(t)

	t.Run("suppressed integer", func(t *testing.T) {
		var v int
		n, err := m.Scan("10 20", "%*d %d", value.IntSlot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 20, v)
	})

	t.Run("suppressed char", func(t *testing.T) {
		var c byte
		n, err := m.Scan("ab", "%*c%c", value.ByteSlot(&c))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, byte('b'), c)
	})

	t.Run("suppressed float needs no slot", func(t *testing.T) {
		n, err := m.Scan("3.5", "%*f")
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestMatcher_EndOfInputPolicy(t *testing.T) {
	m := mustMatcher(t)

	t.Run("first directive on empty input", func(t *testing.T) {
		var v int
		n, err := m.Scan("", "%d", value.IntSlot(&v))
		require.ErrorIs(t, err, errs.ErrInputDepleted)
		require.Zero(t, n)
	})

	t.Run("whitespace only input", func(t *testing.T) {
		var v int
		n, err := m.Scan("   ", "%d", value.IntSlot(&v))
		require.ErrorIs(t, err, errs.ErrInputDepleted)
		require.Zero(t, n)
	})

	t.Run("char and string directives", func(t *testing.T) {
		var c byte
		n, err := m.Scan("", "%c", value.ByteSlot(&c))
		require.ErrorIs(t, err, errs.ErrInputDepleted)
		require.Zero(t, n)

		var s string
		n, err = m.Scan("", "%s", value.StringSlot(&s))
		require.ErrorIs(t, err, errs.ErrInputDepleted)
		require.Zero(t, n)
	})

	t.Run("later directive reports the count instead", func(t *testing.T) {
		var a, b int
		n, err := m.Scan("42", "%d %d", value.IntSlot(&a), value.IntSlot(&b))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 42, a)
	})

	t.Run("suppressed success does not disarm the sentinel", func(t *testing.T) {
		var v int
		n, err := m.Scan("5", "%*d%d", value.IntSlot(&v))
		require.ErrorIs(t, err, errs.ErrInputDepleted)
		require.Zero(t, n)
	})

	t.Run("literal mismatch is not depletion", func(t *testing.T) {
		var v int
		n, err := m.Scan("", "abc%d", value.IntSlot(&v))
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("match failure with input left is not depletion", func(t *testing.T) {
		var v int
		n, err := m.Scan("x", "%d", value.IntSlot(&v))
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("percent never reports depletion", func(t *testing.T) {
		n, err := m.Scan("", "%%")
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestMatcher_SlotErrors(t *testing.T) {
	m := mustMatcher(t)

	t.Run("wrong width class", func(t *testing.T) {
		var v int
		_, err := m.Scan("42", "%ld", value.IntSlot(&v))
		require.ErrorIs(t, err, errs.ErrSlotTypeMismatch)
	})

	t.Run("wider slot than directive", func(t *testing.T) {
		var v int64
		_, err := m.Scan("42", "%d", value.Int64Slot(&v))
		require.ErrorIs(t, err, errs.ErrSlotTypeMismatch)
	})

	t.Run("too few slots", func(t *testing.T) {
		var v int
		_, err := m.Scan("1 2", "%d %d", value.IntSlot(&v))
		require.ErrorIs(t, err, errs.ErrSlotExhausted)
	})

	t.Run("nil pointer", func(t *testing.T) {
		_, err := m.Scan("42", "%d", value.IntSlot(nil))
		require.ErrorIs(t, err, errs.ErrNilSlot)
	})

	t.Run("count reached survives the error", func(t *testing.T) {
		var a, b int
		n, err := m.Scan("1 2", "%d %ld", value.IntSlot(&a), value.IntSlot(&b))
		require.ErrorIs(t, err, errs.ErrSlotTypeMismatch)
		require.Equal(t, 1, n)
		require.Equal(t, 1, a)
	})

	t.Run("suppressed directive needs no slot", func(t *testing.T) {
		n, err := m.Scan("42", "%*d")
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestMatcher_UnknownKindStops(t *testing.T) {
	m := mustMatcher(t)

	var v int
	n, err := m.Scan("42 99", "%d %q %d", value.IntSlot(&v))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 42, v)
}

func TestMatcher_WithCache(t *testing.T) {
	cache := NewCache(8)
	m := mustMatcher(t, WithScanCache(cache))

	var v int
	for range 3 {
		n, err := m.Scan("7", "%d", value.IntSlot(&v))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, 7, v)
	}
	require.Equal(t, 1, cache.Len())
}

func TestEngines_RoundTrip(t *testing.T) {
	f := mustFormatter(t)
	m := mustMatcher(t)

	t.Run("signed decimal", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64} {
			out, err := f.Format("%ld", value.Int64(v))
			require.NoError(t, err)

			var got int64
			n, err := m.Scan(out, "%ld", value.Int64Slot(&got))
			require.NoError(t, err)
			require.Equal(t, 1, n)
			require.Equal(t, v, got)
		}
	})

	t.Run("unsigned bases", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 8, 255, 4096, math.MaxUint64} {
			for _, kind := range []string{"%lu", "%lo", "%lx", "%lX"} {
				out, err := f.Format(kind, value.Uint64(v))
				require.NoError(t, err)

				var got uint64
				n, err := m.Scan(out, kind, value.Uint64Slot(&got))
				require.NoError(t, err)
				require.Equal(t, 1, n)
				require.Equal(t, v, got, "kind %s text %q", kind, out)
			}
		}
	})

	t.Run("short extremes", func(t *testing.T) {
		for _, v := range []int16{0, 1, -1, math.MaxInt16, math.MinInt16} {
			out, err := f.Format("%hd", value.Int(int(v)))
			require.NoError(t, err)

			var got int16
			n, err := m.Scan(out, "%hd", value.Int16Slot(&got))
			require.NoError(t, err)
			require.Equal(t, 1, n)
			require.Equal(t, v, got)
		}
	})

	t.Run("char extremes through plain decimal", func(t *testing.T) {
		for _, v := range []int8{0, 1, -1, math.MaxInt8, math.MinInt8} {
			out, err := f.Format("%d", value.Int8(v))
			require.NoError(t, err)

			var got int8
			n, err := m.Scan(out, "%hhd", value.Int8Slot(&got))
			require.NoError(t, err)
			require.Equal(t, 1, n)
			require.Equal(t, v, got)
		}
	})

	t.Run("auto base follows alternate hex", func(t *testing.T) {
		out, err := f.Format("%#lx", value.Uint64(0x1f2e))
		require.NoError(t, err)
		require.Equal(t, "0x1f2e", out)

		var got int64
		n, err := m.Scan(out, "%li", value.Int64Slot(&got))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, int64(0x1f2e), got)
	})
}
