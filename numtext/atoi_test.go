package numtext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSigned_Decimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value int64
		n     int
		ok    bool
	}{
		{"plain", "42", 42, 2, true},
		{"negative", "-42", -42, 3, true},
		{"explicit plus", "+7", 7, 2, true},
		{"zero", "0", 0, 1, true},
		{"stops at non digit", "123abc", 123, 3, true},
		{"sign only", "-", 0, 1, false},
		{"empty", "", 0, 0, false},
		{"no digits", "abc", 0, 0, false},
		{"max int64", "9223372036854775807", math.MaxInt64, 19, true},
		{"min int64", "-9223372036854775808", math.MinInt64, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n, ok := ParseSigned(tt.input, 10)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.value, v)
			require.Equal(t, tt.n, n)
		})
	}
}

func TestParseSigned_Saturation(t *testing.T) {
	t.Run("Positive overflow clamps to max", func(t *testing.T) {
		v, n, ok := ParseSigned("99999999999999999999", 10)
		require.True(t, ok)
		require.Equal(t, int64(math.MaxInt64), v)
		// Every digit is consumed even after clamping.
		require.Equal(t, 20, n)
	})

	t.Run("Negative overflow clamps to min", func(t *testing.T) {
		v, n, ok := ParseSigned("-99999999999999999999", 10)
		require.True(t, ok)
		require.Equal(t, int64(math.MinInt64), v)
		require.Equal(t, 21, n)
	})

	t.Run("One past max clamps", func(t *testing.T) {
		v, _, ok := ParseSigned("9223372036854775808", 10)
		require.True(t, ok)
		require.Equal(t, int64(math.MaxInt64), v)
	})

	t.Run("Min magnitude is not an overflow when negative", func(t *testing.T) {
		v, _, ok := ParseSigned("-9223372036854775808", 10)
		require.True(t, ok)
		require.Equal(t, int64(math.MinInt64), v)
	})
}

func TestParseUnsigned(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		v, n, ok := ParseUnsigned("18446744073709551615", 10)
		require.True(t, ok)
		require.Equal(t, uint64(math.MaxUint64), v)
		require.Equal(t, 20, n)
	})

	t.Run("Overflow clamps", func(t *testing.T) {
		v, _, ok := ParseUnsigned("18446744073709551616", 10)
		require.True(t, ok)
		require.Equal(t, uint64(math.MaxUint64), v)
	})

	t.Run("Negative wraps", func(t *testing.T) {
		v, _, ok := ParseUnsigned("-5", 10)
		require.True(t, ok)
		require.Equal(t, uint64(math.MaxUint64)-4, v)
	})

	t.Run("Saturated negative clamps without wrapping", func(t *testing.T) {
		v, _, ok := ParseUnsigned("-99999999999999999999", 10)
		require.True(t, ok)
		require.Equal(t, uint64(math.MaxUint64), v)
	})
}

func TestParseSigned_Bases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  int
		value int64
		n     int
	}{
		{"hex with prefix", "0x1A", 16, 26, 4},
		{"hex upper prefix", "0X1a", 16, 26, 4},
		{"hex without prefix", "ff", 16, 255, 2},
		{"negative hex", "-0xff", 16, -255, 5},
		{"octal", "17", 8, 15, 2},
		{"octal stops at eight", "0189", 8, 1, 2},
		{"auto decimal", "42", AutoBase, 42, 2},
		{"auto octal", "017", AutoBase, 15, 3},
		{"auto hex", "0x10", AutoBase, 16, 4},
		{"auto lone zero", "0", AutoBase, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n, ok := ParseSigned(tt.input, tt.base)
			require.True(t, ok)
			require.Equal(t, tt.value, v)
			require.Equal(t, tt.n, n)
		})
	}

	t.Run("Prefix needs a following hex digit", func(t *testing.T) {
		// "0x" with nothing behind it parses as a zero followed by an
		// unread 'x'.
		v, n, ok := ParseSigned("0xg", AutoBase)
		require.True(t, ok)
		require.Equal(t, int64(0), v)
		require.Equal(t, 1, n)
	})
}

func TestParseUnsigned_HexPointerForm(t *testing.T) {
	v, n, ok := ParseUnsigned("0x7fff5fbff8c0", 16)
	require.True(t, ok)
	require.Equal(t, uint64(0x7fff5fbff8c0), v)
	require.Equal(t, 14, n)
}
