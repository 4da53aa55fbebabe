package numtext

import (
	"math"
	"strings"
)

// ParseFloat parses an optionally signed floating-point number from the
// start of s. It accepts the case-insensitive special words "nan", "inf"
// and "infinity", an optional "0x" prefix switching the mantissa to hex
// digits, a digit run with at most one point, and for decimal mantissas
// an exponent part. The value is built by plain multiply-accumulate and
// is not correctly rounded.
//
// The exponent marker is consumed only when a well-formed exponent
// follows (optional sign, then a digit); otherwise parsing ends before
// it. A field that contains no mantissa digit and no special word fails.
//
// Parameters:
//   - s: the input window; the caller applies any field width by slicing
//
// Returns:
//   - float64: the parsed value
//   - int: bytes consumed
//   - bool: whether the field was a valid number
func ParseFloat(s string) (float64, int, bool) {
	neg, pos := parseSign(s)
	sign := 1.0
	if neg {
		sign = -1.0
	}

	if v, n, ok := parseSpecial(s, pos); ok {
		return sign * v, n, true
	}

	base := 10.0
	allowExp := true
	if pos+1 < len(s) && s[pos] == '0' && (s[pos+1] == 'x' || s[pos+1] == 'X') && hasHexMantissa(s, pos+2) {
		base = 16.0
		allowExp = false
		pos += 2
	}

	v := 0.0
	div := 1.0
	sawDigit := false
	sawPoint := false
	for ; pos < len(s); pos++ {
		c := s[pos]
		if c == '.' && !sawPoint {
			sawPoint = true

			continue
		}

		d, valid := digitValue(c, int(base))
		if !valid {
			break
		}
		sawDigit = true

		v = v*base + float64(d)
		if sawPoint {
			div *= base
		}
	}
	if !sawDigit {
		return 0, pos, false
	}
	v /= div

	if allowExp {
		v, pos = applyExponent(v, s, pos)
	}

	return sign * v, pos, true
}

// parseSpecial matches the special words at pos, longest spelling first.
func parseSpecial(s string, pos int) (float64, int, bool) {
	rest := s[pos:]
	switch {
	case len(rest) >= 3 && strings.EqualFold(rest[:3], "nan"):
		return math.NaN(), pos + 3, true
	case len(rest) >= 8 && strings.EqualFold(rest[:8], "infinity"):
		return math.Inf(1), pos + 8, true
	case len(rest) >= 3 && strings.EqualFold(rest[:3], "inf"):
		return math.Inf(1), pos + 3, true
	default:
		return 0, pos, false
	}
}

// hasHexMantissa reports whether a hex digit, or a point followed by a
// hex digit, starts at pos. The "0x" prefix is consumed only in that
// case.
func hasHexMantissa(s string, pos int) bool {
	if pos < len(s) && s[pos] == '.' {
		pos++
	}
	if pos >= len(s) {
		return false
	}
	_, ok := digitValue(s[pos], 16)

	return ok
}

// applyExponent consumes a decimal exponent part if one follows and
// scales v by repeated powers of ten, short-circuiting once the value
// pins at zero or infinity.
func applyExponent(v float64, s string, pos int) (float64, int) {
	if pos >= len(s) || (s[pos] != 'e' && s[pos] != 'E') {
		return v, pos
	}

	// Look ahead past the marker and an optional sign; without a digit
	// there the marker is not part of the number.
	digitPos := pos + 1
	expNeg := false
	if digitPos < len(s) && (s[digitPos] == '+' || s[digitPos] == '-') {
		expNeg = s[digitPos] == '-'
		digitPos++
	}
	if digitPos >= len(s) {
		return v, pos
	}
	if _, ok := digitValue(s[digitPos], 10); !ok {
		return v, pos
	}

	exp := 0
	for pos = digitPos; pos < len(s); pos++ {
		d, ok := digitValue(s[pos], 10)
		if !ok {
			break
		}
		if exp < 100000 {
			exp = exp*10 + d
		}
	}

	for range exp {
		if v == 0 || math.IsInf(v, 0) {
			break
		}
		if expNeg {
			v /= 10
		} else {
			v *= 10
		}
	}

	return v, pos
}
