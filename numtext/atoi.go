package numtext

import "math"

// AutoBase selects the numeral base from the text itself: a "0x" prefix
// means 16, a remaining leading '0' means 8, anything else 10.
const AutoBase = 0

// ParseSigned parses an optionally signed integer from the start of s,
// saturating at the int64 range boundaries instead of wrapping. Digits
// past the saturation point are still consumed so the reported length
// covers the whole run.
//
// Parameters:
//   - s: the input window; the caller applies any field width by slicing
//   - base: 8, 10, 16 or AutoBase
//
// Returns:
//   - int64: the parsed value, clamped to [math.MinInt64, math.MaxInt64]
//   - int: bytes consumed, including sign and base prefix
//   - bool: whether at least one digit was consumed
func ParseSigned(s string, base int) (int64, int, bool) {
	neg, pos := parseSign(s)

	limit := uint64(math.MaxInt64)
	if neg {
		limit = uint64(math.MaxInt64) + 1
	}

	mag, full, n, ok := parseMagnitude(s, pos, base, limit)
	if !ok {
		return 0, n, false
	}

	switch {
	case full && neg:
		return math.MinInt64, n, true
	case full:
		return math.MaxInt64, n, true
	case neg:
		return -int64(mag), n, true
	default:
		return int64(mag), n, true
	}
}

// ParseUnsigned parses an optionally signed integer from the start of s,
// saturating at the uint64 range boundary. A negative in-range value
// wraps to its two's complement; a saturated value clamps regardless of
// sign. The parameters and results mirror ParseSigned.
func ParseUnsigned(s string, base int) (uint64, int, bool) {
	neg, pos := parseSign(s)

	mag, full, n, ok := parseMagnitude(s, pos, base, math.MaxUint64)
	if !ok {
		return 0, n, false
	}

	switch {
	case full:
		return math.MaxUint64, n, true
	case neg:
		return -mag, n, true
	default:
		return mag, n, true
	}
}

func parseSign(s string) (neg bool, pos int) {
	if len(s) == 0 {
		return false, 0
	}

	switch s[0] {
	case '-':
		return true, 1
	case '+':
		return false, 1
	default:
		return false, 0
	}
}

// parseMagnitude accumulates digits starting at pos, resolving AutoBase
// and consuming any base prefix first. full reports that the magnitude
// clamped at limit.
func parseMagnitude(s string, pos int, base int, limit uint64) (mag uint64, full bool, n int, ok bool) {
	base, pos = resolveBase(s, pos, base)

	b := uint64(base)
	digits := 0
	for ; pos < len(s); pos++ {
		d, valid := digitValue(s[pos], base)
		if !valid {
			break
		}
		digits++

		if full {
			continue
		}
		if mag > (limit-uint64(d))/b {
			mag = limit
			full = true

			continue
		}
		mag = mag*b + uint64(d)
	}

	return mag, full, pos, digits > 0
}

// resolveBase consumes an optional base prefix and resolves AutoBase.
// A "0x" prefix is consumed only when a hex digit follows; a leading '0'
// switches AutoBase to octal and stays in the digit stream.
func resolveBase(s string, pos int, base int) (int, int) {
	if base != AutoBase && base != 16 {
		return base, pos
	}

	if pos < len(s) && s[pos] == '0' {
		if pos+1 < len(s) && (s[pos+1] == 'x' || s[pos+1] == 'X') && hasHexDigit(s, pos+2) {
			return 16, pos + 2
		}
		if base == AutoBase {
			return 8, pos
		}
	}

	if base == AutoBase {
		return 10, pos
	}

	return base, pos
}

func hasHexDigit(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	_, ok := digitValue(s[pos], 16)

	return ok
}

func digitValue(c byte, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}

	return d, true
}
