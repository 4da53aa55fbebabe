package numtext

import "math"

// Special returns the text for non-finite values, "nan" or "inf" (upper
// case when upper is set), and true. Finite values return "" and false.
// The sign is the caller's concern.
func Special(v float64, upper bool) (string, bool) {
	switch {
	case math.IsNaN(v):
		if upper {
			return "NAN", true
		}

		return "nan", true
	case math.IsInf(v, 0):
		if upper {
			return "INF", true
		}

		return "inf", true
	default:
		return "", false
	}
}

// decompose splits a finite positive float into mantissa and binary
// exponent with v = mant * 2**exp.
func decompose(v float64) (mant uint64, exp int) {
	const (
		mantBits = 52
		expBits  = 11
		bias     = 1023
	)

	bits := math.Float64bits(v)
	mant = bits & (1<<mantBits - 1)
	e := int(bits >> mantBits & (1<<expBits - 1))
	if e == 0 {
		e++ // denormal
	} else {
		mant |= 1 << mantBits
	}

	return mant, e - bias - mantBits
}

// expand loads the exact decimal expansion of v into d.
func expand(d *decimal, v float64) {
	if v == 0 {
		d.nd = 0
		d.dp = 0
		d.trunc = false

		return
	}

	mant, exp := decompose(v)
	d.assign(mant)
	d.shift(exp)
}

// AppendFixed appends v in fixed notation with prec digits after the
// point, correctly rounded. v must be finite and non-negative; the sign
// is the caller's concern. The point is dropped at zero precision unless
// alt keeps it.
func AppendFixed(dst []byte, v float64, prec int, alt bool) []byte {
	var d decimal
	expand(&d, v)

	keep := d.dp + prec
	if keep < 0 {
		// Below half the last rendered place; rounds to zero.
		d.nd = 0
	} else {
		d.round(keep)
	}

	return appendFixedDigits(dst, &d, prec, prec, alt)
}

// appendFixedDigits emits the integer part, then frac fraction digits
// (zero padded toward padTo when alt demands full precision).
func appendFixedDigits(dst []byte, d *decimal, frac, padTo int, alt bool) []byte {
	if d.dp > 0 {
		for i := 0; i < d.dp; i++ {
			dst = append(dst, d.digitAt(i))
		}
	} else {
		dst = append(dst, '0')
	}

	if frac > 0 || alt {
		dst = append(dst, '.')
		n := frac
		if alt && padTo > n {
			n = padTo
		}
		for i := 0; i < n; i++ {
			dst = append(dst, d.digitAt(d.dp+i))
		}
	}

	return dst
}

// AppendSci appends v in exponential notation with prec digits after the
// point and a signed exponent of at least two digits, correctly rounded.
// v must be finite and non-negative. upper selects 'E'; alt keeps the
// point at zero precision.
func AppendSci(dst []byte, v float64, prec int, upper, alt bool) []byte {
	var d decimal
	expand(&d, v)
	d.round(prec + 1)

	dst = append(dst, d.digitAt(0))
	if prec > 0 || alt {
		dst = append(dst, '.')
		for i := 1; i <= prec; i++ {
			dst = append(dst, d.digitAt(i))
		}
	}

	return appendExponent(dst, sciExponent(&d), upper)
}

// sciExponent is the power of ten of the leading digit; zero reports 0.
func sciExponent(d *decimal) int {
	if d.nd == 0 {
		return 0
	}

	return d.dp - 1
}

// appendExponent renders the exponent marker, an explicit sign and at
// least two digits.
func appendExponent(dst []byte, exp int, upper bool) []byte {
	if upper {
		dst = append(dst, 'E')
	} else {
		dst = append(dst, 'e')
	}

	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else {
		dst = append(dst, '+')
	}
	if exp < 10 {
		dst = append(dst, '0')
	}

	return AppendUint(dst, uint64(exp), 10, false)
}

// AppendGeneral appends v in general notation with prec significant
// digits: fixed form when the decimal exponent e of the unrounded
// magnitude satisfies -4 < e < prec, exponential form otherwise.
// Trailing fractional zeros and a bare trailing point are stripped
// unless alt keeps the full precision. v must be finite and
// non-negative; prec below one is raised to one.
func AppendGeneral(dst []byte, v float64, prec int, upper, alt bool) []byte {
	if prec < 1 {
		prec = 1
	}

	var d decimal
	expand(&d, v)

	if exp := sciExponent(&d); -4 < exp && exp < prec {
		return appendGeneralFixed(dst, &d, prec-1-exp, alt)
	}

	return appendGeneralSci(dst, &d, prec-1, upper, alt)
}

func appendGeneralFixed(dst []byte, d *decimal, prec int, alt bool) []byte {
	// prec counts fraction digits and was derived from the exponent, so
	// the significant digit count dp+prec is never negative here.
	d.round(d.dp + prec)

	// Rounding trims trailing zeros, so the stored digits past the point
	// are exactly the fraction to keep.
	frac := d.nd - d.dp
	if frac < 0 {
		frac = 0
	}

	return appendFixedDigits(dst, d, frac, prec, alt)
}

func appendGeneralSci(dst []byte, d *decimal, prec int, upper, alt bool) []byte {
	d.round(prec + 1)

	dst = append(dst, d.digitAt(0))
	if alt {
		dst = append(dst, '.')
		for i := 1; i <= prec; i++ {
			dst = append(dst, d.digitAt(i))
		}
	} else if d.nd > 1 {
		dst = append(dst, '.')
		for i := 1; i < d.nd; i++ {
			dst = append(dst, d.d[i])
		}
	}

	return appendExponent(dst, sciExponent(d), upper)
}
