package numtext

// decimal holds the exact decimal expansion of a binary floating-point
// magnitude: value = 0.d[0:nd] * 10^dp, digits stored as ASCII with no
// trailing zeros. 800 digits cover the longest exact float64 expansion
// (the smallest denormals need 767 significant digits); anything beyond
// capacity is dropped with the sticky trunc flag so rounding still sees
// it.
type decimal struct {
	d     [800]byte
	nd    int
	dp    int
	trunc bool
}

// maxShift bounds the bit count moved per shift pass so the in-flight
// accumulator stays far below 64 bits.
const maxShift = 28

// assign resets d to the exact value of mant.
func (d *decimal) assign(mant uint64) {
	d.nd = 0
	d.trunc = false

	var buf [20]byte
	n := 0
	for mant > 0 {
		buf[n] = byte(mant%10) + '0'
		mant /= 10
		n++
	}

	for i := n - 1; i >= 0; i-- {
		d.d[d.nd] = buf[i]
		d.nd++
	}
	d.dp = d.nd
	d.trimTrailingZeros()
}

// shift multiplies the value by 2**k (k may be negative), preserving
// exactness up to capacity.
func (d *decimal) shift(k int) {
	switch {
	case d.nd == 0:
		// Zero stays zero.
	case k > 0:
		for k > maxShift {
			d.leftShift(maxShift)
			k -= maxShift
		}
		d.leftShift(uint(k))
	case k < 0:
		for k < -maxShift {
			d.rightShift(maxShift)
			k += maxShift
		}
		d.rightShift(uint(-k))
	}
}

// rightShift divides the value by 2**k, extending the digit string to the
// right as remainders propagate.
func (d *decimal) rightShift(k uint) {
	r := 0 // read index
	w := 0 // write index

	// Pull digits until the accumulator is large enough to emit.
	n := uint64(0)
	for ; n>>k == 0; r++ {
		if r >= d.nd {
			if n == 0 {
				d.nd = 0
				return
			}
			for n>>k == 0 {
				n = n * 10
				r++
			}
			break
		}
		n = n*10 + uint64(d.d[r]-'0')
	}
	d.dp -= r - 1

	mask := uint64(1)<<k - 1

	for ; r < d.nd; r++ {
		dig := n >> k
		n &= mask
		d.d[w] = byte(dig) + '0'
		w++
		n = n*10 + uint64(d.d[r]-'0')
	}

	// Drain the accumulator.
	for n > 0 {
		dig := n >> k
		n &= mask
		if w < len(d.d) {
			d.d[w] = byte(dig) + '0'
			w++
		} else if dig > 0 {
			d.trunc = true
		}
		n = n * 10
	}

	d.nd = w
	d.trimTrailingZeros()
}

// leftShift multiplies the value by 2**k. Digits are written back to
// front into a window widened by the worst-case digit growth; the unused
// leading slack is closed afterwards.
func (d *decimal) leftShift(k uint) {
	// 2**28 has 9 digits, so at most 9 digits are prepended per pass.
	const maxDelta = 9

	r := d.nd - 1        // read index
	w := d.nd + maxDelta // write index, one past

	n := uint64(0)
	for ; r >= 0; r-- {
		n += uint64(d.d[r]-'0') << k
		quo := n / 10
		w--
		d.setDigit(w, byte(n-10*quo)+'0')
		n = quo
	}
	for n > 0 {
		quo := n / 10
		w--
		d.setDigit(w, byte(n-10*quo)+'0')
		n = quo
	}

	// The product's digits occupy [w, nd+maxDelta), clipped to capacity.
	trueNd := d.nd + maxDelta - w
	stored := trueNd
	if d.nd+maxDelta > len(d.d) {
		stored = len(d.d) - w
	}
	copy(d.d[0:stored], d.d[w:w+stored])
	d.dp += trueNd - d.nd
	d.nd = stored
	d.trimTrailingZeros()
}

// setDigit stores c at index i, dropping digits past capacity into the
// sticky flag.
func (d *decimal) setDigit(i int, c byte) {
	if i < len(d.d) {
		d.d[i] = c
	} else if c != '0' {
		d.trunc = true
	}
}

func (d *decimal) trimTrailingZeros() {
	for d.nd > 0 && d.d[d.nd-1] == '0' {
		d.nd--
	}
	if d.nd == 0 {
		d.dp = 0
		d.trunc = false
	}
}

// shouldRoundUp decides rounding at digit position keep (0 <= keep < nd).
// Past-the-half rounds up; the exact-half tie rounds to the even neighbor.
// The sticky trunc flag breaks ties introduced by capacity truncation.
func (d *decimal) shouldRoundUp(keep int) bool {
	if keep >= d.nd {
		return false
	}

	switch {
	case d.d[keep] > '5':
		return true
	case d.d[keep] < '5':
		return false
	}

	if d.trunc {
		return true
	}
	for i := keep + 1; i < d.nd; i++ {
		if d.d[i] != '0' {
			return true
		}
	}

	// Exact tie: round up only when the kept digit is odd. Keeping zero
	// digits means the kept place holds an implicit even zero.
	return keep > 0 && (d.d[keep-1]-'0')%2 == 1
}

// round keeps at most keep significant digits, correctly rounded.
// keep must be >= 0; keeping zero digits leaves either zero or, on a
// round-up, a single unit in the next place.
func (d *decimal) round(keep int) {
	if keep >= d.nd {
		return
	}
	if d.shouldRoundUp(keep) {
		d.roundUp(keep)
	} else {
		d.nd = keep
		d.trimTrailingZeros()
	}
	d.trunc = false
}

func (d *decimal) roundUp(keep int) {
	for i := keep - 1; i >= 0; i-- {
		if d.d[i] != '9' {
			d.d[i]++
			d.nd = i + 1
			return
		}
	}

	// All nines: the carry creates a new leading digit.
	d.d[0] = '1'
	d.nd = 1
	d.dp++
}

// digitAt returns the digit at decimal position i (0 is the first digit
// of the 0.D mantissa), '0' outside the stored range.
func (d *decimal) digitAt(i int) byte {
	if i < 0 || i >= d.nd {
		return '0'
	}

	return d.d[i]
}
