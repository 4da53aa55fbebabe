package numtext

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// AppendUint appends the base-b digits of v to dst and returns the
// extended slice. No sign, prefix or padding is emitted; callers layer
// those on. base must be 8, 10 or 16; upper selects the hex digit case.
func AppendUint(dst []byte, v uint64, base int, upper bool) []byte {
	set := lowerDigits
	if upper {
		set = upperDigits
	}

	// Digits fall out least significant first; stage them back to front
	// in a fixed buffer. 22 octal digits cover MaxUint64.
	var buf [22]byte
	i := len(buf)
	b := uint64(base)
	for {
		i--
		buf[i] = set[v%b]
		v /= b
		if v == 0 {
			break
		}
	}

	return append(dst, buf[i:]...)
}
