package engine

import (
	"fmt"
	"math"

	"github.com/arloliu/textfmt/directive"
	"github.com/arloliu/textfmt/errs"
	"github.com/arloliu/textfmt/internal/options"
	"github.com/arloliu/textfmt/internal/pool"
	"github.com/arloliu/textfmt/numtext"
	"github.com/arloliu/textfmt/value"
)

// Formatter renders format strings against typed argument lists.
//
// A Formatter holds no per-call state and is safe for concurrent use by
// multiple goroutines. Rendering stops silently at the first directive
// with an unrecognized conversion character; everything produced up to
// that point is returned.
type Formatter struct {
	*FormatterConfig
}

// NewFormatter creates a Formatter with the provided options.
//
// Parameters:
//   - opts: optional configuration (e.g. WithFormatCache)
//
// Returns:
//   - *Formatter: the configured formatter
//   - error: configuration error, if any
func NewFormatter(opts ...FormatterOption) (*Formatter, error) {
	cfg := NewFormatterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Formatter{FormatterConfig: cfg}, nil
}

// Format renders format against args and returns the resulting text.
//
// Argument errors (too few arguments, or an argument whose class does not
// fit its directive) return the partial output rendered so far together
// with a wrapped errs.ErrArgExhausted or errs.ErrArgTypeMismatch.
//
// Parameters:
//   - format: format string with literal text and % directives
//   - args: typed argument values consumed left to right
//
// Returns:
//   - string: rendered text, possibly partial on error
//   - error: nil on success
func (f *Formatter) Format(format string, args ...value.Value) (string, error) {
	buf := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(buf)

	out, err := f.AppendFormat(buf.B, format, args...)
	buf.B = out

	return string(out), err
}

// AppendFormat renders format against args and appends the resulting text
// to dst, returning the extended slice. It is the allocation-conscious
// variant of Format.
func (f *Formatter) AppendFormat(dst []byte, format string, args ...value.Value) ([]byte, error) {
	return f.execute(f.program(format), dst, args)
}

// Render renders a pre-compiled program. Callers that manage their own
// programs bypass both the cache and the parser.
func (f *Formatter) Render(prog *directive.Program, dst []byte, args ...value.Value) ([]byte, error) {
	return f.execute(prog, dst, args)
}

func (f *Formatter) program(format string) *directive.Program {
	if f.cache != nil {
		return f.cache.Program(format, directive.ModeFormat)
	}

	return directive.Compile(format, directive.ModeFormat)
}

// renderState tracks argument consumption across one execute call.
type renderState struct {
	args []value.Value
	idx  int
}

// next consumes the next argument and verifies its class against the
// directive's accepted set.
func (st *renderState) next(kind directive.Kind, want ...value.Class) (value.Value, error) {
	if st.idx >= len(st.args) {
		return value.Value{}, fmt.Errorf("%w: directive %%%c wants argument %d, got %d",
			errs.ErrArgExhausted, kind.Byte(), st.idx+1, len(st.args))
	}

	v := st.args[st.idx]
	st.idx++
	for _, class := range want {
		if v.Class() == class {
			return v, nil
		}
	}

	return value.Value{}, fmt.Errorf("%w: directive %%%c cannot take a %s argument",
		errs.ErrArgTypeMismatch, kind.Byte(), v.Class())
}

func (f *Formatter) execute(prog *directive.Program, dst []byte, args []value.Value) ([]byte, error) {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	st := renderState{args: args}
	start := len(dst)

	for i := range prog.Segments {
		seg := &prog.Segments[i]
		if !seg.IsDirective {
			dst = append(dst, seg.Text...)
			continue
		}
		if seg.Dir.Kind == directive.KindNone {
			break
		}

		var err error
		dst, err = f.render(dst, scratch, seg.Dir, &st, len(dst)-start)
		if err != nil {
			return dst, err
		}
	}

	return dst, nil
}

// render executes a single directive. produced is the byte count rendered
// so far in this call, reported by %n.
func (f *Formatter) render(dst []byte, scratch *pool.ByteBuffer, dir directive.Directive, st *renderState, produced int) ([]byte, error) {
	if err := resolveStars(&dir, st); err != nil {
		return dst, err
	}

	scratch.Reset()
	head := 0

	switch kind := dir.Kind; {
	case kind == directive.KindPercent:
		scratch.MustWriteByte('%')

	case kind == directive.KindChar:
		v, err := st.next(kind, value.ClassRune, value.ClassInt)
		if err != nil {
			return dst, err
		}
		scratch.MustWriteByte(byte(v.AsInt()))

	case kind == directive.KindString:
		v, err := st.next(kind, value.ClassString)
		if err != nil {
			return dst, err
		}
		s := v.AsStr()
		if dir.Precision >= 0 && dir.Precision < len(s) {
			s = s[:dir.Precision]
		}
		scratch.MustWriteString(s)

	case kind == directive.KindCount:
		v, err := st.next(kind, value.ClassCount)
		if err != nil {
			return dst, err
		}
		counter := v.AsCount()
		if counter == nil {
			return dst, fmt.Errorf("%w: directive %%n got a nil counter", errs.ErrArgTypeMismatch)
		}
		*counter = produced

		// %n renders nothing; width and flags do not apply.
		return dst, nil

	case kind.IsSigned():
		v, err := st.next(kind, value.ClassInt, value.ClassRune)
		if err != nil {
			return dst, err
		}
		n := narrowSigned(v.AsInt(), dir.Length)
		mag := uint64(n)
		if n < 0 {
			mag = -mag
		}
		head = appendIntBody(scratch, dir, n < 0, mag)

	case kind.IsUnsigned():
		v, err := st.next(kind, value.ClassUint)
		if err != nil {
			return dst, err
		}
		head = appendIntBody(scratch, dir, false, narrowUnsigned(v.AsUint(), dir.Length))

	case kind == directive.KindPointer:
		v, err := st.next(kind, value.ClassPointer)
		if err != nil {
			return dst, err
		}
		head = appendIntBody(scratch, dir, false, uint64(v.AsUintptr()))

	case kind.IsFloat():
		v, err := st.next(kind, value.ClassFloat)
		if err != nil {
			return dst, err
		}
		head = appendFloatBody(scratch, dir, v.AsFloat())
	}

	zero := dir.Flags.Has(directive.FlagZero) && !dir.Flags.Has(directive.FlagMinus)

	return appendPadded(dst, scratch.Bytes(), dir.Width, head, dir.Flags.Has(directive.FlagMinus), zero), nil
}

// resolveStars replaces '*' width and precision placeholders with values
// pulled from the argument list. A negative width turns on left
// justification; a negative precision counts as unspecified.
func resolveStars(dir *directive.Directive, st *renderState) error {
	if dir.WidthArg {
		v, err := st.next(dir.Kind, value.ClassInt, value.ClassRune)
		if err != nil {
			return err
		}
		w := v.AsInt()
		if w < 0 {
			dir.Flags |= directive.FlagMinus
			if w < -directive.MaxWidth {
				w = -directive.MaxWidth
			}
			w = -w
		} else if w > directive.MaxWidth {
			w = directive.MaxWidth
		}
		dir.Width = int(w)
	}

	if dir.PrecArg {
		v, err := st.next(dir.Kind, value.ClassInt, value.ClassRune)
		if err != nil {
			return err
		}
		p := v.AsInt()
		if p < 0 {
			p = -1
		} else if p > directive.MaxPrecision {
			p = directive.MaxPrecision
		}
		dir.Precision = int(p)
	}

	return nil
}

// narrowSigned applies the length modifier to a signed argument before
// rendering.
func narrowSigned(v int64, length directive.Length) int64 {
	if length == directive.LengthShort {
		return int64(int16(v))
	}

	return v
}

// narrowUnsigned applies the length modifier to an unsigned argument
// before rendering.
func narrowUnsigned(v uint64, length directive.Length) uint64 {
	if length == directive.LengthShort {
		return uint64(uint16(v))
	}

	return v
}

// appendIntBody writes sign, base prefix, precision zeros and digits into
// buf and reports the head length (sign plus prefix) that zero fill must
// skip over.
func appendIntBody(buf *pool.ByteBuffer, dir directive.Directive, neg bool, mag uint64) int {
	var tmp [24]byte
	digits := numtext.AppendUint(tmp[:0], mag, dir.Kind.Base(), dir.Kind.IsUpper())

	// Precision 0 with magnitude 0 renders no digits at all.
	if dir.Precision == 0 && mag == 0 {
		digits = digits[:0]
	}

	zeros := 0
	if dir.Precision > len(digits) {
		zeros = dir.Precision - len(digits)
	}

	sign := signChar(dir.Flags, neg)
	alt := dir.Flags.Has(directive.FlagSharp)

	prefix := ""
	octZero := false
	switch dir.Kind {
	case directive.KindPointer:
		prefix = "0x"
	case directive.KindHex:
		if alt {
			prefix = "0x"
		}
	case directive.KindHexUp:
		if alt {
			prefix = "0X"
		}
	case directive.KindOct:
		// Alternate form guarantees a leading zero digit.
		leadingZero := zeros > 0 || (len(digits) > 0 && digits[0] == '0')
		octZero = alt && !leadingZero
	}

	head := 0
	if sign != 0 {
		buf.MustWriteByte(sign)
		head++
	}
	buf.MustWriteString(prefix)
	head += len(prefix)

	if octZero {
		buf.MustWriteByte('0')
	}
	for i := 0; i < zeros; i++ {
		buf.MustWriteByte('0')
	}
	buf.MustWrite(digits)

	return head
}

// appendFloatBody writes sign and digits into buf and reports the head
// length that zero fill must skip over.
func appendFloatBody(buf *pool.ByteBuffer, dir directive.Directive, v float64) int {
	upper := dir.Kind.IsUpper()
	alt := dir.Flags.Has(directive.FlagSharp)

	if text, ok := numtext.Special(v, upper); ok {
		if math.IsNaN(v) {
			// NaN never carries a sign.
			buf.MustWriteString(text)

			return 0
		}

		head := 0
		if sign := signChar(dir.Flags, math.Signbit(v)); sign != 0 {
			buf.MustWriteByte(sign)
			head++
		}
		buf.MustWriteString(text)

		return head
	}

	prec := dir.Precision
	if prec < 0 {
		prec = 6
	}

	head := 0
	if sign := signChar(dir.Flags, math.Signbit(v)); sign != 0 {
		buf.MustWriteByte(sign)
		head++
	}

	mag := math.Abs(v)
	switch dir.Kind {
	case directive.KindFixed:
		buf.B = numtext.AppendFixed(buf.B, mag, prec, alt)
	case directive.KindSci, directive.KindSciUp:
		buf.B = numtext.AppendSci(buf.B, mag, prec, upper, alt)
	default:
		buf.B = numtext.AppendGeneral(buf.B, mag, prec, upper, alt)
	}

	return head
}

// signChar picks the sign byte for a numeric body, or 0 for none.
func signChar(flags directive.Flags, neg bool) byte {
	switch {
	case neg:
		return '-'
	case flags.Has(directive.FlagPlus):
		return '+'
	case flags.Has(directive.FlagSpace):
		return ' '
	default:
		return 0
	}
}

const (
	padSpaces = "                "
	padZeros  = "0000000000000000"
)

// appendPadded writes body into dst honoring the field width. Zero fill
// goes between the head (sign and base prefix) and the digits.
func appendPadded(dst []byte, body []byte, width, head int, left, zero bool) []byte {
	pad := width - len(body)
	if pad <= 0 {
		return append(dst, body...)
	}

	switch {
	case left:
		dst = append(dst, body...)
		dst = appendRepeat(dst, padSpaces, pad)
	case zero:
		dst = append(dst, body[:head]...)
		dst = appendRepeat(dst, padZeros, pad)
		dst = append(dst, body[head:]...)
	default:
		dst = appendRepeat(dst, padSpaces, pad)
		dst = append(dst, body...)
	}

	return dst
}

func appendRepeat(dst []byte, chunk string, n int) []byte {
	for n > len(chunk) {
		dst = append(dst, chunk...)
		n -= len(chunk)
	}

	return append(dst, chunk[:n]...)
}
