// Package directive implements the conversion directive grammar shared by
// the render and match engines.
//
// A directive is a '%' followed by optional flags, an optional width, an
// optional precision, an optional length modifier and a conversion
// character:
//
//	%[flags][width][.precision][length]kind
//
// The same grammar serves both engines. The render grammar additionally
// accepts '*' as a width or precision placeholder (the value is taken from
// the argument list); the match grammar additionally accepts '*' directly
// after '%' as assignment suppression and the doubled length modifiers
// "hh" and "ll".
package directive

// Flags is the bit set of the optional directive flags.
type Flags uint8

const (
	FlagMinus Flags = 0x01 // FlagMinus is '-', left justification.
	FlagPlus  Flags = 0x02 // FlagPlus is '+', explicit sign for signed conversions.
	FlagSpace Flags = 0x04 // FlagSpace is ' ', blank sign slot for signed conversions.
	FlagZero  Flags = 0x08 // FlagZero is '0', zero fill up to the field width.
	FlagSharp Flags = 0x10 // FlagSharp is '#', alternate form.
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Length is the optional length modifier of a directive.
type Length uint8

const (
	LengthNone     Length = 0x0 // LengthNone means no modifier was present.
	LengthChar     Length = 0x1 // LengthChar is "hh" (match grammar only).
	LengthShort    Length = 0x2 // LengthShort is "h".
	LengthLong     Length = 0x3 // LengthLong is "l".
	LengthLongLong Length = 0x4 // LengthLongLong is "ll" (match grammar only).
	LengthBig      Length = 0x5 // LengthBig is "L".
)

func (l Length) String() string {
	switch l {
	case LengthNone:
		return ""
	case LengthChar:
		return "hh"
	case LengthShort:
		return "h"
	case LengthLong:
		return "l"
	case LengthLongLong:
		return "ll"
	case LengthBig:
		return "L"
	default:
		return "Unknown"
	}
}

// Mode selects which grammar variant Parse applies.
type Mode uint8

const (
	ModeFormat Mode = 0x1 // ModeFormat is the render grammar.
	ModeMatch  Mode = 0x2 // ModeMatch is the match grammar.
)

func (m Mode) String() string {
	switch m {
	case ModeFormat:
		return "Format"
	case ModeMatch:
		return "Match"
	default:
		return "Unknown"
	}
}

// Width and precision values parsed from digit runs are clamped to this
// bound so a hostile format string cannot demand unbounded padding.
const (
	MaxWidth     = 1 << 20
	MaxPrecision = 1 << 20
)

// Directive is one parsed conversion directive.
//
// Width and Precision are -1 when unspecified; a precision of 0 (from a
// bare '.') is distinct from an unspecified one. WidthArg and PrecArg mark
// the render grammar's '*' placeholders, resolved from the argument list
// when the directive executes.
type Directive struct {
	Kind       Kind
	Flags      Flags
	Length     Length
	Width      int
	Precision  int
	WidthArg   bool
	PrecArg    bool
	Suppressed bool
}

// Parse consumes one directive from format starting at pos, which must
// index the first byte after '%'. It never fails: an unrecognized or
// missing conversion character yields a Directive with KindNone, and the
// engines stop processing there.
//
// Parameters:
//   - format: the full format string
//   - pos: index of the first byte after '%'
//   - mode: grammar variant to apply
//
// Returns:
//   - Directive: the parsed directive
//   - int: index of the first byte after the directive
func Parse(format string, pos int, mode Mode) (Directive, int) {
	d := Directive{Width: -1, Precision: -1}

	if mode == ModeMatch && pos < len(format) && format[pos] == '*' {
		d.Suppressed = true
		pos++
	}

	pos = d.parseFlags(format, pos)
	pos = d.parseWidth(format, pos, mode)
	pos = d.parsePrecision(format, pos, mode)
	pos = d.parseLength(format, pos, mode)
	pos = d.parseKind(format, pos)

	return d, pos
}

// parseFlags consumes '-', '+', ' ', '0' and '#' in any order and with
// harmless repetition.
func (d *Directive) parseFlags(format string, pos int) int {
	for ; pos < len(format); pos++ {
		switch format[pos] {
		case '-':
			d.Flags |= FlagMinus
		case '+':
			d.Flags |= FlagPlus
		case ' ':
			d.Flags |= FlagSpace
		case '0':
			d.Flags |= FlagZero
		case '#':
			d.Flags |= FlagSharp
		default:
			return pos
		}
	}

	return pos
}

func (d *Directive) parseWidth(format string, pos int, mode Mode) int {
	if pos >= len(format) {
		return pos
	}

	if mode == ModeFormat && format[pos] == '*' {
		d.WidthArg = true
		return pos + 1
	}

	if w, next, ok := parseDigits(format, pos, MaxWidth); ok {
		d.Width = w
		return next
	}

	return pos
}

func (d *Directive) parsePrecision(format string, pos int, mode Mode) int {
	if pos >= len(format) || format[pos] != '.' {
		return pos
	}
	pos++

	if mode == ModeFormat && pos < len(format) && format[pos] == '*' {
		d.PrecArg = true
		return pos + 1
	}

	// A bare '.' means precision zero.
	d.Precision = 0
	if p, next, ok := parseDigits(format, pos, MaxPrecision); ok {
		d.Precision = p
		return next
	}

	return pos
}

// parseLength consumes at most one length modifier. The doubled forms are
// recognized only by the match grammar; in the render grammar a second
// 'h' or 'l' fails the conversion-character parse and stops the engine.
func (d *Directive) parseLength(format string, pos int, mode Mode) int {
	if pos >= len(format) {
		return pos
	}

	if mode == ModeMatch && pos+1 < len(format) {
		switch format[pos : pos+2] {
		case "hh":
			d.Length = LengthChar
			return pos + 2
		case "ll":
			d.Length = LengthLongLong
			return pos + 2
		}
	}

	switch format[pos] {
	case 'h':
		d.Length = LengthShort
	case 'l':
		d.Length = LengthLong
	case 'L':
		d.Length = LengthBig
	default:
		return pos
	}

	return pos + 1
}

func (d *Directive) parseKind(format string, pos int) int {
	if pos >= len(format) {
		return pos
	}

	if k := KindOf(format[pos]); k != KindNone {
		d.Kind = k
		return pos + 1
	}

	return pos
}

// parseDigits consumes a decimal digit run, clamping the value at limit.
func parseDigits(format string, pos int, limit int) (value int, next int, ok bool) {
	start := pos
	for pos < len(format) && format[pos] >= '0' && format[pos] <= '9' {
		if value < limit {
			value = value*10 + int(format[pos]-'0')
			if value > limit {
				value = limit
			}
		}
		pos++
	}

	return value, pos, pos > start
}
