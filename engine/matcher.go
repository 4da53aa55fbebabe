package engine

import (
	"fmt"

	"github.com/arloliu/textfmt/directive"
	"github.com/arloliu/textfmt/errs"
	"github.com/arloliu/textfmt/internal/options"
	"github.com/arloliu/textfmt/numtext"
	"github.com/arloliu/textfmt/value"
)

// Matcher parses input text against format strings, storing converted
// values through typed slots.
//
// A Matcher holds no per-call state and is safe for concurrent use by
// multiple goroutines.
type Matcher struct {
	*MatcherConfig
}

// NewMatcher creates a Matcher with the provided options.
//
// Parameters:
//   - opts: optional configuration (e.g. WithScanCache)
//
// Returns:
//   - *Matcher: the configured matcher
//   - error: configuration error, if any
func NewMatcher(opts ...MatcherOption) (*Matcher, error) {
	cfg := NewMatcherConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Matcher{MatcherConfig: cfg}, nil
}

// Scan matches input against format and stores each converted value
// through the corresponding slot, consuming slots left to right.
//
// The returned count is the number of successful non-suppressed
// assignments (%n included). A literal mismatch or a failed conversion
// ends the call early with the count reached and a nil error. When a
// value directive fails with the input exhausted before any assignment
// succeeded, Scan reports errs.ErrInputDepleted so callers can tell
// "ran out of input" from "input did not match". Slot misuse (wrong
// type, too few slots, nil pointer) is reported as a typed error.
//
// Parameters:
//   - input: text to parse
//   - format: format string with literal text and % directives
//   - slots: typed output slots consumed left to right
//
// Returns:
//   - int: number of non-suppressed assignments made
//   - error: nil, errs.ErrInputDepleted, or a slot usage error
func (m *Matcher) Scan(input, format string, slots ...value.Slot) (int, error) {
	prog := m.program(format)
	st := scanState{input: input, slots: slots}

	for i := range prog.Segments {
		seg := &prog.Segments[i]
		if !seg.IsDirective {
			if !st.literal(seg.Text) {
				return st.count, nil
			}
			continue
		}
		if seg.Dir.Kind == directive.KindNone {
			// Malformed directive ends the call.
			break
		}

		matched, err := st.directive(seg.Dir)
		if err != nil {
			return st.count, err
		}
		if !matched {
			if seg.Dir.Kind != directive.KindPercent && st.exhausted() && st.count == 0 {
				return 0, fmt.Errorf("%w: input ended before directive %%%c",
					errs.ErrInputDepleted, seg.Dir.Kind.Byte())
			}

			return st.count, nil
		}
	}

	return st.count, nil
}

func (m *Matcher) program(format string) *directive.Program {
	if m.cache != nil {
		return m.cache.Program(format, directive.ModeMatch)
	}

	return directive.Compile(format, directive.ModeMatch)
}

// scanState tracks cursor, slot consumption and the assignment count
// across one Scan call.
type scanState struct {
	input   string
	pos     int
	slots   []value.Slot
	slotIdx int
	count   int
}

func (st *scanState) exhausted() bool {
	return st.pos >= len(st.input)
}

func (st *scanState) skipSpaces() {
	for st.pos < len(st.input) && isSpace(st.input[st.pos]) {
		st.pos++
	}
}

// literal matches one literal format segment. Whitespace in the format
// matches any run of input whitespace, including none; other bytes must
// match exactly.
func (st *scanState) literal(text string) bool {
	for i := 0; i < len(text); i++ {
		if isSpace(text[i]) {
			st.skipSpaces()
			continue
		}
		if st.exhausted() || st.input[st.pos] != text[i] {
			return false
		}
		st.pos++
	}

	return true
}

// window returns the unconsumed input limited to the directive's field
// width.
func (st *scanState) window(width int) string {
	w := st.input[st.pos:]
	if width > 0 && width < len(w) {
		return w[:width]
	}

	return w
}

// nextSlot consumes the next slot and verifies it against the slot type
// the directive requires.
func (st *scanState) nextSlot(kind directive.Kind, want value.SlotType) (value.Slot, error) {
	if st.slotIdx >= len(st.slots) {
		return value.Slot{}, fmt.Errorf("%w: directive %%%c wants slot %d, got %d",
			errs.ErrSlotExhausted, kind.Byte(), st.slotIdx+1, len(st.slots))
	}

	slot := st.slots[st.slotIdx]
	st.slotIdx++
	if slot.Type() != want {
		return value.Slot{}, fmt.Errorf("%w: directive %%%c wants a %s slot, got %s",
			errs.ErrSlotTypeMismatch, kind.Byte(), want, slot.Type())
	}
	if slot.IsNil() {
		return value.Slot{}, fmt.Errorf("%w: directive %%%c got a nil %s slot",
			errs.ErrNilSlot, kind.Byte(), slot.Type())
	}

	return slot, nil
}

// directive executes one conversion directive. It reports whether the
// input matched; a false return leaves the cursor at the failure point.
func (st *scanState) directive(dir directive.Directive) (bool, error) {
	kind := dir.Kind
	if kind != directive.KindChar && kind != directive.KindCount {
		st.skipSpaces()
	}

	switch {
	case kind == directive.KindPercent:
		if st.exhausted() || st.input[st.pos] != '%' {
			return false, nil
		}
		st.pos++

		return true, nil

	case kind == directive.KindCount:
		if dir.Suppressed {
			return true, nil
		}
		slot, err := st.nextSlot(kind, slotTypeFor(dir))
		if err != nil {
			return false, err
		}
		slot.StoreInt(int64(st.pos))
		st.count++

		return true, nil

	case kind == directive.KindChar:
		if st.exhausted() {
			return false, nil
		}
		width := dir.Width
		if width < 1 {
			width = 1
		}
		if rest := len(st.input) - st.pos; width > rest {
			width = rest
		}
		c := st.input[st.pos]
		st.pos += width
		if dir.Suppressed {
			return true, nil
		}
		slot, err := st.nextSlot(kind, value.SlotByte)
		if err != nil {
			return false, err
		}
		slot.StoreByte(c)
		st.count++

		return true, nil

	case kind == directive.KindString:
		window := st.window(dir.Width)
		n := 0
		for n < len(window) && !isSpace(window[n]) {
			n++
		}
		if n == 0 {
			return false, nil
		}
		text := window[:n]
		st.pos += n
		if dir.Suppressed {
			return true, nil
		}
		slot, err := st.nextSlot(kind, value.SlotString)
		if err != nil {
			return false, err
		}
		slot.StoreString(text)
		st.count++

		return true, nil

	case kind.IsSigned():
		base := 10
		if kind == directive.KindIntAuto {
			base = numtext.AutoBase
		}
		v, n, ok := numtext.ParseSigned(st.window(dir.Width), base)
		if !ok {
			return false, nil
		}
		st.pos += n
		if dir.Suppressed {
			return true, nil
		}
		slot, err := st.nextSlot(kind, slotTypeFor(dir))
		if err != nil {
			return false, err
		}
		slot.StoreInt(v)
		st.count++

		return true, nil

	case kind.IsUnsigned():
		v, n, ok := numtext.ParseUnsigned(st.window(dir.Width), kind.Base())
		if !ok {
			return false, nil
		}
		st.pos += n
		if dir.Suppressed {
			return true, nil
		}
		slot, err := st.nextSlot(kind, slotTypeFor(dir))
		if err != nil {
			return false, err
		}
		slot.StoreUint(v)
		st.count++

		return true, nil

	case kind == directive.KindPointer:
		v, n, ok := numtext.ParseUnsigned(st.window(dir.Width), 16)
		if !ok {
			return false, nil
		}
		st.pos += n
		if dir.Suppressed {
			return true, nil
		}
		slot, err := st.nextSlot(kind, value.SlotUintptr)
		if err != nil {
			return false, err
		}
		slot.StoreUintptr(uintptr(v))
		st.count++

		return true, nil

	default: // float kinds
		v, n, ok := numtext.ParseFloat(st.window(dir.Width))
		if !ok {
			return false, nil
		}
		st.pos += n
		if dir.Suppressed {
			return true, nil
		}
		slot, err := st.nextSlot(kind, slotTypeFor(dir))
		if err != nil {
			return false, err
		}
		slot.StoreFloat(v)
		st.count++

		return true, nil
	}
}

// slotTypeFor maps a directive's kind and length modifier to the slot
// type it stores through.
func slotTypeFor(dir directive.Directive) value.SlotType {
	switch kind := dir.Kind; {
	case kind.IsSigned() || kind == directive.KindCount:
		switch dir.Length {
		case directive.LengthChar:
			return value.SlotInt8
		case directive.LengthShort:
			return value.SlotInt16
		case directive.LengthLong, directive.LengthLongLong, directive.LengthBig:
			return value.SlotInt64
		default:
			return value.SlotInt
		}
	case kind.IsUnsigned():
		switch dir.Length {
		case directive.LengthChar:
			return value.SlotUint8
		case directive.LengthShort:
			return value.SlotUint16
		case directive.LengthLong, directive.LengthLongLong, directive.LengthBig:
			return value.SlotUint64
		default:
			return value.SlotUint
		}
	case kind.IsFloat():
		switch dir.Length {
		case directive.LengthLong, directive.LengthLongLong, directive.LengthBig:
			return value.SlotFloat64
		default:
			return value.SlotFloat32
		}
	case kind == directive.KindChar:
		return value.SlotByte
	case kind == directive.KindString:
		return value.SlotString
	default:
		return value.SlotUintptr
	}
}

// isSpace reports whether c is one of the six ASCII whitespace bytes
// scanf-style matching skips.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
