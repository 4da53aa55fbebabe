package directive

// Kind identifies the conversion a directive performs, i.e. its final
// character in the format string.
type Kind uint8

const (
	KindNone      Kind = 0x0  // KindNone marks an unrecognized conversion character.
	KindChar      Kind = 0x1  // KindChar is the 'c' conversion.
	KindInt       Kind = 0x2  // KindInt is the 'd' conversion.
	KindIntAuto   Kind = 0x3  // KindIntAuto is the 'i' conversion (auto base when matching).
	KindUint      Kind = 0x4  // KindUint is the 'u' conversion.
	KindOct       Kind = 0x5  // KindOct is the 'o' conversion.
	KindHex       Kind = 0x6  // KindHex is the 'x' conversion.
	KindHexUp     Kind = 0x7  // KindHexUp is the 'X' conversion.
	KindFixed     Kind = 0x8  // KindFixed is the 'f' conversion.
	KindSci       Kind = 0x9  // KindSci is the 'e' conversion.
	KindSciUp     Kind = 0xA  // KindSciUp is the 'E' conversion.
	KindGeneral   Kind = 0xB  // KindGeneral is the 'g' conversion.
	KindGeneralUp Kind = 0xC  // KindGeneralUp is the 'G' conversion.
	KindString    Kind = 0xD  // KindString is the 's' conversion.
	KindPointer   Kind = 0xE  // KindPointer is the 'p' conversion.
	KindCount     Kind = 0xF  // KindCount is the 'n' conversion.
	KindPercent   Kind = 0x10 // KindPercent is the '%%' literal conversion.
)

// KindOf maps a conversion character to its Kind, or KindNone if the
// character is not in the conversion catalog.
func KindOf(c byte) Kind {
	switch c {
	case 'c':
		return KindChar
	case 'd':
		return KindInt
	case 'i':
		return KindIntAuto
	case 'u':
		return KindUint
	case 'o':
		return KindOct
	case 'x':
		return KindHex
	case 'X':
		return KindHexUp
	case 'f':
		return KindFixed
	case 'e':
		return KindSci
	case 'E':
		return KindSciUp
	case 'g':
		return KindGeneral
	case 'G':
		return KindGeneralUp
	case 's':
		return KindString
	case 'p':
		return KindPointer
	case 'n':
		return KindCount
	case '%':
		return KindPercent
	}

	return KindNone
}

// IsValid reports whether k names a conversion in the catalog.
func (k Kind) IsValid() bool {
	return k >= KindChar && k <= KindPercent
}

// IsSigned reports whether k converts a signed integer ('d' or 'i').
func (k Kind) IsSigned() bool {
	return k == KindInt || k == KindIntAuto
}

// IsUnsigned reports whether k converts an unsigned integer
// ('u', 'o', 'x' or 'X').
func (k Kind) IsUnsigned() bool {
	return k == KindUint || k == KindOct || k == KindHex || k == KindHexUp
}

// IsFloat reports whether k converts a floating-point value
// ('e', 'E', 'f', 'g' or 'G').
func (k Kind) IsFloat() bool {
	return k >= KindFixed && k <= KindGeneralUp
}

// IsUpper reports whether k renders letters in upper case
// ('X', 'E' or 'G').
func (k Kind) IsUpper() bool {
	return k == KindHexUp || k == KindSciUp || k == KindGeneralUp
}

// Base returns the numeral base k renders or matches digits in, or 0 for
// non-numeric kinds. KindIntAuto reports 10, its base before auto-detection.
func (k Kind) Base() int {
	switch k {
	case KindOct:
		return 8
	case KindHex, KindHexUp, KindPointer:
		return 16
	case KindInt, KindIntAuto, KindUint:
		return 10
	default:
		return 0
	}
}

// Byte returns the conversion character for k, or '?' for KindNone.
func (k Kind) Byte() byte {
	switch k {
	case KindChar:
		return 'c'
	case KindInt:
		return 'd'
	case KindIntAuto:
		return 'i'
	case KindUint:
		return 'u'
	case KindOct:
		return 'o'
	case KindHex:
		return 'x'
	case KindHexUp:
		return 'X'
	case KindFixed:
		return 'f'
	case KindSci:
		return 'e'
	case KindSciUp:
		return 'E'
	case KindGeneral:
		return 'g'
	case KindGeneralUp:
		return 'G'
	case KindString:
		return 's'
	case KindPointer:
		return 'p'
	case KindCount:
		return 'n'
	case KindPercent:
		return '%'
	default:
		return '?'
	}
}

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindInt:
		return "Int"
	case KindIntAuto:
		return "IntAuto"
	case KindUint:
		return "Uint"
	case KindOct:
		return "Oct"
	case KindHex:
		return "Hex"
	case KindHexUp:
		return "HexUp"
	case KindFixed:
		return "Fixed"
	case KindSci:
		return "Sci"
	case KindSciUp:
		return "SciUp"
	case KindGeneral:
		return "General"
	case KindGeneralUp:
		return "GeneralUp"
	case KindString:
		return "String"
	case KindPointer:
		return "Pointer"
	case KindCount:
		return "Count"
	case KindPercent:
		return "Percent"
	default:
		return "Unknown"
	}
}
