// Package numtext implements the numeric text conversions under the render
// and match engines.
//
// The render side turns binary numbers into digit strings: integers by a
// base-8/10/16 digit loop, floats by an exact multiprecision decimal
// expansion of the binary value rounded half-to-even at the requested
// place. The engines apply precision, flags, prefixes and field width on
// top of these raw digit strings.
//
// The match side turns text back into binary numbers: a saturating
// integer parser with optional automatic base detection, and a
// floating-point parser that accepts special words, an optional hex
// mantissa and a decimal exponent.
//
// # Rendering
//
// Fixed and exponential renderings are correctly rounded. The exact
// decimal expansion of the float64 is produced first, then rounded at the
// requested digit position; ties (possible only when the expansion
// terminates exactly halfway) round to the even neighbor:
//
//	AppendFixed(nil, 0.5, 0, false)   // "0"
//	AppendFixed(nil, 1.5, 0, false)   // "2"
//	AppendFixed(nil, 9.5, 0, false)   // "10"
//
// # Parsing
//
// Integer parsing saturates instead of wrapping: once the accumulated
// magnitude exceeds the target range the value clamps to the range
// boundary while the parser keeps consuming digits, so the consumed byte
// count still covers the whole run. Float parsing uses plain
// multiply-accumulate and is not correctly rounded; values survive a
// render/match round-trip to within accumulation error, matching
// scanf-family behavior.
//
// All functions are pure and allocation-free apart from growing the
// caller's destination slice.
package numtext
