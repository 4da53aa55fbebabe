// Package value provides the typed argument and output-slot unions consumed
// by the render and match engines.
//
// C's variadic calling convention is replaced by two explicit tagged
// unions: Value carries one render argument, Slot carries one match
// output pointer. Both are populated only through their constructors, so
// an engine can trust the tag without reflection. Engines consume them
// strictly left to right, one per directive, never rewinding.
package value

import (
	"math"
	"unsafe"
)

// Class tags the payload a Value carries.
type Class uint8

const (
	ClassInvalid Class = 0x0 // ClassInvalid marks the zero Value.
	ClassInt     Class = 0x1 // ClassInt is a signed integer argument.
	ClassUint    Class = 0x2 // ClassUint is an unsigned integer argument.
	ClassFloat   Class = 0x3 // ClassFloat is a floating-point argument.
	ClassString  Class = 0x4 // ClassString is a string argument.
	ClassRune    Class = 0x5 // ClassRune is a character argument.
	ClassPointer Class = 0x6 // ClassPointer is an address argument.
	ClassCount   Class = 0x7 // ClassCount is an output counter argument.
)

func (c Class) String() string {
	switch c {
	case ClassInt:
		return "Int"
	case ClassUint:
		return "Uint"
	case ClassFloat:
		return "Float"
	case ClassString:
		return "String"
	case ClassRune:
		return "Rune"
	case ClassPointer:
		return "Pointer"
	case ClassCount:
		return "Count"
	default:
		return "Invalid"
	}
}

// Value is one render argument. The zero Value is invalid; use the
// constructors.
type Value struct {
	class Class
	num   uint64
	str   string
	count *int
}

// Int wraps a signed integer argument.
func Int(v int) Value { return Value{class: ClassInt, num: uint64(v)} }

// Int8 wraps a signed 8-bit integer argument.
func Int8(v int8) Value { return Value{class: ClassInt, num: uint64(int64(v))} }

// Int16 wraps a signed 16-bit integer argument.
func Int16(v int16) Value { return Value{class: ClassInt, num: uint64(int64(v))} }

// Int32 wraps a signed 32-bit integer argument.
func Int32(v int32) Value { return Value{class: ClassInt, num: uint64(int64(v))} }

// Int64 wraps a signed 64-bit integer argument.
func Int64(v int64) Value { return Value{class: ClassInt, num: uint64(v)} }

// Uint wraps an unsigned integer argument.
func Uint(v uint) Value { return Value{class: ClassUint, num: uint64(v)} }

// Uint8 wraps an unsigned 8-bit integer argument.
func Uint8(v uint8) Value { return Value{class: ClassUint, num: uint64(v)} }

// Uint16 wraps an unsigned 16-bit integer argument.
func Uint16(v uint16) Value { return Value{class: ClassUint, num: uint64(v)} }

// Uint32 wraps an unsigned 32-bit integer argument.
func Uint32(v uint32) Value { return Value{class: ClassUint, num: uint64(v)} }

// Uint64 wraps an unsigned 64-bit integer argument.
func Uint64(v uint64) Value { return Value{class: ClassUint, num: v} }

// Float32 wraps a 32-bit floating-point argument. The value is widened to
// float64, which is exact.
func Float32(v float32) Value { return Float64(float64(v)) }

// Float64 wraps a 64-bit floating-point argument.
func Float64(v float64) Value {
	return Value{class: ClassFloat, num: math.Float64bits(v)}
}

// Str wraps a string argument.
func Str(s string) Value { return Value{class: ClassString, str: s} }

// Rune wraps a character argument.
func Rune(r rune) Value { return Value{class: ClassRune, num: uint64(int64(r))} }

// Char wraps a single-byte character argument.
func Char(c byte) Value { return Value{class: ClassRune, num: uint64(c)} }

// Uintptr wraps an address argument.
func Uintptr(p uintptr) Value { return Value{class: ClassPointer, num: uint64(p)} }

// Ptr wraps the address of p as an argument.
func Ptr[T any](p *T) Value {
	return Value{class: ClassPointer, num: uint64(uintptr(unsafe.Pointer(p)))}
}

// Count wraps an output counter argument. During rendering the number of
// bytes emitted so far is stored through p.
func Count(p *int) Value { return Value{class: ClassCount, count: p} }

// Class returns the payload tag.
func (v Value) Class() Class { return v.class }

// AsInt returns the signed integer payload. Valid for ClassInt and
// ClassRune.
func (v Value) AsInt() int64 { return int64(v.num) }

// AsUint returns the unsigned integer payload. Valid for ClassUint.
func (v Value) AsUint() uint64 { return v.num }

// AsFloat returns the floating-point payload. Valid for ClassFloat.
func (v Value) AsFloat() float64 {
	return math.Float64frombits(v.num)
}

// AsStr returns the string payload. Valid for ClassString.
func (v Value) AsStr() string { return v.str }

// AsUintptr returns the address payload. Valid for ClassPointer.
func (v Value) AsUintptr() uintptr { return uintptr(v.num) }

// AsCount returns the counter pointer. Valid for ClassCount; may be nil if
// the caller passed one.
func (v Value) AsCount() *int { return v.count }
