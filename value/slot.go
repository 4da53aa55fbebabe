package value

// SlotType tags the pointer a Slot carries. The match engine requires an
// exact type for each directive: the conversion kind picks the family
// (signed, unsigned, float, string, byte, address) and the length modifier
// picks the width within it.
type SlotType uint8

const (
	SlotInvalid SlotType = 0x0 // SlotInvalid marks the zero Slot.
	SlotInt     SlotType = 0x1 // SlotInt is *int.
	SlotInt8    SlotType = 0x2 // SlotInt8 is *int8.
	SlotInt16   SlotType = 0x3 // SlotInt16 is *int16.
	SlotInt64   SlotType = 0x4 // SlotInt64 is *int64.
	SlotUint    SlotType = 0x5 // SlotUint is *uint.
	SlotUint8   SlotType = 0x6 // SlotUint8 is *uint8.
	SlotUint16  SlotType = 0x7 // SlotUint16 is *uint16.
	SlotUint64  SlotType = 0x8 // SlotUint64 is *uint64.
	SlotFloat32 SlotType = 0x9 // SlotFloat32 is *float32.
	SlotFloat64 SlotType = 0xA // SlotFloat64 is *float64.
	SlotString  SlotType = 0xB // SlotString is *string.
	SlotByte    SlotType = 0xC // SlotByte is *byte for 'c' conversions.
	SlotUintptr SlotType = 0xD // SlotUintptr is *uintptr for 'p' conversions.
)

func (t SlotType) String() string {
	switch t {
	case SlotInt:
		return "*int"
	case SlotInt8:
		return "*int8"
	case SlotInt16:
		return "*int16"
	case SlotInt64:
		return "*int64"
	case SlotUint:
		return "*uint"
	case SlotUint8:
		return "*uint8"
	case SlotUint16:
		return "*uint16"
	case SlotUint64:
		return "*uint64"
	case SlotFloat32:
		return "*float32"
	case SlotFloat64:
		return "*float64"
	case SlotString:
		return "*string"
	case SlotByte:
		return "*byte"
	case SlotUintptr:
		return "*uintptr"
	default:
		return "invalid"
	}
}

// Slot is one match output. The zero Slot is invalid; use the
// constructors. Stores truncate or convert the parsed value to the
// pointed-to type, mirroring how the render side widens arguments.
type Slot struct {
	typ SlotType
	ptr any
}

// IntSlot wraps *int, the target of '%d' and friends with no length
// modifier.
func IntSlot(p *int) Slot { return Slot{typ: SlotInt, ptr: p} }

// Int8Slot wraps *int8, the target of "hh" signed conversions.
func Int8Slot(p *int8) Slot { return Slot{typ: SlotInt8, ptr: p} }

// Int16Slot wraps *int16, the target of "h" signed conversions.
func Int16Slot(p *int16) Slot { return Slot{typ: SlotInt16, ptr: p} }

// Int64Slot wraps *int64, the target of "l", "ll" and "L" signed
// conversions.
func Int64Slot(p *int64) Slot { return Slot{typ: SlotInt64, ptr: p} }

// UintSlot wraps *uint, the target of '%u', '%o', '%x' and '%X' with no
// length modifier.
func UintSlot(p *uint) Slot { return Slot{typ: SlotUint, ptr: p} }

// Uint8Slot wraps *uint8, the target of "hh" unsigned conversions.
func Uint8Slot(p *uint8) Slot { return Slot{typ: SlotUint8, ptr: p} }

// Uint16Slot wraps *uint16, the target of "h" unsigned conversions.
func Uint16Slot(p *uint16) Slot { return Slot{typ: SlotUint16, ptr: p} }

// Uint64Slot wraps *uint64, the target of "l", "ll" and "L" unsigned
// conversions.
func Uint64Slot(p *uint64) Slot { return Slot{typ: SlotUint64, ptr: p} }

// Float32Slot wraps *float32, the target of float conversions with no
// length modifier (and "h"/"hh").
func Float32Slot(p *float32) Slot { return Slot{typ: SlotFloat32, ptr: p} }

// Float64Slot wraps *float64, the target of "l", "ll" and "L" float
// conversions.
func Float64Slot(p *float64) Slot { return Slot{typ: SlotFloat64, ptr: p} }

// StringSlot wraps *string, the target of '%s'.
func StringSlot(p *string) Slot { return Slot{typ: SlotString, ptr: p} }

// ByteSlot wraps *byte, the target of '%c'.
func ByteSlot(p *byte) Slot { return Slot{typ: SlotByte, ptr: p} }

// UintptrSlot wraps *uintptr, the target of '%p'.
func UintptrSlot(p *uintptr) Slot { return Slot{typ: SlotUintptr, ptr: p} }

// Type returns the pointer tag.
func (s Slot) Type() SlotType { return s.typ }

// IsNil reports whether the slot was constructed from a nil pointer.
func (s Slot) IsNil() bool {
	switch s.typ {
	case SlotInt:
		return s.ptr.(*int) == nil
	case SlotInt8:
		return s.ptr.(*int8) == nil
	case SlotInt16:
		return s.ptr.(*int16) == nil
	case SlotInt64:
		return s.ptr.(*int64) == nil
	case SlotUint:
		return s.ptr.(*uint) == nil
	case SlotUint8:
		return s.ptr.(*uint8) == nil
	case SlotUint16:
		return s.ptr.(*uint16) == nil
	case SlotUint64:
		return s.ptr.(*uint64) == nil
	case SlotFloat32:
		return s.ptr.(*float32) == nil
	case SlotFloat64:
		return s.ptr.(*float64) == nil
	case SlotString:
		return s.ptr.(*string) == nil
	case SlotByte:
		return s.ptr.(*byte) == nil
	case SlotUintptr:
		return s.ptr.(*uintptr) == nil
	default:
		return true
	}
}

// StoreInt writes a signed integer through an int-family slot, truncating
// to the slot width. It reports whether the slot was of a signed type.
func (s Slot) StoreInt(v int64) bool {
	switch s.typ {
	case SlotInt:
		*s.ptr.(*int) = int(v)
	case SlotInt8:
		*s.ptr.(*int8) = int8(v)
	case SlotInt16:
		*s.ptr.(*int16) = int16(v)
	case SlotInt64:
		*s.ptr.(*int64) = v
	default:
		return false
	}

	return true
}

// StoreUint writes an unsigned integer through a uint-family slot,
// truncating to the slot width. It reports whether the slot was of an
// unsigned type.
func (s Slot) StoreUint(v uint64) bool {
	switch s.typ {
	case SlotUint:
		*s.ptr.(*uint) = uint(v)
	case SlotUint8:
		*s.ptr.(*uint8) = uint8(v)
	case SlotUint16:
		*s.ptr.(*uint16) = uint16(v)
	case SlotUint64:
		*s.ptr.(*uint64) = v
	default:
		return false
	}

	return true
}

// StoreFloat writes a floating-point number through a float-family slot.
// It reports whether the slot was of a float type.
func (s Slot) StoreFloat(v float64) bool {
	switch s.typ {
	case SlotFloat32:
		*s.ptr.(*float32) = float32(v)
	case SlotFloat64:
		*s.ptr.(*float64) = v
	default:
		return false
	}

	return true
}

// StoreString writes through a SlotString slot.
func (s Slot) StoreString(v string) bool {
	if s.typ != SlotString {
		return false
	}
	*s.ptr.(*string) = v

	return true
}

// StoreByte writes through a SlotByte slot.
func (s Slot) StoreByte(v byte) bool {
	if s.typ != SlotByte {
		return false
	}
	*s.ptr.(*byte) = v

	return true
}

// StoreUintptr writes through a SlotUintptr slot.
func (s Slot) StoreUintptr(v uintptr) bool {
	if s.typ != SlotUintptr {
		return false
	}
	*s.ptr.(*uintptr) = v

	return true
}
