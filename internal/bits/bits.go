package bits

import "unsafe"

// Uint is the set of storage types a bit run can live in. Named types over
// these underlying types (flag and enum types) are included.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Width returns the number of bits in T.
func Width[T Uint]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// Mask returns a T with bits [start, start+count) set and all others clear.
// Requires count > 0 and start+count <= Width[T]().
func Mask[T Uint](start, count uint) T {
	m := ^T(0) >> (Width[T]() - count)
	return m << start
}

// Extract copies count bits starting at srcOff in src to dstOff in a zero
// value of type D. When skipMask is true the source is assumed to contain no
// bits outside the requested run and the initial masking is elided.
//
// The shift order matters when the widths differ. A right shift happens in
// the source width before narrowing, so bits above the destination width
// survive the move. A left shift happens after widening to the destination
// width, so bits can land above the source width.
func Extract[D, S Uint](src S, count, srcOff, dstOff uint, skipMask bool) D {
	if !skipMask {
		src &= Mask[S](srcOff, count)
	}
	shift := int(srcOff) - int(dstOff)
	switch {
	case shift == 0:
		return D(src)
	case shift > 0:
		return D(src >> uint(shift))
	default:
		return D(src) << uint(-shift)
	}
}
