package codec

import "unsafe"

// sizeOf returns the byte width of the fixed-size type T.
func sizeOf[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// maskOf returns a mask covering the low 8*width bits of T.
func maskOf[T Integer]() uint64 {
	w := sizeOf[T]()
	if w == 8 {
		return ^uint64(0)
	}

	return 1<<(8*w) - 1
}

// zext zero-extends v's raw bit pattern to uint64 at T's own width.
//
// A plain uint64 conversion would sign-extend negative signed values to the
// full 64 bits; masking keeps the value at T's width so e.g. int16(-1)
// becomes 0xFFFF, matching the unsigned reinterpretation the wire format
// uses for non-zigzag signed integers.
func zext[T Integer](v T) uint64 {
	return uint64(v) & maskOf[T]()
}
