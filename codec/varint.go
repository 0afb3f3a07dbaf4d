package codec

// continuation is the most-significant bit of each varint byte; while set,
// further bytes follow.
const continuation = 0x80

// VarintCoder encodes integers in the protobuf variable-length format: the
// value is split into 7-bit groups, least-significant group first, and each
// group is written as one byte whose most-significant bit flags that more
// bytes follow. Zero encodes as a single 0x00 byte and the encoding is
// always minimal (no padding groups).
//
// Signed types encode their raw two's-complement bit pattern zero-extended
// at the type's own width, matching the protobuf int32/int64 convention:
// negative values encode as if they were large unsigned numbers. Use
// ZigzagCoder for the sint32/sint64-style mapping that keeps small negative
// magnitudes short.
//
// The coder is a stateless value type and safe for concurrent use.
type VarintCoder[T Integer] struct{}

var (
	_ SkipCoder[uint64] = VarintCoder[uint64]{}
	_ SkipCoder[int32]  = VarintCoder[int32]{}
)

// NewVarintCoder creates a varint coder for integer type T.
//
// Returns:
//   - VarintCoder[T]: A new coder instance (stateless, can be reused)
func NewVarintCoder[T Integer]() VarintCoder[T] {
	return VarintCoder[T]{}
}

// Encode writes the varint encoding of v into dst and returns the remaining
// suffix. Returns ok=false if dst is exhausted before the value is fully
// written.
func (c VarintCoder[T]) Encode(v T, dst Span) (Span, bool) {
	u := zext(v)

	i := 0
	for {
		if i >= len(dst) {
			return nil, false
		}

		dst[i] = byte(u) | continuation
		u >>= 7
		i++

		if u == 0 {
			break
		}
	}

	dst[i-1] &^= continuation

	return dst[i:], true
}

// EncodeUnsafe writes the varint encoding of v into dst without bounds
// checks. The caller guarantees dst can hold EncodeSkip(v) bytes.
func (c VarintCoder[T]) EncodeUnsafe(v T, dst Span) Span {
	u := zext(v)

	i := 0
	for {
		dst[i] = byte(u) | continuation
		u >>= 7
		i++

		if u == 0 {
			break
		}
	}

	dst[i-1] &^= continuation

	return dst[i:]
}

// Decode reads one varint from the front of src, accumulating each byte's
// low 7 bits into successive groups until a byte with a clear continuation
// bit terminates the value. Returns ok=false if src is exhausted before a
// terminating byte is found.
func (c VarintCoder[T]) Decode(src Span) (T, Span, bool) {
	var u uint64

	i := 0
	for {
		if i >= len(src) {
			return 0, nil, false
		}

		b := src[i]
		u |= uint64(b&^continuation) << (7 * i)
		i++

		if b&continuation == 0 {
			break
		}
	}

	return T(u), src[i:], true
}

// DecodeUnsafe reads one varint from the front of src without bounds checks.
// The caller guarantees src holds a complete varint.
func (c VarintCoder[T]) DecodeUnsafe(src Span) (T, Span) {
	var u uint64

	i := 0
	for {
		b := src[i]
		u |= uint64(b&^continuation) << (7 * i)
		i++

		if b&continuation == 0 {
			break
		}
	}

	return T(u), src[i:]
}

// EncodeSkip returns the exact number of bytes Encode would write for v,
// which is the number of 7-bit groups the value occupies. Zero still takes
// one byte.
func (c VarintCoder[T]) EncodeSkip(v T) int {
	u := zext(v)

	n := 1
	u >>= 7
	for u != 0 {
		u >>= 7
		n++
	}

	return n
}

// DecodeSkip advances past one encoded varint without decoding it, scanning
// for the first byte with a clear continuation bit. Returns ok=false if src
// is exhausted before a terminating byte is found.
func (c VarintCoder[T]) DecodeSkip(src Span) (Span, bool) {
	i := 0
	for {
		if i >= len(src) {
			return nil, false
		}

		b := src[i]
		i++

		if b&continuation == 0 {
			return src[i:], true
		}
	}
}

// DecodeSkipUnsafe advances past one encoded varint without bounds checks.
// The caller guarantees src holds a complete varint.
func (c VarintCoder[T]) DecodeSkipUnsafe(src Span) Span {
	i := 0
	for src[i]&continuation != 0 {
		i++
	}

	return src[i+1:]
}
