package codec

// Zigzag maps a signed value of T's bit width N to its unsigned zigzag form:
// (v << 1) ^ (v >> (N-1)). Nonnegative v maps to 2v and negative v to
// -2v-1, interleaving positive and negative magnitudes so small values of
// either sign stay small. The result is zero-extended at T's own width.
func Zigzag[T Signed](v T) uint64 {
	shift := 8*sizeOf[T]() - 1

	return zext(v<<1 ^ v>>shift)
}

// Unzigzag inverts Zigzag, recovering the original signed value from its
// zigzag-mapped unsigned form.
func Unzigzag[T Signed](u uint64) T {
	return T(u>>1) ^ -T(u&1)
}

// ZigzagCoder encodes signed integers in the protobuf sint32/sint64 style:
// the value is passed through the zigzag bijection and the result is varint
// encoded as unsigned. Small-magnitude values of either sign produce short
// varints, unlike the raw two's-complement encoding VarintCoder applies to
// signed types.
//
// The coder is a stateless value type and safe for concurrent use.
type ZigzagCoder[T Signed] struct {
	uv VarintCoder[uint64]
}

var _ SkipCoder[int64] = ZigzagCoder[int64]{}

// NewZigzagCoder creates a zigzag-signed varint coder for signed type T.
//
// Returns:
//   - ZigzagCoder[T]: A new coder instance (stateless, can be reused)
func NewZigzagCoder[T Signed]() ZigzagCoder[T] {
	return ZigzagCoder[T]{}
}

// Encode writes the zigzag varint encoding of v into dst and returns the
// remaining suffix. Returns ok=false if dst is exhausted before the value is
// fully written.
func (c ZigzagCoder[T]) Encode(v T, dst Span) (Span, bool) {
	return c.uv.Encode(Zigzag(v), dst)
}

// EncodeUnsafe writes the zigzag varint encoding of v into dst without
// bounds checks. The caller guarantees dst can hold EncodeSkip(v) bytes.
func (c ZigzagCoder[T]) EncodeUnsafe(v T, dst Span) Span {
	return c.uv.EncodeUnsafe(Zigzag(v), dst)
}

// Decode reads one unsigned varint from the front of src and applies the
// inverse zigzag map. Returns ok=false if src is exhausted before a complete
// varint is read.
func (c ZigzagCoder[T]) Decode(src Span) (T, Span, bool) {
	u, rest, ok := c.uv.Decode(src)
	if !ok {
		return 0, nil, false
	}

	return Unzigzag[T](u), rest, true
}

// DecodeUnsafe reads one zigzag varint from the front of src without bounds
// checks. The caller guarantees src holds a complete varint.
func (c ZigzagCoder[T]) DecodeUnsafe(src Span) (T, Span) {
	u, rest := c.uv.DecodeUnsafe(src)

	return Unzigzag[T](u), rest
}

// EncodeSkip returns the exact number of bytes Encode would write for v,
// measured on the zigzag-mapped form.
func (c ZigzagCoder[T]) EncodeSkip(v T) int {
	return c.uv.EncodeSkip(Zigzag(v))
}

// DecodeSkip advances past one encoded zigzag varint. Returns ok=false if
// src is exhausted before a terminating byte is found.
func (c ZigzagCoder[T]) DecodeSkip(src Span) (Span, bool) {
	return c.uv.DecodeSkip(src)
}

// DecodeSkipUnsafe advances past one encoded zigzag varint without bounds
// checks.
func (c ZigzagCoder[T]) DecodeSkipUnsafe(src Span) Span {
	return c.uv.DecodeSkipUnsafe(src)
}
