package codec

// EnumCoder encodes enumeration values — named integer types — as the
// varint of their underlying integral representation. Enumerator names carry
// no wire meaning, and decode performs no range validation: a numeric value
// with no corresponding named enumerator decodes successfully, mirroring the
// wire format's openness to unknown enum values.
//
// The coder is a stateless value type and safe for concurrent use.
type EnumCoder[T Integer] struct {
	v VarintCoder[T]
}

var _ SkipCoder[uint8] = EnumCoder[uint8]{}

// NewEnumCoder creates an enum coder for the named integer type T.
//
// Returns:
//   - EnumCoder[T]: A new coder instance (stateless, can be reused)
func NewEnumCoder[T Integer]() EnumCoder[T] {
	return EnumCoder[T]{}
}

// Encode writes the varint of v's underlying integral value into dst and
// returns the remaining suffix. Returns ok=false if dst is exhausted before
// the value is fully written.
func (c EnumCoder[T]) Encode(v T, dst Span) (Span, bool) {
	return c.v.Encode(v, dst)
}

// EncodeUnsafe writes the varint of v's underlying integral value without
// bounds checks.
func (c EnumCoder[T]) EncodeUnsafe(v T, dst Span) Span {
	return c.v.EncodeUnsafe(v, dst)
}

// Decode reads one varint from the front of src and reinterprets it as T.
// Returns ok=false only if the underlying varint decode fails; unknown
// enumerator values are not an error.
func (c EnumCoder[T]) Decode(src Span) (T, Span, bool) {
	return c.v.Decode(src)
}

// DecodeUnsafe reads one varint from the front of src without bounds checks
// and reinterprets it as T.
func (c EnumCoder[T]) DecodeUnsafe(src Span) (T, Span) {
	return c.v.DecodeUnsafe(src)
}

// EncodeSkip returns the exact number of bytes Encode would write for v,
// delegating to the underlying varint coder.
func (c EnumCoder[T]) EncodeSkip(v T) int {
	return c.v.EncodeSkip(v)
}

// DecodeSkip advances past one encoded enum value. Returns ok=false if src
// is exhausted before a terminating byte is found.
func (c EnumCoder[T]) DecodeSkip(src Span) (Span, bool) {
	return c.v.DecodeSkip(src)
}

// DecodeSkipUnsafe advances past one encoded enum value without bounds
// checks.
func (c EnumCoder[T]) DecodeSkipUnsafe(src Span) Span {
	return c.v.DecodeSkipUnsafe(src)
}
