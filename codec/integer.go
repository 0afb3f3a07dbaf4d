package codec

import (
	"github.com/arloliu/picowire/endian"
)

// IntegerCoder encodes fixed-width integers by literal byte-width copy.
//
// The value's full byte-width representation is copied verbatim into the
// span in the byte order of the injected endian engine. No normalization to
// a canonical endianness takes place: producer and consumer must use
// matching engines, and any mismatch is a contract violation on the caller,
// not the codec.
//
// The coder is a stateless value type and safe for concurrent use.
type IntegerCoder[T Integer] struct {
	engine endian.EndianEngine
}

var _ SkipCoder[uint32] = IntegerCoder[uint32]{}

// NewIntegerCoder creates a fixed-width integer coder for type T using the
// specified endian engine.
//
// Parameters:
//   - engine: Endian engine for byte order (endian.GetNativeEngine() for the
//     machine-native layout)
//
// Returns:
//   - IntegerCoder[T]: A new coder instance (stateless, can be reused)
func NewIntegerCoder[T Integer](engine endian.EndianEngine) IntegerCoder[T] {
	return IntegerCoder[T]{engine: engine}
}

// Encode writes v's fixed byte-width representation into dst and returns the
// remaining suffix. Returns ok=false if dst is shorter than T's byte width.
func (c IntegerCoder[T]) Encode(v T, dst Span) (Span, bool) {
	w := sizeOf[T]()
	if len(dst) < w {
		return nil, false
	}

	c.put(dst[:w], zext(v))

	return dst[w:], true
}

// EncodeUnsafe writes v's fixed byte-width representation into dst without
// bounds checks. The caller guarantees len(dst) >= T's byte width.
func (c IntegerCoder[T]) EncodeUnsafe(v T, dst Span) Span {
	w := sizeOf[T]()
	c.put(dst[:w], zext(v))

	return dst[w:]
}

// Decode reads one fixed-width value from the front of src and returns it
// with the remaining suffix. Returns ok=false if src is shorter than T's
// byte width.
func (c IntegerCoder[T]) Decode(src Span) (T, Span, bool) {
	w := sizeOf[T]()
	if len(src) < w {
		return 0, nil, false
	}

	return T(c.get(src[:w])), src[w:], true
}

// DecodeUnsafe reads one fixed-width value from the front of src without
// bounds checks. The caller guarantees len(src) >= T's byte width.
func (c IntegerCoder[T]) DecodeUnsafe(src Span) (T, Span) {
	w := sizeOf[T]()

	return T(c.get(src[:w])), src[w:]
}

// EncodeSkip returns the encoded length of any value of type T, which is the
// static byte width of T.
func (c IntegerCoder[T]) EncodeSkip(_ T) int {
	return sizeOf[T]()
}

// DecodeSkip advances past one encoded value without decoding it.
// Returns ok=false if src is shorter than T's byte width.
func (c IntegerCoder[T]) DecodeSkip(src Span) (Span, bool) {
	w := sizeOf[T]()
	if len(src) < w {
		return nil, false
	}

	return src[w:], true
}

// DecodeSkipUnsafe advances past one encoded value without bounds checks.
func (c IntegerCoder[T]) DecodeSkipUnsafe(src Span) Span {
	return src[sizeOf[T]():]
}

func (c IntegerCoder[T]) put(b []byte, u uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(u)
	case 2:
		c.engine.PutUint16(b, uint16(u))
	case 4:
		c.engine.PutUint32(b, uint32(u))
	default:
		c.engine.PutUint64(b, u)
	}
}

func (c IntegerCoder[T]) get(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(c.engine.Uint16(b))
	case 4:
		return uint64(c.engine.Uint32(b))
	default:
		return c.engine.Uint64(b)
	}
}
