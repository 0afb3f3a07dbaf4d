package codec

import (
	"math"

	"github.com/arloliu/picowire/endian"
)

// FloatCoder encodes fixed-width floating-point values by copying their IEEE
// 754 bit pattern verbatim into the span, using the byte order of the
// injected endian engine. Like IntegerCoder, no canonical endianness is
// imposed; producer and consumer must use matching engines.
//
// The coder is a stateless value type and safe for concurrent use.
type FloatCoder[T Float] struct {
	engine endian.EndianEngine
}

var _ SkipCoder[float64] = FloatCoder[float64]{}

// NewFloatCoder creates a fixed-width float coder for type T using the
// specified endian engine.
//
// Parameters:
//   - engine: Endian engine for byte order (endian.GetNativeEngine() for the
//     machine-native layout)
//
// Returns:
//   - FloatCoder[T]: A new coder instance (stateless, can be reused)
func NewFloatCoder[T Float](engine endian.EndianEngine) FloatCoder[T] {
	return FloatCoder[T]{engine: engine}
}

// Encode writes v's bit pattern into dst and returns the remaining suffix.
// Returns ok=false if dst is shorter than T's byte width.
func (c FloatCoder[T]) Encode(v T, dst Span) (Span, bool) {
	w := sizeOf[T]()
	if len(dst) < w {
		return nil, false
	}

	c.put(dst[:w], v)

	return dst[w:], true
}

// EncodeUnsafe writes v's bit pattern into dst without bounds checks.
// The caller guarantees len(dst) >= T's byte width.
func (c FloatCoder[T]) EncodeUnsafe(v T, dst Span) Span {
	w := sizeOf[T]()
	c.put(dst[:w], v)

	return dst[w:]
}

// Decode reads one fixed-width float from the front of src and returns it
// with the remaining suffix. Returns ok=false if src is shorter than T's
// byte width.
func (c FloatCoder[T]) Decode(src Span) (T, Span, bool) {
	w := sizeOf[T]()
	if len(src) < w {
		return 0, nil, false
	}

	return c.get(src[:w]), src[w:], true
}

// DecodeUnsafe reads one fixed-width float from the front of src without
// bounds checks. The caller guarantees len(src) >= T's byte width.
func (c FloatCoder[T]) DecodeUnsafe(src Span) (T, Span) {
	w := sizeOf[T]()

	return c.get(src[:w]), src[w:]
}

// EncodeSkip returns the encoded length of any value of type T, which is the
// static byte width of T.
func (c FloatCoder[T]) EncodeSkip(_ T) int {
	return sizeOf[T]()
}

// DecodeSkip advances past one encoded value without decoding it.
// Returns ok=false if src is shorter than T's byte width.
func (c FloatCoder[T]) DecodeSkip(src Span) (Span, bool) {
	w := sizeOf[T]()
	if len(src) < w {
		return nil, false
	}

	return src[w:], true
}

// DecodeSkipUnsafe advances past one encoded value without bounds checks.
func (c FloatCoder[T]) DecodeSkipUnsafe(src Span) Span {
	return src[sizeOf[T]():]
}

func (c FloatCoder[T]) put(b []byte, v T) {
	if len(b) == 4 {
		c.engine.PutUint32(b, math.Float32bits(float32(v)))
		return
	}

	c.engine.PutUint64(b, math.Float64bits(float64(v)))
}

func (c FloatCoder[T]) get(b []byte) T {
	if len(b) == 4 {
		return T(math.Float32frombits(c.engine.Uint32(b)))
	}

	return T(math.Float64frombits(c.engine.Uint64(b)))
}
