package codec

import "github.com/arloliu/picowire/endian"

// BoolCoder encodes booleans as a single byte: 0x01 for true, 0x00 for
// false. It is a one-byte projection of the unsigned integer coder — decode
// delegates to the uint8 coder and maps any nonzero byte to true.
//
// The coder is a stateless value type and safe for concurrent use.
type BoolCoder struct {
	u8 IntegerCoder[uint8]
}

var _ SkipCoder[bool] = BoolCoder{}

// NewBoolCoder creates a boolean coder.
//
// Returns:
//   - BoolCoder: A new coder instance (stateless, can be reused)
func NewBoolCoder() BoolCoder {
	// Byte order is irrelevant at width one; the native engine keeps the
	// delegate well-formed.
	return BoolCoder{u8: NewIntegerCoder[uint8](endian.GetNativeEngine())}
}

// Encode writes a single normalized byte (0x00 or 0x01) into dst and returns
// the remaining suffix. Returns ok=false if dst is empty.
func (c BoolCoder) Encode(v bool, dst Span) (Span, bool) {
	return c.u8.Encode(boolByte(v), dst)
}

// EncodeUnsafe writes a single normalized byte into dst without bounds
// checks. The caller guarantees len(dst) >= 1.
func (c BoolCoder) EncodeUnsafe(v bool, dst Span) Span {
	return c.u8.EncodeUnsafe(boolByte(v), dst)
}

// Decode reads one byte from the front of src through the underlying uint8
// coder and returns true for any nonzero value. Returns ok=false if src is
// empty.
func (c BoolCoder) Decode(src Span) (bool, Span, bool) {
	u, rest, ok := c.u8.Decode(src)
	if !ok {
		return false, nil, false
	}

	return u != 0, rest, true
}

// DecodeUnsafe reads one byte from the front of src without bounds checks.
// The caller guarantees len(src) >= 1.
func (c BoolCoder) DecodeUnsafe(src Span) (bool, Span) {
	u, rest := c.u8.DecodeUnsafe(src)

	return u != 0, rest
}

// EncodeSkip returns the encoded length of a boolean, which is always one
// byte.
func (c BoolCoder) EncodeSkip(v bool) int {
	return c.u8.EncodeSkip(boolByte(v))
}

// DecodeSkip advances past one encoded boolean. Returns ok=false if src is
// empty.
func (c BoolCoder) DecodeSkip(src Span) (Span, bool) {
	return c.u8.DecodeSkip(src)
}

// DecodeSkipUnsafe advances past one encoded boolean without bounds checks.
func (c BoolCoder) DecodeSkipUnsafe(src Span) Span {
	return c.u8.DecodeSkipUnsafe(src)
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}

	return 0
}
