package codec

// BytesCoder encodes a byte blob with the same wire layout as
// ArrayCoder[byte] over one-byte integer elements: a varint byte-length
// prefix followed by the payload. A byte element's encoding is the byte
// itself, so the element loop collapses to a straight copy.
//
// The coder is a stateless value type and safe for concurrent use.
type BytesCoder struct {
	length VarintCoder[uint64]
}

var _ SkipCoder[[]byte] = BytesCoder{}

// NewBytesCoder creates a length-prefixed byte blob coder.
//
// Returns:
//   - BytesCoder: A new coder instance (stateless, can be reused)
func NewBytesCoder() BytesCoder {
	return BytesCoder{}
}

// Encode writes the varint length of v followed by its bytes, returning the
// remaining suffix. Returns ok=false if dst is exhausted at any point during
// the write.
func (c BytesCoder) Encode(v []byte, dst Span) (Span, bool) {
	rest, ok := c.length.Encode(uint64(len(v)), dst)
	if !ok {
		return nil, false
	}

	if len(rest) < len(v) {
		return nil, false
	}

	copy(rest, v)

	return rest[len(v):], true
}

// EncodeUnsafe writes the varint length of v followed by its bytes without
// bounds checks. The caller guarantees dst can hold EncodeSkip(v) bytes.
func (c BytesCoder) EncodeUnsafe(v []byte, dst Span) Span {
	rest := c.length.EncodeUnsafe(uint64(len(v)), dst)
	copy(rest, v)

	return rest[len(v):]
}

// Decode reads the varint length prefix and copies exactly that many
// payload bytes into a fresh slice the caller owns. Returns ok=false if the
// prefix cannot be decoded or the declared length exceeds the remaining
// input.
func (c BytesCoder) Decode(src Span) ([]byte, Span, bool) {
	n, rest, ok := c.length.Decode(src)
	if !ok {
		return nil, nil, false
	}

	if n > uint64(len(rest)) {
		return nil, nil, false
	}

	out := make([]byte, n)
	copy(out, rest[:n])

	return out, rest[n:], true
}

// DecodeUnsafe reads the length prefix and payload without bounds checks.
// The caller guarantees src holds one complete encoding.
func (c BytesCoder) DecodeUnsafe(src Span) ([]byte, Span) {
	n, rest := c.length.DecodeUnsafe(src)

	out := make([]byte, n)
	copy(out, rest[:n])

	return out, rest[n:]
}

// EncodeSkip returns the exact encoded length of v: the varint length of
// len(v) plus len(v) itself.
func (c BytesCoder) EncodeSkip(v []byte) int {
	return c.length.EncodeSkip(uint64(len(v))) + len(v)
}

// DecodeSkip decodes the length prefix and advances past the payload.
// Returns ok=false if the prefix cannot be decoded or the declared length
// exceeds the remaining input.
func (c BytesCoder) DecodeSkip(src Span) (Span, bool) {
	n, rest, ok := c.length.Decode(src)
	if !ok {
		return nil, false
	}

	if n > uint64(len(rest)) {
		return nil, false
	}

	return rest[n:], true
}

// DecodeSkipUnsafe advances past one encoded blob without bounds checks.
func (c BytesCoder) DecodeSkipUnsafe(src Span) Span {
	n, rest := c.length.DecodeUnsafe(src)

	return rest[n:]
}

// StringCoder is BytesCoder specialized to Go strings: identical wire
// layout, with the decoded payload materialized as an immutable string.
//
// The coder is a stateless value type and safe for concurrent use.
type StringCoder struct {
	b BytesCoder
}

var _ SkipCoder[string] = StringCoder{}

// NewStringCoder creates a length-prefixed string coder.
//
// Returns:
//   - StringCoder: A new coder instance (stateless, can be reused)
func NewStringCoder() StringCoder {
	return StringCoder{}
}

// Encode writes the varint length of v followed by its bytes, returning the
// remaining suffix. Returns ok=false if dst is exhausted at any point during
// the write.
func (c StringCoder) Encode(v string, dst Span) (Span, bool) {
	rest, ok := c.b.length.Encode(uint64(len(v)), dst)
	if !ok {
		return nil, false
	}

	if len(rest) < len(v) {
		return nil, false
	}

	copy(rest, v)

	return rest[len(v):], true
}

// EncodeUnsafe writes the varint length of v followed by its bytes without
// bounds checks. The caller guarantees dst can hold EncodeSkip(v) bytes.
func (c StringCoder) EncodeUnsafe(v string, dst Span) Span {
	rest := c.b.length.EncodeUnsafe(uint64(len(v)), dst)
	copy(rest, v)

	return rest[len(v):]
}

// Decode reads the varint length prefix and materializes exactly that many
// payload bytes as a string. Returns ok=false if the prefix cannot be
// decoded or the declared length exceeds the remaining input.
func (c StringCoder) Decode(src Span) (string, Span, bool) {
	n, rest, ok := c.b.length.Decode(src)
	if !ok {
		return "", nil, false
	}

	if n > uint64(len(rest)) {
		return "", nil, false
	}

	return string(rest[:n]), rest[n:], true
}

// DecodeUnsafe reads the length prefix and payload without bounds checks.
// The caller guarantees src holds one complete encoding.
func (c StringCoder) DecodeUnsafe(src Span) (string, Span) {
	n, rest := c.b.length.DecodeUnsafe(src)

	return string(rest[:n]), rest[n:]
}

// EncodeSkip returns the exact encoded length of v: the varint length of
// len(v) plus len(v) itself.
func (c StringCoder) EncodeSkip(v string) int {
	return c.b.length.EncodeSkip(uint64(len(v))) + len(v)
}

// DecodeSkip decodes the length prefix and advances past the payload.
// Returns ok=false if the prefix cannot be decoded or the declared length
// exceeds the remaining input.
func (c StringCoder) DecodeSkip(src Span) (Span, bool) {
	return c.b.DecodeSkip(src)
}

// DecodeSkipUnsafe advances past one encoded string without bounds checks.
func (c StringCoder) DecodeSkipUnsafe(src Span) Span {
	return c.b.DecodeSkipUnsafe(src)
}
