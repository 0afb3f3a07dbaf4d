package codec

// ArrayCoder encodes an ordered slice of elements as a varint byte-length
// prefix followed by the concatenated element encodings. The prefix counts
// payload bytes only, never itself.
//
// The element coder must implement the skip companion operations: computing
// the length prefix requires summing each element's EncodeSkip, never a
// trial encode. Element order is preserved end-to-end; there is no
// deduplication or reordering.
//
// The coder holds only its element coder and is safe for concurrent use
// when the element coder is.
type ArrayCoder[E any] struct {
	elem   SkipCoder[E]
	length VarintCoder[uint64]
}

var _ SkipCoder[[]uint32] = ArrayCoder[uint32]{}

// NewArrayCoder creates a length-prefixed sequence coder over []E, using
// elem to encode, decode and size individual elements.
//
// Parameters:
//   - elem: Coder with skip support for the element type
//
// Returns:
//   - ArrayCoder[E]: A new coder instance (stateless, can be reused)
func NewArrayCoder[E any](elem SkipCoder[E]) ArrayCoder[E] {
	return ArrayCoder[E]{elem: elem}
}

// Encode writes the varint byte-length of all elements followed by each
// element's encoding in iteration order, returning the remaining suffix.
// Returns ok=false if dst is exhausted at any point during the write.
func (c ArrayCoder[E]) Encode(v []E, dst Span) (Span, bool) {
	rest, ok := c.length.Encode(c.payloadSize(v), dst)
	if !ok {
		return nil, false
	}

	for _, e := range v {
		rest, ok = c.elem.Encode(e, rest)
		if !ok {
			return nil, false
		}
	}

	return rest, true
}

// EncodeUnsafe writes the length prefix and elements without bounds checks.
// The caller guarantees dst can hold EncodeSkip(v) bytes.
func (c ArrayCoder[E]) EncodeUnsafe(v []E, dst Span) Span {
	rest := c.length.EncodeUnsafe(c.payloadSize(v), dst)

	for _, e := range v {
		rest = c.elem.EncodeUnsafe(e, rest)
	}

	return rest
}

// Decode reads the varint length prefix, then decodes elements one at a
// time from the declared-length region until it is exactly consumed,
// appending each in order. Returns ok=false if the prefix cannot be
// decoded, the declared length exceeds the remaining input, or an element
// decode fails — including a trailing partial element, whose decode fails
// against the too-short tail of the declared region.
func (c ArrayCoder[E]) Decode(src Span) ([]E, Span, bool) {
	n, rest, ok := c.length.Decode(src)
	if !ok {
		return nil, nil, false
	}

	if n > uint64(len(rest)) {
		return nil, nil, false
	}

	body := rest[:n]
	out := make([]E, 0, n)

	for len(body) > 0 {
		var e E
		e, body, ok = c.elem.Decode(body)
		if !ok {
			return nil, nil, false
		}

		out = append(out, e)
	}

	return out, rest[n:], true
}

// DecodeUnsafe reads the length prefix and elements without bounds checks.
// The caller guarantees src holds one complete, well-formed encoding.
func (c ArrayCoder[E]) DecodeUnsafe(src Span) ([]E, Span) {
	n, rest := c.length.DecodeUnsafe(src)

	body := rest[:n]
	out := make([]E, 0, n)

	for len(body) > 0 {
		var e E
		e, body = c.elem.DecodeUnsafe(body)
		out = append(out, e)
	}

	return out, rest[n:]
}

// EncodeSkip returns the exact encoded length of v: the summed element
// lengths plus the varint length of that sum.
func (c ArrayCoder[E]) EncodeSkip(v []E) int {
	n := c.payloadSize(v)

	return c.length.EncodeSkip(n) + int(n)
}

// DecodeSkip decodes the varint length prefix and advances past the declared
// payload without decoding elements. Returns ok=false if the prefix cannot
// be decoded or the declared length exceeds the remaining input.
func (c ArrayCoder[E]) DecodeSkip(src Span) (Span, bool) {
	n, rest, ok := c.length.Decode(src)
	if !ok {
		return nil, false
	}

	if n > uint64(len(rest)) {
		return nil, false
	}

	return rest[n:], true
}

// DecodeSkipUnsafe advances past one encoded sequence without bounds checks.
func (c ArrayCoder[E]) DecodeSkipUnsafe(src Span) Span {
	n, rest := c.length.DecodeUnsafe(src)

	return rest[n:]
}

func (c ArrayCoder[E]) payloadSize(v []E) uint64 {
	var n uint64
	for _, e := range v {
		n += uint64(c.elem.EncodeSkip(e))
	}

	return n
}
