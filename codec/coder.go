package codec

// Unsigned is the type set of fixed-width unsigned integer types usable as
// codec values. Named types (e.g. enum-style defined types) are included via
// the underlying-type terms.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the type set of fixed-width signed integer types usable as codec
// values.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}

// Float is the type set of floating-point types usable as codec values.
type Float interface {
	~float32 | ~float64
}

// Encoder serializes values of type T into caller-supplied spans.
//
// Encode is the safe variant: it writes the encoding of v starting at the
// beginning of dst and returns the remaining unwritten suffix. If dst runs
// out of space at any point during the write it returns ok=false; bytes may
// have been deposited before the failure was detected, but a failed encode
// must never be treated as having produced a valid encoding.
//
// EncodeUnsafe performs the identical write without bounds checks. The
// caller guarantees dst is large enough, typically by sizing it with a
// Skipper's EncodeSkip first.
type Encoder[T any] interface {
	Encode(v T, dst Span) (rest Span, ok bool)
	EncodeUnsafe(v T, dst Span) Span
}

// Decoder deserializes values of type T from spans.
//
// Decode reads one complete value as a prefix of src and returns the value
// together with the remaining suffix. If src ends before a complete value
// can be read it returns ok=false and no value.
//
// DecodeUnsafe performs the identical read without bounds checks; the caller
// guarantees src holds a complete encoding.
type Decoder[T any] interface {
	Decode(src Span) (v T, rest Span, ok bool)
	DecodeUnsafe(src Span) (v T, rest Span)
}

// Coder is a type that can both encode and decode values of type T.
type Coder[T any] interface {
	Encoder[T]
	Decoder[T]
}

// Skipper is the length-computation dual of a Coder.
//
// EncodeSkip returns the exact number of bytes Encode would write for v,
// without writing anything. DecodeSkip advances past one encoded value and
// returns the suffix, consuming exactly the bytes Decode would consume for a
// well-formed input; the safe variant returns ok=false if src ends before
// one complete encoding.
type Skipper[T any] interface {
	EncodeSkip(v T) int
	DecodeSkip(src Span) (rest Span, ok bool)
	DecodeSkipUnsafe(src Span) Span
}

// SkipCoder is a Coder that also implements the skip companion operations.
// Every concrete coder in this package satisfies it.
type SkipCoder[T any] interface {
	Coder[T]
	Skipper[T]
}
