// Package picowire is a composable binary-encoding framework implementing
// the protocol-buffer-style variable-length wire format: fixed-width
// integers/floats/booleans, varints, zigzag-mapped signed integers, enums,
// and length-prefixed sequences, each with safe and unsafe execution modes
// and skip companions.
//
// The codec package holds the core primitives; this package adds one-shot
// convenience helpers that bridge between the core's span-and-ok contract
// and idiomatic Go errors.
package picowire

import (
	"errors"
	"fmt"

	"github.com/arloliu/picowire/codec"
	"github.com/arloliu/picowire/endian"
)

var (
	// ErrShortBuffer indicates the destination buffer cannot fit the encoding.
	ErrShortBuffer = errors.New("picowire: buffer too small for encoding")
	// ErrTruncated indicates the input ends before one complete encoding.
	ErrTruncated = errors.New("picowire: truncated or malformed input")
	// ErrTrailingBytes indicates the input holds bytes beyond one complete encoding.
	ErrTrailingBytes = errors.New("picowire: trailing bytes after value")
)

// Marshal encodes v into an exactly-sized, newly allocated byte slice.
//
// The buffer is sized with the coder's EncodeSkip and written with
// EncodeUnsafe; sufficiency is established up front, so the write cannot
// fail and no error is returned.
func Marshal[T any](c codec.SkipCoder[T], v T) []byte {
	out := make([]byte, c.EncodeSkip(v))
	c.EncodeUnsafe(v, out)

	return out
}

// MarshalTo encodes v into the caller-supplied buffer and returns the number
// of bytes written. Returns ErrShortBuffer if buf cannot fit the encoding.
func MarshalTo[T any](c codec.SkipCoder[T], v T, buf []byte) (int, error) {
	rest, ok := c.Encode(v, buf)
	if !ok {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, c.EncodeSkip(v), len(buf))
	}

	return len(buf) - rest.Len(), nil
}

// Unmarshal decodes exactly one value from data. It fails with ErrTruncated
// if data ends before a complete encoding and with ErrTrailingBytes if any
// input remains after the value.
func Unmarshal[T any](c codec.Coder[T], data []byte) (T, error) {
	v, rest, ok := c.Decode(data)
	if !ok {
		var zero T
		return zero, ErrTruncated
	}

	if !rest.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: %d bytes remain", ErrTrailingBytes, rest.Len())
	}

	return v, nil
}

// NewNativeIntegerCoder creates a fixed-width integer coder using the
// machine-native byte order, the conventional default for same-machine
// payloads.
func NewNativeIntegerCoder[T codec.Integer]() codec.IntegerCoder[T] {
	return codec.NewIntegerCoder[T](endian.GetNativeEngine())
}

// NewNativeFloatCoder creates a fixed-width float coder using the
// machine-native byte order.
func NewNativeFloatCoder[T codec.Float]() codec.FloatCoder[T] {
	return codec.NewFloatCoder[T](endian.GetNativeEngine())
}
