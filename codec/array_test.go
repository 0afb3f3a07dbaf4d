package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/picowire/endian"
)

func TestArrayCoder_WireVectors(t *testing.T) {
	coder := NewArrayCoder[uint64](NewVarintCoder[uint64]())

	// Empty sequence is exactly one zero length byte.
	buf := make(Span, 10)
	rest, ok := coder.Encode(nil, buf)
	require.True(t, ok)
	require.Equal(t, []byte{0x00}, []byte(buf[:len(buf)-rest.Len()]))

	// [1, 300]: length counts the 3 payload bytes, not the prefix itself.
	rest, ok = coder.Encode([]uint64{1, 300}, buf)
	require.True(t, ok)
	require.Equal(t, []byte{0x03, 0x01, 0xAC, 0x02}, []byte(buf[:len(buf)-rest.Len()]))
}

func TestArrayCoder_RoundTrip(t *testing.T) {
	coder := NewArrayCoder[uint64](NewVarintCoder[uint64]())

	cases := [][]uint64{
		{},
		{0},
		{1, 300},
		{0, 127, 128, 16384, ^uint64(0)},
	}

	for _, value := range cases {
		buf := make(Span, coder.EncodeSkip(value))

		rest, ok := coder.Encode(value, buf)
		require.True(t, ok)
		require.True(t, rest.Empty(), "EncodeSkip sizes the buffer exactly")

		v, rest, ok := coder.Decode(buf)
		require.True(t, ok)
		require.True(t, rest.Empty())
		require.Len(t, v, len(value))
		for i := range value {
			require.Equal(t, value[i], v[i], "element order is preserved")
		}

		v2, rest2 := coder.DecodeUnsafe(buf)
		require.Equal(t, v, v2)
		require.True(t, rest2.Empty())
	}
}

func TestArrayCoder_EmptyDecode(t *testing.T) {
	coder := NewArrayCoder[uint64](NewVarintCoder[uint64]())

	v, rest, ok := coder.Decode(Span{0x00})
	require.True(t, ok)
	require.Empty(t, v)
	require.True(t, rest.Empty())
}

func TestArrayCoder_FixedWidthElements(t *testing.T) {
	elem := NewIntegerCoder[uint16](endian.GetNativeEngine())
	coder := NewArrayCoder[uint16](elem)

	value := []uint16{1, 2, 3}
	require.Equal(t, 1+6, coder.EncodeSkip(value), "one prefix byte plus three 2-byte elements")

	buf := make(Span, coder.EncodeSkip(value))
	rest, ok := coder.Encode(value, buf)
	require.True(t, ok)
	require.True(t, rest.Empty())
	require.Equal(t, byte(6), buf[0])

	v, _, ok := coder.Decode(buf)
	require.True(t, ok)
	require.Equal(t, value, v)
}

func TestArrayCoder_Nested(t *testing.T) {
	// Composite coders compose: an array of strings delegates to the string
	// coder, which itself is a length-prefixed byte sequence.
	coder := NewArrayCoder[string](NewStringCoder())

	value := []string{"hello", "", "world"}
	buf := make(Span, coder.EncodeSkip(value))

	rest, ok := coder.Encode(value, buf)
	require.True(t, ok)
	require.True(t, rest.Empty())

	v, rest, ok := coder.Decode(buf)
	require.True(t, ok)
	require.Equal(t, value, v)
	require.True(t, rest.Empty())
}

func TestArrayCoder_DecodeFailures(t *testing.T) {
	coder := NewArrayCoder[uint64](NewVarintCoder[uint64]())

	// Undecodable length prefix.
	_, _, ok := coder.Decode(nil)
	require.False(t, ok)

	_, _, ok = coder.Decode(Span{0x80})
	require.False(t, ok)

	// Declared length exceeds remaining input.
	_, _, ok = coder.Decode(Span{0x05, 0x01})
	require.False(t, ok)

	// Trailing partial element: declared length 2 covers one complete
	// varint and the first byte of an unterminated one, so the second
	// element decode fails against the too-short sub-span.
	_, _, ok = coder.Decode(Span{0x02, 0x01, 0x80})
	require.False(t, ok)
}

func TestArrayCoder_EncodeShortBuffer(t *testing.T) {
	coder := NewArrayCoder[uint64](NewVarintCoder[uint64]())
	value := []uint64{1, 300}

	need := coder.EncodeSkip(value)
	for size := 0; size < need; size++ {
		_, ok := coder.Encode(value, make(Span, size))
		require.False(t, ok, "size %d", size)
	}
}

func TestArrayCoder_SkipAgreement(t *testing.T) {
	coder := NewArrayCoder[uint64](NewVarintCoder[uint64]())
	value := []uint64{1, 300, 16384}

	buf := make(Span, coder.EncodeSkip(value)+3)
	rest, ok := coder.Encode(value, buf)
	require.True(t, ok)

	written := len(buf) - rest.Len()
	require.Equal(t, coder.EncodeSkip(value), written)

	tail, ok := coder.DecodeSkip(buf)
	require.True(t, ok)
	require.Equal(t, written, len(buf)-tail.Len())

	tail = coder.DecodeSkipUnsafe(buf)
	require.Equal(t, written, len(buf)-tail.Len())

	// Skip fails on a truncated payload.
	_, ok = coder.DecodeSkip(buf[:written-1])
	require.False(t, ok)
}
