package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarintCoder_Encode_WireVectors(t *testing.T) {
	coder := NewVarintCoder[uint64]()

	cases := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{16383, []byte{0xFF, 0x7F}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}

	for _, tc := range cases {
		buf := make(Span, 10)
		rest, ok := coder.Encode(tc.value, buf)
		require.True(t, ok, "value %d", tc.value)
		require.Equal(t, tc.want, []byte(buf[:len(buf)-rest.Len()]), "value %d", tc.value)
	}
}

func TestVarintCoder_Encode_MaxUint64(t *testing.T) {
	coder := NewVarintCoder[uint64]()

	buf := make(Span, 16)
	rest, ok := coder.Encode(^uint64(0), buf)
	require.True(t, ok)
	require.Equal(t, 10, len(buf)-rest.Len(), "max uint64 occupies ten 7-bit groups")

	v, tail, ok := coder.Decode(buf)
	require.True(t, ok)
	require.Equal(t, ^uint64(0), v)
	require.Equal(t, 6, tail.Len())
}

func TestVarintCoder_RoundTrip(t *testing.T) {
	coder := NewVarintCoder[uint64]()

	values := []uint64{0, 1, 42, 127, 128, 255, 300, 1 << 14, 1 << 21, 1 << 35, 1<<63 - 1, ^uint64(0)}
	for _, value := range values {
		buf := make(Span, coder.EncodeSkip(value))

		// Safe mode round trip against an exactly sized buffer.
		rest, ok := coder.Encode(value, buf)
		require.True(t, ok, "value %d", value)
		require.True(t, rest.Empty(), "value %d should fill the buffer exactly", value)

		v, rest, ok := coder.Decode(buf)
		require.True(t, ok, "value %d", value)
		require.Equal(t, value, v)
		require.True(t, rest.Empty())

		// Unsafe mode produces identical bytes.
		buf2 := make(Span, coder.EncodeSkip(value))
		rest = coder.EncodeUnsafe(value, buf2)
		require.True(t, rest.Empty())
		require.Equal(t, []byte(buf), []byte(buf2))

		v2, rest := coder.DecodeUnsafe(buf2)
		require.Equal(t, value, v2)
		require.True(t, rest.Empty())
	}
}

func TestVarintCoder_SignedRawBitPattern(t *testing.T) {
	// Signed varints encode the raw two's-complement pattern at the type's
	// own width, not a zigzag mapping.
	coder32 := NewVarintCoder[int32]()

	buf := make(Span, 10)
	rest, ok := coder32.Encode(-1, buf)
	require.True(t, ok)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, []byte(buf[:len(buf)-rest.Len()]),
		"int32(-1) encodes as the 32-bit all-ones pattern")

	v, _, ok := coder32.Decode(buf)
	require.True(t, ok)
	require.Equal(t, int32(-1), v)

	// Narrow widths stay narrow: int8(-1) is 0xFF, two groups.
	coder8 := NewVarintCoder[int8]()
	require.Equal(t, 2, coder8.EncodeSkip(-1))

	buf8 := make(Span, coder8.EncodeSkip(-1))
	coder8.EncodeUnsafe(-1, buf8)
	require.Equal(t, []byte{0xFF, 0x01}, []byte(buf8))

	v8, _, ok := coder8.Decode(buf8)
	require.True(t, ok)
	require.Equal(t, int8(-1), v8)
}

func TestVarintCoder_EncodeSkip_MatchesEncode(t *testing.T) {
	coder := NewVarintCoder[uint64]()

	for _, value := range []uint64{0, 1, 127, 128, 300, 1<<28 - 1, 1 << 28, ^uint64(0)} {
		buf := make(Span, 12)
		rest, ok := coder.Encode(value, buf)
		require.True(t, ok)

		written := len(buf) - rest.Len()
		require.Equal(t, written, coder.EncodeSkip(value), "value %d", value)

		// DecodeSkip consumes the same byte count.
		tail, ok := coder.DecodeSkip(buf)
		require.True(t, ok)
		require.Equal(t, written, len(buf)-tail.Len(), "value %d", value)

		tail = coder.DecodeSkipUnsafe(buf)
		require.Equal(t, written, len(buf)-tail.Len(), "value %d", value)
	}
}

func TestVarintCoder_Encode_ShortBuffer(t *testing.T) {
	coder := NewVarintCoder[uint64]()

	// One byte shorter than the minimum required must report absence.
	for _, value := range []uint64{0, 128, 300, ^uint64(0)} {
		need := coder.EncodeSkip(value)
		buf := make(Span, need-1)

		_, ok := coder.Encode(value, buf)
		require.False(t, ok, "value %d must not fit in %d bytes", value, need-1)
	}
}

func TestVarintCoder_Decode_Truncated(t *testing.T) {
	coder := NewVarintCoder[uint64]()

	// Empty input.
	_, _, ok := coder.Decode(nil)
	require.False(t, ok)

	// All continuation bits set, no terminating byte.
	_, _, ok = coder.Decode(Span{0x80, 0x80, 0x80})
	require.False(t, ok)

	_, ok = coder.DecodeSkip(Span{0x80, 0x80, 0x80})
	require.False(t, ok)

	_, ok = coder.DecodeSkip(nil)
	require.False(t, ok)
}

func BenchmarkVarintCoder_Encode(b *testing.B) {
	coder := NewVarintCoder[uint64]()
	buf := make(Span, 10)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = coder.Encode(1<<35+17, buf)
	}
}

func BenchmarkVarintCoder_DecodeUnsafe(b *testing.B) {
	coder := NewVarintCoder[uint64]()
	buf := make(Span, 10)
	coder.EncodeUnsafe(1<<35+17, buf)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = coder.DecodeUnsafe(buf)
	}
}
