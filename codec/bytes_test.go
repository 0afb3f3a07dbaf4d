package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesCoder_WireVectors(t *testing.T) {
	coder := NewBytesCoder()

	buf := make(Span, 10)
	rest, ok := coder.Encode(nil, buf)
	require.True(t, ok)
	require.Equal(t, []byte{0x00}, []byte(buf[:len(buf)-rest.Len()]), "empty blob is one zero byte")

	rest, ok = coder.Encode([]byte{0xDE, 0xAD}, buf)
	require.True(t, ok)
	require.Equal(t, []byte{0x02, 0xDE, 0xAD}, []byte(buf[:len(buf)-rest.Len()]))
}

func TestBytesCoder_RoundTrip(t *testing.T) {
	coder := NewBytesCoder()

	cases := [][]byte{
		{},
		{0x00},
		[]byte("hello world"),
		[]byte(strings.Repeat("x", 200)), // two-byte length prefix
	}

	for _, value := range cases {
		buf := make(Span, coder.EncodeSkip(value))

		rest, ok := coder.Encode(value, buf)
		require.True(t, ok)
		require.True(t, rest.Empty())

		v, rest, ok := coder.Decode(buf)
		require.True(t, ok)
		require.True(t, rest.Empty())
		require.Equal(t, []byte(value), v)

		v2, rest2 := coder.DecodeUnsafe(buf)
		require.Equal(t, v, v2)
		require.True(t, rest2.Empty())
	}
}

func TestBytesCoder_DecodedValueOwnsStorage(t *testing.T) {
	coder := NewBytesCoder()

	buf := make(Span, 8)
	coder.EncodeUnsafe([]byte("abc"), buf)

	v, _, ok := coder.Decode(buf)
	require.True(t, ok)

	// Mutating the source must not leak into the decoded value.
	buf[1] = 'z'
	require.Equal(t, []byte("abc"), v)
}

func TestBytesCoder_Failures(t *testing.T) {
	coder := NewBytesCoder()

	_, _, ok := coder.Decode(nil)
	require.False(t, ok)

	// Declared length exceeds the remaining input.
	_, _, ok = coder.Decode(Span{0x03, 0x01})
	require.False(t, ok)

	_, ok = coder.DecodeSkip(Span{0x03, 0x01})
	require.False(t, ok)

	value := []byte("hello")
	for size := 0; size < coder.EncodeSkip(value); size++ {
		_, ok := coder.Encode(value, make(Span, size))
		require.False(t, ok, "size %d", size)
	}
}

func TestStringCoder_RoundTrip(t *testing.T) {
	coder := NewStringCoder()

	for _, value := range []string{"", "a", "hello", strings.Repeat("s", 300)} {
		buf := make(Span, coder.EncodeSkip(value))

		rest, ok := coder.Encode(value, buf)
		require.True(t, ok)
		require.True(t, rest.Empty())

		v, rest, ok := coder.Decode(buf)
		require.True(t, ok)
		require.Equal(t, value, v)
		require.True(t, rest.Empty())

		v2, rest2 := coder.DecodeUnsafe(buf)
		require.Equal(t, value, v2)
		require.True(t, rest2.Empty())
	}
}

func TestStringCoder_WireCompatibleWithBytes(t *testing.T) {
	// Same wire layout as BytesCoder: the two decode each other's output.
	sc := NewStringCoder()
	bc := NewBytesCoder()

	buf := make(Span, sc.EncodeSkip("wire"))
	sc.EncodeUnsafe("wire", buf)

	raw, rest, ok := bc.Decode(buf)
	require.True(t, ok)
	require.True(t, rest.Empty())
	require.Equal(t, []byte("wire"), raw)
}

func TestStringCoder_SkipAgreement(t *testing.T) {
	coder := NewStringCoder()
	value := "skip me"

	buf := make(Span, coder.EncodeSkip(value)+2)
	rest, ok := coder.Encode(value, buf)
	require.True(t, ok)

	written := len(buf) - rest.Len()
	require.Equal(t, coder.EncodeSkip(value), written)

	tail, ok := coder.DecodeSkip(buf)
	require.True(t, ok)
	require.Equal(t, written, len(buf)-tail.Len())

	tail = coder.DecodeSkipUnsafe(buf)
	require.Equal(t, written, len(buf)-tail.Len())

	_, ok = coder.DecodeSkip(buf[:written-1])
	require.False(t, ok)
}
