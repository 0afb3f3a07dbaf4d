package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpan_LenEmpty(t *testing.T) {
	var s Span
	require.Equal(t, 0, s.Len())
	require.True(t, s.Empty())

	s = Span{1, 2, 3}
	require.Equal(t, 3, s.Len())
	require.False(t, s.Empty())
}

func TestSpan_SharesBackingStorage(t *testing.T) {
	// A span is a view, not a copy: suffix spans returned by coders alias
	// the original buffer.
	buf := make(Span, 4)
	coder := NewVarintCoder[uint64]()

	rest, ok := coder.Encode(1, buf)
	require.True(t, ok)
	require.Equal(t, 3, rest.Len())

	rest[0] = 0xEE
	require.Equal(t, byte(0xEE), buf[1])
}
