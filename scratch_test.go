package ajson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScratchGrowAndClear(t *testing.T) {
	var s scratch
	for i := 0; i < scratchIncrement+100; i++ {
		s.putByte('x')
	}
	require.Equal(t, scratchIncrement+100, s.len())
	s.clear()
	require.Equal(t, 0, s.len())
	require.GreaterOrEqual(t, cap(s.buf), scratchIncrement)
}

func TestScratchPutBytesAndRune(t *testing.T) {
	var s scratch
	s.putBytes([]byte("abc"))
	require.NoError(t, s.putRune(0x20AC))
	require.Equal(t, append([]byte("abc"), 0xE2, 0x82, 0xAC), s.bytes())
}

func TestScratchPutRuneRejectsSurrogate(t *testing.T) {
	var s scratch
	err := s.putRune(0xD800)
	require.Error(t, err)
}
