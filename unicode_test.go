package ajson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8ASCII(t *testing.T) {
	r, n, ok := DecodeUTF8([]byte("A"))
	require.True(t, ok)
	require.Equal(t, 1, n)
	require.Equal(t, rune('A'), r)
}

func TestDecodeUTF8Multibyte(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		r    rune
		n    int
	}{
		{"2-byte", []byte{0xC2, 0xA9}, 0xA9, 2},
		{"3-byte", []byte{0xE2, 0x82, 0xAC}, 0x20AC, 3},
		{"4-byte", []byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, n, ok := DecodeUTF8(c.in)
			require.True(t, ok)
			require.Equal(t, c.n, n)
			require.Equal(t, c.r, r)
		})
	}
}

func TestDecodeUTF8Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
	}{
		{"lone continuation", []byte{0x80}},
		{"overlong 2-byte", []byte{0xC0, 0x80}},
		{"overlong 2-byte c1", []byte{0xC1, 0xBF}},
		{"overlong 3-byte", []byte{0xE0, 0x80, 0x80}},
		{"surrogate encoded", []byte{0xED, 0xA0, 0x80}},
		{"above U+10FFFF", []byte{0xF4, 0x90, 0x80, 0x80}},
		{"f5 lead byte", []byte{0xF5, 0x80, 0x80, 0x80}},
		{"truncated 3-byte", []byte{0xE2, 0x82}},
		{"bad continuation", []byte{0xC2, 0x20}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, ok := DecodeUTF8(c.in)
			require.False(t, ok)
		})
	}
}

func TestCombineSurrogates(t *testing.T) {
	r, ok := combineSurrogates(0xD83D, 0xDE00)
	require.True(t, ok)
	require.Equal(t, rune(0x1F600), r)

	_, ok = combineSurrogates(0x0041, 0xDE00)
	require.False(t, ok)
	_, ok = combineSurrogates(0xD83D, 0x0041)
	require.False(t, ok)
}

func TestLatin1ToRune(t *testing.T) {
	require.Equal(t, rune(0x80), latin1ToRune(0x80))
	require.Equal(t, rune(0xFF), latin1ToRune(0xFF))
}

func TestUTF8EncodedLenAndAppend(t *testing.T) {
	require.Equal(t, 0, utf8EncodedLen(-1))
	require.Equal(t, 0, utf8EncodedLen(0xD800))
	require.Equal(t, 4, utf8EncodedLen(0x10FFFF))
	require.Equal(t, 0, utf8EncodedLen(0x110000))

	got := utf8AppendEncode(nil, 0x20AC)
	require.Equal(t, []byte{0xE2, 0x82, 0xAC}, got)
}
