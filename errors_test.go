package ajson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrKindString(t *testing.T) {
	require.Equal(t, "no error", ErrNone.String())
	require.Equal(t, "unexpected character", ErrUnexpectedChar.String())
	require.Equal(t, "<unknown error>", ErrKind(127).String())
}

func TestErrorFormatting(t *testing.T) {
	e := &Error{Kind: ErrUnexpectedEOF, Filename: "f.go", Function: "g", Lineno: 9}
	require.Contains(t, e.Error(), "unexpected end of input")
	require.Contains(t, e.Error(), "f.go:9")
}

func TestSentinelWrapping(t *testing.T) {
	require.True(t, errors.Is(ErrFeedNotConsumed, ErrArgument))
	require.True(t, errors.Is(ErrInvalidFlags, ErrArgument))
	require.True(t, errors.Is(ErrInvalidIndent, ErrArgument))
	require.True(t, errors.Is(ErrWriteNotConsumed, ErrArgument))
}
