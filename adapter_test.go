package ajson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallbackParserDispatchesAllKinds(t *testing.T) {
	var events []string
	var p CallbackParser
	err := p.Init(0, UTF8, Callbacks{
		Null:        func() error { events = append(events, "null"); return nil },
		Boolean:     func(v bool) error { events = append(events, "bool"); return nil },
		Number:      func(tok *Tokenizer) error { events = append(events, "number"); return nil },
		String:      func(s []byte) error { events = append(events, "string:"+string(s)); return nil },
		BeginArray:  func() error { events = append(events, "["); return nil },
		EndArray:    func() error { events = append(events, "]"); return nil },
		BeginObject: func() error { events = append(events, "{"); return nil },
		EndObject:   func() error { events = append(events, "}"); return nil },
	})
	require.NoError(t, err)

	require.NoError(t, p.Feed([]byte(`[null,true,1.5,"x",{"k":false}]`)))
	kind, err := p.Dispatch()
	require.NoError(t, err)
	require.Equal(t, NeedData, kind)
	require.NoError(t, p.Feed(nil))
	kind, err = p.Dispatch()
	require.NoError(t, err)
	require.Equal(t, End, kind)

	require.Equal(t, []string{
		"[", "null", "bool", "number", "string:x", "{", "string:k", "bool", "}", "]",
	}, events)
}

func TestCallbackParserNilHandlersAreSkipped(t *testing.T) {
	var p CallbackParser
	require.NoError(t, p.Init(IntegerFastPath, UTF8, Callbacks{}))
	require.NoError(t, p.Feed([]byte(`[1,2,3]`)))
	kind, err := p.Dispatch()
	require.NoError(t, err)
	require.Equal(t, NeedData, kind)
	require.NoError(t, p.Feed(nil))
	kind, err = p.Dispatch()
	require.NoError(t, err)
	require.Equal(t, End, kind)
}

func TestCallbackParserStopsOnCallbackError(t *testing.T) {
	boom := errors.New("boom")
	var p CallbackParser
	calls := 0
	require.NoError(t, p.Init(IntegerFastPath, UTF8, Callbacks{
		Integer: func(v int64) error {
			calls++
			if v == 2 {
				return boom
			}
			return nil
		},
	}))
	require.NoError(t, p.Feed([]byte(`[1,2,3]`)))
	kind, err := p.Dispatch()
	require.ErrorIs(t, err, boom)
	require.Equal(t, Integer, kind)
	require.Equal(t, 2, calls)
}

func TestCallbackParserPropagatesTokenError(t *testing.T) {
	var p CallbackParser
	require.NoError(t, p.Init(0, UTF8, Callbacks{}))
	require.NoError(t, p.Feed([]byte(`[,]`)))
	kind, err := p.Dispatch()
	require.Error(t, err)
	require.Equal(t, TokError, kind)
}

func TestCallbackParserResetReusesCallbacks(t *testing.T) {
	var seen []bool
	var p CallbackParser
	require.NoError(t, p.Init(0, UTF8, Callbacks{
		Boolean: func(v bool) error { seen = append(seen, v); return nil },
	}))
	require.NoError(t, p.Feed([]byte(`true`)))
	_, err := p.Dispatch()
	require.NoError(t, err)
	require.NoError(t, p.Feed(nil))
	_, err = p.Dispatch()
	require.NoError(t, err)

	p.Reset()
	require.NoError(t, p.Feed([]byte(`false`)))
	_, err = p.Dispatch()
	require.NoError(t, err)
	require.NoError(t, p.Feed(nil))
	_, err = p.Dispatch()
	require.NoError(t, err)

	require.Equal(t, []bool{true, false}, seen)
}
