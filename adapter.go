package ajson

// Callbacks holds one handler per token kind for CallbackParser. A nil handler
// means that token kind is silently skipped. Returning a non-nil error from any
// handler stops dispatch immediately. There is no file- or descriptor-based
// entry point here: this module does no file or descriptor I/O, only byte
// slices handed in through Feed.
type Callbacks struct {
	Null        func() error
	Boolean     func(v bool) error
	Integer     func(v int64) error
	Number      func(tok *Tokenizer) error
	String      func(s []byte) error
	BeginArray  func() error
	EndArray    func() error
	BeginObject func() error
	EndObject   func() error
}

// CallbackParser adapts Tokenizer's pull-mode token stream to push-mode
// callbacks for callers that prefer an event-driven parse over manually looping
// on NextToken.
type CallbackParser struct {
	Tok Tokenizer
	cb  Callbacks
}

// Init configures the underlying tokenizer and installs the callback table.
func (c *CallbackParser) Init(flags Flags, encoding Encoding, cb Callbacks) error {
	if err := c.Tok.Init(flags, encoding); err != nil {
		return err
	}
	c.cb = cb
	return nil
}

// Reset clears all parse state, retaining the installed callbacks.
func (c *CallbackParser) Reset() {
	c.Tok.Reset()
}

// Feed supplies the next input slice, see Tokenizer.Feed.
func (c *CallbackParser) Feed(buf []byte) error {
	return c.Tok.Feed(buf)
}

// Dispatch pulls tokens and invokes the matching callback until the tokenizer
// needs more input (NeedData), reaches End, raises TokError, or a callback
// returns a non-nil error. The returned TokenKind is whichever of those four
// conditions stopped the loop.
func (c *CallbackParser) Dispatch() (TokenKind, error) {
	for {
		tok := c.Tok.NextToken()

		var err error
		switch tok {
		case NeedData, End:
			return tok, nil
		case TokError:
			return tok, c.Tok.Err()
		case Null:
			if c.cb.Null != nil {
				err = c.cb.Null()
			}
		case Boolean:
			if c.cb.Boolean != nil {
				err = c.cb.Boolean(c.Tok.BooleanValue())
			}
		case Integer:
			if c.cb.Integer != nil {
				err = c.cb.Integer(c.Tok.IntegerValue())
			}
		case Number:
			if c.cb.Number != nil {
				err = c.cb.Number(&c.Tok)
			}
		case String:
			if c.cb.String != nil {
				err = c.cb.String(c.Tok.StringValue())
			}
		case BeginArray:
			if c.cb.BeginArray != nil {
				err = c.cb.BeginArray()
			}
		case EndArray:
			if c.cb.EndArray != nil {
				err = c.cb.EndArray()
			}
		case BeginObject:
			if c.cb.BeginObject != nil {
				err = c.cb.BeginObject()
			}
		case EndObject:
			if c.cb.EndObject != nil {
				err = c.cb.EndObject()
			}
		}
		if err != nil {
			return tok, err
		}
	}
}
