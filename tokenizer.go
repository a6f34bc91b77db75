package ajson

// Tokenizer is a pull-mode, incremental JSON lexer. It owns no I/O: callers feed it
// byte slices and pull token events until it asks for more via NeedData. The
// dispatch loop is a pushdown automaton over an explicit, growable state stack,
// resumable one byte at a time so a caller can suspend and resume at any point in
// the document.
type Tokenizer struct {
	flags    Flags
	encoding Encoding

	input []byte
	pos   int

	stack []frame
	pc    pcState

	scr scratch

	// literal ("true"/"false"/"null") matching.
	litWant string
	litIdx  int
	litKind TokenKind
	litBool bool

	// string parsing.
	stringIsKey bool
	utf8First   byte
	utf8Need    int // total continuation bytes expected
	utf8Seen    int // continuation bytes consumed so far
	utf8Buf     [3]byte
	hexVal      uint16
	hexLeft     int
	hexHigh     uint16

	// number parsing.
	comp Components

	// last emitted token's payload.
	lastKind TokenKind
	boolVal  bool
	intVal   int64
	numVal   float64

	err       *Error
	errSticky bool
}

// frameKind identifies the grammar context a stack frame tracks.
type frameKind int8

const (
	frameRoot frameKind = iota
	frameArray
	frameObject
)

// frame is one entry of the tokenizer's state stack: one per currently-open
// container, plus a permanent root frame for the single top-level value. The
// stack describes the path from the document root through nested arrays and
// objects.
type frame struct {
	kind frameKind
}

// pcState is the tokenizer's resume label: where NextToken must continue when
// re-entered after a NeedData return. Byte-level sub-progress within one label
// (digits counted, hex nibbles read, UTF-8 continuation bytes seen) rides in the
// Tokenizer fields above rather than in a separate label per byte, since within
// one label at most one scalar is ever in flight.
type pcState int8

const (
	pcRootLeadWS pcState = iota
	pcRootTrailWS

	pcValue

	pcLiteral
	pcLiteralEnd

	pcStringBody
	pcStringUTF8Cont
	pcStringEscape
	pcStringUnicodeHex
	pcStringSurrogateBackslash
	pcStringSurrogateU
	pcStringUnicodeHexLow

	pcNumSign
	pcNumIntFirst
	pcNumIntDigits
	pcNumIntOverflow
	pcNumAfterInt
	pcNumFracFirst
	pcNumFracDigits
	pcNumFracOverflow
	pcNumAfterFrac
	pcNumExpMark
	pcNumExpSign
	pcNumExpFirst
	pcNumExpDigits
	pcNumExpOverflow
	pcNumAfterExp
	pcNumEnd

	pcArrayAfterOpen
	pcArrayAfterValue

	pcObjectAfterOpen
	pcObjectBeforeKey
	pcObjectAfterKey
	pcObjectAfterValue

	pcError
)

// Init configures the tokenizer for a new document. flags must not combine
// NumberAsString with IntegerFastPath or DecomposedNumbers.
func (t *Tokenizer) Init(flags Flags, encoding Encoding) error {
	if !flags.valid() {
		return ErrInvalidFlags
	}
	t.flags = flags
	t.encoding = encoding
	t.Reset()
	return nil
}

// Reset clears all parse state and retains allocations (stack, scratch buffer)
// for reuse.
func (t *Tokenizer) Reset() {
	t.input = nil
	t.pos = 0
	t.stack = t.stack[:0]
	t.stack = append(t.stack, frame{kind: frameRoot})
	t.pc = pcRootLeadWS
	t.scr.clear()
	t.litWant = ""
	t.litIdx = 0
	t.stringIsKey = false
	t.utf8Need = 0
	t.utf8Seen = 0
	t.hexLeft = 0
	t.comp = Components{}
	t.lastKind = NeedData
	t.err = nil
	t.errSticky = false
}

// Feed supplies the next input slice. buf is borrowed for the duration of the
// NextToken calls that consume it. A zero-length buf signals end of input. Feed
// fails with ErrFeedNotConsumed if the previous slice still has unread bytes.
func (t *Tokenizer) Feed(buf []byte) error {
	if t.pos < len(t.input) {
		return ErrFeedNotConsumed
	}
	if len(buf) == 0 {
		buf = []byte{} // non-nil, so it differs from "nothing fed yet"
	}
	t.input = buf
	t.pos = 0
	return nil
}

func (t *Tokenizer) atEOF() bool {
	return t.input != nil && len(t.input) == 0
}

// tryPeek returns the next unread byte without consuming it. needData is true
// when the current input slice is exhausted but was not the empty end-of-input
// signal, meaning the caller must Feed more before progress can continue. eof is
// true when the document has genuinely ended (the last fed slice was empty).
func (t *Tokenizer) tryPeek() (b byte, eof bool, needData bool) {
	if t.pos < len(t.input) {
		return t.input[t.pos], false, false
	}
	if t.atEOF() {
		return 0, true, false
	}
	return 0, false, true
}

func isJSONSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordChar(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func (t *Tokenizer) topFrame() *frame {
	return &t.stack[len(t.stack)-1]
}

func (t *Tokenizer) pushFrame(k frameKind) {
	t.stack = append(t.stack, frame{kind: k})
}

func (t *Tokenizer) popFrame() {
	t.stack = t.stack[:len(t.stack)-1]
}

// raise records an in-band error, pins the machine to the sticky error state, and
// returns TokError. Once raised, every subsequent NextToken call re-raises the
// same error until Reset.
func (t *Tokenizer) raise(kind ErrKind) TokenKind {
	t.err = &Error{Kind: kind, Filename: "tokenizer.go", Function: "NextToken", Lineno: 0}
	t.errSticky = true
	t.pc = pcError
	t.lastKind = TokError
	return TokError
}

// NextToken advances the state machine and returns the next token kind. When it
// returns NeedData the caller must Feed more input (or an empty slice for EOF)
// before calling again.
func (t *Tokenizer) NextToken() TokenKind {
	if t.errSticky {
		t.lastKind = TokError
		return TokError
	}

	for {
		switch t.pc {

		case pcRootLeadWS:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			_, eof, _ := t.tryPeek()
			if eof {
				return t.raise(ErrUnexpectedEOF)
			}
			t.pc = pcValue

		case pcRootTrailWS:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			_, eof, _ := t.tryPeek()
			if !eof {
				return t.raise(ErrUnexpectedChar)
			}
			t.lastKind = End
			return End

		case pcValue:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData
			}
			if eof {
				return t.raise(ErrUnexpectedEOF)
			}
			switch {
			case b == 't':
				t.pos++
				t.litWant, t.litIdx, t.litKind, t.litBool = "rue", 0, Boolean, true
				t.pc = pcLiteral
			case b == 'f':
				t.pos++
				t.litWant, t.litIdx, t.litKind, t.litBool = "alse", 0, Boolean, false
				t.pc = pcLiteral
			case b == 'n':
				t.pos++
				t.litWant, t.litIdx, t.litKind, t.litBool = "ull", 0, Null, false
				t.pc = pcLiteral
			case b == '"':
				t.pos++
				t.scr.clear()
				t.stringIsKey = false
				t.pc = pcStringBody
			case b == '-' || isDigit(b):
				t.beginNumber()
				t.pc = pcNumSign
			case b == '[':
				t.pos++
				t.pushFrame(frameArray)
				t.pc = pcArrayAfterOpen
				t.lastKind = BeginArray
				return BeginArray
			case b == '{':
				t.pos++
				t.pushFrame(frameObject)
				t.pc = pcObjectAfterOpen
				t.lastKind = BeginObject
				return BeginObject
			default:
				return t.raise(ErrUnexpectedChar)
			}

		case pcLiteral:
			for t.litIdx < len(t.litWant) {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData
				}
				if eof || b != t.litWant[t.litIdx] {
					return t.raise(ErrUnexpectedChar)
				}
				t.pos++
				t.litIdx++
			}
			t.pc = pcLiteralEnd

		case pcLiteralEnd:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData
			}
			if !eof && isWordChar(b) {
				return t.raise(ErrUnexpectedChar)
			}
			if t.litKind == Boolean {
				t.boolVal = t.litBool
				return t.emitScalar(Boolean, false)
			}
			return t.emitScalar(Null, false)

		case pcArrayAfterOpen:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			b, eof, _ := t.tryPeek()
			if eof {
				return t.raise(ErrUnexpectedEOF)
			}
			if b == ']' {
				t.pos++
				t.popFrame()
				t.pc = t.resumeAfterContainer()
				t.lastKind = EndArray
				return EndArray
			}
			t.pc = pcValue

		case pcArrayAfterValue:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			b, eof, _ := t.tryPeek()
			if eof {
				return t.raise(ErrUnexpectedEOF)
			}
			if b == ']' {
				t.pos++
				t.popFrame()
				t.pc = t.resumeAfterContainer()
				t.lastKind = EndArray
				return EndArray
			}
			if b != ',' {
				return t.raise(ErrExpectedCommaOrArrayEnd)
			}
			t.pos++
			t.pc = pcValue

		case pcObjectAfterOpen:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			b, eof, _ := t.tryPeek()
			if eof {
				return t.raise(ErrUnexpectedEOF)
			}
			if b == '}' {
				t.pos++
				t.popFrame()
				t.pc = t.resumeAfterContainer()
				t.lastKind = EndObject
				return EndObject
			}
			t.pc = pcObjectBeforeKey

		case pcObjectBeforeKey:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData
			}
			if eof || b != '"' {
				return t.raise(ErrExpectedString)
			}
			t.pos++
			t.scr.clear()
			t.stringIsKey = true
			t.pc = pcStringBody

		case pcObjectAfterKey:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			b, eof, _ := t.tryPeek()
			if eof {
				return t.raise(ErrUnexpectedEOF)
			}
			if b != ':' {
				return t.raise(ErrExpectedColon)
			}
			t.pos++
			t.pc = pcValue

		case pcObjectAfterValue:
			if needData := t.skipWS(); needData {
				return NeedData
			}
			b, eof, _ := t.tryPeek()
			if eof {
				return t.raise(ErrUnexpectedEOF)
			}
			if b == '}' {
				t.pos++
				t.popFrame()
				t.pc = t.resumeAfterContainer()
				t.lastKind = EndObject
				return EndObject
			}
			if b != ',' {
				return t.raise(ErrExpectedCommaOrObjectEnd)
			}
			t.pos++
			t.pc = pcObjectBeforeKey

			// pcError has no case here: raise sets errSticky in the same breath it
			// sets t.pc = pcError, and the errSticky check at the top of NextToken
			// returns before this switch ever sees that pc value again.
		}

		if t.pc >= pcStringBody && t.pc <= pcStringUnicodeHexLow {
			if tok, done := t.runString(); done {
				return tok
			}
			continue
		}
		if t.pc >= pcNumSign && t.pc <= pcNumEnd {
			if tok, done := t.runNumber(); done {
				return tok
			}
			continue
		}
	}
}

// skipWS consumes whitespace bytes until a non-whitespace byte, EOF, or input
// exhaustion. It returns needData=true if the caller must return NeedData.
func (t *Tokenizer) skipWS() (needData bool) {
	for {
		b, eof, nd := t.tryPeek()
		if nd {
			return true
		}
		if eof || !isJSONSpace(b) {
			return false
		}
		t.pos++
	}
}

// resumeAfterContainer decides which pc to resume in once a container (just
// popped) or scalar has finished, based on the frame that now contains it.
func (t *Tokenizer) resumeAfterContainer() pcState {
	switch t.topFrame().kind {
	case frameRoot:
		return pcRootTrailWS
	case frameArray:
		return pcArrayAfterValue
	default:
		return pcObjectAfterValue
	}
}

// emitScalar finalizes a just-parsed scalar value (literal, string, or number)
// and returns it to the caller, transitioning pc for the next call based on the
// enclosing frame and whether this was an object key.
func (t *Tokenizer) emitScalar(kind TokenKind, wasKey bool) TokenKind {
	if wasKey {
		t.pc = pcObjectAfterKey
	} else {
		t.pc = t.resumeAfterContainer()
	}
	t.lastKind = kind
	return kind
}

// BooleanValue returns the value of the last emitted Boolean token.
func (t *Tokenizer) BooleanValue() bool { return t.boolVal }

// IntegerValue returns the value of the last emitted Integer token.
func (t *Tokenizer) IntegerValue() int64 { return t.intVal }

// NumberValue returns the combined double of the last emitted Number token (valid
// only when neither DecomposedNumbers nor NumberAsString was set).
func (t *Tokenizer) NumberValue() float64 { return t.numVal }

// StringValue returns the bytes of the last emitted String token, or of a Number
// token emitted under NumberAsString. The slice aliases the tokenizer's scratch
// buffer and is valid only until the next call that may reuse it (the next
// String/Number token, or Reset).
func (t *Tokenizer) StringValue() []byte {
	b := t.scr.bytes()
	if len(b) == 0 {
		return b
	}
	return b[:len(b)-1] // drop the trailing NUL terminator
}

// Components returns the decomposed form of the last emitted Number token (valid
// under DecomposedNumbers, and always internally accurate regardless of mode).
func (t *Tokenizer) Components() Components { return t.comp }

// Err returns the error record of the last TokError token, or nil.
func (t *Tokenizer) Err() *Error { return t.err }
