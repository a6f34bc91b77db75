package ajson

// This file implements the string-literal sub-machine: the named-escape table,
// \uXXXX handling, surrogate-pair combination, and the per-encoding high-byte
// handling split between Latin-1 passthrough and UTF-8 validation. It is entered
// from Tokenizer.NextToken whenever t.pc lands in the pcStringBody..
// pcStringUnicodeHexLow range and runs until it must return a token (or
// NeedData) to the caller.

func hexDigit(b byte) (v byte, ok bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// runString advances the string sub-machine. It returns (tok, true) when
// NextToken must return tok immediately (a completed token or NeedData), or
// (_, false) when pc has moved out of the string range and the caller's main loop
// should re-dispatch.
func (t *Tokenizer) runString() (TokenKind, bool) {
	for {
		switch t.pc {
		case pcStringBody:
			for {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof {
					return t.raise(ErrUnexpectedEOF), true
				}
				if b == '"' {
					t.pos++
					t.scr.putByte(0)
					return t.emitScalar(String, t.stringIsKey), true
				}
				if b == '\\' {
					t.pos++
					t.pc = pcStringEscape
					break
				}
				if b < 0x20 {
					return t.raise(ErrUnexpectedChar), true
				}
				if b < 0x80 {
					t.pos++
					t.scr.putByte(b)
					continue
				}
				if t.encoding == Latin1 {
					t.pos++
					if err := t.scr.putRune(latin1ToRune(b)); err != nil {
						return t.raise(ErrIllegalUnicode), true
					}
					continue
				}
				n, ok := utf8SeqLen(b)
				if !ok || n == 1 {
					return t.raise(ErrIllegalUnicode), true
				}
				t.pos++
				t.utf8First = b
				t.utf8Need = n - 1
				t.utf8Seen = 0
				t.pc = pcStringUTF8Cont
				break
			}

		case pcStringUTF8Cont:
			for t.utf8Seen < t.utf8Need {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof || !isContinuation(b) {
					return t.raise(ErrIllegalUnicode), true
				}
				t.pos++
				t.utf8Buf[t.utf8Seen] = b
				t.utf8Seen++
			}
			var seq [4]byte
			seq[0] = t.utf8First
			copy(seq[1:], t.utf8Buf[:t.utf8Need])
			r, _, ok := DecodeUTF8(seq[:1+t.utf8Need])
			if !ok {
				return t.raise(ErrIllegalUnicode), true
			}
			if err := t.scr.putRune(r); err != nil {
				return t.raise(ErrIllegalUnicode), true
			}
			t.pc = pcStringBody

		case pcStringEscape:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if eof {
				return t.raise(ErrUnexpectedEOF), true
			}
			t.pos++
			switch b {
			case '"', '\\', '/':
				t.scr.putByte(b)
				t.pc = pcStringBody
			case 'b':
				t.scr.putByte('\b')
				t.pc = pcStringBody
			case 'f':
				t.scr.putByte('\f')
				t.pc = pcStringBody
			case 'n':
				t.scr.putByte('\n')
				t.pc = pcStringBody
			case 'r':
				t.scr.putByte('\r')
				t.pc = pcStringBody
			case 't':
				t.scr.putByte('\t')
				t.pc = pcStringBody
			case 'u':
				t.hexVal = 0
				t.hexLeft = 4
				t.pc = pcStringUnicodeHex
			default:
				return t.raise(ErrIllegalEscape), true
			}

		case pcStringUnicodeHex:
			for t.hexLeft > 0 {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof {
					return t.raise(ErrUnexpectedEOF), true
				}
				d, ok := hexDigit(b)
				if !ok {
					return t.raise(ErrExpectedHex), true
				}
				t.pos++
				t.hexVal = t.hexVal<<4 | uint16(d)
				t.hexLeft--
			}
			switch {
			case isHighSurrogate(t.hexVal):
				t.hexHigh = t.hexVal
				t.pc = pcStringSurrogateBackslash
			case isLowSurrogate(t.hexVal):
				return t.raise(ErrIllegalUnicode), true
			default:
				if err := t.scr.putRune(rune(t.hexVal)); err != nil {
					return t.raise(ErrIllegalUnicode), true
				}
				t.pc = pcStringBody
			}

		case pcStringSurrogateBackslash:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if eof || b != '\\' {
				return t.raise(ErrIllegalUnicode), true
			}
			t.pos++
			t.pc = pcStringSurrogateU

		case pcStringSurrogateU:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if eof || b != 'u' {
				return t.raise(ErrIllegalUnicode), true
			}
			t.pos++
			t.hexVal = 0
			t.hexLeft = 4
			t.pc = pcStringUnicodeHexLow

		case pcStringUnicodeHexLow:
			for t.hexLeft > 0 {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof {
					return t.raise(ErrUnexpectedEOF), true
				}
				d, ok := hexDigit(b)
				if !ok {
					return t.raise(ErrExpectedHex), true
				}
				t.pos++
				t.hexVal = t.hexVal<<4 | uint16(d)
				t.hexLeft--
			}
			if !isLowSurrogate(t.hexVal) {
				return t.raise(ErrIllegalUnicode), true
			}
			r, ok := combineSurrogates(t.hexHigh, t.hexVal)
			if !ok {
				return t.raise(ErrIllegalUnicode), true
			}
			if err := t.scr.putRune(r); err != nil {
				return t.raise(ErrIllegalUnicode), true
			}
			t.pc = pcStringBody

		default:
			return NeedData, false
		}
	}
}
