package ajson

import "math"

// This file implements the number-literal sub-machine: a saturating
// accumulate-with-round-on-overflow algorithm for the integer and decimal digit
// runs, plus the "-0 is not an integer" rule.

// beginNumber resets the Components accumulator for a new number literal and, in
// NumberAsString mode, starts capturing the literal's raw bytes into scratch.
func (t *Tokenizer) beginNumber() {
	t.comp = Components{Positive: true, ExponentPositive: true, IsInteger: true}
	if t.flags&NumberAsString != 0 {
		t.scr.clear()
	}
}

// numByte records a just-consumed number-literal byte into scratch when
// NumberAsString mode needs the verbatim literal.
func (t *Tokenizer) numByte(b byte) {
	if t.flags&NumberAsString != 0 {
		t.scr.putByte(b)
	}
}

// runNumber advances the number sub-machine. See runString for the (tok, done)
// return convention.
func (t *Tokenizer) runNumber() (TokenKind, bool) {
	for {
		switch t.pc {
		case pcNumSign:
			b, _, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if b == '-' {
				t.pos++
				t.numByte(b)
				t.comp.Positive = false
			}
			t.pc = pcNumIntFirst

		case pcNumIntFirst:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if eof || !isDigit(b) {
				return t.raise(ErrExpectedDigit), true
			}
			t.pos++
			t.numByte(b)
			if b == '0' {
				t.pc = pcNumAfterInt
			} else {
				t.comp.Integer = uint64(b - '0')
				t.pc = pcNumIntDigits
			}

		case pcNumIntDigits:
			for {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof || !isDigit(b) {
					t.pc = pcNumAfterInt
					break
				}
				digit := uint64(b - '0')
				if t.comp.Integer > (math.MaxUint64-digit)/10 {
					if digit >= 5 && t.comp.Integer < math.MaxUint64 {
						t.comp.Integer++
					}
					t.comp.IsInteger = false
					t.pc = pcNumIntOverflow
					break
				}
				t.pos++
				t.numByte(b)
				t.comp.Integer = t.comp.Integer*10 + digit
			}

		case pcNumIntOverflow:
			for {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof || !isDigit(b) {
					t.pc = pcNumAfterInt
					break
				}
				if t.comp.Exponent == math.MaxUint64 {
					return t.raise(ErrNumericRange), true
				}
				t.comp.Exponent++
				t.pos++
				t.numByte(b)
			}

		case pcNumAfterInt:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			switch {
			case !eof && b == '.':
				t.pos++
				t.numByte(b)
				t.pc = pcNumFracFirst
			case !eof && (b == 'e' || b == 'E'):
				t.pc = pcNumExpMark
			default:
				t.finalizeNoExponent()
				t.pc = pcNumEnd
			}

		case pcNumFracFirst:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if eof || !isDigit(b) {
				return t.raise(ErrExpectedDigit), true
			}
			t.comp.IsInteger = false
			t.pos++
			t.numByte(b)
			t.comp.Decimal = uint64(b - '0')
			t.comp.DecimalPlaces = 1
			t.pc = pcNumFracDigits

		case pcNumFracDigits:
			for {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof || !isDigit(b) {
					t.pc = pcNumAfterFrac
					break
				}
				digit := uint64(b - '0')
				if t.comp.Decimal > (math.MaxUint64-digit)/10 || t.comp.DecimalPlaces == math.MaxUint64 {
					if digit >= 5 && t.comp.Decimal < math.MaxUint64 {
						t.comp.Decimal++
					}
					t.pc = pcNumFracOverflow
					break
				}
				t.pos++
				t.numByte(b)
				t.comp.Decimal = t.comp.Decimal*10 + digit
				t.comp.DecimalPlaces++
			}

		case pcNumFracOverflow:
			for {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof || !isDigit(b) {
					t.pc = pcNumAfterFrac
					break
				}
				t.pos++
				t.numByte(b)
			}

		case pcNumAfterFrac:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if !eof && (b == 'e' || b == 'E') {
				t.pc = pcNumExpMark
			} else {
				t.finalizeNoExponent()
				t.pc = pcNumEnd
			}

		case pcNumExpMark:
			b, _, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			t.pos++
			t.numByte(b)
			t.comp.IsInteger = false
			t.pc = pcNumExpSign

		case pcNumExpSign:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if !eof && (b == '+' || b == '-') {
				t.pos++
				t.numByte(b)
				if b == '-' {
					t.comp.ExponentPositive = false
				}
			}
			t.pc = pcNumExpFirst

		case pcNumExpFirst:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if eof || !isDigit(b) {
				return t.raise(ErrExpectedDigit), true
			}
			t.pos++
			t.numByte(b)
			t.comp.Exponent = uint64(b - '0')
			t.pc = pcNumExpDigits

		case pcNumExpDigits:
			for {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof || !isDigit(b) {
					t.pc = pcNumAfterExp
					break
				}
				digit := uint64(b - '0')
				if t.comp.Exponent > (math.MaxUint64-digit)/10 {
					t.comp.Exponent = math.MaxUint64
					t.pc = pcNumExpOverflow
					break
				}
				t.pos++
				t.numByte(b)
				t.comp.Exponent = t.comp.Exponent*10 + digit
			}

		case pcNumExpOverflow:
			for {
				b, eof, needData := t.tryPeek()
				if needData {
					return NeedData, true
				}
				if eof || !isDigit(b) {
					t.pc = pcNumAfterExp
					break
				}
				t.pos++
				t.numByte(b)
			}

		case pcNumAfterExp:
			t.pc = pcNumEnd

		case pcNumEnd:
			b, eof, needData := t.tryPeek()
			if needData {
				return NeedData, true
			}
			if !eof && isWordChar(b) {
				return t.raise(ErrUnexpectedChar), true
			}
			return t.finishNumber(), true

		default:
			return NeedData, false
		}
	}
}

// finalizeNoExponent applies the "-0 is not an integer" rule once it is known
// the literal has no exponent part (a fraction part already cleared IsInteger
// itself).
func (t *Tokenizer) finalizeNoExponent() {
	if t.comp.Integer == 0 && !t.comp.Positive {
		t.comp.IsInteger = false
	}
}

// finishNumber decides the emitted token kind and payload from the flags and the
// accumulated Components.
func (t *Tokenizer) finishNumber() TokenKind {
	switch {
	case t.flags&NumberAsString != 0:
		t.scr.putByte(0)
		return t.emitScalar(Number, false)
	case t.flags&IntegerFastPath != 0 && t.comp.IsInteger && t.integerFits():
		if t.comp.Positive {
			t.intVal = int64(t.comp.Integer)
		} else {
			t.intVal = -int64(t.comp.Integer)
		}
		return t.emitScalar(Integer, false)
	case t.flags&DecomposedNumbers != 0:
		return t.emitScalar(Number, false)
	default:
		t.numVal = t.combineDouble()
		return t.emitScalar(Number, false)
	}
}

// integerFits reports whether Components.Integer, with Positive's sign applied,
// fits in a signed 64-bit integer.
func (t *Tokenizer) integerFits() bool {
	if t.comp.Positive {
		return t.comp.Integer <= math.MaxInt64
	}
	return t.comp.Integer <= uint64(math.MaxInt64)+1
}

// combineDouble folds Components into a float64: integer part, plus scaled
// decimal part, times the signed power-of-ten exponent, sign applied last.
func (t *Tokenizer) combineDouble() float64 {
	n := float64(t.comp.Integer)
	if t.comp.Decimal > 0 {
		n += float64(t.comp.Decimal) * math.Pow(10, -float64(t.comp.DecimalPlaces))
	}
	if t.comp.Exponent > 0 {
		if t.comp.ExponentPositive {
			n *= math.Pow(10, float64(t.comp.Exponent))
		} else {
			n *= math.Pow(10, -float64(t.comp.Exponent))
		}
	}
	if !t.comp.Positive {
		n = -n
	}
	return n
}
