package ajson

// Writer is a push-mode, incremental JSON encoder: callers feed it structural and
// scalar events and pull formatted bytes out through a caller-supplied buffer,
// resuming a partially-written event across short buffers via Continue. A
// growable frame stack tracks array/object nesting and the comma/colon/indent
// separators each event needs.
type Writer struct {
	flags  WriterFlags
	indent string

	stack    []wframe
	wroteOne bool

	pending    []byte
	pendingOff int

	err       *Error
	errSticky bool
}

// WriterFlags configure Writer string escaping.
type WriterFlags int8

const (
	// WriterASCIISafe escapes every code point above U+007F as \uXXXX (surrogate
	// pairs for non-BMP points) instead of copying it through verbatim.
	WriterASCIISafe WriterFlags = 1 << iota

	writerFlagsAll = WriterASCIISafe
)

type wframe struct {
	kind      frameKind // frameArray or frameObject
	first     bool
	expectKey bool // object only
}

// Init configures the writer for a new document. indent must be empty (compact
// output) or contain only JSON whitespace characters; a non-empty indent selects
// pretty-printed output with one copy of indent per nesting level.
func (w *Writer) Init(flags WriterFlags, indent string) error {
	if flags&^writerFlagsAll != 0 {
		return ErrInvalidFlags
	}
	for i := 0; i < len(indent); i++ {
		if !isJSONSpace(indent[i]) {
			return ErrInvalidIndent
		}
	}
	w.flags = flags
	w.indent = indent
	w.Reset()
	return nil
}

// Reset clears all write state, discarding any undrained pending bytes.
func (w *Writer) Reset() {
	w.stack = w.stack[:0]
	w.wroteOne = false
	w.pending = nil
	w.pendingOff = 0
	w.err = nil
	w.errSticky = false
}

func (w *Writer) raise(kind ErrKind) error {
	w.err = &Error{Kind: kind, Filename: "writer.go", Function: "write", Lineno: 0}
	w.errSticky = true
	return w.err
}

// Err returns the error record of the last failed call, or nil.
func (w *Writer) Err() *Error { return w.err }

// Continue drains bytes left over from a write call that did not fully fit in its
// output buffer. done is true once nothing remains to drain.
func (w *Writer) Continue(out []byte) (n int, done bool, err error) {
	if w.errSticky {
		return 0, false, w.err
	}
	if w.pending == nil {
		return 0, true, nil
	}
	return w.drain(out)
}

func (w *Writer) drain(out []byte) (n int, done bool, err error) {
	n = copy(out, w.pending[w.pendingOff:])
	w.pendingOff += n
	done = w.pendingOff >= len(w.pending)
	if done {
		w.pending = nil
		w.pendingOff = 0
	}
	return n, done, nil
}

// begin starts delivering content for a new event. It fails with
// ErrWriteNotConsumed if the previous event's bytes are not fully drained.
func (w *Writer) begin(content []byte, out []byte) (n int, done bool, err error) {
	if w.errSticky {
		return 0, false, w.err
	}
	if w.pending != nil {
		return 0, false, ErrWriteNotConsumed
	}
	w.pending = content
	w.pendingOff = 0
	return w.drain(out)
}

func (w *Writer) depth() int { return len(w.stack) }

// prelude appends the separator/indentation bytes that must precede the next
// scalar or structural token, and validates the call is structurally legal: at
// most one top-level value, strict key/value alternation inside objects.
// wantString is true when the caller is about to write a String event, which is
// the only thing accepted while an object expects a key. It fails with
// ErrWriteNotConsumed, before touching any state, if the previous event's bytes
// are not fully drained.
func (w *Writer) prelude(dst []byte, wantString bool) ([]byte, error) {
	if w.errSticky {
		return nil, w.err
	}
	if w.pending != nil {
		return nil, ErrWriteNotConsumed
	}
	if len(w.stack) == 0 {
		if w.wroteOne {
			return nil, w.raise(ErrWriterState)
		}
		return dst, nil
	}
	top := &w.stack[len(w.stack)-1]
	switch top.kind {
	case frameArray:
		if !top.first {
			dst = append(dst, ',')
		}
		top.first = false
		dst = w.appendNewlineIndent(dst, len(w.stack))
	default: // frameObject
		if top.expectKey {
			if !wantString {
				return nil, w.raise(ErrExpectedString)
			}
			if !top.first {
				dst = append(dst, ',')
			}
			top.first = false
			dst = w.appendNewlineIndent(dst, len(w.stack))
		} else {
			dst = append(dst, ':')
			if w.indent != "" {
				dst = append(dst, ' ')
			}
		}
	}
	return dst, nil
}

// afterValue updates stack/root bookkeeping once a scalar or a matched
// begin/end-container pair has been fully specified (not necessarily fully
// flushed to the caller yet).
func (w *Writer) afterValue() {
	if len(w.stack) == 0 {
		w.wroteOne = true
		return
	}
	top := &w.stack[len(w.stack)-1]
	if top.kind == frameObject {
		top.expectKey = !top.expectKey
	}
}

func (w *Writer) appendNewlineIndent(dst []byte, depth int) []byte {
	if w.indent == "" {
		return dst
	}
	dst = append(dst, '\n')
	for i := 0; i < depth; i++ {
		dst = append(dst, w.indent...)
	}
	return dst
}

// WriteNull emits a null value.
func (w *Writer) WriteNull(out []byte) (n int, done bool, err error) {
	content, err := w.prelude(nil, false)
	if err != nil {
		return 0, false, err
	}
	content = append(content, "null"...)
	w.afterValue()
	return w.begin(content, out)
}

// WriteBoolean emits a boolean value.
func (w *Writer) WriteBoolean(out []byte, v bool) (n int, done bool, err error) {
	content, err := w.prelude(nil, false)
	if err != nil {
		return 0, false, err
	}
	if v {
		content = append(content, "true"...)
	} else {
		content = append(content, "false"...)
	}
	w.afterValue()
	return w.begin(content, out)
}

// WriteInteger emits an integer value.
func (w *Writer) WriteInteger(out []byte, v int64) (n int, done bool, err error) {
	content, err := w.prelude(nil, false)
	if err != nil {
		return 0, false, err
	}
	content = appendInteger(content, v)
	w.afterValue()
	return w.begin(content, out)
}

// WriteNumber emits a floating-point value. NaN and infinities have no JSON
// representation and are rejected with ErrNumericRange.
func (w *Writer) WriteNumber(out []byte, v float64) (n int, done bool, err error) {
	if isNonFinite(v) {
		return 0, false, w.raise(ErrNumericRange)
	}
	content, err := w.prelude(nil, false)
	if err != nil {
		return 0, false, err
	}
	content = appendFloat(content, v)
	w.afterValue()
	return w.begin(content, out)
}

// WriteString emits a string value. In an object awaiting a key this call
// supplies the key; the Writer tracks the alternation automatically. s is
// interpreted per encoding: UTF8 validates full sequences, Latin1 maps every byte
// 1:1 to its code point.
func (w *Writer) WriteString(out []byte, s []byte, encoding Encoding) (n int, done bool, err error) {
	escaped, err := w.escapeString(s, encoding)
	if err != nil {
		return 0, false, w.raise(ErrIllegalUnicode)
	}
	content, err := w.prelude(nil, true)
	if err != nil {
		return 0, false, err
	}
	content = append(content, escaped...)
	w.afterValue()
	return w.begin(content, out)
}

// WriteBeginArray opens a new array.
func (w *Writer) WriteBeginArray(out []byte) (n int, done bool, err error) {
	content, err := w.prelude(nil, false)
	if err != nil {
		return 0, false, err
	}
	content = append(content, '[')
	w.stack = append(w.stack, wframe{kind: frameArray, first: true})
	return w.begin(content, out)
}

// WriteEndArray closes the innermost array.
func (w *Writer) WriteEndArray(out []byte) (n int, done bool, err error) {
	if len(w.stack) == 0 || w.stack[len(w.stack)-1].kind != frameArray {
		return 0, false, w.raise(ErrWriterState)
	}
	wasFirst := w.stack[len(w.stack)-1].first
	w.stack = w.stack[:len(w.stack)-1]
	var content []byte
	if !wasFirst {
		content = w.appendNewlineIndent(content, len(w.stack))
	}
	content = append(content, ']')
	w.afterValue()
	return w.begin(content, out)
}

// WriteBeginObject opens a new object.
func (w *Writer) WriteBeginObject(out []byte) (n int, done bool, err error) {
	content, err := w.prelude(nil, false)
	if err != nil {
		return 0, false, err
	}
	content = append(content, '{')
	w.stack = append(w.stack, wframe{kind: frameObject, first: true, expectKey: true})
	return w.begin(content, out)
}

// WriteEndObject closes the innermost object. It fails with ErrWriterState if the
// object is awaiting a value for a key already written.
func (w *Writer) WriteEndObject(out []byte) (n int, done bool, err error) {
	if len(w.stack) == 0 || w.stack[len(w.stack)-1].kind != frameObject {
		return 0, false, w.raise(ErrWriterState)
	}
	top := w.stack[len(w.stack)-1]
	if !top.expectKey && !top.first {
		return 0, false, w.raise(ErrWriterState)
	}
	w.stack = w.stack[:len(w.stack)-1]
	var content []byte
	if !top.first {
		content = w.appendNewlineIndent(content, len(w.stack))
	}
	content = append(content, '}')
	w.afterValue()
	return w.begin(content, out)
}
