package jsonext

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonext/internal/wire"
)

type frame struct {
	object bool
	n      int  // elements, or fields for an object
	keyed  bool // object only: field name written, value pending
}

// Writer is the token writer handed to encoder functions. It inserts
// separators and indentation and rejects tokens that would not form valid
// JSON. The first error sticks: every later call returns it.
//
// A Writer belongs to one encode call and must not be retained.
type Writer struct {
	c       *Codec
	s       *jsoniter.Stream
	out     io.Writer // nil => keep everything in memory
	stack   []frame
	roots   int
	level   int // encoder nesting, see Codec.encodeValue
	scratch []byte
	err     error
}

func (c *Codec) newWriter(out io.Writer) *Writer {
	return &Writer{
		c:   c,
		s:   jsoniter.NewStream(c.api, nil, streamBufSize),
		out: out,
	}
}

// Err returns the first error the writer recorded.
func (w *Writer) Err() error { return w.err }

func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return w.err
}

func (w *Writer) orderErr(format string, args ...any) error {
	return w.fail(fmt.Errorf("%w: "+format, append([]any{ErrTokenOrder}, args...)...))
}

func (w *Writer) top() *frame {
	if len(w.stack) == 0 {
		return nil
	}
	return &w.stack[len(w.stack)-1]
}

// beforeValue opens the enclosing container lazily and writes the separator.
func (w *Writer) beforeValue() error {
	if w.err != nil {
		return w.err
	}
	f := w.top()
	switch {
	case f == nil:
		if w.roots > 0 {
			return w.orderErr("second top-level value")
		}
		w.roots++
	case f.object:
		if !f.keyed {
			return w.orderErr("object value without a field name")
		}
		f.keyed = false
	default:
		if f.n == 0 {
			w.s.WriteArrayStart()
		} else {
			w.s.WriteMore()
		}
		f.n++
	}
	return nil
}

func (w *Writer) WriteObjectStart() error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{object: true})
	return nil
}

// WriteField writes an object field name. The next token must be its value.
func (w *Writer) WriteField(name string) error {
	if w.err != nil {
		return w.err
	}
	f := w.top()
	if f == nil || !f.object {
		return w.orderErr("field %q outside an object", name)
	}
	if f.keyed {
		return w.orderErr("field %q follows a field without a value", name)
	}
	if f.n == 0 {
		w.s.WriteObjectStart()
	} else {
		w.s.WriteMore()
	}
	f.n++
	f.keyed = true

	w.scratch = wire.AppendString(w.scratch[:0], name, w.c.escapeNonASCII)
	_, _ = w.s.Write(w.scratch)
	if w.c.pretty {
		w.s.WriteRaw(": ")
	} else {
		w.s.WriteRaw(":")
	}
	return nil
}

// WriteKey writes k as a field name through the codec's key encoders.
func (w *Writer) WriteKey(k any) error {
	if w.err != nil {
		return w.err
	}
	name, err := w.c.encodeKey(k)
	if err != nil {
		return w.fail(err)
	}
	return w.WriteField(name)
}

func (w *Writer) WriteObjectEnd() error {
	if w.err != nil {
		return w.err
	}
	f := w.top()
	if f == nil || !f.object {
		return w.orderErr("object end without an open object")
	}
	if f.keyed {
		return w.orderErr("object end after a field without a value")
	}
	if f.n == 0 {
		w.s.WriteEmptyObject()
	} else {
		w.s.WriteObjectEnd()
	}
	w.stack = w.stack[:len(w.stack)-1]
	return w.maybeFlush()
}

func (w *Writer) WriteArrayStart() error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{})
	return nil
}

func (w *Writer) WriteArrayEnd() error {
	if w.err != nil {
		return w.err
	}
	f := w.top()
	if f == nil || f.object {
		return w.orderErr("array end without an open array")
	}
	if f.n == 0 {
		w.s.WriteEmptyArray()
	} else {
		w.s.WriteArrayEnd()
	}
	w.stack = w.stack[:len(w.stack)-1]
	return w.maybeFlush()
}

func (w *Writer) WriteString(s string) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.scratch = wire.AppendString(w.scratch[:0], s, w.c.escapeNonASCII)
	_, _ = w.s.Write(w.scratch)
	return nil
}

func (w *Writer) WriteInt(i int64) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.s.WriteInt64(i)
	return nil
}

func (w *Writer) WriteUint(u uint64) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.s.WriteUint64(u)
	return nil
}

// WriteFloat writes f so that it reads back as a float (always a '.' or an
// exponent). NaN and infinities fail with ErrNonFiniteNumber.
func (w *Writer) WriteFloat(f float64) error { return w.writeFloat(f, 64) }

func (w *Writer) writeFloat(f float64, bits int) error {
	if w.err != nil {
		return w.err
	}
	b, ok := wire.AppendFloat(w.scratch[:0], f, bits)
	if !ok {
		return w.fail(ErrNonFiniteNumber)
	}
	w.scratch = b
	if err := w.beforeValue(); err != nil {
		return err
	}
	_, _ = w.s.Write(w.scratch)
	return nil
}

// WriteNumber writes a raw number literal after checking it against the
// JSON number grammar.
func (w *Writer) WriteNumber(lit string) error {
	if w.err != nil {
		return w.err
	}
	if !wire.ValidNumber(lit) {
		return w.fail(fmt.Errorf("%w: %q", ErrInvalidNumber, lit))
	}
	return w.writeLiteral(lit)
}

// writeLiteral writes a number literal the caller already knows is valid.
func (w *Writer) writeLiteral(lit string) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.s.WriteRaw(lit)
	return nil
}

func (w *Writer) WriteBool(b bool) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.s.WriteBool(b)
	return nil
}

func (w *Writer) WriteNull() error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.s.WriteNil()
	return nil
}

// WriteValue encodes v through the codec's registry, exactly like a
// container element.
func (w *Writer) WriteValue(v any) error {
	return w.c.encodeValue(w, v)
}

type mark struct {
	depth int
	n     int
	keyed bool
}

func (w *Writer) mark() mark {
	f := w.top()
	if f == nil {
		return mark{n: w.roots}
	}
	return mark{depth: len(w.stack), n: f.n, keyed: f.keyed}
}

// wroteOne reports whether exactly one complete value was written since m.
func (w *Writer) wroteOne(m mark) bool {
	if len(w.stack) != m.depth {
		return false
	}
	if m.depth == 0 {
		return w.roots == m.n+1
	}
	f := w.stack[m.depth-1]
	if f.object {
		return m.keyed && !f.keyed && f.n == m.n
	}
	return f.n == m.n+1
}

func (w *Writer) maybeFlush() error {
	if w.out == nil || w.s.Buffered() < flushThreshold {
		return nil
	}
	return w.flush()
}

func (w *Writer) flush() error {
	if w.out == nil {
		return w.err
	}
	buf := w.s.Buffer()
	if len(buf) == 0 {
		return w.err
	}
	if _, err := w.out.Write(buf); err != nil {
		return w.fail(&IOError{Op: "write", Err: err})
	}
	w.s.SetBuffer(buf[:0])
	return w.err
}
