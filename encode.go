package jsonext

import (
	"fmt"
	"io"
	"reflect"
)

// Encode returns the JSON encoding of v.
func (c *Codec) Encode(v any) ([]byte, error) {
	w := c.newWriter(nil)
	if err := c.encodeRoot(w, v); err != nil {
		return nil, err
	}
	return w.s.Buffer(), nil
}

func (c *Codec) EncodeString(v any) (string, error) {
	b, err := c.Encode(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeTo writes the JSON encoding of v to out. Output already flushed
// before a failure is not rolled back.
func (c *Codec) EncodeTo(out io.Writer, v any) error {
	return c.encodeRoot(c.newWriter(out), v)
}

func (c *Codec) encodeRoot(w *Writer, v any) error {
	err := c.encodeValue(w, v)
	if err == nil && len(w.stack) != 0 {
		err = w.fail(fmt.Errorf("%w: %d unclosed containers", ErrEncoderOutput, len(w.stack)))
	}
	if err == nil && w.out != nil {
		err = w.flush()
	}
	if err != nil {
		c.log.Debug("encode failed", Fields{"err": err.Error()})
	}
	return err
}

// encodeValue resolves v's encoder and runs it. Resolution order: exact type,
// newest matching interface entry, a reflective encoder for unnamed slices,
// arrays and maps (see resolve), then the element encoder of a pointer.
func (c *Codec) encodeValue(w *Writer, v any) error {
	if w.err != nil {
		return w.err
	}
	if v == nil {
		return w.WriteNull()
	}

	w.level++
	defer func() { w.level-- }()
	if w.level > c.maxDepth {
		return w.fail(ErrMaxDepth)
	}

	t := reflect.TypeOf(v)
	fn, ok := c.resolve(t)
	if !ok {
		if t.Kind() == reflect.Pointer {
			if c.resolvable(t.Elem()) {
				rv := reflect.ValueOf(v)
				if rv.IsNil() {
					return w.WriteNull()
				}
				return c.encodeValue(w, rv.Elem().Interface())
			}
		}
		c.hooks.UnsupportedType(t.String(), false)
		return w.fail(&UnsupportedTypeError{Type: t})
	}

	m := w.mark()
	if err := fn(v, w); err != nil {
		return w.fail(err)
	}
	if w.err != nil {
		return w.err
	}
	if !w.wroteOne(m) {
		return w.fail(fmt.Errorf("%w: encoder for %v", ErrEncoderOutput, t))
	}
	return nil
}

// resolve returns the registered encoder for t. An unnamed slice, array or
// map without an entry gets a reflective encoder when its element type (and
// key type) resolves. Named types always need an entry.
func (c *Codec) resolve(t reflect.Type) (EncoderFunc, bool) {
	if fn, ok := c.encoders.lookup(t); ok {
		return fn, true
	}
	if t.Name() != "" {
		return nil, false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		if c.resolvable(t.Elem()) {
			return encodeList, true
		}
	case reflect.Map:
		if c.keyResolvable(t.Key()) && c.resolvable(t.Elem()) {
			return encodeMapValue, true
		}
	}
	return nil, false
}

// resolvable reports whether values of static type t can be encoded.
// Interface types are checked per value.
func (c *Codec) resolvable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Pointer:
		if _, ok := c.resolve(t); ok {
			return true
		}
		return c.resolvable(t.Elem())
	}
	_, ok := c.resolve(t)
	return ok
}

func (c *Codec) keyResolvable(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return true
	}
	_, ok := c.keyEncoders.lookup(t)
	return ok
}
