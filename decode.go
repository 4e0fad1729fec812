package jsonext

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/jsonext/internal/wire"
)

const (
	readBufSize = 4096
	// exact decoding of 1e1000000000 would build a billion-digit integer
	maxExactExponent = 10000
)

var errTrailingData = errors.New("trailing data after top-level value")

// Decode parses exactly one JSON value from data. Anything but whitespace
// after the value is a *MalformedJSONError.
func (c *Codec) Decode(data []byte) (any, error) {
	it := c.api.BorrowIterator(data)
	defer c.api.ReturnIterator(it)

	d := decodeState{c: c, iter: it}
	v, err := d.single()
	if err == nil && d.emptyKey {
		// the tokenizer reads null in field name position as ""
		var s fieldScanner
		if i := s.scan(data); i >= 0 {
			v, err = nil, s.errAt(i)
		}
	}
	return v, c.decodeFailed(err)
}

func (c *Codec) DecodeString(s string) (any, error) {
	return c.Decode([]byte(s))
}

// DecodeFrom parses exactly one JSON value from r, reading it to the end.
// Use NewDecoder for a sequence of values.
func (c *Codec) DecodeFrom(r io.Reader) (any, error) {
	src := &trackingReader{r: r}
	d := decodeState{c: c, iter: jsoniter.Parse(c.api, &fieldGuard{r: src}, readBufSize), src: src}
	v, err := d.single()
	return v, c.decodeFailed(err)
}

func (c *Codec) decodeFailed(err error) error {
	if err == nil {
		return nil
	}
	var mj *MalformedJSONError
	if errors.As(err, &mj) {
		c.hooks.MalformedInput(err)
	}
	c.log.Debug("decode failed", Fields{"err": err.Error()})
	return err
}

// Decoder reads successive top-level JSON values from a stream, e.g.
// newline-delimited JSON or concatenated documents.
type Decoder struct {
	c   *Codec
	d   decodeState
	err error
}

func (c *Codec) NewDecoder(r io.Reader) *Decoder {
	src := &trackingReader{r: r}
	return &Decoder{
		c: c,
		d: decodeState{c: c, iter: jsoniter.Parse(c.api, &fieldGuard{r: src}, readBufSize), src: src},
	}
}

// Decode returns the next value. It returns io.EOF once the input is
// exhausted at a value boundary. After any other error the Decoder is done
// and keeps returning that error.
func (dec *Decoder) Decode() (any, error) {
	if dec.err != nil {
		return nil, dec.err
	}
	v, err := dec.d.next()
	if err != nil {
		dec.err = err
		if err != io.EOF {
			dec.c.decodeFailed(err)
		}
		return nil, err
	}
	return v, nil
}

// trackingReader remembers the first real read failure so that it can be
// told apart from malformed input.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

type decodeState struct {
	c        *Codec
	iter     *jsoniter.Iterator
	src      *trackingReader // nil for in-memory input
	emptyKey bool
	err      error
}

func (d *decodeState) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decodeState) ok() bool { return d.err == nil && d.iter.Error == nil }

// single decodes one value and requires the input to end after it.
func (d *decodeState) single() (any, error) {
	v, err := d.next()
	if err == io.EOF {
		return nil, &MalformedJSONError{Err: io.ErrUnexpectedEOF}
	}
	if err != nil {
		return nil, err
	}
	if d.iter.WhatIsNext() != jsoniter.InvalidValue || d.iter.Error != io.EOF {
		if d.iter.Error != nil && d.iter.Error != io.EOF {
			return nil, d.classify(d.iter.Error)
		}
		return nil, &MalformedJSONError{Err: errTrailingData}
	}
	return v, nil
}

// next decodes the next top-level value, or returns io.EOF when only
// whitespace is left.
func (d *decodeState) next() (any, error) {
	kind := d.iter.WhatIsNext()
	if kind == jsoniter.InvalidValue && d.iter.Error == io.EOF {
		if d.src != nil && d.src.err != nil {
			return nil, &IOError{Op: "read", Err: d.src.err}
		}
		return nil, io.EOF
	}
	if kind != jsoniter.NumberValue && d.iter.Error == io.EOF {
		d.iter.Error = nil
	}

	v := d.value()
	if d.err != nil {
		return nil, d.err
	}
	// a number at the very end of the input leaves EOF behind
	if err := d.iter.Error; err != nil && (err != io.EOF || kind != jsoniter.NumberValue) {
		return nil, d.classify(err)
	}
	return v, nil
}

func (d *decodeState) classify(err error) error {
	var mj *MalformedJSONError
	if errors.As(err, &mj) {
		return mj
	}
	if d.src != nil && d.src.err != nil && errors.Is(err, d.src.err) {
		return &IOError{Op: "read", Err: d.src.err}
	}
	if err == io.EOF {
		return &MalformedJSONError{Err: io.ErrUnexpectedEOF}
	}
	return &MalformedJSONError{Err: err}
}

func (d *decodeState) value() any {
	it := d.iter
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.ReadNil()
		return nil
	case jsoniter.BoolValue:
		return it.ReadBool()
	case jsoniter.StringValue:
		return it.ReadString()
	case jsoniter.NumberValue:
		return d.number()
	case jsoniter.ArrayValue:
		b := d.c.arrays()
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			v := d.value()
			if !d.ok() {
				return false
			}
			b.Add(v)
			return true
		})
		if !d.ok() {
			return nil
		}
		return b.Build()
	case jsoniter.ObjectValue:
		b := d.c.objects()
		it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			if !d.ok() {
				return false
			}
			if key == "" {
				d.emptyKey = true
			}
			v := d.value()
			if !d.ok() {
				return false
			}
			b.Set(d.c.keyDecoder(key), v)
			return true
		})
		if !d.ok() {
			return nil
		}
		return b.Build()
	default:
		it.ReportError("decode", "expected a JSON value")
		return nil
	}
}

func (d *decodeState) number() any {
	lit := string(d.iter.ReadNumber())
	if d.iter.Error != nil && d.iter.Error != io.EOF {
		return nil
	}
	if !wire.ValidNumber(lit) {
		d.fail(&MalformedJSONError{Err: fmt.Errorf("%w %q", ErrInvalidNumber, lit)})
		return nil
	}
	return d.c.parseNumber(lit)
}

// parseNumber converts a valid literal. Integers become int64 or *big.Int.
// Other numbers become float64, or *big.Rat in exact mode and when the
// literal is beyond float64 range.
func (c *Codec) parseNumber(lit string) any {
	if wire.IsInteger(lit) {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return i
		}
		n, _ := new(big.Int).SetString(lit, 10)
		return n
	}

	f, err := strconv.ParseFloat(lit, 64)
	if (c.exactDecimals || err != nil) && exponentWithin(lit, maxExactExponent) {
		if r, ok := new(big.Rat).SetString(lit); ok {
			return r
		}
	}
	return f
}

// exponentWithin reports whether the decimal exponent of lit has at most
// limit magnitude.
func exponentWithin(lit string, limit int64) bool {
	for i := 0; i < len(lit); i++ {
		if lit[i] == 'e' || lit[i] == 'E' {
			e, err := strconv.ParseInt(lit[i+1:], 10, 64)
			return err == nil && -limit <= e && e <= limit
		}
	}
	return true
}

// fieldScanner tracks just enough structure to check that every ',' inside
// an object is followed by a quoted field name. The tokenizer enforces the
// rest of the grammar.
type fieldScanner struct {
	stack    []byte // '{' or '['
	inString bool
	escaped  bool
	wantName bool
	off      int64
}

// scan consumes p and returns the index of the first misplaced field name,
// or -1.
func (s *fieldScanner) scan(p []byte) int {
	for i, b := range p {
		if s.inString {
			switch {
			case s.escaped:
				s.escaped = false
			case b == '\\':
				s.escaped = true
			case b == '"':
				s.inString = false
			}
			continue
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if s.wantName {
			if b != '"' {
				return i
			}
			s.wantName = false
			s.inString = true
			continue
		}
		switch b {
		case '"':
			s.inString = true
		case '{', '[':
			s.stack = append(s.stack, b)
		case '}', ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
		case ',':
			s.wantName = len(s.stack) > 0 && s.stack[len(s.stack)-1] == '{'
		}
	}
	s.off += int64(len(p))
	return -1
}

func (s *fieldScanner) errAt(i int) error {
	return &MalformedJSONError{Err: fmt.Errorf("expected a quoted field name at byte %d", s.off+int64(i))}
}

// fieldGuard runs a fieldScanner over a stream. Bytes before a misplaced
// field name are passed on; the next read fails with a *MalformedJSONError.
type fieldGuard struct {
	r   io.Reader
	s   fieldScanner
	err error
}

func (g *fieldGuard) Read(p []byte) (int, error) {
	if g.err != nil {
		return 0, g.err
	}
	n, err := g.r.Read(p)
	if i := g.s.scan(p[:n]); i >= 0 {
		g.err = g.s.errAt(i)
		if i == 0 {
			return 0, g.err
		}
		return i, nil
	}
	return n, err
}
