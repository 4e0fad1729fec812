package jsonext

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNonFiniteNumber is returned when encoding NaN or an infinity.
	ErrNonFiniteNumber = errors.New("jsonext: NaN and infinite numbers have no JSON representation")
	// ErrMaxDepth is returned when nesting exceeds the codec's max depth, which
	// is how cyclic values surface.
	ErrMaxDepth = errors.New("jsonext: maximum nesting depth exceeded")
	// ErrEncoderOutput is returned when an encoder function did not write
	// exactly one complete JSON value.
	ErrEncoderOutput = errors.New("jsonext: encoder must write exactly one JSON value")
	// ErrTokenOrder is returned by Writer methods called out of order, e.g. a
	// field name outside an object or an unbalanced end.
	ErrTokenOrder = errors.New("jsonext: token out of order")
	// ErrInvalidNumber is returned for number literals outside the JSON grammar.
	ErrInvalidNumber = errors.New("jsonext: invalid number literal")
	// ErrDuplicateKey is returned when two keys of one map encode to the same
	// field name, e.g. "a" and K("a") in a map[any]any.
	ErrDuplicateKey = errors.New("jsonext: map keys encode to the same field name")
)

// UnsupportedTypeError reports a value whose type has no encoder.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("jsonext: no encoder registered for type %v", e.Type)
}

// UnsupportedKeyTypeError reports a map key that is not a string, an atom or
// a type with a registered key encoder. Type is nil for a nil key.
type UnsupportedKeyTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedKeyTypeError) Error() string {
	if e.Type == nil {
		return "jsonext: unsupported map key <nil>"
	}
	return fmt.Sprintf("jsonext: unsupported map key type %v", e.Type)
}

// MalformedJSONError wraps a grammar violation, truncated input or trailing
// data. Err carries the tokenizer's message including the byte offset.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return "jsonext: malformed JSON: " + e.Err.Error()
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// IOError wraps a failure of the underlying reader or writer. Op is "read"
// or "write".
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("jsonext: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
