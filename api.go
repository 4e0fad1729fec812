package jsonext

import "reflect"

// EncoderFunc writes v as exactly one complete JSON value.
type EncoderFunc func(v any, w *Writer) error

// KeyEncoderFunc renders a map key as an object field name.
type KeyEncoderFunc func(k any) (string, error)

// Encoder binds an EncoderFunc to a type. Type may be an interface type, in
// which case the entry serves every type that implements it and has no exact
// entry of its own.
type Encoder struct {
	Type reflect.Type
	Fn   EncoderFunc
}

// KeyEncoder binds a KeyEncoderFunc to a map key type.
type KeyEncoder struct {
	Type reflect.Type
	Fn   KeyEncoderFunc
}

// For builds an Encoder for T from a typed function.
func For[T any](fn func(v T, w *Writer) error) Encoder {
	return Encoder{
		Type: reflect.TypeFor[T](),
		Fn:   func(v any, w *Writer) error { return fn(v.(T), w) },
	}
}

// KeyFor builds a KeyEncoder for T from a typed function.
func KeyFor[T any](fn func(k T) (string, error)) KeyEncoder {
	return KeyEncoder{
		Type: reflect.TypeFor[T](),
		Fn:   func(k any) (string, error) { return fn(k.(T)) },
	}
}

// Marshaler is implemented by types that write themselves. It is a built-in
// interface entry: an exact registration for the type still takes precedence.
type Marshaler interface {
	EncodeJSON(w *Writer) error
}

// ArrayBuilder accumulates the elements of one JSON array.
type ArrayBuilder interface {
	Add(v any)
	Build() any
}

// ObjectBuilder accumulates the members of one JSON object. key is the
// output of the codec's key decoder.
type ObjectBuilder interface {
	Set(key, v any)
	Build() any
}

// ArrayDecoder returns a fresh builder for each array in the input.
type ArrayDecoder func() ArrayBuilder

// ObjectDecoder returns a fresh builder for each object in the input.
type ObjectDecoder func() ObjectBuilder

// Options configure a Codec. The zero value is the default codec: compact
// output, raw UTF-8, DefaultDateFormat, string keys and Go maps/slices.
type Options struct {
	Pretty bool
	Indent int // spaces per level when Pretty; 0 => 2

	// EscapeNonASCII writes every code point >= 0x80 as \uXXXX.
	EscapeNonASCII bool

	// DateFormat is the Go time layout for time.Time leaves and for
	// Timestamps without their own Format. "" => DefaultDateFormat.
	DateFormat string

	// Key decoding: KeyFn wins over Keywordize; neither => keys stay strings.
	Keywordize bool
	KeyFn      func(key string) any

	// OrderedObjects decodes objects into *OrderedMap.
	OrderedObjects bool

	// ExactDecimals decodes non-integer numbers into *big.Rat.
	ExactDecimals bool

	// Builder overrides; nil => chosen from the options above.
	ObjectDecoder ObjectDecoder
	ArrayDecoder  ArrayDecoder

	// Registered after the built-ins, in order. Last entry for a type wins.
	Encoders    []Encoder
	KeyEncoders []KeyEncoder

	MaxDepth int // 0 => 10000

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}
