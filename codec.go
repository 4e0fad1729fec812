package jsonext

import (
	"io"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

// Codec bundles the encoder registry, key encoders, decode builders and
// output options. It is immutable after New and safe for concurrent use.
type Codec struct {
	api jsoniter.API

	encoders    *registry[EncoderFunc]
	keyEncoders *registry[KeyEncoderFunc]
	arrays      ArrayDecoder
	objects     ObjectDecoder
	keyDecoder  func(string) any

	pretty         bool
	escapeNonASCII bool
	dateFormat     string
	exactDecimals  bool
	maxDepth       int

	log   Logger
	hooks Hooks
	opts  Options
}

// New builds a codec. It never fails: entries with a nil Type or Fn are
// skipped with a warning.
//
// Encoders are registered built-ins first, then opts.Encoders in order, so a
// user entry replaces the built-in for the same type.
func New(opts Options) *Codec {
	opts = cloneOptions(opts)

	c := &Codec{
		pretty:         opts.Pretty,
		escapeNonASCII: opts.EscapeNonASCII,
		dateFormat:     coalesce(opts.DateFormat, DefaultDateFormat),
		exactDecimals:  opts.ExactDecimals,
		maxDepth:       coalesce(opts.MaxDepth, defaultMaxDepth),
		log:            coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:          coalesce[Hooks](opts.Hooks, NopHooks{}),
		opts:           opts,
	}

	indent := 0
	if opts.Pretty {
		indent = coalesce(opts.Indent, defaultIndent)
	}
	c.api = jsoniter.Config{IndentionStep: indent}.Froze()

	builtins := builtinEncoders()
	c.encoders = newRegistry[EncoderFunc](len(builtins) + len(opts.Encoders))
	for _, e := range builtins {
		c.encoders.register(e.Type, e.Fn)
	}
	for _, e := range opts.Encoders {
		if e.Type == nil || e.Fn == nil {
			c.log.Warn("skipping incomplete encoder entry", Fields{"type": typeName(e.Type)})
			continue
		}
		if c.encoders.register(e.Type, e.Fn) {
			c.hooks.EncoderReplaced(e.Type.String())
			c.log.Debug("encoder replaced", Fields{"type": e.Type.String()})
		}
	}

	keyBuiltins := builtinKeyEncoders()
	c.keyEncoders = newRegistry[KeyEncoderFunc](len(keyBuiltins) + len(opts.KeyEncoders))
	for _, e := range keyBuiltins {
		c.keyEncoders.register(e.Type, e.Fn)
	}
	for _, e := range opts.KeyEncoders {
		if e.Type == nil || e.Fn == nil {
			c.log.Warn("skipping incomplete key encoder entry", Fields{"type": typeName(e.Type)})
			continue
		}
		if c.keyEncoders.register(e.Type, e.Fn) {
			c.hooks.EncoderReplaced(e.Type.String())
			c.log.Debug("key encoder replaced", Fields{"type": e.Type.String()})
		}
	}

	c.arrays = opts.ArrayDecoder
	if c.arrays == nil {
		c.arrays = newSliceBuilder
	}
	c.objects = objectDecoderFor(opts)
	c.keyDecoder = keyDecoderFor(opts)

	c.log.Debug("codec built", Fields{
		"encoders":     c.encoders.len(),
		"key_encoders": c.keyEncoders.len(),
		"pretty":       c.pretty,
		"ascii":        c.escapeNonASCII,
		"date_format":  c.dateFormat,
	})
	return c
}

// With returns a new codec with encoders registered after the receiver's,
// so they win over both built-ins and earlier user entries. The receiver is
// unchanged.
func (c *Codec) With(encoders ...Encoder) *Codec {
	opts := c.Options()
	opts.Encoders = append(opts.Encoders, encoders...)
	return New(opts)
}

// WithKeys is With for key encoders.
func (c *Codec) WithKeys(keyEncoders ...KeyEncoder) *Codec {
	opts := c.Options()
	opts.KeyEncoders = append(opts.KeyEncoders, keyEncoders...)
	return New(opts)
}

// Options returns a copy of the options the codec was built from.
func (c *Codec) Options() Options { return cloneOptions(c.opts) }

func cloneOptions(o Options) Options {
	o.Encoders = slices.Clone(o.Encoders)
	o.KeyEncoders = slices.Clone(o.KeyEncoders)
	return o
}

var defaultCodec = New(Options{})

// Default returns the shared codec built from Options{}.
func Default() *Codec { return defaultCodec }

// Encode encodes v with the default codec.
func Encode(v any) ([]byte, error) { return defaultCodec.Encode(v) }

func EncodeString(v any) (string, error) { return defaultCodec.EncodeString(v) }

func EncodeTo(w io.Writer, v any) error { return defaultCodec.EncodeTo(w, v) }

// Decode decodes one value with the default codec.
func Decode(data []byte) (any, error) { return defaultCodec.Decode(data) }

func DecodeString(s string) (any, error) { return defaultCodec.DecodeString(s) }

func DecodeFrom(r io.Reader) (any, error) { return defaultCodec.DecodeFrom(r) }
