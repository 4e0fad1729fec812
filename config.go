package jsonext

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/uber-go/mapdecode"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// attributeMap is a normalised option map. Options are popped as they are
// read, so whatever is left over is unknown and ignored.
type attributeMap map[string]any

func (m attributeMap) pop(name string, dst any) error {
	v, ok := m[name]
	if !ok {
		return nil
	}
	delete(m, name)
	if err := mapdecode.Decode(dst, v); err != nil {
		return fmt.Errorf("jsonext: option %q: cannot use %v (%T): %v", name, v, v, err)
	}
	return nil
}

func (m attributeMap) take(name string) (any, bool) {
	v, ok := m[name]
	if ok {
		delete(m, name)
	}
	return v, ok
}

// normalizeKey lower-cases k, maps '-' to '_' and drops a trailing '?', so
// "Escape-Non-ASCII" and "keywordize?" name the same options as
// "escape_non_ascii" and "keywordize".
func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.TrimSuffix(k, "?")
	return strings.ReplaceAll(k, "-", "_")
}

func normalize(m map[string]any) attributeMap {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make(attributeMap, len(m))
	for _, k := range keys {
		attrs[normalizeKey(k)] = m[k]
	}
	return attrs
}

// ParseOptions reads Options from a loosely typed map, as produced by JSON or
// YAML configuration. Recognised keys:
//
//	pretty, indent, escape_non_ascii, date_format, keywordize,
//	ordered_objects, exact_decimals, max_depth,
//	encoders, key_encoders, key_fn, object_decoder, array_decoder,
//	logger, hooks
//
// Unknown keys are ignored. A known key holding a value of the wrong type is
// reported in the returned error and left at its zero value; every other key
// is still applied.
func ParseOptions(m map[string]any) (Options, error) {
	var (
		opts  Options
		errs  error
		attrs = normalize(m)
	)

	errs = multierr.Append(errs, attrs.pop("pretty", &opts.Pretty))
	errs = multierr.Append(errs, attrs.pop("indent", &opts.Indent))
	errs = multierr.Append(errs, attrs.pop("escape_non_ascii", &opts.EscapeNonASCII))
	errs = multierr.Append(errs, attrs.pop("date_format", &opts.DateFormat))
	errs = multierr.Append(errs, attrs.pop("keywordize", &opts.Keywordize))
	errs = multierr.Append(errs, attrs.pop("ordered_objects", &opts.OrderedObjects))
	errs = multierr.Append(errs, attrs.pop("exact_decimals", &opts.ExactDecimals))
	errs = multierr.Append(errs, attrs.pop("max_depth", &opts.MaxDepth))

	if v, ok := attrs.take("encoders"); ok {
		encs, err := encodersFrom(v)
		errs = multierr.Append(errs, err)
		opts.Encoders = encs
	}
	if v, ok := attrs.take("key_encoders"); ok {
		encs, err := keyEncodersFrom(v)
		errs = multierr.Append(errs, err)
		opts.KeyEncoders = encs
	}
	if v, ok := attrs.take("key_fn"); ok {
		fn, isFn := v.(func(string) any)
		if !isFn && v != nil {
			errs = multierr.Append(errs, typeErr("key_fn", v))
		}
		opts.KeyFn = fn
	}
	if v, ok := attrs.take("object_decoder"); ok {
		switch fn := v.(type) {
		case ObjectDecoder:
			opts.ObjectDecoder = fn
		case func() ObjectBuilder:
			opts.ObjectDecoder = fn
		case nil:
		default:
			errs = multierr.Append(errs, typeErr("object_decoder", v))
		}
	}
	if v, ok := attrs.take("array_decoder"); ok {
		switch fn := v.(type) {
		case ArrayDecoder:
			opts.ArrayDecoder = fn
		case func() ArrayBuilder:
			opts.ArrayDecoder = fn
		case nil:
		default:
			errs = multierr.Append(errs, typeErr("array_decoder", v))
		}
	}
	if v, ok := attrs.take("logger"); ok {
		l, isLogger := v.(Logger)
		if !isLogger && v != nil {
			errs = multierr.Append(errs, typeErr("logger", v))
		}
		opts.Logger = l
	}
	if v, ok := attrs.take("hooks"); ok {
		h, isHooks := v.(Hooks)
		if !isHooks && v != nil {
			errs = multierr.Append(errs, typeErr("hooks", v))
		}
		opts.Hooks = h
	}

	return opts, errs
}

func typeErr(name string, v any) error {
	return fmt.Errorf("jsonext: option %q: unexpected type %T", name, v)
}

// encodersFrom accepts []Encoder, a single Encoder, or a map from type to
// function. Map entries are ordered by type name so that the result does not
// depend on map iteration.
func encodersFrom(v any) ([]Encoder, error) {
	switch e := v.(type) {
	case nil:
		return nil, nil
	case []Encoder:
		return slices.Clone(e), nil
	case Encoder:
		return []Encoder{e}, nil
	case map[reflect.Type]EncoderFunc:
		out := make([]Encoder, 0, len(e))
		for t, fn := range e {
			out = append(out, Encoder{Type: t, Fn: fn})
		}
		sort.Slice(out, func(i, j int) bool { return typeName(out[i].Type) < typeName(out[j].Type) })
		return out, nil
	default:
		return nil, typeErr("encoders", v)
	}
}

func keyEncodersFrom(v any) ([]KeyEncoder, error) {
	switch e := v.(type) {
	case nil:
		return nil, nil
	case []KeyEncoder:
		return slices.Clone(e), nil
	case KeyEncoder:
		return []KeyEncoder{e}, nil
	case map[reflect.Type]KeyEncoderFunc:
		out := make([]KeyEncoder, 0, len(e))
		for t, fn := range e {
			out = append(out, KeyEncoder{Type: t, Fn: fn})
		}
		sort.Slice(out, func(i, j int) bool { return typeName(out[i].Type) < typeName(out[j].Type) })
		return out, nil
	default:
		return nil, typeErr("key_encoders", v)
	}
}

// ParseYAML reads Options from a YAML document holding the keys accepted by
// ParseOptions. Only the data-valued options can be expressed in YAML.
func ParseYAML(data []byte) (Options, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Options{}, fmt.Errorf("jsonext: parse yaml options: %w", err)
	}
	return ParseOptions(m)
}

// FromMap builds a codec from an option map. It never fails: ill-typed
// options are dropped, see ParseOptions.
func FromMap(m map[string]any) *Codec {
	opts, err := ParseOptions(m)
	c := New(opts)
	if err != nil {
		c.log.Warn("ignoring invalid options", Fields{"err": err.Error()})
	}
	return c
}
