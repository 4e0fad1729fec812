package jsonext

import (
	"cmp"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/jsonext/internal/wire"
)

// builtinEncoders is the closed set of types every codec understands. New
// registers these before Options.Encoders, so any of them can be replaced.
func builtinEncoders() []Encoder {
	return []Encoder{
		For(func(v bool, w *Writer) error { return w.WriteBool(v) }),
		For(func(v string, w *Writer) error { return w.WriteString(v) }),

		For(func(v int, w *Writer) error { return w.WriteInt(int64(v)) }),
		For(func(v int8, w *Writer) error { return w.WriteInt(int64(v)) }),
		For(func(v int16, w *Writer) error { return w.WriteInt(int64(v)) }),
		For(func(v int32, w *Writer) error { return w.WriteInt(int64(v)) }),
		For(func(v int64, w *Writer) error { return w.WriteInt(v) }),
		For(func(v uint, w *Writer) error { return w.WriteUint(uint64(v)) }),
		For(func(v uint8, w *Writer) error { return w.WriteUint(uint64(v)) }),
		For(func(v uint16, w *Writer) error { return w.WriteUint(uint64(v)) }),
		For(func(v uint32, w *Writer) error { return w.WriteUint(uint64(v)) }),
		For(func(v uint64, w *Writer) error { return w.WriteUint(v) }),
		For(func(v float32, w *Writer) error { return w.writeFloat(float64(v), 32) }),
		For(func(v float64, w *Writer) error { return w.WriteFloat(v) }),
		For(encodeBigInt),
		For(encodeBigFloat),
		For(encodeRat),
		For(func(v json.Number, w *Writer) error { return w.WriteNumber(string(v)) }),

		For(encodeBytes),
		For(func(v uuid.UUID, w *Writer) error { return w.WriteString(v.String()) }),
		For(func(v Keyword, w *Writer) error { return w.WriteString(v.Text()) }),
		For(func(v Symbol, w *Writer) error { return w.WriteString(v.Text()) }),
		For(func(v time.Time, w *Writer) error {
			return w.WriteString(formatTime(v, w.c.dateFormat))
		}),
		For(func(v Timestamp, w *Writer) error {
			return w.WriteString(formatTime(v.Time, cmp.Or(v.Format, w.c.dateFormat)))
		}),

		For(encodeSlice[any]),
		For(encodeSlice[string]),
		For(encodeSlice[int]),
		For(encodeSlice[int64]),
		For(encodeSlice[float64]),
		For(encodeSlice[bool]),

		For(encodeMap[string, any]),
		For(encodeMap[string, string]),
		For(encodeMap[Keyword, any]),
		For(encodeMap[any, any]),
		For(encodeOrderedMap),

		For(func(v Marshaler, w *Writer) error { return v.EncodeJSON(w) }),
	}
}

func encodeBigInt(v *big.Int, w *Writer) error {
	if v == nil {
		return w.WriteNull()
	}
	return w.writeLiteral(v.String())
}

// encodeBigFloat writes the shortest decimal that reads back as v.
func encodeBigFloat(v *big.Float, w *Writer) error {
	if v == nil {
		return w.WriteNull()
	}
	if v.IsInf() {
		return w.fail(ErrNonFiniteNumber)
	}
	s := v.Text('g', -1)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return w.WriteNumber(s)
}

// encodeRat writes terminating decimals exactly and everything else as the
// nearest float64 (see wire.AppendRat).
func encodeRat(v *big.Rat, w *Writer) error {
	if v == nil {
		return w.WriteNull()
	}
	b, _, ok := wire.AppendRat(nil, v)
	if !ok {
		return w.fail(ErrNonFiniteNumber)
	}
	return w.writeLiteral(string(b))
}

func encodeBytes(v []byte, w *Writer) error {
	if v == nil {
		return w.WriteNull()
	}
	return w.WriteString(base64.StdEncoding.EncodeToString(v))
}

func encodeSlice[E any](v []E, w *Writer) error {
	if v == nil {
		return w.WriteNull()
	}
	if err := w.WriteArrayStart(); err != nil {
		return err
	}
	for _, e := range v {
		if err := w.WriteValue(e); err != nil {
			return err
		}
	}
	return w.WriteArrayEnd()
}

// encodeList writes an unnamed slice or array of any resolvable element type.
func encodeList(v any, w *Writer) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return w.WriteNull()
	}
	if err := w.WriteArrayStart(); err != nil {
		return err
	}
	for i := range rv.Len() {
		if err := w.WriteValue(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return w.WriteArrayEnd()
}

type field struct {
	name string
	v    any
}

// encodeMap writes members in ascending order of their encoded keys.
func encodeMap[K comparable, V any](m map[K]V, w *Writer) error {
	if m == nil {
		return w.WriteNull()
	}
	fields := make([]field, 0, len(m))
	for k, v := range m {
		name, err := w.c.encodeKey(k)
		if err != nil {
			return w.fail(err)
		}
		fields = append(fields, field{name: name, v: v})
	}
	return writeSortedFields(w, fields)
}

// encodeMapValue is encodeMap for unnamed map types outside the built-in set.
func encodeMapValue(v any, w *Writer) error {
	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return w.WriteNull()
	}
	fields := make([]field, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		name, err := w.c.encodeKey(it.Key().Interface())
		if err != nil {
			return w.fail(err)
		}
		fields = append(fields, field{name: name, v: it.Value().Interface()})
	}
	return writeSortedFields(w, fields)
}

func writeSortedFields(w *Writer, fields []field) error {
	slices.SortFunc(fields, func(a, b field) int { return strings.Compare(a.name, b.name) })
	for i := 1; i < len(fields); i++ {
		if fields[i].name == fields[i-1].name {
			return w.fail(fmt.Errorf("%w: %q", ErrDuplicateKey, fields[i].name))
		}
	}
	return writeFields(w, fields)
}

func encodeOrderedMap(m *OrderedMap, w *Writer) error {
	if m == nil {
		return w.WriteNull()
	}
	fields := make([]field, 0, len(m.entries))
	seen := make(map[string]struct{}, len(m.entries))
	for _, e := range m.entries {
		name, err := w.c.encodeKey(e.Key)
		if err != nil {
			return w.fail(err)
		}
		if _, dup := seen[name]; dup {
			return w.fail(fmt.Errorf("%w: %q", ErrDuplicateKey, name))
		}
		seen[name] = struct{}{}
		fields = append(fields, field{name: name, v: e.Value})
	}
	return writeFields(w, fields)
}

func writeFields(w *Writer, fields []field) error {
	if err := w.WriteObjectStart(); err != nil {
		return err
	}
	for _, f := range fields {
		if err := w.WriteField(f.name); err != nil {
			return err
		}
		if err := w.WriteValue(f.v); err != nil {
			return err
		}
	}
	return w.WriteObjectEnd()
}
