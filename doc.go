// Package jsonext is a JSON codec for plain Go values with an extension
// registry that maps application types to JSON encodings.
//
// Components:
//   - Value model: Go scalars, []any, map[string]any and friends, plus Keyword
//     (interned atom), Symbol, Timestamp and OrderedMap.
//   - Encoder registry: runtime type -> EncoderFunc. Built-in entries are
//     registered first, Options.Encoders after them, so a user entry for the
//     same type always wins (last registration wins). Unnamed slices, arrays
//     and maps built from resolvable types need no entry.
//   - Key encoder: renders map keys; only strings, atoms and types with an
//     explicit KeyEncoder are accepted.
//   - Decoder registry: builders for JSON arrays and objects, plus a key
//     decoder (identity, keywordize or a custom function) applied to every key.
//   - Codec: an immutable bundle of the above and the encoding options, safe
//     for concurrent use. Default returns a shared codec built from Options{}.
//
// Encoding:
//
//	s, err := jsonext.EncodeString(map[string]any{"a": int64(1), "b": []any{int64(1), int64(2)}})
//	// {"a":1,"b":[1,2]}
//
// Custom encoders:
//
//	c := jsonext.New(jsonext.Options{
//	    Encoders: []jsonext.Encoder{
//	        jsonext.For(func(p Point, w *jsonext.Writer) error {
//	            return w.WriteString(fmt.Sprintf("%d,%d", p.X, p.Y))
//	        }),
//	    },
//	})
//
// Decoding:
//
//	v, err := jsonext.New(jsonext.Options{Keywordize: true}).DecodeString(`{"foo":1}`)
//	// map[jsonext.Keyword]any{jsonext.K("foo"): int64(1)}
//
// Values with no encoder fail with *UnsupportedTypeError; they are never
// stringified implicitly.
package jsonext
