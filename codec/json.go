package codec

import (
	"fmt"
	"reflect"

	"github.com/unkn0wn-root/jsonext"
)

// JSON is a Codec for values of the jsonext value model. C == nil uses
// jsonext.Default().
//
// Decode asserts that the decoded value has type V, so JSON[map[string]any]
// rejects a top-level array. V = any accepts every document.
type JSON[V any] struct {
	C *jsonext.Codec
}

// TypeError reports a decoded value whose type does not match V.
type TypeError struct {
	Want reflect.Type
	Got  reflect.Type // nil for a JSON null
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("codec: decoded %v, want %v", e.Got, e.Want)
}

func codecOrDefault(c *jsonext.Codec) *jsonext.Codec {
	if c == nil {
		return jsonext.Default()
	}
	return c
}

func (j JSON[V]) Encode(v V) ([]byte, error) { return codecOrDefault(j.C).Encode(v) }

func (j JSON[V]) Decode(b []byte) (V, error) {
	var zero V
	raw, err := codecOrDefault(j.C).Decode(b)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, nil
	}
	v, ok := raw.(V)
	if !ok {
		return zero, &TypeError{Want: reflect.TypeFor[V](), Got: reflect.TypeOf(raw)}
	}
	return v, nil
}
