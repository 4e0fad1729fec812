package jsonext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeWith runs fn as the encoder for point and returns the output.
func encodeWith(t *testing.T, opts Options, fn func(w *Writer) error) (string, error) {
	t.Helper()
	opts.Encoders = append(opts.Encoders, For(func(_ point, w *Writer) error { return fn(w) }))
	return New(opts).EncodeString(point{})
}

func TestWriterObject(t *testing.T) {
	got, err := encodeWith(t, Options{}, func(w *Writer) error {
		_ = w.WriteObjectStart()
		_ = w.WriteField("n")
		_ = w.WriteNumber("1.50")
		_ = w.WriteKey(NewKeyword("ns", "k"))
		_ = w.WriteArrayStart()
		_ = w.WriteUint(7)
		_ = w.WriteBool(false)
		_ = w.WriteNull()
		_ = w.WriteValue(map[string]any{"x": "y"})
		_ = w.WriteArrayEnd()
		return w.WriteObjectEnd()
	})
	require.NoError(t, err)
	assert.Equal(t, `{"n":1.50,"ns/k":[7,false,null,{"x":"y"}]}`, got)
}

func TestWriterEscapesFieldNames(t *testing.T) {
	got, err := encodeWith(t, Options{}, func(w *Writer) error {
		_ = w.WriteObjectStart()
		_ = w.WriteField("a\"b")
		_ = w.WriteInt(1)
		return w.WriteObjectEnd()
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a\"b":1}`, got)
}

func TestWriterTokenOrder(t *testing.T) {
	cases := map[string]func(w *Writer) error{
		"field outside object": func(w *Writer) error {
			return w.WriteField("x")
		},
		"value without field": func(w *Writer) error {
			_ = w.WriteObjectStart()
			return w.WriteInt(1)
		},
		"field after field": func(w *Writer) error {
			_ = w.WriteObjectStart()
			_ = w.WriteField("a")
			return w.WriteField("b")
		},
		"array end in object": func(w *Writer) error {
			_ = w.WriteObjectStart()
			return w.WriteArrayEnd()
		},
		"object end in array": func(w *Writer) error {
			_ = w.WriteArrayStart()
			return w.WriteObjectEnd()
		},
		"object end with pending value": func(w *Writer) error {
			_ = w.WriteObjectStart()
			_ = w.WriteField("a")
			return w.WriteObjectEnd()
		},
		"end at top level": func(w *Writer) error {
			return w.WriteArrayEnd()
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := encodeWith(t, Options{}, fn)
			assert.ErrorIs(t, err, ErrTokenOrder)
		})
	}
}

func TestWriterErrorIsSticky(t *testing.T) {
	var first, later, recorded error
	_, err := encodeWith(t, Options{}, func(w *Writer) error {
		first = w.WriteField("x")
		later = w.WriteInt(1)
		recorded = w.Err()
		return nil
	})
	assert.ErrorIs(t, err, ErrTokenOrder)
	assert.Equal(t, first, later)
	assert.Equal(t, first, recorded)
}

func TestWriterRejectsBadNumbers(t *testing.T) {
	_, err := encodeWith(t, Options{}, func(w *Writer) error { return w.WriteNumber("0x1f") })
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestWriterPrettyEmptyContainers(t *testing.T) {
	got, err := encodeWith(t, Options{Pretty: true}, func(w *Writer) error {
		_ = w.WriteObjectStart()
		_ = w.WriteField("o")
		_ = w.WriteObjectStart()
		_ = w.WriteObjectEnd()
		_ = w.WriteField("a")
		_ = w.WriteArrayStart()
		_ = w.WriteArrayEnd()
		return w.WriteObjectEnd()
	})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"o\": {},\n  \"a\": []\n}", got)
}

func TestWriterASCIIFieldNames(t *testing.T) {
	got, err := encodeWith(t, Options{EscapeNonASCII: true}, func(w *Writer) error {
		_ = w.WriteObjectStart()
		_ = w.WriteField("\xc3\xbc")
		_ = w.WriteString("\xc3\xbc")
		return w.WriteObjectEnd()
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\\u00fc\":\"\\u00fc\"}", got)
}
