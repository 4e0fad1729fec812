package jsonext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordParts(t *testing.T) {
	cases := []struct {
		text, ns, name string
	}{
		{"foo", "", "foo"},
		{"ns/foo", "ns", "foo"},
		{"a/b/c", "a", "b/c"},
		{"/", "", "/"},
		{"a/", "", "a/"},
		{"/a", "", "/a"},
		{"", "", ""},
	}
	for _, tc := range cases {
		k := K(tc.text)
		assert.Equal(t, tc.text, k.Text(), tc.text)
		assert.Equal(t, tc.ns, k.Namespace(), tc.text)
		assert.Equal(t, tc.name, k.Name(), tc.text)
	}
}

func TestKeywordInterning(t *testing.T) {
	assert.Equal(t, K("ns/foo"), NewKeyword("ns", "foo"))
	assert.Equal(t, K("foo"), NewKeyword("", "foo"))
	assert.NotEqual(t, K("foo"), K("bar"))

	m := map[Keyword]int{K("a"): 1}
	assert.Equal(t, 1, m[NewKeyword("", "a")])
}

func TestKeywordZero(t *testing.T) {
	var k Keyword
	assert.True(t, k.IsZero())
	assert.Equal(t, "", k.Text())
	assert.Equal(t, ":", k.String())
	assert.Equal(t, ":ns/x", K("ns/x").String())
}

func TestSymbol(t *testing.T) {
	s := Sym("user/id")
	assert.Equal(t, Symbol{Namespace: "user", Name: "id"}, s)
	assert.Equal(t, "user/id", s.Text())
	assert.Equal(t, "id", Sym("id").Text())
}

func TestOrderedMap(t *testing.T) {
	m := OrderedMapOf("b", 1, "a", 2, "c", 3)
	assert.Equal(t, []any{"b", "a", "c"}, m.Keys())

	m.Set("b", 10)
	assert.Equal(t, []any{"b", "a", "c"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	m.Delete("a")
	assert.Equal(t, []any{"b", "c"}, m.Keys())
	v, ok = m.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, m.Len())

	_, ok = m.Get("a")
	assert.False(t, ok)

	var zero OrderedMap
	zero.Set(K("k"), true)
	assert.Equal(t, []Entry{{Key: K("k"), Value: true}}, zero.Entries())
}
