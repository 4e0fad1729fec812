package jsonext

import (
	"strings"
	"unique"
)

// Keyword is an interned atom with an optional namespace, written "name" or
// "ns/name". Keywords with the same text share one canonical handle, so
// equality and map lookups compare a single pointer.
//
// The zero Keyword has empty text.
type Keyword struct {
	h unique.Handle[string]
}

// K returns the keyword for text. The first '/' that has a non-empty part on
// both sides separates namespace from name; "a/b/c" has namespace "a" and
// name "b/c", while "/" and "a/" are plain names.
func K(text string) Keyword {
	return Keyword{h: unique.Make(text)}
}

// NewKeyword returns the keyword ns/name, or just name when ns is empty.
func NewKeyword(ns, name string) Keyword {
	if ns == "" {
		return K(name)
	}
	return K(ns + "/" + name)
}

// Text returns the keyword as written in JSON: "name" or "ns/name".
func (k Keyword) Text() string {
	if k.h == (unique.Handle[string]{}) {
		return ""
	}
	return k.h.Value()
}

func (k Keyword) Namespace() string {
	ns, _ := splitAtom(k.Text())
	return ns
}

func (k Keyword) Name() string {
	_, name := splitAtom(k.Text())
	return name
}

func (k Keyword) IsZero() bool { return k.Text() == "" }

// String renders the keyword with a leading colon, for diagnostics.
func (k Keyword) String() string { return ":" + k.Text() }

// Symbol is a non-interned symbolic name. It encodes like Keyword; decoding
// never produces a Symbol.
type Symbol struct {
	Namespace string
	Name      string
}

// Sym parses text the same way K does.
func Sym(text string) Symbol {
	ns, name := splitAtom(text)
	return Symbol{Namespace: ns, Name: name}
}

// Text returns "name" or "ns/name".
func (s Symbol) Text() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

func (s Symbol) String() string { return s.Text() }

func splitAtom(text string) (ns, name string) {
	if i := strings.IndexByte(text, '/'); i > 0 && i < len(text)-1 {
		return text[:i], text[i+1:]
	}
	return "", text
}
