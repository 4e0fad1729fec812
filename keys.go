package jsonext

import "reflect"

func builtinKeyEncoders() []KeyEncoder {
	return []KeyEncoder{
		KeyFor(func(k string) (string, error) { return k, nil }),
		KeyFor(func(k Keyword) (string, error) { return k.Text(), nil }),
		KeyFor(func(k Symbol) (string, error) { return k.Text(), nil }),
	}
}

// encodeKey renders a map key. Only strings, atoms and registered key types
// are accepted. Numbers, booleans and nil are rejected rather than stringified.
func (c *Codec) encodeKey(k any) (string, error) {
	if k == nil {
		c.hooks.UnsupportedType("<nil>", true)
		return "", &UnsupportedKeyTypeError{}
	}
	t := reflect.TypeOf(k)
	if fn, ok := c.keyEncoders.lookup(t); ok {
		return fn(k)
	}
	c.hooks.UnsupportedType(t.String(), true)
	return "", &UnsupportedKeyTypeError{Type: t}
}

func identityKey(key string) any { return key }

func keywordKey(key string) any { return K(key) }
