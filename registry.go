package jsonext

import (
	"reflect"
	"slices"
)

type ifaceEntry[F any] struct {
	t  reflect.Type
	fn F
}

// registry maps types to functions. Concrete types are matched by identity.
// Interface types are tried newest first, so the most recent registration a
// type satisfies wins. A registry is filled by New and only read afterwards.
type registry[F any] struct {
	exact  map[reflect.Type]F
	ifaces []ifaceEntry[F]
}

func newRegistry[F any](size int) *registry[F] {
	return &registry[F]{exact: make(map[reflect.Type]F, size)}
}

// register adds fn for t and reports whether it replaced an earlier entry.
func (r *registry[F]) register(t reflect.Type, fn F) bool {
	if t.Kind() != reflect.Interface {
		_, replaced := r.exact[t]
		r.exact[t] = fn
		return replaced
	}
	i := slices.IndexFunc(r.ifaces, func(e ifaceEntry[F]) bool { return e.t == t })
	if i >= 0 {
		r.ifaces = slices.Delete(r.ifaces, i, i+1)
	}
	r.ifaces = append(r.ifaces, ifaceEntry[F]{t: t, fn: fn})
	return i >= 0
}

func (r *registry[F]) lookup(t reflect.Type) (F, bool) {
	if fn, ok := r.exact[t]; ok {
		return fn, true
	}
	for i := len(r.ifaces) - 1; i >= 0; i-- {
		if t.Implements(r.ifaces[i].t) {
			return r.ifaces[i].fn, true
		}
	}
	var zero F
	return zero, false
}

func (r *registry[F]) len() int { return len(r.exact) + len(r.ifaces) }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
