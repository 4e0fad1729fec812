package jsonext

type sliceBuilder []any

func (b *sliceBuilder) Add(v any) { *b = append(*b, v) }

func (b *sliceBuilder) Build() any {
	if *b == nil {
		return []any{}
	}
	return []any(*b)
}

func newSliceBuilder() ArrayBuilder { return new(sliceBuilder) }

type stringMapBuilder map[string]any

func (b stringMapBuilder) Set(k, v any) { b[k.(string)] = v }
func (b stringMapBuilder) Build() any   { return map[string]any(b) }

type keywordMapBuilder map[Keyword]any

func (b keywordMapBuilder) Set(k, v any) { b[k.(Keyword)] = v }
func (b keywordMapBuilder) Build() any   { return map[Keyword]any(b) }

type anyMapBuilder map[any]any

func (b anyMapBuilder) Set(k, v any) { b[k] = v }
func (b anyMapBuilder) Build() any   { return map[any]any(b) }

type orderedBuilder struct{ m *OrderedMap }

func (b orderedBuilder) Set(k, v any) { b.m.Set(k, v) }
func (b orderedBuilder) Build() any   { return b.m }

// objectDecoderFor picks the default object builder for a key decoding mode.
// A custom key function can return any comparable key, so it gets map[any]any.
func objectDecoderFor(opts Options) ObjectDecoder {
	switch {
	case opts.ObjectDecoder != nil:
		return opts.ObjectDecoder
	case opts.OrderedObjects:
		return func() ObjectBuilder { return orderedBuilder{m: NewOrderedMap(4)} }
	case opts.KeyFn != nil:
		return func() ObjectBuilder { return make(anyMapBuilder) }
	case opts.Keywordize:
		return func() ObjectBuilder { return make(keywordMapBuilder) }
	default:
		return func() ObjectBuilder { return make(stringMapBuilder) }
	}
}

func keyDecoderFor(opts Options) func(string) any {
	switch {
	case opts.KeyFn != nil:
		return opts.KeyFn
	case opts.Keywordize:
		return keywordKey
	default:
		return identityKey
	}
}
