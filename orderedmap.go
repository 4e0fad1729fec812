package jsonext

// Entry is one key/value pair of an OrderedMap.
type Entry struct {
	Key   any
	Value any
}

// OrderedMap is a map that remembers insertion order. The encoder writes it in
// that order, and decoding with Options.OrderedObjects produces one. Keys
// must be comparable, same as for a Go map[any]any.
//
// An OrderedMap is not safe for concurrent mutation.
type OrderedMap struct {
	entries []Entry
	index   map[any]int
}

func NewOrderedMap(capacity int) *OrderedMap {
	return &OrderedMap{
		entries: make([]Entry, 0, capacity),
		index:   make(map[any]int, capacity),
	}
}

// OrderedMapOf builds a map from alternating keys and values. A trailing key
// without a value maps to nil.
func OrderedMapOf(kv ...any) *OrderedMap {
	m := NewOrderedMap(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		m.Set(kv[i], v)
	}
	return m
}

// Set stores v under k. An existing key keeps its position.
func (m *OrderedMap) Set(k, v any) {
	if m.index == nil {
		m.index = make(map[any]int)
	}
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: k, Value: v})
}

func (m *OrderedMap) Get(k any) (any, bool) {
	i, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Delete removes k and shifts later entries down.
func (m *OrderedMap) Delete(k any) {
	i, ok := m.index[k]
	if !ok {
		return
	}
	delete(m.index, k)
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
}

func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []any {
	keys := make([]any, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *OrderedMap) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
