package orderedmap

import (
	"iter"
	"slices"
)

// Map is a map that remembers insertion order. Setting an existing key
// replaces the value in place; the key keeps its original position.
type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.keys[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Delete(key K) bool {
	if _, exists := m.keys[key]; !exists {
		return false
	}
	delete(m.keys, key)
	if i := slices.Index(m.entries, key); i >= 0 {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
