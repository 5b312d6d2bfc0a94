package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapOrder(t *testing.T) {
	m := New[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	// updating an existing key keeps its original position
	m.Set("a", 100)

	var keys []string
	var values []int
	for k, v := range m.Range() {
		keys = append(keys, k)
		values = append(values, v)
	}
	if !assert.Equal(t, []string{"c", "a", "b"}, keys, "insertion order preserved") {
		return
	}
	if !assert.Equal(t, []int{3, 100, 2}, values, "updated value visible") {
		return
	}

	v, ok := m.Get("a")
	if !assert.True(t, ok, "Get finds the key") {
		return
	}
	if !assert.Equal(t, 100, v, "Get returns the latest value") {
		return
	}

	if !assert.True(t, m.Delete("a"), "Delete reports success") {
		return
	}
	if !assert.False(t, m.Delete("a"), "deleting twice reports failure") {
		return
	}
	if !assert.Equal(t, 2, m.Len(), "length tracks deletions") {
		return
	}

	keys = keys[:0]
	for k := range m.Range() {
		keys = append(keys, k)
	}
	if !assert.Equal(t, []string{"c", "b"}, keys, "order kept after delete") {
		return
	}
}
