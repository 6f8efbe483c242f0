// Package determinism provides ordered collections so that listings,
// validation messages and rendered quotes come out the same on every run.
package determinism

import (
	"fmt"
	"sort"
	"sync"
)

// StableMap is a map that iterates in sorted key order.
type StableMap[K comparable, V any] struct {
	mu     sync.RWMutex
	keys   []K
	values map[K]V
}

// NewStableMap creates a new StableMap
func NewStableMap[K comparable, V any]() *StableMap[K, V] {
	return &StableMap[K, V]{
		values: make(map[K]V),
	}
}

// SetIfAbsent stores value only when key is new. It reports whether the
// value was stored.
func (m *StableMap[K, V]) SetIfAbsent(key K, value V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; exists {
		return false
	}
	m.keys = append(m.keys, key)
	m.sortKeys()
	m.values[key] = value
	return true
}

// Get retrieves a value by key
func (m *StableMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	return val, ok
}

// Keys returns all keys in sorted order
func (m *StableMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]K, len(m.keys))
	copy(result, m.keys)
	return result
}

// Values returns all values in key order
func (m *StableMap[K, V]) Values() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		result = append(result, m.values[k])
	}
	return result
}

// Len returns the number of entries
func (m *StableMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

func (m *StableMap[K, V]) sortKeys() {
	sort.Slice(m.keys, func(i, j int) bool {
		return fmt.Sprint(m.keys[i]) < fmt.Sprint(m.keys[j])
	})
}

// SortedKeys returns the keys of m in sorted order
func SortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}

// RangeMapSorted iterates over a map in sorted key order
func RangeMapSorted[K comparable, V any](m map[K]V, fn func(K, V) bool) {
	for _, k := range SortedKeys(m) {
		if !fn(k, m[k]) {
			break
		}
	}
}
