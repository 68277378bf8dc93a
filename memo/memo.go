package memo

import "fmt"

// Memoizer wraps a Func with an unsynchronized key→value cache.
type Memoizer[V any] struct {
	fn    Func[V]
	cache map[string]V
}

// New returns a Memoizer around fn with an empty cache.
func New[V any](fn Func[V]) *Memoizer[V] {
	return &Memoizer[V]{fn: fn, cache: make(map[string]V)}
}

// Call returns the cached value for key, computing and storing it on a miss.
//
// Complexity: O(1) expected on a hit; one fn invocation on a miss.
func (m *Memoizer[V]) Call(key string) (V, error) {
	if v, ok := m.cache[key]; ok {
		return v, nil
	}
	if m.fn == nil {
		var zero V
		return zero, ErrNilFunc
	}

	v, err := m.fn(key)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("memo: key %q: %w", key, err)
	}
	m.cache[key] = v

	return v, nil
}

// Size reports the number of distinct keys cached.
func (m *Memoizer[V]) Size() int { return len(m.cache) }

// Clear drops every cached entry. The wrapped function is kept.
func (m *Memoizer[V]) Clear() { clear(m.cache) }

// Contains reports whether key is cached, without invoking the function.
func (m *Memoizer[V]) Contains(key string) bool {
	_, ok := m.cache[key]
	return ok
}
