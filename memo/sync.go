package memo

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Sync is a Memoizer safe for concurrent callers.
//
// Every cache read and write happens under one exclusive lock. The wrapped
// function runs outside the lock; singleflight collapses concurrent misses
// for the same key into a single invocation whose result all waiters share.
//
// A Clear that races with an in-flight miss may be followed by that miss
// storing its value.
type Sync[V any] struct {
	fn    Func[V]
	mu    sync.Mutex
	cache map[string]V
	group singleflight.Group
}

// NewSync returns a Sync around fn with an empty cache.
func NewSync[V any](fn Func[V]) *Sync[V] {
	return &Sync[V]{fn: fn, cache: make(map[string]V)}
}

// lookup reads key under the lock.
func (s *Sync[V]) lookup(key string) (V, bool) {
	s.mu.Lock()
	v, ok := s.cache[key]
	s.mu.Unlock()

	return v, ok
}

// Call returns the cached value for key, computing it at most once per miss
// even when many goroutines ask for the same key at the same time.
func (s *Sync[V]) Call(key string) (V, error) {
	var zero V
	if v, ok := s.lookup(key); ok {
		return v, nil
	}
	if s.fn == nil {
		return zero, ErrNilFunc
	}

	res, err, _ := s.group.Do(key, func() (any, error) {
		// A flight for key may have finished between lookup and Do.
		if v, ok := s.lookup(key); ok {
			return v, nil
		}
		v, ferr := s.fn(key)
		if ferr != nil {
			return nil, ferr
		}
		s.mu.Lock()
		s.cache[key] = v
		s.mu.Unlock()

		return v, nil
	})
	if err != nil {
		return zero, fmt.Errorf("memo: key %q: %w", key, err)
	}

	// Comma-ok keeps a nil interface-typed V from panicking.
	v, _ := res.(V)

	return v, nil
}

// Size reports the number of distinct keys cached.
func (s *Sync[V]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.cache)
}

// Clear drops every cached entry. The wrapped function is kept.
func (s *Sync[V]) Clear() {
	s.mu.Lock()
	clear(s.cache)
	s.mu.Unlock()
}
