package pipeline

// Lift turns an infallible function into a Step.
func Lift[T any](f func(T) T) Step[T] {
	return func(v T) (T, error) { return f(v), nil }
}

// Then chains steps left to right: Then(f, g, h)(x) == h(g(f(x))).
// With no steps it returns the identity.
func Then[T any](steps ...Step[T]) Step[T] {
	// Snapshot so later mutation of the caller's slice does not leak in.
	chain := make([]Step[T], 0, len(steps))
	for _, s := range steps {
		if s != nil {
			chain = append(chain, s)
		}
	}

	return (&Pipeline[T]{steps: chain}).Execute
}

// Compose chains steps right to left: Compose(f, g, h)(x) == f(g(h(x))).
// With no steps it returns the identity.
func Compose[T any](steps ...Step[T]) Step[T] {
	var (
		n        = len(steps)
		reversed = make([]Step[T], n)
		i        int
	)
	for i = 0; i < n; i++ {
		reversed[i] = steps[n-1-i]
	}

	return Then(reversed...)
}
