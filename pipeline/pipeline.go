package pipeline

import "fmt"

// Step is one unary transformation. It may fail.
type Step[T any] func(T) (T, error)

// Pipeline is an ordered sequence of steps over values of type T.
// The zero value is an empty, ready-to-use pipeline.
type Pipeline[T any] struct {
	steps []Step[T]
}

// New returns an empty pipeline, optionally seeded with steps.
func New[T any](steps ...Step[T]) *Pipeline[T] {
	p := &Pipeline[T]{}
	for _, s := range steps {
		p.Add(s)
	}

	return p
}

// Add appends step after every previously added step and returns p for chaining.
// A nil step is ignored.
func (p *Pipeline[T]) Add(step Step[T]) *Pipeline[T] {
	if step != nil {
		p.steps = append(p.steps, step)
	}

	return p
}

// AddFunc appends a step that cannot fail.
func (p *Pipeline[T]) AddFunc(f func(T) T) *Pipeline[T] {
	if f == nil {
		return p
	}

	return p.Add(Lift(f))
}

// Execute runs in through every step in order.
//
// Complexity: O(len(steps)) step invocations.
func (p *Pipeline[T]) Execute(in T) (T, error) {
	var (
		out = in
		err error
		i   int
		s   Step[T]
	)
	for i, s = range p.steps {
		if out, err = s(out); err != nil {
			var zero T
			return zero, fmt.Errorf("pipeline: step %d: %w", i, err)
		}
	}

	return out, nil
}

// Len reports the number of registered steps.
func (p *Pipeline[T]) Len() int { return len(p.steps) }

// Reset drops every step; the pipeline becomes the identity again.
func (p *Pipeline[T]) Reset() { p.steps = nil }

// Step returns the whole pipeline as one Step, so pipelines can nest.
// Later Add calls on p are visible to the returned step.
func (p *Pipeline[T]) Step() Step[T] { return p.Execute }
