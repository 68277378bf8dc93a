// Package pipeline composes unary steps into a single callable.
//
// A Pipeline[T] is an ordered, append-only list of Step[T]. Execute feeds the
// input through every step in registration order and returns the last
// output; an empty pipeline is the identity. One input produces one output:
// intermediate values are not streamed or retained.
//
// Errors:
//
//	The first failing step aborts Execute. Its error is returned wrapped as
//	"pipeline: step <i>: <cause>" (errors.Is / errors.As reach the cause),
//	together with the zero value of T. Later steps are not run and nothing is
//	retried.
//
// Steps may have side effects; the pipeline only guarantees order and a
// single left-to-right pass.
//
// Concurrency:
//
//	A Pipeline is not synchronized. Concurrent Add and Execute on the same
//	value must be serialized by the caller. Execute alone only reads the step
//	list, so concurrent Execute calls are safe when the steps themselves are.
package pipeline
