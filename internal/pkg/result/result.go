// Package result distinguishes a present value from an empty outcome.
// Failures travel as errors next to the Result.
package result

type Result[T any] struct {
	value T
	ok    bool
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

func Empty[T any]() Result[T] {
	return Result[T]{}
}

func (r Result[T]) IsEmpty() bool {
	return !r.ok
}

// Value returns the held value and whether one is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

