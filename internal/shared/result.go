// Package shared provides small helpers used by both client and server
// layers: the Result outcome type with its SafeRun boundary, and random
// string generation for share codes and storage keys.
package shared

import (
	"context"
)

// Result is a two-variant outcome: either a value or an error, never both.
// It lets callers inspect a failed operation as a value instead of
// propagating the error further up.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps a value in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps an error in a failed Result.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the wrapped value. Only meaningful when IsSuccess is true.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the wrapped error, or nil for a successful Result.
func (r Result[T]) Err() error {
	return r.err
}

// SafeRun executes fn and converts its outcome into a Result. Any error is
// captured as-is: nothing is filtered, classified, retried or logged here.
// This is the single error-to-value conversion point; use cases call it
// exactly once per operation.
func SafeRun[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Result[T] {
	value, err := fn(ctx)
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}
