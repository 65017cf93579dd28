// Package resource defines the tri-state container used to represent any
// in-flight or completed remote operation: Loading, Success with a value,
// or Error with a human-readable message.
package resource

// State enumerates the three possible variants of a Resource.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Resource is a tagged union over {Loading, Success(T), Error(message)}.
// Exactly one variant is current at any instant. Loading carries no payload,
// Success always carries a value, Error always carries a message and never
// raw exception internals.
//
// The zero value is Loading; use the constructors to build the other two.
type Resource[T any] struct {
	state   State
	data    T
	message string
}

// Loading returns the in-flight variant.
func Loading[T any]() Resource[T] {
	return Resource[T]{state: StateLoading}
}

// Success returns the completed variant carrying data.
func Success[T any](data T) Resource[T] {
	return Resource[T]{state: StateSuccess, data: data}
}

// Error returns the failed variant carrying a display message.
func Error[T any](message string) Resource[T] {
	return Resource[T]{state: StateError, message: message}
}

// State reports which variant this Resource currently is.
func (r Resource[T]) State() State { return r.state }

func (r Resource[T]) IsLoading() bool { return r.state == StateLoading }
func (r Resource[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Resource[T]) IsError() bool   { return r.state == StateError }

// Data returns the payload and true when the Resource is Success; otherwise
// it returns the zero value and false.
func (r Resource[T]) Data() (T, bool) {
	if r.state != StateSuccess {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Message returns the error message, or "" unless the Resource is Error.
func (r Resource[T]) Message() string {
	if r.state != StateError {
		return ""
	}
	return r.message
}
