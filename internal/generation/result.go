package generation

import (
	"fmt"

	"smartresume/resume/model"
)

// Kind classifies a generation failure.
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindGenerationFailed Kind = "generation_failed"
	KindEmptyResponse    Kind = "empty_response"
	KindWriteFailed      Kind = "write_failed"
	KindNotGenerated     Kind = "not_generated"
)

// Failure is the error half of a Result. Message is what the user sees.
type Failure struct {
	Kind    Kind
	Message string
	Fields  []model.FieldError
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Result holds either a value or a Failure, never both.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps a failure.
func Fail[T any](f *Failure) Result[T] {
	return Result[T]{failure: f}
}

// OK reports whether the result holds a value.
func (r Result[T]) OK() bool {
	return r.failure == nil
}

// Value returns the payload and whether it is set.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.failure == nil
}

// Failure returns the failure, or nil on success.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Display renders the result the way the user sees it: the failure message
// takes the place of the content.
func (r Result[T]) Display() string {
	if r.failure != nil {
		return r.failure.Message
	}
	return fmt.Sprint(r.value)
}
