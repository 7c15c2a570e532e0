package wrap

import (
	"errors"
	"fmt"

	"github.com/ib-77/oyster/pkg/oyster"
)

// StopIteration is the failure message for an exhausted sequence.
const StopIteration = "StopIteration"

// ErrStopIteration is returned when advancing a sequence that has no more
// values. Fallible adapters map it to StopIteration instead of its message.
var ErrStopIteration = errors.New("sequence exhausted")

func Fallible[R any](f func() (R, error)) func() oyster.Outcome[R, string] {
	return func() oyster.Outcome[R, string] {
		return capture(f)
	}
}

func Fallible1[A, R any](f func(a A) (R, error)) func(a A) oyster.Outcome[R, string] {
	return func(a A) oyster.Outcome[R, string] {
		return capture(func() (R, error) { return f(a) })
	}
}

func Fallible2[A, B, R any](f func(a A, b B) (R, error)) func(a A, b B) oyster.Outcome[R, string] {
	return func(a A, b B) oyster.Outcome[R, string] {
		return capture(func() (R, error) { return f(a, b) })
	}
}

func Fallible3[A, B, C, R any](f func(a A, b B, c C) (R, error)) func(a A, b B, c C) oyster.Outcome[R, string] {
	return func(a A, b B, c C) oyster.Outcome[R, string] {
		return capture(func() (R, error) { return f(a, b, c) })
	}
}

// capture runs call once. A returned error or a panic raised by call becomes
// a Failure holding its description. A typed nil error counts as no error.
func capture[R any](call func() (R, error)) (out oyster.Outcome[R, string]) {
	defer func() {
		if raised := recover(); raised != nil {
			out = oyster.Failure[R](describe(raised))
		}
	}()

	v, err := call()
	if !oyster.IsNil(err) {
		return oyster.Failure[R](describe(err))
	}
	return oyster.Success[R, string](v)
}

func describe(raised any) string {
	if err, ok := raised.(error); ok {
		if oyster.IsNil(err) {
			return "<nil>"
		}
		if errors.Is(err, ErrStopIteration) {
			return StopIteration
		}
		return err.Error()
	}
	return fmt.Sprint(raised)
}
