package oyster

type variant uint8

// Zero is not a variant: an Outcome built without Success or Failure is
// outside the closed set.
const (
	success variant = iota + 1
	failure
)

// Outcome holds either a success value of type T or an error value of type E.
// Build it with Success or Failure; the zero Outcome is invalid and every
// operation on it panics with an *UnreachableFault.
type Outcome[T, E any] struct {
	value   T
	err     E
	variant variant
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:   v,
		variant: success,
	}
}

// Failure takes the error type last so callers can write Failure[int]("boom").
func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:     err,
		variant: failure,
	}
}

func (r Outcome[T, E]) IsSuccess() bool {
	switch r.variant {
	case success:
		return true
	case failure:
		return false
	default:
		panic(unreachable())
	}
}

func (r Outcome[T, E]) IsFailure() bool {
	return !r.IsSuccess()
}

func (r Outcome[T, E]) IsSuccessAnd(predicate func(v T) bool) bool {
	switch r.variant {
	case success:
		return predicate(r.value)
	case failure:
		return false
	default:
		panic(unreachable())
	}
}

func (r Outcome[T, E]) IsFailureAnd(predicate func(err E) bool) bool {
	switch r.variant {
	case success:
		return false
	case failure:
		return predicate(r.err)
	default:
		panic(unreachable())
	}
}

// Get returns both payloads and whether r is a Success. Only the payload of
// the active variant is meaningful.
func (r Outcome[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.IsSuccess()
}

// SuccessValue is Present(v) on Success(v) and Absent on Failure.
func (r Outcome[T, E]) SuccessValue() Optional[T] {
	switch r.variant {
	case success:
		return Present(r.value)
	case failure:
		return Absent[T]()
	default:
		panic(unreachable())
	}
}

// FailureValue is Present(e) on Failure(e) and Absent on Success.
func (r Outcome[T, E]) FailureValue() Optional[E] {
	switch r.variant {
	case success:
		return Absent[E]()
	case failure:
		return Present(r.err)
	default:
		panic(unreachable())
	}
}

// Expect returns the success value or panics with an *UnwrapFault holding
// msg and the error value.
func (r Outcome[T, E]) Expect(msg string) T {
	switch r.variant {
	case success:
		return r.value
	case failure:
		panic(unwrapFailed(msg, r.err))
	default:
		panic(unreachable())
	}
}

// ExpectErr returns the error value or panics with an *UnwrapFault holding
// msg and the success value.
func (r Outcome[T, E]) ExpectErr(msg string) E {
	switch r.variant {
	case success:
		panic(unwrapFailed(msg, r.value))
	case failure:
		return r.err
	default:
		panic(unreachable())
	}
}

func (r Outcome[T, E]) Unwrap() T {
	return r.Expect(outcomeUnwrapMsg)
}

func (r Outcome[T, E]) UnwrapErr() E {
	return r.ExpectErr(outcomeUnwrapErrMsg)
}

func (r Outcome[T, E]) UnwrapOr(def T) T {
	switch r.variant {
	case success:
		return r.value
	case failure:
		return def
	default:
		panic(unreachable())
	}
}

// UnwrapOrElse computes the fallback from the error value.
func (r Outcome[T, E]) UnwrapOrElse(def func(err E) T) T {
	switch r.variant {
	case success:
		return r.value
	case failure:
		return def(r.err)
	default:
		panic(unreachable())
	}
}

func (r Outcome[T, E]) String() string {
	switch r.variant {
	case success:
		return "Success(" + Repr(r.value) + ")"
	case failure:
		return "Failure(" + Repr(r.err) + ")"
	default:
		panic(unreachable())
	}
}
