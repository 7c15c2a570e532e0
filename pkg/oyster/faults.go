package oyster

import (
	"fmt"
	"strconv"
)

const (
	optionalUnwrapMsg   = "called `Optional.Unwrap()` on an `Absent` value"
	outcomeUnwrapMsg    = "called `Outcome.Unwrap()` on a `Failure` value"
	outcomeUnwrapErrMsg = "called `Outcome.UnwrapErr()` on a `Success` value"
	unreachableMsg      = "unreachable: outcome is neither success nor failure"
)

// UnwrapFault is the panic value raised when a value is extracted from the
// variant that does not hold one.
type UnwrapFault struct {
	Message string
	// Payload is the representation of the other variant's value. It is
	// only meaningful when HasPayload is set, and may itself be empty.
	Payload    string
	HasPayload bool
}

func (f *UnwrapFault) Error() string {
	if !f.HasPayload {
		return f.Message
	}
	return f.Message + ": " + f.Payload
}

// ExpectFault is raised by Optional.Expect on an absent value and carries the
// caller's message verbatim.
type ExpectFault struct {
	Message string
}

func (f *ExpectFault) Error() string {
	return f.Message
}

// UnreachableFault signals a container outside its closed set of variants.
// Only the zero Outcome can produce it.
type UnreachableFault struct {
	Message string
}

func (f *UnreachableFault) Error() string {
	return f.Message
}

func unwrapFailed(msg string, payload any) *UnwrapFault {
	return &UnwrapFault{Message: msg, Payload: Repr(payload), HasPayload: true}
}

func unreachable() *UnreachableFault {
	return &UnreachableFault{Message: unreachableMsg}
}

// Repr renders a payload for diagnostics: strings are quoted, errors use
// their message and everything else is formatted with %v.
func Repr(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case error:
		if IsNil(x) {
			return "<nil>"
		}
		return strconv.Quote(x.Error())
	case fmt.Stringer:
		if IsNil(x) {
			return "<nil>"
		}
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
