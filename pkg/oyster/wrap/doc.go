// Package wrap lifts functions that follow Go's boundary conventions into the
// oyster containers, so call sites handle one Optional or Outcome instead of
// checking nil, ok or err themselves.
//
// Highlights:
// - Fallible/Fallible1..3: (R, error) functions -> Outcome[R, string]; a
//   panic inside the wrapped function becomes a Failure too
// - Nullable/Nullable1..3: functions returning a nillable value -> Optional[R]
// - Lookup/Lookup1/Lookup2/FromMap: comma-ok functions -> Optional[R]
// - Next/Pull: sequence advance that reports ErrStopIteration when exhausted,
//   which Fallible turns into Failure(StopIteration)
//
// Faults raised by the Optional or Outcome a wrapper returns are not caught.
package wrap
