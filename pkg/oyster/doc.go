// Package oyster contains the two container types of the library and their
// non-type-changing methods.
//
// Highlights:
// - Optional[V]: Present(v) or Absent; the zero value is Absent
// - Outcome[T, E]: Success(v) or Failure(err); the error is plain data
// - Unwrap/Expect panic with *UnwrapFault or *ExpectFault on the empty variant
// - Get: comma-ok access without panicking
// - IsNil: nil detection used by the nullable adapters
//
// Combinators that change a type parameter (Map, AndThen, OkOr, MapErr, ...)
// live in packages optional and outcome; adapters for (T, error) and nil
// returning functions live in package wrap.
package oyster
