package wrap

import "iter"

// Next advances a pull-style iterator, reporting ErrStopIteration once it is
// exhausted.
func Next[V any](next func() (V, bool)) (V, error) {
	v, ok := next()
	if !ok {
		var zero V
		return zero, ErrStopIteration
	}
	return v, nil
}

// Pull is iter.Pull with an error-returning next, suitable for Fallible.
// The caller must call stop when done with the sequence.
func Pull[V any](seq iter.Seq[V]) (next func() (V, error), stop func()) {
	pull, stop := iter.Pull(seq)
	return func() (V, error) { return Next(pull) }, stop
}
