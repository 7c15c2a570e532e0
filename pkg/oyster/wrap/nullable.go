package wrap

import "github.com/ib-77/oyster/pkg/oyster"

func Nullable[R any](f func() R) func() oyster.Optional[R] {
	return func() oyster.Optional[R] {
		return present(f())
	}
}

func Nullable1[A, R any](f func(a A) R) func(a A) oyster.Optional[R] {
	return func(a A) oyster.Optional[R] {
		return present(f(a))
	}
}

func Nullable2[A, B, R any](f func(a A, b B) R) func(a A, b B) oyster.Optional[R] {
	return func(a A, b B) oyster.Optional[R] {
		return present(f(a, b))
	}
}

func Nullable3[A, B, C, R any](f func(a A, b B, c C) R) func(a A, b B, c C) oyster.Optional[R] {
	return func(a A, b B, c C) oyster.Optional[R] {
		return present(f(a, b, c))
	}
}

// Lookup lifts a niladic comma-ok function.
func Lookup[R any](f func() (R, bool)) func() oyster.Optional[R] {
	return func() oyster.Optional[R] {
		return found[R](f())
	}
}

// Lookup1 lifts a comma-ok lookup like a map index or os.LookupEnv.
func Lookup1[K, R any](f func(key K) (R, bool)) func(key K) oyster.Optional[R] {
	return func(key K) oyster.Optional[R] {
		return found[R](f(key))
	}
}

func Lookup2[A, B, R any](f func(a A, b B) (R, bool)) func(a A, b B) oyster.Optional[R] {
	return func(a A, b B) oyster.Optional[R] {
		return found[R](f(a, b))
	}
}

// FromMap is Lookup1 over a map index.
func FromMap[K comparable, V any](m map[K]V) func(key K) oyster.Optional[V] {
	return Lookup1(func(key K) (V, bool) {
		v, ok := m[key]
		return v, ok
	})
}

func present[R any](v R) oyster.Optional[R] {
	if oyster.IsNil(v) {
		return oyster.Absent[R]()
	}
	return oyster.Present(v)
}

func found[R any](v R, ok bool) oyster.Optional[R] {
	if !ok {
		return oyster.Absent[R]()
	}
	return oyster.Present(v)
}
