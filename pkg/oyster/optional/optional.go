package optional

import "github.com/ib-77/oyster/pkg/oyster"

// And returns other when o is Present, discarding o's value.
func And[V, F any](o oyster.Optional[V], other oyster.Optional[F]) oyster.Optional[F] {
	if o.IsPresent() {
		return other
	}
	return oyster.Absent[F]()
}

func AndThen[V, F any](o oyster.Optional[V], f func(v V) oyster.Optional[F]) oyster.Optional[F] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return oyster.Absent[F]()
}

func Map[V, F any](o oyster.Optional[V], f func(v V) F) oyster.Optional[F] {
	if v, ok := o.Get(); ok {
		return oyster.Present(f(v))
	}
	return oyster.Absent[F]()
}

// MapOr applies f to a present value, otherwise returns def as given.
func MapOr[V, F any](o oyster.Optional[V], def F, f func(v V) F) F {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def
}

// MapOrElse is MapOr with a lazily computed default.
func MapOrElse[V, F any](o oyster.Optional[V], def func() F, f func(v V) F) F {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def()
}

// OkOr converts o into an Outcome, using err for the Absent case.
func OkOr[V, E any](o oyster.Optional[V], err E) oyster.Outcome[V, E] {
	if v, ok := o.Get(); ok {
		return oyster.Success[V, E](v)
	}
	return oyster.Failure[V](err)
}

func OkOrElse[V, E any](o oyster.Optional[V], err func() E) oyster.Outcome[V, E] {
	if v, ok := o.Get(); ok {
		return oyster.Success[V, E](v)
	}
	return oyster.Failure[V](err())
}

// Match folds o into a single value, calling exactly one of the handlers.
func Match[V, Out any](o oyster.Optional[V], onPresent func(v V) Out, onAbsent func() Out) Out {
	if v, ok := o.Get(); ok {
		return onPresent(v)
	}
	return onAbsent()
}

func Flatten[V any](o oyster.Optional[oyster.Optional[V]]) oyster.Optional[V] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return oyster.Absent[V]()
}
