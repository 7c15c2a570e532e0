package outcome

import "github.com/ib-77/oyster/pkg/oyster"

func Map[T, U, E any](r oyster.Outcome[T, E], onSuccess func(v T) U) oyster.Outcome[U, E] {
	if v, err, ok := r.Get(); ok {
		return oyster.Success[U, E](onSuccess(v))
	} else {
		return oyster.Failure[U](err)
	}
}

// MapOr applies onSuccess to a success value, otherwise returns def as given.
func MapOr[T, U, E any](r oyster.Outcome[T, E], def U, onSuccess func(v T) U) U {
	if v, _, ok := r.Get(); ok {
		return onSuccess(v)
	}
	return def
}

// MapOrElse computes the default from the error value.
func MapOrElse[T, U, E any](r oyster.Outcome[T, E], def func(err E) U, onSuccess func(v T) U) U {
	return Match(r, onSuccess, def)
}

func MapErr[T, E, U any](r oyster.Outcome[T, E], onFailure func(err E) U) oyster.Outcome[T, U] {
	if v, err, ok := r.Get(); ok {
		return oyster.Success[T, U](v)
	} else {
		return oyster.Failure[T](onFailure(err))
	}
}

// BiMap transforms whichever payload is active.
func BiMap[T, U, E, F any](r oyster.Outcome[T, E],
	onSuccess func(v T) U,
	onFailure func(err E) F) oyster.Outcome[U, F] {

	if v, err, ok := r.Get(); ok {
		return oyster.Success[U, F](onSuccess(v))
	} else {
		return oyster.Failure[U](onFailure(err))
	}
}

// And returns other when r is a Success; a Failure propagates unchanged.
func And[T, U, E any](r oyster.Outcome[T, E], other oyster.Outcome[U, E]) oyster.Outcome[U, E] {
	if _, err, ok := r.Get(); !ok {
		return oyster.Failure[U](err)
	}
	return other
}

func AndThen[T, U, E any](r oyster.Outcome[T, E], onSuccess func(v T) oyster.Outcome[U, E]) oyster.Outcome[U, E] {
	if v, err, ok := r.Get(); ok {
		return onSuccess(v)
	} else {
		return oyster.Failure[U](err)
	}
}

// Or returns other when r is a Failure; a Success propagates unchanged.
func Or[T, E, U any](r oyster.Outcome[T, E], other oyster.Outcome[T, U]) oyster.Outcome[T, U] {
	if v, _, ok := r.Get(); ok {
		return oyster.Success[T, U](v)
	}
	return other
}

// OrElse recovers from a Failure using its error value.
func OrElse[T, E, U any](r oyster.Outcome[T, E], onFailure func(err E) oyster.Outcome[T, U]) oyster.Outcome[T, U] {
	if v, err, ok := r.Get(); ok {
		return oyster.Success[T, U](v)
	} else {
		return onFailure(err)
	}
}

// Match reduces r to a concrete value via the success/failure handlers.
func Match[T, E, Out any](r oyster.Outcome[T, E],
	onSuccess func(v T) Out,
	onFailure func(err E) Out) Out {

	if v, err, ok := r.Get(); ok {
		return onSuccess(v)
	} else {
		return onFailure(err)
	}
}

// Validate turns a Success into a Failure when check rejects the value.
func Validate[T, E any](r oyster.Outcome[T, E], check func(v T) (valid bool, err E)) oyster.Outcome[T, E] {
	if v, _, ok := r.Get(); ok {
		if valid, err := check(v); !valid {
			return oyster.Failure[T](err)
		}
	}
	return r
}

func Tee[T, E any](r oyster.Outcome[T, E], onSuccess func(v T)) oyster.Outcome[T, E] {
	if v, _, ok := r.Get(); ok {
		onSuccess(v)
	}
	return r
}

func DoubleTee[T, E any](r oyster.Outcome[T, E], onSuccess func(v T), onFailure func(err E)) oyster.Outcome[T, E] {
	if v, err, ok := r.Get(); ok {
		onSuccess(v)
	} else {
		onFailure(err)
	}
	return r
}

// Collect gathers the success values in order. The first Failure is returned
// as is and later outcomes are not inspected.
func Collect[T, E any](rs []oyster.Outcome[T, E]) oyster.Outcome[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		v, err, ok := r.Get()
		if !ok {
			return oyster.Failure[[]T](err)
		}
		values = append(values, v)
	}
	return oyster.Success[[]T, E](values)
}

func Flatten[T, E any](r oyster.Outcome[oyster.Outcome[T, E], E]) oyster.Outcome[T, E] {
	if inner, err, ok := r.Get(); ok {
		return inner
	} else {
		return oyster.Failure[T](err)
	}
}
