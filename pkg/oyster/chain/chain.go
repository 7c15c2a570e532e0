package chain

import (
	"github.com/ib-77/oyster/pkg/oyster"
	"github.com/ib-77/oyster/pkg/oyster/outcome"
	"github.com/ib-77/oyster/pkg/oyster/wrap"
)

// Chain wraps an oyster.Outcome to enable fluent chaining
type Chain[T, E any] struct {
	res oyster.Outcome[T, E]
}

// Start creates a new chain from an oyster.Outcome
func Start[T, E any](r oyster.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(oyster.Success[T, E](v))
}

func FromFailure[T, E any](err E) Chain[T, E] {
	return Start(oyster.Failure[T](err))
}

// Outcome returns the underlying oyster.Outcome
func (c Chain[T, E]) Outcome() oyster.Outcome[T, E] {
	return c.res
}

// Then composes functions that already return oyster.Outcome[T, E]
func (c Chain[T, E]) Then(onSuccess func(v T) oyster.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{res: outcome.AndThen(c.res, onSuccess)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(v T) T) Chain[T, E] {
	return Chain[T, E]{res: outcome.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(v T), onFailure func(err E)) Chain[T, E] {
	v, err, ok := c.res.Get()
	if ok {
		if onSuccess != nil {
			onSuccess(v)
		}
		return c
	}

	if onFailure != nil {
		onFailure(err)
	}
	return c
}

// Or returns c when it succeeded, otherwise alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// RepeatUntil applies onSuccess at least once and keeps going while until
// reports false, stopping at the first failure.
func (c Chain[T, E]) RepeatUntil(onSuccess func(v T) oyster.Outcome[T, E],
	until func(v T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.res.Unwrap()) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain succeeds and while holds.
func (c Chain[T, E]) While(onSuccess func(v T) oyster.Outcome[T, E],
	while func(v T) bool) Chain[T, E] {

	for c.res.IsSuccessAnd(while) {
		c = c.Then(onSuccess)
	}
	return c
}

// Then chains a function that returns oyster.Outcome[U, E]
func Then[T, U, E any](c Chain[T, E], onSuccess func(v T) oyster.Outcome[U, E]) Chain[U, E] {
	return Chain[U, E]{res: outcome.AndThen(c.res, onSuccess)}
}

// MapTo chains a pure transformation function
func MapTo[T, U, E any](c Chain[T, E], onSuccess func(v T) U) Chain[U, E] {
	return Chain[U, E]{res: outcome.Map(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error), like repository calls.
// The error becomes the failure message.
func ThenTry[T, U any](c Chain[T, string], try func(v T) (U, error)) Chain[U, string] {
	return Then(c, wrap.Fallible1(try))
}

// Finally collapses the chain into a final value
func Finally[T, E, U any](c Chain[T, E], onSuccess func(v T) U, onFailure func(err E) U) U {
	return outcome.Match(c.res, onSuccess, onFailure)
}
