package oyster

// Optional holds either a present value or nothing. The zero value is Absent.
type Optional[V any] struct {
	value   V
	present bool
}

func Present[V any](v V) Optional[V] {
	return Optional[V]{
		value:   v,
		present: true,
	}
}

func Absent[V any]() Optional[V] {
	return Optional[V]{}
}

func (o Optional[V]) IsPresent() bool {
	return o.present
}

func (o Optional[V]) IsAbsent() bool {
	return !o.present
}

// IsPresentAnd is false on Absent, otherwise the predicate's verdict.
func (o Optional[V]) IsPresentAnd(predicate func(v V) bool) bool {
	if !o.present {
		return false
	}
	return predicate(o.value)
}

// Get returns the held value and whether it was present.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}

func (o Optional[V]) Or(other Optional[V]) Optional[V] {
	if o.present {
		return o
	}
	return other
}

// OrElse calls alternative only when o is Absent.
func (o Optional[V]) OrElse(alternative func() Optional[V]) Optional[V] {
	if o.present {
		return o
	}
	return alternative()
}

// Xor is Present only when exactly one of o and other is Present.
func (o Optional[V]) Xor(other Optional[V]) Optional[V] {
	switch {
	case o.present && !other.present:
		return o
	case !o.present && other.present:
		return other
	default:
		return Absent[V]()
	}
}

func (o Optional[V]) Filter(predicate func(v V) bool) Optional[V] {
	if o.present && predicate(o.value) {
		return o
	}
	return Absent[V]()
}

// Inspect runs sideEffect on the held value and returns o unchanged.
func (o Optional[V]) Inspect(sideEffect func(v V)) Optional[V] {
	if o.present {
		sideEffect(o.value)
	}
	return o
}

// Expect returns the held value or panics with an *ExpectFault carrying msg.
func (o Optional[V]) Expect(msg string) V {
	if !o.present {
		panic(&ExpectFault{Message: msg})
	}
	return o.value
}

// Unwrap returns the held value or panics with an *UnwrapFault.
func (o Optional[V]) Unwrap() V {
	if !o.present {
		panic(&UnwrapFault{Message: optionalUnwrapMsg})
	}
	return o.value
}

func (o Optional[V]) UnwrapOr(def V) V {
	if !o.present {
		return def
	}
	return o.value
}

func (o Optional[V]) UnwrapOrElse(def func() V) V {
	if !o.present {
		return def()
	}
	return o.value
}

func (o Optional[V]) String() string {
	if !o.present {
		return "Absent"
	}
	return "Present(" + Repr(o.value) + ")"
}
