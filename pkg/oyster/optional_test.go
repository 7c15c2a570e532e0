package oyster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// raised runs f and returns the error it panicked with, or nil.
func raised(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

func TestOptional_Predicates(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, -7} {
		assert.True(t, Present(v).IsPresent())
		assert.False(t, Present(v).IsAbsent())
	}
	assert.False(t, Absent[int]().IsPresent())
	assert.True(t, Absent[int]().IsAbsent())
}

func TestOptional_ZeroValueIsAbsent(t *testing.T) {
	t.Parallel()

	var o Optional[string]
	assert.True(t, o.IsAbsent())
	assert.Equal(t, Absent[string](), o)
}

func TestOptional_IsPresentAnd(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }
	assert.True(t, Present(2).IsPresentAnd(even))
	assert.False(t, Present(3).IsPresentAnd(even))

	called := false
	assert.False(t, Absent[int]().IsPresentAnd(func(int) bool { called = true; return true }))
	if called {
		t.Fatalf("predicate must not be called on Absent")
	}
}

func TestOptional_Get(t *testing.T) {
	t.Parallel()

	v, ok := Present("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = Absent[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestOptional_Or(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present(1), Present(1).Or(Present(2)))
	assert.Equal(t, Present(2), Absent[int]().Or(Present(2)))
	assert.Equal(t, Absent[int](), Absent[int]().Or(Absent[int]()))
}

func TestOptional_OrElse_Lazy(t *testing.T) {
	t.Parallel()

	calls := 0
	alt := func() Optional[int] { calls++; return Present(9) }

	assert.Equal(t, Present(1), Present(1).OrElse(alt))
	assert.Equal(t, 0, calls)

	assert.Equal(t, Present(9), Absent[int]().OrElse(alt))
	assert.Equal(t, 1, calls)
}

func TestOptional_Xor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present(1), Present(1).Xor(Absent[int]()))
	assert.Equal(t, Present(2), Absent[int]().Xor(Present(2)))
	assert.Equal(t, Absent[int](), Present(1).Xor(Present(2)))
	assert.Equal(t, Absent[int](), Absent[int]().Xor(Absent[int]()))
}

func TestOptional_FilterAndInspect(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }
	assert.Equal(t, Present(4), Present(4).Filter(positive))
	assert.Equal(t, Absent[int](), Present(-4).Filter(positive))
	assert.Equal(t, Absent[int](), Absent[int]().Filter(positive))

	var seen []int
	Present(5).Inspect(func(v int) { seen = append(seen, v) })
	Absent[int]().Inspect(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{5}, seen)
}

func TestOptional_Unwrap(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "a", "hello"} {
		assert.Equal(t, v, Present(v).Unwrap())
	}

	err := raised(t, func() { Absent[int]().Unwrap() })
	var fault *UnwrapFault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "called `Optional.Unwrap()` on an `Absent` value", err.Error())
	assert.Empty(t, fault.Payload)
	assert.False(t, fault.HasPayload)
}

func TestOptional_Expect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Present(3).Expect("never"))

	err := raised(t, func() { Absent[int]().Expect("config value missing") })
	var fault *ExpectFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "config value missing", fault.Message)
	assert.Equal(t, "config value missing", err.Error())
}

func TestOptional_UnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Present(1).UnwrapOr(2))
	assert.Equal(t, 2, Absent[int]().UnwrapOr(2))

	calls := 0
	def := func() int { calls++; return 7 }
	assert.Equal(t, 1, Present(1).UnwrapOrElse(def))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 7, Absent[int]().UnwrapOrElse(def))
	assert.Equal(t, 1, calls)
}

func TestOptional_NeverPanicsOnPresent(t *testing.T) {
	t.Parallel()

	o := Present(1)
	assert.NotPanics(t, func() {
		o.Unwrap()
		o.Expect("x")
		o.UnwrapOr(0)
		o.UnwrapOrElse(func() int { return 0 })
	})
}

func TestOptional_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Present("bob")`, Present("bob").String())
	assert.Equal(t, "Present(3)", Present(3).String())
	assert.Equal(t, "Absent", Absent[int]().String())
}
