package reactive

// Update describes the next value of a signal: either a value to store as is
// or a derivation from the current value.
type Update[T any] struct {
	value  T
	derive func(T) T
}

// Direct returns an Update that replaces the current value with v.
func Direct[T any](v T) Update[T] {
	return Update[T]{value: v}
}

// Derive returns an Update that computes the next value from the current one.
// A nil fn behaves like Direct of the zero value.
func Derive[T any](fn func(T) T) Update[T] {
	return Update[T]{derive: fn}
}

// IsDerive reports whether u computes its value from the current one.
func (u Update[T]) IsDerive() bool {
	return u.derive != nil
}

// Resolve returns the value u produces when applied to current.
func (u Update[T]) Resolve(current T) T {
	if u.derive != nil {
		return u.derive(current)
	}
	return u.value
}
