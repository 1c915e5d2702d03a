package brushpaint

// Optional holds a value that may be absent.
//
// Keyframe overrides use Optional so that "inherit the layer's value" is
// distinct from "override with the zero value". The zero Optional is absent.
// Optionals of comparable types compare with ==: two optionals are equal
// when both are absent, or both are present with equal values.
type Optional[T comparable] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.ok
}

// ValueOr returns the held value, or def when absent.
func (o Optional[T]) ValueOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
