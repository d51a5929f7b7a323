package model

// Opt is an explicit optional value. The zero value is None. CLDR locale
// data is sparse almost everywhere, and "absent, inherit from the parent"
// must stay distinguishable from "present but empty", so sentinels are not
// an option here.
type Opt[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

// None is the absent value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports presence.
func (o Opt[T]) IsSome() bool {
	return o.ok
}

// IsNone reports absence.
func (o Opt[T]) IsNone() bool {
	return !o.ok
}

// Or returns the value when present, otherwise fallback.
func (o Opt[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
