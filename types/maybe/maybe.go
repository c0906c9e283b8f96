package maybe

type Maybe[T any] struct {
	value T
	valid bool
}

func Some[T any](value T) Maybe[T] {
	return Maybe[T]{
		value: value,
		valid: true,
	}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{
		valid: false,
	}
}

// FromOk turns the common (value, ok) return pair into a Maybe.
func FromOk[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (m Maybe[T]) IsValid() bool {
	return m.valid
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) ValueOrDefault(defaultValue T) T {
	if m.valid {
		return m.value
	}
	return defaultValue
}

// Format renders the value with fn, or returns fallback when there is none.
func (m Maybe[T]) Format(fn func(T) string, fallback string) string {
	if !m.valid {
		return fallback
	}
	return fn(m.value)
}
