package sanitizer

// Apply runs value through each transform in order and returns the result.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable pipeline from the given transforms. Prefer this
// over repeated Apply calls when the same chain runs more than once.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
