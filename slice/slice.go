package slice

func Map[T any, U any](input []T, pred func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = pred(v)
	}
	return result
}

// MapWithPrev is Map where fn also gets the preceding element,
// prev is nil for the first element.
func MapWithPrev[T any, U any](input []T, fn func(prev *T, curr T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		var prev *T
		if i > 0 {
			prev = &input[i-1]
		}
		result[i] = fn(prev, v)
	}
	return result
}

func All[T any](input []T, pred func(T) bool) bool {
	for _, v := range input {
		if !pred(v) {
			return false
		}
	}
	return true
}

func Find[T any](input []T, pred func(T) bool) (T, bool) {
	for _, v := range input {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
