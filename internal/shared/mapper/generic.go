package mapper

// MapSlice applies a mapper function to each element of a slice.
// A nil input yields an empty, non-nil slice so JSON renders [].
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// Index builds a lookup map from items. Later items win on duplicate keys.
func Index[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) map[K]V {
	result := make(map[K]V, len(items))
	for _, item := range items {
		result[key(item)] = value(item)
	}
	return result
}
