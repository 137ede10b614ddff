package reducer

import "slices"

// appendCopy appends v to a fresh copy of xs.
func appendCopy[T any](xs []T, v ...T) []T {
	out := make([]T, 0, len(xs)+len(v))
	out = append(out, xs...)
	return append(out, v...)
}

// replaceAt returns a copy of xs with index i set to v.
func replaceAt[T any](xs []T, i int, v T) []T {
	out := slices.Clone(xs)
	out[i] = v
	return out
}

// removeWhere returns xs without the matching elements, or xs itself when
// nothing matches.
func removeWhere[T any](xs []T, match func(T) bool) []T {
	if !slices.ContainsFunc(xs, match) {
		return xs
	}
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if !match(x) {
			out = append(out, x)
		}
	}
	return out
}

// moveTo returns a copy of xs with the element at from moved to index to.
// Elements in between shift by one and keep their relative order.
func moveTo[T any](xs []T, from, to int) []T {
	out := slices.Clone(xs)
	v := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, v)
}
