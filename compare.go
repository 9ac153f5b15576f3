package fixedseq

import "cmp"

// Equal reports whether a and b have the same length and pairwise equal
// elements.
func Equal[T comparable](a, b *Sequence[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Sequence[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a orders before b. Unlike the usual lexicographic
// order, sequences of different lengths are never less than each other:
// Less requires equal lengths and then compares element by element.
func Less[T cmp.Ordered](a, b *Sequence[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// LessFunc is Less with a caller-supplied strict element ordering.
func LessFunc[T any](a, b *Sequence[T], less func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		switch {
		case less(a.data[i], b.data[i]):
			return true
		case less(b.data[i], a.data[i]):
			return false
		}
	}
	return false
}

// Greater reports Less(b, a).
func Greater[T cmp.Ordered](a, b *Sequence[T]) bool {
	return Less(b, a)
}

// LessEqual reports !Greater(a, b). Sequences of different lengths are
// LessEqual in both directions.
func LessEqual[T cmp.Ordered](a, b *Sequence[T]) bool {
	return !Greater(a, b)
}

// GreaterEqual reports !Less(a, b). Sequences of different lengths are
// GreaterEqual in both directions.
func GreaterEqual[T cmp.Ordered](a, b *Sequence[T]) bool {
	return !Less(a, b)
}
