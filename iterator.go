package fixedseq

import "github.com/pavanmanishd/fixedseq/contract"

// Iterator is a position in a sequence of T values. I is the concrete
// iterator type, so a pair (first, last) delimits a half-open range that is
// walked with Next until Equal(last).
type Iterator[T, I any] interface {
	Value() T
	Next() I
	Equal(other I) bool
}

// ForwardIterator is an Iterator that can be walked repeatedly and can
// measure the distance to a later position without advancing.
type ForwardIterator[T, I any] interface {
	Iterator[T, I]
	Distance(last I) int
}

// Iter is a position in a Sequence. It is invalidated by any structural
// mutation at or before its position.
type Iter[T any] struct {
	s *Sequence[T]
	i int
}

// Begin returns an iterator at the first element.
func (s *Sequence[T]) Begin() Iter[T] { return Iter[T]{s: s, i: 0} }

// End returns an iterator one past the last element.
func (s *Sequence[T]) End() Iter[T] { return Iter[T]{s: s, i: s.size} }

// Index returns the position as an index usable with the mutation methods.
func (it Iter[T]) Index() int { return it.i }

// Value returns the element at the position.
func (it Iter[T]) Value() T { return it.s.data[it.i] }

// Next returns the following position.
func (it Iter[T]) Next() Iter[T] { return Iter[T]{s: it.s, i: it.i + 1} }

// Advance returns the position n elements further (n may be negative).
func (it Iter[T]) Advance(n int) Iter[T] { return Iter[T]{s: it.s, i: it.i + n} }

// Equal reports whether both iterators denote the same position.
func (it Iter[T]) Equal(other Iter[T]) bool { return it.s == other.s && it.i == other.i }

// Distance returns the number of elements in [it, last).
func (it Iter[T]) Distance(last Iter[T]) int { return last.i - it.i }

func (it Iter[T]) window(last Iter[T]) ([]T, bool) {
	if it.s == nil || it.s != last.s || it.i < 0 || it.i > last.i || last.i > it.s.size {
		return nil, false
	}
	return it.s.data[it.i:last.i], true
}

// SliceIter is a position in a plain slice.
type SliceIter[T any] struct {
	s []T
	i int
}

// SliceRange returns the iterator pair spanning src.
func SliceRange[T any](src []T) (first, last SliceIter[T]) {
	return SliceIter[T]{s: src}, SliceIter[T]{s: src, i: len(src)}
}

// Value returns the element at the position.
func (it SliceIter[T]) Value() T { return it.s[it.i] }

// Next returns the following position.
func (it SliceIter[T]) Next() SliceIter[T] { return SliceIter[T]{s: it.s, i: it.i + 1} }

// Equal reports whether both iterators denote the same position.
func (it SliceIter[T]) Equal(other SliceIter[T]) bool { return it.i == other.i }

// Distance returns the number of elements in [it, last).
func (it SliceIter[T]) Distance(last SliceIter[T]) int { return last.i - it.i }

func (it SliceIter[T]) window(last SliceIter[T]) ([]T, bool) {
	if it.i < 0 || it.i > last.i || last.i > len(it.s) {
		return nil, false
	}
	return it.s[it.i:last.i], true
}

// InputIter is a single-pass iterator over a generator. Advancing one copy
// consumes the generator for every copy.
type InputIter[T any] struct {
	next func() (T, bool)
	cur  T
	ok   bool
}

// Input returns the iterator pair for the values produced by next, which
// reports false once exhausted.
func Input[T any](next func() (T, bool)) (first, last InputIter[T]) {
	first.next = next
	first.cur, first.ok = next()
	return first, InputIter[T]{}
}

// Value returns the current value.
func (it InputIter[T]) Value() T { return it.cur }

// Next pulls the following value from the generator.
func (it InputIter[T]) Next() InputIter[T] {
	n := InputIter[T]{next: it.next}
	n.cur, n.ok = it.next()
	return n
}

// Equal reports whether both iterators are exhausted. Live single-pass
// positions never compare equal.
func (it InputIter[T]) Equal(other InputIter[T]) bool {
	return !it.ok && !other.ok
}

// windowed is implemented by iterators over contiguous memory; window
// returns [it, last) as a slice.
type windowed[T, I any] interface {
	window(last I) ([]T, bool)
}

// distance returns the length of [first, last) when I is a forward
// iterator.
func distance[T, I any](first, last I) (int, bool) {
	fw, ok := any(first).(ForwardIterator[T, I])
	if !ok {
		return 0, false
	}
	return fw.Distance(last), true
}

// InsertRange inserts the elements of [first, last) at pos and returns pos.
// Forward iterators are measured once and inserted with a single shift of
// the tail; single-pass iterators are inserted one element at a time.
// Either way insertion stops when the sequence is full. A range over the
// sequence itself is read as it was before the insertion.
func InsertRange[T any, I Iterator[T, I]](s *Sequence[T], pos int, first, last I) int {
	if !contract.Require(s.validPos(pos), "begin() <= position <= end()") {
		return pos
	}
	if w, ok := any(first).(windowed[T, I]); ok {
		if src, ok := w.window(last); ok {
			return s.InsertSlice(pos, src)
		}
	}
	if n, ok := distance[T](first, last); ok {
		n = min(max(n, 0), len(s.data)-s.size)
		if n == 0 {
			return pos
		}
		s.openGap(pos, n)
		for k := 0; k < n; k++ {
			s.data[pos+k] = first.Value()
			first = first.Next()
		}
		return pos
	}
	at := pos
	for !s.Full() && !first.Equal(last) {
		s.openGap(at, 1)
		s.data[at] = first.Value()
		first = first.Next()
		at++
	}
	return pos
}

// AssignRange replaces the contents of s with the elements of
// [first, last) that fit. The range must not be over s itself.
func AssignRange[T any, I Iterator[T, I]](s *Sequence[T], first, last I) {
	s.Clear()
	for !s.Full() && !first.Equal(last) {
		s.data[s.size] = first.Value()
		s.size++
		first = first.Next()
	}
}
