package fixedseq

import (
	"iter"

	"github.com/pavanmanishd/fixedseq/contract"
)

// Sequence is a bounded sequence over a buffer it does not own. Live
// elements occupy the prefix [0, Len()); the remaining slots are vacant and
// hold the zero value. A Sequence never grows: operations that would exceed
// Cap() are contract violations, except the assign and multi-element
// insert forms, which truncate silently.
//
// The zero Sequence is a valid view of capacity 0. A Sequence must not be
// copied after first use; pass it by pointer.
type Sequence[T any] struct {
	data  []T
	size  int
	hooks hooks
}

// View returns a Sequence borrowing buf. The capacity is len(buf) and the
// sequence starts empty; the contents of buf are treated as vacant and
// are cleared.
func View[T any](buf []T) Sequence[T] {
	clear(buf)
	return Sequence[T]{data: buf, hooks: hooksFor[T]()}
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int { return s.size }

// Cap returns the fixed capacity.
func (s *Sequence[T]) Cap() int { return len(s.data) }

// Empty reports whether Len() == 0.
func (s *Sequence[T]) Empty() bool { return s.size == 0 }

// Full reports whether Len() == Cap().
func (s *Sequence[T]) Full() bool { return s.size == len(s.data) }

// Index returns a pointer to slot i without checking it against Len().
// Slots in [Len(), Cap()) are vacant.
func (s *Sequence[T]) Index(i int) *T {
	return &s.data[i]
}

// At returns a pointer to element i. It reports a violation and returns nil
// when i is outside [0, Len()).
func (s *Sequence[T]) At(i int) *T {
	if !contract.Require(i >= 0 && i < s.size, "index < size()") {
		return nil
	}
	return &s.data[i]
}

// Front returns the first element, or nil after reporting a violation when
// the sequence is empty.
func (s *Sequence[T]) Front() *T {
	if !contract.Require(s.size > 0, "size() > 0") {
		return nil
	}
	return &s.data[0]
}

// Back returns the last element, or nil after reporting a violation when
// the sequence is empty.
func (s *Sequence[T]) Back() *T {
	if !contract.Require(s.size > 0, "size() > 0") {
		return nil
	}
	return &s.data[s.size-1]
}

// Slice returns the live elements. Its capacity is clipped to Len(), so
// appending to it never writes into vacant slots.
func (s *Sequence[T]) Slice() []T {
	return s.data[:s.size:s.size]
}

// All iterates over index/element pairs in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// Backward iterates over index/element pairs from the back.
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// PushBack copies v into the slot after the last element. It reports a
// violation when the sequence is full.
func (s *Sequence[T]) PushBack(v T) {
	if !contract.Require(s.size < len(s.data), "!full()") {
		return
	}
	s.data[s.size] = v
	s.size++
}

// PushBackZero appends the zero value and returns a pointer to it, or nil
// after reporting a violation when the sequence is full.
func (s *Sequence[T]) PushBackZero() *T {
	if !contract.Require(s.size < len(s.data), "!full()") {
		return nil
	}
	p := &s.data[s.size]
	var zero T
	*p = zero
	s.size++
	return p
}

// EmplaceBack reserves the slot after the last element and returns a
// builder for it. Len() already counts the reserved slot when EmplaceBack
// returns; the caller must complete it with exactly one construct call
// before any other use of the sequence. EmplaceBackFunc performs both
// steps at once.
func (s *Sequence[T]) EmplaceBack() Builder[T] {
	if !contract.Require(s.size < len(s.data), "!full()") {
		return Builder[T]{}
	}
	b := Builder[T]{slot: &s.data[s.size]}
	s.size++
	return b
}

// EmplaceBackFunc appends a zero element initialized in place by init and
// returns it, or nil after reporting a violation when full.
func (s *Sequence[T]) EmplaceBackFunc(init func(*T)) *T {
	if !contract.Require(s.size < len(s.data), "!full()") {
		return nil
	}
	return Builder[T]{slot: s.reserveBack()}.ConstructWith(init)
}

func (s *Sequence[T]) reserveBack() *T {
	p := &s.data[s.size]
	s.size++
	return p
}

// PopBack destroys the last element. It reports a violation when the
// sequence is empty.
func (s *Sequence[T]) PopBack() {
	if !contract.Require(s.size > 0, "size() > 0") {
		return
	}
	s.size--
	s.destroy(s.size, s.size+1)
}

// Clear destroys every element.
func (s *Sequence[T]) Clear() {
	s.destroy(0, s.size)
	s.size = 0
}

// Swap exchanges buffers, capacities and sizes with other in O(1). All
// positions and iterators of both sequences are invalidated.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	*s, *other = *other, *s
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Sequence[T]) {
	a.Swap(b)
}
