package fixedseq

import "unsafe"

// Alloc returns a zeroed T placed in the pool, or nil when the pool is
// exhausted. T must be pointer-free; otherwise a violation is reported and
// nil returned.
func Alloc[T any](p *Pool) *T {
	s := AllocSlice[T](p, 1)
	if s == nil {
		return nil
	}
	return &s[0]
}

// AllocSlice returns n zeroed elements of T placed in the pool, or nil when
// n <= 0 or the pool is exhausted. T must be pointer-free.
func AllocSlice[T any](p *Pool, n int) []T {
	p.panicIfReleased()
	if n <= 0 || !slotTypeOK[T]() {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if n > len(p.buf)/size {
		return nil
	}
	b := p.allocAligned(n*size, unsafe.Alignof(zero))
	if b == nil {
		return nil
	}
	data, ok := typedSlots[T](b)
	if !ok {
		return nil
	}
	clear(data)
	return data
}

// Carve returns an empty Sequence of capacity n backed by pool memory. The
// capacity is 0 when the pool cannot fit n elements. T must be
// pointer-free.
func Carve[T any](p *Pool, n int) Sequence[T] {
	return View(AllocSlice[T](p, n))
}
