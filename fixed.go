package fixedseq

import (
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/fixedseq/contract"
)

// Fixed owns an inline array A, which must be [N]T, and embeds the
// Sequence bound to it, so every Sequence method is available directly:
//
//	var readings fixedseq.Fixed[int, [16]int]
//	readings.Init()
//	readings.PushBack(42)
//
// A Fixed must be initialized (Init or one of the New functions) before use
// and must not be copied afterwards. Call Release at end of life when the
// elements implement Destroyer.
type Fixed[T, A any] struct {
	Sequence[T]
	buf A
	_   noCopy
}

// NewFixed returns an empty, initialized Fixed.
func NewFixed[T, A any]() *Fixed[T, A] {
	f := new(Fixed[T, A])
	return f.Init()
}

// NewFixedN returns a Fixed holding min(n, N) copies of v.
func NewFixedN[T, A any](n int, v T) *Fixed[T, A] {
	f := NewFixed[T, A]()
	f.AssignN(n, v)
	return f
}

// NewFixedFrom returns a Fixed holding a copy of src. Copying more than N
// elements is a violation and leaves the result empty.
func NewFixedFrom[T, A any](src *Sequence[T]) *Fixed[T, A] {
	f := NewFixed[T, A]()
	f.CopyFrom(src)
	return f
}

// Init binds the embedded Sequence to the inline array. Calling it on a
// bound Fixed destroys the current elements first. When A is not an array
// of T a violation is reported and the capacity stays 0.
func (f *Fixed[T, A]) Init() *Fixed[T, A] {
	f.Clear()
	n, ok := arrayLen[T, A]()
	if !ok {
		f.Sequence = Sequence[T]{hooks: hooksFor[T]()}
		return f
	}
	var data []T
	if n > 0 {
		data = unsafe.Slice((*T)(unsafe.Pointer(&f.buf)), n)
	}
	f.Sequence = View(data)
	return f
}

// Release destroys every live element. The storage itself is reclaimed by
// the garbage collector once the Fixed is unreachable.
func (f *Fixed[T, A]) Release() {
	f.Clear()
}

// arrayLen reports N for A = [N]T.
func arrayLen[T, A any]() (int, bool) {
	at := reflect.TypeFor[A]()
	ok := at.Kind() == reflect.Array && at.Elem() == reflect.TypeFor[T]()
	if !contract.Require(ok, "storage type is [N]T") {
		return 0, false
	}
	return at.Len(), true
}

// noCopy lets go vet's copylocks check flag copies of a Fixed.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
