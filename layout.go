package fixedseq

import (
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/fixedseq/contract"
)

// ViewBytes returns a Sequence whose slots live in buf. The capacity is
// len(buf) / sizeof(T). T must be pointer-free, since the collector does not
// scan byte buffers, must have a non-zero size, and buf must be aligned for
// T. Otherwise a violation is reported and the result has capacity 0.
func ViewBytes[T any](buf []byte) Sequence[T] {
	data, ok := typedSlots[T](buf)
	if !ok {
		return Sequence[T]{hooks: hooksFor[T]()}
	}
	return View(data)
}

// slotTypeOK reports whether T can live in untyped memory.
func slotTypeOK[T any]() bool {
	var zero T
	return contract.Require(unsafe.Sizeof(zero) > 0, "sizeof(T) > 0") &&
		contract.Require(!hasPointers(reflect.TypeFor[T]()), "T is pointer-free")
}

// typedSlots reinterprets buf as []T of length len(buf) / sizeof(T).
func typedSlots[T any](buf []byte) ([]T, bool) {
	if !slotTypeOK[T]() {
		return nil, false
	}
	var zero T
	n := uintptr(len(buf)) / unsafe.Sizeof(zero)
	if n == 0 {
		return nil, true
	}
	p := unsafe.Pointer(unsafe.SliceData(buf))
	if !contract.Require(uintptr(p)%unsafe.Alignof(zero) == 0, "buffer aligned for T") {
		return nil, false
	}
	return unsafe.Slice((*T)(p), n), true
}

// hasPointers reports whether values of t contain pointers the garbage
// collector must see.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true
}
