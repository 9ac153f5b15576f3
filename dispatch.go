package fixedseq

import (
	"math"

	"github.com/pavanmanishd/fixedseq/contract"
)

// Integral is the closed set of built-in boolean, character and integer
// types. Named types derived from them are deliberately excluded.
type Integral interface {
	bool | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// IsIntegral reports whether A is one of the types in Integral. byte and
// rune are covered as aliases of uint8 and int32.
func IsIntegral[A any]() bool {
	var zero A
	switch any(zero).(type) {
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	}
	return false
}

// Assign resolves the two-argument assign the way overloaded sequence
// containers do. When A is integral the call means AssignN(x, y): x is the
// count and y the value. Otherwise x and y must be an iterator pair of type
// A and the call means AssignRange(s, x, y). Anything else is a contract
// violation.
func Assign[T, A any](s *Sequence[T], x, y A) {
	if IsIntegral[A]() {
		n, v, ok := countValue[T](x, y)
		if !contract.Require(ok, "value convertible to element type") {
			return
		}
		s.AssignN(n, v)
		return
	}
	first, ok := any(x).(Iterator[T, A])
	if !contract.Require(ok, "integral count or iterator pair") {
		return
	}
	if fw, ok := first.(ForwardIterator[T, A]); ok {
		AssignRange(s, dynForward[T, A]{fw}, dynForward[T, A]{any(y).(ForwardIterator[T, A])})
		return
	}
	AssignRange(s, dynInput[T, A]{first}, dynInput[T, A]{any(y).(Iterator[T, A])})
}

// Insert resolves the two-argument insert at pos like Assign: an integral A
// selects InsertN(pos, x, y), an iterator A selects InsertRange. It returns
// pos.
func Insert[T, A any](s *Sequence[T], pos int, x, y A) int {
	if IsIntegral[A]() {
		n, v, ok := countValue[T](x, y)
		if !contract.Require(ok, "value convertible to element type") {
			return pos
		}
		return s.InsertN(pos, n, v)
	}
	first, ok := any(x).(Iterator[T, A])
	if !contract.Require(ok, "integral count or iterator pair") {
		return pos
	}
	if fw, ok := first.(ForwardIterator[T, A]); ok {
		return InsertRange(s, pos, dynForward[T, A]{fw}, dynForward[T, A]{any(y).(ForwardIterator[T, A])})
	}
	return InsertRange(s, pos, dynInput[T, A]{first}, dynInput[T, A]{any(y).(Iterator[T, A])})
}

// countValue interprets x as a count and y as an element value.
func countValue[T, A any](x, y A) (int, T, bool) {
	n := toCount(any(x))
	if v, ok := any(y).(T); ok {
		return n, v, true
	}
	var v T
	iv, ok := toInt64(any(y))
	if !ok || !fromInt64(&v, iv) {
		return 0, v, false
	}
	return n, v, true
}

// toCount converts an integral count to int, saturating at math.MaxInt
// and math.MinInt.
func toCount(x any) int {
	switch v := x.(type) {
	case uint:
		return int(min(v, math.MaxInt))
	case uint64:
		return int(min(v, math.MaxInt))
	case uintptr:
		return int(min(v, math.MaxInt))
	}
	n, _ := toInt64(x)
	return int(min(max(n, math.MinInt), math.MaxInt))
}

func toInt64(x any) (int64, bool) {
	switch v := x.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uintptr:
		return int64(v), true
	}
	return 0, false
}

// fromInt64 stores x into *dst when T is integral, truncating like a Go
// conversion.
func fromInt64[T any](dst *T, x int64) bool {
	switch p := any(dst).(type) {
	case *bool:
		*p = x != 0
	case *int:
		*p = int(x)
	case *int8:
		*p = int8(x)
	case *int16:
		*p = int16(x)
	case *int32:
		*p = int32(x)
	case *int64:
		*p = x
	case *uint:
		*p = uint(x)
	case *uint8:
		*p = uint8(x)
	case *uint16:
		*p = uint16(x)
	case *uint32:
		*p = uint32(x)
	case *uint64:
		*p = uint64(x)
	case *uintptr:
		*p = uintptr(x)
	default:
		return false
	}
	return true
}

// dynInput adapts a dynamically typed single-pass iterator to the static
// Iterator constraint.
type dynInput[T, I any] struct {
	it Iterator[T, I]
}

func (d dynInput[T, I]) Value() T { return d.it.Value() }

func (d dynInput[T, I]) Next() dynInput[T, I] {
	return dynInput[T, I]{any(d.it.Next()).(Iterator[T, I])}
}

func (d dynInput[T, I]) Equal(o dynInput[T, I]) bool { return d.it.Equal(o.it.(I)) }

// dynForward is dynInput for forward iterators; it keeps Distance visible.
type dynForward[T, I any] struct {
	it ForwardIterator[T, I]
}

func (d dynForward[T, I]) Value() T { return d.it.Value() }

func (d dynForward[T, I]) Next() dynForward[T, I] {
	return dynForward[T, I]{any(d.it.Next()).(ForwardIterator[T, I])}
}

func (d dynForward[T, I]) Equal(o dynForward[T, I]) bool { return d.it.Equal(o.it.(I)) }

func (d dynForward[T, I]) Distance(o dynForward[T, I]) int { return d.it.Distance(o.it.(I)) }

func (d dynForward[T, I]) window(o dynForward[T, I]) ([]T, bool) {
	w, ok := d.it.(windowed[T, I])
	if !ok {
		return nil, false
	}
	return w.window(o.it.(I))
}
