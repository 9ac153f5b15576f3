package fixedseq

import (
	"math"
	"testing"
)

type celsius int

func TestIsIntegral(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"bool", IsIntegral[bool](), true},
		{"byte", IsIntegral[byte](), true},
		{"rune", IsIntegral[rune](), true},
		{"int", IsIntegral[int](), true},
		{"int8", IsIntegral[int8](), true},
		{"int16", IsIntegral[int16](), true},
		{"int64", IsIntegral[int64](), true},
		{"uint", IsIntegral[uint](), true},
		{"uint16", IsIntegral[uint16](), true},
		{"uint32", IsIntegral[uint32](), true},
		{"uint64", IsIntegral[uint64](), true},
		{"uintptr", IsIntegral[uintptr](), true},
		{"float64", IsIntegral[float64](), false},
		{"string", IsIntegral[string](), false},
		{"named int", IsIntegral[celsius](), false},
		{"pointer", IsIntegral[*int](), false},
		{"iterator", IsIntegral[SliceIter[int]](), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("IsIntegral[%s]() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func integralOnly[A Integral](a A) A { return a }

func TestIntegralConstraint(t *testing.T) {
	if integralOnly(true) != true || integralOnly(uint8(3)) != 3 {
		t.Error("Integral constraint rejected a member type")
	}
}

func TestAssignDispatchCountValue(t *testing.T) {
	got := recordViolations(t)
	s := newInts(5, 9, 9)

	// Both arguments are int: count then value, not an iterator pair.
	Assign(s, 3, 7)
	assertContents(t, s, 7, 7, 7)

	Assign(s, 10, 1)
	assertContents(t, s, 1, 1, 1, 1, 1)
	assertViolations(t, got, 0)
}

func TestAssignDispatchConvertsIntegralValue(t *testing.T) {
	s := View(make([]int64, 4))
	Assign(&s, uint8(2), uint8(200))
	assertContents(t, &s, 200, 200)

	b := View(make([]bool, 2))
	Assign(&b, 2, 1)
	assertContents(t, &b, true, true)
}

func TestAssignDispatchIteratorPair(t *testing.T) {
	s := newInts(4)
	first, last := SliceRange([]int{1, 2, 3, 4, 5, 6})
	Assign(s, first, last)
	assertContents(t, s, 1, 2, 3, 4)

	src := newInts(3, 7, 8)
	Assign(s, src.Begin(), src.End())
	assertContents(t, s, 7, 8)

	in, end := Input(counter(3))
	Assign(s, in, end)
	assertContents(t, s, 0, 1, 2)
}

func TestAssignDispatchRejects(t *testing.T) {
	got := recordViolations(t)
	s := View(make([]string, 3))
	s.PushBack("keep")

	Assign(&s, 2, 5)
	assertViolations(t, got, 1)
	Assign(&s, 1.5, 2.5)
	assertViolations(t, got, 2)
	assertContents(t, &s, "keep")
}

func TestInsertDispatch(t *testing.T) {
	got := recordViolations(t)
	s := newInts(8, 1, 5)

	if pos := Insert(s, 1, 2, 3); pos != 1 {
		t.Errorf("Insert returned %d, want 1", pos)
	}
	assertContents(t, s, 1, 3, 3, 5)

	first, last := SliceRange([]int{4, 4})
	Insert(s, 3, first, last)
	assertContents(t, s, 1, 3, 3, 4, 4, 5)

	in, end := Input(counter(5))
	Insert(s, 0, in, end)
	assertContents(t, s, 0, 1, 1, 3, 3, 4, 4, 5)
	assertViolations(t, got, 0)

	Insert(s, 0, "a", "b")
	assertViolations(t, got, 1)

	str := View(make([]string, 2))
	Insert(&str, 0, 1, 2)
	assertViolations(t, got, 2)
}

func TestDispatchHugeUnsignedCountSaturates(t *testing.T) {
	got := recordViolations(t)

	buf := make([]uint64, 4)
	s := View(buf)
	Assign(&s, uint64(math.MaxUint64), uint64(7))
	assertContents(t, &s, 7, 7, 7, 7)

	buf2 := make([]uint64, 4)
	s2 := View(buf2)
	Insert(&s2, 0, uint64(1<<63), uint64(7))
	assertContents(t, &s2, 7, 7, 7, 7)

	ints := newInts(3)
	Assign(ints, uint(math.MaxUint), 2)
	assertContents(t, ints, 2, 2, 2)

	assertViolations(t, got, 0)
}

func TestToCount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"uint64 max", uint64(math.MaxUint64), math.MaxInt},
		{"uint64 1<<63", uint64(1 << 63), math.MaxInt},
		{"uint max", uint(math.MaxUint), math.MaxInt},
		{"uintptr", uintptr(12), 12},
		{"int64 negative", int64(-3), -3},
		{"uint8", uint8(200), 200},
		{"bool", true, 1},
	}
	for _, tt := range tests {
		if got := toCount(tt.in); got != tt.want {
			t.Errorf("toCount(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
