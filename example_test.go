package fixedseq_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pavanmanishd/fixedseq"
	"github.com/pavanmanishd/fixedseq/contract"
)

// Example demonstrates basic bounded-sequence usage
func Example() {
	// Borrow a buffer of 8 slots
	var buf [8]int
	s := fixedseq.View(buf[:])

	s.PushBack(1)
	s.PushBack(3)
	s.Insert(1, 2)
	fmt.Println(s.Slice(), s.Len(), s.Cap())

	s.Erase(0)
	fmt.Println(s.Slice())

	// Multi-element operations stop at capacity
	s.AssignSlice([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
	fmt.Println(s.Slice(), s.Full())

	// Output:
	// [1 2 3] 3 8
	// [2 3]
	// [9 8 7 6 5 4 3 2] true
}

// ExampleFixed sorts a sequence held in owned storage
func ExampleFixed() {
	vec := fixedseq.NewFixed[int, [10]int]()
	for i := 9; i >= 0; i-- {
		vec.PushBack(i)
	}
	slices.Sort(vec.Slice())
	fmt.Println(vec.Slice())

	// Output:
	// [0 1 2 3 4 5 6 7 8 9]
}

type counter struct {
	value int
}

func (c *counter) Init(v int) { c.value = v }

// ExampleSequence_EmplaceBack constructs elements in place
func ExampleSequence_EmplaceBack() {
	vec := fixedseq.NewFixed[counter, [3]counter]()
	for i := 0; i < 5; i++ {
		if !vec.Full() {
			fixedseq.Construct1(vec.EmplaceBack(), (*counter).Init, i*10)
		}
	}
	for c := range vec.Values() {
		fmt.Print(c.value, " ")
	}
	fmt.Println()

	// Output:
	// 0 10 20
}

// ExampleAssign shows how two-argument calls are resolved
func ExampleAssign() {
	var buf [5]int
	s := fixedseq.View(buf[:])

	// Integral arguments: a count and a value
	fixedseq.Assign(&s, 3, 7)
	fmt.Println(s.Slice())

	// Iterators: a range
	first, last := fixedseq.SliceRange([]int{1, 2, 3, 4, 5, 6})
	fixedseq.Assign(&s, first, last)
	fmt.Println(s.Slice())

	// Output:
	// [7 7 7]
	// [1 2 3 4 5]
}

// ExampleCarve carves sequences out of a fixed pool
func ExampleCarve() {
	pool := fixedseq.NewPool(256)
	defer pool.Release()

	ids := fixedseq.Carve[uint32](pool, 16)
	temps := fixedseq.Carve[float32](pool, 16)
	ids.PushBack(7)
	temps.PushBack(21.5)

	fmt.Println(ids.Cap(), temps.Cap(), pool.SizeInUse())

	// Output:
	// 16 16 128
}

// ExampleLess shows that ordering requires equal lengths
func ExampleLess() {
	a := fixedseq.NewFixed[int, [4]int]()
	b := fixedseq.NewFixed[int, [4]int]()
	a.AssignSlice([]int{1})
	b.AssignSlice([]int{1, 2})

	fmt.Println(fixedseq.Less(&a.Sequence, &b.Sequence), fixedseq.Less(&b.Sequence, &a.Sequence))
	fmt.Println(fixedseq.LessEqual(&a.Sequence, &b.Sequence), fixedseq.GreaterEqual(&a.Sequence, &b.Sequence))

	// Output:
	// false false
	// true true
}

// ExampleSequence_PushBack_violation recovers a violation raised as a value
func ExampleSequence_PushBack_violation() {
	defer contract.Push(contract.Raise).Restore()
	prev := contract.GetReportMode()
	contract.SetReportMode(contract.ReportCondition)
	defer contract.SetReportMode(prev)

	vec := fixedseq.NewFixed[int, [1]int]()
	vec.PushBack(1)

	func() {
		defer func() {
			var v *contract.Violation
			if err, ok := recover().(error); ok && errors.As(err, &v) {
				fmt.Println(v)
			}
		}()
		vec.PushBack(2)
	}()
	fmt.Println(vec.Slice())

	// Output:
	// contract violation: !full()
	// [1]
}
