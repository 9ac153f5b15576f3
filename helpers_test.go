package fixedseq

import (
	"slices"
	"testing"

	"github.com/pavanmanishd/fixedseq/contract"
)

type violation struct {
	loc       contract.Location
	condition string
}

// recordViolations installs a handler that records violations and returns
// instead of aborting, restoring the previous handler when the test ends.
func recordViolations(t *testing.T) *[]violation {
	t.Helper()
	var got []violation
	scope := contract.Push(func(loc contract.Location, condition string) {
		got = append(got, violation{loc, condition})
	})
	t.Cleanup(scope.Restore)
	return &got
}

func newInts(capacity int, vals ...int) *Sequence[int] {
	s := View(make([]int, capacity))
	for _, v := range vals {
		s.PushBack(v)
	}
	return &s
}

func assertContents[T comparable](t *testing.T, s *Sequence[T], want ...T) {
	t.Helper()
	if got := s.Slice(); !slices.Equal(got, want) {
		t.Errorf("contents = %v, want %v", got, want)
	}
	if s.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(want))
	}
}

func assertViolations(t *testing.T, got *[]violation, want int) {
	t.Helper()
	if len(*got) != want {
		t.Errorf("violations = %d (%v), want %d", len(*got), *got, want)
	}
}
