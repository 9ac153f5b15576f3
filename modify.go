package fixedseq

import (
	"iter"
	"unsafe"

	"github.com/pavanmanishd/fixedseq/contract"
)

// validPos reports whether pos is a position in [0, Len()].
func (s *Sequence[T]) validPos(pos int) bool {
	return pos >= 0 && pos <= s.size
}

// openGap shifts [pos, Len()) right by n and grows the size by n. The
// caller guarantees Len()+n <= Cap().
func (s *Sequence[T]) openGap(pos, n int) {
	s.relocate(pos+n, pos, s.size-pos)
	s.size += n
}

// Emplace opens a vacant slot at pos by shifting the tail right and returns
// a builder for it. It reports a violation when the sequence is full or pos
// is outside [0, Len()].
func (s *Sequence[T]) Emplace(pos int) Builder[T] {
	if !contract.Require(s.size < len(s.data), "!full()") ||
		!contract.Require(s.validPos(pos), "begin() <= position <= end()") {
		return Builder[T]{}
	}
	s.openGap(pos, 1)
	return Builder[T]{slot: &s.data[pos]}
}

// Insert copies v into position pos, shifting later elements right, and
// returns pos. It reports a violation when the sequence is full or pos is
// outside [0, Len()].
func (s *Sequence[T]) Insert(pos int, v T) int {
	if !contract.Require(s.size < len(s.data), "size() < max_size()") ||
		!contract.Require(s.validPos(pos), "begin() <= position <= end()") {
		return pos
	}
	s.openGap(pos, 1)
	s.data[pos] = v
	return pos
}

// InsertN inserts n copies of v at pos and returns pos. n is capped to the
// remaining capacity.
func (s *Sequence[T]) InsertN(pos, n int, v T) int {
	if !contract.Require(s.validPos(pos), "begin() <= position <= end()") {
		return pos
	}
	n = min(max(n, 0), len(s.data)-s.size)
	if n == 0 {
		return pos
	}
	s.openGap(pos, n)
	gap := s.data[pos : pos+n]
	for i := range gap {
		gap[i] = v
	}
	return pos
}

// InsertSlice inserts copies of src at pos with a single shift of the tail
// and returns pos. Elements past the remaining capacity are dropped. src
// may be a window of the sequence's own buffer.
func (s *Sequence[T]) InsertSlice(pos int, src []T) int {
	if !contract.Require(s.validPos(pos), "begin() <= position <= end()") {
		return pos
	}
	n := min(len(src), len(s.data)-s.size)
	if n == 0 {
		return pos
	}
	at, aliased := s.offsetOf(src)
	size := s.size
	s.openGap(pos, n)
	if !aliased {
		copy(s.data[pos:pos+n], src[:n])
		return pos
	}
	// Read each source slot where openGap left it; the gap itself is never
	// read.
	var zero T
	for k := 0; k < n; k++ {
		switch j := at + k; {
		case j < 0 || j >= len(s.data):
			s.data[pos+k] = src[k]
		case j < pos:
			s.data[pos+k] = s.data[j]
		case j < size:
			s.data[pos+k] = s.data[j+n]
		default:
			s.data[pos+k] = zero
		}
	}
	return pos
}

// offsetOf reports whether src overlaps the buffer and, if so, the index
// in the buffer of src[0], which may lie outside it.
func (s *Sequence[T]) offsetOf(src []T) (int, bool) {
	if len(src) == 0 || len(s.data) == 0 {
		return 0, false
	}
	size := int(unsafe.Sizeof(src[0]))
	if size == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	at := int(p-base) / size
	if p < base {
		at = -int(base-p) / size
	}
	return at, at < len(s.data) && at+len(src) > 0
}

// AssignN replaces the contents with min(n, Cap()) copies of v.
func (s *Sequence[T]) AssignN(n int, v T) {
	s.Clear()
	s.InsertN(0, n, v)
}

// AssignSlice replaces the contents with the leading elements of src that
// fit. src must not share the sequence's buffer.
func (s *Sequence[T]) AssignSlice(src []T) {
	s.Clear()
	s.InsertSlice(0, src)
}

// AssignSeq replaces the contents with values from seq until seq is
// exhausted or the sequence is full.
func (s *Sequence[T]) AssignSeq(seq iter.Seq[T]) {
	s.Clear()
	for v := range seq {
		if s.Full() {
			return
		}
		s.data[s.size] = v
		s.size++
	}
}

// CopyFrom makes s an element-wise copy of src. Elements already present
// are overwritten in place; surplus elements are destroyed and missing ones
// appended. It reports a violation when src.Len() exceeds Cap(). Copying a
// view onto itself is a no-op.
func (s *Sequence[T]) CopyFrom(src *Sequence[T]) {
	if s.sharesBuffer(src) {
		return
	}
	if !contract.Require(len(s.data) >= src.size, "max_size() >= other.size()") {
		return
	}
	if s.size >= src.size {
		copy(s.data, src.data[:src.size])
		s.EraseRange(src.size, s.size)
		return
	}
	copy(s.data, src.data[:s.size])
	s.InsertSlice(s.size, src.data[s.size:src.size])
}

func (s *Sequence[T]) sharesBuffer(other *Sequence[T]) bool {
	if s == other {
		return true
	}
	return len(s.data) > 0 && len(other.data) > 0 && &s.data[0] == &other.data[0]
}
