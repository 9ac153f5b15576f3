package fixedseq

import (
	"fmt"
	"testing"
)

// BenchmarkRealisticUsage compares bounded sequences with append-grown
// slices for request-sized batches.
func BenchmarkRealisticUsage(b *testing.B) {
	b.Run("PushClear/Sequence", func(b *testing.B) {
		s := newInts(128)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				s.PushBack(j)
			}
			s.Clear()
		}
	})

	b.Run("PushClear/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 100; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	type record struct {
		ID   int64
		Data [56]byte
	}

	b.Run("Structs/Fixed", func(b *testing.B) {
		f := NewFixed[record, [64]record]()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 50; j++ {
				f.EmplaceBackFunc(func(r *record) { r.ID = int64(j) })
			}
			f.Clear()
		}
	})

	b.Run("Structs/Pool", func(b *testing.B) {
		p := NewPool(64 * 1024)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := Carve[record](p, 50)
			for j := 0; j < 50; j++ {
				s.PushBackZero().ID = int64(j)
			}
			p.Reset()
		}
	})
}

func BenchmarkInsertErase(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			s := newInts(size + 1)
			for j := 0; j < size; j++ {
				s.PushBack(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Insert(0, i)
				s.Erase(0)
			}
		})
	}
}

func BenchmarkAssign(b *testing.B) {
	src := make([]int, 1024)
	s := newInts(1024)
	b.Run("Slice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s.AssignSlice(src)
		}
	})
	b.Run("Dispatch", func(b *testing.B) {
		first, last := SliceRange(src)
		for i := 0; i < b.N; i++ {
			Assign(s, first, last)
		}
	})
}
