// Package fixedseq implements bounded sequences: vector-like containers
// whose capacity is fixed when they are created and never grows.
//
// # Overview
//
// A Sequence manages element lifetime inside a buffer it does not own. The
// buffer comes from one of:
//
//   - a caller slice (View)
//   - a caller byte buffer (ViewBytes, pointer-free element types only)
//   - a fixed memory pool (Carve)
//   - an inline array owned by a Fixed
//
// No Sequence operation allocates. This makes the package suitable for
// hot paths and for programs that size all of their memory at start-up.
//
// # Basic Usage
//
//	var buf [8]int
//	s := fixedseq.View(buf[:])
//	s.PushBack(1)
//	s.PushBack(3)
//	s.Insert(1, 2)          // [1 2 3]
//	s.Erase(0)              // [2 3]
//	for v := range s.Values() {
//		fmt.Println(v)
//	}
//
// Owned storage:
//
//	f := fixedseq.NewFixed[Reading, [32]Reading]()
//	defer f.Release()
//	fixedseq.Construct2(f.EmplaceBack(), (*Reading).Init, sensorID, value)
//
// # Capacity
//
// Operations that need one more slot (PushBack, EmplaceBack, Emplace,
// Insert) on a full sequence are contract violations, as are bad indexes,
// Front/Back on an empty sequence and malformed erase ranges. Violations go
// to the handler installed in package contract; by default the process
// aborts. When a handler returns instead, the operation is refused and the
// sequence is left unchanged.
//
// Operations that take many elements (InsertN, InsertSlice, InsertSeq,
// InsertRange and the Assign family) silently stop at capacity. Truncation
// is normal behaviour, not a violation.
//
// # Element Lifetime
//
// Vacant slots hold the zero value. Element types can hook into the
// lifecycle by implementing Destroyer (called when an element leaves the
// sequence) and Mover (used instead of a raw memory move when elements
// shift).
//
// # Emplacement
//
// EmplaceBack and Emplace reserve a slot and return a Builder. The reserved
// slot is already counted by Len when the Builder is returned, so the
// caller must complete it with exactly one construct call before touching
// the sequence again. EmplaceBackFunc reserves and constructs in one step.
//
// # Thread Safety
//
// Nothing in this package is goroutine-safe. Synchronize externally when a
// sequence is shared.
package fixedseq
