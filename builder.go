package fixedseq

// Builder is a one-shot handle to a single reserved slot, returned by
// EmplaceBack and Emplace. Complete it with exactly one construct call
// (a method below or one of Construct1 through Construct5); each returns a
// pointer to the element now living in the slot. Calling none, or more than
// one, breaks the container's accounting and is not detected.
//
// A Builder returned by a refused emplace is inert: its construct calls do
// nothing and return nil.
type Builder[T any] struct {
	slot *T
}

// Slot returns the address of the reserved slot for custom initialization,
// or nil for an inert builder.
func (b Builder[T]) Slot() *T {
	return b.slot
}

// Construct initializes the slot to the zero value.
func (b Builder[T]) Construct() *T {
	if b.slot == nil {
		return nil
	}
	var zero T
	*b.slot = zero
	return b.slot
}

// ConstructFrom initializes the slot with a copy of v.
func (b Builder[T]) ConstructFrom(v T) *T {
	if b.slot == nil {
		return nil
	}
	*b.slot = v
	return b.slot
}

// ConstructWith zeroes the slot and lets init fill it in place.
func (b Builder[T]) ConstructWith(init func(*T)) *T {
	p := b.Construct()
	if p != nil && init != nil {
		init(p)
	}
	return p
}

// Construct1 initializes the slot in place with init(slot, p1). Method
// expressions fit naturally:
//
//	fixedseq.Construct1(s.EmplaceBack(), (*Sensor).Init, id)
func Construct1[T, P1 any](b Builder[T], init func(*T, P1), p1 P1) *T {
	p := b.Construct()
	if p != nil {
		init(p, p1)
	}
	return p
}

// Construct2 initializes the slot in place with init(slot, p1, p2).
func Construct2[T, P1, P2 any](b Builder[T], init func(*T, P1, P2), p1 P1, p2 P2) *T {
	p := b.Construct()
	if p != nil {
		init(p, p1, p2)
	}
	return p
}

// Construct3 initializes the slot in place with init(slot, p1, p2, p3).
func Construct3[T, P1, P2, P3 any](b Builder[T], init func(*T, P1, P2, P3), p1 P1, p2 P2, p3 P3) *T {
	p := b.Construct()
	if p != nil {
		init(p, p1, p2, p3)
	}
	return p
}

// Construct4 initializes the slot in place with init(slot, p1, ..., p4).
func Construct4[T, P1, P2, P3, P4 any](b Builder[T], init func(*T, P1, P2, P3, P4), p1 P1, p2 P2, p3 P3, p4 P4) *T {
	p := b.Construct()
	if p != nil {
		init(p, p1, p2, p3, p4)
	}
	return p
}

// Construct5 initializes the slot in place with init(slot, p1, ..., p5).
func Construct5[T, P1, P2, P3, P4, P5 any](b Builder[T], init func(*T, P1, P2, P3, P4, P5), p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) *T {
	p := b.Construct()
	if p != nil {
		init(p, p1, p2, p3, p4, p5)
	}
	return p
}
