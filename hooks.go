package fixedseq

// Destroyer is implemented by element types that release resources when an
// element leaves a container. Destroy is called on the live slot before the
// slot is reset to the zero value.
type Destroyer interface {
	Destroy()
}

// Mover is implemented by element types that cannot be relocated by a raw
// memory move, typically because they hold pointers into themselves.
// MoveFrom initializes the receiver (a vacant slot) from src; the container
// vacates src afterwards without calling Destroy.
type Mover[T any] interface {
	MoveFrom(src *T)
}

// hooks records which lifecycle interfaces *T implements. Computed once per
// view so the hot paths only test a bool.
type hooks struct {
	destroy bool
	move    bool
}

func hooksFor[T any]() hooks {
	var p *T
	_, d := any(p).(Destroyer)
	_, m := any(p).(Mover[T])
	return hooks{destroy: d, move: m}
}

// destroy ends the lifetime of the live elements in data[i:j].
func (s *Sequence[T]) destroy(i, j int) {
	if i >= j {
		return
	}
	if s.hooks.destroy {
		for k := i; k < j; k++ {
			any(&s.data[k]).(Destroyer).Destroy()
		}
	}
	clear(s.data[i:j])
}

// relocate moves n live elements starting at src so they start at dst.
// Source slots not covered by the destination end up vacant. Ranges may
// overlap.
func (s *Sequence[T]) relocate(dst, src, n int) {
	if n <= 0 || dst == src {
		return
	}
	if s.hooks.move {
		s.relocateEach(dst, src, n)
		return
	}
	copy(s.data[dst:dst+n], s.data[src:src+n])
	if dst > src {
		clear(s.data[src:min(dst, src+n)])
	} else {
		clear(s.data[max(dst+n, src) : src+n])
	}
}

// relocateEach moves element by element through Mover, walking away from
// the overlap so no source is overwritten before it is moved.
func (s *Sequence[T]) relocateEach(dst, src, n int) {
	var zero T
	if dst > src {
		for k := n - 1; k >= 0; k-- {
			s.data[dst+k] = zero
			any(&s.data[dst+k]).(Mover[T]).MoveFrom(&s.data[src+k])
			s.data[src+k] = zero
		}
		return
	}
	for k := 0; k < n; k++ {
		s.data[dst+k] = zero
		any(&s.data[dst+k]).(Mover[T]).MoveFrom(&s.data[src+k])
		s.data[src+k] = zero
	}
}
