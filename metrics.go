package fixedseq

// SizeInUse returns the number of bytes handed out since the last Reset,
// including alignment padding.
func (p *Pool) SizeInUse() int {
	if p.buf == nil {
		return 0
	}
	return int(p.offset)
}

// Capacity returns the size of the pool's region in bytes.
func (p *Pool) Capacity() int {
	return len(p.buf)
}

// Available returns the number of bytes not yet handed out. Alignment of
// the next allocation may consume some of them.
func (p *Pool) Available() int {
	return p.Capacity() - p.SizeInUse()
}

// Utilization returns SizeInUse()/Capacity(), or 0 for an empty region.
func (p *Pool) Utilization() float64 {
	return ratio(p.SizeInUse(), p.Capacity())
}

// Metrics returns a snapshot of the pool's usage.
func (p *Pool) Metrics() PoolMetrics {
	used, total := p.SizeInUse(), p.Capacity()
	return PoolMetrics{
		SizeInUse:   used,
		Capacity:    total,
		Available:   total - used,
		Utilization: ratio(used, total),
	}
}

// PoolMetrics is a point-in-time view of a Pool.
type PoolMetrics struct {
	SizeInUse   int // including alignment padding
	Capacity    int
	Available   int
	Utilization float64
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// Utilization returns Len()/Cap() for a sequence, or 0 for capacity 0.
func (s *Sequence[T]) Utilization() float64 {
	return ratio(s.size, len(s.data))
}
