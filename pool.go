package fixedseq

import "unsafe"

// DefaultPoolSize is the pool size used when NewPool is given a
// non-positive size (64 KiB).
const DefaultPoolSize = 1 << 16

// Pool is a fixed region of memory handed out by bump allocation. It never
// grows: once the region is used up, allocations return nil until Reset.
// Typical use is to size one pool at start-up and carve every sequence's
// backing buffer from it. Not goroutine-safe.
type Pool struct {
	buf    []byte
	offset uintptr
}

// NewPool allocates a pool of size bytes. This is the only allocation the
// pool ever makes. If size <= 0, DefaultPoolSize is used.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{buf: make([]byte, size)}
}

// PoolOver returns a pool over caller-supplied memory, such as a
// package-level array.
func PoolOver(buf []byte) *Pool {
	if buf == nil {
		buf = []byte{}
	}
	return &Pool{buf: buf}
}

// AllocBytes returns n bytes aligned to pointer size, or nil when n <= 0 or
// the pool cannot fit them.
func (p *Pool) AllocBytes(n int) []byte {
	return p.allocAligned(n, unsafe.Sizeof(uintptr(0)))
}

// Fits reports whether AllocBytes(n) would succeed.
func (p *Pool) Fits(n int) bool {
	p.panicIfReleased()
	if n <= 0 {
		return false
	}
	off := p.alignedOffset(unsafe.Sizeof(uintptr(0)))
	return off+uintptr(n) <= uintptr(len(p.buf))
}

func (p *Pool) allocAligned(n int, align uintptr) []byte {
	p.panicIfReleased()
	if n <= 0 {
		return nil
	}
	off := p.alignedOffset(align)
	if off+uintptr(n) > uintptr(len(p.buf)) {
		return nil
	}
	p.offset = off + uintptr(n)
	// Full slice expression keeps neighbouring allocations out of reach.
	return p.buf[off : off+uintptr(n) : off+uintptr(n)]
}

// alignedOffset returns the first offset at or after the current one whose
// absolute address is a multiple of align.
func (p *Pool) alignedOffset(align uintptr) uintptr {
	if len(p.buf) == 0 {
		return p.offset
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.buf)))
	return alignUp(base+p.offset, align) - base
}

// Reset rewinds the pool so its memory can be handed out again. Sequences
// carved before Reset must no longer be used.
func (p *Pool) Reset() {
	p.panicIfReleased()
	p.offset = 0
}

// Release drops the region and makes the pool unusable. Any subsequent
// operation panics.
func (p *Pool) Release() {
	p.buf = nil
	p.offset = 0
}

func (p *Pool) panicIfReleased() {
	if p.buf == nil {
		panic("fixedseq: pool used after Release()")
	}
}

// alignUp rounds off up to a multiple of align, which must be a power of
// two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}
