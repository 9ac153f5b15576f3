package contract

// Scope temporarily replaces the process-wide handler. Create it with Push
// and call Restore on every exit path, typically with defer:
//
//	defer contract.Push(contract.Raise).Restore()
type Scope struct {
	prev     Handler
	restored bool
}

// Push snapshots the current handler, installs next and returns the scope
// that restores the snapshot.
func Push(next Handler) *Scope {
	s := &Scope{prev: handler}
	handler = next
	return s
}

// Restore reinstalls the handler that was active when the scope was
// pushed. Calling it more than once has no further effect.
func (s *Scope) Restore() {
	if s.restored {
		return
	}
	s.restored = true
	handler = s.prev
}

// WithHandler runs fn with h installed and restores the previous handler
// when fn returns or panics.
func WithHandler(h Handler, fn func()) {
	defer Push(h).Restore()
	fn()
}
