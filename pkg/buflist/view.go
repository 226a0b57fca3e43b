package buflist

// WithPrefix presents a length-n view of the backing storage to fn
// without copying. A nil fn or non-positive n is a silent no-op; n is
// clamped to Len() when larger.
//
// The view is a subslice of the backing buffer, so mutations through it
// are visible in the list and the list's size is untouched regardless of
// how fn returns, including by panic. The view is valid only for the
// synchronous duration of fn: retaining it past the call, or using it
// from another goroutine, is unsupported, since a later Add may reallocate
// the buffer out from under it.
func (l *List[T]) WithPrefix(n int, fn func([]T)) {
	if fn == nil || n <= 0 {
		return
	}
	if n > l.size {
		n = l.size
	}
	fn(l.buf[:n])
}

// WithLive presents exactly the live prefix to fn, with the same
// contract as WithPrefix. It is a no-op when fn is nil or the list is
// empty.
func (l *List[T]) WithLive(fn func([]T)) {
	l.WithPrefix(l.size, fn)
}
