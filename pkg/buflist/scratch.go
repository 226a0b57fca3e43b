package buflist

// maxScratchLevel bounds the scratch cache: the largest cached export
// buffer holds 1<<maxScratchLevel elements. Exports above that fall back
// to the raw backing buffer.
const maxScratchLevel = 16

// Approximate returns a power-of-two-sized scratch buffer holding a copy
// of the live region: length 1<<k for the minimal k with 1<<k >= Len(),
// the first Len() entries equal to the list contents and the remainder
// zeroed.
//
// The scratch buffer for each level is cached on the list, so repeated
// exports whose sizes land in the same bucket reuse the same backing
// array instead of allocating. The trade is a bounded amount of
// over-allocation for zero steady-state allocation, e.g. for per-frame
// exports.
//
// When Len() exceeds the largest cached level the raw backing buffer is
// returned, as with Buffer.
func (l *List[T]) Approximate() []T {
	level := scratchLevel(l.size)
	if level > maxScratchLevel {
		return l.buf
	}
	if l.scratch == nil {
		l.scratch = make([][]T, maxScratchLevel+1)
	}
	out := l.scratch[level]
	if out == nil {
		out = make([]T, 1<<level)
		l.scratch[level] = out
	}
	n := copy(out, l.buf[:l.size])
	var zero T
	for i := n; i < len(out); i++ {
		out[i] = zero
	}
	return out
}

// scratchLevel returns the minimal k with 1<<k >= size.
func scratchLevel(size int) int {
	k := 0
	for 1<<k < size {
		k++
	}
	return k
}
