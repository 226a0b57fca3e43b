package buflist

import "sort"

// minCapacity is the smallest backing buffer the list will allocate.
// Growth proceeds in powers of two from this floor.
const minCapacity = 8

// List is a dynamic array over a fixed-capacity backing buffer.
// The zero value is ready to use; the buffer is allocated on first
// insertion.
//
// Elements at indices [0, Len()) are live. Slots past the live region
// are kept zeroed so removed elements do not pin garbage.
type List[T comparable] struct {
	buf  []T
	size int

	// scratch holds one cached export buffer per power-of-two level,
	// built lazily by Approximate.
	scratch [][]T
}

// Comparer imposes a strict ordering on values of type T.
// Compare returns a negative number when a sorts before b, zero when
// they are equivalent, and a positive number when a sorts after b.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// Len returns the number of live elements.
func (l *List[T]) Len() int { return l.size }

// Cap returns the capacity of the backing buffer, which may exceed Len.
func (l *List[T]) Cap() int { return len(l.buf) }

// Add appends item at the end of the live region, growing the backing
// buffer first if it is full. Amortized O(1).
func (l *List[T]) Add(item T) {
	l.ensure(l.size + 1)
	l.buf[l.size] = item
	l.size++
}

// Insert places item at index, shifting elements [index, Len()) right by
// one. An index at or past the end behaves as Add. A negative index is a
// silent no-op.
func (l *List[T]) Insert(index int, item T) {
	if index < 0 {
		return
	}
	if index >= l.size {
		l.Add(item)
		return
	}
	l.ensure(l.size + 1)
	copy(l.buf[index+1:l.size+1], l.buf[index:l.size])
	l.buf[index] = item
	l.size++
}

// RemoveAt removes the element at index, shifting later elements left
// over the vacated slot and clearing the trailing slot so the removed
// element is not retained. Out-of-range indices and an absent buffer are
// silent no-ops.
func (l *List[T]) RemoveAt(index int) {
	if l.buf == nil || index < 0 || index >= l.size {
		return
	}
	copy(l.buf[index:l.size-1], l.buf[index+1:l.size])
	l.size--
	var zero T
	l.buf[l.size] = zero
}

// Remove removes the first element equal to item under `==` and reports
// whether one was found. For pointer element types this is an identity
// comparison.
func (l *List[T]) Remove(item T) bool {
	i := l.IndexOf(item)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAll removes every element for which pred returns true and
// returns the number removed. The compaction is a single pass and
// stable: retained elements keep their relative order. Only the trailing
// now-unused slots are cleared.
func (l *List[T]) RemoveAll(pred func(T) bool) int {
	if pred == nil || l.size == 0 {
		return 0
	}
	keep := 0
	for i := 0; i < l.size; i++ {
		if !pred(l.buf[i]) {
			if keep != i {
				l.buf[keep] = l.buf[i]
			}
			keep++
		}
	}
	removed := l.size - keep
	var zero T
	for i := keep; i < l.size; i++ {
		l.buf[i] = zero
	}
	l.size = keep
	return removed
}

// IndexOf returns the index of the first element equal to item under
// `==`, or -1 when absent or the list is empty.
func (l *List[T]) IndexOf(item T) int {
	for i := 0; i < l.size; i++ {
		if l.buf[i] == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item is present in the live region.
func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// Sort orders the live region with cmp, delegating to the standard
// library's O(n log n) sort. Equal elements may be reordered; use
// SortFunc when stability matters.
func (l *List[T]) Sort(cmp Comparer[T]) {
	if cmp == nil || l.size < 2 {
		return
	}
	sort.Sort(&listSorter[T]{items: l.buf[:l.size], cmp: cmp})
}

// SortFunc orders the live region with compare using a repeated-pass
// exchange sort. Intentionally simple and stable, not a performance
// path: elements that compare equal keep their relative order, which
// callers rely on.
func (l *List[T]) SortFunc(compare func(a, b T) int) {
	if compare == nil {
		return
	}
	for swapped := true; swapped; {
		swapped = false
		for i := 1; i < l.size; i++ {
			if compare(l.buf[i-1], l.buf[i]) > 0 {
				l.buf[i-1], l.buf[i] = l.buf[i], l.buf[i-1]
				swapped = true
			}
		}
	}
}

// Reserve pre-grows capacity to the next power of two at or above
// max(Len(), n, the minimum floor). It is a no-op when the buffer is
// already large enough. Use it to avoid repeated incremental regrowth
// before a known-size bulk fill.
func (l *List[T]) Reserve(n int) {
	need := l.size
	if n > need {
		need = n
	}
	if need < minCapacity {
		need = minCapacity
	}
	target := nextPowerOfTwo(need)
	if len(l.buf) >= target {
		return
	}
	l.realloc(target)
}

// Pop removes and returns the last element, clearing its slot. It
// returns the zero value of T when the list is empty.
func (l *List[T]) Pop() T {
	var zero T
	if l.size == 0 {
		return zero
	}
	l.size--
	item := l.buf[l.size]
	l.buf[l.size] = zero
	return item
}

// Clear zeroes the live region and resets the size to zero while keeping
// the backing buffer for reuse.
func (l *List[T]) Clear() {
	var zero T
	for i := 0; i < l.size; i++ {
		l.buf[i] = zero
	}
	l.size = 0
}

// Release drops the backing buffer and scratch cache entirely and resets
// the size to zero. Unlike Clear, the memory is handed back to the
// garbage collector.
func (l *List[T]) Release() {
	l.buf = nil
	l.scratch = nil
	l.size = 0
}

// Buffer returns the raw backing buffer as-is. The slice may be longer
// than Len(); callers must treat Len(), not len(buffer), as the valid
// bound. Returns nil before the first insertion.
func (l *List[T]) Buffer() []T {
	return l.buf
}

// ensure grows the backing buffer so it can hold at least n elements.
func (l *List[T]) ensure(n int) {
	if n <= len(l.buf) {
		return
	}
	if n < minCapacity {
		n = minCapacity
	}
	l.realloc(nextPowerOfTwo(n))
}

// realloc replaces the backing buffer wholesale, copying the live region.
func (l *List[T]) realloc(capacity int) {
	next := make([]T, capacity)
	copy(next, l.buf[:l.size])
	l.buf = next
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// listSorter adapts a live region and a Comparer to sort.Interface.
type listSorter[T any] struct {
	items []T
	cmp   Comparer[T]
}

func (s *listSorter[T]) Len() int           { return len(s.items) }
func (s *listSorter[T]) Less(i, j int) bool { return s.cmp.Compare(s.items[i], s.items[j]) < 0 }
func (s *listSorter[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }
