// Package buflist implements List[T], a growable, reusable dynamic array
// that minimizes allocation churn.
//
// A List owns a single contiguous backing buffer whose capacity may
// exceed the logical element count. The buffer is absent until the first
// insertion, grows by doubling from a small floor, and is reallocated
// wholesale on growth. Clear resets the list while keeping the buffer
// for reuse; Release drops the buffer entirely.
//
// Two export strategies avoid per-call allocation in steady state:
//
//   - Buffer returns the raw backing buffer as-is. Callers must respect
//     Len, not the slice length, as the valid bound.
//   - Approximate returns a power-of-two-sized scratch buffer drawn from
//     a per-level cache, so repeated exports in the same size bucket
//     reuse the same backing array.
//
// WithPrefix and WithLive present length-bounded views of the backing
// storage to a callback without copying. The view is a plain subslice
// and is only valid for the synchronous duration of the callback.
//
// Element equality is `==`. For identity-sensitive use (IndexOf, Remove,
// Contains), the list is intended for reference (pointer) element types,
// where `==` compares identity rather than contents.
//
// List is not safe for concurrent use. Confine each list to one owning
// goroutine or serialize access externally.
package buflist
