// Package pool provides layered, single-threaded object pooling for
// reusing expensive-to-construct instances.
//
// The layers, from cheapest to safest:
//
//   - Pool[T]: a LIFO stack of spare instances plus a factory. Get pops
//     the most recently returned spare or constructs a new instance; Put
//     stores unconditionally. The base pool does not track issuance, so
//     a double Put or a Put of a foreign instance is accepted. This is
//     deliberate API layering: pay for validation only where you need it.
//   - ObservablePool[T]: adds optional on-get/on-put lifecycle hooks,
//     typically used to reset or activate instances.
//   - TrackingPool[T]: remembers which instances it issued and rejects a
//     Put of anything else.
//   - IndexedPool[T]: associates live instances with stable integer
//     keys, so repeated fetches for the same key return the same live
//     instance instead of a new one.
//
// Spare storage is a buflist.List, so a long-lived pool reuses its own
// backing memory as instances cycle through it.
//
// Instances must be a comparable type; pools are intended for reference
// (pointer) instance types, where `==` is identity and the zero value is
// nil. The zero value is never a valid instance.
//
// None of the pools are safe for concurrent use. Fetch and return from
// the same logical owner that constructed the pool, or serialize access
// externally. No operation blocks or yields; everything completes within
// the calling frame.
package pool
