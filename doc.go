// Package reuse provides a small runtime toolkit for allocation-free data
// structures: a growable, reusable buffered list and a family of layered
// object pools built on top of it.
//
// The toolkit exists for hot paths that create and discard the same kinds
// of objects every tick or every frame. Instead of allocating fresh
// storage each time, callers keep a buflist.List or a pool around and let
// it recycle its own backing memory, trading a bounded amount of
// over-allocation for zero steady-state allocation.
//
// # Packages
//
//   - pkg/buflist: List[T], an amortized-growth dynamic array over a
//     fixed-capacity backing buffer, with stable compaction, scoped
//     prefix views and a power-of-two scratch-buffer cache.
//   - pkg/pool: layered object pools. Pool[T] is a plain LIFO spare
//     stack with a factory; ObservablePool adds get/put lifecycle hooks;
//     TrackingPool enforces that only issued instances come back;
//     IndexedPool keys live instances by a stable integer identity.
//   - pkg/reuseerrors: structured errors with type taxonomy and stack
//     capture.
//   - pkg/observability: zap logging and Prometheus metrics for pool
//     traffic.
//   - pkg/config: YAML configuration loading for the bench tooling.
//
// # Concurrency
//
// Everything in this module is single-threaded by design. No operation
// blocks, suspends or yields, and none of the structures are safe for
// concurrent mutation. Confine each list or pool to one owning
// goroutine, or serialize access with an external lock. The single-owner
// model is what lets the hot paths run without atomics or locks.
//
// # Quick start
//
//	factory := func() *Particle { return &Particle{} }
//	p, err := pool.NewTracking(factory,
//	    func(it *Particle) { it.Activate() },
//	    func(it *Particle) { it.Deactivate() },
//	)
//	if err != nil {
//	    return err
//	}
//	p.Fill(64)
//
//	particle := p.Get()
//	// ... use particle ...
//	if err := p.Put(particle); err != nil {
//	    return err
//	}
package reuse
