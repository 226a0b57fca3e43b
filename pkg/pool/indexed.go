package pool

// IndexedPool associates pooled instances with stable integer keys.
// Fetching a key that is already live returns the same instance instead
// of a new one, so external systems can address pooled objects by
// identity (entity IDs, slot numbers) without holding references
// themselves.
//
// A key present in the map always corresponds to an instance currently
// checked out under that key. Releasing the key returns the instance to
// the spare cache and drops the mapping; a later fetch with any key
// never reuses a stale mapping.
type IndexedPool[T comparable] struct {
	pool  *Pool[T]
	live  map[int]T
	onGet func(key int, item T)
	onPut func(key int, item T)
}

// NewIndexed creates an indexed pool around factory. The hooks receive
// the key alongside the instance; either may be nil. The factory
// contract is the same as New.
func NewIndexed[T comparable](factory func() T, onGet, onPut func(int, T), opts ...Option) (*IndexedPool[T], error) {
	base, err := New(factory, opts...)
	if err != nil {
		return nil, err
	}
	return &IndexedPool[T]{
		pool:  base,
		live:  make(map[int]T),
		onGet: onGet,
		onPut: onPut,
	}, nil
}

// Get returns the live instance for key, fetching one from the
// underlying pool and recording the mapping when the key is not yet
// live. The on-get hook fires only on first activation of the key; a
// repeat Get for a live key is silent. Use Activate for refresh
// semantics.
func (p *IndexedPool[T]) Get(key int) T {
	return p.fetch(key, false)
}

// Activate behaves like Get but re-fires the on-get hook even when the
// key is already live, for callers that want to re-apply activation side
// effects to an instance they already hold.
func (p *IndexedPool[T]) Activate(key int) T {
	return p.fetch(key, true)
}

func (p *IndexedPool[T]) fetch(key int, refresh bool) T {
	if item, ok := p.live[key]; ok {
		if refresh && p.onGet != nil {
			p.onGet(key, item)
		}
		return item
	}

	item := p.pool.Get()
	p.live[key] = item
	if p.onGet != nil {
		p.onGet(key, item)
	}
	return item
}

// Put releases the instance mapped to key back to the spare cache,
// notifies the on-put hook and drops the mapping. An unmapped key is a
// silent no-op.
func (p *IndexedPool[T]) Put(key int) error {
	item, ok := p.live[key]
	if !ok {
		return nil
	}
	if err := p.pool.Put(item); err != nil {
		return err
	}
	delete(p.live, key)
	if p.onPut != nil {
		p.onPut(key, item)
	}
	return nil
}

// IsActive reports whether key currently maps to a live instance.
func (p *IndexedPool[T]) IsActive(key int) bool {
	_, ok := p.live[key]
	return ok
}

// Active returns the number of live keys.
func (p *IndexedPool[T]) Active() int {
	return len(p.live)
}

// Fill eagerly constructs n spare instances in the underlying pool.
func (p *IndexedPool[T]) Fill(n int) {
	p.pool.Fill(n)
}

// Spares returns the number of spare instances in the underlying pool.
func (p *IndexedPool[T]) Spares() int {
	return p.pool.Spares()
}

// Stats returns a snapshot of the underlying pool counters.
func (p *IndexedPool[T]) Stats() Stats {
	return p.pool.Stats()
}
