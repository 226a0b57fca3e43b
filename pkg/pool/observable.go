package pool

// ObservablePool wraps Pool with optional lifecycle hooks. Get notifies
// onGet with the returned instance; Put notifies onPut after the
// instance is stored. Hooks are typically used to reset or prepare
// instances; an absent hook means no notification.
//
// Hooks run synchronously in the calling frame, and a panic from a hook
// propagates to the caller. Only ProcessIdle contains failures.
type ObservablePool[T comparable] struct {
	*Pool[T]
	onGet func(T)
	onPut func(T)
}

// NewObservable creates an observable pool around factory. Either hook
// may be nil. The factory contract is the same as New.
func NewObservable[T comparable](factory func() T, onGet, onPut func(T), opts ...Option) (*ObservablePool[T], error) {
	base, err := New(factory, opts...)
	if err != nil {
		return nil, err
	}
	return &ObservablePool[T]{
		Pool:  base,
		onGet: onGet,
		onPut: onPut,
	}, nil
}

// Get returns an instance and notifies the on-get hook with it.
func (p *ObservablePool[T]) Get() T {
	item := p.Pool.Get()
	if p.onGet != nil {
		p.onGet(item)
	}
	return item
}

// Put returns an instance to the cache and, once stored, notifies the
// on-put hook. A rejected instance produces no notification.
func (p *ObservablePool[T]) Put(item T) error {
	if err := p.Pool.Put(item); err != nil {
		return err
	}
	if p.onPut != nil {
		p.onPut(item)
	}
	return nil
}
