package pool

import (
	"github.com/ajitpratap0/reuse/pkg/observability"
	"github.com/ajitpratap0/reuse/pkg/reuseerrors"
)

// TrackingPool extends ObservablePool by remembering which instances are
// currently checked out. An instance is a member of exactly one of
// {spare, issued} at any time, and returning an instance the pool did
// not issue is a validation error. This protects against releasing
// foreign or already-released instances at the cost of a set lookup per
// operation.
type TrackingPool[T comparable] struct {
	*ObservablePool[T]
	issued map[T]struct{}
}

// NewTracking creates a tracking pool around factory. Either hook may be
// nil. The factory contract is the same as New.
func NewTracking[T comparable](factory func() T, onGet, onPut func(T), opts ...Option) (*TrackingPool[T], error) {
	obs, err := NewObservable(factory, onGet, onPut, opts...)
	if err != nil {
		return nil, err
	}
	return &TrackingPool[T]{
		ObservablePool: obs,
		issued:         make(map[T]struct{}),
	}, nil
}

// Get returns an instance and records it as issued.
func (p *TrackingPool[T]) Get() T {
	item := p.ObservablePool.Get()
	p.issued[item] = struct{}{}
	return item
}

// Put returns an issued instance to the cache. An instance not currently
// issued by this pool is rejected with a validation error and the spare
// cache is left untouched.
func (p *TrackingPool[T]) Put(item T) error {
	if _, ok := p.issued[item]; !ok {
		if p.name != "" {
			observability.RecordPoolReject(p.name)
		}
		return reuseerrors.New(reuseerrors.ErrorTypeValidation, "instance was not issued by this pool").
			WithDetail("pool", p.name)
	}
	delete(p.issued, item)
	return p.ObservablePool.Put(item)
}

// Issued returns the number of instances currently checked out.
func (p *TrackingPool[T]) Issued() int {
	return len(p.issued)
}
