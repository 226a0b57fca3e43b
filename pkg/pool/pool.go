package pool

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/reuse/pkg/buflist"
	"github.com/ajitpratap0/reuse/pkg/observability"
	"github.com/ajitpratap0/reuse/pkg/reuseerrors"
)

// Stats holds pool counters. All counters are plain values updated by
// the single owning caller; read them from the same owner.
type Stats struct {
	// Allocated is the total number of instances the factory constructed.
	Allocated int64
	// InUse is the number of instances currently checked out.
	InUse int64
	// Hits is the number of fetches served from the spare cache.
	Hits int64
	// Misses is the number of fetches that had to construct an instance.
	Misses int64
}

// Option configures a pool at construction.
type Option func(*options)

type options struct {
	logger *zap.Logger
	name   string
}

// WithLogger sets the logger used for contained failures (see
// ProcessIdle). Defaults to the process logger from pkg/observability.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithName names the pool and enables Prometheus metrics for its
// traffic. Unnamed pools record no metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Pool is a stack-backed cache of pre-constructed instances. Get returns
// a cached or freshly constructed instance; Put returns an instance to
// the cache. See the package documentation for the layering above it.
type Pool[T comparable] struct {
	spares  buflist.List[T]
	factory func() T
	logger  *zap.Logger
	name    string
	stats   Stats
}

// New creates a pool around factory. The factory must be non-nil
// (construction fails with a validation error otherwise) and should be
// side-effect-light and deterministic in cost.
func New[T comparable](factory func() T, opts ...Option) (*Pool[T], error) {
	if factory == nil {
		return nil, reuseerrors.New(reuseerrors.ErrorTypeValidation, "pool factory must not be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = observability.GetLogger()
	}

	return &Pool[T]{
		factory: factory,
		logger:  o.logger,
		name:    o.name,
	}, nil
}

// Get returns an instance, popping the most recently returned spare
// (LIFO) when one is cached and constructing a new instance otherwise.
func (p *Pool[T]) Get() T {
	p.stats.InUse++

	if p.spares.Len() > 0 {
		p.stats.Hits++
		item := p.spares.Pop()
		if p.name != "" {
			observability.RecordPoolGet(p.name, observability.GetSourceSpare)
			observability.SetPoolOccupancy(p.name, p.spares.Len(), p.stats.InUse)
		}
		return item
	}

	p.stats.Misses++
	p.stats.Allocated++
	item := p.factory()
	if p.name != "" {
		observability.RecordPoolGet(p.name, observability.GetSourceFactory)
		observability.SetPoolOccupancy(p.name, p.spares.Len(), p.stats.InUse)
	}
	return item
}

// Put returns an instance to the spare cache. The zero value of T is
// rejected with a validation error and not added to the cache. The base
// pool does not track issuance: a double Put, or a Put of an instance it
// never issued, is accepted.
func (p *Pool[T]) Put(item T) error {
	var zero T
	if item == zero {
		if p.name != "" {
			observability.RecordPoolReject(p.name)
		}
		return reuseerrors.New(reuseerrors.ErrorTypeValidation, "cannot return the zero value to a pool").
			WithDetail("pool", p.name)
	}

	p.spares.Add(item)
	p.stats.InUse--
	if p.name != "" {
		observability.RecordPoolPut(p.name)
		observability.SetPoolOccupancy(p.name, p.spares.Len(), p.stats.InUse)
	}
	return nil
}

// Fill eagerly constructs n instances and stores them as spares, so the
// first n fetches are served without touching the factory again.
func (p *Pool[T]) Fill(n int) {
	if n <= 0 {
		return
	}
	p.spares.Reserve(p.spares.Len() + n)
	for i := 0; i < n; i++ {
		p.spares.Add(p.factory())
		p.stats.Allocated++
	}
	if p.name != "" {
		observability.SetPoolOccupancy(p.name, p.spares.Len(), p.stats.InUse)
	}
}

// ProcessIdle applies action to up to max currently spare instances
// without changing spare membership. Traversal order is the cache's
// internal order, oldest spare first. A failure from action, whether an
// error return or a panic, is logged and does not stop processing of the
// remaining instances.
func (p *Pool[T]) ProcessIdle(action func(T) error, max int) {
	if action == nil || max <= 0 {
		return
	}
	count := max
	if count > p.spares.Len() {
		count = p.spares.Len()
	}
	p.spares.WithPrefix(count, func(items []T) {
		for i := range items {
			p.runIdleAction(action, items[i])
		}
	})
}

func (p *Pool[T]) runIdleAction(action func(T) error, item T) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("idle action panicked",
				zap.String("pool", p.name),
				zap.Any("panic", r))
		}
	}()
	if err := action(item); err != nil {
		p.logger.Warn("idle action failed",
			zap.String("pool", p.name),
			zap.Error(err))
	}
}

// Spares returns the number of instances currently cached.
func (p *Pool[T]) Spares() int {
	return p.spares.Len()
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	return p.stats
}

// Release drops the spare cache entirely, handing its memory back to the
// garbage collector. Checked-out instances are unaffected.
func (p *Pool[T]) Release() {
	p.spares.Release()
	if p.name != "" {
		observability.SetPoolOccupancy(p.name, 0, p.stats.InUse)
	}
}
