// Package observable provides a push-based value holder: a current value plus
// ordered subscriber notification, with optional equality dedup.
package observable

import (
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
)

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

type subscription[T any] struct {
	id        ulid.ULID
	fn        func(T)
	scheduler Scheduler
	active    atomic.Bool
}

func (s *subscription[T]) deliver(value T) {
	if s == nil || s.fn == nil {
		return
	}
	if s.scheduler == nil {
		s.fn(value)
		return
	}
	s.scheduler.Schedule(func() {
		if s.active.Load() {
			s.fn(value)
		}
	})
}

// Observable holds a current value and pushes new values to subscribers.
// Subscribers are notified in the order they subscribed.
type Observable[T any] struct {
	mu    sync.Mutex
	value T
	subs  []*subscription[T]
	equal EqualFunc[T]
}

// New creates an Observable with an initial current value.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewWithEqual creates an Observable that suppresses publishes of equal values.
func NewWithEqual[T any](initial T, equal EqualFunc[T]) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// SetEqualFunc configures the equality check used to suppress redundant publishes.
func (o *Observable[T]) SetEqualFunc(fn EqualFunc[T]) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.equal = fn
	o.mu.Unlock()
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	if o == nil {
		var zero T
		return zero
	}
	o.mu.Lock()
	value := o.value
	o.mu.Unlock()
	return value
}

// Subscribe registers fn and synchronously invokes it once with the current
// value before returning. The returned reference stops future deliveries.
func (o *Observable[T]) Subscribe(fn func(T)) *Reference {
	return o.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers fn with delivery routed through a scheduler.
// If scheduler is nil, deliveries run synchronously on the publishing
// goroutine. The current value is replayed through the same route.
func (o *Observable[T]) SubscribeWithScheduler(scheduler Scheduler, fn func(T)) *Reference {
	if o == nil || fn == nil {
		return nil
	}
	sub := &subscription[T]{
		id:        ulid.Make(),
		fn:        fn,
		scheduler: scheduler,
	}
	sub.active.Store(true)

	o.mu.Lock()
	o.subs = append(o.subs, sub)
	current := o.value
	o.mu.Unlock()

	sub.deliver(current)
	return newReference(sub.id, func() {
		o.remove(sub)
	})
}

// Publish sets the current value and synchronously notifies every subscriber
// registered at the start of the pass, in subscription order. It reports
// whether a publish occurred: when an EqualFunc is configured and the new
// value equals the current one, no value is stored and nobody is notified.
// Subscriptions added or removed during the pass do not join it.
func (o *Observable[T]) Publish(value T) bool {
	if o == nil {
		return false
	}
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, value) {
		o.mu.Unlock()
		return false
	}
	o.value = value
	subs := o.snapshotLocked()
	o.mu.Unlock()

	for _, sub := range subs {
		if !sub.active.Load() {
			continue
		}
		sub.deliver(value)
	}
	return true
}

func (o *Observable[T]) snapshotLocked() []*subscription[T] {
	if len(o.subs) == 0 {
		return nil
	}
	subs := make([]*subscription[T], len(o.subs))
	copy(subs, o.subs)
	return subs
}

func (o *Observable[T]) remove(sub *subscription[T]) {
	if sub == nil {
		return
	}
	sub.active.Store(false)
	o.mu.Lock()
	for i, s := range o.subs {
		if s == sub {
			o.subs = append(o.subs[:i], o.subs[i+1:]...)
			break
		}
	}
	o.mu.Unlock()
}
