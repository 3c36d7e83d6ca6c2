package store

import (
	"sync"

	"github.com/odvcencio/reflux/observable"
)

// Store couples one observable state value with one root reducer. The
// observable is the only channel for reading state; Dispatch is the only way
// to change it.
type Store[S any] struct {
	obs     *observable.Observable[S]
	reducer Reducer[S]
	apply   DispatchFunc

	mu          sync.Mutex
	pending     []Action
	dispatching bool
}

// New creates a store whose state is deduplicated with ==.
func New[S comparable](reducer Reducer[S], initial S) *Store[S] {
	return NewWithEqual(reducer, initial, observable.EqualComparable[S])
}

// NewWithMiddleware creates a store with a dispatch middleware chain. The
// first middleware listed is outermost.
func NewWithMiddleware[S comparable](reducer Reducer[S], initial S, middleware ...Middleware[S]) *Store[S] {
	return NewWithEqual(reducer, initial, observable.EqualComparable[S], middleware...)
}

// NewWithEqual creates a store for states that are not comparable, using
// equal to decide whether a reduced state differs from the current one.
func NewWithEqual[S any](reducer Reducer[S], initial S, equal observable.EqualFunc[S], middleware ...Middleware[S]) *Store[S] {
	s := &Store[S]{
		obs:     observable.NewWithEqual(initial, equal),
		reducer: reducer,
	}
	s.apply = s.reduceAndPublish
	for i := len(middleware) - 1; i >= 0; i-- {
		if middleware[i] == nil {
			continue
		}
		s.apply = middleware[i](s, s.apply)
	}
	return s
}

// Observable returns the store's state observable. Subscribing replays the
// current state; later dispatches that change state publish through it.
func (s *Store[S]) Observable() *observable.Observable[S] {
	if s == nil {
		return nil
	}
	return s.obs
}

// State returns the current state.
func (s *Store[S]) State() S {
	if s == nil {
		var zero S
		return zero
	}
	return s.obs.Get()
}

// Dispatch routes action through the middleware chain and the root reducer,
// then publishes the result when it differs from the current state. The
// reduce, compare, publish sequence runs as one critical section per action.
//
// Dispatch never fails and returns nothing. Calls are serialized: a Dispatch
// made while another is in flight, whether from a subscriber callback on the
// same goroutine or from another goroutine, enqueues the action and returns;
// the in-flight call applies queued actions in arrival order after its own
// publish pass completes.
func (s *Store[S]) Dispatch(action Action) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, action)
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()
		s.apply(next)
		s.mu.Lock()
	}
	s.dispatching = false
	s.mu.Unlock()
}

func (s *Store[S]) reduceAndPublish(action Action) {
	if s.reducer == nil {
		return
	}
	s.obs.Publish(s.reducer(action, s.obs.Get()))
}
