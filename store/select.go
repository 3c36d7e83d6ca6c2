package store

import "github.com/odvcencio/reflux/observable"

// Selection is a derived observable over one slice of a store's state. It
// republishes the selected value whenever the store publishes, deduplicated
// with the selection's own equality, so observers of a sub-slice are not
// woken by unrelated state changes.
type Selection[U any] struct {
	inner    *observable.Observable[U]
	upstream *observable.Reference
}

// Select derives a selection whose value is deduplicated with ==.
func Select[S any, U comparable](st *Store[S], selector func(S) U) *Selection[U] {
	return SelectWithEqual(st, selector, observable.EqualComparable[U])
}

// SelectWithEqual derives a selection for values that are not comparable.
func SelectWithEqual[S, U any](st *Store[S], selector func(S) U, equal observable.EqualFunc[U]) *Selection[U] {
	if st == nil || selector == nil {
		return nil
	}
	inner := observable.NewWithEqual(selector(st.State()), equal)
	sel := &Selection[U]{inner: inner}
	sel.upstream = st.Observable().Subscribe(func(state S) {
		inner.Publish(selector(state))
	})
	return sel
}

// Get returns the current selected value.
func (s *Selection[U]) Get() U {
	if s == nil {
		var zero U
		return zero
	}
	return s.inner.Get()
}

// Subscribe registers fn and replays the current selected value.
func (s *Selection[U]) Subscribe(fn func(U)) *observable.Reference {
	if s == nil {
		return nil
	}
	return s.inner.Subscribe(fn)
}

// SubscribeWithScheduler registers fn with delivery routed through a scheduler.
func (s *Selection[U]) SubscribeWithScheduler(scheduler observable.Scheduler, fn func(U)) *observable.Reference {
	if s == nil {
		return nil
	}
	return s.inner.SubscribeWithScheduler(scheduler, fn)
}

// Stop detaches the selection from the store. Existing subscribers keep the
// last selected value but receive no further deliveries. Stop is idempotent.
func (s *Selection[U]) Stop() {
	if s == nil {
		return
	}
	s.upstream.Unsubscribe()
}
