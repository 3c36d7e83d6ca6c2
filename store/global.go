package store

import "sync"

// Global holds a process-wide store with explicit initialization. Declare one
// as a package variable, call Init during startup, and call Reset between
// tests; nothing is wired up by static initialization order.
type Global[S any] struct {
	mu sync.Mutex
	st *Store[S]
}

// Init installs the store. Calling Init again replaces the previous store.
func (g *Global[S]) Init(st *Store[S]) {
	if g == nil {
		return
	}
	g.mu.Lock()
	g.st = st
	g.mu.Unlock()
}

// Store returns the installed store, or nil before Init.
func (g *Global[S]) Store() *Store[S] {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	st := g.st
	g.mu.Unlock()
	return st
}

// Reset removes the installed store.
func (g *Global[S]) Reset() {
	if g == nil {
		return
	}
	g.mu.Lock()
	g.st = nil
	g.mu.Unlock()
}

// Dispatch forwards to the installed store; a no-op before Init.
func (g *Global[S]) Dispatch(action Action) {
	g.Store().Dispatch(action)
}

// State returns the installed store's current state, or the zero value
// before Init.
func (g *Global[S]) State() S {
	return g.Store().State()
}
