package observable

import "sync"

// Readable exposes read-only access to an observable value.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) *Reference
	SubscribeWithScheduler(scheduler Scheduler, fn func(T)) *Reference
}

// Bag owns a set of subscription references and releases them together.
// It owns the references, never the observables they point into.
type Bag struct {
	mu   sync.Mutex
	refs []*Reference
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add takes ownership of a reference. Nil references are ignored.
func (b *Bag) Add(ref *Reference) {
	if b == nil || ref == nil {
		return
	}
	b.mu.Lock()
	b.refs = append(b.refs, ref)
	b.mu.Unlock()
}

// Len reports the number of references currently held.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	n := len(b.refs)
	b.mu.Unlock()
	return n
}

// Clear unsubscribes every held reference exactly once and empties the bag.
// Clearing an empty or already-cleared bag is a no-op.
func (b *Bag) Clear() {
	if b == nil {
		return
	}
	b.mu.Lock()
	refs := b.refs
	b.refs = nil
	b.mu.Unlock()
	for _, ref := range refs {
		ref.Unsubscribe()
	}
}

// Observe subscribes fn to r and tracks the reference in bag.
func Observe[T any](bag *Bag, r Readable[T], fn func(T)) *Reference {
	if r == nil || fn == nil {
		return nil
	}
	ref := r.Subscribe(fn)
	bag.Add(ref)
	return ref
}
