package observable

import "sync"

// Scheduler routes subscription deliveries.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule routes fn through the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// Direct runs deliveries immediately in the caller goroutine.
var Direct Scheduler = SchedulerFunc(func(fn func()) {
	if fn != nil {
		fn()
	}
})

// Async runs deliveries in a new goroutine.
type Async struct{}

// Schedule runs fn asynchronously.
func (Async) Schedule(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}

// Queue batches deliveries for explicit draining.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues fn for a later Drain.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Drain runs queued deliveries until the queue is empty, including any
// enqueued by the deliveries themselves, and returns the count run.
func (q *Queue) Drain() int {
	if q == nil {
		return 0
	}
	total := 0
	for {
		q.mu.Lock()
		pending := q.pending
		q.pending = nil
		q.mu.Unlock()
		if len(pending) == 0 {
			return total
		}
		for _, fn := range pending {
			fn()
		}
		total += len(pending)
	}
}
