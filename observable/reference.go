package observable

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Reference identifies one subscription. Holding a reference does not keep
// anything alive; it only grants the ability to end the subscription.
type Reference struct {
	id     ulid.ULID
	once   sync.Once
	cancel func()
}

func newReference(id ulid.ULID, cancel func()) *Reference {
	return &Reference{id: id, cancel: cancel}
}

// ID returns the subscription id, useful for debugging.
func (r *Reference) ID() string {
	if r == nil {
		return ""
	}
	return r.id.String()
}

// Unsubscribe ends the subscription. After it returns the callback receives
// no further deliveries. Calling it again, or on a nil reference, is a no-op.
func (r *Reference) Unsubscribe() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		if r.cancel != nil {
			r.cancel()
		}
	})
}
