package observable

import "testing"

func TestObservable_ReplayOnSubscribe(t *testing.T) {
	obs := New(7)
	var got []int

	ref := obs.Subscribe(func(v int) {
		got = append(got, v)
	})
	if ref == nil {
		t.Fatalf("expected a reference")
	}
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected replay of 7 before return, got %v", got)
	}
}

func TestObservable_PublishInOrder(t *testing.T) {
	obs := New(0)
	var order []string

	obs.Subscribe(func(v int) {
		if v != 0 {
			order = append(order, "first")
		}
	})
	obs.Subscribe(func(v int) {
		if v != 0 {
			order = append(order, "second")
		}
	})

	if !obs.Publish(1) {
		t.Fatalf("expected publish to report delivery")
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected subscription order delivery, got %v", order)
	}
}

func TestObservable_TotalOrderPerSubscriber(t *testing.T) {
	obs := NewWithEqual(0, EqualComparable[int])
	var seen []int

	obs.Subscribe(func(v int) {
		seen = append(seen, v)
	})

	obs.Publish(1)
	obs.Publish(2)
	obs.Publish(2)
	obs.Publish(3)

	want := []int{0, 1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

func TestObservable_DedupSuppressesNotification(t *testing.T) {
	obs := NewWithEqual(5, EqualComparable[int])
	calls := 0

	obs.Subscribe(func(int) { calls++ })
	if calls != 1 {
		t.Fatalf("expected only the replay call, got %d", calls)
	}

	if obs.Publish(5) {
		t.Fatalf("expected publish of equal value to report no delivery")
	}
	if calls != 1 {
		t.Fatalf("expected no call for equal value, got %d", calls)
	}
	if obs.Get() != 5 {
		t.Fatalf("expected value 5, got %d", obs.Get())
	}
}

func TestObservable_UnsubscribeIsTerminalAndIdempotent(t *testing.T) {
	obs := New(0)
	calls := 0

	ref := obs.Subscribe(func(int) { calls++ })
	if calls != 1 {
		t.Fatalf("expected replay call, got %d", calls)
	}

	ref.Unsubscribe()
	obs.Publish(1)
	if calls != 1 {
		t.Fatalf("expected no calls after unsubscribe, got %d", calls)
	}

	ref.Unsubscribe()
	obs.Publish(2)
	if calls != 1 {
		t.Fatalf("expected repeat unsubscribe to stay a no-op, got %d", calls)
	}
}

func TestObservable_NilReferenceUnsubscribe(t *testing.T) {
	var ref *Reference
	ref.Unsubscribe()
	if ref.ID() != "" {
		t.Fatalf("expected empty id on nil reference")
	}
}

func TestObservable_ReferenceIDsAreUnique(t *testing.T) {
	obs := New(0)
	a := obs.Subscribe(func(int) {})
	b := obs.Subscribe(func(int) {})
	if a.ID() == "" || b.ID() == "" {
		t.Fatalf("expected non-empty reference ids")
	}
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct reference ids, got %q twice", a.ID())
	}
}

func TestObservable_SubscribeDuringPublishMissesPass(t *testing.T) {
	obs := New(0)
	lateCalls := 0

	obs.Subscribe(func(v int) {
		if v != 1 {
			return
		}
		obs.Subscribe(func(int) { lateCalls++ })
	})

	obs.Publish(1)
	if lateCalls != 1 {
		t.Fatalf("expected only the replay call for the late subscriber, got %d", lateCalls)
	}

	obs.Publish(2)
	if lateCalls != 2 {
		t.Fatalf("expected late subscriber to join the next pass, got %d", lateCalls)
	}
}

func TestObservable_UnsubscribeDuringPublishStopsSamePass(t *testing.T) {
	obs := New(0)
	calls := 0

	var ref *Reference
	obs.Subscribe(func(v int) {
		if v == 1 && ref != nil {
			ref.Unsubscribe()
		}
	})
	ref = obs.Subscribe(func(v int) {
		if v != 0 {
			calls++
		}
	})

	obs.Publish(1)
	if calls != 0 {
		t.Fatalf("expected no delivery after in-pass unsubscribe, got %d", calls)
	}
}

func TestObservable_SubscribeWithScheduler(t *testing.T) {
	obs := New(1)
	queue := NewQueue()
	var seen []int

	obs.SubscribeWithScheduler(queue, func(v int) {
		seen = append(seen, v)
	})
	if len(seen) != 0 {
		t.Fatalf("expected replay to queue, got %v", seen)
	}
	if drained := queue.Drain(); drained != 1 {
		t.Fatalf("expected 1 delivery drained, got %d", drained)
	}
	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("expected queued replay of 1, got %v", seen)
	}

	obs.Publish(2)
	if len(seen) != 1 {
		t.Fatalf("expected publish to queue, got %v", seen)
	}
	queue.Drain()
	if len(seen) != 2 || seen[1] != 2 {
		t.Fatalf("expected drained delivery of 2, got %v", seen)
	}
}

func TestObservable_NilGuards(t *testing.T) {
	var obs *Observable[int]
	if obs.Get() != 0 {
		t.Fatalf("expected zero value from nil observable")
	}
	if obs.Publish(1) {
		t.Fatalf("expected publish on nil observable to report no delivery")
	}
	if ref := obs.Subscribe(func(int) {}); ref != nil {
		t.Fatalf("expected nil reference from nil observable")
	}

	live := New(0)
	if ref := live.Subscribe(nil); ref != nil {
		t.Fatalf("expected nil reference for nil callback")
	}
}
