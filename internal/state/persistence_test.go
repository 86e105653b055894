package state

import "testing"

func TestHydrationAdoptsPersistedState(t *testing.T) {
	store := newFakeStore()
	store.docs[KeyCart] = []byte(`[{"product":{"id":1,"title_en":"P","title_ar":"","price":"10","image_url":"","in_stock":true},"quantity":2}]`)

	cart := NewCart(store)
	cart.Hydrate()

	if got := cart.QuantityOf(1); got != 2 {
		t.Fatalf("QuantityOf(1) = %d after hydration, want 2", got)
	}
	// Hydration itself must never write back.
	if store.writes != 0 {
		t.Fatalf("writes = %d during hydration, want 0", store.writes)
	}
}

func TestMutationsBeforeHydrationDoNotPersist(t *testing.T) {
	store := newFakeStore()
	store.docs[KeyCart] = []byte(`[{"product":{"id":7,"title_en":"Saved","title_ar":"","price":"3","image_url":"","in_stock":true},"quantity":1}]`)

	cart := NewCart(store)

	// Pre-hydration mutation: memory updates, storage untouched, so the
	// saved document cannot be clobbered by a partial state.
	cart.Add(snapshot(1, "10"), 1)
	if got := cart.QuantityOf(1); got != 1 {
		t.Fatalf("QuantityOf(1) = %d before hydration, want 1 (UI stays responsive)", got)
	}
	if store.writes != 0 {
		t.Fatalf("writes = %d before hydration, want 0", store.writes)
	}

	cart.Hydrate()

	// Persistence starts with the first post-hydration mutation.
	cart.Add(snapshot(2, "5"), 1)
	if store.writes != 1 {
		t.Fatalf("writes = %d after post-hydration mutation, want 1", store.writes)
	}
}

func TestHydrationNumericPriceDocument(t *testing.T) {
	// Documents written by the original storefront carry prices as JSON
	// numbers, not strings; both must hydrate.
	store := newFakeStore()
	store.docs[KeyCart] = []byte(`[{"product":{"id":1,"title_en":"P","title_ar":"","price":10.5,"image_url":"","in_stock":true},"quantity":1}]`)

	cart := NewCart(store)
	cart.Hydrate()

	if got := cart.Subtotal().String(); got != "10.5" {
		t.Fatalf("Subtotal = %s, want 10.5", got)
	}
}

func TestHydrationDiscardsCorruptDocument(t *testing.T) {
	store := newFakeStore()
	store.docs[KeyWishlist] = []byte(`{"not": "a list`)

	w := NewWishlist(store)
	w.Hydrate()

	if got := w.Len(); got != 0 {
		t.Fatalf("Len = %d after corrupt hydrate, want 0", got)
	}

	// The store is fully usable afterwards.
	w.Add(snapshot(1, "10"))
	if !w.Contains(1) {
		t.Fatalf("Contains(1) = false after recovering from corrupt document")
	}
	if store.writes != 1 {
		t.Fatalf("writes = %d, want 1", store.writes)
	}
}

func TestHydrationReadFailureStartsEmpty(t *testing.T) {
	store := newFakeStore()
	store.failRead = true

	cart := NewCart(store)
	cart.Hydrate()

	if got := cart.TotalItems(); got != 0 {
		t.Fatalf("TotalItems = %d after failed read, want 0", got)
	}

	// Ready regardless: the next mutation persists.
	store.failRead = false
	cart.Add(snapshot(1, "10"), 1)
	if store.writes != 1 {
		t.Fatalf("writes = %d, want 1 (store must be Ready after a failed hydrate)", store.writes)
	}
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	store := newFakeStore()
	cart := NewCart(store)
	cart.Hydrate()

	store.failWrite = true
	cart.Add(snapshot(1, "10"), 2)

	// Persistence failed silently; the session state is authoritative.
	if got := cart.QuantityOf(1); got != 2 {
		t.Fatalf("QuantityOf(1) = %d after failed write, want 2", got)
	}
}

func TestSubscribeNotifiesOnMutation(t *testing.T) {
	cart, _ := newReadyCart(t)

	calls := 0
	cancel := cart.Subscribe(func() { calls++ })

	cart.Add(snapshot(1, "10"), 1)
	if calls != 1 {
		t.Fatalf("calls = %d after Add, want 1", calls)
	}

	// Listeners may read derived state back; this must not deadlock.
	var seen int
	cancel2 := cart.Subscribe(func() { seen = cart.TotalItems() })
	cart.Add(snapshot(1, "10"), 1)
	if seen != 2 {
		t.Fatalf("TotalItems seen by listener = %d, want 2", seen)
	}
	cancel2()

	cancel()
	cart.Add(snapshot(2, "5"), 1)
	if calls != 2 {
		t.Fatalf("calls = %d after cancel, want 2 (listener must not fire)", calls)
	}
}

func TestSubscribeNotifiesOnHydrate(t *testing.T) {
	store := newFakeStore()
	w := NewWishlist(store)

	calls := 0
	w.Subscribe(func() { calls++ })
	w.Hydrate()

	if calls != 1 {
		t.Fatalf("calls = %d after Hydrate, want 1", calls)
	}
}
