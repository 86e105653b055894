package state

import (
	"fmt"
	"testing"
)

func newReadyRing(t *testing.T, capacity int) (*RecentlyViewed, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	r := NewRecentlyViewed(store, capacity)
	r.Hydrate()
	return r, store
}

func TestRecentlyViewed_CapacityEvictsOldest(t *testing.T) {
	r, _ := newReadyRing(t, 6)

	for id := int64(1); id <= 7; id++ {
		r.Record(snapshot(id, "10"))
	}

	items := r.Items()
	if len(items) != 6 {
		t.Fatalf("len(items) = %d, want 6", len(items))
	}
	// Most recent first; the first-recorded product is gone.
	if items[0].ID != 7 {
		t.Fatalf("items[0].ID = %d, want 7", items[0].ID)
	}
	for _, p := range items {
		if p.ID == 1 {
			t.Fatalf("product 1 still present, want evicted")
		}
	}
}

func TestRecentlyViewed_ReRecordMovesToFront(t *testing.T) {
	r, _ := newReadyRing(t, 6)
	a, b, c := snapshot(1, "10"), snapshot(2, "10"), snapshot(3, "10")

	r.Record(a)
	r.Record(b)
	r.Record(c)
	r.Record(a)

	items := r.Items()
	want := []int64{1, 3, 2}
	if len(items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(want))
	}
	for i, p := range items {
		if p.ID != want[i] {
			t.Fatalf("items[%d].ID = %d, want %d (order %v)", i, p.ID, want[i], want)
		}
	}
}

func TestRecentlyViewed_RecordDeduplicates(t *testing.T) {
	r, _ := newReadyRing(t, 6)
	for i := 0; i < 5; i++ {
		r.Record(snapshot(1, "10"))
	}
	if got := r.Len(); got != 1 {
		t.Fatalf("Len = %d after re-recording one product, want 1", got)
	}
}

func TestRecentlyViewed_ClearDeletesDurableRecord(t *testing.T) {
	r, store := newReadyRing(t, 6)
	r.Record(snapshot(1, "10"))
	r.Record(snapshot(2, "10"))

	r.Clear()

	if got := r.Len(); got != 0 {
		t.Fatalf("Len = %d after Clear, want 0", got)
	}
	if _, ok := store.docs[KeyRecentlyViewed]; ok {
		t.Fatalf("durable record still present after Clear, want deleted")
	}
	if store.deletes != 1 {
		t.Fatalf("deletes = %d, want 1", store.deletes)
	}
}

func TestRecentlyViewed_HydrateTruncatesToCapacity(t *testing.T) {
	store := newFakeStore()
	seed := NewRecentlyViewed(store, 6)
	seed.Hydrate()
	for id := int64(1); id <= 6; id++ {
		seed.Record(snapshot(id, "10"))
	}

	// A session with a smaller configured capacity still bounds the ring.
	shrunk := NewRecentlyViewed(store, 3)
	shrunk.Hydrate()
	if got := shrunk.Len(); got != 3 {
		t.Fatalf("Len = %d after hydrating with capacity 3, want 3", got)
	}
}

func TestRecentlyViewed_RoundTrip(t *testing.T) {
	store := newFakeStore()
	r := NewRecentlyViewed(store, 6)
	r.Hydrate()
	for id := int64(1); id <= 3; id++ {
		r.Record(snapshot(id, fmt.Sprintf("%d.99", id)))
	}

	reloaded := NewRecentlyViewed(store, 6)
	reloaded.Hydrate()

	items := reloaded.Items()
	want := []int64{3, 2, 1}
	if len(items) != len(want) {
		t.Fatalf("len(items) = %d after reload, want %d", len(items), len(want))
	}
	for i, p := range items {
		if p.ID != want[i] {
			t.Fatalf("items[%d].ID = %d after reload, want %d", i, p.ID, want[i])
		}
	}
}
