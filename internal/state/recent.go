package state

import (
	"sync"

	"smartchoice-state/internal/domain"
	"smartchoice-state/pkg/storage"
)

// RecentlyViewed is the bounded most-recent-first ring of distinct viewed
// products. Recording an already-present product moves it back to the
// front; overflow evicts from the tail.
type RecentlyViewed struct {
	notifier

	mu       sync.Mutex
	items    []domain.ProductSnapshot
	capacity int
	p        persistence
}

func NewRecentlyViewed(store storage.Store, capacity int) *RecentlyViewed {
	if capacity < 1 {
		capacity = 1
	}
	return &RecentlyViewed{
		capacity: capacity,
		p:        newPersistence(store, KeyRecentlyViewed),
	}
}

func (r *RecentlyViewed) Hydrate() {
	r.mu.Lock()
	var saved []domain.ProductSnapshot
	if r.p.hydrate(&saved) {
		// A capacity lowered between sessions still bounds the ring.
		if len(saved) > r.capacity {
			saved = saved[:r.capacity]
		}
		r.items = saved
	}
	r.mu.Unlock()
	r.notify()
}

// Record is the ring's only mutator: drop the product's old position if
// any, insert at the front, truncate to capacity.
func (r *RecentlyViewed) Record(product domain.ProductSnapshot) {
	r.mu.Lock()
	filtered := make([]domain.ProductSnapshot, 0, len(r.items)+1)
	filtered = append(filtered, product)
	for _, p := range r.items {
		if p.ID != product.ID {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) > r.capacity {
		filtered = filtered[:r.capacity]
	}
	r.items = filtered
	r.p.flush(r.items)
	r.mu.Unlock()
	r.notify()
}

// Clear empties the ring and deletes its durable record entirely rather
// than writing an empty document.
func (r *RecentlyViewed) Clear() {
	r.mu.Lock()
	r.items = nil
	r.p.drop()
	r.mu.Unlock()
	r.notify()
}

func (r *RecentlyViewed) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Items returns a copy, most recent first.
func (r *RecentlyViewed) Items() []domain.ProductSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ProductSnapshot(nil), r.items...)
}
