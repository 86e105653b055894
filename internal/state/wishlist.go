package state

import (
	"sync"

	"smartchoice-state/internal/domain"
	"smartchoice-state/pkg/storage"
)

// Wishlist is a presence-only set of saved products. Insertion order is
// stable for display but carries no other meaning.
type Wishlist struct {
	notifier

	mu    sync.Mutex
	items []domain.ProductSnapshot
	p     persistence
}

func NewWishlist(store storage.Store) *Wishlist {
	return &Wishlist{p: newPersistence(store, KeyWishlist)}
}

func (w *Wishlist) Hydrate() {
	w.mu.Lock()
	var saved []domain.ProductSnapshot
	if w.p.hydrate(&saved) {
		w.items = saved
	}
	w.mu.Unlock()
	w.notify()
}

// Add appends the product snapshot; a duplicate product id is a no-op.
func (w *Wishlist) Add(product domain.ProductSnapshot) {
	w.mu.Lock()
	if w.index(product.ID) >= 0 {
		w.mu.Unlock()
		return
	}
	w.items = append(w.items, product)
	w.p.flush(w.items)
	w.mu.Unlock()
	w.notify()
}

func (w *Wishlist) Remove(productID int64) {
	w.mu.Lock()
	i := w.index(productID)
	if i < 0 {
		w.mu.Unlock()
		return
	}
	w.items = append(w.items[:i], w.items[i+1:]...)
	w.p.flush(w.items)
	w.mu.Unlock()
	w.notify()
}

func (w *Wishlist) Contains(productID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index(productID) >= 0
}

func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Items returns a copy in insertion order.
func (w *Wishlist) Items() []domain.ProductSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.ProductSnapshot(nil), w.items...)
}

func (w *Wishlist) index(productID int64) int {
	for i, p := range w.items {
		if p.ID == productID {
			return i
		}
	}
	return -1
}
