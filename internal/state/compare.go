package state

import (
	"sync"

	"smartchoice-state/internal/domain"
	"smartchoice-state/pkg/storage"
)

// Compare is the side-by-side comparison tray. Unlike the ring it is
// small and strict: adding past capacity or adding a duplicate is
// rejected, not evicted.
type Compare struct {
	notifier

	mu       sync.Mutex
	items    []domain.ProductSnapshot
	capacity int
	p        persistence
}

func NewCompare(store storage.Store, capacity int) *Compare {
	if capacity < 1 {
		capacity = 1
	}
	return &Compare{
		capacity: capacity,
		p:        newPersistence(store, KeyCompare),
	}
}

func (c *Compare) Hydrate() {
	c.mu.Lock()
	var saved []domain.ProductSnapshot
	if c.p.hydrate(&saved) {
		if len(saved) > c.capacity {
			saved = saved[:c.capacity]
		}
		c.items = saved
	}
	c.mu.Unlock()
	c.notify()
}

// Add reports whether the product was accepted into the tray.
func (c *Compare) Add(product domain.ProductSnapshot) bool {
	c.mu.Lock()
	if len(c.items) >= c.capacity || c.index(product.ID) >= 0 {
		c.mu.Unlock()
		return false
	}
	c.items = append(c.items, product)
	c.p.flush(c.items)
	c.mu.Unlock()
	c.notify()
	return true
}

func (c *Compare) Remove(productID int64) {
	c.mu.Lock()
	i := c.index(productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.p.flush(c.items)
	c.mu.Unlock()
	c.notify()
}

func (c *Compare) Clear() {
	c.mu.Lock()
	c.items = nil
	c.p.flush(c.items)
	c.mu.Unlock()
	c.notify()
}

func (c *Compare) Contains(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index(productID) >= 0
}

func (c *Compare) Items() []domain.ProductSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ProductSnapshot(nil), c.items...)
}

func (c *Compare) index(productID int64) int {
	for i, p := range c.items {
		if p.ID == productID {
			return i
		}
	}
	return -1
}
