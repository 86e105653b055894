package state

import (
	"sync"

	"smartchoice-state/internal/domain"
	"smartchoice-state/pkg/storage"

	"github.com/shopspring/decimal"
)

// Cart is the quantity-bearing ledger keyed by product id. Totals are
// derived on every read, never cached.
type Cart struct {
	notifier

	mu    sync.Mutex
	items []domain.CartEntry
	p     persistence
}

func NewCart(store storage.Store) *Cart {
	return &Cart{p: newPersistence(store, KeyCart)}
}

// Hydrate performs the one-time load of the persisted ledger. Mutations
// issued before Hydrate still update memory but are not persisted.
func (c *Cart) Hydrate() {
	c.mu.Lock()
	var saved []domain.CartEntry
	if c.p.hydrate(&saved) {
		c.items = saved
	}
	c.mu.Unlock()
	c.notify()
}

// Add merges quantity into an existing entry for the product or appends a
// new one. Callers are trusted, so a non-positive quantity on a fresh entry
// is clamped to 1 rather than rejected; a merge that lands at or below zero
// removes the entry.
func (c *Cart) Add(product domain.ProductSnapshot, quantity int) {
	c.mu.Lock()
	if i := c.index(product.ID); i >= 0 {
		c.items[i].Quantity += quantity
		if c.items[i].Quantity < 1 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
	} else {
		if quantity < 1 {
			quantity = 1
		}
		c.items = append(c.items, domain.CartEntry{Product: product, Quantity: quantity})
	}
	c.p.flush(c.items)
	c.mu.Unlock()
	c.notify()
}

// Remove deletes the entry for productID if present; no-op otherwise.
func (c *Cart) Remove(productID int64) {
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

// SetQuantity overwrites the entry's quantity. Zero or below removes the
// entry; an absent product id is a silent no-op.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	c.mu.Lock()
	i := c.index(productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.items[i].Quantity = quantity
	c.p.flush(c.items)
	c.mu.Unlock()
	c.notify()
}

// Clear empties the ledger.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.p.flush(c.items)
	c.mu.Unlock()
	c.notify()
}

func (c *Cart) IsInCart(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index(productID) >= 0
}

// QuantityOf returns the entry's quantity, 0 when absent.
func (c *Cart) QuantityOf(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.index(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// Items returns a copy of the ledger in insertion order.
func (c *Cart) Items() []domain.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartEntry(nil), c.items...)
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of quantity x snapshot price across the ledger.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// CheckoutLines builds the order handoff: one line per entry, in cart
// order, with the snapshot price frozen as the purchase price. The ledger
// is not cleared here; the caller clears it once the order is accepted.
func (c *Cart) CheckoutLines() []domain.OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]domain.OrderLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, domain.OrderLine{
			ProductID:       item.Product.ID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Product.Price,
		})
	}
	return lines
}

// index returns the position of productID in the ledger, -1 when absent.
// Caller must hold mu.
func (c *Cart) index(productID int64) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
