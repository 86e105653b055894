package state

import (
	"sync"
	"time"

	"smartchoice-state/internal/domain"
	"smartchoice-state/pkg/storage"

	"github.com/shopspring/decimal"
)

// PriceAlerts is the registry of price watches, at most one per product.
// The registry only stores the watch; comparing the live catalog price
// against the target is an external collaborator's job.
type PriceAlerts struct {
	notifier

	mu     sync.Mutex
	alerts []domain.PriceAlert
	p      persistence
	now    func() time.Time
}

func NewPriceAlerts(store storage.Store) *PriceAlerts {
	return &PriceAlerts{
		p:   newPersistence(store, KeyPriceAlerts),
		now: time.Now,
	}
}

func (a *PriceAlerts) Hydrate() {
	a.mu.Lock()
	var saved []domain.PriceAlert
	if a.p.hydrate(&saved) {
		a.alerts = saved
	}
	a.mu.Unlock()
	a.notify()
}

// Create replaces any existing alert for the product with a fresh snapshot:
// the current catalog price and creation time are taken now, never merged
// with a previous alert.
func (a *PriceAlerts) Create(product domain.ProductSnapshot, targetPrice decimal.Decimal) {
	alert := domain.PriceAlert{
		ProductID:    product.ID,
		TargetPrice:  targetPrice,
		CurrentPrice: product.Price,
		ProductTitle: product.TitleEN,
		ProductImage: product.ImageURL,
		CreatedAt:    a.now(),
	}

	a.mu.Lock()
	if i := a.index(product.ID); i >= 0 {
		a.alerts = append(a.alerts[:i], a.alerts[i+1:]...)
	}
	a.alerts = append(a.alerts, alert)
	a.p.flush(a.alerts)
	a.mu.Unlock()
	a.notify()
}

// Update rewrites only the target price of an existing alert, preserving
// its creation snapshot, timestamp and position. Absent id is a no-op.
func (a *PriceAlerts) Update(productID int64, targetPrice decimal.Decimal) {
	a.mu.Lock()
	i := a.index(productID)
	if i < 0 {
		a.mu.Unlock()
		return
	}
	a.alerts[i].TargetPrice = targetPrice
	a.p.flush(a.alerts)
	a.mu.Unlock()
	a.notify()
}

func (a *PriceAlerts) Remove(productID int64) {
	a.mu.Lock()
	i := a.index(productID)
	if i < 0 {
		a.mu.Unlock()
		return
	}
	a.alerts = append(a.alerts[:i], a.alerts[i+1:]...)
	a.p.flush(a.alerts)
	a.mu.Unlock()
	a.notify()
}

func (a *PriceAlerts) Has(productID int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.index(productID) >= 0
}

func (a *PriceAlerts) Get(productID int64) (domain.PriceAlert, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i := a.index(productID); i >= 0 {
		return a.alerts[i], true
	}
	return domain.PriceAlert{}, false
}

// ClearAll empties the registry.
func (a *PriceAlerts) ClearAll() {
	a.mu.Lock()
	a.alerts = nil
	a.p.flush(a.alerts)
	a.mu.Unlock()
	a.notify()
}

// Alerts returns a copy of the registry.
func (a *PriceAlerts) Alerts() []domain.PriceAlert {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.PriceAlert(nil), a.alerts...)
}

func (a *PriceAlerts) index(productID int64) int {
	for i, alert := range a.alerts {
		if alert.ProductID == productID {
			return i
		}
	}
	return -1
}
