// Package state holds the session collections that survive restarts: the
// cart ledger, wishlist, recently-viewed ring, price-alert registry,
// compare tray and recent-search ring. Each store owns its in-memory
// collection, serializes its
// own mutations, and follows the same hydrate-once / flush-on-mutation
// lifecycle against the durable store.
package state

import (
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/storage"

	"github.com/goccy/go-json"
)

// Storage keys, one document per store. These are the exact names the
// storefront has always used, so existing saved state keeps working.
const (
	KeyCart           = "smartchoice-cart"
	KeyWishlist       = "wishlist"
	KeyRecentlyViewed = "recentlyViewed"
	KeyPriceAlerts    = "ai-smartchoice-price-alerts"
	KeyCompare        = "compareList"
	KeyRecentSearches = "ai-smartchoice-recent-searches"
)

// Phase is the hydration lifecycle of a store instance.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseHydrating
	PhaseReady
)

// persistence gates durable writes behind the one-time hydration read.
// Until the store reaches PhaseReady, flush is a no-op: a mutation racing
// hydration must never overwrite good persisted data with a partial
// in-memory state.
type persistence struct {
	store storage.Store
	key   string
	phase Phase
}

func newPersistence(store storage.Store, key string) persistence {
	return persistence{store: store, key: key, phase: PhaseUninitialized}
}

// hydrate performs the single load from the durable store and reports
// whether a persisted document was adopted into `into`. Absent, unreadable
// and corrupt documents all mean "start empty"; none are errors to the
// caller. The transition to PhaseReady is unconditional.
func (p *persistence) hydrate(into interface{}) bool {
	p.phase = PhaseHydrating
	defer func() { p.phase = PhaseReady }()

	data, found, err := p.store.Read(p.key)
	if err != nil {
		log := logger.WithStore(p.key)
		log.Warn().Err(err).Msg("State read failed, starting empty")
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, into); err != nil {
		log := logger.WithStore(p.key)
		log.Warn().Err(err).Msg("Discarding corrupt state document")
		return false
	}
	return true
}

// flush writes the full collection document. Write failures are logged and
// dropped; the in-memory state stays authoritative for the session.
func (p *persistence) flush(v interface{}) {
	if p.phase != PhaseReady {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log := logger.WithStore(p.key)
		log.Error().Err(err).Msg("State marshal failed")
		return
	}
	if err := p.store.Write(p.key, data); err != nil {
		log := logger.WithStore(p.key)
		log.Error().Err(err).Msg("State write failed, keeping in-memory copy only")
	}
}

// drop removes the store's document entirely, as opposed to writing an
// empty collection.
func (p *persistence) drop() {
	if p.phase != PhaseReady {
		return
	}
	if err := p.store.Delete(p.key); err != nil {
		log := logger.WithStore(p.key)
		log.Error().Err(err).Msg("State delete failed")
	}
}
