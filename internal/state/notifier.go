package state

import "sync"

// notifier is the change subscription every store embeds. Consumers
// subscribe to recompute derived views (badges, totals) after a mutation;
// the stores themselves never push data, only the fact that something
// changed.
type notifier struct {
	lmu       sync.Mutex
	listeners map[int]func()
	nextID    int
}

// Subscribe registers fn to run after every accepted mutation and returns
// a cancel func that removes the registration.
func (n *notifier) Subscribe(fn func()) (cancel func()) {
	n.lmu.Lock()
	defer n.lmu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.lmu.Lock()
		defer n.lmu.Unlock()
		delete(n.listeners, id)
	}
}

// notify runs the listeners. Called after the owning store releases its
// state lock so listeners can read back derived values.
func (n *notifier) notify() {
	n.lmu.Lock()
	fns := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.lmu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
