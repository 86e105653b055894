package state

import (
	"strings"
	"sync"

	"smartchoice-state/pkg/storage"
)

// RecentSearches is the bounded most-recent-first ring of search terms
// feeding the search box suggestions. Dedup is case-insensitive, but the
// most recently typed casing is the one kept.
type RecentSearches struct {
	notifier

	mu       sync.Mutex
	terms    []string
	capacity int
	p        persistence
}

func NewRecentSearches(store storage.Store, capacity int) *RecentSearches {
	if capacity < 1 {
		capacity = 1
	}
	return &RecentSearches{
		capacity: capacity,
		p:        newPersistence(store, KeyRecentSearches),
	}
}

func (s *RecentSearches) Hydrate() {
	s.mu.Lock()
	var saved []string
	if s.p.hydrate(&saved) {
		if len(saved) > s.capacity {
			saved = saved[:s.capacity]
		}
		s.terms = saved
	}
	s.mu.Unlock()
	s.notify()
}

// Record trims the term and moves it to the front, dropping any entry that
// matches case-insensitively. A blank term is a no-op.
func (s *RecentSearches) Record(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	s.mu.Lock()
	filtered := make([]string, 0, len(s.terms)+1)
	filtered = append(filtered, term)
	for _, t := range s.terms {
		if !strings.EqualFold(t, term) {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) > s.capacity {
		filtered = filtered[:s.capacity]
	}
	s.terms = filtered
	s.p.flush(s.terms)
	s.mu.Unlock()
	s.notify()
}

// Clear empties the ring and deletes its durable record entirely.
func (s *RecentSearches) Clear() {
	s.mu.Lock()
	s.terms = nil
	s.p.drop()
	s.mu.Unlock()
	s.notify()
}

func (s *RecentSearches) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.terms)
}

// Terms returns a copy, most recent first.
func (s *RecentSearches) Terms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.terms...)
}
