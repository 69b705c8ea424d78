// Package pattern holds the shared per-domain email-shape cache. The store
// is the only mutable state shared across pipeline runs: reads take a
// shared lock, writes are last-writer-wins. Entries are heuristic hints.
package pattern

import (
	"sync"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Store maps email domains to their inferred address shape.
type Store struct {
	mu       sync.RWMutex
	patterns map[string]model.DomainPattern
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{patterns: make(map[string]model.DomainPattern)}
}

// Get returns the cached pattern for a domain, if any.
func (s *Store) Get(domain string) (model.DomainPattern, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patterns[domain]
	return p, ok
}

// Put records a pattern for a domain, overwriting any prior entry.
func (s *Store) Put(domain string, p model.DomainPattern) {
	if domain == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns[domain] = p
}

// Snapshot returns a copy of all cached patterns.
func (s *Store) Snapshot() map[string]model.DomainPattern {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]model.DomainPattern, len(s.patterns))
	for d, p := range s.patterns {
		out[d] = p
	}
	return out
}

// Len returns the number of cached domains.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patterns)
}
