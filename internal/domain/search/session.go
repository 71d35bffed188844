// internal/domain/search/session.go
package search

import (
	"sync"
	"time"

	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
)

// DefaultDebounce is the pause after the last keystroke before re-ranking
const DefaultDebounce = 150 * time.Millisecond

// Session debounces interactive re-ranking for one search box. Each Query
// cancels any pending computation and schedules a fresh one, so at most one
// ranking is pending at a time and the newest query always wins. Superseded
// results are discarded, never delivered.
type Session struct {
	catalog *catalog.Catalog
	delay   time.Duration
	deliver func(query string, results []catalog.Product)

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
}

// NewSession creates a search session delivering ranked results to the given
// callback. A non-positive delay falls back to DefaultDebounce.
func NewSession(c *catalog.Catalog, delay time.Duration, deliver func(query string, results []catalog.Product)) *Session {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Session{
		catalog: c,
		delay:   delay,
		deliver: deliver,
	}
}

// Query schedules a ranking of the catalog against q after the debounce
// delay, cancelling any pending ranking. An empty or whitespace-only query
// delivers an empty result immediately so the caller can suppress its panel.
func (s *Session) Query(q string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	gen := s.gen

	if isBlank(q) {
		s.mu.Unlock()
		s.deliver(q, nil)
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		results := Rank(s.catalog.Products(), q)

		s.mu.Lock()
		superseded := s.closed || gen != s.gen
		s.mu.Unlock()
		if superseded {
			return
		}

		s.deliver(q, results)
	})
	s.mu.Unlock()
}

// Close cancels any pending ranking and rejects further queries
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func isBlank(q string) bool {
	for _, r := range q {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
