package cmd

import (
	"sync"
	"time"

	"github.com/nrundek/duxburyInfo/internal/model"
)

// cacheEntry holds one scan pipeline result with its timestamp.
type cacheEntry struct {
	candidates []model.Candidate
	status     model.Status
	timestamp  time.Time
}

// scanCache is a TTL cache for the collector+parser pipeline. The scan
// walks up to 800 UI nodes, so agents polling the tools in a tight loop
// would otherwise hammer the accessibility layer. There is a single
// entry: the scan always targets the current foreground window.
type scanCache struct {
	mu    sync.Mutex
	entry *cacheEntry
	ttl   time.Duration
}

// newScanCache creates a cache. A ttl of 0 disables caching.
func newScanCache(ttl time.Duration) *scanCache {
	return &scanCache{ttl: ttl}
}

// Scan returns the cached pipeline result if within TTL, otherwise runs
// fetch for a fresh one.
func (c *scanCache) Scan(fetch func() ([]model.Candidate, model.Status)) ([]model.Candidate, model.Status) {
	if c.ttl == 0 {
		return fetch()
	}

	c.mu.Lock()
	if c.entry != nil && time.Since(c.entry.timestamp) < c.ttl {
		cands, st := c.entry.candidates, c.entry.status
		c.mu.Unlock()
		return cands, st
	}
	c.mu.Unlock()

	cands, st := fetch()

	c.mu.Lock()
	c.entry = &cacheEntry{candidates: cands, status: st, timestamp: time.Now()}
	c.mu.Unlock()

	return cands, st
}

// Invalidate clears the cached result.
func (c *scanCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}
