package github

import (
	"sync"
	"time"

	"github.com/devpulse/devpulse/internal/activity"
)

// DatasetCache stores fetched activity datasets in memory, keyed by
// username, with automatic expiration. Repeated analyses within the TTL
// reuse the cached dataset instead of hitting the GitHub API.
type DatasetCache struct {
	mu       sync.RWMutex
	datasets map[string]cachedDataset
	ttl      time.Duration
}

type cachedDataset struct {
	dataset  *activity.Dataset
	cachedAt time.Time
}

// NewDatasetCache creates a dataset cache with the given TTL.
func NewDatasetCache(ttl time.Duration) *DatasetCache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &DatasetCache{
		datasets: make(map[string]cachedDataset),
		ttl:      ttl,
	}
}

// Update adds or replaces the cached dataset for a username.
func (c *DatasetCache) Update(username string, dataset *activity.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.datasets[username] = cachedDataset{dataset: dataset, cachedAt: time.Now()}
}

// Get retrieves a cached dataset if present and not expired.
func (c *DatasetCache) Get(username string) (*activity.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.datasets[username]
	if !exists || time.Since(entry.cachedAt) > c.ttl {
		return nil, false
	}
	return entry.dataset, true
}

// Delete removes a username from the cache.
func (c *DatasetCache) Delete(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.datasets, username)
}

// CleanExpired removes expired entries and reports how many were dropped.
func (c *DatasetCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for username, entry := range c.datasets {
		if time.Since(entry.cachedAt) > c.ttl {
			delete(c.datasets, username)
			removed++
		}
	}
	return removed
}

// Count returns the number of cached datasets.
func (c *DatasetCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.datasets)
}
