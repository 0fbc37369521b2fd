// Package cache provides a TTL-bounded LRU cache for catalog lookups.
//
// The medication catalog is read-mostly reference data; barcode scans hit the
// same handful of entries over and over during a packing session, so a small
// in-process cache takes most of the load off MongoDB.
package cache

import (
	"sync"
	"time"

	"github.com/medpak/webster-service/internal/domain/model"
)

// Cache defines barcode-keyed catalog caching. A stored nil is a valid value:
// it memoizes "this barcode is not in the catalog".
type Cache interface {
	Get(barcode string) (*model.Medication, bool)
	Set(barcode string, med *model.Medication)
	Invalidate(barcode string)
	Clear()
	Stats() Metrics
	Stop()
}

// Metrics reports cache performance counters.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// entry is one cached barcode lookup with its position in the LRU list.
type entry struct {
	barcode   string
	med       *model.Medication
	expiresAt time.Time
	prev      *entry
	next      *entry
}

// TTLCache is a thread-safe LRU cache with per-entry expiration. A background
// goroutine sweeps expired entries; Stop terminates it.
type TTLCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*entry
	head      *entry
	tail      *entry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

// NewTTLCache creates a cache with the given capacity and TTL and starts its
// sweeper.
func NewTTLCache(capacity int, ttl time.Duration) *TTLCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &TTLCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the cached lookup result for a barcode, if fresh.
func (c *TTLCache) Get(barcode string) (*model.Medication, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[barcode]
	if !ok {
		c.misses++
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.removeEntry(e)
		c.misses++
		return nil, false
	}

	c.moveToFront(e)
	c.hits++
	return e.med, true
}

// Set stores a lookup result, evicting the least recently used entry when at
// capacity.
func (c *TTLCache) Set(barcode string, med *model.Medication) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[barcode]; ok {
		e.med = med
		e.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(e)
		return
	}

	e := &entry{
		barcode:   barcode,
		med:       med,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[barcode] = e
	c.addToFront(e)

	if len(c.items) > c.capacity {
		c.removeTail()
		c.evictions++
	}
}

// Invalidate drops a single barcode.
func (c *TTLCache) Invalidate(barcode string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[barcode]; ok {
		c.removeEntry(e)
	}
}

// Clear drops every entry and resets counters.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry, c.capacity)
	c.head = nil
	c.tail = nil
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Stop terminates the background sweeper. Safe to call more than once.
func (c *TTLCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Stats returns a snapshot of the cache counters.
func (c *TTLCache) Stats() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// sweep removes expired entries once a minute until stopped.
func (c *TTLCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			cutoff := time.Now()
			for _, e := range c.items {
				if cutoff.After(e.expiresAt) {
					c.removeEntry(e)
				}
			}
			c.mu.Unlock()
		case <-c.stopCh:
			return
		}
	}
}

func (c *TTLCache) removeEntry(e *entry) {
	delete(c.items, e.barcode)
	c.unlink(e)
}

func (c *TTLCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *TTLCache) addToFront(e *entry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *TTLCache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *TTLCache) removeTail() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
}
