package service

import "sync"

// packLocks serializes workflow mutations per pack. Two pharmacists working
// on the same pack from different tablets take turns; distinct packs never
// contend. Locks are created on first use and kept for the process lifetime,
// which is fine at pharmacy scale (hundreds of packs, 16-byte mutexes).
type packLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPackLocks() *packLocks {
	return &packLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a pack, creating it if needed.
func (p *packLocks) get(packID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.locks[packID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[packID] = l
	}
	return l
}

// lock acquires the pack's mutex and returns its unlock function.
func (p *packLocks) lock(packID string) func() {
	l := p.get(packID)
	l.Lock()
	return l.Unlock
}
