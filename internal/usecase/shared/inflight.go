package shared

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// InflightGuard allows one calendar mutation per listing at a time. A second
// caller is turned away instead of queued.
type InflightGuard struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
	held map[string]bool
}

func NewInflightGuard() *InflightGuard {
	return &InflightGuard{
		sems: make(map[string]*semaphore.Weighted),
		held: make(map[string]bool),
	}
}

// TryAcquire returns ok=false when a mutation for listingID is already running.
// The returned release must be called exactly once.
func (g *InflightGuard) TryAcquire(listingID string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sem, exists := g.sems[listingID]
	if !exists {
		sem = semaphore.NewWeighted(1)
		g.sems[listingID] = sem
	}
	if !sem.TryAcquire(1) {
		return nil, false
	}
	g.held[listingID] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			delete(g.held, listingID)
			sem.Release(1)
		})
	}, true
}

// InFlight reports whether a mutation holds listingID. It only reads state and
// never competes with TryAcquire for the slot.
func (g *InflightGuard) InFlight(listingID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held[listingID]
}
