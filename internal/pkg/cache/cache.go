package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"hoster-calendar/internal/pkg/clock"

	"golang.org/x/sync/singleflight"
)

type ResourceKind string

const (
	KindCalendar ResourceKind = "calendar"
)

// Key identifies one cached resource. Empty ListingID and Month mean the
// resource is not scoped to a listing or month.
type Key struct {
	Kind      ResourceKind
	ListingID string
	Month     string
}

func (k Key) String() string {
	return string(k.Kind) + "/" + k.ListingID + "/" + k.Month
}

// matches treats zero fields of pattern as wildcards.
func (k Key) matches(pattern Key) bool {
	if pattern.Kind != "" && pattern.Kind != k.Kind {
		return false
	}
	if pattern.ListingID != "" && pattern.ListingID != k.ListingID {
		return false
	}
	if pattern.Month != "" && pattern.Month != k.Month {
		return false
	}
	return true
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Store is an explicitly owned fetch-and-store cache. Values only enter it through
// a loader passed to Get, and leave it through Invalidate or TTL.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[Key]entry[V]
	// bumped on every Invalidate; loads started under an older generation are not stored
	generation uint64
	group      singleflight.Group
	ttl        time.Duration
	clock      clock.Clock
}

func NewStore[V any](ttl time.Duration, clk clock.Clock) *Store[V] {
	return &Store[V]{
		entries: make(map[Key]entry[V]),
		ttl:     ttl,
		clock:   clk,
	}
}

// Get returns the cached value for key, loading it on a miss. Concurrent misses
// on the same key share one load. The load outlives a cancelled caller so that
// the other waiters still get a result.
func (s *Store[V]) Get(ctx context.Context, key Key, load func(ctx context.Context) (V, error)) (V, error) {
	var zero V

	if v, ok := s.Peek(key); ok {
		return v, nil
	}

	gen := s.currentGeneration()
	ch := s.group.DoChan(key.String()+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.storeIfCurrent(key, v, gen)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(V), nil
	}
}

// Peek returns a fresh cached value without loading.
func (s *Store[V]) Peek(key Key) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if s.ttl > 0 && s.clock.Now().Sub(e.storedAt) >= s.ttl {
		delete(s.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Invalidate drops every entry matching pattern and returns how many were dropped.
func (s *Store[V]) Invalidate(pattern Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	n := 0
	for k := range s.entries {
		if k.matches(pattern) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

func (s *Store[V]) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Store[V]) storeIfCurrent(key Key, v V, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.entries[key] = entry[V]{value: v, storedAt: s.clock.Now()}
}
