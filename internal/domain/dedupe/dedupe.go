// Package dedupe tracks which report IDs a session has already applied so
// that resubmitting a report is a no-op.
package dedupe

import (
	"context"
	"sync"
)

// Tracker records seen report IDs.
type Tracker interface {
	// Record returns true if id was already recorded, otherwise records it
	// and returns false.
	Record(ctx context.Context, id string) bool

	// Forget removes id so that it can be applied again. Used when applying
	// a recorded report failed.
	Forget(ctx context.Context, id string)

	Size() int
}

// memoryTracker keeps IDs in a map with insertion order in a slice. When a
// capacity is set the oldest IDs are evicted first.
type memoryTracker struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	order    []string
	capacity int
}

// NewMemoryTracker creates an in-memory Tracker.
func NewMemoryTracker(opts ...Option) Tracker {
	t := &memoryTracker{
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.seen = make(map[string]struct{})
	return t
}

func (t *memoryTracker) Record(_ context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[id]; ok {
		return true
	}
	if t.capacity > 0 && len(t.seen) >= t.capacity {
		t.evictOldest()
	}
	t.seen[id] = struct{}{}
	t.order = append(t.order, id)
	return false
}

func (t *memoryTracker) Forget(_ context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[id]; !ok {
		return
	}
	delete(t.seen, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// evictOldest must be called with t.mu held.
func (t *memoryTracker) evictOldest() {
	if len(t.order) == 0 {
		return
	}
	oldest := t.order[0]
	t.order[0] = ""
	t.order = t.order[1:]
	delete(t.seen, oldest)
}

func (t *memoryTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
