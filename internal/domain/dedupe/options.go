package dedupe

const defaultCapacity = 50000

// Option configures a memory tracker.
type Option func(*memoryTracker)

// WithCapacity bounds the number of remembered IDs. Zero or negative means
// unbounded.
func WithCapacity(n int) Option {
	return func(t *memoryTracker) {
		t.capacity = n
	}
}
