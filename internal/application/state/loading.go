package state

import "sync"

// LoadingTracker counts in-flight loads so that overlapping loads report
// "loading" until the last one settles.
type LoadingTracker struct {
	mu      sync.Mutex
	pending int
}

// Begin marks a load as started and returns the function that settles it.
// The returned function is safe to call more than once.
func (l *LoadingTracker) Begin() (done func()) {
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.pending--
			l.mu.Unlock()
		})
	}
}

// IsLoading reports whether any tracked load is still in flight.
func (l *LoadingTracker) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending > 0
}
