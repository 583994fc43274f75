package resolver

import "sync"

// Flight is a keyed single-flight guard. At most one holder per key, a second
// acquire attempt for a busy key fails immediately instead of waiting.
type Flight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewFlight makes an empty guard
func NewFlight() *Flight {
	return &Flight{active: make(map[string]struct{})}
}

// TryAcquire marks key as in flight, returns false if it is already
func (f *Flight) TryAcquire(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.active[key]; ok {
		return false
	}
	f.active[key] = struct{}{}
	return true
}

// Release clears key
func (f *Flight) Release(key string) {
	f.mu.Lock()
	delete(f.active, key)
	f.mu.Unlock()
}

// Busy reports whether key is in flight
func (f *Flight) Busy(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.active[key]
	return ok
}
