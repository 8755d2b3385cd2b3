// Package lock serializes work per key, one mutex per game id.
package lock

import (
	"sync"
)

// keyMutex wraps a mutex with a count of holders and waiters so idle
// entries can be dropped from the map.
type keyMutex struct {
	mu   sync.Mutex
	refs int
}

// Keyed provides one mutex per key.
// The zero value is ready to use.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*keyMutex
}

// New creates a new Keyed lock
func New() *Keyed {
	return &Keyed{}
}

// acquire returns the mutex for key with its reference taken
func (k *Keyed) acquire(key string) *keyMutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.locks == nil {
		k.locks = make(map[string]*keyMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &keyMutex{}
		k.locks[key] = m
	}
	m.refs++
	return m
}

// release drops a reference and forgets the mutex once nobody uses it
func (k *Keyed) release(key string, m *keyMutex) {
	k.mu.Lock()
	defer k.mu.Unlock()

	m.refs--
	if m.refs == 0 {
		delete(k.locks, key)
	}
}

// Lock blocks until the lock for key is held and returns the function that
// releases it. Only the holder can release the lock, and calling unlock
// more than once is a no-op.
func (k *Keyed) Lock(key string) (unlock func()) {
	m := k.acquire(key)
	m.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Unlock()
			k.release(key, m)
		})
	}
}
