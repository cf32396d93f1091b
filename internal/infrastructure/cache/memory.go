package cache

import (
	"sync"
	"time"
)

// MemoryStore is an in-memory key-value store with per-entry expiration
type MemoryStore[V any] struct {
	mu    sync.RWMutex
	items map[string]*memoryItem[V]
	now   func() time.Time
	done  chan struct{}
	once  sync.Once
}

type memoryItem[V any] struct {
	value      V
	expireTime time.Time
}

// NewMemoryStore creates a store and starts a goroutine that sweeps expired
// entries every interval. Call Close to stop it.
func NewMemoryStore[V any](interval time.Duration) *MemoryStore[V] {
	store := &MemoryStore[V]{
		items: make(map[string]*memoryItem[V]),
		now:   time.Now,
		done:  make(chan struct{}),
	}

	if interval > 0 {
		go store.cleanupExpired(interval)
	}

	return store
}

// Set stores a value with expiration
func (ms *MemoryStore[V]) Set(key string, value V, expiration time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = &memoryItem[V]{
		value:      value,
		expireTime: ms.now().Add(expiration),
	}
}

// Get retrieves a value by key. Expired entries are reported as missing.
func (ms *MemoryStore[V]) Get(key string) (V, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var zero V
	item, exists := ms.items[key]
	if !exists || ms.now().After(item.expireTime) {
		return zero, false
	}

	return item.value, true
}

// Delete removes a key
func (ms *MemoryStore[V]) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// Len returns the number of stored entries, expired or not
func (ms *MemoryStore[V]) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.items)
}

// Close stops the cleanup goroutine
func (ms *MemoryStore[V]) Close() {
	ms.once.Do(func() { close(ms.done) })
}

func (ms *MemoryStore[V]) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.done:
			return
		case <-ticker.C:
			ms.sweep()
		}
	}
}

func (ms *MemoryStore[V]) sweep() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, item := range ms.items {
		if now.After(item.expireTime) {
			delete(ms.items, key)
		}
	}
}
