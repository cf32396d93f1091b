package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore[int](0)
	defer store.Close()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set("a", 1, time.Minute)
	store.Set("b", 2, time.Hour)

	v, ok := store.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(2 * time.Minute)
	_, ok = store.Get("a")
	assert.False(t, ok)

	store.sweep()
	assert.Equal(t, 1, store.Len())

	store.Delete("b")
	_, ok = store.Get("b")
	assert.False(t, ok)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	store := NewMemoryStore[string](time.Millisecond)
	store.Close()
	assert.NotPanics(t, store.Close)
}
