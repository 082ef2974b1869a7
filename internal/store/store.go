// Package store provides the caller-owned view-state containers that sit
// between the refresh cycle and the presentation edge. A collection is
// always replaced wholesale on reload, never patched, so readers only ever
// observe a complete snapshot.
package store

import "sync"

// Collection holds the latest derived view of one screen's data.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	version uint64
	subs    []chan struct{}
}

// NewCollection creates an empty collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Replace swaps in a new snapshot and notifies subscribers. The slice is
// copied so later mutation by the caller cannot leak into readers.
func (c *Collection[T]) Replace(items []T) {
	snapshot := make([]T, len(items))
	copy(snapshot, items)

	c.mu.Lock()
	c.items = snapshot
	c.version++
	subs := c.subs
	c.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber is still draining the previous signal.
		}
	}
}

// Snapshot returns a copy of the current items.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Version returns a counter incremented on every Replace. A consumer can
// compare versions to detect that a reload happened between two reads.
func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Len returns the number of items in the current snapshot.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Subscribe returns a channel that receives a signal after each Replace.
// The channel has a buffer of one; coalesced signals mean "reload happened
// at least once", matching the replace-whole-collection model.
func (c *Collection[T]) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}
