// Package state holds the in-memory entity collections the client treats as
// ground truth, plus the store-wide loading tracker.
package state

import "sync"

// Record is a value with an identity. Collections hold records by value;
// a change is made by replacing the whole record.
type Record interface {
	Identity() int64
}

// Collection is an ordered, identity-unique set of records.
//
// Reads return copies, so callers can never edit stored records in place.
// The write methods are meant for the use cases that reconcile remote
// results; nothing else should call them.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T

	// touched is set by the first fetch or mutation. A touched collection
	// is never seeded from a snapshot, even when it is empty again.
	touched bool
}

// NewCollection creates a collection holding items in the given order.
func NewCollection[T Record](items ...T) *Collection[T] {
	return &Collection[T]{items: dedupe(items)}
}

// All returns the records in collection order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the record with the given identity.
func (c *Collection[T]) Find(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Append adds item at the end. An existing record with the same identity is
// replaced in place instead.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touched = true
	if i := c.indexOf(item.Identity()); i >= 0 {
		c.items[i] = item
		return
	}
	c.items = append(c.items, item)
}

// Prepend adds item at the front. An existing record with the same identity
// is removed first.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touched = true
	if i := c.indexOf(item.Identity()); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	c.items = append([]T{item}, c.items...)
}

// Replace swaps the record with item's identity for item. It reports false
// and changes nothing when no such record exists.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touched = true
	i := c.indexOf(item.Identity())
	if i < 0 {
		return false
	}
	c.items[i] = item
	return true
}

// Update applies fn to the record with the given identity and stores the
// returned value. It reports false when no such record exists.
func (c *Collection[T]) Update(id int64, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touched = true
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items[i] = fn(c.items[i])
	return true
}

// Remove deletes the record with the given identity.
func (c *Collection[T]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touched = true
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// ReplaceAll swaps the whole content for items, as an authoritative fetch
// does. Later duplicates of an identity are dropped.
func (c *Collection[T]) ReplaceAll(items []T) {
	fresh := dedupe(items)

	c.mu.Lock()
	c.items = fresh
	c.touched = true
	c.mu.Unlock()
}

// Seed fills a collection that no fetch or mutation has touched yet and
// reports whether it did.
func (c *Collection[T]) Seed(items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.touched || len(c.items) > 0 {
		return false
	}
	c.items = dedupe(items)
	return true
}

// Reset empties the collection and makes it seedable again.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	c.items = nil
	c.touched = false
	c.mu.Unlock()
}

// dedupe keeps the first record of each identity.
func dedupe[T Record](items []T) []T {
	fresh := make([]T, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.Identity()]; dup {
			continue
		}
		seen[item.Identity()] = struct{}{}
		fresh = append(fresh, item)
	}
	return fresh
}

// indexOf is a linear scan; collections are personal-scale.
func (c *Collection[T]) indexOf(id int64) int {
	for i := range c.items {
		if c.items[i].Identity() == id {
			return i
		}
	}
	return -1
}
