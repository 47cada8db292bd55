package store

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned by a reload whose result was superseded by a newer
// request for the same resource; its result has been discarded.
var ErrStale = errors.New("stale response discarded")

// FetchFunc loads the full list of a resource from the backend
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection is the canonical in-memory copy of one resource list.
// It is only ever replaced by a server response, never edited locally.
type Collection[T any] struct {
	name  Resource
	fetch FetchFunc[T]

	mu      sync.RWMutex
	items   []T
	loaded  bool
	loading bool
	err     error
	gen     uint64 // generation of the latest issued reload
}

func NewCollection[T any](name Resource, fetch FetchFunc[T]) *Collection[T] {
	return &Collection[T]{name: name, fetch: fetch, items: []T{}}
}

// Name returns the resource this collection holds
func (c *Collection[T]) Name() Resource {
	return c.name
}

// Invalidate marks the current copy as out of date. The items stay
// readable until the next reload replaces them.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}

// Reload fetches the list and replaces the copy. A failed fetch leaves an
// empty list. If a newer reload was issued meanwhile the result is
// dropped and ErrStale returned.
func (c *Collection[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return ErrStale
	}
	c.loading = false
	c.err = err
	if err != nil {
		c.items = []T{}
		c.loaded = false
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.loaded = true
	return nil
}

// Items returns a copy of the current list
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items currently held
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Loaded reports whether the copy reflects a successful, still valid fetch
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Loading reports whether a reload is in flight
func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the error of the last completed reload
func (c *Collection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Reset drops the copy. Reloads still in flight become stale.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.items = []T{}
	c.loaded = false
	c.loading = false
	c.err = nil
}
