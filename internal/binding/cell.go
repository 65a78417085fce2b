// Package binding provides observable state cells shared by several views.
package binding

import "sync"

// Cell holds one value and notifies subscribers when it changes.
// Views never write into each other; they write the cell and re-read it.
type Cell[T comparable] struct {
	mu     sync.Mutex
	value  T
	subs   map[uint64]func(T)
	nextID uint64
}

// NewCell creates a cell holding initial
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[uint64]func(T))}
}

// Get returns the current value
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores v and notifies subscribers. It reports whether the value changed;
// setting the current value notifies nobody.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	if c.value == v {
		c.mu.Unlock()
		return false
	}
	c.value = v
	subs := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
	return true
}

// Subscribe registers fn for future changes and returns an unsubscribe func
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}
