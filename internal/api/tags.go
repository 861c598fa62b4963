package api

import (
	"slices"
	"sync"
)

// Tag names a family of cached server data. Queries provide tags, mutations invalidate them.
type Tag string

// TagTask covers every task listing
const TagTask Tag = "Task"

// InvalidationListener is called with the tags a successful mutation invalidated
type InvalidationListener func(tags []Tag)

// TagRegistry fans tag invalidations out to listeners. It holds no response data.
type TagRegistry struct {
	mu        sync.RWMutex
	listeners map[int]InvalidationListener
	nextID    int
}

// NewTagRegistry creates an empty registry
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{listeners: make(map[int]InvalidationListener)}
}

// Subscribe registers fn and returns a function that removes it
func (r *TagRegistry) Subscribe(fn InvalidationListener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// Invalidate notifies every listener. Listeners run synchronously on the caller's goroutine.
func (r *TagRegistry) Invalidate(tags ...Tag) {
	if len(tags) == 0 {
		return
	}

	r.mu.RLock()
	ids := make([]int, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	listeners := make([]InvalidationListener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, r.listeners[id])
	}
	r.mu.RUnlock()

	for _, fn := range listeners {
		fn(tags)
	}
}

// Affects reports whether invalidated shares a tag with provided
func Affects(invalidated, provided []Tag) bool {
	for _, tag := range invalidated {
		if slices.Contains(provided, tag) {
			return true
		}
	}
	return false
}
