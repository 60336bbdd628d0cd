package handler

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages instruction handlers by tag.
// It provides thread-safe registration and lookup of handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[uint8]Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[uint8]Handler),
	}
}

// Register adds a handler for an instruction tag.
// Returns an error if a handler is already registered for that tag.
func (r *Registry) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tag := h.Tag()
	if existing, exists := r.handlers[tag]; exists {
		return fmt.Errorf("handler already registered for tag %d: %s", tag, existing.Name())
	}

	r.handlers[tag] = h
	return nil
}

// MustRegister adds a handler and panics if registration fails.
func (r *Registry) MustRegister(h Handler) {
	if err := r.Register(h); err != nil {
		panic(err)
	}
}

// Get returns the handler for a tag, or nil.
func (r *Registry) Get(tag uint8) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[tag]
}

// Has returns true if a handler is registered for the tag.
func (r *Registry) Has(tag uint8) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.handlers[tag]
	return exists
}

// Tags returns all registered tags in ascending order.
func (r *Registry) Tags() []uint8 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]uint8, 0, len(r.handlers))
	for t := range r.handlers {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
