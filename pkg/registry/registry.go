package registry

import (
	"sync"

	"github.com/arthur-debert/propconv/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by key
type Registry[K comparable, T any] interface {
	// Register adds an item to the registry
	Register(key K, item T) error

	// Get retrieves an item from the registry
	Get(key K) (T, error)

	// Lookup retrieves an item without building an error
	Lookup(key K) (T, bool)

	// Remove removes an item from the registry
	Remove(key K) error

	// List returns all registered keys in registration order
	List() []K

	// Has checks if an item is registered
	Has(key K) bool

	// Count returns the number of registered items
	Count() int
}

// registry is the internal implementation of Registry
type registry[K comparable, T any] struct {
	mu    sync.RWMutex
	items map[K]T
	order []K
}

// New creates a new Registry instance
func New[K comparable, T any]() Registry[K, T] {
	return &registry[K, T]{
		items: make(map[K]T),
	}
}

// Register adds an item to the registry
func (r *registry[K, T]) Register(key K, item T) error {
	var zero K
	if key == zero {
		return errors.New(errors.ErrInvalidInput, "registry key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%v' is already registered", key)
	}

	r.items[key] = item
	r.order = append(r.order, key)
	return nil
}

// Get retrieves an item from the registry
func (r *registry[K, T]) Get(key K) (T, error) {
	item, ok := r.Lookup(key)
	if !ok {
		return item, errors.Newf(errors.ErrNotFound, "item '%v' not found in registry", key)
	}
	return item, nil
}

// Lookup retrieves an item from the registry
func (r *registry[K, T]) Lookup(key K) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	return item, exists
}

// Remove removes an item from the registry
func (r *registry[K, T]) Remove(key K) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%v' not found in registry", key)
	}

	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all registered keys in registration order
func (r *registry[K, T]) List() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, len(r.order))
	copy(keys, r.order)
	return keys
}

// Has checks if an item is registered
func (r *registry[K, T]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[key]
	return exists
}

// Count returns the number of registered items
func (r *registry[K, T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
