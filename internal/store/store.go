package store

import (
	"errors"
	"sync"

	"shivasadhana-api/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an update targets an id that is not in
// the store. Deletes of absent ids are a silent no-op.
var ErrNotFound = errors.New("not found")

// collection holds one entity type in a mutex-guarded map. A separate
// id slice preserves insertion order for deterministic listing. All
// read-modify-write cycles run under the write lock so concurrent
// updates to the same record cannot interleave.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) insert(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = item
	c.order = append(c.order, id)
}

// update applies fn to the stored record under the write lock and
// returns the merged result.
func (c *collection[T]) update(id string, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&item)
	c.items[id] = item
	return item, true
}

func (c *collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if pred(c.items[id]) {
			return c.items[id], true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, id := range c.order {
		if pred(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

// Store is the authoritative in-memory holder of all entity state for
// the lifetime of the process. Nothing persists across restarts.
type Store struct {
	users            *collection[models.User]
	products         *collection[models.Product]
	travels          *collection[models.Travel]
	accommodations   *collection[models.Accommodation]
	shraddhaPackages *collection[models.ShraddhaPackage]
	enquiries        *collection[models.Enquiry]
	banners          *collection[models.Banner]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:            newCollection[models.User](),
		products:         newCollection[models.Product](),
		travels:          newCollection[models.Travel](),
		accommodations:   newCollection[models.Accommodation](),
		shraddhaPackages: newCollection[models.ShraddhaPackage](),
		enquiries:        newCollection[models.Enquiry](),
		banners:          newCollection[models.Banner](),
	}
}

func newID() string {
	return uuid.New().String()
}
