// Package state holds process-wide mutable state owned by the composition root.
package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Catalog is the in-memory set of stores used for listing and ranking.
// Reads return copies; writes bump Version.
type Catalog struct {
	mu      sync.RWMutex
	stores  map[uuid.UUID]*entity.Store
	order   []uuid.UUID
	version uint64
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{stores: make(map[uuid.UUID]*entity.Store)}
}

// ReplaceStores swaps the whole catalog, keeping the given order.
func (c *Catalog) ReplaceStores(stores []*entity.Store) {
	next := make(map[uuid.UUID]*entity.Store, len(stores))
	order := make([]uuid.UUID, 0, len(stores))
	for _, store := range stores {
		if store == nil {
			continue
		}
		if _, dup := next[store.ID]; !dup {
			order = append(order, store.ID)
		}
		next[store.ID] = store.Clone()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stores = next
	c.order = order
	c.version++
}

// UpsertStore inserts or replaces one store. New stores go last.
func (c *Catalog) UpsertStore(store *entity.Store) {
	if store == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.stores[store.ID]; !ok {
		c.order = append(c.order, store.ID)
	}
	c.stores[store.ID] = store.Clone()
	c.version++
}

// RemoveStore deletes a store and reports whether it was present.
func (c *Catalog) RemoveStore(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.stores[id]; !ok {
		return false
	}

	delete(c.stores, id)
	c.order = slices.DeleteFunc(c.order, func(existing uuid.UUID) bool { return existing == id })
	c.version++

	return true
}

// Snapshot returns copies of all stores in catalog order.
func (c *Catalog) Snapshot() []*entity.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stores := make([]*entity.Store, 0, len(c.order))
	for _, id := range c.order {
		stores = append(stores, c.stores[id].Clone())
	}

	return stores
}

// Store returns a copy of one store.
func (c *Catalog) Store(id uuid.UUID) (*entity.Store, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	store, ok := c.stores[id]
	if !ok {
		return nil, false
	}

	return store.Clone(), true
}

// Len returns the number of stores.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Version increases on every write.
func (c *Catalog) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.version
}
