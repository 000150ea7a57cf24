package state

import (
	"sync"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func newStore(name string) *entity.Store {
	return &entity.Store{ID: uuid.New(), Name: name, Latitude: float(37.5), Longitude: float(127.0)}
}

func names(stores []*entity.Store) []string {
	out := make([]string, 0, len(stores))
	for _, store := range stores {
		out = append(out, store.Name)
	}

	return out
}

func TestCatalog_ReplaceAndSnapshot(t *testing.T) {
	catalog := NewCatalog()
	a, b := newStore("a"), newStore("b")

	catalog.ReplaceStores([]*entity.Store{a, nil, b})

	assert.Equal(t, []string{"a", "b"}, names(catalog.Snapshot()))
	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, uint64(1), catalog.Version())
}

func TestCatalog_SnapshotIsCopy(t *testing.T) {
	catalog := NewCatalog()
	a := newStore("a")
	catalog.ReplaceStores([]*entity.Store{a})

	a.Name = "mutated by caller"
	snapshot := catalog.Snapshot()
	snapshot[0].Name = "mutated by reader"
	*snapshot[0].Latitude = 0

	stored, ok := catalog.Store(a.ID)
	require.True(t, ok)
	assert.Equal(t, "a", stored.Name)
	assert.InDelta(t, 37.5, *stored.Latitude, 1e-9)
}

func TestCatalog_UpsertAndRemove(t *testing.T) {
	catalog := NewCatalog()
	a, b := newStore("a"), newStore("b")
	catalog.ReplaceStores([]*entity.Store{a})

	catalog.UpsertStore(b)
	renamed := a.Clone()
	renamed.Name = "a2"
	catalog.UpsertStore(renamed)

	assert.Equal(t, []string{"a2", "b"}, names(catalog.Snapshot()))

	assert.True(t, catalog.RemoveStore(a.ID))
	assert.False(t, catalog.RemoveStore(a.ID))
	assert.Equal(t, []string{"b"}, names(catalog.Snapshot()))

	_, ok := catalog.Store(a.ID)
	assert.False(t, ok)
	assert.Equal(t, uint64(4), catalog.Version())
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			catalog.UpsertStore(newStore("s"))
		}()
		go func() {
			defer wg.Done()
			_ = catalog.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, catalog.Len())
}
