package geo

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(name string, coords ...float64) *entity.Store {
	store := &entity.Store{ID: uuid.New(), Name: name}
	if len(coords) == 2 {
		store.Latitude = &coords[0]
		store.Longitude = &coords[1]
	}

	return store
}

func names(result entity.RankedStores) []string {
	out := make([]string, 0, len(result.Stores))
	for _, store := range result.Stores {
		out = append(out, store.Name)
	}

	return out
}

func TestRankStores_FiltersAndSorts(t *testing.T) {
	stores := []*entity.Store{
		newStore("c", 37.51, 127.01),
		newStore("b"),
		newStore("a", 37.50, 127.00),
	}
	user := &entity.Location{Latitude: 37.499, Longitude: 126.999}

	result := RankStores(user, stores)

	require.True(t, result.Ranked)
	assert.Equal(t, []string{"a", "c"}, names(result))
	assert.Equal(t, 1, result.ExcludedCount)
	for _, store := range result.Stores {
		require.NotNil(t, store.Distance)
	}
	assert.LessOrEqual(t, *result.Stores[0].Distance, *result.Stores[1].Distance)
}

func TestRankStores_NoLocationReturnsInputUnchanged(t *testing.T) {
	stores := []*entity.Store{
		newStore("a", 37.50, 127.00),
		newStore("b"),
		newStore("c", 37.51, 127.01),
	}

	result := RankStores(nil, stores)

	assert.False(t, result.Ranked)
	assert.Equal(t, []string{"a", "b", "c"}, names(result))
	assert.Zero(t, result.ExcludedCount)
	for _, store := range result.Stores {
		assert.Nil(t, store.Distance)
	}
}

func TestRankStores_EmptyList(t *testing.T) {
	result := RankStores(&entity.Location{Latitude: 1, Longitude: 2}, nil)

	assert.False(t, result.Ranked)
	assert.Empty(t, result.Stores)
}

func TestRankStores_NoCoordinatesAnywhere(t *testing.T) {
	stores := []*entity.Store{newStore("a"), newStore("b")}

	result := RankStores(&entity.Location{Latitude: 1, Longitude: 2}, stores)

	assert.False(t, result.Ranked)
	assert.Equal(t, []string{"a", "b"}, names(result))
	assert.Equal(t, 2, result.ExcludedCount)
	assert.Nil(t, result.Stores[0].Distance)
}

func TestRankStores_TiesKeepInputOrder(t *testing.T) {
	stores := []*entity.Store{
		newStore("first", 37.50, 127.00),
		newStore("second", 37.50, 127.00),
		newStore("third", 37.50, 127.00),
	}

	result := RankStores(&entity.Location{Latitude: 37.4, Longitude: 127.0}, stores)

	assert.Equal(t, []string{"first", "second", "third"}, names(result))
}

func TestRankStores_DoesNotMutateInput(t *testing.T) {
	store := newStore("a", 37.50, 127.00)

	result := RankStores(&entity.Location{Latitude: 37.4, Longitude: 127.0}, []*entity.Store{store})
	*result.Stores[0].Latitude = 0

	assert.Equal(t, 37.50, *store.Latitude)
}

func TestNearbyStores_TruncatesToN(t *testing.T) {
	stores := []*entity.Store{
		newStore("far", 37.60, 127.10),
		newStore("near", 37.50, 127.00),
		newStore("mid", 37.55, 127.05),
		newStore("farthest", 37.70, 127.20),
		newStore("none"),
	}

	result := NearbyStores(&entity.Location{Latitude: 37.49, Longitude: 126.99}, stores, 3)

	assert.Equal(t, []string{"near", "mid", "far"}, names(result))
	assert.Equal(t, 1, result.ExcludedCount)
}

func TestNearbyStores_UnrankedIsNotTruncated(t *testing.T) {
	stores := []*entity.Store{newStore("a"), newStore("b"), newStore("c"), newStore("d")}

	result := NearbyStores(nil, stores, 3)

	assert.Len(t, result.Stores, 4)
}

func TestWithinRadius(t *testing.T) {
	stores := []*entity.Store{
		newStore("near", 37.5651, 126.9895),
		newStore("far", 37.4563, 126.7052),
	}
	center := entity.Location{Latitude: 37.5665, Longitude: 126.9780}

	result := WithinRadius(RankStores(&center, stores), center, 5)

	assert.Equal(t, []string{"near"}, names(result))
}

func TestWithinRadius_PassesThroughUnranked(t *testing.T) {
	stores := []*entity.Store{newStore("a")}
	center := entity.Location{Latitude: 37.5665, Longitude: 126.9780}

	result := WithinRadius(RankStores(nil, stores), center, 1)

	assert.Len(t, result.Stores, 1)
}
