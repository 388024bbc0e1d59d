package favorites

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtue/internal/domain"
)

func TestCacheInsert(t *testing.T) {
	c := NewCache()

	c.Insert(fav("u1", "alpha"))
	c.Insert(fav("u2", "beta"))
	assert.Equal(t, 2, c.Len())

	// Duplicate UUID is dropped
	c.Insert(fav("u1", "alpha again"))
	assert.Equal(t, 2, c.Len())

	favs := c.Snapshot()
	assert.Equal(t, "alpha", favs[0].StreamerHrName)
}

func TestCacheOrder(t *testing.T) {
	c := NewCache()
	for i := 0; i < 5; i++ {
		c.Insert(fav(fmt.Sprintf("u%d", i), fmt.Sprintf("name%d", i)))
	}

	favs := c.Snapshot()
	require.Len(t, favs, 5)
	for i, f := range favs {
		assert.Equal(t, fmt.Sprintf("u%d", i), f.StreamerUUID)
	}
}

func TestCacheRemoveByKey(t *testing.T) {
	c := NewCache()
	c.Insert(fav("u1", "alpha"))
	c.Insert(fav("u2", "beta"))
	c.Insert(fav("u3", "gamma"))

	assert.True(t, c.RemoveByKey("u2"))
	assert.False(t, c.RemoveByKey("u2"))
	assert.Equal(t, 2, c.Len())

	favs := c.Snapshot()
	assert.Equal(t, "u1", favs[0].StreamerUUID)
	assert.Equal(t, "u3", favs[1].StreamerUUID)
}

func TestCacheReplaceAll(t *testing.T) {
	c := NewCache()
	c.Insert(fav("u1", "alpha"))

	c.ReplaceAll([]domain.Favorite{fav("u2", "beta"), fav("u3", "gamma")})
	assert.False(t, c.Contains("u1"))
	assert.True(t, c.Contains("u2"))
	assert.Equal(t, 2, c.Len())

	c.ReplaceAll(nil)
	assert.Equal(t, 0, c.Len())
}

func TestCacheSnapshotIsACopy(t *testing.T) {
	c := NewCache()
	c.Insert(fav("u1", "alpha"))

	snap := c.Snapshot()
	snap[0].StreamerHrName = "mutated"

	assert.Equal(t, "alpha", c.Snapshot()[0].StreamerHrName)
}

func TestCacheUpdateByKey(t *testing.T) {
	c := NewCache()
	c.Insert(fav("u1", "alpha"))

	name := "renamed"
	require.True(t, c.UpdateByKey("u1", domain.FavoriteUpdate{StreamerHrName: &name}))
	assert.Equal(t, "renamed", c.Snapshot()[0].StreamerHrName)

	assert.False(t, c.UpdateByKey("missing", domain.FavoriteUpdate{StreamerHrName: &name}))
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			uuid := fmt.Sprintf("u%d", n)
			c.Insert(fav(uuid, uuid))
			c.Contains(uuid)
			c.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, c.Len())
}
