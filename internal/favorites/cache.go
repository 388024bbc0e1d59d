package favorites

import (
	"sync"

	"virtue/internal/domain"
)

// Cache is the in-memory favorites collection consumers read from.
// Insertion order is preserved; a wholesale replace adopts the backend's
// order entirely. All mutation goes through the Service.
type Cache struct {
	mu   sync.RWMutex
	favs []domain.Favorite
}

// NewCache constructs an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

// Snapshot returns a copy of the current collection.
//
// Callers can safely modify the returned slice without affecting the cache.
func (c *Cache) Snapshot() []domain.Favorite {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp := make([]domain.Favorite, len(c.favs))
	copy(cp, c.favs)
	return cp
}

// ReplaceAll swaps the whole collection for favs.
func (c *Cache) ReplaceAll(favs []domain.Favorite) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := make([]domain.Favorite, len(favs))
	copy(cp, favs)
	c.favs = cp
}

// Insert appends fav. Inserting an already-present streamer UUID is a no-op.
func (c *Cache) Insert(fav domain.Favorite) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, f := range c.favs {
		if f.StreamerUUID == fav.StreamerUUID {
			return
		}
	}
	c.favs = append(c.favs, fav)
}

// RemoveByKey removes the favorite with the given streamer UUID.
// Reports whether a record was removed.
func (c *Cache) RemoveByKey(streamerUUID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, f := range c.favs {
		if f.StreamerUUID == streamerUUID {
			c.favs = append(c.favs[:i], c.favs[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateByKey applies a partial update to the favorite with the given
// streamer UUID. Reports whether a record was found.
func (c *Cache) UpdateByKey(streamerUUID string, upd domain.FavoriteUpdate) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.favs {
		if c.favs[i].StreamerUUID == streamerUUID {
			upd.Apply(&c.favs[i])
			return true
		}
	}
	return false
}

// Contains reports whether a favorite with the given streamer UUID is held.
func (c *Cache) Contains(streamerUUID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, f := range c.favs {
		if f.StreamerUUID == streamerUUID {
			return true
		}
	}
	return false
}

// Len returns the number of cached favorites.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.favs)
}
