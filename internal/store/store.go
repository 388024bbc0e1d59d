package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"virtue/internal/domain"
)

// Bucket and key names
var (
	bucketFavorites = []byte("favorites")
	keySnapshot     = []byte("snapshot")
)

// FavoriteStore implements domain.SnapshotStore using BoltDB.
// The whole favorites collection lives under one key and is overwritten
// wholesale on every save.
type FavoriteStore struct {
	db *bolt.DB
}

// NewFavoriteStore opens (or creates) the snapshot database under dir.
// An empty dir selects memory-only mode: saves succeed but nothing survives
// a restart.
func NewFavoriteStore(dir string) (*FavoriteStore, error) {
	if dir == "" {
		return &FavoriteStore{}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "virtue.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFavorites)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &FavoriteStore{db: db}, nil
}

func (s *FavoriteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveFavorites overwrites the stored snapshot with favs
func (s *FavoriteStore) SaveFavorites(favs []domain.Favorite) error {
	if s.db == nil {
		return nil // Memory-only mode
	}

	data, err := json.Marshal(favs)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		return b.Put(keySnapshot, data)
	})
}

// GetFavorites returns the stored snapshot. A malformed payload is deleted
// and reported as absent rather than surfaced, so a corrupt snapshot can
// never wedge startup.
func (s *FavoriteStore) GetFavorites() ([]domain.Favorite, bool) {
	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		if b == nil {
			return nil
		}
		if v := b.Get(keySnapshot); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil, false
	}

	var favs []domain.Favorite
	if err := json.Unmarshal(data, &favs); err != nil {
		s.discardCorrupt()
		return nil, false
	}

	return favs, true
}

// discardCorrupt drops an unreadable snapshot entry
func (s *FavoriteStore) discardCorrupt() {
	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		if b != nil {
			b.Delete(keySnapshot)
		}
		return nil
	})
}
