package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"virtue/internal/domain"
)

func testFavorites() []domain.Favorite {
	return []domain.Favorite{
		{
			StreamerUUID:   "u1",
			StreamerHrName: "alpha",
			StreamerType:   "obs",
			IsAlive:        "true",
			AddedAt:        "2025-06-01T12:00:00Z",
		},
		{
			StreamerUUID:   "u2",
			StreamerHrName: "beta",
			IsAlive:        "false",
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s, err := NewFavoriteStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetFavorites()
	assert.False(t, ok, "fresh store holds nothing")

	require.NoError(t, s.SaveFavorites(testFavorites()))

	got, ok := s.GetFavorites()
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].StreamerHrName)
	assert.Equal(t, "2025-06-01T12:00:00Z", got[0].AddedAt)
}

func TestStoreOverwrite(t *testing.T) {
	s, err := NewFavoriteStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveFavorites(testFavorites()))
	require.NoError(t, s.SaveFavorites([]domain.Favorite{{StreamerUUID: "u9"}}))

	got, ok := s.GetFavorites()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "u9", got[0].StreamerUUID)
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFavoriteStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveFavorites(testFavorites()))
	require.NoError(t, s.Close())

	s2, err := NewFavoriteStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	got, ok := s2.GetFavorites()
	require.True(t, ok)
	assert.Len(t, got, 2)
}

func TestStoreDiscardsCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFavoriteStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveFavorites(testFavorites()))
	require.NoError(t, s.Close())

	// Scribble over the stored payload
	db, err := bolt.Open(filepath.Join(dir, "virtue.db"), 0600, &bolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFavorites).Put(keySnapshot, []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	s2, err := NewFavoriteStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	got, ok := s2.GetFavorites()
	assert.False(t, ok, "corrupt snapshot reads as absent")
	assert.Nil(t, got)

	// The corrupt entry is gone; a fresh save works again
	require.NoError(t, s2.SaveFavorites(testFavorites()))
	got, ok = s2.GetFavorites()
	require.True(t, ok)
	assert.Len(t, got, 2)
}

func TestStoreMemoryOnly(t *testing.T) {
	s, err := NewFavoriteStore("")
	require.NoError(t, err)

	require.NoError(t, s.SaveFavorites(testFavorites()))
	_, ok := s.GetFavorites()
	assert.False(t, ok)
	assert.NoError(t, s.Close())
}

func TestStoreSaveEmpty(t *testing.T) {
	s, err := NewFavoriteStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveFavorites(nil))
	got, ok := s.GetFavorites()
	require.True(t, ok, "an empty save is a real snapshot, not absence")
	assert.Empty(t, got)
}
