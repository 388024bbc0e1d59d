package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFavoriteAlive(t *testing.T) {
	assert.True(t, Favorite{IsAlive: "true"}.Alive())
	assert.False(t, Favorite{IsAlive: "false"}.Alive())
	assert.False(t, Favorite{}.Alive())
}

func TestStampAddedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	f := Favorite{StreamerUUID: "u1"}
	f.StampAddedAt(now)
	assert.Equal(t, "2025-06-01T12:00:00Z", f.AddedAt)

	// An existing stamp is kept
	f.StampAddedAt(now.Add(time.Hour))
	assert.Equal(t, "2025-06-01T12:00:00Z", f.AddedAt)
}

func TestFavoriteUpdateApply(t *testing.T) {
	f := Favorite{
		StreamerUUID:   "u1",
		StreamerHrName: "alpha",
		StreamerType:   "obs",
		IsAlive:        "true",
	}

	name := "renamed"
	alive := "false"
	FavoriteUpdate{StreamerHrName: &name, IsAlive: &alive}.Apply(&f)

	assert.Equal(t, "renamed", f.StreamerHrName)
	assert.Equal(t, "false", f.IsAlive)
	assert.Equal(t, "obs", f.StreamerType)
	assert.Equal(t, "u1", f.StreamerUUID)
}

func TestStreamerAsFavorite(t *testing.T) {
	s := Streamer{
		StreamerUUID:       "u1",
		StreamerHrName:     "alpha",
		StreamerType:       "obs",
		ConfigTemplateName: "hd",
		ComputeUnitIP:      "10.0.0.5",
		IsAlive:            "true",
		IPAddress:          "192.168.1.9",
	}

	f := s.AsFavorite()
	assert.Equal(t, "u1", f.StreamerUUID)
	assert.Equal(t, "alpha", f.StreamerHrName)
	assert.Equal(t, "hd", f.ConfigTemplateName)
	assert.Equal(t, "10.0.0.5", f.ComputeUnitIP)
	assert.True(t, f.Alive())
	assert.Empty(t, f.AddedAt, "stamping happens on add, not conversion")
}
