package domain

// SnapshotStore holds the last known favorites collection across restarts.
// It is a degraded-mode fallback, not an authority: writes are best effort
// and a corrupt payload is discarded rather than surfaced.
type SnapshotStore interface {
	// SaveFavorites overwrites the stored snapshot wholesale.
	SaveFavorites(favs []Favorite) error

	// GetFavorites returns the stored snapshot, or ok=false when nothing
	// usable is stored.
	GetFavorites() ([]Favorite, bool)

	Close() error
}
