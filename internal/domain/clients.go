package domain

import "context"

// FavoritesClient is the HTTP boundary for the backend favorites collection.
// Calls are single round trips with no retry; retries are the caller's business.
type FavoritesClient interface {
	// ListFavorites returns the full authoritative set.
	ListFavorites(ctx context.Context) ([]Favorite, error)

	// CreateFavorite submits a new record. The backend does not echo its
	// canonical representation back; on success the caller treats the
	// record it submitted as canonical. A duplicate-key rejection counts
	// as success.
	CreateFavorite(ctx context.Context, fav Favorite) error

	// DeleteFavorite removes a record by its streamer UUID.
	DeleteFavorite(ctx context.Context, streamerUUID string) error
}

// StreamersClient provides the fleet listing the console favorites from.
type StreamersClient interface {
	ListStreamers(ctx context.Context) ([]Streamer, error)
}
