package favorites

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"virtue/internal/domain"
)

// Service orchestrates the favorites cache against the admin backend.
// Mutations are applied optimistically and rolled back when the backend
// rejects them; a periodic refresh replaces the cache with the backend's
// authoritative listing. The local bbolt snapshot is write-behind only:
// a failure to persist never fails an operation.
type Service struct {
	client domain.FavoritesClient
	cache  *Cache
	store  domain.SnapshotStore
	logger *slog.Logger

	clock func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	ticking  bool
}

// NewService creates a new favorites service.
func NewService(client domain.FavoritesClient, store domain.SnapshotStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		cache:  NewCache(),
		store:  store,
		logger: logger,
		clock:  time.Now,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Initialize populates the cache from the backend, falling back to the
// stored snapshot when the backend is unreachable (degraded mode). It never
// fails: worst case the console starts with stale or empty data.
func (s *Service) Initialize(ctx context.Context) error {
	favs, err := s.client.ListFavorites(ctx)
	if err != nil {
		s.logger.Warn("backend unreachable, loading stored snapshot", "error", err)
		if stored, ok := s.store.GetFavorites(); ok {
			s.cache.ReplaceAll(stored)
			s.logger.Info("started in degraded mode", "count", len(stored))
		}
		return nil
	}

	s.supersede(favs)
	s.logger.Info("loaded favorites", "count", len(favs))
	return nil
}

// Add favorites a streamer. Adding an already-favorited streamer UUID is a
// no-op. On backend rejection the optimistic insert is rolled back and the
// error returned.
func (s *Service) Add(ctx context.Context, fav domain.Favorite) error {
	if s.cache.Contains(fav.StreamerUUID) {
		s.logger.Debug("already favorited", "streamerUuid", fav.StreamerUUID)
		return nil
	}

	fav.StampAddedAt(s.clock())

	err := s.run(ctx, mutation{
		name:  "add",
		apply: func() { s.cache.Insert(fav) },
		confirm: func(ctx context.Context) error {
			return s.client.CreateFavorite(ctx, fav)
		},
		revert: func() { s.cache.RemoveByKey(fav.StreamerUUID) },
	})
	if err != nil {
		return err
	}

	s.logger.Info("added favorite", "streamerUuid", fav.StreamerUUID, "name", fav.StreamerHrName)
	return nil
}

// Remove unfavorites a streamer. On backend rejection the cache is restored
// to its pre-removal state and the error returned.
func (s *Service) Remove(ctx context.Context, streamerUUID string) error {
	snapshot := s.cache.Snapshot()

	err := s.run(ctx, mutation{
		name:     "remove",
		snapshot: snapshot,
		apply:    func() { s.cache.RemoveByKey(streamerUUID) },
		confirm: func(ctx context.Context) error {
			return s.client.DeleteFavorite(ctx, streamerUUID)
		},
		revert: func() { s.cache.ReplaceAll(snapshot) },
	})
	if err != nil {
		return err
	}

	s.logger.Info("removed favorite", "streamerUuid", streamerUUID)
	return nil
}

// Update applies a partial update to a cached favorite. The backend has no
// favorite-update endpoint, so the change is local-only; it still lands in
// the persisted snapshot. Reports whether the record was found.
func (s *Service) Update(streamerUUID string, upd domain.FavoriteUpdate) bool {
	if !s.cache.UpdateByKey(streamerUUID, upd) {
		return false
	}
	s.persist()
	s.logger.Debug("updated favorite locally", "streamerUuid", streamerUUID)
	return true
}

// ClearAll removes every favorite. Recovery is all-or-nothing: if any
// backend delete fails, the full pre-clear collection is restored and the
// first error returned.
func (s *Service) ClearAll(ctx context.Context) error {
	snapshot := s.cache.Snapshot()
	if len(snapshot) == 0 {
		return nil
	}

	err := s.run(ctx, mutation{
		name:     "clear",
		snapshot: snapshot,
		apply:    func() { s.cache.ReplaceAll(nil) },
		confirm: func(ctx context.Context) error {
			for _, f := range snapshot {
				if err := s.client.DeleteFavorite(ctx, f.StreamerUUID); err != nil {
					return err
				}
			}
			return nil
		},
		revert: func() { s.cache.ReplaceAll(snapshot) },
	})
	if err != nil {
		return err
	}

	s.logger.Info("cleared favorites", "count", len(snapshot))
	return nil
}

// Refresh replaces the cache with the backend's authoritative listing.
// The fetched collection always wins over local state, including optimistic
// entries still awaiting confirmation. On failure the current state is kept.
func (s *Service) Refresh(ctx context.Context) error {
	favs, err := s.client.ListFavorites(ctx)
	if err != nil {
		s.logger.Error("refresh failed", "error", err)
		return err
	}

	s.supersede(favs)
	s.logger.Debug("refreshed favorites", "count", len(favs))
	return nil
}

// IsFavorite reports whether the streamer UUID is currently favorited.
func (s *Service) IsFavorite(streamerUUID string) bool {
	return s.cache.Contains(streamerUUID)
}

// Favorites returns a copy of the current collection in insertion order.
func (s *Service) Favorites() []domain.Favorite {
	return s.cache.Snapshot()
}

// StartAutoRefresh launches the periodic refresh ticker. The ticker runs
// independently of any mutation in flight; Close stops it.
func (s *Service) StartAutoRefresh(interval time.Duration) {
	if interval <= 0 || s.ticking {
		return
	}
	s.ticking = true

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.Refresh(context.Background()); err != nil {
					s.logger.Debug("periodic refresh failed", "error", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the periodic refresh and waits for it to wind down.
func (s *Service) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.ticking {
		<-s.done
	}
}

// persist mirrors the cache into the durable snapshot, best effort.
func (s *Service) persist() {
	if err := s.store.SaveFavorites(s.cache.Snapshot()); err != nil {
		s.logger.Error("failed to persist favorites snapshot", "error", err)
	}
}
