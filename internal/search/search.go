package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"virtue/internal/domain"
)

// Service ranks cached records against a filter query.
// Matching is local only; nothing here touches the backend.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new search service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// FilterFavorites returns favorites whose display name or UUID fuzzy-matches
// query, best matches first. An empty query returns favs unchanged.
func (s *Service) FilterFavorites(query string, favs []domain.Favorite) []domain.Favorite {
	if strings.TrimSpace(query) == "" {
		return favs
	}

	keys := make([]string, len(favs))
	for i, f := range favs {
		keys[i] = f.StreamerHrName + " " + f.StreamerUUID
	}

	idx := rankIndexes(query, keys)
	results := make([]domain.Favorite, 0, len(idx))
	for _, i := range idx {
		results = append(results, favs[i])
	}

	s.logger.Debug("filtered favorites", "query", query, "results", len(results))
	return results
}

// FilterStreamers returns fleet entries whose display name or UUID
// fuzzy-matches query, best matches first.
func (s *Service) FilterStreamers(query string, streamers []domain.Streamer) []domain.Streamer {
	if strings.TrimSpace(query) == "" {
		return streamers
	}

	keys := make([]string, len(streamers))
	for i, st := range streamers {
		keys[i] = st.StreamerHrName + " " + st.StreamerUUID
	}

	idx := rankIndexes(query, keys)
	results := make([]domain.Streamer, 0, len(idx))
	for _, i := range idx {
		results = append(results, streamers[i])
	}

	s.logger.Debug("filtered streamers", "query", query, "results", len(results))
	return results
}

// rankIndexes fuzzy-matches query against keys and returns the original
// indexes of the matches, best (lowest distance) first.
func rankIndexes(query string, keys []string) []int {
	matches := fuzzy.RankFindNormalizedFold(query, keys)

	// Lower distance is better
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.OriginalIndex)
	}
	return idx
}
