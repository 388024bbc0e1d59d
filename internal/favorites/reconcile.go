package favorites

import (
	"context"

	"virtue/internal/domain"
)

// mutation is one optimistic cache change awaiting backend confirmation.
// apply runs against the cache first, confirm is the backend round trip,
// revert restores the pre-mutation state when confirmation fails. The
// Service runs the three as a single logical transaction.
type mutation struct {
	name     string
	snapshot []domain.Favorite
	apply    func()
	confirm  func(ctx context.Context) error
	revert   func()
}

// run applies the mutation optimistically, waits for confirmation, and
// reverts on failure. Returns the confirmation error, if any.
func (s *Service) run(ctx context.Context, m mutation) error {
	m.apply()

	if err := m.confirm(ctx); err != nil {
		s.logger.Warn("mutation rejected, rolling back", "op", m.name, "error", err)
		m.revert()
		return err
	}

	s.persist()
	return nil
}

// supersede applies the refresh-wins rule: a completed backend listing
// replaces the cache unconditionally, dropping any optimistic entries that
// were still awaiting confirmation. A later periodic refresh re-includes any
// entry whose backend round trip did land.
func (s *Service) supersede(favs []domain.Favorite) {
	s.cache.ReplaceAll(favs)
	s.persist()
}
