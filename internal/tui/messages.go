package tui

import (
	"time"

	"virtue/internal/domain"
)

// favoritesLoadedMsg carries the current favorites collection
type favoritesLoadedMsg struct {
	favorites []domain.Favorite
}

// streamersLoadedMsg carries the fleet listing
type streamersLoadedMsg struct {
	streamers []domain.Streamer
}

// streamersFailedMsg signals the fleet listing could not be fetched
type streamersFailedMsg struct {
	err error
}

// mutationDoneMsg reports the outcome of an engine mutation
type mutationDoneMsg struct {
	op   string
	name string
	err  error
}

// refreshDoneMsg reports the outcome of a manual refresh
type refreshDoneMsg struct {
	err error
	at  time.Time
}

// syncPollMsg re-reads engine state so background refreshes become visible
type syncPollMsg struct{}
