package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"virtue/internal/domain"
	"virtue/internal/favorites"
)

// syncPollInterval is how often the UI re-reads engine state so that
// background refreshes show up without a keypress.
const syncPollInterval = 2 * time.Second

func initializeCmd(svc *favorites.Service) tea.Cmd {
	return func() tea.Msg {
		// Initialize never fails; degraded mode is detectable by probing
		// the backend through a refresh afterwards.
		svc.Initialize(context.Background())
		return favoritesLoadedMsg{favorites: svc.Favorites()}
	}
}

func loadStreamersCmd(client domain.StreamersClient) tea.Cmd {
	return func() tea.Msg {
		streamers, err := client.ListStreamers(context.Background())
		if err != nil {
			return streamersFailedMsg{err: err}
		}
		return streamersLoadedMsg{streamers: streamers}
	}
}

func addFavoriteCmd(svc *favorites.Service, fav domain.Favorite) tea.Cmd {
	return func() tea.Msg {
		err := svc.Add(context.Background(), fav)
		return mutationDoneMsg{op: "add", name: fav.StreamerHrName, err: err}
	}
}

func removeFavoriteCmd(svc *favorites.Service, streamerUUID, name string) tea.Cmd {
	return func() tea.Msg {
		err := svc.Remove(context.Background(), streamerUUID)
		return mutationDoneMsg{op: "remove", name: name, err: err}
	}
}

func clearAllCmd(svc *favorites.Service) tea.Cmd {
	return func() tea.Msg {
		err := svc.ClearAll(context.Background())
		return mutationDoneMsg{op: "clear", err: err}
	}
}

func refreshCmd(svc *favorites.Service) tea.Cmd {
	return func() tea.Msg {
		err := svc.Refresh(context.Background())
		return refreshDoneMsg{err: err, at: time.Now()}
	}
}

func pollCmd() tea.Cmd {
	return tea.Tick(syncPollInterval, func(time.Time) tea.Msg {
		return syncPollMsg{}
	})
}
