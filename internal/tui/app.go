package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"virtue/internal/domain"
	"virtue/internal/favorites"
	"virtue/internal/search"
	"virtue/internal/tui/components"
	"virtue/internal/tui/styles"
)

// Layout proportions
const (
	SidebarPercent = 22
	MinPaneWidth   = 15

	// Single status line at the bottom
	ChromeHeight = 1
)

// Model is the main Bubble Tea model for the console
type Model struct {
	favSvc    *favorites.Service
	streamers domain.StreamersClient
	searchSvc *search.Service

	keys KeyMap

	sidebar    *components.Sidebar
	favList    *components.RecordList
	streamList *components.RecordList
	modal      components.ConfirmModal

	// Global search state
	searching   bool
	searchInput textinput.Model

	// Data mirrors for global search
	favs  []domain.Favorite
	fleet []domain.Streamer

	width  int
	height int

	status   string
	statusOK bool
	lastSync time.Time
}

// NewModel creates the console model
func NewModel(favSvc *favorites.Service, streamers domain.StreamersClient, searchSvc *search.Service) Model {
	si := textinput.New()
	si.Placeholder = "search everywhere..."
	si.Prompt = "search: "
	si.PromptStyle = styles.FilterPromptStyle
	si.TextStyle = styles.FilterStyle

	sidebar := components.NewSidebar()
	sidebar.SetFocused(true)

	return Model{
		favSvc:      favSvc,
		streamers:   streamers,
		searchSvc:   searchSvc,
		keys:        DefaultKeyMap(),
		sidebar:     sidebar,
		favList:     components.NewRecordList("Favorite Streamers"),
		streamList:  components.NewRecordList("Fleet"),
		modal:       components.NewConfirmModal(),
		searchInput: si,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		initializeCmd(m.favSvc),
		loadStreamersCmd(m.streamers),
		pollCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case favoritesLoadedMsg:
		m.favs = msg.favorites
		m.syncRows()
		return m, nil

	case streamersLoadedMsg:
		m.fleet = msg.streamers
		m.syncRows()
		return m, nil

	case streamersFailedMsg:
		m.setStatus(fmt.Sprintf("fleet listing failed: %v", msg.err), false)
		return m, nil

	case mutationDoneMsg:
		m.favs = m.favSvc.Favorites()
		m.syncRows()
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("%s failed, change rolled back: %v", msg.op, msg.err), false)
		} else {
			switch msg.op {
			case "add":
				m.setStatus(fmt.Sprintf("added %s to favorites", msg.name), true)
			case "remove":
				m.setStatus(fmt.Sprintf("removed %s from favorites", msg.name), true)
			case "clear":
				m.setStatus("cleared all favorites", true)
			}
		}
		return m, nil

	case refreshDoneMsg:
		m.favs = m.favSvc.Favorites()
		m.syncRows()
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("refresh failed: %v", msg.err), false)
		} else {
			m.lastSync = msg.at
			m.setStatus("refreshed", true)
		}
		return m, nil

	case syncPollMsg:
		// Pick up whatever the periodic engine refresh did
		m.favs = m.favSvc.Favorites()
		m.syncRows()
		return m, pollCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal swallows all input while visible
	if m.modal.IsVisible() {
		var confirmed, dismissed bool
		m.modal, confirmed, dismissed = m.modal.Update(msg)
		if dismissed && confirmed {
			return m, clearAllCmd(m.favSvc)
		}
		return m, nil
	}

	// Global search input
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.jumpToMatch(m.searchInput.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	// In-list filter typing takes priority over global bindings
	if m.activeList().IsFilterTyping() {
		_, cmd := m.activeList().Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPane):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(refreshCmd(m.favSvc), loadStreamersCmd(m.streamers))

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if !m.sidebar.IsFocused() {
			m.activeList().ToggleFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		if len(m.favs) > 0 {
			m.modal.Show("Clear all favorites?",
				fmt.Sprintf("%d favorites will be removed from the backend.", len(m.favs)))
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.streamList.IsFocused() {
			if row, ok := m.streamList.Selected(); ok {
				return m, m.toggleFavorite(row)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if m.favList.IsFocused() {
			if row, ok := m.favList.Selected(); ok {
				return m, removeFavoriteCmd(m.favSvc, row.UUID, row.Title)
			}
		}
		return m, nil
	}

	// Route navigation to the focused pane
	if m.sidebar.IsFocused() {
		_, cmd := m.sidebar.Update(msg)
		return m, cmd
	}
	_, cmd := m.activeList().Update(msg)
	return m, cmd
}

// toggleFavorite adds or removes the fleet entry under the cursor
func (m *Model) toggleFavorite(row components.Row) tea.Cmd {
	if m.favSvc.IsFavorite(row.UUID) {
		return removeFavoriteCmd(m.favSvc, row.UUID, row.Title)
	}
	for _, st := range m.fleet {
		if st.StreamerUUID == row.UUID {
			return addFavoriteCmd(m.favSvc, st.AsFavorite())
		}
	}
	return nil
}

// jumpToMatch runs the global search and lands on the best hit
func (m *Model) jumpToMatch(query string) {
	if query == "" {
		return
	}

	if matches := m.searchSvc.FilterFavorites(query, m.favs); len(matches) > 0 {
		m.focusList(m.favList)
		m.favList.SelectUUID(matches[0].StreamerUUID)
		m.setStatus(fmt.Sprintf("jumped to favorite %s", matches[0].StreamerHrName), true)
		return
	}
	if matches := m.searchSvc.FilterStreamers(query, m.fleet); len(matches) > 0 {
		m.focusList(m.streamList)
		m.streamList.SelectUUID(matches[0].StreamerUUID)
		m.setStatus(fmt.Sprintf("jumped to streamer %s", matches[0].StreamerHrName), true)
		return
	}
	m.setStatus(fmt.Sprintf("no match for %q", query), false)
}

// activeList returns the record list for the selected section
func (m *Model) activeList() *components.RecordList {
	if m.sidebar.Selected() == components.SectionStreamers {
		return m.streamList
	}
	return m.favList
}

func (m *Model) cycleFocus() {
	if m.sidebar.IsFocused() {
		m.sidebar.SetFocused(false)
		m.activeList().SetFocused(true)
		return
	}
	m.favList.SetFocused(false)
	m.streamList.SetFocused(false)
	m.sidebar.SetFocused(true)
}

func (m *Model) focusList(l *components.RecordList) {
	m.sidebar.SetFocused(false)
	m.favList.SetFocused(false)
	m.streamList.SetFocused(false)
	l.SetFocused(true)
}

// syncRows rebuilds both lists from the data mirrors
func (m *Model) syncRows() {
	favRows := make([]components.Row, 0, len(m.favs))
	for _, f := range m.favs {
		favRows = append(favRows, components.Row{
			UUID:      f.StreamerUUID,
			Title:     f.StreamerHrName,
			Subtitle:  f.StreamerType,
			Alive:     f.Alive(),
			Favorited: true,
		})
	}
	m.favList.SetRows(favRows)

	fleetRows := make([]components.Row, 0, len(m.fleet))
	for _, st := range m.fleet {
		fleetRows = append(fleetRows, components.Row{
			UUID:      st.StreamerUUID,
			Title:     st.StreamerHrName,
			Subtitle:  st.StreamerType,
			Alive:     st.IsAlive == "true",
			Favorited: m.favSvc.IsFavorite(st.StreamerUUID),
		})
	}
	m.streamList.SetRows(fleetRows)

	m.sidebar.SetCount(components.SectionFavorites, len(favRows))
	m.sidebar.SetCount(components.SectionStreamers, len(fleetRows))
}

func (m *Model) setStatus(text string, ok bool) {
	m.status = text
	m.statusOK = ok
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	sidebarWidth := m.width * SidebarPercent / 100
	if sidebarWidth < MinPaneWidth {
		sidebarWidth = MinPaneWidth
	}
	listWidth := m.width - sidebarWidth
	paneHeight := m.height - ChromeHeight

	m.sidebar.SetSize(sidebarWidth, paneHeight)
	m.favList.SetSize(listWidth, paneHeight)
	m.streamList.SetSize(listWidth, paneHeight)
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading..."
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(),
		m.activeList().View(),
	)

	view := lipgloss.JoinVertical(lipgloss.Left, panes, m.statusLine())

	if m.modal.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modal.View())
	}

	return view
}

func (m Model) statusLine() string {
	if m.searching {
		return m.searchInput.View()
	}

	left := m.status
	style := styles.DimStyle
	if left != "" {
		if m.statusOK {
			style = styles.SuccessStyle
		} else {
			style = styles.ErrorStyle
		}
	} else {
		left = "f: toggle  d: remove  C: clear  r: refresh  /: filter  s: search  q: quit"
	}

	line := style.Render(styles.Truncate(left, m.width-20))

	if !m.lastSync.IsZero() {
		sync := styles.DimStyle.Render("synced " + m.lastSync.Format("15:04:05"))
		gap := m.width - lipgloss.Width(line) - lipgloss.Width(sync)
		if gap > 0 {
			return line + lipgloss.NewStyle().Width(gap).Render("") + sync
		}
	}

	return line
}
