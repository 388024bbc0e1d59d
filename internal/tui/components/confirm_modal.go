package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"virtue/internal/tui/styles"
)

// ConfirmModal is a yes/no confirmation dialog for destructive operations
type ConfirmModal struct {
	visible bool
	title   string
	message string
}

// NewConfirmModal creates a new confirm modal
func NewConfirmModal() ConfirmModal {
	return ConfirmModal{}
}

// Show displays the modal
func (m *ConfirmModal) Show(title, message string) {
	m.visible = true
	m.title = title
	m.message = message
}

// Hide dismisses the modal
func (m *ConfirmModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m ConfirmModal) IsVisible() bool {
	return m.visible
}

// Update handles input events, returns (modal, confirmed, dismissed)
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, bool, bool) {
	if !m.visible {
		return m, false, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "enter":
			m.Hide()
			return m, true, true
		case "n", "esc":
			m.Hide()
			return m, false, true
		}
	}

	return m, false, false
}

// View renders the confirm modal
func (m ConfirmModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 40

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	messageStyle := lipgloss.NewStyle().
		Foreground(styles.LightGray).
		Width(modalWidth).
		Background(styles.SlateDark)

	hintStyle := lipgloss.NewStyle().
		Foreground(styles.DimGray).
		Width(modalWidth).
		Background(styles.SlateDark)

	spacer := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark).
		Render("")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		spacer,
		messageStyle.Render(m.message),
		spacer,
		hintStyle.Render("y: confirm   n: cancel"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Red).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(content)
}
