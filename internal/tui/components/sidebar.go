package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"virtue/internal/tui/styles"
)

// Section identifies a console view
type Section int

const (
	SectionFavorites Section = iota
	SectionStreamers
)

var sectionNames = []string{"Favorites", "Streamers"}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[int(s)]
	}
	return "Unknown"
}

// Sidebar is the section navigation panel
type Sidebar struct {
	cursor  int
	counts  map[Section]int
	focused bool
	width   int
	height  int
}

// NewSidebar creates a new sidebar component
func NewSidebar() *Sidebar {
	return &Sidebar{counts: make(map[Section]int)}
}

func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	if !s.focused {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			if s.cursor < len(sectionNames)-1 {
				s.cursor++
			}
		case "k", "up":
			if s.cursor > 0 {
				s.cursor--
			}
		}
	}

	return s, nil
}

func (s *Sidebar) View() string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}

	itemWidth := s.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	content := styles.TitleStyle.Render(styles.Truncate("virtue", itemWidth)) + "\n \n"

	for i, name := range sectionNames {
		label := name
		if count, ok := s.counts[Section(i)]; ok {
			label = fmt.Sprintf("%s (%d)", name, count)
		}
		label = styles.Truncate(label, itemWidth-2)

		parts := []styles.RowPart{{Text: label, Foreground: nil}}
		content += styles.RenderListRow(parts, i == s.cursor, itemWidth) + "\n"
	}

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(s.width - frameW).
		Height(s.height - frameH).
		Render(content)
}

func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Sidebar) SetFocused(focused bool) { s.focused = focused }
func (s *Sidebar) IsFocused() bool         { return s.focused }

// Selected returns the section under the cursor
func (s *Sidebar) Selected() Section {
	return Section(s.cursor)
}

// SetCount updates the record count badge for a section
func (s *Sidebar) SetCount(section Section, count int) {
	s.counts[section] = count
}
