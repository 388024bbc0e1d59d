package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"virtue/internal/tui/styles"
)

// Layout constants for the record list panel
const (
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" / "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// Row is one displayable record in a RecordList
type Row struct {
	UUID      string
	Title     string
	Subtitle  string
	Alive     bool
	Favorited bool
}

// RecordList is a scrollable, filterable list of records.
// Filtering matches row titles with sahilm/fuzzy.
type RecordList struct {
	rows  []Row
	title string

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into rows
}

// NewRecordList creates a new record list with the given panel title
func NewRecordList(title string) *RecordList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &RecordList{
		title:       title,
		filterInput: ti,
	}
}

// SetRows replaces the list contents, keeping the cursor on the same UUID
// when it survives the swap.
func (l *RecordList) SetRows(rows []Row) {
	var selectedUUID string
	if r, ok := l.Selected(); ok {
		selectedUUID = r.UUID
	}

	l.rows = rows
	l.applyFilter()

	l.cursor = 0
	if selectedUUID != "" {
		for i := 0; i < l.Count(); i++ {
			if l.rows[l.mapIndex(i)].UUID == selectedUUID {
				l.cursor = i
				break
			}
		}
	}
	l.ensureVisible()
}

func (l *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if !l.focused {
		return l, nil
	}

	// Typing mode: route keys to the filter input
	if l.filterActive && l.filterInput.Focused() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				l.ClearFilter()
				return l, nil
			case "enter":
				// Accept filter, blur input to allow navigation
				l.filterInput.Blur()
				return l, nil
			case "backspace":
				if l.filterInput.Value() == "" {
					l.ClearFilter()
					return l, nil
				}
			}
		}

		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		l.cursor = 0
		l.offset = 0
		return l, cmd
	}

	// Navigation mode with an accepted filter
	if l.filterActive {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				l.ClearFilter()
				return l, nil
			case "/":
				l.filterInput.Focus()
				return l, nil
			}
		}
	}

	count := l.Count()
	if count == 0 {
		return l, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			if l.cursor < count-1 {
				l.cursor++
				l.ensureVisible()
			}
		case "k", "up":
			if l.cursor > 0 {
				l.cursor--
				l.ensureVisible()
			}
		case "g":
			l.cursor = 0
			l.offset = 0
		case "G":
			l.cursor = count - 1
			l.ensureVisible()
		case "ctrl+d":
			l.cursor += l.maxVisible / 2
			if l.cursor >= count {
				l.cursor = count - 1
			}
			l.ensureVisible()
		case "ctrl+u":
			l.cursor -= l.maxVisible / 2
			if l.cursor < 0 {
				l.cursor = 0
			}
			l.ensureVisible()
		}
	}

	return l, nil
}

func (l *RecordList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}

	content := l.renderContent()
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(l.width - frameW).
		Height(l.height - frameH).
		Render(content)
}

func (l *RecordList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

func (l *RecordList) SetFocused(focused bool) { l.focused = focused }
func (l *RecordList) IsFocused() bool         { return l.focused }
func (l *RecordList) SetTitle(title string)   { l.title = title }

// Selected returns the row under the cursor
func (l *RecordList) Selected() (Row, bool) {
	count := l.Count()
	if count == 0 || l.cursor >= count {
		return Row{}, false
	}
	return l.rows[l.mapIndex(l.cursor)], true
}

// SelectUUID moves the cursor to the row with the given UUID.
// Reports whether the row is currently visible.
func (l *RecordList) SelectUUID(uuid string) bool {
	for i := 0; i < l.Count(); i++ {
		if l.rows[l.mapIndex(i)].UUID == uuid {
			l.cursor = i
			l.ensureVisible()
			return true
		}
	}
	return false
}

// Count returns the number of visible (possibly filtered) rows
func (l *RecordList) Count() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.rows)
}

// ToggleFilter activates the filter input
func (l *RecordList) ToggleFilter() {
	l.filterActive = true
	l.filterInput.Focus()
	l.recalcMaxVisible()
}

// IsFilterTyping returns true if filter is active AND input is focused
func (l *RecordList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// IsFiltering returns true if filter mode is active
func (l *RecordList) IsFiltering() bool { return l.filterActive }

// ClearFilter deactivates the filter and shows all rows
func (l *RecordList) ClearFilter() {
	l.filterActive = false
	l.filterQuery = ""
	l.filteredIdx = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
}

// Internal methods

func (l *RecordList) recalcMaxVisible() {
	interiorHeight := l.height - BorderHeight
	l.maxVisible = interiorHeight - ScrollIndicatorLines - 1 // -1 for title
	if l.filterActive {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *RecordList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *RecordList) applyFilter() {
	query := l.filterInput.Value()
	l.filterQuery = query

	if !l.filterActive || query == "" {
		l.filteredIdx = nil
		return
	}

	titles := make([]string, len(l.rows))
	for i, r := range l.rows {
		titles[i] = strings.ToLower(r.Title)
	}

	matches := fuzzy.Find(strings.ToLower(query), titles)

	l.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
	}
}

func (l *RecordList) mapIndex(i int) int {
	if l.filteredIdx != nil && i < len(l.filteredIdx) {
		return l.filteredIdx[i]
	}
	return i
}

// Rendering

func (l *RecordList) renderContent() string {
	itemWidth := l.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(l.title, itemWidth))

	count := l.Count()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render("No records")
		if l.filterActive && l.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		content := titleLine + "\n" + " " + "\n" + emptyMsg + "\n" + " "
		if l.filterActive {
			content += "\n" + l.renderFilterBar()
		}
		return content
	}

	var lines []string

	end := l.offset + l.maxVisible
	if end > count {
		end = count
	}

	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.rows[l.mapIndex(i)], i == l.cursor, itemWidth))
	}

	// Reserve space for header and footer even when empty so the layout
	// never shifts while scrolling
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer

	if l.filterActive {
		content += "\n" + l.renderFilterBar()
	}

	return content
}

func (l *RecordList) renderRow(r Row, selected bool, width int) string {
	var liveChar string
	var liveFg = styles.DimGray
	if r.Alive {
		liveChar = styles.AliveChar
		liveFg = styles.Green
	} else {
		liveChar = styles.DeadChar
	}

	favChar := " "
	favFg := styles.Accent
	if r.Favorited {
		favChar = styles.FavChar
	}

	// Available space: width - liveness(1) - fav(1) - spaces(2) - margins(2)
	availableForTitle := width - 6
	if availableForTitle < 5 {
		availableForTitle = 5
	}

	title := r.Title
	if r.Subtitle != "" {
		title = fmt.Sprintf("%s · %s", r.Title, r.Subtitle)
	}
	title = styles.Truncate(title, availableForTitle)

	parts := []styles.RowPart{
		{Text: liveChar, Foreground: &liveFg},
		{Text: " " + favChar, Foreground: &favFg},
		{Text: " " + title, Foreground: nil},
	}

	return styles.RenderListRow(parts, selected, width)
}

func (l *RecordList) renderFilterBar() string {
	input := l.filterInput.View()

	countStr := ""
	if l.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", l.Count(), len(l.rows)))
	}

	return input + countStr
}
