package styles

import "github.com/charmbracelet/lipgloss"

// Color palette (mutable so a theme can swap it at startup)
var (
	Accent     = lipgloss.Color("#7C3AED")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// ApplyTheme swaps the palette. Unknown names keep the default.
func ApplyTheme(name string) {
	switch name {
	case "amber":
		Accent = lipgloss.Color("#E5A00D")
	case "ocean":
		Accent = lipgloss.Color("#3B82F6")
	}
	rebuild()
}

// Borders
var (
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
)

// Text styles
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	DimStyle      lipgloss.Style
	AccentStyle   lipgloss.Style
	ErrorStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
)

// Filter bar styles
var (
	FilterPromptStyle lipgloss.Style
	FilterStyle       lipgloss.Style
)

// Liveness indicator characters
const (
	AliveChar = "●"
	DeadChar  = "○"
	FavChar   = "★"
)

func rebuild() {
	ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent)

	InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimGray)

	TitleStyle = lipgloss.NewStyle().
		Foreground(White).
		Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
		Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
		Foreground(Accent)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Green)

	FilterPromptStyle = lipgloss.NewStyle().
		Foreground(Accent)

	FilterStyle = lipgloss.NewStyle().
		Foreground(White)
}

func init() {
	rebuild()
}

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// RenderListRow renders a complete list row with uniform background when
// selected. Each part is styled explicitly to avoid ANSI reset code issues.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		result += style.Render(part.Text)
		visibleLen += lipgloss.Width(part.Text)
	}

	// Pad to fill width (subtract 2 for left/right margin)
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(spaces(paddingNeeded))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}
