package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewPrinter
const (
	ThemeDefault = "default"
	ThemePlain   = "plain"
)

// Themes lists the valid theme names
var Themes = []string{ThemeDefault, ThemePlain}

// Styles for the text elements the game prints
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Win     lipgloss.Style
	Loss    lipgloss.Style
	Tie     lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Heading: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Loss: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Tie: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// profileFor maps a theme onto a terminal color profile. ok is false when
// the renderer should detect the profile from its output.
func profileFor(theme string) (profile termenv.Profile, ok bool, err error) {
	switch theme {
	case "", ThemeDefault:
		return 0, false, nil
	case ThemePlain:
		return termenv.Ascii, true, nil
	default:
		return 0, false, fmt.Errorf("unknown theme %q", theme)
	}
}
