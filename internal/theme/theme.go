package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the user's theme preference.
type Mode string

const (
	ModeSystem Mode = "system"
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
)

// ParseMode validates a theme mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSystem, ModeLight, ModeDark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q (supported: system, light, dark)", s)
	}
}

// Styles is the render palette used by the CLI surface.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

var (
	darkStyles = Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}

	lightStyles = Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("162")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("25")).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("55")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("130")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("124")).
			Bold(true),
	}
)

// StylesFor returns the palette for a mode. ModeSystem resolves through the
// MEDISCAN_COLOR_SCHEME environment hint and falls back to dark.
func StylesFor(mode Mode) Styles {
	switch mode {
	case ModeLight:
		return lightStyles
	case ModeDark:
		return darkStyles
	default:
		if os.Getenv("MEDISCAN_COLOR_SCHEME") == "light" {
			return lightStyles
		}
		return darkStyles
	}
}
