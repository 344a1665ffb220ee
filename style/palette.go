package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mauve    = lipgloss.Color("#cba6f7")
	Peach    = lipgloss.Color("#fab387")
	Teal     = lipgloss.Color("#94e2d5")
	Lavender = lipgloss.Color("#b4befe")
)

var (
	AccentColor = Mauve
	ErrorColor  = lipgloss.Color("#f38ba8")
)
