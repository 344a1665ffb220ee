package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/mo"
)

// Options configure the TUI.
type Options struct {
	Source     catalog.Source
	Resolver   action.Resolver
	Dispatcher *action.Dispatcher

	// TitleID opens the title directly, skipping the search.
	TitleID mo.Option[string]
	// Query is searched right away when set.
	Query string
	// Channel is opened by the join key.
	Channel string

	// SyncURL and SyncPath enable a background catalog sync.
	SyncURL  string
	SyncPath string
}

// Run starts the TUI and blocks until it exits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
