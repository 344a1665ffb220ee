package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/provider"
)

func (b *statefulBubble) Init() tea.Cmd {
	var sync tea.Cmd
	if b.options.SyncURL != "" && b.options.SyncPath != "" {
		sync = provider.SyncCmd(b.options.SyncURL, b.options.SyncPath)
	}

	if id, ok := b.options.TitleID.Get(); ok {
		b.setState(loadingState)
		return tea.Batch(b.startLoading("Loading title"), b.loadTitle(id), sync)
	}

	if b.options.Query != "" {
		b.inputC.SetValue(b.options.Query)
		b.setState(searchState)
		b.newState(loadingState)
		return tea.Batch(b.startLoading(fmt.Sprintf("Searching %q", b.options.Query)), b.searchTitles(b.options.Query), sync)
	}

	b.setState(searchState)
	return tea.Batch(textinput.Blink, sync)
}
