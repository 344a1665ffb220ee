package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/provider"
	"github.com/marquee-cli/marquee/view"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case provider.CatalogSyncedMsg:
		return b, ui.Notify(fmt.Sprintf("%s Catalog updated", icon.Get(icon.Success)))
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			switch b.state {
			case searchState:
				b.inputC.SetValue("")
				return b, cmd
			case detailState:
				if b.view.ViewerOpen() {
					b.dispatch(view.CloseViewer{})
					return b, cmd
				}
			case titlesState:
				b.titlesC.ResetSelected()
			}

			// loading and error states handle back on their own
			if b.state != loadingState && b.state != errorState {
				if b.statesHistory.Len() == 0 {
					return b, tea.Quit
				}
				b.previousState()
				return b, cmd
			}
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case searchState:
		stateCmd = b.updateSearch(msg)
	case titlesState:
		stateCmd = b.updateTitles(msg)
	case detailState:
		stateCmd = b.updateDetail(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) {
			if b.statesHistory.Len() > 0 {
				b.previousState()
				return nil
			}
			return tea.Quit
		}
	case titlesLoadedMsg:
		switch len(msg.titles) {
		case 0:
			b.previousState()
			return ui.Notify(fmt.Sprintf("%s No titles match %q", icon.Get(icon.Fail), msg.query))
		case 1:
			return tea.Batch(b.startLoading("Loading title"), b.loadTitle(msg.titles[0].ID))
		}

		b.titlesC.Title = fmt.Sprintf("Titles - %s", msg.query)
		cmd = b.setTitles(msg.titles)
		b.titlesC.Select(0)
		b.newState(titlesState)
		return cmd
	case titleLoadedMsg:
		b.showTitle(msg.title)
		b.newState(detailState)
		return nil
	case spinner.TickMsg:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return cmd
	}

	return nil
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (cmd tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		query := b.inputC.Value()
		if query == "" {
			return nil
		}

		b.newState(loadingState)
		return tea.Batch(b.startLoading(fmt.Sprintf("Searching %q", query)), b.searchTitles(query))
	}

	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateTitles(msg tea.Msg) (cmd tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.titlesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}

			title := item.internal.(*catalog.Title)
			b.newState(loadingState)
			return tea.Batch(b.startLoading(fmt.Sprintf("Loading %s", title.Name)), b.loadTitle(title.ID))
		}
	}

	b.titlesC, cmd = b.titlesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (cmd tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if b.view.Tab == view.TabEpisodes {
			b.episodesC, cmd = b.episodesC.Update(msg)
		}
		return cmd
	}

	if b.view.ViewerOpen() {
		return b.updateViewer(keyMsg)
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return tea.Quit
	case bubblesKey.Matches(keyMsg, b.keymap.watch):
		return b.act(false)
	case bubblesKey.Matches(keyMsg, b.keymap.download):
		return b.act(true)
	case bubblesKey.Matches(keyMsg, b.keymap.switchTab):
		next := view.TabInfo
		if b.view.Tab == view.TabInfo {
			next = view.TabEpisodes
		}
		b.dispatch(view.SelectTab{Tab: next})
		return nil
	case bubblesKey.Matches(keyMsg, b.keymap.nextSeason), bubblesKey.Matches(keyMsg, b.keymap.prevSeason):
		delta := 1
		if bubblesKey.Matches(keyMsg, b.keymap.prevSeason) {
			delta = -1
		}

		if event, ok := b.view.SeasonStep(b.seasons, delta); ok {
			b.dispatch(event)
			b.episodesC.Select(0)
		}
		return nil
	case bubblesKey.Matches(keyMsg, b.keymap.screenshots):
		if len(b.selectedTitle.Media.Screenshots) == 0 {
			return ui.Notify("No screenshots")
		}
		b.dispatch(view.OpenScreenshot{Index: 0})
		return nil
	case bubblesKey.Matches(keyMsg, b.keymap.join):
		return b.joinChannel()
	}

	if b.view.Tab == view.TabEpisodes {
		b.episodesC, cmd = b.episodesC.Update(msg)
	}
	return cmd
}

func (b *statefulBubble) updateViewer(msg tea.KeyMsg) tea.Cmd {
	shots := b.selectedTitle.Media.Screenshots
	current := b.view.Viewer.OrEmpty()

	switch {
	case bubblesKey.Matches(msg, b.keymap.nextShot):
		b.dispatch(view.OpenScreenshot{Index: (current + 1) % len(shots)})
	case bubblesKey.Matches(msg, b.keymap.prevShot):
		b.dispatch(view.OpenScreenshot{Index: (current - 1 + len(shots)) % len(shots)})
	case bubblesKey.Matches(msg, b.keymap.openURL):
		if current < len(shots) {
			return b.deliver(action.Destination{Kind: action.KindDirectLink, URL: shots[current]}, "open")
		}
	case bubblesKey.Matches(msg, b.keymap.quit):
		b.dispatch(view.CloseViewer{})
	}

	return nil
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() == 0 {
				return tea.Quit
			}
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}

	return nil
}

var _ list.Item = (*listItem)(nil)
