package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/detail"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/log"
	"github.com/samber/lo"
)

type titlesLoadedMsg struct {
	query  string
	titles []*catalog.Title
}

type titleLoadedMsg struct {
	title *catalog.Title
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.progressStatus = status
	return b.spinnerC.Tick
}

func (b *statefulBubble) searchTitles(query string) tea.Cmd {
	return func() tea.Msg {
		log.Infof("searching %q in %s", query, b.options.Source.Name())
		titles, err := b.options.Source.Search(query)
		if err != nil {
			log.Error(err)
			return fmt.Errorf("search %q: %w", query, err)
		}

		return titlesLoadedMsg{query: query, titles: titles}
	}
}

func (b *statefulBubble) loadTitle(id string) tea.Cmd {
	return func() tea.Msg {
		log.Infof("loading title %s", id)
		title, err := b.options.Source.TitleOf(id)
		if err != nil {
			log.Error(err)
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("title %q was not found in %s", id, b.options.Source.Name())
			}
			return err
		}

		return titleLoadedMsg{title: title}
	}
}

func (b *statefulBubble) setTitles(titles []*catalog.Title) tea.Cmd {
	items := lo.Map(titles, func(t *catalog.Title, _ int) list.Item {
		return &listItem{internal: t}
	})

	return b.titlesC.SetItems(items)
}

// deliver hands dest to the dispatcher off the update loop.
func (b *statefulBubble) deliver(dest action.Destination, what string) tea.Cmd {
	if !dest.Available() {
		return ui.Notify(fmt.Sprintf("%s Nothing to %s", icon.Get(icon.Fail), what))
	}

	return func() tea.Msg {
		switch b.options.Dispatcher.Deliver(dest) {
		case action.RouteMessenger:
			return ui.NotifyMsg{Text: fmt.Sprintf("%s Opened in Telegram", icon.Get(icon.Telegram))}
		case action.RouteExternal:
			return ui.NotifyMsg{Text: fmt.Sprintf("%s Opened %s", icon.Get(icon.Link), dest.URL)}
		default:
			return nil
		}
	}
}

func (b *statefulBubble) joinChannel() tea.Cmd {
	url := b.options.Channel
	if url == "" {
		return ui.Notify("No channel configured")
	}

	return func() tea.Msg {
		b.options.Dispatcher.JoinChannel(url)
		return ui.NotifyMsg{Text: fmt.Sprintf("%s Opened %s", icon.Get(icon.Link), url)}
	}
}

// currentEpisode returns the highlighted episode on the episodes tab.
func (b *statefulBubble) currentEpisode() (catalog.Episode, bool) {
	item, ok := b.episodesC.SelectedItem().(*listItem)
	if !ok {
		return catalog.Episode{}, false
	}

	episode, ok := item.internal.(catalog.Episode)
	return episode, ok
}

// act resolves watch or download for whatever the detail screen points at.
func (b *statefulBubble) act(download bool) tea.Cmd {
	what := lo.Ternary(download, "download", "watch")
	resolver := b.options.Resolver

	if !b.selectedTitle.IsMultiEpisode() {
		offer := detail.ForTitle(b.selectedTitle)
		if download && offer.Download {
			return b.deliver(resolver.DownloadTitle(b.selectedTitle), what)
		}
		if !download && offer.Watch {
			return b.deliver(resolver.WatchTitle(b.selectedTitle), what)
		}
		return ui.Notify(fmt.Sprintf("%s Nothing to %s", icon.Get(icon.Fail), what))
	}

	episode, ok := b.currentEpisode()
	if !ok {
		return ui.Notify("Select an episode first")
	}

	offer := detail.ForEpisode(episode)
	switch {
	case offer.Locked:
		text := fmt.Sprintf("%s %s is coming soon", icon.Get(icon.Lock), episode)
		if date, ok := offer.ReleaseDate.Get(); ok {
			text += ", " + date
		}
		return ui.Notify(text)
	case download && offer.Download:
		return b.deliver(resolver.DownloadEpisode(episode), what)
	case !download && offer.Watch:
		return b.deliver(resolver.WatchEpisode(episode), what)
	default:
		return ui.Notify(fmt.Sprintf("%s Nothing to %s", icon.Get(icon.Fail), what))
	}
}
