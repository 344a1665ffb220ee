package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/view"
)

type statefulKeymap struct {
	state state
	// detail sub state
	tab        view.Tab
	viewerOpen bool

	quit, forceQuit,
	confirm,
	back,
	watch, download,
	switchTab,
	nextSeason, prevSeason,
	screenshots,
	nextShot, prevShot,
	openURL,
	join,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		watch: key.NewBinding(
			key.WithKeys("enter", "w"),
			key.WithHelp(style.Fg(color.Orange)("w"), style.Fg(color.Orange)("watch")),
		),
		download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		switchTab: key.NewBinding(
			key.WithKeys("tab", "i"),
			key.WithHelp("tab", "episodes/info"),
		),
		nextSeason: key.NewBinding(
			key.WithKeys("]", "L"),
			key.WithHelp("]", "next season"),
		),
		prevSeason: key.NewBinding(
			key.WithKeys("[", "H"),
			key.WithHelp("[", "prev season"),
		),
		screenshots: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "screenshots"),
		),
		nextShot: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→", "next"),
		),
		prevShot: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", "previous"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		join: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "join channel"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case searchState:
		return to2(h(k.confirm, k.forceQuit))
	case titlesState:
		return to2(h(k.confirm, k.back, k.quit))
	case detailState:
		if k.viewerOpen {
			return to2(h(k.prevShot, k.nextShot, k.openURL, k.back))
		}
		if k.tab == view.TabInfo {
			return to2(h(k.switchTab, k.watch, k.download, k.screenshots, k.join, k.back))
		}
		return h(k.watch, k.download, k.switchTab, k.nextSeason, k.back),
			h(k.watch, k.download, k.switchTab, k.prevSeason, k.nextSeason, k.screenshots, k.join, k.back, k.quit)
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
