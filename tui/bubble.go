package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/season"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/util"
	"github.com/marquee-cli/marquee/view"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	spinnerC  spinner.Model
	inputC    textinput.Model
	titlesC   list.Model
	episodesC list.Model
	helpC     help.Model

	selectedTitle *catalog.Title
	seasons       season.Seasons
	view          view.State

	progressStatus string
	lastError      error

	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// dispatch applies a view event and keeps the keymap and episode list in sync.
func (b *statefulBubble) dispatch(event view.Event) {
	previous := b.view
	b.view = view.Reduce(b.view, event)

	b.keymap.tab = b.view.Tab
	b.keymap.viewerOpen = b.view.ViewerOpen()

	if previous.Season != b.view.Season {
		b.refreshEpisodes()
	}
}

// showTitle resets the view state for a freshly selected title.
func (b *statefulBubble) showTitle(title *catalog.Title) {
	b.selectedTitle = title
	b.seasons = season.Organize(title.Episodes)
	b.view = view.Initial()
	b.keymap.tab = b.view.Tab
	b.keymap.viewerOpen = false

	// titles without a first season open on their lowest one
	if index := b.seasons.Index(); len(index) > 0 && !b.seasons.Has(b.view.Season) {
		b.view = view.Reduce(b.view, view.SelectSeason{Season: index[0]})
	}

	b.refreshEpisodes()
	b.episodesC.Select(0)
}

func (b *statefulBubble) refreshEpisodes() {
	episodes := b.view.Displayed(b.seasons)
	items := lo.Map(episodes, func(e catalog.Episode, _ int) list.Item {
		return &listItem{internal: e, parent: b.selectedTitle, resolver: b.options.Resolver}
	})

	b.episodesC.SetItems(items)
	b.episodesC.Title = b.seasonTitle()
	b.episodesC.SetStatusBarItemName("episode", "episodes")
}

func (b *statefulBubble) seasonTitle() string {
	if b.seasons.Len() <= 1 {
		return "Episodes"
	}
	return fmt.Sprintf("Season %d of %d", b.view.Season, b.seasons.Len())
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.titlesC.SetSize(listWidth, listHeight)
	b.titlesC.Help.Width = listWidth

	// the header of the detail screen takes some room above the episodes
	b.episodesC.SetSize(listWidth, util.Max(listHeight-detailHeaderHeight, 3))
	b.episodesC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		view:          view.Initial(),
		notifier:      &ui.Model{},
		options:       options,
	}

	makeList := func(title string, titleStyle lipgloss.Style) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = titleStyle
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search titles (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = "> "

	bubble.titlesC = makeList("Titles", lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1))
	bubble.titlesC.SetStatusBarItemName("title", "titles")

	bubble.episodesC = makeList("Episodes", lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
