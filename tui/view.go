package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/detail"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/view"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// detailHeaderHeight is the number of lines above the episode list.
const detailHeaderHeight = 6

var badgeColors = []lipgloss.Color{style.Mauve, style.Peach, style.Teal}

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case searchState:
		output = b.viewSearch()
	case titlesState:
		output = listExtraPaddingStyle.Render(b.titlesC.View())
	case detailState:
		output = b.viewDetail()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	return b.renderLines(true, []string{
		style.Title(fmt.Sprintf("Search %s", b.options.Source.Name())),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewHeader() []string {
	t := b.selectedTitle

	header := style.Title(t.Name)
	for i, badge := range t.TopBadges() {
		header += " " + style.Tag(style.Base, badgeColors[i%len(badgeColors)])(badge)
	}

	var summary []string
	if year, ok := t.Attributes.Year.Get(); ok {
		summary = append(summary, fmt.Sprint(year))
	}
	if rating, ok := t.Attributes.Rating.Get(); ok {
		summary = append(summary, fmt.Sprintf("%s %.1f", icon.Get(icon.Rating), rating))
	}
	summary = append(summary, t.Category)

	tabs := lo.Map([]view.Tab{view.TabEpisodes, view.TabInfo}, func(tab view.Tab, _ int) string {
		if tab == b.view.Tab {
			return style.Tag(style.Base, style.AccentColor)(tab.String())
		}
		return style.Faint(tab.String())
	})

	return []string{
		header,
		style.Faint(strings.Join(lo.Compact(summary), " · ")),
		"",
		strings.Join(tabs, " "),
		"",
	}
}

func (b *statefulBubble) viewDetail() string {
	if b.view.ViewerOpen() {
		return b.viewScreenshot()
	}

	lines := b.viewHeader()

	if b.view.Tab == view.TabInfo {
		return b.renderLines(true, append(lines, b.viewInfo()...))
	}

	if b.selectedTitle.IsMultiEpisode() {
		return paddingStyle.Render(strings.Join(lines, "\n")) + "\n" + listExtraPaddingStyle.Render(b.episodesC.View())
	}

	return b.renderLines(true, append(lines, b.viewOffer()...))
}

// viewOffer renders the title level controls of single asset titles.
func (b *statefulBubble) viewOffer() []string {
	t := b.selectedTitle
	offer := detail.ForTitle(t)
	if !offer.Any() {
		return []string{style.Faint("Nothing to watch or download")}
	}

	showURLs := viper.GetBool(key.TUIShowURLs)
	var lines []string
	if offer.Watch {
		line := fmt.Sprintf("%s %s", icon.Get(icon.Watch), style.Fg(color.Orange)("w watch"))
		if showURLs {
			line += " " + style.Faint(b.options.Resolver.WatchTitle(t).URL)
		}
		lines = append(lines, line)
	}
	if offer.Download {
		line := fmt.Sprintf("%s %s", icon.Get(icon.Download), "d download")
		if showURLs {
			line += " " + style.Faint(b.options.Resolver.DownloadTitle(t).URL)
		}
		lines = append(lines, line)
	}

	return lines
}

func (b *statefulBubble) viewInfo() []string {
	t := b.selectedTitle
	facts := detail.Facts(t)

	width := lo.Max(lo.Map(facts, func(f detail.Fact, _ int) int {
		return len(f.Label)
	}))

	lines := lo.Map(facts, func(f detail.Fact, _ int) string {
		return fmt.Sprintf("%s  %s", style.Fg(color.Purple)(fmt.Sprintf("%-*s", width, f.Label)), f.Value)
	})

	if description, ok := t.Attributes.Description.Get(); ok {
		lines = append(lines, "", wrap.String(description, wrapWidth(b.width)))
	}

	if len(t.Media.Screenshots) > 0 {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%d screenshots, press s to view", len(t.Media.Screenshots))))
	}

	if viper.GetBool(key.TUIShowURLs) {
		lines = append(lines, "", style.Faint(t.Banner()))
	}

	return lines
}

func (b *statefulBubble) viewScreenshot() string {
	shots := b.selectedTitle.Media.Screenshots
	current := b.view.Viewer.OrEmpty()

	var url string
	if current < len(shots) {
		url = shots[current]
	}

	return b.renderLines(true, []string{
		style.Title(fmt.Sprintf("Screenshot %d of %d", current+1, len(shots))),
		"",
		wrap.String(url, wrapWidth(b.width)),
	})
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), wrapWidth(b.width))
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := lo.SumBy(lines, func(l string) int {
		return strings.Count(l, "\n") + 1
	})
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

// wrapWidth falls back to 80 columns before the first resize.
func wrapWidth(width int) int {
	if width <= 0 {
		return 80
	}
	return width
}
