package tui

import (
	"fmt"
	"strings"

	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/detail"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// listItem wraps titles and episodes for the list component.
type listItem struct {
	internal any
	parent   *catalog.Title
	resolver action.Resolver
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *catalog.Title:
		title = e.Name
		if badges := e.TopBadges(); len(badges) > 0 {
			title += " " + style.Faint(strings.Join(badges, " "))
		}
	case catalog.Episode:
		title = fmt.Sprintf("%02d. %s", e.Number, e.String())
		if e.ComingSoon {
			title = fmt.Sprintf("%s %s", title, icon.Get(icon.Lock))
		}
	default:
		title = t.FilterValue()
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *catalog.Title:
		parts := []string{e.Category}
		if year, ok := e.Attributes.Year.Get(); ok {
			parts = append(parts, fmt.Sprint(year))
		}
		if e.IsMultiEpisode() {
			parts = append(parts, e.Attributes.EpisodeRange.OrElse(fmt.Sprintf("%d episodes", len(e.Episodes))))
		}
		description = strings.Join(lo.Compact(parts), " · ")
	case catalog.Episode:
		offer := detail.ForEpisode(e)
		if offer.Locked {
			description = "Coming soon"
			if date, ok := offer.ReleaseDate.Get(); ok {
				description += " · " + date
			}
			return
		}

		parts := lo.Compact([]string{
			e.Duration.OrEmpty(),
			e.Size.OrEmpty(),
			e.Quality.OrEmpty(),
		})

		if viper.GetBool(key.TUIShowURLs) {
			if dest := t.resolver.WatchEpisode(e); dest.Available() {
				parts = append(parts, style.Faint(dest.URL))
			}
		}

		description = strings.Join(parts, " · ")
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *catalog.Title:
		return e.Name
	case catalog.Episode:
		return e.String()
	case fmt.Stringer:
		return e.String()
	default:
		return ""
	}
}
